package output

import (
	"fmt"
	"strings"
)

// PercentBar renders a visual bar for a 0-100 percentage.
// Example: "████████░░ 80%"
func PercentBar(value float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((value / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case value >= 60:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case value >= 25:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleMuted.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f%%", value)))
}

// DwellBar renders seconds of section dwell against a scale max.
// Example: "██████░░░░ 12.5s"
func DwellBar(seconds, scaleMax float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if scaleMax <= 0 {
		scaleMax = 30
	}

	ratio := seconds / scaleMax
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleBold.Render(bar), StyleMuted.Render(fmt.Sprintf("%.1fs", seconds)))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
