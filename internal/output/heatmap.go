package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Green ramp for the five contribution levels, darkest to brightest.
var levelColors = [5]lipgloss.Color{
	lipgloss.Color("#2d333b"),
	lipgloss.Color("#0e4429"),
	lipgloss.Color("#006d32"),
	lipgloss.Color("#26a641"),
	lipgloss.Color("#39d353"),
}

const heatCell = "■"

// Heatmap renders a contribution grid, one column per week and one row
// per weekday (Sunday first). Cells hold the 0-4 level; -1 marks a
// leading placeholder and renders as blank.
func Heatmap(weeks [][]int) string {
	if len(weeks) == 0 {
		return ""
	}

	styles := make([]lipgloss.Style, len(levelColors))
	for i, c := range levelColors {
		if IsNoColor() {
			styles[i] = lipgloss.NewStyle()
		} else {
			styles[i] = lipgloss.NewStyle().Foreground(c)
		}
	}

	var sb strings.Builder
	for row := 0; row < 7; row++ {
		sb.WriteString(" ")
		for _, week := range weeks {
			if row >= len(week) || week[row] < 0 {
				sb.WriteString("  ")
				continue
			}
			level := week[row]
			if level > 4 {
				level = 4
			}
			sb.WriteString(styles[level].Render(heatCell))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	// Legend.
	sb.WriteString("\n ")
	sb.WriteString(StyleMuted.Render("Less "))
	for _, st := range styles {
		sb.WriteString(st.Render(heatCell))
		sb.WriteString(" ")
	}
	sb.WriteString(StyleMuted.Render("More"))
	sb.WriteString("\n")

	return sb.String()
}
