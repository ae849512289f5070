package output

import (
	"strings"
	"testing"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"bold", "\x1b[1mhello\x1b[0m", 5},
		{"color", "\x1b[31mred\x1b[0m", 3},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.input); got != tc.want {
				t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Repository", "Stars")
	tbl.AddRow("ai-cover-letter", "42")
	tbl.AddRow("data-pipeline", "7")

	output := tbl.Render()

	for _, want := range []string{"Repository", "Stars", "ai-cover-letter", "data-pipeline", "─"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if output := tbl.Render(); output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestHeatmapRendersGridAndLegend(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	weeks := [][]int{
		{-1, -1, -1, 0, 1, 2, 3},
		{4, 0, 1, 2, 3, 4, 0},
		{1, 2, 3},
	}

	output := Heatmap(weeks)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// 7 weekday rows, a blank spacer, and the legend.
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "Less") || !strings.Contains(lines[len(lines)-1], "More") {
		t.Error("expected legend on the last line")
	}

	// Row 0 (Sundays): placeholder, then cells for weeks 1 and 2.
	if strings.Count(lines[0], heatCell) != 2 {
		t.Errorf("expected 2 cells on the Sunday row, got %d", strings.Count(lines[0], heatCell))
	}
	// Row 3 (Wednesdays): the partial trailing week has no cell.
	if strings.Count(lines[3], heatCell) != 2 {
		t.Errorf("expected 2 cells on the Wednesday row, got %d", strings.Count(lines[3], heatCell))
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if got := Heatmap(nil); got != "" {
		t.Errorf("expected empty output for no weeks, got %q", got)
	}
}
