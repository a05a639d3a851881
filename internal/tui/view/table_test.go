package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderGridIncludesHeaderAndRows(t *testing.T) {
	state := GridViewState{
		InnerW:       30,
		GridH:        6,
		Headers:      []string{"", "Mon"},
		HeaderStyles: []lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle()},
		Content: GridContent{
			Rows:       [][]string{{"09:00", "수학"}, {"10:00", ""}},
			CellStyles: [][]lipgloss.Style{{lipgloss.NewStyle(), lipgloss.NewStyle()}},
		},
		BorderStyle: lipgloss.NewStyle(),
		Bg:          lipgloss.Color(""),
		Render:      true,
	}

	out := RenderGrid(state)
	for _, want := range []string{"Mon", "09:00", "수학", "10:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %q", want, out)
		}
	}
	if got := len(strings.Split(out, "\n")); got != state.GridH {
		t.Errorf("height = %d, want %d", got, state.GridH)
	}
}

func TestRenderGrid_Disabled(t *testing.T) {
	if out := RenderGrid(GridViewState{Render: false, GridH: 5}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{10: "10m", 60: "1h", 90: "1h 30m"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
