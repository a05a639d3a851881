package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Chip is one labelled, styled token in a bar, such as a subject or a
// palette colour.
type Chip struct {
	Label string
	Style lipgloss.Style
}

// RenderChips joins chips with sep and truncates the result to width.
func RenderChips(chips []Chip, sep string, width int) string {
	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		parts = append(parts, c.Style.Render(c.Label))
	}
	line := strings.Join(parts, sep)
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
