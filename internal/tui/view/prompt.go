package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PromptCommand is a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// PromptState captures input box state for rendering.
type PromptState struct {
	// Label is printed before the "> " marker, e.g. "subject".
	Label  string
	Value  string
	Cursor string
	// Suggestions are listed under the input, one per command.
	Suggestions []PromptCommand
}

// PromptLines returns the wrapped input line followed by the suggestions.
func PromptLines(state PromptState, contentWidth int) []string {
	lines := hangingWrap(state.Value+state.Cursor, state.Label+"> ", contentWidth)
	for _, cmd := range state.Suggestions {
		lines = append(lines, hangingWrap(cmd.Name+" "+cmd.Description, "  ", contentWidth)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines and marks the cut with "…".
func ClampPromptLines(lines []string, maxLines, width int) []string {
	switch {
	case maxLines <= 0:
		return nil
	case len(lines) <= maxLines:
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	last := out[maxLines-1]
	if runewidth.StringWidth(last) < width {
		out[maxLines-1] = last + "…"
	} else {
		out[maxLines-1] = runewidth.Truncate(last, width, "…")
	}
	return out
}

// WrapTextToWidths wraps s so the first line fits firstWidth cells and the
// rest fit otherWidth. Words are kept whole unless longer than a line.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 || s == "" {
		return []string{""}
	}
	head, _, _ := strings.Cut(ansi.Wrap(s, firstWidth, ""), "\n")
	if !strings.HasPrefix(s, head) {
		return strings.Split(ansi.Wrap(s, min(firstWidth, otherWidth), ""), "\n")
	}
	rest := strings.TrimPrefix(s[len(head):], " ")
	if rest == "" {
		return []string{head}
	}
	return append([]string{head}, strings.Split(ansi.Wrap(rest, otherWidth, ""), "\n")...)
}

// RenderPrompt renders the input box around lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	frameW, _ := style.GetFrameSize()
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Width(max(0, width-frameW)).Render(strings.Join(lines, "\n"))
}

// hangingWrap wraps s after prefix and indents continuation lines to
// line up under the first character.
func hangingWrap(s, prefix string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	pw := runewidth.StringWidth(prefix)
	indent := strings.Repeat(" ", pw)
	lines := WrapTextToWidths(s, max(0, width-pw), max(0, width-pw))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return lines
}
