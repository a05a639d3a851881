package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timegrid/internal/tui/view"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
)

// OverlayModel draws an opaque box centred over the editor.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content in a box centred on base. The box grows to fit the
// content but never exceeds width x height.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return base
	}

	content = strings.TrimRight(content, "\n")
	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	contentW := 0
	for _, line := range contentLines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW := min(max(contentW, overlayMinWidth), width)
	boxH := min(max(len(contentLines), overlayMinHeight), height)
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	box := o.boxLines(contentLines, boxW, boxH)
	baseLines := fitBase(base, width, height)

	for i, line := range box {
		row := top + i
		b := baseLines[row]
		baseLines[row] = ansi.Cut(b, 0, left) + line + ansi.Cut(b, left+boxW, width)
	}
	return strings.Join(baseLines, "\n")
}

// boxLines fills a w x h box with the background and centres content in it.
func (o OverlayModel) boxLines(content []string, w, h int) []string {
	bgSeq := view.BackgroundSeq(o.bgColor)
	blank := bgSeq + strings.Repeat(" ", w) + ansi.ResetStyle

	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}

	top := max(0, (h-len(content))/2)
	for i, line := range content {
		if top+i >= h {
			break
		}
		lw := lipgloss.Width(line)
		if lw > w {
			line = ansi.Cut(line, 0, w)
			lw = w
		}
		left := (w - lw) / 2
		right := w - lw - left
		line = view.ReapplyBackground(line, bgSeq)
		lines[top+i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", right) + ansi.ResetStyle
	}
	return lines
}

// fitBase cuts or pads base to exactly width x height cells.
func fitBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lw := lipgloss.Width(line)
		switch {
		case lw > width:
			lines[i] = ansi.Cut(line, 0, width)
		case lw < width:
			lines[i] = line + strings.Repeat(" ", width-lw)
		}
	}
	return lines
}
