package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DialogStyles groups the styles needed to render dialog frames and buttons.
type DialogStyles struct {
	HeaderStyle       lipgloss.Style
	TitleStyle        lipgloss.Style
	FooterStyle       lipgloss.Style
	FrameStyle        lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
	BodyStyle         lipgloss.Style
}

// RenderDialog renders a dialog with the provided title, body, and footer.
func RenderDialog(title, body, footer string, styles DialogStyles) string {
	var b strings.Builder

	b.WriteString(styles.HeaderStyle.Render(styles.TitleStyle.Render(title)))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FooterStyle.Render(footer))
	}

	return styles.FrameStyle.Render(b.String())
}

// RenderButtons renders a row of buttons with the first one active.
func RenderButtons(styles DialogStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := styles.ButtonStyle
		if i == 0 {
			style = styles.ButtonActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, styles.BodyStyle.Render(" "))
}

// KeyHelp is one line of a key reference.
type KeyHelp struct {
	Keys string
	Desc string
}

// RenderKeyHelp lays out key bindings in two aligned columns.
func RenderKeyHelp(items []KeyHelp, keyStyle, descStyle lipgloss.Style) string {
	keyW := 0
	for _, it := range items {
		keyW = max(keyW, lipgloss.Width(it.Keys))
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, keyStyle.Width(keyW+2).Render(it.Keys)+descStyle.Render(it.Desc))
	}
	return strings.Join(lines, "\n")
}
