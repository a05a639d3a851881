package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timegrid/internal/tui/theme"
	"github.com/javiermolinar/timegrid/internal/tui/view"
)

// Styles holds all lipgloss styles for the editor, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// App container
	AppStyle lipgloss.Style

	// Grid
	BorderStyle          lipgloss.Style
	DayHeaderStyle       lipgloss.Style
	DayHeaderCursorStyle lipgloss.Style
	TimeColumnStyle      lipgloss.Style
	TimeCursorStyle      lipgloss.Style
	EmptyCellStyle       lipgloss.Style
	CursorStyle          lipgloss.Style
	AnchorStyle          lipgloss.Style
	ConflictStyle        lipgloss.Style

	// Status bar
	BarStyle     lipgloss.Style
	ProfileStyle lipgloss.Style
	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	RegularStyle lipgloss.Style
	NaesinStyle  lipgloss.Style
	LockedStyle  lipgloss.Style

	// Subject bar
	ChipStyle         lipgloss.Style
	ChipSelectedStyle lipgloss.Style

	// Input box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Messages
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Dialogs
	DialogBackdrop    lipgloss.Color
	DialogStyle       lipgloss.Style
	DialogTitleStyle  lipgloss.Style
	DialogBodyStyle   lipgloss.Style
	DialogKeyStyle    lipgloss.Style
	DialogButtonStyle lipgloss.Style
	DialogActiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{palette: p}

	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	s.AppStyle = base.Padding(0, 1)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg)
	s.DayHeaderStyle = base.
		Bold(true).
		Align(lipgloss.Center)
	s.DayHeaderCursorStyle = s.DayHeaderStyle.
		Foreground(p.Accent)
	s.TimeColumnStyle = base.
		Foreground(p.FgMuted).
		Width(timeColWidth)
	s.TimeCursorStyle = s.TimeColumnStyle.
		Foreground(p.Accent).
		Bold(true)
	s.EmptyCellStyle = base
	s.CursorStyle = lipgloss.NewStyle().
		Background(p.BgSelection).
		Foreground(p.Fg).
		Bold(true)
	s.AnchorStyle = lipgloss.NewStyle().
		Background(p.Anchor).
		Foreground(p.TextOnAnchor).
		Bold(true)
	s.ConflictStyle = lipgloss.NewStyle().
		Background(p.ConflictBg).
		Foreground(p.TextOnConflict).
		Bold(true)

	s.BarStyle = base
	s.ProfileStyle = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.TextOnAccent).
		Bold(true).
		Padding(0, 1)
	s.LabelStyle = base.Foreground(p.FgMuted)
	s.ValueStyle = base.Bold(true)
	s.RegularStyle = base.Foreground(p.Regular).Bold(true)
	s.NaesinStyle = base.Foreground(p.Naesin).Bold(true)
	s.LockedStyle = lipgloss.NewStyle().
		Background(p.Warning).
		Foreground(p.TextOnWarning).
		Bold(true).
		Padding(0, 1)

	s.ChipStyle = lipgloss.NewStyle().Padding(0, 1)
	s.ChipSelectedStyle = s.ChipStyle.Bold(true).Underline(true)

	s.PromptStyle = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FgMuted).
		BorderBackground(p.Bg)
	s.PromptFocusedStyle = s.PromptStyle.
		BorderForeground(p.Accent)

	s.StatusStyle = base.Foreground(p.Accent)
	s.ErrorStyle = base.Foreground(p.Warning).Bold(true)
	s.HelpStyle = base.Foreground(p.FgMuted)

	s.DialogBackdrop = p.BgHighlight
	dialogBase := lipgloss.NewStyle().Background(p.BgHighlight).Foreground(p.Fg)
	s.DialogStyle = dialogBase.Padding(1, 2)
	s.DialogTitleStyle = dialogBase.Foreground(p.Accent).Bold(true)
	s.DialogBodyStyle = dialogBase
	s.DialogKeyStyle = dialogBase.Foreground(p.Accent)
	s.DialogButtonStyle = dialogBase.Foreground(p.FgMuted).Padding(0, 1)
	s.DialogActiveStyle = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.TextOnAccent).
		Bold(true).
		Padding(0, 1)

	return s
}

// SubjectStyle returns the fill style of a cell painted with hex.
func (s *Styles) SubjectStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.palette.SubjectBg(hex)).
		Foreground(s.palette.SubjectFg(hex))
}

// OutlineStyle returns the style of a cell that only shows a subject's
// colour as text, used for naesin-only cells in the compare view.
func (s *Styles) OutlineStyle(hex string) lipgloss.Style {
	return s.EmptyCellStyle.
		Foreground(lipgloss.Color(hex)).
		Italic(true)
}

// SwatchStyle renders a raw palette colour block.
func (s *Styles) SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(s.palette.SubjectFg(hex))
}

// PlanStyle returns the text style of a plan name.
func (s *Styles) PlanStyle(naesin bool) lipgloss.Style {
	if naesin {
		return s.NaesinStyle
	}
	return s.RegularStyle
}

// Bg returns the theme background.
func (s *Styles) Bg() lipgloss.Color {
	return s.palette.Bg
}

// DialogStyles returns the styles used by view.RenderDialog.
func (s *Styles) DialogStyles() view.DialogStyles {
	return view.DialogStyles{
		HeaderStyle:       s.DialogBodyStyle,
		TitleStyle:        s.DialogTitleStyle,
		FooterStyle:       s.DialogBodyStyle,
		FrameStyle:        s.DialogStyle,
		ButtonStyle:       s.DialogButtonStyle,
		ButtonActiveStyle: s.DialogActiveStyle,
		BodyStyle:         s.DialogBodyStyle,
	}
}
