package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
	"github.com/javiermolinar/timegrid/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showDialog := m.mode == ModeHelp || m.mode == ModeConfirm
	dialog := ""
	if showDialog {
		dialog = m.renderDialog()
		m.overlay.SetBackground(m.styles.DialogBackdrop)
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		DialogContent:    dialog,
		ShowDialog:       showDialog,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	l := m.layout()
	if l.InnerW <= 0 || l.InnerH <= 0 {
		return "Terminal too small"
	}

	gridBox := view.RenderGrid(m.gridViewState(l))
	if gridBox == "" && l.GridH > 0 {
		gridBox = view.PlaceBox(l.InnerW, l.GridH, lipgloss.Top, "", m.styles.Bg())
	}
	footerBox := view.RenderFooter(m.footerModel(l))

	content := lipgloss.JoinVertical(lipgloss.Left, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.Bg())
}

func (m Model) footerModel(l layout) view.FooterModel {
	msgText := m.statusMsg
	if msgText == "" {
		msgText = m.cursorInfo()
	}
	return view.FooterModel{
		InnerW:          l.InnerW,
		StatusBar:       m.statusBar(),
		SubjectBar:      m.subjectBar(l.InnerW),
		InputLines:      m.inputLines(l.InnerW),
		InputFocus:      m.mode == ModeSubject || m.mode == ModePrompt,
		MessageText:     msgText,
		MessageErr:      m.statusErr,
		HelpText:        m.helpLine(),
		BarStyle:        m.styles.BarStyle,
		MessageStyle:    m.styles.StatusStyle,
		ErrorStyle:      m.styles.ErrorStyle,
		HelpStyle:       m.styles.HelpStyle,
		InputStyle:      m.styles.PromptStyle,
		InputFocusStyle: m.styles.PromptFocusedStyle,
		Bg:              m.styles.Bg(),
	}
}

// statusBar shows the profile and every editor setting on one line.
func (m Model) statusBar() string {
	s := m.snap.Settings
	label := m.styles.LabelStyle
	value := m.styles.ValueStyle
	sep := label.Render("  ")

	parts := []string{
		m.styles.ProfileStyle.Render(m.snap.Profile.Name),
		label.Render("plan ") + m.styles.PlanStyle(s.ActivePlan == schedule.PlanNaesin).Render(string(s.ActivePlan)),
		label.Render("tool ") + value.Render(string(s.Tool)),
		label.Render("view ") + value.Render(string(s.ViewMode)),
		label.Render("slot ") + value.Render(view.FormatDuration(s.SlotMinutes)),
		label.Render("no-overlap ") + value.Render(view.OnOff(s.PreventOverlap)),
		label.Render("auto ") + value.Render(view.OnOff(s.AutoColor)),
	}
	if s.Locked {
		parts = append(parts, m.styles.LockedStyle.Render("LOCKED"))
	}
	return strings.Join(parts, sep)
}

// subjectBar shows the selected subject with its colour, the preset
// palette and the subjects already in use.
func (m Model) subjectBar(width int) string {
	current := strings.TrimSpace(m.snap.UI.Subject)
	color := m.snap.UI.Color
	if color == "" {
		color = subject.DefaultColor
	}

	chips := []view.Chip{{Label: "  ", Style: m.styles.SwatchStyle(color)}}
	if current == "" {
		chips = append(chips, view.Chip{Label: "no subject", Style: m.styles.LabelStyle})
	} else {
		chips = append(chips, view.Chip{Label: current, Style: m.styles.ValueStyle})
	}

	for i, p := range subject.Palette {
		style := m.styles.SwatchStyle(p.Value)
		if p.Value == color {
			style = style.Underline(true).Bold(true)
		}
		chips = append(chips, view.Chip{Label: fmt.Sprint(i + 1), Style: style.Padding(0, 1)})
	}

	for _, name := range m.snap.KnownSubjects() {
		style := m.styles.ChipStyle.Inherit(m.styles.SubjectStyle(m.snap.ColorFor(name)))
		if name == current {
			style = m.styles.ChipSelectedStyle.Inherit(m.styles.SubjectStyle(m.snap.ColorFor(name)))
		}
		chips = append(chips, view.Chip{Label: name, Style: style})
	}
	return view.RenderChips(chips, m.styles.BarStyle.Render(" "), width)
}

// cursorInfo describes what is under the cursor when no message is shown.
func (m Model) cursorInfo() string {
	day, slot := m.cursor.Day, m.cursor.Slot
	minutes := m.snap.Settings.SlotMinutes
	at := schedule.DayName(day) + " " + schedule.SlotTime(slot, minutes)

	if c, ok := schedule.ConflictAt(m.snap.Regular, m.snap.Naesin, minutes, day, slot); ok {
		start, end := c.TimeRange(minutes)
		return fmt.Sprintf("%s  conflict %s-%s: regular %s / naesin %s", at, start, end, c.Regular.Subject, c.Naesin.Subject)
	}
	plan := m.snap.Settings.ActivePlan
	if e, ok := schedule.EntryAt(m.snap.Map(plan), minutes, day, slot); ok {
		start, end := e.TimeRange(minutes)
		return fmt.Sprintf("%s  %s %s-%s: %s", at, plan, start, end, e.Subject)
	}
	if a := m.snap.UI.Anchor; a != nil {
		return fmt.Sprintf("%s  range from %s", at, schedule.SlotTime(a.Slot, minutes))
	}
	return at
}

func (m Model) helpLine() string {
	switch m.mode {
	case ModeSubject:
		return "enter/esc: done  tab: complete"
	case ModePrompt:
		return "enter: run  tab: complete  esc: cancel"
	case ModeConfirm:
		return "y: confirm  n: cancel"
	case ModeHelp:
		return "esc: close"
	}
	if m.snap.Settings.Locked {
		return "L: unlock  v: view  y: copy  ?: help  q: quit"
	}
	return "space: paint  i: subject  1-7: colour  p: plan  e: erase  v: view  /: command  ?: help  q: quit"
}

func (m Model) renderDialog() string {
	styles := m.styles.DialogStyles()
	if m.mode == ModeConfirm && m.confirm != nil {
		body := m.styles.DialogBodyStyle.Render(m.confirm.message)
		return view.RenderDialog("Confirm", body, view.RenderButtons(styles, "y Yes", "n No"), styles)
	}
	body := view.RenderKeyHelp(keyHelp, m.styles.DialogKeyStyle, m.styles.DialogBodyStyle)
	return view.RenderDialog("Keys", body, m.styles.DialogBodyStyle.Render("esc to close"), styles)
}

var keyHelp = []view.KeyHelp{
	{Keys: "h j k l", Desc: "move"},
	{Keys: "g G pgup pgdn", Desc: "jump"},
	{Keys: "space enter", Desc: "paint or erase; twice on a day fills the range"},
	{Keys: "esc", Desc: "cancel range start"},
	{Keys: "i s", Desc: "type a subject"},
	{Keys: "n N", Desc: "next or previous subject"},
	{Keys: "1-7", Desc: "preset colour"},
	{Keys: "p", Desc: "switch plan (regular / naesin)"},
	{Keys: "e", Desc: "switch tool (paint / erase)"},
	{Keys: "v", Desc: "cycle view"},
	{Keys: "o a", Desc: "overlap and auto colour"},
	{Keys: "d x", Desc: "delete entry under cursor"},
	{Keys: "r", Desc: "resolve conflict, clearing the active plan"},
	{Keys: "tab", Desc: "next profile"},
	{Keys: "L", Desc: "lock or unlock"},
	{Keys: "y", Desc: "copy entry list"},
	{Keys: "/", Desc: "command prompt"},
	{Keys: "q", Desc: "quit"},
}
