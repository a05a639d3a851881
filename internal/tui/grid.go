package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/tui/view"
)

const (
	timeColWidth = 6
	minColWidth  = 6
	maxColWidth  = 18
	// Border columns of the table: outer left and right plus one per
	// column separator.
	gridBorderCols = 9
)

// layout holds the box sizes derived from the terminal size.
type layout struct {
	InnerW  int
	InnerH  int
	GridH   int
	FooterH int
	ColW    int
}

func (m Model) layout() layout {
	l := layout{
		InnerW: m.width - 2,
		InnerH: m.height,
	}
	if l.InnerW <= 0 || l.InnerH <= 0 {
		return layout{}
	}
	l.FooterH = view.FooterHeight(len(m.inputLines(l.InnerW)))
	l.GridH = max(0, l.InnerH-l.FooterH)
	l.ColW = (l.InnerW - timeColWidth - gridBorderCols) / schedule.DaysPerWeek
	l.ColW = max(minColWidth, min(l.ColW, maxColWidth))
	return l
}

// visibleRows is the number of slot rows that fit in the grid box.
func (m Model) visibleRows() int {
	if m.width <= 0 || m.height <= 0 {
		return m.snap.SlotCount()
	}
	return max(0, m.layout().GridH-view.GridChromeLines)
}

func (m Model) gridViewState(l layout) view.GridViewState {
	slots := m.snap.SlotCount()
	visible := min(max(0, l.GridH-view.GridChromeLines), slots-m.scrollOffset)
	if l.GridH <= 0 || visible <= 0 {
		return view.GridViewState{Render: false}
	}

	headers := make([]string, 0, schedule.DaysPerWeek+1)
	headerStyles := make([]lipgloss.Style, 0, schedule.DaysPerWeek+1)
	headers = append(headers, "")
	headerStyles = append(headerStyles, m.styles.TimeColumnStyle)
	for d := 0; d < schedule.DaysPerWeek; d++ {
		headers = append(headers, schedule.DayName(d))
		style := m.styles.DayHeaderStyle
		if d == m.cursor.Day {
			style = m.styles.DayHeaderCursorStyle
		}
		headerStyles = append(headerStyles, style.Width(l.ColW))
	}

	content := view.GridContent{
		Rows:       make([][]string, 0, visible),
		CellStyles: make([][]lipgloss.Style, 0, visible),
	}
	for i := 0; i < visible; i++ {
		slot := m.scrollOffset + i
		row := make([]string, 0, schedule.DaysPerWeek+1)
		styles := make([]lipgloss.Style, 0, schedule.DaysPerWeek+1)

		timeStyle := m.styles.TimeColumnStyle
		if slot == m.cursor.Slot {
			timeStyle = m.styles.TimeCursorStyle
		}
		row = append(row, schedule.SlotTime(slot, m.snap.Settings.SlotMinutes))
		styles = append(styles, timeStyle)

		for d := 0; d < schedule.DaysPerWeek; d++ {
			text, style := m.cellView(d, slot)
			row = append(row, ansi.Truncate(text, l.ColW, "…"))
			styles = append(styles, style.Width(l.ColW).MaxWidth(l.ColW))
		}
		content.Rows = append(content.Rows, row)
		content.CellStyles = append(content.CellStyles, styles)
	}

	return view.GridViewState{
		InnerW:       l.InnerW,
		GridH:        l.GridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      content,
		BorderStyle:  m.styles.BorderStyle,
		Bg:           m.styles.Bg(),
		Render:       true,
	}
}

// cellView returns the label and style of one grid cell. The cursor wins
// over the anchor, which wins over a conflict, which wins over a subject.
func (m Model) cellView(day, slot int) (string, lipgloss.Style) {
	c := m.snap.CellAt(m.snap.Settings.ViewMode, day, slot)

	text := ""
	if c.Start {
		text = c.Subject
		if c.Conflict {
			text = "!" + text
		}
	}

	var style lipgloss.Style
	switch {
	case c.Subject == "":
		style = m.styles.EmptyCellStyle
	case c.Conflict:
		style = m.styles.ConflictStyle
	case c.NaesinOnly && m.snap.Settings.ViewMode == profile.ViewCompare:
		style = m.styles.OutlineStyle(c.Color)
	default:
		style = m.styles.SubjectStyle(c.Color)
	}

	if a := m.snap.UI.Anchor; a != nil && a.Day == day && a.Slot == slot {
		style = m.styles.AnchorStyle
	}
	if m.cursor.Day == day && m.cursor.Slot == slot {
		if c.Subject == "" {
			style = m.styles.CursorStyle
		} else {
			style = style.Reverse(true)
		}
	}
	return text, style
}
