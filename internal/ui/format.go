package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

const (
	timeColWidth = 6
	minColWidth  = 6
	maxColWidth  = 16
)

// GridOpts configures grid printing.
type GridOpts struct {
	View  profile.ViewMode
	Width int // Terminal width (0 = detect)
}

// colWidth returns the width of one day column.
func (o GridOpts) colWidth() int {
	w := o.Width
	if w <= 0 {
		w = termWidth()
	}
	col := (w-timeColWidth)/schedule.DaysPerWeek - 1
	return max(minColWidth, min(maxColWidth, col))
}

// gridCell is what one grid position shows.
type gridCell struct {
	text     string
	color    string // subject colour, empty for no swatch
	conflict bool
}

// cellFor returns the printed content of (day, slot) for a view. Labels
// are drawn only where a run starts; the rest of the run shows a dot.
func cellFor(snap app.Snapshot, view profile.ViewMode, day, slot int) gridCell {
	c := snap.CellAt(view, day, slot)
	if c.Subject == "" {
		return gridCell{}
	}
	text := "·"
	if c.Start {
		switch {
		case c.Conflict:
			text = "!" + c.Subject
		case c.NaesinOnly:
			text = "n:" + c.Subject
		default:
			text = c.Subject
		}
	}
	return gridCell{text: text, color: c.Color, conflict: c.Conflict}
}

// fit truncates s to width terminal cells and pads it on the right.
// Hangul syllables are two cells wide.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// PrintGrid prints the week grid of snap.
func PrintGrid(w io.Writer, snap app.Snapshot, opts GridOpts) {
	colW := opts.colWidth()

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", timeColWidth))
	for d := 0; d < schedule.DaysPerWeek; d++ {
		b.WriteString(" ")
		b.WriteString(formatHeader(fit(schedule.DayName(d), colW)))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for slot := 0; slot < snap.SlotCount(); slot++ {
		b.Reset()
		b.WriteString(formatMuted(fit(schedule.SlotTime(slot, snap.Settings.SlotMinutes), timeColWidth)))
		for d := 0; d < schedule.DaysPerWeek; d++ {
			b.WriteString(" ")
			c := cellFor(snap, opts.View, d, slot)
			text := fit(c.text, colW)
			switch {
			case c.conflict:
				text = formatConflict(text)
			case c.color != "":
				text = formatSwatch(c.color, text)
			}
			b.WriteString(text)
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// PrintEntries prints one line per entry.
func PrintEntries(w io.Writer, entries []schedule.Entry, slotMinutes int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, formatMuted("  (empty)"))
		return
	}
	for _, e := range entries {
		start, end := e.TimeRange(slotMinutes)
		fmt.Fprintf(w, "  %s %s-%s  %s  %s\n",
			schedule.DayName(e.Day), start, end,
			formatSwatch(e.Color, "  "), e.Subject)
	}
}

// PrintConflicts prints one line per conflict run.
func PrintConflicts(w io.Writer, conflicts []schedule.ConflictEntry, slotMinutes int) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No conflicts.")
		return
	}
	for _, c := range conflicts {
		start, end := c.TimeRange(slotMinutes)
		fmt.Fprintf(w, "  %s %s %s-%s  %s %s / %s %s\n",
			formatConflict("!"), schedule.DayName(c.Day), start, end,
			formatPlan(schedule.PlanRegular), c.Regular.Subject,
			formatPlan(schedule.PlanNaesin), c.Naesin.Subject)
	}
}

// PrintSettings prints the editor settings.
func PrintSettings(w io.Writer, s profile.Settings) {
	fmt.Fprintf(w, "slot_minutes     = %d\n", s.SlotMinutes)
	fmt.Fprintf(w, "view             = %s\n", s.ViewMode)
	fmt.Fprintf(w, "plan             = %s\n", s.ActivePlan)
	fmt.Fprintf(w, "tool             = %s\n", s.Tool)
	fmt.Fprintf(w, "prevent_overlap  = %t\n", s.PreventOverlap)
	fmt.Fprintf(w, "auto_color       = %t\n", s.AutoColor)
	fmt.Fprintf(w, "locked           = %t\n", s.Locked)
}

// slotRange parses the --day, --start and --end flags.
func slotRange(day, start, end string, slotMinutes int) (d, first, last int, err error) {
	d, err = schedule.ParseDay(day)
	if err != nil {
		return 0, 0, 0, err
	}
	first, last, err = schedule.SlotRangeForTimes(start, end, slotMinutes)
	if err != nil {
		return 0, 0, 0, err
	}
	return d, first, last, nil
}

// planOrActive parses a --plan flag, defaulting to the active plan.
func planOrActive(s string, snap app.Snapshot) (schedule.Plan, error) {
	if s == "" {
		return snap.Settings.ActivePlan, nil
	}
	return schedule.ParsePlan(s)
}
