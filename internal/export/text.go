package export

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/timegrid/internal/schedule"
)

// Text renders the timetable as plain text: the entries of each plan
// followed by the conflicts, one line each.
func Text(t Timetable) string {
	var b strings.Builder
	if t.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Title)
	}
	writeTextEntries(&b, "Regular", t.Regular, t.SlotMinutes)
	b.WriteString("\n")
	writeTextEntries(&b, "Naesin", t.Naesin, t.SlotMinutes)

	conflicts := schedule.BuildConflicts(t.Regular, t.Naesin, t.SlotMinutes)
	if len(conflicts) > 0 {
		b.WriteString("\nConflicts\n")
		for _, c := range conflicts {
			start, end := c.TimeRange(t.SlotMinutes)
			fmt.Fprintf(&b, "  %s %s-%s  %s / %s\n", schedule.DayName(c.Day), start, end, c.Regular.Subject, c.Naesin.Subject)
		}
	}
	return b.String()
}

func writeTextEntries(b *strings.Builder, title string, m schedule.SlotMap, slotMinutes int) {
	b.WriteString(title + "\n")
	entries := schedule.BuildEntries(m, slotMinutes)
	if len(entries) == 0 {
		b.WriteString("  (empty)\n")
		return
	}
	for _, e := range entries {
		start, end := e.TimeRange(slotMinutes)
		fmt.Fprintf(b, "  %s %s-%s  %s\n", schedule.DayName(e.Day), start, end, e.Subject)
	}
}
