package schedule

// Entry is a maximal run of identical cells in one plan on one day.
// EndSlot is exclusive.
type Entry struct {
	Day       int
	StartSlot int
	EndSlot   int
	Subject   string
	Color     string
}

// Len returns the number of slots the entry covers.
func (e Entry) Len() int {
	return e.EndSlot - e.StartSlot
}

// TimeRange returns the "HH:MM" start and end of the entry.
func (e Entry) TimeRange(slotMinutes int) (start, end string) {
	return SlotTime(e.StartSlot, slotMinutes), SlotTime(e.EndSlot, slotMinutes)
}

// BuildEntries compresses a SlotMap into entries ordered by day, then start slot.
func BuildEntries(m SlotMap, slotMinutes int) []Entry {
	slots := SlotCount(slotMinutes)
	var entries []Entry
	for d := 0; d < DaysPerWeek; d++ {
		s := 0
		for s < slots {
			item, ok := m.Get(d, s)
			if !ok {
				s++
				continue
			}
			end := s + 1
			for end < slots {
				next, ok := m.Get(d, end)
				if !ok || next != item {
					break
				}
				end++
			}
			entries = append(entries, Entry{
				Day:       d,
				StartSlot: s,
				EndSlot:   end,
				Subject:   item.Subject,
				Color:     item.Color,
			})
			s = end
		}
	}
	return entries
}

// FindEntry returns the entry of m that starts at (day, startSlot).
func FindEntry(m SlotMap, slotMinutes, day, startSlot int) (Entry, bool) {
	for _, e := range BuildEntries(m, slotMinutes) {
		if e.Day == day && e.StartSlot == startSlot {
			return e, true
		}
	}
	return Entry{}, false
}

// RunStart reports whether (day, slot) begins an entry, i.e. it is occupied
// and differs from the slot above it. Used to decide where to draw labels.
func RunStart(m SlotMap, day, slot int) bool {
	cur, ok := m.Get(day, slot)
	if !ok {
		return false
	}
	if slot == 0 {
		return true
	}
	prev, ok := m.Get(day, slot-1)
	return !ok || prev != cur
}

// EntryAt returns the entry of m covering (day, slot).
func EntryAt(m SlotMap, slotMinutes, day, slot int) (Entry, bool) {
	for _, e := range BuildEntries(m, slotMinutes) {
		if e.Day == day && slot >= e.StartSlot && slot < e.EndSlot {
			return e, true
		}
	}
	return Entry{}, false
}
