package schedule

// ConflictEntry is a maximal run where both plans occupy the same slots and
// neither side's cell changes along the run.
type ConflictEntry struct {
	Day       int
	StartSlot int
	EndSlot   int
	Regular   Cell
	Naesin    Cell
}

// Len returns the number of slots in conflict.
func (c ConflictEntry) Len() int {
	return c.EndSlot - c.StartSlot
}

// Side returns the cell of the given plan.
func (c ConflictEntry) Side(plan Plan) Cell {
	if plan == PlanNaesin {
		return c.Naesin
	}
	return c.Regular
}

// TimeRange returns the "HH:MM" start and end of the run.
func (c ConflictEntry) TimeRange(slotMinutes int) (start, end string) {
	return SlotTime(c.StartSlot, slotMinutes), SlotTime(c.EndSlot, slotMinutes)
}

// InConflict reports whether both maps occupy (day, slot).
func InConflict(regular, naesin SlotMap, day, slot int) bool {
	return regular.Occupied(day, slot) && naesin.Occupied(day, slot)
}

// BuildConflicts finds the conflict runs between the two plans.
// A run breaks when either side becomes empty or changes content, so the
// reported ranges line up with the visually distinct blocks of each plan.
func BuildConflicts(regular, naesin SlotMap, slotMinutes int) []ConflictEntry {
	slots := SlotCount(slotMinutes)
	var out []ConflictEntry
	for d := 0; d < DaysPerWeek; d++ {
		s := 0
		for s < slots {
			r, rok := regular.Get(d, s)
			n, nok := naesin.Get(d, s)
			if !rok || !nok {
				s++
				continue
			}
			end := s + 1
			for end < slots {
				rr, rok := regular.Get(d, end)
				nn, nok := naesin.Get(d, end)
				if !rok || !nok || rr != r || nn != n {
					break
				}
				end++
			}
			out = append(out, ConflictEntry{
				Day:       d,
				StartSlot: s,
				EndSlot:   end,
				Regular:   r,
				Naesin:    n,
			})
			s = end
		}
	}
	return out
}

// FindConflict returns the conflict run starting at (day, startSlot).
func FindConflict(regular, naesin SlotMap, slotMinutes, day, startSlot int) (ConflictEntry, bool) {
	for _, c := range BuildConflicts(regular, naesin, slotMinutes) {
		if c.Day == day && c.StartSlot == startSlot {
			return c, true
		}
	}
	return ConflictEntry{}, false
}

// ConflictAt returns the conflict run covering (day, slot).
func ConflictAt(regular, naesin SlotMap, slotMinutes, day, slot int) (ConflictEntry, bool) {
	for _, c := range BuildConflicts(regular, naesin, slotMinutes) {
		if c.Day == day && slot >= c.StartSlot && slot < c.EndSlot {
			return c, true
		}
	}
	return ConflictEntry{}, false
}
