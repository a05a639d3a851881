package schedule

import (
	"fmt"

	"github.com/javiermolinar/timegrid/internal/subject"
)

// PaintResult counts the per-slot outcome of a range paint.
type PaintResult struct {
	Painted int
	Blocked int
}

// Grid is the paint/erase engine over one profile's two plans.
// It mutates the SlotMaps it was given in place. Subjects are expected to be
// canonical and complete; validation happens before calls reach the grid.
type Grid struct {
	regular     SlotMap
	naesin      SlotMap
	slotMinutes int
}

// NewGrid wraps the two SlotMaps of a profile. Nil maps must not be passed.
func NewGrid(regular, naesin SlotMap, slotMinutes int) *Grid {
	return &Grid{regular: regular, naesin: naesin, slotMinutes: slotMinutes}
}

// SlotMinutes returns the slot duration the grid addresses.
func (g *Grid) SlotMinutes() int {
	return g.slotMinutes
}

// SlotCount returns the number of slots per day.
func (g *Grid) SlotCount() int {
	return SlotCount(g.slotMinutes)
}

// Map returns the SlotMap of a plan.
func (g *Grid) Map(plan Plan) SlotMap {
	switch plan {
	case PlanRegular:
		return g.regular
	case PlanNaesin:
		return g.naesin
	default:
		panic(fmt.Sprintf("schedule: unknown plan %q", plan))
	}
}

// checkSlot panics on addresses outside the grid; callers validate user input first.
func (g *Grid) checkSlot(day, slot int) {
	if day < 0 || day >= DaysPerWeek {
		panic(fmt.Sprintf("schedule: day %d out of range", day))
	}
	if slot < 0 || slot >= g.SlotCount() {
		panic(fmt.Sprintf("schedule: slot %d out of range [0,%d)", slot, g.SlotCount()))
	}
}

// SetCell writes or overwrites one cell.
func (g *Grid) SetCell(plan Plan, day, slot int, cell Cell) {
	g.checkSlot(day, slot)
	g.Map(plan)[SlotKey{Day: day, Slot: slot}] = cell
}

// ClearCell deletes the cell if present. Returns true if a cell was removed.
func (g *Grid) ClearCell(plan Plan, day, slot int) bool {
	g.checkSlot(day, slot)
	m := g.Map(plan)
	k := SlotKey{Day: day, Slot: slot}
	if _, ok := m[k]; !ok {
		return false
	}
	delete(m, k)
	return true
}

// Blocked reports whether the other plan occupies (day, slot).
func (g *Grid) Blocked(plan Plan, day, slot int) bool {
	return g.Map(plan.Other()).Occupied(day, slot)
}

// PaintRange writes cell into every slot of the inclusive range between slotA
// and slotB on day. With preventOverlap, slots occupied in the other plan are
// skipped and counted as blocked.
func (g *Grid) PaintRange(plan Plan, day, slotA, slotB int, cell Cell, preventOverlap bool) PaintResult {
	lo, hi := min(slotA, slotB), max(slotA, slotB)
	g.checkSlot(day, lo)
	g.checkSlot(day, hi)

	this := g.Map(plan)
	other := g.Map(plan.Other())
	var res PaintResult
	for s := lo; s <= hi; s++ {
		k := SlotKey{Day: day, Slot: s}
		if preventOverlap {
			if _, ok := other[k]; ok {
				res.Blocked++
				continue
			}
		}
		this[k] = cell
		res.Painted++
	}
	return res
}

// EraseRange deletes every occupied cell in the inclusive range and returns
// how many were actually removed.
func (g *Grid) EraseRange(plan Plan, day, slotA, slotB int) int {
	lo, hi := min(slotA, slotB), max(slotA, slotB)
	g.checkSlot(day, lo)
	g.checkSlot(day, hi)

	m := g.Map(plan)
	erased := 0
	for s := lo; s <= hi; s++ {
		k := SlotKey{Day: day, Slot: s}
		if _, ok := m[k]; ok {
			delete(m, k)
			erased++
		}
	}
	return erased
}

// ClearRange deletes the half-open range [start, end) on day. It is the bulk
// deletion used for entries and conflict runs.
func (g *Grid) ClearRange(plan Plan, day, start, end int) int {
	if end <= start {
		return 0
	}
	return g.EraseRange(plan, day, start, end-1)
}

// RemoveSubject deletes every cell whose subject has the same canonical form
// as name from both plans. Loaded data may hold non-canonical subjects.
func (g *Grid) RemoveSubject(name string) (regular, naesin int) {
	target := subject.Canonicalize(name)
	return removeSubject(g.regular, target), removeSubject(g.naesin, target)
}

func removeSubject(m SlotMap, target string) int {
	n := 0
	for k, c := range m {
		if subject.Canonicalize(c.Subject) == target {
			delete(m, k)
			n++
		}
	}
	return n
}
