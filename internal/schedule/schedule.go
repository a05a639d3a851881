// Package schedule holds the weekly slot grid: slot addressing, the two
// per-profile plans, range painting and the derived entry and conflict views.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation errors.
var (
	ErrInvalidDay         = errors.New("day must be 0-6 or a weekday name")
	ErrInvalidTime        = errors.New("time must be HH:MM on a slot boundary between 09:00 and 22:00")
	ErrInvalidSlotMinutes = errors.New("unsupported slot duration")
	ErrInvalidPlan        = errors.New("plan must be 'regular' or 'naesin'")
	ErrInvalidSlotKey     = errors.New("slot key must be <day>-<slot>")
	ErrInvalidSlot        = errors.New("slot outside the grid")
)

// Policy errors.
var (
	ErrOverlapBlocked = errors.New("slot is occupied in the other plan")
)

// Plan identifies one of the two independent weekly schedules of a profile.
type Plan string

const (
	PlanRegular Plan = "regular"
	PlanNaesin  Plan = "naesin"
)

// Plans lists both plans in display order.
var Plans = []Plan{PlanRegular, PlanNaesin}

// Valid returns true if the plan is a known value.
func (p Plan) Valid() bool {
	return p == PlanRegular || p == PlanNaesin
}

// Other returns the opposite plan.
func (p Plan) Other() Plan {
	if p == PlanRegular {
		return PlanNaesin
	}
	return PlanRegular
}

// ParsePlan parses a plan name.
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlan, s)
	}
	return p, nil
}

// SlotKey addresses one slot of the week.
type SlotKey struct {
	Day  int `json:"day"`
	Slot int `json:"slot"`
}

// String returns the "<day>-<slot>" form used as persisted map key.
func (k SlotKey) String() string {
	return strconv.Itoa(k.Day) + "-" + strconv.Itoa(k.Slot)
}

// MarshalText implements encoding.TextMarshaler.
func (k SlotKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SlotKey) UnmarshalText(b []byte) error {
	parsed, err := ParseSlotKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseSlotKey parses "<day>-<slot>".
func ParseSlotKey(s string) (SlotKey, error) {
	dayPart, slotPart, ok := strings.Cut(s, "-")
	if !ok {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, s)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil || day < 0 || day >= DaysPerWeek {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, s)
	}
	slot, err := strconv.Atoi(slotPart)
	if err != nil || slot < 0 {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, s)
	}
	return SlotKey{Day: day, Slot: slot}, nil
}

// Cell is the content of an occupied slot.
type Cell struct {
	Subject string `json:"subject"`
	Color   string `json:"color"`
}

// IsZero reports whether the cell carries no subject.
func (c Cell) IsZero() bool {
	return c.Subject == ""
}

// SlotMap maps occupied slots to their cells. Absent keys are unoccupied.
type SlotMap map[SlotKey]Cell

// Get returns the cell at (day, slot).
func (m SlotMap) Get(day, slot int) (Cell, bool) {
	c, ok := m[SlotKey{Day: day, Slot: slot}]
	return c, ok
}

// Occupied reports whether (day, slot) holds a cell.
func (m SlotMap) Occupied(day, slot int) bool {
	_, ok := m[SlotKey{Day: day, Slot: slot}]
	return ok
}

// Clone returns an independent copy of the map.
func (m SlotMap) Clone() SlotMap {
	out := make(SlotMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Subjects returns the distinct subjects present in the map, unordered.
func (m SlotMap) Subjects() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range m {
		if c.Subject != "" && !seen[c.Subject] {
			seen[c.Subject] = true
			out = append(out, c.Subject)
		}
	}
	return out
}
