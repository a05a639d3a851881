// Package profile holds the application state document: semester profiles,
// editor settings and transient UI state, plus its versioned JSON encoding.
package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

// Profile errors.
var (
	ErrEmptyName       = errors.New("profile name cannot be empty")
	ErrLastProfile     = errors.New("at least one profile must remain")
	ErrProfileNotFound = errors.New("profile not found")
)

const (
	// DefaultProfileName names the profile seeded into a fresh state.
	DefaultProfileName = "Semester 1"
	// PlaceholderName replaces a missing name in loaded data.
	PlaceholderName = "Semester"
)

// Profile is one semester: both plans plus its own subject colours.
type Profile struct {
	ID            string
	Name          string
	Regular       schedule.SlotMap
	Naesin        schedule.SlotMap
	SubjectColors subject.Table
	UpdatedAt     time.Time
}

// New creates an empty profile with a fresh id.
func New(name string, now time.Time) *Profile {
	return &Profile{
		ID:            NewID(),
		Name:          name,
		Regular:       schedule.SlotMap{},
		Naesin:        schedule.SlotMap{},
		SubjectColors: subject.Table{},
		UpdatedAt:     now,
	}
}

// NewID returns a new profile id.
func NewID() string {
	return uuid.NewString()
}

// Map returns the SlotMap of a plan.
func (p *Profile) Map(plan schedule.Plan) schedule.SlotMap {
	if plan == schedule.PlanNaesin {
		return p.Naesin
	}
	return p.Regular
}

// Grid returns the paint/erase engine over this profile's plans.
func (p *Profile) Grid(slotMinutes int) *schedule.Grid {
	return schedule.NewGrid(p.Regular, p.Naesin, slotMinutes)
}

// Touch records a modification time.
func (p *Profile) Touch(now time.Time) {
	p.UpdatedAt = now
}

// HasCells reports whether either plan holds any cell.
func (p *Profile) HasCells() bool {
	return len(p.Regular) > 0 || len(p.Naesin) > 0
}

// Subjects returns every subject known to the profile: those painted in
// either plan and the keys of the colour table, canonicalised but unfiltered.
func (p *Profile) Subjects() []string {
	var all []string
	all = append(all, p.Regular.Subjects()...)
	all = append(all, p.Naesin.Subjects()...)
	for s := range p.SubjectColors {
		all = append(all, s)
	}
	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, s := range all {
		c := subject.Canonicalize(s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// DeleteSubject removes every cell of subject from both plans and drops its
// colour. Cells are matched by canonical form.
func (p *Profile) DeleteSubject(name string) (regular, naesin int, colorRemoved bool) {
	// Removal does not depend on the slot duration.
	regular, naesin = schedule.NewGrid(p.Regular, p.Naesin, 0).RemoveSubject(name)
	colorRemoved = p.SubjectColors.Remove(subject.Canonicalize(name))
	return regular, naesin, colorRemoved
}

// CleanName canonicalises a profile name with the subject whitespace rules.
func CleanName(name string) (string, error) {
	n := subject.Canonicalize(name)
	if n == "" {
		return "", ErrEmptyName
	}
	return n, nil
}

// String implements fmt.Stringer.
func (p *Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ID)
}
