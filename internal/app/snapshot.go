package app

import (
	"time"

	"github.com/javiermolinar/timegrid/internal/export"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

// ProfileSummary describes one profile for listings.
type ProfileSummary struct {
	ID        string
	Name      string
	UpdatedAt time.Time
	Cells     int
	Active    bool
}

// Snapshot is a detached copy of the state.
type Snapshot struct {
	Settings    profile.Settings
	UI          profile.UIState
	Composing   bool
	Profile     ProfileSummary
	Profiles    []ProfileSummary
	Regular     schedule.SlotMap
	Naesin      schedule.SlotMap
	Colors      subject.Table
	allSubjects []string
}

func newSnapshot(st *profile.State, composing bool) Snapshot {
	active := st.Active()
	s := Snapshot{
		Settings:    st.Settings,
		UI:          st.UI,
		Composing:   composing,
		Regular:     active.Regular.Clone(),
		Naesin:      active.Naesin.Clone(),
		Colors:      make(subject.Table, len(active.SubjectColors)),
		allSubjects: active.Subjects(),
	}
	if st.UI.Anchor != nil {
		a := *st.UI.Anchor
		s.UI.Anchor = &a
	}
	for k, v := range active.SubjectColors {
		s.Colors[k] = v
	}
	for _, p := range st.Profiles {
		sum := ProfileSummary{
			ID:        p.ID,
			Name:      p.Name,
			UpdatedAt: p.UpdatedAt,
			Cells:     len(p.Regular) + len(p.Naesin),
			Active:    p.ID == active.ID,
		}
		if sum.Active {
			s.Profile = sum
		}
		s.Profiles = append(s.Profiles, sum)
	}
	return s
}

// SlotCount returns the number of slots per day.
func (s Snapshot) SlotCount() int {
	return schedule.SlotCount(s.Settings.SlotMinutes)
}

// Map returns the cells of a plan.
func (s Snapshot) Map(plan schedule.Plan) schedule.SlotMap {
	if plan == schedule.PlanNaesin {
		return s.Naesin
	}
	return s.Regular
}

// Entries returns the compressed entries of a plan.
func (s Snapshot) Entries(plan schedule.Plan) []schedule.Entry {
	return schedule.BuildEntries(s.Map(plan), s.Settings.SlotMinutes)
}

// Conflicts returns the runs where both plans are occupied.
func (s Snapshot) Conflicts() []schedule.ConflictEntry {
	return schedule.BuildConflicts(s.Regular, s.Naesin, s.Settings.SlotMinutes)
}

// KnownSubjects returns the complete subjects in Korean order.
func (s Snapshot) KnownSubjects() []string {
	return subject.FilterComplete(s.allSubjects)
}

// HiddenSubjects returns subjects left behind by interrupted typing.
func (s Snapshot) HiddenSubjects() []string {
	return subject.Hidden(s.allSubjects)
}

// ColorFor returns the colour a subject would be painted with.
func (s Snapshot) ColorFor(name string) string {
	return s.Colors.Resolve(name)
}

// Timetable returns the active profile's plans for export.
func (s Snapshot) Timetable() export.Timetable {
	return export.Timetable{
		Title:       s.Profile.Name,
		SlotMinutes: s.Settings.SlotMinutes,
		Regular:     s.Regular,
		Naesin:      s.Naesin,
	}
}

// GridCell is what one grid position shows in a view.
type GridCell struct {
	// Subject is the label of the cell; empty for a free cell. Conflicts
	// show both sides as "regular/naesin".
	Subject string
	Color   string
	// Start is true on the first slot of a run; later slots of the same
	// run usually repeat nothing.
	Start      bool
	Conflict   bool
	NaesinOnly bool
}

// CellAt returns the content of (day, slot) in a view. The compare view
// shows regular cells, naesin-only cells and conflicts; the other views
// show a single plan.
func (s Snapshot) CellAt(view profile.ViewMode, day, slot int) GridCell {
	reg, hasReg := s.Regular.Get(day, slot)
	nae, hasNae := s.Naesin.Get(day, slot)

	switch view {
	case profile.ViewRegular:
		if !hasReg {
			return GridCell{}
		}
		return GridCell{Subject: reg.Subject, Color: reg.Color, Start: schedule.RunStart(s.Regular, day, slot)}
	case profile.ViewNaesin:
		if !hasNae {
			return GridCell{}
		}
		return GridCell{Subject: nae.Subject, Color: nae.Color, Start: schedule.RunStart(s.Naesin, day, slot)}
	}

	switch {
	case hasReg && hasNae:
		start := slot == 0 || !schedule.InConflict(s.Regular, s.Naesin, day, slot-1) ||
			schedule.RunStart(s.Regular, day, slot) || schedule.RunStart(s.Naesin, day, slot)
		return GridCell{
			Subject:  reg.Subject + "/" + nae.Subject,
			Color:    reg.Color,
			Start:    start,
			Conflict: true,
		}
	case hasReg:
		return GridCell{Subject: reg.Subject, Color: reg.Color, Start: schedule.RunStart(s.Regular, day, slot)}
	case hasNae:
		return GridCell{Subject: nae.Subject, Color: nae.Color, Start: schedule.RunStart(s.Naesin, day, slot), NaesinOnly: true}
	}
	return GridCell{}
}
