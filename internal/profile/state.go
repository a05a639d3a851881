package profile

import (
	"fmt"
	"time"

	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

// Version is the persisted schema version.
const Version = 4

// ViewMode selects which plans the grid shows. It never affects editing.
type ViewMode string

const (
	ViewCompare ViewMode = "compare"
	ViewRegular ViewMode = "regular"
	ViewNaesin  ViewMode = "naesin"
)

// Valid returns true if the view mode is a known value.
func (v ViewMode) Valid() bool {
	switch v {
	case ViewCompare, ViewRegular, ViewNaesin:
		return true
	default:
		return false
	}
}

// Next cycles compare -> regular -> naesin -> compare.
func (v ViewMode) Next() ViewMode {
	switch v {
	case ViewCompare:
		return ViewRegular
	case ViewRegular:
		return ViewNaesin
	default:
		return ViewCompare
	}
}

// ParseViewMode parses a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	v := ViewMode(s)
	if !v.Valid() {
		return "", fmt.Errorf("view must be compare, regular or naesin: %q", s)
	}
	return v, nil
}

// Tool is the active editing tool.
type Tool string

const (
	ToolPaint Tool = "paint"
	ToolErase Tool = "erase"
)

// Valid returns true if the tool is a known value.
func (t Tool) Valid() bool {
	return t == ToolPaint || t == ToolErase
}

// ParseTool parses a tool name.
func ParseTool(s string) (Tool, error) {
	t := Tool(s)
	if !t.Valid() {
		return "", fmt.Errorf("tool must be paint or erase: %q", s)
	}
	return t, nil
}

// Settings are the process-wide editor settings.
type Settings struct {
	SlotMinutes    int           `json:"slotMinutes"`
	ViewMode       ViewMode      `json:"viewMode"`
	ActivePlan     schedule.Plan `json:"activePlan"`
	Tool           Tool          `json:"tool"`
	PreventOverlap bool          `json:"preventOverlap"`
	AutoColor      bool          `json:"autoColor"`
	Locked         bool          `json:"locked"`
}

// DefaultSettings returns the settings of a fresh state.
func DefaultSettings() Settings {
	return Settings{
		SlotMinutes:    schedule.DefaultSlotMinutes,
		ViewMode:       ViewCompare,
		ActivePlan:     schedule.PlanRegular,
		Tool:           ToolPaint,
		PreventOverlap: true,
		AutoColor:      true,
		Locked:         false,
	}
}

// UIState is the editor's transient selection, persisted so a session
// resumes where it stopped.
type UIState struct {
	Subject string
	Color   string
	Anchor  *schedule.SlotKey
}

// DefaultUI returns the UI state of a fresh state.
func DefaultUI() UIState {
	return UIState{Color: subject.DefaultColor}
}

// State is the whole application document.
type State struct {
	Version         int
	Profiles        []*Profile
	ActiveProfileID string
	Settings        Settings
	UI              UIState
}

// NewState returns a fresh state with a single default profile.
func NewState(settings Settings, now time.Time) *State {
	p := New(DefaultProfileName, now)
	return &State{
		Version:         Version,
		Profiles:        []*Profile{p},
		ActiveProfileID: p.ID,
		Settings:        settings,
		UI:              DefaultUI(),
	}
}

// Active returns the active profile. A dangling id falls back to the first
// profile and repairs the pointer.
func (s *State) Active() *Profile {
	if p := s.Find(s.ActiveProfileID); p != nil {
		return p
	}
	s.ActiveProfileID = s.Profiles[0].ID
	return s.Profiles[0]
}

// Find returns the profile with the given id, or nil.
func (s *State) Find(id string) *Profile {
	for _, p := range s.Profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AnyCells reports whether any profile holds cells.
func (s *State) AnyCells() bool {
	for _, p := range s.Profiles {
		if p.HasCells() {
			return true
		}
	}
	return false
}

// Add appends a new profile and makes it active.
func (s *State) Add(name string, now time.Time) (*Profile, error) {
	n, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	p := New(n, now)
	s.Profiles = append(s.Profiles, p)
	s.ActiveProfileID = p.ID
	return p, nil
}

// Rename renames the active profile.
func (s *State) Rename(name string, now time.Time) error {
	n, err := CleanName(name)
	if err != nil {
		return err
	}
	p := s.Active()
	p.Name = n
	p.Touch(now)
	return nil
}

// Remove deletes the active profile and activates the first remaining one.
func (s *State) Remove() (*Profile, error) {
	if len(s.Profiles) <= 1 {
		return nil, ErrLastProfile
	}
	active := s.Active()
	kept := s.Profiles[:0]
	for _, p := range s.Profiles {
		if p.ID != active.ID {
			kept = append(kept, p)
		}
	}
	s.Profiles = kept
	s.ActiveProfileID = s.Profiles[0].ID
	return active, nil
}

// Switch activates the profile with the given id.
func (s *State) Switch(id string) error {
	if s.Find(id) == nil {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	s.ActiveProfileID = id
	return nil
}

// Lookup finds a profile by id or, failing that, by exact name.
func (s *State) Lookup(idOrName string) (*Profile, error) {
	if p := s.Find(idOrName); p != nil {
		return p, nil
	}
	for _, p := range s.Profiles {
		if p.Name == idOrName {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, idOrName)
}
