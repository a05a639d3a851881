package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

type document struct {
	Version         int          `json:"version"`
	Profiles        []profileDoc `json:"profiles"`
	ActiveProfileID string       `json:"activeProfileId"`
	Settings        Settings     `json:"settings"`
	UI              uiDoc        `json:"ui"`
}

type profileDoc struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Regular       schedule.SlotMap  `json:"regular"`
	Naesin        schedule.SlotMap  `json:"naesin"`
	SubjectColors map[string]string `json:"subjectColors"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type uiDoc struct {
	Subject string     `json:"subject"`
	Color   string     `json:"color"`
	Anchor  *anchorDoc `json:"anchor"`
}

type anchorDoc struct {
	Day  int `json:"day"`
	Slot int `json:"slot"`
}

// Encode serialises the state as a version 4 document.
func Encode(s *State) ([]byte, error) {
	doc := document{
		Version:         Version,
		Profiles:        make([]profileDoc, 0, len(s.Profiles)),
		ActiveProfileID: s.ActiveProfileID,
		Settings:        s.Settings,
		UI: uiDoc{
			Subject: s.UI.Subject,
			Color:   s.UI.Color,
		},
	}
	if s.UI.Anchor != nil {
		doc.UI.Anchor = &anchorDoc{Day: s.UI.Anchor.Day, Slot: s.UI.Anchor.Slot}
	}
	for _, p := range s.Profiles {
		colors := map[string]string(p.SubjectColors)
		if colors == nil {
			colors = map[string]string{}
		}
		doc.Profiles = append(doc.Profiles, profileDoc{
			ID:            p.ID,
			Name:          p.Name,
			Regular:       nonNil(p.Regular),
			Naesin:        nonNil(p.Naesin),
			SubjectColors: colors,
			UpdatedAt:     p.UpdatedAt.UTC(),
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

func nonNil(m schedule.SlotMap) schedule.SlotMap {
	if m == nil {
		return schedule.SlotMap{}
	}
	return m
}

// Decode parses a persisted document, repairing whatever it can. It never
// fails: unusable input yields a fresh state built from defaults. The
// returned notes describe each repair made.
func Decode(data []byte, defaults Settings, now time.Time) (*State, []string) {
	if len(data) == 0 {
		return NewState(defaults, now), nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return NewState(defaults, now), []string{"unparsable state replaced with defaults"}
	}

	r := &repairer{now: now}
	st := &State{
		Version:  Version,
		Settings: r.settings(top["settings"], defaults),
	}
	if v, ok := r.number(top["version"]); ok && v != Version {
		r.notef("migrated state from version %d", v)
	}

	var rawProfiles []json.RawMessage
	if !r.decode(top["profiles"], &rawProfiles, "profiles") || len(rawProfiles) == 0 {
		r.notef("no profiles, created default")
	}
	seen := make(map[string]bool)
	for i, raw := range rawProfiles {
		p := r.profile(raw, i, st.Settings.SlotMinutes)
		if p == nil {
			continue
		}
		if seen[p.ID] {
			r.notef("profile %d: duplicate id %s replaced", i, p.ID)
			p.ID = NewID()
		}
		seen[p.ID] = true
		st.Profiles = append(st.Profiles, p)
	}
	if len(st.Profiles) == 0 {
		st.Profiles = []*Profile{New(DefaultProfileName, now)}
	}

	r.decode(top["activeProfileId"], &st.ActiveProfileID, "activeProfileId")
	if st.Find(st.ActiveProfileID) == nil {
		if st.ActiveProfileID != "" {
			r.notef("active profile %q not found, using first", st.ActiveProfileID)
		}
		st.ActiveProfileID = st.Profiles[0].ID
	}

	st.UI = r.ui(top["ui"], st.Settings.SlotMinutes)
	return st, r.notes
}

type repairer struct {
	now   time.Time
	notes []string
}

func (r *repairer) notef(format string, args ...any) {
	r.notes = append(r.notes, fmt.Sprintf(format, args...))
}

// decode unmarshals raw into v, recording a note when a present value has
// the wrong shape. It reports whether v was filled.
func (r *repairer) decode(raw json.RawMessage, v any, field string) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		r.notef("%s: invalid value ignored", field)
		return false
	}
	return true
}

func (r *repairer) number(raw json.RawMessage) (int, bool) {
	var f float64
	if len(raw) == 0 || json.Unmarshal(raw, &f) != nil {
		return 0, false
	}
	return int(f), true
}

func (r *repairer) settings(raw json.RawMessage, defaults Settings) Settings {
	out := defaults
	var fields map[string]json.RawMessage
	if !r.decode(raw, &fields, "settings") {
		return out
	}

	if m, ok := r.number(fields["slotMinutes"]); ok {
		if schedule.ValidSlotMinutes(m) {
			out.SlotMinutes = m
		} else {
			r.notef("settings.slotMinutes: %d not supported", m)
		}
	}

	var s string
	if r.decode(fields["viewMode"], &s, "settings.viewMode") {
		if v := ViewMode(s); v.Valid() {
			out.ViewMode = v
		} else {
			r.notef("settings.viewMode: %q not supported", s)
		}
	}
	s = ""
	if r.decode(fields["activePlan"], &s, "settings.activePlan") {
		if p := schedule.Plan(s); p.Valid() {
			out.ActivePlan = p
		} else {
			r.notef("settings.activePlan: %q not supported", s)
		}
	}
	s = ""
	if r.decode(fields["tool"], &s, "settings.tool") {
		if t := Tool(s); t.Valid() {
			out.Tool = t
		} else {
			r.notef("settings.tool: %q not supported", s)
		}
	}

	r.decode(fields["preventOverlap"], &out.PreventOverlap, "settings.preventOverlap")
	r.decode(fields["autoColor"], &out.AutoColor, "settings.autoColor")
	r.decode(fields["locked"], &out.Locked, "settings.locked")
	return out
}

func (r *repairer) profile(raw json.RawMessage, index, slotMinutes int) *Profile {
	var fields map[string]json.RawMessage
	if !r.decode(raw, &fields, fmt.Sprintf("profiles[%d]", index)) {
		r.notef("profiles[%d]: dropped", index)
		return nil
	}

	p := &Profile{}
	r.decode(fields["id"], &p.ID, "profile.id")
	if p.ID == "" {
		p.ID = NewID()
		r.notef("profiles[%d]: missing id", index)
	}
	r.decode(fields["name"], &p.Name, "profile.name")
	p.Name = subject.Canonicalize(p.Name)
	if p.Name == "" {
		p.Name = PlaceholderName
		r.notef("profiles[%d]: missing name", index)
	}

	p.SubjectColors = r.colors(fields["subjectColors"], index)
	p.Regular = r.slotMap(fields["regular"], index, schedule.PlanRegular, slotMinutes)
	p.Naesin = r.slotMap(fields["naesin"], index, schedule.PlanNaesin, slotMinutes)
	p.UpdatedAt = r.timestamp(fields["updatedAt"])
	return p
}

func (r *repairer) colors(raw json.RawMessage, index int) subject.Table {
	out := subject.Table{}
	var fields map[string]json.RawMessage
	if !r.decode(raw, &fields, fmt.Sprintf("profiles[%d].subjectColors", index)) {
		return out
	}
	for name, v := range fields {
		var c string
		if json.Unmarshal(v, &c) != nil || name == "" || c == "" {
			r.notef("profiles[%d].subjectColors[%q]: dropped", index, name)
			continue
		}
		out[name] = c
	}
	return out
}

func (r *repairer) slotMap(raw json.RawMessage, index int, plan schedule.Plan, slotMinutes int) schedule.SlotMap {
	out := schedule.SlotMap{}
	var fields map[string]json.RawMessage
	if !r.decode(raw, &fields, fmt.Sprintf("profiles[%d].%s", index, plan)) {
		return out
	}

	count := schedule.SlotCount(slotMinutes)
	dropped := 0
	for key, v := range fields {
		k, err := schedule.ParseSlotKey(key)
		if err != nil || k.Slot >= count {
			dropped++
			continue
		}
		var c schedule.Cell
		if json.Unmarshal(v, &c) != nil {
			dropped++
			continue
		}
		c.Subject = subject.Canonicalize(c.Subject)
		if c.Subject == "" {
			dropped++
			continue
		}
		if !subject.ValidColor(c.Color) {
			c.Color = subject.AutoColor(c.Subject)
		}
		out[k] = c
	}
	if dropped > 0 {
		r.notef("profiles[%d].%s: dropped %d invalid cells", index, plan, dropped)
	}
	return out
}

// timestamp accepts RFC 3339 strings and millisecond epoch numbers.
func (r *repairer) timestamp(raw json.RawMessage) time.Time {
	var s string
	if len(raw) > 0 && json.Unmarshal(raw, &s) == nil {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC()
		}
	}
	if ms, ok := r.number(raw); ok && ms > 0 {
		return time.UnixMilli(int64(ms)).UTC()
	}
	return r.now
}

func (r *repairer) ui(raw json.RawMessage, slotMinutes int) UIState {
	out := DefaultUI()
	var fields map[string]json.RawMessage
	if !r.decode(raw, &fields, "ui") {
		return out
	}

	r.decode(fields["subject"], &out.Subject, "ui.subject")
	var c string
	if r.decode(fields["color"], &c, "ui.color") && subject.ValidColor(c) {
		out.Color = c
	}

	var a anchorDoc
	if r.decode(fields["anchor"], &a, "ui.anchor") {
		if a.Day >= 0 && a.Day < schedule.DaysPerWeek && a.Slot >= 0 && a.Slot < schedule.SlotCount(slotMinutes) {
			out.Anchor = &schedule.SlotKey{Day: a.Day, Slot: a.Slot}
		} else {
			r.notef("ui.anchor: %d-%d outside the grid", a.Day, a.Slot)
		}
	}
	return out
}
