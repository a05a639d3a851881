package subject

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// ErrInvalidColor is returned for colours that are not "#rrggbb".
var ErrInvalidColor = errors.New("color must be #rrggbb")

// Preset is a named palette colour.
type Preset struct {
	Key   string
	Value string
}

// Palette is the fixed set of preset colours. The order is part of the
// auto-colour contract and must not change.
var Palette = []Preset{
	{Key: "red", Value: "#e53935"},
	{Key: "orange", Value: "#fb8c00"},
	{Key: "yellow", Value: "#fdd835"},
	{Key: "green", Value: "#43a047"},
	{Key: "blue", Value: "#1e88e5"},
	{Key: "indigo", Value: "#3949ab"},
	{Key: "violet", Value: "#8e24aa"},
}

// DefaultColor is the colour selected in a fresh state.
const DefaultColor = "#1e88e5"

// hashIndex is h = h*31 + c over UTF-16 code units, wrapping at 32 bits.
func hashIndex(s string, mod int) int {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(c)
	}
	return int(h % uint32(mod))
}

// AutoColor returns the palette colour suggested for a canonical subject.
func AutoColor(subject string) string {
	return Palette[hashIndex(subject, len(Palette))].Value
}

// PresetByKey looks up a palette colour by name ("blue") or 1-based index ("5").
func PresetByKey(key string) (string, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, p := range Palette {
		if p.Key == key || fmt.Sprint(i+1) == key {
			return p.Value, true
		}
	}
	return "", false
}

// ParseColor accepts a palette key or a "#rrggbb" value and returns the
// normalised lower-case hex form.
func ParseColor(s string) (string, error) {
	if v, ok := PresetByKey(s); ok {
		return v, nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !ValidColor(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return s, nil
}

// ValidColor reports whether s is a "#rrggbb" colour.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Table is a profile's subject to colour override table.
// Keys are canonical subject names.
type Table map[string]string

// Get returns the override colour for subject. Keys written by older data
// with non-canonical spacing are still found.
func (t Table) Get(subject string) (string, bool) {
	s := Canonicalize(subject)
	if c, ok := t[s]; ok && c != "" {
		return c, true
	}
	if subject != s {
		if c, ok := t[subject]; ok && c != "" {
			return c, true
		}
	}
	return "", false
}

// Set stores an override colour under the canonical subject.
func (t Table) Set(subject, color string) error {
	s, err := Validate(subject)
	if err != nil {
		return err
	}
	if !ValidColor(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	t[s] = color
	return nil
}

// Resolve returns the override colour, falling back to AutoColor.
func (t Table) Resolve(subject string) string {
	if c, ok := t.Get(subject); ok {
		return c
	}
	return AutoColor(Canonicalize(subject))
}

// Assign resolves the colour for subject and persists it the first time the
// subject is seen. Existing entries are never overwritten.
func (t Table) Assign(subject string) (color string, created bool, err error) {
	s, err := Validate(subject)
	if err != nil {
		return "", false, err
	}
	if c, ok := t.Get(s); ok {
		return c, false, nil
	}
	c := AutoColor(s)
	t[s] = c
	return c, true, nil
}

// Remove deletes every key that canonicalises to subject.
func (t Table) Remove(subject string) bool {
	s := Canonicalize(subject)
	removed := false
	for k := range t {
		if Canonicalize(k) == s {
			delete(t, k)
			removed = true
		}
	}
	return removed
}
