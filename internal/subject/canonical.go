// Package subject canonicalises subject names, filters out text captured
// mid-composition and assigns subject colours.
package subject

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Validation errors.
var (
	ErrEmpty      = errors.New("subject cannot be empty")
	ErrIncomplete = errors.New("subject name is incomplete")
)

// MinLength is the shortest accepted subject name, in characters.
const MinLength = 2

const (
	compatJamoFirst = '\u3130'
	compatJamoLast  = '\u318F'
	codaFirst       = '\u11A8'
	codaLast        = '\u11FF'
)

// Canonicalize trims s and collapses internal whitespace runs to one space.
func Canonicalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasCompatJamo reports whether s contains an isolated Hangul consonant or
// vowel, which only appears while a syllable is still being composed.
func HasCompatJamo(s string) bool {
	for _, r := range s {
		if r >= compatJamoFirst && r <= compatJamoLast {
			return true
		}
	}
	return false
}

// IsComplete reports whether a canonical subject is a finished name.
func IsComplete(canonical string) bool {
	if canonical == "" {
		return false
	}
	if HasCompatJamo(canonical) {
		return false
	}
	return utf8.RuneCountInString(canonical) >= MinLength
}

// Validate canonicalises raw and checks that the result is complete.
func Validate(raw string) (string, error) {
	s := Canonicalize(raw)
	if s == "" {
		return "", ErrEmpty
	}
	if !IsComplete(s) {
		return "", fmt.Errorf("%w: %q", ErrIncomplete, s)
	}
	return s, nil
}

// FilterComplete returns the complete names from subjects, deduplicated and
// sorted in Korean collation order. A name is also dropped when another
// candidate equals it plus one trailing consonant (e.g. "수하" next to "수학").
func FilterComplete(subjects []string) []string {
	candidates := uniqueCanonical(subjects)

	complete := candidates[:0]
	for _, s := range candidates {
		if IsComplete(s) {
			complete = append(complete, s)
		}
	}

	decomposed := make([][]rune, len(complete))
	for i, s := range complete {
		decomposed[i] = []rune(norm.NFD.String(s))
	}

	var out []string
	for i, s := range complete {
		if !isCodaIntermediate(i, decomposed) {
			out = append(out, s)
		}
	}
	sortKorean(out)
	return out
}

// Hidden returns the canonical candidates that FilterComplete suppresses.
func Hidden(subjects []string) []string {
	visible := make(map[string]bool)
	for _, s := range FilterComplete(subjects) {
		visible[s] = true
	}
	var out []string
	for _, s := range uniqueCanonical(subjects) {
		if !visible[s] {
			out = append(out, s)
		}
	}
	sortKorean(out)
	return out
}

// isCodaIntermediate reports whether decomposed[i] is another candidate
// with its final coda mark missing.
func isCodaIntermediate(i int, decomposed [][]rune) bool {
	s := decomposed[i]
	for j, t := range decomposed {
		if j == i || len(t) != len(s)+1 {
			continue
		}
		if !hasRunePrefix(t, s) {
			continue
		}
		if extra := t[len(t)-1]; extra >= codaFirst && extra <= codaLast {
			return true
		}
	}
	return false
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func uniqueCanonical(subjects []string) []string {
	seen := make(map[string]bool, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, raw := range subjects {
		s := Canonicalize(raw)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func sortKorean(s []string) {
	collate.New(language.Korean).SortStrings(s)
}
