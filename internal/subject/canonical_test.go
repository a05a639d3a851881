package subject

import (
	"errors"
	"reflect"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "수학", want: "수학"},
		{input: "  수학  ", want: "수학"},
		{input: "영어   독해", want: "영어 독해"},
		{input: "\t한국사\n심화 ", want: "한국사 심화"},
		{input: "   ", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := Canonicalize(tt.input); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "syllables", input: "수학", want: true},
		{name: "latin", input: "Math", want: true},
		{name: "with space", input: "영어 독해", want: true},
		{name: "empty", input: "", want: false},
		{name: "single syllable", input: "국", want: false},
		{name: "single latin", input: "a", want: false},
		{name: "lone consonant", input: "ㄱ", want: false},
		{name: "trailing consonant jamo", input: "국ㅇ", want: false},
		{name: "vowel jamo inside", input: "수ㅏ학", want: false},
		{name: "jamo in long name", input: "사회문화ㅎ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.input); got != tt.want {
				t.Errorf("IsComplete(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	s, err := Validate("  수학  ")
	if err != nil || s != "수학" {
		t.Errorf("Validate = %q, %v", s, err)
	}
	if _, err := Validate("   "); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := Validate("수ㅎ"); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
	if _, err := Validate("수"); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestFilterComplete(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "composition intermediates",
			input: []string{"수", "수하", "수학"},
			want:  []string{"수학"},
		},
		{
			name:  "keystroke sequence",
			input: []string{"ㄱ", "구", "국", "국ㅇ", "국어"},
			want:  []string{"국어"},
		},
		{
			name:  "dedupes after canonicalising",
			input: []string{"영어", " 영어 ", "영어"},
			want:  []string{"영어"},
		},
		{
			name:  "sorted in korean order",
			input: []string{"수학", "영어", "국어", "과학"},
			want:  []string{"과학", "국어", "수학", "영어"},
		},
		{
			name:  "two marks longer is not an intermediate",
			input: []string{"사", "사회", "사회문"},
			want:  []string{"사회", "사회문"},
		},
		{
			name:  "longer name with extra syllable keeps prefix",
			input: []string{"한국", "한국사"},
			want:  []string{"한국", "한국사"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterComplete(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterComplete(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHidden(t *testing.T) {
	got := Hidden([]string{"수", "수하", "수학", "국어", "ㄱ", " "})
	want := []string{"ㄱ", "수", "수하"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hidden() = %q, want %q", got, want)
	}
}
