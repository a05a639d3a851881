package input

import "testing"

var testCommands = []PromptCommand{
	{Name: "/new", Description: "New profile"},
	{Name: "/rename", Description: "Rename profile"},
	{Name: "/resolve", Description: "Resolve conflict"},
}

func TestPromptMatchingCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "new", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "full", input: "/new", want: 1},
		{name: "prefix", input: "/re", want: 2},
		{name: "upper", input: "/NE", want: 1},
		{name: "with_space", input: "/new x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, testCommands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	value, ok := PromptAutocomplete("/n", testCommands)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/new " {
		t.Fatalf("value = %q, want %q", value, "/new ")
	}
	if _, ok := PromptAutocomplete("/x", testCommands); ok {
		t.Fatal("unexpected autocomplete")
	}
}

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{input: "/new 2학기  내신 ", wantName: "/new", wantArgs: "2학기  내신", wantOK: true},
		{input: "  /Slot 30", wantName: "/slot", wantArgs: "30", wantOK: true},
		{input: "/cleanup", wantName: "/cleanup", wantArgs: "", wantOK: true},
		{input: "/", wantOK: false},
		{input: "수학", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, args, ok := ParsePrompt(tt.input)
			if ok != tt.wantOK || name != tt.wantName || args != tt.wantArgs {
				t.Errorf("ParsePrompt(%q) = %q, %q, %v", tt.input, name, args, ok)
			}
		})
	}
}

func TestSubjectAutocomplete(t *testing.T) {
	subjects := []string{"국어", "수학", "수학II", "영어"}

	tests := []struct {
		typed  string
		want   string
		wantOK bool
	}{
		{typed: "수", want: "수학", wantOK: true},
		{typed: "수학", want: "수학II", wantOK: true},
		{typed: "영어", wantOK: false},
		{typed: "과", wantOK: false},
		{typed: " ", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := SubjectAutocomplete(tt.typed, subjects)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("SubjectAutocomplete(%q) = %q, %v", tt.typed, got, ok)
		}
	}
}
