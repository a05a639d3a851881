package tui

import (
	"github.com/javiermolinar/timegrid/internal/tui/input"
	"github.com/javiermolinar/timegrid/internal/tui/view"
)

// maxInputLines caps the input box, suggestions included.
const maxInputLines = 4

var promptCommands = []input.PromptCommand{
	{Name: "/new", Description: "Create a profile and switch to it"},
	{Name: "/rename", Description: "Rename the active profile"},
	{Name: "/delete", Description: "Delete the active profile"},
	{Name: "/profile", Description: "Switch to a profile by name"},
	{Name: "/subject", Description: "Select a subject"},
	{Name: "/color", Description: "Pick a preset (1-7, name) or #rrggbb"},
	{Name: "/forget", Description: "Remove a subject and its cells"},
	{Name: "/cleanup", Description: "Remove leftover partial subjects"},
	{Name: "/slot", Description: "Set slot duration (30 or 60)"},
	{Name: "/export", Description: "Write the timetable to an .xlsx file"},
	{Name: "/copy", Description: "Copy the entry list"},
	{Name: "/help", Description: "Show key bindings"},
}

// suggestions lists the commands matching what has been typed so far.
func suggestions(typed string) []view.PromptCommand {
	matches := input.PromptMatchingCommands(typed, promptCommands)
	out := make([]view.PromptCommand, 0, len(matches))
	for _, c := range matches {
		out = append(out, view.PromptCommand{Name: c.Name, Description: c.Description})
	}
	return out
}

// inputLines returns the content lines of the input box for the current
// mode at the given inner width.
func (m Model) inputLines(innerW int) []string {
	contentW := max(1, innerW-2)
	var state view.PromptState
	switch m.mode {
	case ModePrompt:
		state = view.PromptState{Value: m.prompt.Value(), Cursor: "█", Suggestions: suggestions(m.prompt.Value())}
	case ModeSubject:
		state = view.PromptState{Label: "subject", Value: m.subject.Value(), Cursor: "█"}
	default:
		state = view.PromptState{Label: "subject", Value: m.snap.UI.Subject}
	}

	lines := view.PromptLines(state, contentW)
	return view.ClampPromptLines(lines, maxInputLines, contentW)
}
