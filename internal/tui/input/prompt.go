// Package input parses what is typed into the editor's prompt and subject
// field.
package input

import (
	"strings"
	"unicode/utf8"
)

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// ParsePrompt splits "/name arguments" into the lower-cased command name
// (with its slash) and the trimmed arguments. ok is false when input is not
// a command.
func ParsePrompt(input string) (name, args string, ok bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") || len(input) == 1 {
		return "", "", false
	}
	name, args, _ = strings.Cut(input, " ")
	return strings.ToLower(name), strings.TrimSpace(args), true
}

// SubjectAutocomplete completes typed against known subjects. It returns the
// first subject that starts with typed and is longer than it.
func SubjectAutocomplete(typed string, subjects []string) (string, bool) {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return "", false
	}
	n := utf8.RuneCountInString(typed)
	for _, s := range subjects {
		if strings.HasPrefix(s, typed) && utf8.RuneCountInString(s) > n {
			return s, true
		}
	}
	return "", false
}
