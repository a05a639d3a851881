package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW int
	// StatusBar and SubjectBar are pre-rendered single lines.
	StatusBar   string
	SubjectBar  string
	InputLines  []string
	InputFocus  bool
	MessageText string
	MessageErr  bool
	HelpText    string

	BarStyle        lipgloss.Style
	MessageStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	HelpStyle       lipgloss.Style
	InputStyle      lipgloss.Style
	InputFocusStyle lipgloss.Style
	Bg              lipgloss.Color
}

// FooterFixedLines is the number of footer lines besides the input box.
const FooterFixedLines = 4

// FooterHeight returns the height of the footer for inputLines lines of
// input, including the input box border.
func FooterHeight(inputLines int) int {
	return FooterFixedLines + max(1, inputLines) + 2
}

// RenderFooter renders the status bar, subject bar, input box, message and
// help lines.
func RenderFooter(model FooterModel) string {
	inputStyle := model.InputStyle
	if model.InputFocus {
		inputStyle = model.InputFocusStyle
	}
	msgStyle := model.MessageStyle
	if model.MessageErr {
		msgStyle = model.ErrorStyle
	}

	lines := []string{
		FitLine(model.InnerW, model.BarStyle, model.StatusBar),
		FitLine(model.InnerW, model.BarStyle, model.SubjectBar),
		RenderPrompt(model.InnerW, inputStyle, model.InputLines),
		FitLine(model.InnerW, msgStyle, model.MessageText),
		FitLine(model.InnerW, model.HelpStyle, model.HelpText),
	}
	s := strings.Join(lines, "\n")
	return PlaceBox(model.InnerW, FooterHeight(len(model.InputLines)), lipgloss.Bottom, s, model.Bg)
}
