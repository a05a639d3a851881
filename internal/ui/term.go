package ui

import (
	"os"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/javiermolinar/timegrid/internal/schedule"
)

// Color definitions for consistent styling across the UI.
var (
	// Regular plan: bold blue
	colorRegular = color.New(color.FgBlue, color.Bold)

	// Naesin plan: bold green
	colorNaesin = color.New(color.FgGreen, color.Bold)

	// Conflicts and failures: red
	colorConflict = color.New(color.FgRed, color.Bold)

	// Warnings: yellow
	colorWarning = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatPlan formats a plan name in its plan colour.
func formatPlan(p schedule.Plan) string {
	if p == schedule.PlanNaesin {
		return colorNaesin.Sprint(string(p))
	}
	return colorRegular.Sprint(string(p))
}

// formatConflict formats text for conflicts.
func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

// formatWarning formats text for warnings.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatSwatch renders s on the subject's "#rrggbb" background.
func formatSwatch(hex, s string) string {
	r, g, b, ok := parseRGB(hex)
	if !ok {
		return s
	}
	c := color.New(color.FgBlack).AddBgRGB(r, g, b)
	if 299*r+587*g+114*b < 150000 {
		c = color.New(color.FgWhite).AddBgRGB(r, g, b)
	}
	return c.Sprint(s)
}

func parseRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 {
		return 0, 0, 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8), true
}
