// Package theme provides color themes for the TUI.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Regular     lipgloss.Color
	Naesin      lipgloss.Color
	Conflict    lipgloss.Color
	Warning     lipgloss.Color
	Anchor      lipgloss.Color

	ConflictBg lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnWarning  lipgloss.Color
	TextOnConflict lipgloss.Color
	TextOnAnchor   lipgloss.Color

	light bool
	bg    string
	fg    string
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)
	conflictBgHex := subjectBg(t.Conflict, t.Bg, isLight)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Regular:     lipgloss.Color(t.Regular),
		Naesin:      lipgloss.Color(t.Naesin),
		Conflict:    lipgloss.Color(t.Conflict),
		Warning:     lipgloss.Color(t.Warning),
		Anchor:      lipgloss.Color(t.Anchor),

		ConflictBg: lipgloss.Color(conflictBgHex),

		TextOnAccent:   lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning:  lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnConflict: lipgloss.Color(chooseTextColor(conflictBgHex, t.Bg, t.Fg)),
		TextOnAnchor:   lipgloss.Color(chooseTextColor(t.Anchor, t.Bg, t.Fg)),

		light: isLight,
		bg:    t.Bg,
		fg:    t.Fg,
	}
}

// SubjectBg returns the cell background for a subject colour, toned down
// so text stays readable on the theme background.
func (p *Palette) SubjectBg(hex string) lipgloss.Color {
	return lipgloss.Color(subjectBg(hex, p.bg, p.light))
}

// SubjectFg returns the text colour with the best contrast on SubjectBg.
func (p *Palette) SubjectFg(hex string) lipgloss.Color {
	return lipgloss.Color(chooseTextColor(subjectBg(hex, p.bg, p.light), p.bg, p.fg))
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func subjectBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

// Floor for each channel of a darkened colour, so cells never go black.
const minChannel = 40.0 / 255.0

// darkenColor halves the brightness of a hex colour for dark backgrounds.
func darkenColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return colorful.Color{
		R: math.Max(c.R*0.5, minChannel),
		G: math.Max(c.G*0.5, minChannel),
		B: math.Max(c.B*0.5, minChannel),
	}.Hex()
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

// contrastRatio is the WCAG contrast between two colours, from 1 to 21.
func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b; ratio is clamped to [0, 1].
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
