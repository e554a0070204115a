package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Available   lipgloss.Color
	Sold        lipgloss.Color
	Warning     lipgloss.Color

	CardBgAlt lipgloss.Color // every other card, for a checkerboard grid

	TextOnAccent    lipgloss.Color
	TextOnSelection lipgloss.Color

	Modal ModalColors

	bg, fg string
}

// ModalColors are the detail box colours.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Backdrop  lipgloss.Color // screen behind the box
}

// NewPalette derives a Palette from t. A nil theme gets the default one.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(Default)
	}

	card := coalesce(t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Available:   lipgloss.Color(t.Available),
		Sold:        lipgloss.Color(t.Sold),
		Warning:     lipgloss.Color(t.Warning),

		CardBgAlt: lipgloss.Color(shade(card, isLight(t.Bg))),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:        lipgloss.Color(coalesce(t.BaseBg, t.BgHighlight, t.Bg)),
			Border:    lipgloss.Color(coalesce(t.ModalBorder, t.Accent)),
			Text:      lipgloss.Color(coalesce(t.TextPrimary, t.Fg)),
			Muted:     lipgloss.Color(coalesce(t.TextMuted, t.FgMuted)),
			Highlight: lipgloss.Color(coalesce(t.Highlight, t.BgSelection, t.Accent)),
			Backdrop:  lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
		},

		bg: t.Bg,
		fg: t.Fg,
	}
}

// Tint returns a card background and a readable foreground for a featured
// item's colour token. Tokens that are not hex colours get the card defaults.
func (p *Palette) Tint(token string) (bg, fg lipgloss.Color) {
	c, ok := parseHex(strings.TrimSpace(token))
	if !ok {
		return p.BgHighlight, p.Fg
	}
	full := c.Hex()
	return lipgloss.Color(full), lipgloss.Color(chooseTextColor(full, p.bg, p.fg))
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(hex string) (colorful.Color, bool) {
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	return c, err == nil
}

func isLight(bg string) bool {
	return luminance(bg) > 0.55
}

// shade moves hex slightly away from the background: darker on light
// themes, lighter on dark ones.
func shade(hex string, light bool) string {
	c, ok := parseHex(hex)
	if !ok {
		return hex
	}
	if light {
		return c.BlendRgb(colorful.Color{}, 0.06).Clamped().Hex()
	}
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.08).Clamped().Hex()
}

// chooseTextColor returns whichever of a and b reads better on bg.
func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

// contrastRatio is the WCAG contrast ratio, from 1 to 21.
func contrastRatio(a, b string) float64 {
	l1, l2 := luminance(a), luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// luminance is the WCAG relative luminance. Invalid colours count as black.
func luminance(hex string) float64 {
	c, ok := parseHex(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
