// Package theme provides the colour themes for the TUI. Themes are TOML files
// embedded at build time; the file name is the theme name.
package theme

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Default is used for an empty or unknown theme name.
const Default = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Card background
	BgSelection string `toml:"bg_selection"` // Cursor card, active tab
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Captions, inactive tabs
	Accent      string `toml:"accent"`       // Titles, active page, borders
	Available   string `toml:"available"`    // Works for sale
	Sold        string `toml:"sold"`         // Works not for sale
	Warning     string `toml:"warning"`      // Status line on errors

	// Detail box; empty keys fall back to the base colours
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

var registry = sync.OnceValues(func() (map[string]Theme, error) {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil, err
	}
	themes := make(map[string]Theme, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		t, err := parse(name, "embedded/"+e.Name())
		if err != nil {
			return nil, err
		}
		themes[name] = t
	}
	return themes, nil
})

func parse(name, file string) (Theme, error) {
	data, err := embeddedThemes.ReadFile(file)
	if err != nil {
		return Theme{}, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	t.applyDefaults()
	if err := t.validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	return t, nil
}

// Load returns the named theme. Unknown names get the default theme.
func Load(name string) (*Theme, error) {
	themes, err := registry()
	if err != nil {
		return nil, err
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		t = themes[Default]
	}
	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BaseBg = coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	t.ModalBorder = coalesce(t.ModalBorder, t.Accent)
	t.TextPrimary = coalesce(t.TextPrimary, t.Fg)
	t.TextMuted = coalesce(t.TextMuted, t.FgMuted)
	t.Highlight = coalesce(t.Highlight, t.BgSelection, t.Accent)
	t.Available = coalesce(t.Available, t.Accent)
	t.Sold = coalesce(t.Sold, t.FgMuted)
	t.Warning = coalesce(t.Warning, t.Accent)
}

// validate requires every colour to be a #rrggbb token.
func (t *Theme) validate() error {
	colors := []struct{ key, value string }{
		{"bg", t.Bg}, {"bg_highlight", t.BgHighlight}, {"bg_selection", t.BgSelection},
		{"fg", t.Fg}, {"fg_muted", t.FgMuted}, {"accent", t.Accent},
		{"available", t.Available}, {"sold", t.Sold}, {"warning", t.Warning},
		{"base_bg", t.BaseBg}, {"modal_border", t.ModalBorder},
		{"text_primary", t.TextPrimary}, {"text_muted", t.TextMuted}, {"highlight", t.Highlight},
	}
	for _, c := range colors {
		if _, ok := parseHex(c.value); !ok || len(c.value) != 7 {
			return fmt.Errorf("%s: want #rrggbb, got %q", c.key, c.value)
		}
	}
	return nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names, sorted.
func Available() []string {
	themes, err := registry()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
