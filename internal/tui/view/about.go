package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AboutModel contains the fields shown on the About tab.
type AboutModel struct {
	Source         string
	PortfolioURL   string
	FeaturedURL    string
	PortfolioCount int
	FeaturedCount  int
	Available      int
	PageSize       int
	Watching       bool
}

// AboutStyles groups styles for the About tab.
type AboutStyles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
}

// RenderAbout renders the About tab.
func RenderAbout(model AboutModel, styles AboutStyles) string {
	watch := "off"
	if model.Watching {
		watch = "on"
	}
	rows := []struct{ label, value string }{
		{"Source", model.Source},
		{"Portfolio", model.PortfolioURL},
		{"Featured", model.FeaturedURL},
		{"Artworks", strconv.Itoa(model.PortfolioCount) + " (" + strconv.Itoa(model.Available) + " available)"},
		{"Showcase", strconv.Itoa(model.FeaturedCount)},
		{"Page size", strconv.Itoa(model.PageSize)},
		{"Watching", watch},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("atelier") + "\n\n")
	for _, r := range rows {
		b.WriteString(styles.Label.Render(padRight(r.label, 11)) + styles.Body.Render(r.value) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
