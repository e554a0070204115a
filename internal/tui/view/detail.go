package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/atelier/internal/gallery"
)

// DetailStyles groups styles for the artwork detail box.
type DetailStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Index        lipgloss.Style
	Label        lipgloss.Style
	Body         lipgloss.Style
	Image        lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

const labelWidth = 8

// detailButtons are the close controls. The first one is the default.
var detailButtons = []string{"[Enter/x] Close", "[y] Copy image", "[Esc] Back"}

// RenderDetail renders the detail box for d, width cells wide including the
// frame. Empty fields keep their rows so every artwork has the same layout.
func RenderDetail(d gallery.Detail, width int, styles DetailStyles) string {
	bodyW := max(width-styles.Frame.GetHorizontalFrameSize(), labelWidth+1)

	title := d.Title
	if title == "" {
		title = "Untitled"
	}
	index := styles.Index.Render("#" + strconv.Itoa(d.Index))
	title = fit(title, bodyW-lipgloss.Width(index)-1)

	var b strings.Builder
	b.WriteString(styles.Header.Render(styles.Title.Render(title) + styles.Body.Render(" ") + index))
	b.WriteString("\n\n")
	b.WriteString(renderDetailBody(d, bodyW, styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Footer.Render(renderButtons(styles)))
	return styles.Frame.Render(b.String())
}

func renderDetailBody(d gallery.Detail, width int, styles DetailStyles) string {
	rows := []struct{ label, value string }{
		{"Artist", d.Artist},
		{"Size", d.Size},
		{"Medium", d.Medium},
		{"Year", d.Year},
		{"Style", d.Style},
	}

	var body strings.Builder
	body.WriteString(styles.Image.Render(fit(d.Image, width)) + "\n\n")
	for _, r := range rows {
		body.WriteString(styles.Label.Render(padRight(r.label+":", labelWidth)))
		body.WriteString(styles.Body.Render(fit(r.value, width-labelWidth)) + "\n")
	}
	if d.Description != "" {
		body.WriteString("\n")
		for _, line := range wrap(d.Description, width, 6) {
			body.WriteString(styles.Body.Render(line) + "\n")
		}
	}
	return strings.TrimSuffix(body.String(), "\n")
}

func renderButtons(styles DetailStyles) string {
	parts := make([]string, 0, len(detailButtons))
	for i, label := range detailButtons {
		style := styles.Button
		if i == 0 {
			style = styles.ButtonActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, styles.Body.Render(" "))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
