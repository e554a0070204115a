package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/atelier/internal/gallery"
)

const (
	indexWidth = 5
	titleWidth = 28
)

// PrintCardRow prints one card as a single line: index, title, style and
// size • medium, with an availability marker.
func PrintCardRow(w io.Writer, card gallery.Card, width int) {
	style, sizeMedium := card.Summary()

	index := fmt.Sprintf("#%-*d", indexWidth-1, card.Index)
	title := truncate(card.Title(), titleWidth)
	title += strings.Repeat(" ", titleWidth-ansi.StringWidth(title))

	marker := " "
	if card.Artwork.Available {
		marker = formatAvailable("●")
	}

	meta := strings.TrimSpace(strings.Join(nonEmpty(style, sizeMedium), " · "))
	// marker, index, title, two gaps of two
	metaWidth := width - 2 - indexWidth - titleWidth - 4
	fmt.Fprintf(w, "%s %s  %s  %s\n", marker, formatMuted(index), formatTitle(title), formatMuted(truncate(meta, metaWidth)))
}

// PrintDetail prints every detail field, empty ones included.
func PrintDetail(w io.Writer, d gallery.Detail) {
	title := d.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(w, "%s  %s\n\n", formatHeader(title), formatMuted("#"+strconv.Itoa(d.Index)))

	rows := []struct{ label, value string }{
		{"Image", d.Image},
		{"Artist", d.Artist},
		{"Size", d.Size},
		{"Medium", d.Medium},
		{"Year", d.Year},
		{"Style", d.Style},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-8s %s\n", r.label+":", r.value)
	}
	if d.Description != "" {
		fmt.Fprintf(w, "\n%s\n", ansi.Wordwrap(d.Description, 72, ""))
	}
}

// truncate shortens s to width cells with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
