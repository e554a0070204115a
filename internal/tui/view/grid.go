package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// CardHeight is the rendered height of a grid card including its border.
	CardHeight = 6
	// MinCardWidth is the narrowest card the grid lays out.
	MinCardWidth = 22
	cardGap      = 1
	cardLines    = CardHeight - 2
)

// GridLayout places fixed-height cards into columns.
type GridLayout struct {
	Cols  int
	CardW int
}

// NewGridLayout fits as many cards of at least MinCardWidth as the width
// allows and spreads the remaining width across them.
func NewGridLayout(width int) GridLayout {
	if width < MinCardWidth {
		return GridLayout{Cols: 1, CardW: max(width, 8)}
	}
	cols := (width + cardGap) / (MinCardWidth + cardGap)
	cols = max(cols, 1)
	cardW := (width - (cols-1)*cardGap) / cols
	return GridLayout{Cols: cols, CardW: cardW}
}

// Rows returns how many rows n cards occupy.
func (g GridLayout) Rows(n int) int {
	if n <= 0 || g.Cols <= 0 {
		return 0
	}
	return (n + g.Cols - 1) / g.Cols
}

// CardAt maps a cell relative to the grid origin to a card position.
func (g GridLayout) CardAt(x, y, n int) (int, bool) {
	if x < 0 || y < 0 || g.Cols <= 0 {
		return 0, false
	}
	col := x / (g.CardW + cardGap)
	if col >= g.Cols || x%(g.CardW+cardGap) >= g.CardW {
		return 0, false
	}
	i := (y/CardHeight)*g.Cols + col
	if i >= n {
		return 0, false
	}
	return i, true
}

// CardModel contains the fields needed to render one portfolio card.
type CardModel struct {
	Title      string
	Style      string
	SizeMedium string
	Available  bool
	Selected   bool
}

// GridStyles groups styles for portfolio cards.
type GridStyles struct {
	Card          lipgloss.Style
	CardAlt       lipgloss.Style
	CardSelected  lipgloss.Style
	Title         lipgloss.Style
	Meta          lipgloss.Style
	Available     lipgloss.Style
	Sold          lipgloss.Style
	Details       lipgloss.Style
	DetailsActive lipgloss.Style
	Empty         lipgloss.Style
}

// RenderGrid renders portfolio cards row by row.
func RenderGrid(cards []CardModel, layout GridLayout, empty string, styles GridStyles) string {
	if len(cards) == 0 {
		return styles.Empty.Render(empty)
	}
	boxes := make([]string, len(cards))
	for i, card := range cards {
		style := styles.Card
		if i%2 == 1 {
			style = styles.CardAlt
		}
		if card.Selected {
			style = styles.CardSelected
		}
		boxes[i] = renderCard(card, layout.CardW, style, styles)
	}
	return joinRows(boxes, layout)
}

func renderCard(card CardModel, width int, box lipgloss.Style, styles GridStyles) string {
	inner := cardInnerWidth(width, box)
	bg := box.GetBackground()

	marker := styles.Sold.Background(bg).Render("○ ")
	if card.Available {
		marker = styles.Available.Background(bg).Render("● ")
	}
	title := marker + styles.Title.Background(bg).Render(fit(card.Title, inner-2))
	details := styles.Details.Background(bg).Render("[ Details ]")
	if card.Selected {
		details = styles.DetailsActive.Render("[ Details ]")
	}

	lines := []string{
		title,
		styles.Meta.Background(bg).Render(fit(card.Style, inner)),
		styles.Meta.Background(bg).Render(fit(card.SizeMedium, inner)),
		details,
	}
	return box.Width(width - box.GetHorizontalBorderSize()).Height(cardLines).
		Render(strings.Join(lines, "\n"))
}

// FeaturedModel contains the fields needed to render one featured card.
type FeaturedModel struct {
	Title       string
	Description string
	Image       string
	Bg          lipgloss.Color
	Fg          lipgloss.Color
	Hovered     bool
}

// FeaturedStyles groups styles for featured cards.
type FeaturedStyles struct {
	Card        lipgloss.Style
	CardHovered lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
	Empty       lipgloss.Style
}

// RenderFeatured renders featured cards. The hovered card shows its
// description in place of the image reference.
func RenderFeatured(items []FeaturedModel, layout GridLayout, empty string, styles FeaturedStyles) string {
	if len(items) == 0 {
		return styles.Empty.Render(empty)
	}
	boxes := make([]string, len(items))
	for i, item := range items {
		box := styles.Card
		if item.Hovered {
			box = styles.CardHovered
		}
		box = box.Background(item.Bg)
		inner := cardInnerWidth(layout.CardW, box)

		title := styles.Title.Foreground(item.Fg).Background(item.Bg)
		body := styles.Body.Foreground(item.Fg).Background(item.Bg)
		lines := []string{title.Render(fit(item.Title, inner))}
		if item.Hovered {
			for _, l := range wrap(item.Description, inner, cardLines-1) {
				lines = append(lines, body.Render(l))
			}
		} else {
			lines = append(lines, body.Faint(true).Render(fit(item.Image, inner)))
		}
		boxes[i] = box.Width(layout.CardW - box.GetHorizontalBorderSize()).Height(cardLines).
			Render(strings.Join(lines, "\n"))
	}
	return joinRows(boxes, layout)
}

func joinRows(boxes []string, layout GridLayout) string {
	cols := max(layout.Cols, 1)
	gap := strings.Repeat(" ", cardGap)
	rows := make([]string, 0, layout.Rows(len(boxes)))
	for start := 0; start < len(boxes); start += cols {
		end := min(start+cols, len(boxes))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, boxes[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}

func cardInnerWidth(width int, box lipgloss.Style) int {
	return max(width-box.GetHorizontalFrameSize(), 1)
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// wrap word-wraps s to width and keeps at most maxLines lines.
func wrap(s string, width, maxLines int) []string {
	if s == "" || width <= 0 || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = fit(lines[maxLines-1]+"…", width)
	}
	for i, l := range lines {
		lines[i] = fit(l, width)
	}
	return lines
}
