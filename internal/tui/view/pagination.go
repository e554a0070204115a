package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaginationModel describes the page controls under a grid.
type PaginationModel struct {
	Page  int
	Pages int
}

// PaginationStyles groups styles for the page controls.
type PaginationStyles struct {
	Label   lipgloss.Style
	Control lipgloss.Style
	Active  lipgloss.Style
}

// Control is one clickable button and its horizontal extent in its row.
type Control struct {
	Value int
	Start int
	End   int
}

// RenderPagination renders a page label followed by one control per page,
// marking the control equal to the current page. It renders nothing when
// there are no pages.
func RenderPagination(model PaginationModel, styles PaginationStyles) (string, []Control) {
	if model.Pages <= 0 {
		return "", nil
	}

	label := styles.Label.Render("Page " + strconv.Itoa(model.Page) + " of " + strconv.Itoa(model.Pages) + "  ")
	var b strings.Builder
	b.WriteString(label)
	x := lipgloss.Width(label)

	controls := make([]Control, 0, model.Pages)
	for p := 1; p <= model.Pages; p++ {
		btn := button(strconv.Itoa(p), p == model.Page, styles)
		w := lipgloss.Width(btn)
		controls = append(controls, Control{Value: p, Start: x, End: x + w})
		b.WriteString(btn)
		x += w
	}
	return b.String(), controls
}

// ControlAt returns the value of the control covering column x.
func ControlAt(controls []Control, x int) (int, bool) {
	for _, c := range controls {
		if x >= c.Start && x < c.End {
			return c.Value, true
		}
	}
	return 0, false
}

// FilterModel describes the filter buttons above the portfolio grid.
type FilterModel struct {
	Labels []string
	Active int // index into Labels, -1 for none
}

// RenderFilters renders the filter buttons with the active one highlighted.
// Control values are indexes into Labels; offset is the starting column.
func RenderFilters(model FilterModel, offset int, styles PaginationStyles) (string, []Control) {
	var b strings.Builder
	sep := styles.Label.Render(" ")
	x := offset
	controls := make([]Control, 0, len(model.Labels))
	for i, label := range model.Labels {
		if i > 0 {
			b.WriteString(sep)
			x += lipgloss.Width(sep)
		}
		btn := button(label, i == model.Active, styles)
		w := lipgloss.Width(btn)
		controls = append(controls, Control{Value: i, Start: x, End: x + w})
		b.WriteString(btn)
		x += w
	}
	return b.String(), controls
}

// button brackets the active control so it reads without colour.
func button(label string, active bool, styles PaginationStyles) string {
	if active {
		return styles.Active.Render("[" + label + "]")
	}
	return styles.Control.Render(" " + label + " ")
}

// TabStyles groups styles for the tab bar.
type TabStyles struct {
	Tab    lipgloss.Style
	Active lipgloss.Style
	Bar    lipgloss.Style
}

// RenderTabs renders the tab bar across width cells.
func RenderTabs(labels []string, active, width int, styles TabStyles) (string, []Control) {
	parts := make([]string, 0, len(labels))
	controls := make([]Control, 0, len(labels))
	x := 0
	for i, label := range labels {
		style := styles.Tab
		if i == active {
			style = styles.Active
		}
		tab := style.Render(label)
		w := lipgloss.Width(tab)
		controls = append(controls, Control{Value: i, Start: x, End: x + w})
		parts = append(parts, tab)
		x += w
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width <= 0 {
		return row, controls
	}
	return styles.Bar.Width(width).Render(row), controls
}
