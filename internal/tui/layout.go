package tui

import "github.com/javiermolinar/atelier/internal/tui/view"

const (
	headerH     = 2 // tab bar and a blank line
	controlsH   = 2 // filter or title row and a blank line
	paginationH = 1
	footerH     = 2 // status and help
	detailWidth = 60
)

// screenLayout holds the row offsets of each region for rendering and
// mouse hit-testing.
type screenLayout struct {
	width         int
	controlsRow   int
	gridTop       int
	gridH         int
	paginationRow int
	visibleRows   int
	grid          view.GridLayout
}

func (m Model) layout() screenLayout {
	gridH := max(m.height-headerH-controlsH-paginationH-footerH, 0)
	l := screenLayout{
		width:       m.width,
		controlsRow: headerH,
		gridTop:     headerH + controlsH,
		gridH:       gridH,
		visibleRows: max(gridH/view.CardHeight, 1),
		grid:        view.NewGridLayout(m.width),
	}
	l.paginationRow = l.gridTop + gridH
	return l
}

// scrollRow returns the first card row to draw so the cursor stays visible.
func (l screenLayout) scrollRow(cursor int) int {
	if l.grid.Cols <= 0 {
		return 0
	}
	row := cursor / l.grid.Cols
	return max(row-l.visibleRows+1, 0)
}

// visible returns the [start, end) card range drawn for n cards.
func (l screenLayout) visible(cursor, n int) (int, int) {
	start := min(l.scrollRow(cursor)*l.grid.Cols, n)
	end := min(start+l.visibleRows*l.grid.Cols, n)
	return start, end
}
