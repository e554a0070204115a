package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/view"
)

// handleMouseMsg handles left clicks. A click outside the detail box closes
// it; otherwise clicks select tabs, filters, pages and cards.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.UI.Mouse {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.controller.Presenter().Open() {
		if !m.overlay.Contains(msg.X, msg.Y, m.width, m.height, m.renderDetail()) {
			m.controller.DismissDetail()
		}
		return m, nil
	}

	l := m.layout()
	switch {
	case msg.Y == 0:
		_, tabs := view.RenderTabs(tabLabels, int(m.tab), m.width, m.styles.tabStyles())
		if i, ok := view.ControlAt(tabs, msg.X); ok {
			m.tab = Tab(i)
		}
	case m.tab == TabAbout:
	case msg.Y == l.controlsRow && m.tab == TabPortfolio:
		_, filters := view.RenderFilters(view.FilterModel{Labels: filterLabels, Active: int(m.controller.Filter())},
			lipgloss.Width(filterPrefix), m.styles.controlStyles())
		if i, ok := view.ControlAt(filters, msg.X); ok {
			m.controller.ApplyFilter(gallery.FilterMode(i))
		}
	case msg.Y == l.paginationRow:
		m.clickPage(msg.X)
	case msg.Y >= l.gridTop && msg.Y < l.gridTop+l.visibleRows*view.CardHeight:
		m.clickCard(l, msg.X, msg.Y-l.gridTop)
	}
	return m, nil
}

func (m Model) clickPage(x int) {
	if m.tab == TabPortfolio {
		v := m.controller.PortfolioView()
		_, controls := view.RenderPagination(view.PaginationModel{Page: v.Page, Pages: v.Pages}, m.styles.controlStyles())
		if p, ok := view.ControlAt(controls, x); ok {
			m.controller.SelectPage(p)
		}
		return
	}
	v := m.controller.FeaturedView()
	_, controls := view.RenderPagination(view.PaginationModel{Page: v.Page, Pages: v.Pages}, m.styles.controlStyles())
	if p, ok := view.ControlAt(controls, x); ok {
		m.controller.SelectFeaturedPage(p)
	}
}

// clickCard activates the portfolio card under (x, y) or hovers the featured
// card there. y is relative to the top of the grid.
func (m Model) clickCard(l screenLayout, x, y int) {
	if m.tab == TabPortfolio {
		v := m.controller.PortfolioView()
		start, end := l.visible(v.Cursor, len(v.Cards))
		i, ok := l.grid.CardAt(x, y, end-start)
		if !ok {
			return
		}
		m.controller.SetCursor(start + i)
		m.controller.ActivateCursor()
		return
	}
	v := m.controller.FeaturedView()
	start, end := l.visible(v.Cursor, len(v.Items))
	if i, ok := l.grid.CardAt(x, y, end-start); ok {
		m.controller.MoveFeaturedCursor(start + i - v.Cursor)
	}
}
