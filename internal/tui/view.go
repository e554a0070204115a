package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/view"
)

const filterPrefix = "Filter: "

var filterLabels = []string{"Pages", "All", "Available"}

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	screen := view.Screen{
		Width:   m.width,
		Height:  m.height,
		Base:    m.renderAppContent(),
		Overlay: m.overlay,
	}
	if m.controller.Presenter().Open() {
		screen.Detail = m.renderDetail()
	}
	return view.Compose(screen)
}

func (m Model) renderAppContent() string {
	l := m.layout()
	if l.gridH < view.CardHeight || m.width < view.MinCardWidth {
		return view.Region(m.width, m.height, lipgloss.Top, "Terminal too small", m.styles.colorBg)
	}

	tabs, _ := view.RenderTabs(tabLabels, int(m.tab), m.width, m.styles.tabStyles())
	header := m.placeBox(m.width, headerH, lipgloss.Top, tabs)

	var controls, grid, pagination string
	switch m.tab {
	case TabPortfolio:
		controls, grid, pagination = m.renderPortfolio(l)
	case TabFeatured:
		controls, grid, pagination = m.renderFeatured(l)
	default:
		grid = view.RenderAbout(m.aboutModel(), m.styles.aboutStyles())
	}

	footer := view.RenderFooter(view.FooterModel{
		InnerW:      m.width,
		FooterH:     footerH,
		StatusText:  m.statusMsg,
		HelpText:    m.help.View(m.helpKeys()),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.placeBox(m.width, controlsH, lipgloss.Top, controls),
		m.placeBox(m.width, l.gridH, lipgloss.Top, grid),
		m.placeBox(m.width, paginationH, lipgloss.Top, pagination),
		footer,
	)
	app := m.styles.AppStyle.Render(content)
	return view.Region(m.width, m.height, lipgloss.Top, app, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.Region(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) renderPortfolio(l screenLayout) (controls, grid, pagination string) {
	v := m.controller.PortfolioView()

	filters, _ := view.RenderFilters(view.FilterModel{Labels: filterLabels, Active: int(v.Filter)},
		lipgloss.Width(filterPrefix), m.styles.controlStyles())
	count := "  " + strconv.Itoa(len(v.Cards)) + " of " + strconv.Itoa(v.Total) + " artworks"
	controls = m.styles.ControlLabelStyle.Render(filterPrefix) + filters + m.styles.ControlLabelStyle.Render(count)

	start, end := l.visible(v.Cursor, len(v.Cards))
	cards := make([]view.CardModel, 0, end-start)
	for i := start; i < end; i++ {
		card := v.Cards[i]
		style, sizeMedium := card.Summary()
		cards = append(cards, view.CardModel{
			Title:      card.Title(),
			Style:      style,
			SizeMedium: sizeMedium,
			Available:  card.Artwork.Available,
			Selected:   i == v.Cursor,
		})
	}
	grid = view.RenderGrid(cards, l.grid, emptyText(v.Loaded, "No artworks"), m.styles.gridStyles())

	// Pages is zero while a filter is active or the dataset is empty.
	pagination, _ = view.RenderPagination(view.PaginationModel{Page: v.Page, Pages: v.Pages}, m.styles.controlStyles())
	return controls, grid, pagination
}

func (m Model) renderFeatured(l screenLayout) (controls, grid, pagination string) {
	v := m.controller.FeaturedView()
	controls = m.styles.ControlLabelStyle.Render("Featured works  " + strconv.Itoa(m.controller.Featured().Len()) + " pieces")

	start, end := l.visible(v.Cursor, len(v.Items))
	items := make([]view.FeaturedModel, 0, end-start)
	for i := start; i < end; i++ {
		f := v.Items[i]
		bg, fg := m.styles.Tint(f.Bg)
		items = append(items, view.FeaturedModel{
			Title:       f.Title,
			Description: f.Description,
			Image:       f.Image,
			Bg:          bg,
			Fg:          fg,
			Hovered:     i == v.Cursor,
		})
	}
	grid = view.RenderFeatured(items, l.grid, emptyText(v.Loaded, "Nothing featured"), m.styles.featuredStyles())
	pagination, _ = view.RenderPagination(view.PaginationModel{Page: v.Page, Pages: v.Pages}, m.styles.controlStyles())
	return controls, grid, pagination
}

func emptyText(loaded bool, empty string) string {
	if !loaded {
		return ""
	}
	return empty
}

func (m Model) renderDetail() string {
	return view.RenderDetail(m.controller.Presenter().Detail(), detailWidth, m.styles.detailStyles())
}

func (m Model) aboutModel() view.AboutModel {
	portfolio := m.controller.Portfolio()
	model := view.AboutModel{
		Source:         m.config.Source.BaseURL,
		PortfolioURL:   m.config.Source.PortfolioFile,
		FeaturedURL:    m.config.Source.FeaturedFile,
		PortfolioCount: portfolio.Len(),
		FeaturedCount:  m.controller.Featured().Len(),
		Available:      len(gallery.Filter(portfolio, gallery.Available)),
		PageSize:       m.controller.PageSize(),
		Watching:       m.watcher != nil,
	}
	if loc, ok := m.source.(interface{ Locate(string) string }); ok {
		model.PortfolioURL = loc.Locate(m.config.Source.PortfolioFile)
		model.FeaturedURL = loc.Locate(m.config.Source.FeaturedFile)
	}
	return model
}
