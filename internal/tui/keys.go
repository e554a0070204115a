package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/commands"
)

type keyMap struct {
	Quit        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Featured    key.Binding
	Portfolio   key.Binding
	About       key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	Open        key.Binding
	FilterAll   key.Binding
	FilterAvail key.Binding
	FilterNone  key.Binding
	Reload      key.Binding
	Close       key.Binding
	Cancel      key.Binding
	Copy        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab")),
		Featured:    key.NewBinding(key.WithKeys("1")),
		Portfolio:   key.NewBinding(key.WithKeys("2")),
		About:       key.NewBinding(key.WithKeys("3")),
		Left:        key.NewBinding(key.WithKeys("h", "left")),
		Right:       key.NewBinding(key.WithKeys("l", "right")),
		Up:          key.NewBinding(key.WithKeys("k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down")),
		NextPage:    key.NewBinding(key.WithKeys("n", "]", "pgdown"), key.WithHelp("n/p", "page")),
		PrevPage:    key.NewBinding(key.WithKeys("p", "[", "pgup")),
		FirstPage:   key.NewBinding(key.WithKeys("g", "home")),
		LastPage:    key.NewBinding(key.WithKeys("G", "end")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		FilterAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		FilterAvail: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "available")),
		FilterNone:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "pages")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Close:       key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "close")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy image")),
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (m Model) helpKeys() helpKeys {
	k := m.keys
	switch {
	case m.controller.Presenter().Open():
		return helpKeys{k.Close, k.Cancel, k.Copy}
	case m.tab == TabPortfolio:
		return helpKeys{k.Open, k.NextPage, k.FilterAll, k.FilterAvail, k.FilterNone, k.Reload, k.NextTab, k.Quit}
	case m.tab == TabFeatured:
		return helpKeys{k.NextPage, k.Reload, k.NextTab, k.Quit}
	default:
		return helpKeys{k.Reload, k.NextTab, k.Quit}
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", zap.String("key", msg.String()), zap.Stringer("tab", m.tab))

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.controller.Presenter().Open() {
		return m.handleDetailKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Featured):
		m.tab = TabFeatured
		return m, nil
	case key.Matches(msg, m.keys.Portfolio):
		m.tab = TabPortfolio
		return m, nil
	case key.Matches(msg, m.keys.About):
		m.tab = TabAbout
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}

	switch m.tab {
	case TabPortfolio:
		return m.handlePortfolioKeys(msg)
	case TabFeatured:
		return m.handleFeaturedKeys(msg)
	}
	return m, nil
}

// handlePortfolioKeys handles grid navigation, paging and filters.
func (m Model) handlePortfolioKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controller
	cols := m.layout().grid.Cols

	switch {
	case key.Matches(msg, m.keys.Left):
		c.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		c.MoveCursor(1)
	case key.Matches(msg, m.keys.Up):
		c.MoveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		c.MoveCursor(cols)
	case key.Matches(msg, m.keys.NextPage):
		c.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		c.PrevPage()
	case key.Matches(msg, m.keys.FirstPage):
		c.SelectPage(1)
	case key.Matches(msg, m.keys.LastPage):
		c.SelectPage(gallery.PageCount(c.Portfolio().Len(), c.PageSize()))
	case key.Matches(msg, m.keys.FilterAll):
		c.ApplyFilter(gallery.FilterAll)
	case key.Matches(msg, m.keys.FilterAvail):
		c.ApplyFilter(gallery.FilterAvailable)
	case key.Matches(msg, m.keys.FilterNone):
		c.ApplyFilter(gallery.FilterNone)
	case key.Matches(msg, m.keys.Open):
		c.ActivateCursor()
	}
	return m, nil
}

// handleFeaturedKeys moves the hover cursor and pages the showcase.
func (m Model) handleFeaturedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controller
	cols := m.layout().grid.Cols

	switch {
	case key.Matches(msg, m.keys.Left):
		c.MoveFeaturedCursor(-1)
	case key.Matches(msg, m.keys.Right):
		c.MoveFeaturedCursor(1)
	case key.Matches(msg, m.keys.Up):
		c.MoveFeaturedCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		c.MoveFeaturedCursor(cols)
	case key.Matches(msg, m.keys.NextPage):
		c.NextFeaturedPage()
	case key.Matches(msg, m.keys.PrevPage):
		c.PrevFeaturedPage()
	case key.Matches(msg, m.keys.FirstPage):
		c.SelectFeaturedPage(1)
	case key.Matches(msg, m.keys.LastPage):
		c.SelectFeaturedPage(gallery.PageCount(c.Featured().Len(), c.FeaturedPageSize()))
	}
	return m, nil
}

// handleDetailKeys handles keys while the detail overlay is open.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Close):
		m.controller.DismissDetail()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		image := m.controller.Presenter().Detail().Image
		if image == "" {
			return m, statusCmd("No image reference")
		}
		return m, commands.CopyText(m.copy, image)
	}
	return m, nil
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}
