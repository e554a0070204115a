package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/atelier/internal/config"
	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/commands"
	"github.com/javiermolinar/atelier/internal/tui/theme"
)

// Tab identifies the visible page.
type Tab int

const (
	TabFeatured Tab = iota
	TabPortfolio
	TabAbout
	tabCount
)

var tabLabels = []string{"Featured", "Portfolio", "About"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabLabels[t]
}

// Model is the main TUI model. State shared across updates lives behind the
// controller pointer; the rest is copied on every update.
type Model struct {
	// Dependencies
	ctx     context.Context
	config  *config.Config
	source  commands.Source
	watcher commands.Changes
	logger  *zap.Logger
	copy    func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	controller *gallery.Controller

	keys    keyMap
	help    help.Model
	overlay detailOverlay

	tab    Tab
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithWatcher reloads a dataset whenever the watcher reports its document.
func WithWatcher(w commands.Changes) ModelOption {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithContext sets the context loads run under.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		if fn != nil {
			m.copy = fn
		}
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, src commands.Source, opts ...ModelOption) Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.Default)
	}
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.Ellipsis = styles.HelpStyle

	m := Model{
		ctx:        context.Background(),
		config:     cfg,
		source:     src,
		logger:     zap.NewNop(),
		copy:       writeClipboard,
		theme:      t,
		styles:     styles,
		controller: gallery.NewController(cfg.Gallery.PageSize, cfg.Gallery.FeaturedPageSize),
		keys:       defaultKeyMap(),
		help:       h,
		overlay:    newDetailOverlay(styles.ModalBgColor, styles.ModalBackdropColor, styles.palette.Modal.Muted),
		tab:        TabPortfolio,
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Controller exposes the gallery state the model renders.
func (m Model) Controller() *gallery.Controller {
	return m.controller
}

// Init starts both dataset loads and, when configured, the file watch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.reload()}
	if m.watcher != nil {
		cmds = append(cmds, commands.WaitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// reload requests both datasets under fresh generations.
func (m Model) reload() tea.Cmd {
	return tea.Batch(m.loadPortfolio(), m.loadFeatured())
}

func (m Model) loadPortfolio() tea.Cmd {
	gen := m.controller.BeginPortfolioLoad()
	m.logger.Debug("loading", zap.String("dataset", string(commands.PortfolioDataset)), zap.Uint64("gen", gen))
	return commands.LoadPortfolio(m.ctx, m.source, m.config.Source.PortfolioFile, gen)
}

func (m Model) loadFeatured() tea.Cmd {
	gen := m.controller.BeginFeaturedLoad()
	m.logger.Debug("loading", zap.String("dataset", string(commands.FeaturedDataset)), zap.Uint64("gen", gen))
	return commands.LoadFeatured(m.ctx, m.source, m.config.Source.FeaturedFile, gen)
}

// Run starts the TUI and blocks until it exits.
func Run(ctx context.Context, cfg *config.Config, src commands.Source, opts ...ModelOption) error {
	opts = append([]ModelOption{WithContext(ctx)}, opts...)
	model := New(cfg, src, opts...)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(model, progOpts...).Run()
	return err
}
