package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/javiermolinar/atelier/internal/config"
	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/commands"
)

type fakeSource struct {
	artworks []gallery.Artwork
	featured []gallery.Featured
	err      error
}

func (f fakeSource) Artworks(ctx context.Context, name string) ([]gallery.Artwork, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.artworks, nil
}

func (f fakeSource) Featured(ctx context.Context, name string) ([]gallery.Featured, error) {
	return f.featured, nil
}

func makeArtworks(n int, available ...int) []gallery.Artwork {
	items := make([]gallery.Artwork, n)
	for i := range items {
		items[i] = gallery.Artwork{
			Title:  fmt.Sprintf("Work %02d", i),
			Image:  fmt.Sprintf("img/%02d.jpg", i),
			Style:  "Abstract",
			Size:   "50x70",
			Medium: "Oil",
		}
	}
	for _, i := range available {
		items[i].Available = true
	}
	return items
}

// drain runs cmd and every command batched under it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", updated)
		}
		m = next
	}
	return m
}

func press(keys ...string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "enter":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEsc})
		case "tab":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyTab})
		default:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
	return msgs
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newLoadedModel(t *testing.T, src fakeSource, opts ...ModelOption) Model {
	t.Helper()
	m := New(config.Default(), src, opts...)
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return apply(t, m, drain(m.Init())...)
}

func TestInit_LoadsBothDatasets(t *testing.T) {
	src := fakeSource{
		artworks: makeArtworks(20),
		featured: []gallery.Featured{{Title: "Hero"}},
	}
	m := newLoadedModel(t, src)

	if got := m.Controller().Portfolio().Len(); got != 20 {
		t.Fatalf("expected 20 artworks, got %d", got)
	}
	if got := m.Controller().Featured().Len(); got != 1 {
		t.Fatalf("expected 1 featured item, got %d", got)
	}
	v := m.Controller().PortfolioView()
	if len(v.Cards) != 16 || v.Pages != 2 || v.Page != 1 {
		t.Errorf("expected page 1 of 2 with 16 cards, got page %d of %d with %d", v.Page, v.Pages, len(v.Cards))
	}
}

func TestLoadFailure_LogsOnceAndKeepsGridEmpty(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	src := fakeSource{err: errors.New("connection refused")}

	m := newLoadedModel(t, src, WithLogger(zap.New(core)))

	if got := logs.FilterMessage("load failed").Len(); got != 1 {
		t.Fatalf("expected exactly one load failure entry, got %d", got)
	}
	entry := logs.All()[0]
	if entry.ContextMap()["dataset"] != string(commands.PortfolioDataset) {
		t.Errorf("expected dataset field, got %v", entry.ContextMap())
	}

	v := m.Controller().PortfolioView()
	if len(v.Cards) != 0 || v.Pages != 0 {
		t.Errorf("expected empty grid without page controls, got %d cards, %d pages", len(v.Cards), v.Pages)
	}
	screen := ansi.Strip(m.View())
	if strings.Contains(screen, "connection refused") || strings.Contains(strings.ToLower(screen), "error") {
		t.Errorf("expected the failure to stay out of the UI, got:\n%s", screen)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	m := New(config.Default(), fakeSource{})
	first := m.Controller().BeginPortfolioLoad()
	second := m.Controller().BeginPortfolioLoad()

	m = apply(t, m,
		commands.PortfolioLoadedMsg{Gen: second, Items: makeArtworks(3)},
		commands.PortfolioLoadedMsg{Gen: first, Items: makeArtworks(20)},
	)

	if got := m.Controller().Portfolio().Len(); got != 3 {
		t.Fatalf("expected the newer response to win, got %d artworks", got)
	}
}

func TestKeys_PageDetailAndRestore(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(20)})

	m = apply(t, m, press("n", "l", "l", "enter")...)
	p := m.Controller().Presenter()
	if !p.Open() {
		t.Fatal("expected detail to open")
	}
	// local 2 on page 2 is global 18
	if got := p.Detail().Index; got != 18 {
		t.Fatalf("expected detail for index 18, got %d", got)
	}
	if got := p.Detail().Title; got != "Work 18" {
		t.Errorf("expected Work 18, got %q", got)
	}

	m = apply(t, m, press("esc")...)
	if p.Open() {
		t.Fatal("expected esc to close the detail")
	}
	v := m.Controller().PortfolioView()
	if v.Page != 2 || v.Cursor != 2 {
		t.Errorf("expected focus restored to page 2 cursor 2, got page %d cursor %d", v.Page, v.Cursor)
	}
}

func TestKeys_CloseControl(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(4)})
	for _, k := range []string{"x", "enter"} {
		m = apply(t, m, press("enter")...)
		if !m.Controller().Presenter().Open() {
			t.Fatalf("expected detail to open before %s", k)
		}
		m = apply(t, m, press(k)...)
		if m.Controller().Presenter().Open() {
			t.Errorf("expected %s to close the detail", k)
		}
	}
}

func TestKeys_FilterAvailable(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(20, 1, 7, 15)})

	m = apply(t, m, press("v")...)
	v := m.Controller().PortfolioView()
	if len(v.Cards) != 3 || v.Pages != 0 {
		t.Fatalf("expected 3 cards without page controls, got %d cards, %d pages", len(v.Cards), v.Pages)
	}
	for i, want := range []int{1, 7, 15} {
		if v.Cards[i].Index != want {
			t.Errorf("card %d: expected index %d, got %d", i, want, v.Cards[i].Index)
		}
	}

	m = apply(t, m, press("a")...)
	if got := len(m.Controller().PortfolioView().Cards); got != 20 {
		t.Errorf("expected all 20 cards unpaginated, got %d", got)
	}

	m = apply(t, m, press("f")...)
	if got := m.Controller().PortfolioView().Pages; got != 2 {
		t.Errorf("expected pagination restored, got %d pages", got)
	}
}

func TestKeys_CopyImage(t *testing.T) {
	var copied string
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(2)}, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	m = apply(t, m, press("enter")...)
	updated, cmd := m.Update(press("y")[0])
	m = apply(t, updated.(Model), drain(cmd)...)
	if copied != "img/00.jpg" {
		t.Fatalf("expected image reference to be copied, got %q", copied)
	}
	if !strings.Contains(m.statusMsg, "img/00.jpg") {
		t.Errorf("expected status to mention the copied reference, got %q", m.statusMsg)
	}
	if !m.Controller().Presenter().Open() {
		t.Error("expected the detail to stay open after copying")
	}
}

func TestKeys_CopyImageFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(1)},
		WithLogger(zap.New(core)),
		WithClipboard(func(string) error { return errors.New("no clipboard utility") }))

	m = apply(t, m, press("enter")...)
	updated, cmd := m.Update(press("y")[0])
	m = apply(t, updated.(Model), drain(cmd)...)
	if m.statusMsg != "Copy failed" {
		t.Errorf("expected copy failure status, got %q", m.statusMsg)
	}
	if got := logs.FilterMessage("command failed").Len(); got != 1 {
		t.Errorf("expected one warning, got %d", got)
	}
}

func TestKeys_Tabs(t *testing.T) {
	m := newLoadedModel(t, fakeSource{})
	if m.tab != TabPortfolio {
		t.Fatalf("expected portfolio tab first, got %v", m.tab)
	}
	m = apply(t, m, press("tab")...)
	if m.tab != TabAbout {
		t.Errorf("expected About after tab, got %v", m.tab)
	}
	m = apply(t, m, press("1")...)
	if m.tab != TabFeatured {
		t.Errorf("expected Featured after 1, got %v", m.tab)
	}
}

func TestFeatured_CursorHovers(t *testing.T) {
	src := fakeSource{featured: []gallery.Featured{
		{Title: "Hero", Description: "First description"},
		{Title: "Quiet", Description: "Second description"},
	}}
	m := newLoadedModel(t, src)
	m = apply(t, m, press("1", "l")...)

	hovered, ok := m.Controller().FeaturedView().Hovered()
	if !ok || hovered.Title != "Quiet" {
		t.Fatalf("expected Quiet to be hovered, got %+v, %v", hovered, ok)
	}
	screen := ansi.Strip(m.View())
	if !strings.Contains(screen, "Second description") || strings.Contains(screen, "First description") {
		t.Errorf("expected only the hovered description, got:\n%s", screen)
	}
}

func TestMouse_ClickCardThenOutside(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(20)})
	l := m.layout()

	m = apply(t, m, click(l.grid.CardW+2, l.gridTop+1))
	p := m.Controller().Presenter()
	if !p.Open() || p.Detail().Index != 1 {
		t.Fatalf("expected clicking the second card to open it, got open=%v index=%d", p.Open(), p.Detail().Index)
	}

	m = apply(t, m, click(m.width/2, m.height/2))
	if !p.Open() {
		t.Fatal("expected a click inside the detail to keep it open")
	}

	m = apply(t, m, click(0, 0))
	if p.Open() {
		t.Fatal("expected a click outside the detail to close it")
	}
}

func TestMouse_PaginationAndFilters(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(20, 3)})
	l := m.layout()

	// "Page 1 of 2  " is 13 cells; the second control covers columns 16 to 18
	m = apply(t, m, click(17, l.paginationRow))
	if got := m.Controller().PortfolioView().Page; got != 2 {
		t.Fatalf("expected page 2 after clicking its control, got %d", got)
	}

	// "Filter: " then " Pages " " All " "[...]"; Available starts at 8+7+1+5+1
	m = apply(t, m, click(23, l.controlsRow))
	if m.Controller().Filter() != gallery.FilterAvailable {
		t.Fatalf("expected available filter, got %v", m.Controller().Filter())
	}
}

func TestMouse_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Mouse = false
	m := New(cfg, fakeSource{artworks: makeArtworks(4)})
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = apply(t, m, drain(m.Init())...)

	m = apply(t, m, click(2, m.layout().gridTop+1))
	if m.Controller().Presenter().Open() {
		t.Fatal("expected clicks to be ignored with mouse disabled")
	}
}

func TestDocumentChanged_ReloadsMatchingDataset(t *testing.T) {
	changes := make(fakeChanges, 1)
	changes <- "unrelated.json" // answers the watch started by Init
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(2)}, WithWatcher(changes))
	before := m.Controller().Portfolio().Generation()

	updated, cmd := m.Update(commands.DocumentChangedMsg{Name: config.Default().Source.PortfolioFile})
	m = updated.(Model)

	changes <- "unrelated.json"
	m = apply(t, m, drain(cmd)...)
	if got := m.Controller().Portfolio().Generation(); got <= before {
		t.Errorf("expected a newer portfolio generation, got %d (was %d)", got, before)
	}
}

type fakeChanges chan string

func (f fakeChanges) Changes() <-chan string { return f }

func TestView_RendersTabsGridAndPages(t *testing.T) {
	m := newLoadedModel(t, fakeSource{artworks: makeArtworks(20)})
	screen := ansi.Strip(m.View())

	for _, want := range []string{"Featured", "Portfolio", "About", "Work 00", "Work 15", "Page 1 of 2", "[1]", "16 of 20 artworks"} {
		if !strings.Contains(screen, want) {
			t.Errorf("expected screen to contain %q", want)
		}
	}
	if strings.Contains(screen, "Work 16") {
		t.Error("expected page 2 items to stay off page 1")
	}
	if lines := strings.Split(screen, "\n"); len(lines) != 40 {
		t.Errorf("expected 40 lines, got %d", len(lines))
	}
}

func TestView_Detail(t *testing.T) {
	items := makeArtworks(1)
	items[0].Artist = "R. Vale"
	items[0].Description = "Warm sand."
	m := newLoadedModel(t, fakeSource{artworks: items})
	m = apply(t, m, press("enter")...)

	screen := ansi.Strip(m.View())
	for _, want := range []string{"Work 00", "R. Vale", "Warm sand.", "img/00.jpg", "Copy image"} {
		if !strings.Contains(screen, want) {
			t.Errorf("expected detail to contain %q", want)
		}
	}
}

func TestView_Loading(t *testing.T) {
	m := New(config.Default(), fakeSource{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected Loading... before the first resize, got %q", got)
	}
}
