package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func loadedController(t *testing.T, n int) *Controller {
	t.Helper()
	c := NewController(16, 8)
	gen := c.BeginPortfolioLoad()
	if !c.AcceptPortfolio(gen, artworks(n)) {
		t.Fatal("expected first load to be accepted")
	}
	return c
}

func TestController_EmptyDataset(t *testing.T) {
	c := loadedController(t, 0)
	v := c.PortfolioView()

	if len(v.Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(v.Cards))
	}
	if v.Pages != 0 {
		t.Errorf("expected no page controls, got %d", v.Pages)
	}
	if c.ActivateCursor() {
		t.Error("activating an empty grid should not open the detail view")
	}
}

func TestController_BeforeLoad(t *testing.T) {
	c := NewController(0, 0)
	v := c.PortfolioView()
	if v.Loaded || len(v.Cards) != 0 || v.Pages != 0 {
		t.Errorf("unexpected view before load: %+v", v)
	}
	if c.PageSize() != DefaultPageSize || c.FeaturedPageSize() != DefaultFeaturedPageSize {
		t.Errorf("expected default page sizes, got %d/%d", c.PageSize(), c.FeaturedPageSize())
	}
}

func TestController_DetailFromSecondPage(t *testing.T) {
	c := loadedController(t, 20)
	c.SelectPage(2)
	c.SetCursor(2)

	if !c.ActivateCursor() {
		t.Fatal("expected detail view to open")
	}
	d := c.Presenter().Detail()
	if d.Index != 18 || d.Title != "Artwork 18" {
		t.Errorf("detail = %d %q, want 18 %q", d.Index, d.Title, "Artwork 18")
	}
}

func TestController_DismissRestoresFocus(t *testing.T) {
	c := loadedController(t, 40)
	c.SelectPage(2)
	c.SetCursor(5)
	c.ActivateCursor()

	if !c.DismissDetail() {
		t.Fatal("expected dismiss to close the detail view")
	}
	v := c.PortfolioView()
	if v.Page != 2 || v.Cursor != 5 {
		t.Errorf("restored page %d cursor %d, want 2/5", v.Page, v.Cursor)
	}
	if c.DismissDetail() {
		t.Error("dismiss with nothing open should report false")
	}
}

func TestController_FilterReplacesPagination(t *testing.T) {
	items := artworks(20)
	for _, i := range []int{1, 9, 19} {
		items[i].Available = true
	}
	c := NewController(16, 8)
	c.AcceptPortfolio(c.BeginPortfolioLoad(), items)

	c.ApplyFilter(FilterAvailable)
	v := c.PortfolioView()

	if diff := cmp.Diff([]int{1, 9, 19}, cardIndexes(v.Cards)); diff != "" {
		t.Errorf("filtered cards (-want +got):\n%s", diff)
	}
	if v.Pages != 0 {
		t.Errorf("filtered view should show no page controls, got %d", v.Pages)
	}

	c.SetCursor(2)
	c.ActivateCursor()
	if got := c.Presenter().Detail().Index; got != 19 {
		t.Errorf("filtered activation -> %d, want 19", got)
	}
	c.DismissDetail()
	if c.Filter() != FilterAvailable {
		t.Error("dismiss should keep the filtered view")
	}

	c.SelectPage(1)
	v = c.PortfolioView()
	if v.Filter != FilterNone || len(v.Cards) != 16 || v.Pages != 2 {
		t.Errorf("page selection should restore pagination, got filter %v, %d cards, %d pages", v.Filter, len(v.Cards), v.Pages)
	}
}

func TestController_FilterAllIsUnpaginated(t *testing.T) {
	c := loadedController(t, 20)
	c.ApplyFilter(FilterAll)
	v := c.PortfolioView()
	if len(v.Cards) != 20 || v.Pages != 0 {
		t.Errorf("got %d cards and %d pages, want 20 and 0", len(v.Cards), v.Pages)
	}
}

func TestController_LoadClearsFilterAndPage(t *testing.T) {
	c := loadedController(t, 40)
	c.SelectPage(3)
	c.ApplyFilter(FilterAvailable)

	c.AcceptPortfolio(c.BeginPortfolioLoad(), artworks(20))
	v := c.PortfolioView()
	if v.Filter != FilterNone || v.Page != 1 {
		t.Errorf("reload should restore page 1 without filter, got %v page %d", v.Filter, v.Page)
	}
}

func TestController_StaleLoadDiscarded(t *testing.T) {
	c := NewController(16, 8)
	first := c.BeginPortfolioLoad()
	second := c.BeginPortfolioLoad()

	if !c.AcceptPortfolio(second, artworks(3)) {
		t.Fatal("newest response should be accepted")
	}
	if c.AcceptPortfolio(first, artworks(30)) {
		t.Fatal("stale response should be discarded")
	}
	if got := c.Portfolio().Len(); got != 3 {
		t.Errorf("dataset length = %d, want 3", got)
	}
	if got := c.Portfolio().Generation(); got != second {
		t.Errorf("generation = %d, want %d", got, second)
	}
}

func TestController_LoadClosesDetailWhenIndexGone(t *testing.T) {
	items := artworks(20)
	for _, i := range []int{1, 9, 19} {
		items[i].Available = true
	}
	c := NewController(16, 8)
	c.AcceptPortfolio(c.BeginPortfolioLoad(), items)
	c.ApplyFilter(FilterAvailable)
	c.SetCursor(1)
	c.ActivateCursor()
	if got := c.Presenter().Detail().Index; got != 9 {
		t.Fatalf("detail index = %d, want 9", got)
	}

	c.AcceptPortfolio(c.BeginPortfolioLoad(), items[:5])

	if c.Presenter().Open() {
		t.Fatalf("detail for index 9 should close after loading 5 records")
	}
	if c.DismissDetail() {
		t.Error("dismiss after the load should be a no-op")
	}
	v := c.PortfolioView()
	if v.Filter != FilterNone || v.Page != 1 || v.Cursor != 0 {
		t.Errorf("got filter %v page %d cursor %d, want none 1 0", v.Filter, v.Page, v.Cursor)
	}
}

func TestController_LoadRebasesOpenDetail(t *testing.T) {
	items := artworks(40)
	for _, i := range []int{2, 36} {
		items[i].Available = true
	}
	c := NewController(16, 8)
	c.AcceptPortfolio(c.BeginPortfolioLoad(), items)
	c.ApplyFilter(FilterAvailable)
	c.SetCursor(1)
	c.ActivateCursor()

	fresh := artworks(40)
	fresh[36].Title = "Renamed"
	c.AcceptPortfolio(c.BeginPortfolioLoad(), fresh)

	p := c.Presenter()
	if !p.Open() {
		t.Fatal("detail should stay open when its index survives the load")
	}
	if d := p.Detail(); d.Index != 36 || d.Title != "Renamed" {
		t.Errorf("detail = %d %q, want 36 %q", d.Index, d.Title, "Renamed")
	}

	c.DismissDetail()
	v := c.PortfolioView()
	if v.Filter != FilterNone || v.Page != 1 || v.Pages != 3 {
		t.Errorf("dismiss after a load restored filter %v page %d of %d, want none 1 of 3", v.Filter, v.Page, v.Pages)
	}
}

func TestController_DetailInvalidIndexIsNoop(t *testing.T) {
	c := loadedController(t, 3)
	if c.Detail(-1) || c.Detail(3) {
		t.Error("invalid index should not open the detail view")
	}
	if !c.Detail(2) {
		t.Error("valid index should open the detail view")
	}
	if c.Detail(99) {
		t.Error("invalid index should report false while the detail view is open")
	}
	if got := c.Presenter().Detail().Index; got != 2 {
		t.Errorf("detail index = %d, want 2", got)
	}
}

func TestController_PageNavigationBounds(t *testing.T) {
	c := loadedController(t, 20)
	c.PrevPage()
	if v := c.PortfolioView(); v.Page != 1 {
		t.Errorf("prev from first page -> %d", v.Page)
	}
	c.NextPage()
	c.NextPage()
	if v := c.PortfolioView(); v.Page != 2 {
		t.Errorf("next past last page -> %d", v.Page)
	}
}

func TestController_CursorClamped(t *testing.T) {
	c := loadedController(t, 20)
	c.SelectPage(2)
	c.MoveCursor(10)
	if v := c.PortfolioView(); v.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", v.Cursor)
	}
	c.MoveCursor(-10)
	if v := c.PortfolioView(); v.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", v.Cursor)
	}
}

func TestController_Featured(t *testing.T) {
	c := NewController(16, 2)
	items := []Featured{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	if !c.AcceptFeatured(c.BeginFeaturedLoad(), items) {
		t.Fatal("expected featured load to be accepted")
	}

	v := c.FeaturedView()
	if v.Pages != 2 || len(v.Items) != 2 {
		t.Fatalf("got %d pages with %d items", v.Pages, len(v.Items))
	}
	c.MoveFeaturedCursor(1)
	if h, ok := c.FeaturedView().Hovered(); !ok || h.Title != "B" {
		t.Errorf("hovered = %q, %v; want B", h.Title, ok)
	}

	c.NextFeaturedPage()
	v = c.FeaturedView()
	if v.Page != 2 || v.Offset != 2 || v.Cursor != 0 {
		t.Errorf("page %d offset %d cursor %d", v.Page, v.Offset, v.Cursor)
	}
	c.PrevFeaturedPage()
	if got := c.FeaturedView().Page; got != 1 {
		t.Errorf("featured page = %d, want 1", got)
	}

	if c.Portfolio().Len() != 0 {
		t.Error("featured load must not touch the portfolio slot")
	}
}
