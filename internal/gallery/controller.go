package gallery

// slot owns one dataset snapshot, its request generation and page state.
type slot[T any] struct {
	data      Dataset[T]
	requested uint64
	page      int
	size      int
	cursor    int
}

func newSlot[T any](size int) slot[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return slot[T]{page: 1, size: size}
}

func (s *slot[T]) begin() uint64 {
	s.requested++
	return s.requested
}

// accept stores items if gen is the newest request. Older responses are
// dropped so a slow stale load cannot replace a newer one.
func (s *slot[T]) accept(gen uint64, items []T) bool {
	if gen == 0 || gen < s.requested {
		return false
	}
	s.requested = gen
	s.data = NewDataset(items, gen)
	s.page = 1
	s.cursor = 0
	return true
}

func (s *slot[T]) pageCount() int {
	return PageCount(s.data.Len(), s.size)
}

func (s *slot[T]) currentPage() Page[T] {
	s.page = ClampPage(s.page, s.pageCount())
	return s.data.Page(s.page, s.size)
}

func (s *slot[T]) clampCursor(n int) {
	switch {
	case n <= 0:
		s.cursor = 0
	case s.cursor >= n:
		s.cursor = n - 1
	case s.cursor < 0:
		s.cursor = 0
	}
}

// PortfolioView is what the portfolio grid shows.
type PortfolioView struct {
	Filter  FilterMode
	Page    int // current page (paginated view only)
	Pages   int // page controls to show; 0 when filtered or empty
	Total   int // records in the dataset
	Cards   []Card
	Cursor  int
	Loaded  bool
	Version uint64
}

// FeaturedView is what the featured grid shows.
type FeaturedView struct {
	Page   int
	Pages  int
	Items  []Featured
	Offset int
	Cursor int
	Loaded bool
}

// Hovered returns the featured item under the cursor.
func (v FeaturedView) Hovered() (Featured, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Items) {
		return Featured{}, false
	}
	return v.Items[v.Cursor], true
}

// Controller owns the current portfolio and featured snapshots, the page and
// filter state, and the single detail presenter. Readers only ever see
// immutable snapshots.
type Controller struct {
	portfolio slot[Artwork]
	featured  slot[Featured]
	filter    FilterMode

	renderer  *Renderer
	presenter *Presenter
}

// NewController returns a controller with the given page sizes. Sizes <= 0
// fall back to the defaults.
func NewController(pageSize, featuredPageSize int) *Controller {
	if featuredPageSize <= 0 {
		featuredPageSize = DefaultFeaturedPageSize
	}
	c := &Controller{
		portfolio: newSlot[Artwork](pageSize),
		featured:  newSlot[Featured](featuredPageSize),
		presenter: NewPresenter(),
	}
	c.renderer = NewRenderer(func(i int) { c.showDetail(i) })
	return c
}

// PageSize returns the portfolio page size.
func (c *Controller) PageSize() int {
	return c.portfolio.size
}

// FeaturedPageSize returns the featured page size.
func (c *Controller) FeaturedPageSize() int {
	return c.featured.size
}

// BeginPortfolioLoad allocates the generation for a new portfolio request.
func (c *Controller) BeginPortfolioLoad() uint64 {
	return c.portfolio.begin()
}

// BeginFeaturedLoad allocates the generation for a new featured request.
func (c *Controller) BeginFeaturedLoad() uint64 {
	return c.featured.begin()
}

// AcceptPortfolio replaces the portfolio snapshot if gen is current. A new
// dataset resets to page 1 and restores the paginated view. An open detail
// view is re-read from the new snapshot, or closed if its index is gone.
func (c *Controller) AcceptPortfolio(gen uint64, items []Artwork) bool {
	if !c.portfolio.accept(gen, items) {
		return false
	}
	c.filter = FilterNone
	c.rebaseDetail()
	return true
}

func (c *Controller) rebaseDetail() {
	if !c.presenter.Open() {
		return
	}
	index := c.presenter.Detail().Index
	a, ok := c.portfolio.data.At(index)
	if !ok {
		c.presenter.Dismiss()
		return
	}
	c.presenter.Replace(index, a, Focus{Page: 1, Filter: FilterNone})
}

// AcceptFeatured replaces the featured snapshot if gen is current.
func (c *Controller) AcceptFeatured(gen uint64, items []Featured) bool {
	return c.featured.accept(gen, items)
}

// Portfolio returns the current portfolio snapshot.
func (c *Controller) Portfolio() Dataset[Artwork] {
	return c.portfolio.data
}

// Featured returns the current featured snapshot.
func (c *Controller) Featured() Dataset[Featured] {
	return c.featured.data
}

// Filter returns the active filter.
func (c *Controller) Filter() FilterMode {
	return c.filter
}

// PortfolioView renders the portfolio grid. Each call builds a fresh card list.
func (c *Controller) PortfolioView() PortfolioView {
	v := PortfolioView{
		Filter:  c.filter,
		Total:   c.portfolio.data.Len(),
		Loaded:  c.portfolio.data.Generation() > 0,
		Version: c.portfolio.data.Generation(),
	}
	if pred := c.filter.Predicate(); pred != nil {
		v.Cards = c.renderer.RenderEntries(Filter(c.portfolio.data, pred))
	} else {
		page := c.portfolio.currentPage()
		v.Page = page.Number
		v.Pages = page.Total
		v.Cards = c.renderer.RenderPage(page)
	}
	c.portfolio.clampCursor(len(v.Cards))
	v.Cursor = c.portfolio.cursor
	return v
}

// FeaturedView renders the featured grid.
func (c *Controller) FeaturedView() FeaturedView {
	page := c.featured.currentPage()
	c.featured.clampCursor(len(page.Items))
	return FeaturedView{
		Page:   page.Number,
		Pages:  page.Total,
		Items:  page.Items,
		Offset: page.Offset,
		Cursor: c.featured.cursor,
		Loaded: c.featured.data.Generation() > 0,
	}
}

// SelectPage shows portfolio page n. Selecting a page leaves any filter.
func (c *Controller) SelectPage(n int) {
	c.filter = FilterNone
	c.portfolio.page = ClampPage(n, c.portfolio.pageCount())
	c.portfolio.cursor = 0
}

// NextPage advances the portfolio page, staying on the last one.
func (c *Controller) NextPage() {
	c.SelectPage(c.currentPortfolioPage() + 1)
}

// PrevPage goes back one portfolio page, staying on the first one.
func (c *Controller) PrevPage() {
	c.SelectPage(c.currentPortfolioPage() - 1)
}

func (c *Controller) currentPortfolioPage() int {
	if c.filter != FilterNone {
		return 0
	}
	return ClampPage(c.portfolio.page, c.portfolio.pageCount())
}

// ApplyFilter switches to the unpaginated filtered view. FilterNone restores
// the paginated view on the current page.
func (c *Controller) ApplyFilter(mode FilterMode) {
	c.filter = mode
	c.portfolio.cursor = 0
}

// MoveCursor moves the portfolio cursor by delta within the visible cards.
func (c *Controller) MoveCursor(delta int) {
	n := len(c.PortfolioView().Cards)
	c.portfolio.cursor += delta
	c.portfolio.clampCursor(n)
}

// SetCursor places the portfolio cursor.
func (c *Controller) SetCursor(i int) {
	n := len(c.PortfolioView().Cards)
	c.portfolio.cursor = i
	c.portfolio.clampCursor(n)
}

// ActivateCursor triggers the Details control of the card under the cursor.
func (c *Controller) ActivateCursor() bool {
	v := c.PortfolioView()
	if v.Cursor >= len(v.Cards) {
		return false
	}
	v.Cards[v.Cursor].Activate()
	return c.presenter.Open()
}

// SelectFeaturedPage shows featured page n.
func (c *Controller) SelectFeaturedPage(n int) {
	c.featured.page = ClampPage(n, c.featured.pageCount())
	c.featured.cursor = 0
}

// NextFeaturedPage advances the featured page.
func (c *Controller) NextFeaturedPage() {
	c.SelectFeaturedPage(ClampPage(c.featured.page, c.featured.pageCount()) + 1)
}

// PrevFeaturedPage goes back one featured page.
func (c *Controller) PrevFeaturedPage() {
	c.SelectFeaturedPage(ClampPage(c.featured.page, c.featured.pageCount()) - 1)
}

// MoveFeaturedCursor moves the featured cursor by delta.
func (c *Controller) MoveFeaturedCursor(delta int) {
	n := len(c.FeaturedView().Items)
	c.featured.cursor += delta
	c.featured.clampCursor(n)
}

// Detail presents the artwork at a dataset index. An index outside the
// current snapshot is a no-op and reports false.
func (c *Controller) Detail(globalIndex int) bool {
	return c.showDetail(globalIndex)
}

func (c *Controller) showDetail(globalIndex int) bool {
	a, ok := c.portfolio.data.At(globalIndex)
	if !ok {
		return false
	}
	c.presenter.Present(globalIndex, a, Focus{
		Page:   c.portfolio.page,
		Filter: c.filter,
		Cursor: c.portfolio.cursor,
	})
	return true
}

// Presenter returns the detail presenter.
func (c *Controller) Presenter() *Presenter {
	return c.presenter
}

// DismissDetail closes the detail surface and restores the page, filter and
// cursor it was opened from.
func (c *Controller) DismissDetail() bool {
	focus, ok := c.presenter.Dismiss()
	if !ok {
		return false
	}
	c.filter = focus.Filter
	c.portfolio.page = ClampPage(focus.Page, c.portfolio.pageCount())
	c.portfolio.cursor = focus.Cursor
	c.PortfolioView()
	return true
}
