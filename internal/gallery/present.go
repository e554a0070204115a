package gallery

// Focus is the interaction state a dismissed detail view returns to.
type Focus struct {
	Page   int
	Filter FilterMode
	Cursor int
}

// Detail is the populated detail surface. Absent fields are empty strings.
type Detail struct {
	Index       int
	Image       string
	Title       string
	Artist      string
	Size        string
	Medium      string
	Year        string
	Style       string
	Description string
}

// DetailOf maps an artwork onto the detail fields.
func DetailOf(index int, a Artwork) Detail {
	return Detail{
		Index:       index,
		Image:       a.Image,
		Title:       a.Title,
		Artist:      a.Artist,
		Size:        a.Size,
		Medium:      a.Medium,
		Year:        a.Year,
		Style:       a.Style,
		Description: a.Description,
	}
}

// Presenter is the single detail surface. It is reused: presenting while open
// replaces the content and keeps the focus captured on first open.
type Presenter struct {
	open    bool
	detail  Detail
	restore Focus
}

// NewPresenter returns a closed presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present shows a in the detail surface.
func (p *Presenter) Present(index int, a Artwork, restore Focus) {
	if !p.open {
		p.restore = restore
	}
	p.detail = DetailOf(index, a)
	p.open = true
}

// Replace swaps the displayed content and the focus to restore.
func (p *Presenter) Replace(index int, a Artwork, restore Focus) {
	p.restore = restore
	p.detail = DetailOf(index, a)
	p.open = true
}

// Open reports whether the detail surface is visible.
func (p *Presenter) Open() bool {
	return p.open
}

// Detail returns the displayed content.
func (p *Presenter) Detail() Detail {
	return p.detail
}

// Dismiss closes the surface and returns the focus to restore. It reports
// false when nothing was open.
func (p *Presenter) Dismiss() (Focus, bool) {
	if !p.open {
		return Focus{}, false
	}
	p.open = false
	restore := p.restore
	p.restore = Focus{}
	return restore, true
}
