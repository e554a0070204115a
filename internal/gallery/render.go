package gallery

// Card is one rendered grid item.
type Card struct {
	Index   int // dataset index
	Local   int // position within the rendered view
	Artwork Artwork

	activate func(int)
}

// Title returns the card heading.
func (c Card) Title() string {
	return c.Artwork.Title
}

// Summary returns the style line and the size/medium line.
func (c Card) Summary() (style, sizeMedium string) {
	return c.Artwork.Style, c.Artwork.SizeMedium()
}

// Activate triggers the card's Details control.
func (c Card) Activate() {
	if c.activate != nil {
		c.activate(c.Index)
	}
}

// Renderer builds cards and binds their Details control to the injected
// activation function. Activation always receives the dataset index, never the
// position within the visible slice.
type Renderer struct {
	activate func(globalIndex int)
}

// NewRenderer returns a renderer whose cards call activate.
func NewRenderer(activate func(globalIndex int)) *Renderer {
	return &Renderer{activate: activate}
}

// RenderPage renders one page. Card i maps to page.Offset+i.
func (r *Renderer) RenderPage(page Page[Artwork]) []Card {
	cards := make([]Card, 0, len(page.Items))
	for i, a := range page.Items {
		cards = append(cards, Card{
			Index:    page.GlobalIndex(i),
			Local:    i,
			Artwork:  a,
			activate: r.activate,
		})
	}
	return cards
}

// RenderEntries renders a filtered view, keeping each entry's dataset index.
func (r *Renderer) RenderEntries(entries []Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for i, e := range entries {
		cards = append(cards, Card{
			Index:    e.Index,
			Local:    i,
			Artwork:  e.Artwork,
			activate: r.activate,
		})
	}
	return cards
}
