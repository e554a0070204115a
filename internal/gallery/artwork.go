// Package gallery holds the portfolio domain: artwork records, dataset
// snapshots, pagination, filtering, card rendering and the detail presenter.
package gallery

// Artwork is one displayable piece of art. Its identifier is its position in
// the dataset it was loaded with.
type Artwork struct {
	Title       string
	Artist      string
	Image       string // image reference, relative to the data source
	Size        string
	Medium      string
	Year        string
	Style       string
	Description string
	Available   bool
}

// SizeMedium returns the "size • medium" line shown on portfolio cards.
func (a Artwork) SizeMedium() string {
	return a.Size + " • " + a.Medium
}

// Featured is one entry of the featured showcase.
type Featured struct {
	Title       string
	Description string
	Image       string
	Bg          string // colour token, e.g. "#2b1d3a"
}
