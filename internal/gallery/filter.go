package gallery

import (
	"fmt"
	"strings"
)

// Predicate selects artworks for a filtered view.
type Predicate func(Artwork) bool

// Available matches artworks flagged as available.
func Available(a Artwork) bool {
	return a.Available
}

// Any matches every artwork.
func Any(Artwork) bool {
	return true
}

// Entry is a record together with its dataset index.
type Entry struct {
	Index   int
	Artwork Artwork
}

// Filter returns the records matching pred, in dataset order.
func Filter(d Dataset[Artwork], pred Predicate) []Entry {
	out := make([]Entry, 0)
	for i, a := range d.items {
		if pred(a) {
			out = append(out, Entry{Index: i, Artwork: a})
		}
	}
	return out
}

// FilterMode is the active filter. FilterNone means the paginated view.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterAll
	FilterAvailable
)

// String returns the filter name used by the CLI and the filter row.
func (f FilterMode) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterAvailable:
		return "available"
	default:
		return "none"
	}
}

// Predicate returns the predicate for the mode, or nil for FilterNone.
func (f FilterMode) Predicate() Predicate {
	switch f {
	case FilterAll:
		return Any
	case FilterAvailable:
		return Available
	default:
		return nil
	}
}

// ParseFilter maps a filter name to a mode. The empty string and "none" mean
// no filter.
func ParseFilter(name string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return FilterNone, nil
	case "all":
		return FilterAll, nil
	case "available":
		return FilterAvailable, nil
	default:
		return FilterNone, fmt.Errorf("unknown filter %q (want all or available)", name)
	}
}
