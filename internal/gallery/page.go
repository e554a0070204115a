package gallery

// DefaultPageSize is the number of portfolio cards per page.
const DefaultPageSize = 16

// DefaultFeaturedPageSize is the number of featured cards per page.
const DefaultFeaturedPageSize = 8

// Page is one contiguous slice of a dataset.
type Page[T any] struct {
	Number int // 1-based
	Size   int
	Offset int // global index of Items[0]
	Total  int // page count of the whole dataset
	Items  []T
}

// GlobalIndex translates a position within the page to a dataset index.
func (p Page[T]) GlobalIndex(local int) int {
	return p.Offset + local
}

// Empty reports whether the page has no items.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// GetPage returns the slice [(page-1)*size, page*size) of items, clipped to
// bounds. Out-of-range input yields an empty slice.
func GetPage[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// PageCount returns ceil(n/size), or 0 when there is nothing to page.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// GlobalIndex returns the dataset index of local position i on page.
func GlobalIndex(page, size, local int) int {
	return (page-1)*size + local
}

// ClampPage keeps page within [1, total]. With no pages it returns 1.
func ClampPage(page, total int) int {
	if total <= 0 || page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate bundles GetPage with its offset and the total page count.
func Paginate[T any](items []T, number, size int) Page[T] {
	return Page[T]{
		Number: number,
		Size:   size,
		Offset: max(0, GlobalIndex(number, size, 0)),
		Total:  PageCount(len(items), size),
		Items:  GetPage(items, number, size),
	}
}
