package gallery

// Dataset is an immutable, ordered snapshot of one load. Insertion order is
// display order and the index used for detail lookup.
type Dataset[T any] struct {
	items      []T
	generation uint64
}

// NewDataset copies items into a snapshot tagged with generation.
func NewDataset[T any](items []T, generation uint64) Dataset[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return Dataset[T]{items: cp, generation: generation}
}

// Len returns the number of records.
func (d Dataset[T]) Len() int {
	return len(d.items)
}

// Empty reports whether the snapshot has no records.
func (d Dataset[T]) Empty() bool {
	return len(d.items) == 0
}

// At returns the record at index i.
func (d Dataset[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(d.items) {
		return zero, false
	}
	return d.items[i], true
}

// Items returns a copy of the records.
func (d Dataset[T]) Items() []T {
	cp := make([]T, len(d.items))
	copy(cp, d.items)
	return cp
}

// Generation returns the load generation this snapshot was accepted under.
// The zero value means nothing has been loaded yet.
func (d Dataset[T]) Generation() uint64 {
	return d.generation
}

// Page paginates the snapshot.
func (d Dataset[T]) Page(number, size int) Page[T] {
	return Paginate(d.items, number, size)
}
