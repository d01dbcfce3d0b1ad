package ragged

// RowIter is a cursor-style iterator over the rows of a flattened
// collection. It yields each row lazily as a sub-slice of the content
// buffer, one per Next call, with no prefetching.
//
// A RowIter is finite and not restartable: once exhausted it stays
// exhausted, and a fresh iterator must be created to iterate again. The
// row count is captured at creation, so rows appended to a growable
// container afterwards are not observed.
//
// The yielded slices alias the content buffer and never overlap: the
// offset array is non-decreasing, so consecutive half-open ranges are
// disjoint. Callers that write through the slices must hold exclusive
// access to the container for the iterator's whole lifetime.
type RowIter[T any] struct {
	col Collection[T]
	cur int
	n   int
}

// NewRowIter creates an iterator over the rows of c.
func NewRowIter[T any](c Collection[T]) *RowIter[T] {
	// NumRows guards the degenerate offset forms (length 0 or 1), so n
	// is never negative here.
	return &RowIter[T]{col: c, n: c.NumRows()}
}

// Next returns the next row and true, or nil and false once all rows
// have been yielded.
func (it *RowIter[T]) Next() ([]T, bool) {
	if it.cur >= it.n {
		return nil, false
	}
	lo := it.col.Offset(it.cur)
	hi := it.col.Offset(it.cur + 1)
	it.cur++
	return it.col.Slice(lo, hi), true
}

// Remaining returns how many rows are left to yield.
func (it *RowIter[T]) Remaining() int {
	return it.n - it.cur
}
