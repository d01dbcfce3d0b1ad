package ragged

import "iter"

// Collection is the row-access capability shared by every flattened
// container. One generic iterator implementation serves any type that
// satisfies it, including wrapper types that forward to an inner
// container.
//
// Implementations must uphold the layout invariants: the offset array
// starts at 0, is non-decreasing, and its final entry equals the content
// length. Constructors in this package validate the invariants once at
// the construction boundary; accessors trust them afterwards.
type Collection[T any] interface {
	// NumRows returns the number of logical rows. A container whose
	// offset array is empty or holds a single entry has zero rows.
	NumRows() int

	// Offset returns the raw offset at position i. Valid positions are
	// 0 through NumRows inclusive.
	Offset(i int) int

	// Slice borrows content[lo:hi]. The returned slice aliases the
	// container's content buffer: writes through it are visible in the
	// container.
	Slice(lo, hi int) []T
}

// Row returns row i of c as a sub-slice of the content buffer.
func Row[T any](c Collection[T], i int) []T {
	return c.Slice(c.Offset(i), c.Offset(i+1))
}

// Rows returns an iterator over the rows of c, in order. Each yielded
// slice aliases the content buffer.
func Rows[T any](c Collection[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := c.NumRows()
		for i := 0; i < n; i++ {
			if !yield(Row(c, i)) {
				return
			}
		}
	}
}

// All returns an iterator over (index, row) pairs of c, in order.
func All[T any](c Collection[T]) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		n := c.NumRows()
		for i := 0; i < n; i++ {
			if !yield(i, Row(c, i)) {
				return
			}
		}
	}
}

// Nested materializes c back into a [][]T, copying every row. It is the
// inverse of bulk construction and mainly useful at API boundaries that
// require nested slices.
func Nested[T any](c Collection[T]) [][]T {
	n := c.NumRows()
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		row := Row(c, i)
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}
	return out
}

// numRows computes the row count for an offset array, guarding the
// degenerate empty form so the count never underflows.
func numRows(offsets []int) int {
	if len(offsets) == 0 {
		return 0
	}
	return len(offsets) - 1
}
