package ragged

import "iter"

// FlatArray is the immutable flattened container. It is built once from
// a complete nested input with exact-capacity buffers and never grows:
// constructing one from n rows costs exactly two heap allocations,
// against n+1 for the equivalent [][]T.
//
// Row count is O(1); materializing a row is O(row length) and performs
// no copy.
type FlatArray[T any] struct {
	content []T
	offsets []int
}

// NewFlatArray builds a FlatArray from a nested input. It runs two
// passes: the first sums row lengths and counts rows so both buffers are
// sized exactly once, the second fills them. Every row emits an offset
// boundary, including empty rows, which are preserved as zero-length
// rows.
func NewFlatArray[T any](rows [][]T) *FlatArray[T] {
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	content := make([]T, 0, total)
	offsets := make([]int, 1, len(rows)+1)
	for _, row := range rows {
		content = append(content, row...)
		offsets = append(offsets, len(content))
	}
	return &FlatArray[T]{content: content, offsets: offsets}
}

// FromRawArray wraps existing content and offset buffers into a
// FlatArray without copying. The invariants are validated here, once;
// iteration trusts them afterwards. The container takes ownership of
// both slices.
func FromRawArray[T any](content []T, offsets []int) (*FlatArray[T], error) {
	if err := validateOffsets(len(content), offsets); err != nil {
		return nil, err
	}
	return &FlatArray[T]{content: content, offsets: offsets}, nil
}

// NumRows returns the number of rows.
func (a *FlatArray[T]) NumRows() int { return numRows(a.offsets) }

// Offset returns the raw offset at position i.
func (a *FlatArray[T]) Offset(i int) int { return a.offsets[i] }

// Slice borrows content[lo:hi].
func (a *FlatArray[T]) Slice(lo, hi int) []T { return a.content[lo:hi] }

// Len returns the total number of elements across all rows.
func (a *FlatArray[T]) Len() int { return len(a.content) }

// Content borrows the whole content buffer as a flat slice. Together
// with Offsets it exposes the raw fields for external serialization.
func (a *FlatArray[T]) Content() []T { return a.content }

// Offsets borrows the offset array.
func (a *FlatArray[T]) Offsets() []int { return a.offsets }

// Row returns row i as a sub-slice of the content buffer.
func (a *FlatArray[T]) Row(i int) []T { return Row[T](a, i) }

// Iter returns a cursor-style iterator over the rows.
func (a *FlatArray[T]) Iter() *RowIter[T] { return NewRowIter[T](a) }

// Rows returns a range-over-func iterator over the rows.
func (a *FlatArray[T]) Rows() iter.Seq[[]T] { return Rows[T](a) }

// Thaw copies the container into a growable FlatVec.
func (a *FlatArray[T]) Thaw() *FlatVec[T] {
	content := make([]T, len(a.content))
	copy(content, a.content)
	offsets := make([]int, len(a.offsets))
	copy(offsets, a.offsets)
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	return &FlatVec[T]{content: content, offsets: offsets}
}
