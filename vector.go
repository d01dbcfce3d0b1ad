package ragged

import "iter"

// FlatVec is the growable flattened container. It shares the FlatArray
// layout and invariants but keeps both buffers resizable, for workloads
// that append rows incrementally or mutate content in place after
// construction.
type FlatVec[T any] struct {
	content []T
	offsets []int
}

// NewFlatVec creates an empty FlatVec. The offset array starts as [0],
// the canonical zero-row form.
func NewFlatVec[T any]() *FlatVec[T] {
	return &FlatVec[T]{offsets: []int{0}}
}

// FlatVecOf builds a FlatVec from a nested input using the same two-pass
// exact-capacity fill as NewFlatArray.
func FlatVecOf[T any](rows [][]T) *FlatVec[T] {
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
	return &FlatVec[T]{content: content, offsets: offsets}
}

// FromRawVec wraps existing content and offset buffers into a FlatVec
// without copying, validating the invariants once. The container takes
// ownership of both slices.
func FromRawVec[T any](content []T, offsets []int) (*FlatVec[T], error) {
	if err := validateOffsets(len(content), offsets); err != nil {
		return nil, err
	}
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	return &FlatVec[T]{content: content, offsets: offsets}, nil
}

// NumRows returns the number of rows.
func (v *FlatVec[T]) NumRows() int { return numRows(v.offsets) }

// Offset returns the raw offset at position i.
func (v *FlatVec[T]) Offset(i int) int { return v.offsets[i] }

// Slice borrows content[lo:hi].
func (v *FlatVec[T]) Slice(lo, hi int) []T { return v.content[lo:hi] }

// Len returns the total number of elements across all rows.
func (v *FlatVec[T]) Len() int { return len(v.content) }

// Content borrows the whole content buffer as a flat slice.
func (v *FlatVec[T]) Content() []T { return v.content }

// Offsets borrows the offset array.
func (v *FlatVec[T]) Offsets() []int { return v.offsets }

// Row returns row i as a sub-slice of the content buffer.
func (v *FlatVec[T]) Row(i int) []T { return Row[T](v, i) }

// Append adds one row at the end. An empty (or nil) row records a
// zero-length row: the boundary is emitted either way.
//
// Appending may reallocate the content buffer, which invalidates row
// slices obtained earlier.
func (v *FlatVec[T]) Append(row []T) {
	v.content = append(v.content, row...)
	v.offsets = append(v.offsets, len(v.content))
}

// Grow reserves capacity for at least elems additional content elements
// and rows additional rows.
func (v *FlatVec[T]) Grow(elems, rows int) {
	if elems > 0 && cap(v.content)-len(v.content) < elems {
		grown := make([]T, len(v.content), len(v.content)+elems)
		copy(grown, v.content)
		v.content = grown
	}
	if rows > 0 && cap(v.offsets)-len(v.offsets) < rows {
		grown := make([]int, len(v.offsets), len(v.offsets)+rows)
		copy(grown, v.offsets)
		v.offsets = grown
	}
}

// Freeze converts the container into an immutable FlatArray without
// copying. The FlatVec must not be used afterwards: both buffers move to
// the returned array.
func (v *FlatVec[T]) Freeze() *FlatArray[T] {
	content, offsets := v.content, v.offsets
	v.content, v.offsets = nil, []int{0}
	return &FlatArray[T]{
		content: content[:len(content):len(content)],
		offsets: offsets[:len(offsets):len(offsets)],
	}
}

// Iter returns a cursor-style iterator over the rows.
func (v *FlatVec[T]) Iter() *RowIter[T] { return NewRowIter[T](v) }

// Rows returns a range-over-func iterator over the rows.
func (v *FlatVec[T]) Rows() iter.Seq[[]T] { return Rows[T](v) }
