package ragged

import "github.com/RoaringBitmap/roaring/v2"

// Select builds a new FlatVec holding the rows of src whose indices are
// set in the bitmap, in ascending index order. Bits at or beyond
// src.NumRows() are ignored. Rows are copied, so the result is
// independent of src.
//
// A nil or empty bitmap yields an empty container.
func Select[T any](src Collection[T], rows *roaring.Bitmap) *FlatVec[T] {
	out := NewFlatVec[T]()
	if rows == nil || rows.IsEmpty() {
		return out
	}
	n := src.NumRows()

	// First pass sizes the buffers exactly, second pass fills them.
	total, count := 0, 0
	it := rows.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			break
		}
		total += src.Offset(i+1) - src.Offset(i)
		count++
	}
	out.Grow(total, count)

	it = rows.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			break
		}
		out.Append(Row(src, i))
	}
	return out
}
