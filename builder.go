package ragged

import "iter"

// Builder accumulates rows incrementally and finalizes them into a
// FlatArray or FlatVec. It starts with an empty content buffer and
// offsets == [0], and maintains the layout invariants on every push, so
// finalizing requires no revalidation.
//
// A Builder is single-use: after a successful Build call the buffers
// move into the returned container and further Build calls return
// ErrBuilderFinalized. Pushing after finalize panics.
//
// The zero value is not ready for use; create builders with NewBuilder.
type Builder[T any] struct {
	content []T
	offsets []int
	done    bool
}

// NewBuilder creates an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{offsets: []int{0}}
}

// Push appends one row. The row length is known up front, so the new
// offset is computed before the copy and the content buffer grows at
// most once. An empty (or nil) row records a zero-length row,
// semantically distinct from not pushing at all.
func (b *Builder[T]) Push(row []T) {
	if b.done {
		panic("ragged: Push on finalized builder")
	}
	b.offsets = append(b.offsets, len(b.content)+len(row))
	b.content = append(b.content, row...)
}

// PushSeq appends one row drawn from a sequence of unknown length. The
// elements are appended as they are yielded and the offset boundary is
// recorded after the sequence ends; an empty sequence records a
// zero-length row.
func (b *Builder[T]) PushSeq(seq iter.Seq[T]) {
	if b.done {
		panic("ragged: PushSeq on finalized builder")
	}
	for e := range seq {
		b.content = append(b.content, e)
	}
	b.offsets = append(b.offsets, len(b.content))
}

// Grow reserves capacity for at least elems additional content elements
// and rows additional rows, avoiding incremental growth when the final
// size is known.
func (b *Builder[T]) Grow(elems, rows int) {
	if elems > 0 && cap(b.content)-len(b.content) < elems {
		grown := make([]T, len(b.content), len(b.content)+elems)
		copy(grown, b.content)
		b.content = grown
	}
	if rows > 0 && cap(b.offsets)-len(b.offsets) < rows {
		grown := make([]int, len(b.offsets), len(b.offsets)+rows)
		copy(grown, b.offsets)
		b.offsets = grown
	}
}

// NumRows returns the number of rows pushed so far.
func (b *Builder[T]) NumRows() int { return numRows(b.offsets) }

// Len returns the total number of elements pushed so far.
func (b *Builder[T]) Len() int { return len(b.content) }

// BuildArray finalizes the builder into an immutable FlatArray. The
// buffers move into the array without copying; capacity beyond the
// logical length is clipped off.
func (b *Builder[T]) BuildArray() (*FlatArray[T], error) {
	content, offsets, err := b.take()
	if err != nil {
		return nil, err
	}
	return &FlatArray[T]{
		content: content[:len(content):len(content)],
		offsets: offsets[:len(offsets):len(offsets)],
	}, nil
}

// BuildVec finalizes the builder into a growable FlatVec. The buffers
// move into the vector without copying, keeping any spare capacity for
// further appends.
func (b *Builder[T]) BuildVec() (*FlatVec[T], error) {
	content, offsets, err := b.take()
	if err != nil {
		return nil, err
	}
	return &FlatVec[T]{content: content, offsets: offsets}, nil
}

func (b *Builder[T]) take() ([]T, []int, error) {
	if b.done {
		return nil, nil, ErrBuilderFinalized
	}
	b.done = true
	content, offsets := b.content, b.offsets
	b.content, b.offsets = nil, nil
	return content, offsets, nil
}
