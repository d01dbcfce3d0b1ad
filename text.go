package ragged

import (
	"iter"
	"unsafe"
)

// Text is the UTF-8 specialization: a growable byte container where each
// row is the encoding of one input string. String iteration reinterprets
// each row in place, so reading a corpus back costs no per-string
// allocation.
//
// Soundness of the zero-copy view relies on two facts: Go strings handed
// to NewText and AppendString are valid UTF-8 views by construction, and
// the returned string headers point into the content buffer, which
// callers must not mutate while string views are live. Appending may
// reallocate the buffer and invalidates earlier views the same way it
// invalidates row slices.
type Text struct {
	vec FlatVec[byte]
}

// NewText builds a Text from the given strings, one row per string.
// Empty strings are preserved as zero-length rows.
func NewText(strs ...string) *Text {
	total := 0
	for _, s := range strs {
		total += len(s)
	}
	t := &Text{vec: FlatVec[byte]{
		content: make([]byte, 0, total),
		offsets: make([]int, 1, len(strs)+1),
	}}
	for _, s := range strs {
		t.AppendString(s)
	}
	return t
}

// TextFromRaw wraps existing content and offset buffers into a Text,
// validating the offset invariants once. The content must hold valid
// UTF-8 at every row boundary; this is the caller's contract and is not
// re-checked.
func TextFromRaw(content []byte, offsets []int) (*Text, error) {
	v, err := FromRawVec[byte](content, offsets)
	if err != nil {
		return nil, err
	}
	return &Text{vec: *v}, nil
}

// NumRows returns the number of string rows.
func (t *Text) NumRows() int { return t.vec.NumRows() }

// Offset returns the raw offset at position i.
func (t *Text) Offset(i int) int { return t.vec.Offset(i) }

// Slice borrows content[lo:hi].
func (t *Text) Slice(lo, hi int) []byte { return t.vec.Slice(lo, hi) }

// Len returns the total number of bytes across all rows.
func (t *Text) Len() int { return t.vec.Len() }

// Content borrows the whole byte buffer.
func (t *Text) Content() []byte { return t.vec.Content() }

// Offsets borrows the offset array.
func (t *Text) Offsets() []int { return t.vec.Offsets() }

// AppendString adds one string row, copying its bytes into the content
// buffer. An empty string records a zero-length row.
func (t *Text) AppendString(s string) {
	t.vec.content = append(t.vec.content, s...)
	t.vec.offsets = append(t.vec.offsets, len(t.vec.content))
}

// RowBytes returns row i as a sub-slice of the byte buffer.
func (t *Text) RowBytes(i int) []byte { return t.vec.Row(i) }

// RowString returns row i as a zero-copy string view of the byte buffer.
func (t *Text) RowString(i int) string { return rowString(t.vec.Row(i)) }

// Strings returns an iterator over the rows as zero-copy string views.
func (t *Text) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		n := t.NumRows()
		for i := 0; i < n; i++ {
			if !yield(t.RowString(i)) {
				return
			}
		}
	}
}

// Iter returns a cursor-style iterator over the string rows.
func (t *Text) Iter() *StringIter { return &StringIter{rows: NewRowIter[byte](t)} }

// StringIter is a cursor-style iterator yielding each row of a Text as a
// zero-copy string. Same lifecycle as RowIter: finite, not restartable.
type StringIter struct {
	rows *RowIter[byte]
}

// Next returns the next string row and true, or "" and false once all
// rows have been yielded.
func (it *StringIter) Next() (string, bool) {
	row, ok := it.rows.Next()
	if !ok {
		return "", false
	}
	return rowString(row), true
}

// Remaining returns how many rows are left to yield.
func (it *StringIter) Remaining() int { return it.rows.Remaining() }

// TextBuilder accumulates string rows and finalizes them into a Text.
// It wraps a byte Builder so strings are encoded straight into the
// shared content buffer, with no intermediate []byte per row. Like
// Builder, it is single-use.
type TextBuilder struct {
	b Builder[byte]
}

// NewTextBuilder creates an empty text builder.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{b: Builder[byte]{offsets: []int{0}}}
}

// PushString appends one string row. An empty string records a
// zero-length row.
func (tb *TextBuilder) PushString(s string) {
	if tb.b.done {
		panic("ragged: PushString on finalized builder")
	}
	tb.b.offsets = append(tb.b.offsets, len(tb.b.content)+len(s))
	tb.b.content = append(tb.b.content, s...)
}

// Push appends one row of raw bytes. The bytes must be valid UTF-8 if
// the row will later be read back as a string.
func (tb *TextBuilder) Push(row []byte) { tb.b.Push(row) }

// Grow reserves capacity for at least bytes additional content bytes
// and rows additional rows.
func (tb *TextBuilder) Grow(bytes, rows int) { tb.b.Grow(bytes, rows) }

// NumRows returns the number of rows pushed so far.
func (tb *TextBuilder) NumRows() int { return tb.b.NumRows() }

// BuildText finalizes the builder into a Text. A second call returns
// ErrBuilderFinalized.
func (tb *TextBuilder) BuildText() (*Text, error) {
	v, err := tb.b.BuildVec()
	if err != nil {
		return nil, err
	}
	return &Text{vec: *v}, nil
}

// rowString reinterprets a row of the byte buffer as a string without
// copying. Safe because the container never writes through returned
// rows itself; mutation discipline is the caller's.
func rowString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
