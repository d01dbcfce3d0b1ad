// Package ragged provides cache-friendly containers for ragged arrays:
// sequences of variable-length rows such as tokenized sentences or label
// sequences.
//
// Instead of one allocation per row (the [][]T representation), a ragged
// container stores every row back to back in a single content buffer and
// marks row boundaries with a monotonic offset array. Row i occupies
// content[offsets[i]:offsets[i+1]]. This keeps iteration over millions of
// short rows on hot cache lines and reduces a nested input to exactly two
// heap allocations.
//
// # Quick Start
//
// Bulk construction from a nested input:
//
//	fa := ragged.NewFlatArray([][]string{
//	    {"O", "O", "O", "B-MISC", "I-MISC", "I-MISC", "O"},
//	    {"B-PER", "I-PER", "O"},
//	})
//	for row := range fa.Rows() {
//	    fmt.Println(row) // each row is a sub-slice of the content buffer
//	}
//
// Incremental construction via the builder:
//
//	b := ragged.NewBuilder[string]()
//	b.Push([]string{"this", "is", "a", "sentence"})
//	b.Push(nil) // records a zero-length row
//	fv, err := b.BuildVec()
//
// UTF-8 string rows:
//
//	txt := ragged.NewText("first sentence", "second sentence")
//	for s := range txt.Strings() {
//	    fmt.Println(s) // zero-copy view of the byte buffer
//	}
//
// # Containers
//
//   - FlatArray: immutable, built once from a complete nested input with
//     exact-capacity buffers.
//   - FlatVec: same layout over resizable buffers, for incremental appends.
//   - Text: a byte FlatVec whose rows are UTF-8 strings.
//
// All three satisfy the Collection interface, so the generic row iterators
// work uniformly across them, including through wrapper types.
//
// # Row Slices
//
// Rows yielded by iteration alias the container's content buffer. They are
// valid as long as the container is not appended to, and writes through a
// row slice are visible in the container. The offset invariants guarantee
// yielded rows never overlap.
//
// # Persistence
//
// The content and offset buffers are exposed as plain slices (Content,
// Offsets) so external code can persist them with any mechanism. The
// snapshot package provides a ready-made self-describing frame with
// pluggable codecs and block compression.
//
// # Thread Safety
//
// Containers have value semantics and carry no locks. Any number of
// goroutines may iterate the same container concurrently; mutation
// (Append, writes through row slices, builder pushes) requires external
// exclusivity.
package ragged
