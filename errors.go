package ragged

import (
	"errors"
	"fmt"
)

var (
	// ErrBuilderFinalized is returned when a Build method is called on a
	// builder that has already been finalized.
	ErrBuilderFinalized = errors.New("builder already finalized")
)

// ErrInvalidOffsets indicates an offset array that violates the layout
// invariants: offsets[0] == 0, offsets non-decreasing, and the final
// offset equal to the content length.
//
// It is returned by the FromRaw constructors and by snapshot decoding.
type ErrInvalidOffsets struct {
	// Index is the position in the offset array where validation failed,
	// or -1 when the array as a whole is malformed.
	Index  int
	Reason string
}

func (e *ErrInvalidOffsets) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid offsets: %s", e.Reason)
	}
	return fmt.Sprintf("invalid offsets at index %d: %s", e.Index, e.Reason)
}

// validateOffsets checks the layout invariants for an offset array
// partitioning a content buffer of contentLen elements.
//
// An empty offset array is accepted as a degenerate zero-row container,
// but only when the content buffer is empty too. The canonical empty form
// is offsets == [0].
func validateOffsets(contentLen int, offsets []int) error {
	if len(offsets) == 0 {
		if contentLen != 0 {
			return &ErrInvalidOffsets{Index: -1, Reason: fmt.Sprintf("no offsets for %d content elements", contentLen)}
		}
		return nil
	}
	if offsets[0] != 0 {
		return &ErrInvalidOffsets{Index: 0, Reason: fmt.Sprintf("first offset is %d, want 0", offsets[0])}
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return &ErrInvalidOffsets{Index: i, Reason: fmt.Sprintf("offset %d decreases below %d", offsets[i], offsets[i-1])}
		}
	}
	if last := offsets[len(offsets)-1]; last != contentLen {
		return &ErrInvalidOffsets{Index: len(offsets) - 1, Reason: fmt.Sprintf("final offset is %d, want content length %d", last, contentLen)}
	}
	return nil
}
