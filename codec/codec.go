// Package codec centralizes the encoding used when the raw buffers of a
// flattened container are persisted.
//
// Codec selection is a compatibility boundary: snapshot frames record
// the codec name in their header, and bytes written by one codec may not
// decode with another. ByName resolves the recorded name when a frame is
// read back.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured explicitly.
//
// This affects newly written frames only: existing frames are
// self-describing and are decoded with the codec named in their header.
var Default Codec = GoJSON{}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
