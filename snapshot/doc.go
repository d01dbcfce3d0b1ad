// Package snapshot encodes the two raw buffers of a flattened container
// (content and offsets) into a self-describing byte frame and back.
//
// The frame header records the codec name and compression type, so a
// frame can be decoded without out-of-band configuration:
//
//	data, _ := snapshot.Marshal[string](fv)
//	fv2, _ := snapshot.Unmarshal[string](data)
//
// Decoding re-validates the offset invariants before handing back a
// container, so a corrupted or hand-crafted frame cannot produce a
// container that violates the iteration contract.
//
// The package works on byte slices only. Where the frames are stored —
// files, object stores, databases — is the caller's concern.
package snapshot
