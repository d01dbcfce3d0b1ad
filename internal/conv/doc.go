// Package conv provides safe integer conversions for the snapshot frame
// header, where buffer sizes cross between int and fixed-width wire
// fields.
package conv
