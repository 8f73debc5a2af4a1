// Package bitflag manipulates flags packed into an unsigned integer.
//
// Flags are caller-guaranteed to be valid single-bit or mask constants; none
// of these operations can fail.
package bitflag

import "golang.org/x/exp/constraints"

// Set returns value with the bits of flag turned on
func Set[T constraints.Unsigned](value, flag T) T {
	return value | flag
}

// Has returns the bits of flag present in value. For single-bit flags this is
// either zero or flag; for multi-bit masks it is the masked field itself.
func Has[T constraints.Unsigned](value, flag T) T {
	return value & flag
}

// Toggle returns value with the bits of flag flipped
func Toggle[T constraints.Unsigned](value, flag T) T {
	return value ^ flag
}

// Clear returns value with the bits of flag turned off
func Clear[T constraints.Unsigned](value, flag T) T {
	return value &^ flag
}
