// Package conv provides bounds-checked integer narrowing for this
// module's StateID types, which are uint32 while construction counts
// states as an int slice length.
//
// Grounded on the teacher's internal/conv package, trimmed to the one
// conversion this module's NFA builder actually performs
// (int state count -> StateID/uint32); the teacher's uint16 and
// uint64-sourced variants have no call site here.
package conv

import "math"

// IntToUint32 narrows n to uint32, panicking if n is negative or
// would overflow — a state count this large means a pattern produced
// more Thompson-construction states than this engine's StateID type
// can address, a programming-error-level condition, not a user error
// to recover from.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
