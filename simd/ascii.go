// Package simd provides the ASCII fast-path detection of spec.md
// §4.12 [EXPANSION]: when an input is known to be all-ASCII, the
// engine can skip rune-decoding overhead on every matcher step.
//
// Grounded on the teacher's simd package (IsASCII, SWAR 8-bytes-at-a-
// time bit trick, golang.org/x/sys/cpu feature gating for a widened
// fast path on capable CPUs) with its hand-written AVX2 assembly
// dropped (DESIGN.md: cannot be validated without running the Go
// toolchain) in favor of a wider pure-Go word scan gated by the same
// feature flag.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// hasAVX2 reports whether the host CPU advertises AVX2, mirroring the
// teacher's feature gate. Used here only to choose a wider scan
// stride — the comparison itself stays in pure Go.
var hasAVX2 = cpu.X86.HasAVX2

const highBitsPerWord = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data has its high bit clear
// (value 0x00-0x7F). Runs an 8-bytes-per-word SWAR scan, widened to
// four words per iteration when the host advertises AVX2 — not because
// AVX2 instructions are used, but because capable CPUs reliably pipeline
// that much independent 64-bit ALU work per cycle.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}

	stride := 8
	if hasAVX2 {
		stride = 32
	}

	i := 0
	for i+stride <= n {
		if stride == 32 {
			if !fourWordsASCII(data[i : i+32]) {
				return false
			}
		} else if binary.LittleEndian.Uint64(data[i:])&highBitsPerWord != 0 {
			return false
		}
		i += stride
	}
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&highBitsPerWord != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

func fourWordsASCII(data []byte) bool {
	for w := 0; w < 4; w++ {
		if binary.LittleEndian.Uint64(data[w*8:])&highBitsPerWord != 0 {
			return false
		}
	}
	return true
}

// IsASCIIRunes reports whether every rune in data is an ASCII code
// point. The engine itself decides its fast path with IsASCII on the
// raw input bytes.
func IsASCIIRunes(data []rune) bool {
	for _, r := range data {
		if r > 0x7F {
			return false
		}
	}
	return true
}
