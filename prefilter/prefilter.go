// Package prefilter provides fast candidate filtering for find/findAll
// using the literal sequences literal.Extractor pulls out of a pattern
// (spec.md §9/§4.11's EXPANSION): scanning for a required literal
// before running a full matcher lets the engine skip most non-matching
// input cheaply. A prefilter only narrows candidate start positions; it
// never changes match semantics, and every hit is still verified by the
// chosen matcher.
//
// Grounded on the teacher's prefilter/prefilter.go (Prefilter
// interface, Builder strategy selection), reduced from its byte-SIMD
// strategy ladder (Memchr/Memmem/Teddy) to two strategies appropriate
// for this module's rune-oriented matching and its "no hand-written
// SIMD/assembly" scope decision (DESIGN.md): a pure-Go rune substring
// scan for a single literal, and github.com/coregx/ahocorasick for
// multi-literal alternations.
package prefilter

import "github.com/coregx/rex/literal"

// Prefilter narrows candidate start positions in input before a full
// matcher runs. Find returns the next candidate position at or after
// start, or -1 if none remain.
type Prefilter interface {
	Find(input []rune, start int) int
	// IsComplete reports whether a prefilter hit is itself a complete
	// match (true only when every extracted literal is itself a
	// complete match, per literal.Literal.Complete).
	IsComplete() bool
	// LiteralLen returns the length shared by every literal the
	// prefilter matches, whether or not IsComplete is true; 0 when the
	// literals differ in length.
	LiteralLen() int
}

// Builder selects the best Prefilter for a set of extracted prefixes.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a Builder over prefixes (from
// literal.Extractor.ExtractPrefixes).
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the builder's literals, or
// nil if none is worthwhile (spec.md §9's strategy-selection
// thresholds): 0 literals or a single trivial one disables prefiltering
// and lets the matcher verify directly; 2-32 literals use
// Aho-Corasick; more than 32, or any literal containing a non-ASCII
// rune (the Aho-Corasick automaton here operates over bytes, and a
// non-ASCII literal would desynchronize byte and rune offsets), also
// disables prefiltering.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if seq.IsEmpty() {
		return nil
	}

	lits := seq.Literals()
	if seq.Len() == 1 && lits[0].Len() <= 1 {
		// A single code point (or the empty literal) isn't worth a
		// dedicated scan; the matcher verifies every position anyway.
		return nil
	}

	if seq.Len() == 1 {
		return newSubstringPrefilter(lits[0])
	}

	for _, l := range lits {
		if l.Len() == 0 {
			// An empty alternative matches at every position, so no
			// position can be ruled out.
			return nil
		}
	}

	if seq.Len() <= 32 && allASCII(lits) {
		pf, ok := newAhoCorasickPrefilter(lits)
		if ok {
			return pf
		}
	}

	return nil
}

func allASCII(lits []literal.Literal) bool {
	for _, l := range lits {
		for _, r := range l.Runes {
			if r > 0x7F {
				return false
			}
		}
	}
	return true
}
