package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/rex/literal"
)

// ahoCorasickPrefilter wraps a github.com/coregx/ahocorasick automaton
// as a multi-literal Prefilter, grounded on the teacher's
// meta.Engine.findAhoCorasick (builder.AddPattern per literal,
// automaton.Find(haystack, at) returning a byte match).
//
// The automaton matches bytes; prefilter.Builder only constructs this
// strategy when every literal is pure ASCII, so each literal's UTF-8
// encoding is exactly one byte per rune and byte offsets returned by
// the automaton equal rune offsets into the original input.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	complete  bool
	litLen    int // shared length if every literal has the same length, else 0
}

func newAhoCorasickPrefilter(lits []literal.Literal) (Prefilter, bool) {
	builder := ahocorasick.NewBuilder()
	allComplete := true
	sameLen := -1
	for _, l := range lits {
		builder.AddPattern([]byte(string(l.Runes)))
		if !l.Complete {
			allComplete = false
		}
		if sameLen == -1 {
			sameLen = l.Len()
		} else if sameLen != l.Len() {
			sameLen = 0
		}
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}

	litLen := 0
	if sameLen > 0 {
		litLen = sameLen
	}
	return &ahoCorasickPrefilter{automaton: auto, complete: allComplete, litLen: litLen}, true
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }
func (p *ahoCorasickPrefilter) LiteralLen() int  { return p.litLen }

// Find returns the start of the first literal occurrence at or after
// start. Since every candidate literal is ASCII, operating on the
// []byte view of input[start:] via a 1:1 rune-to-byte encoding keeps
// offsets aligned with input's rune indices.
func (p *ahoCorasickPrefilter) Find(input []rune, start int) int {
	if start >= len(input) {
		return -1
	}
	buf := make([]byte, len(input)-start)
	for i, r := range input[start:] {
		if r > 0x7F {
			buf[i] = 0 // never matches an ASCII-only pattern literal
			continue
		}
		buf[i] = byte(r)
	}

	m := p.automaton.Find(buf, 0)
	if m == nil {
		return -1
	}
	return start + m.Start
}
