package prefilter

import "github.com/coregx/rex/literal"

// substringPrefilter scans for a single literal rune sequence. No
// assembly/SIMD (DESIGN.md scope decision): a plain rune loop, grounded
// on the teacher's memmemPrefilter in shape (wraps one literal, reports
// completeness) but implemented in portable Go since this module
// matches code points rather than bytes.
type substringPrefilter struct {
	needle   []rune
	complete bool
}

func newSubstringPrefilter(lit literal.Literal) Prefilter {
	return &substringPrefilter{needle: lit.Runes, complete: lit.Complete}
}

func (p *substringPrefilter) IsComplete() bool { return p.complete }
func (p *substringPrefilter) LiteralLen() int  { return len(p.needle) }

// Find returns the first index >= start at which needle occurs in
// input, or -1.
func (p *substringPrefilter) Find(input []rune, start int) int {
	n := len(p.needle)
	if n == 0 {
		return start
	}
	for i := start; i+n <= len(input); i++ {
		if runesEqual(input[i:i+n], p.needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
