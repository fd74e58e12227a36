// Package literal extracts literal rune sequences from a pattern's AST
// for use as a prefilter (spec.md §9/§4.11's EXPANSION): scanning for a
// required substring (or set of candidate substrings) before running a
// full matcher lets find/findAll skip most non-matching input cheaply.
// This package only narrows candidate regions; it never changes match
// semantics, so the matchers remain the sole source of truth.
//
// Grounded on the teacher's literal/seq.go and literal/extractor.go,
// generalized from []byte to []rune (this module matches code points)
// and adapted to walk ast.Node instead of regexp/syntax.Regexp.
package literal

// Literal is a literal rune sequence that may appear in matches.
// Complete reports whether the literal represents an entire match by
// itself (true) or merely a necessary prefix/substring (false).
type Literal struct {
	Runes    []rune
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(r []rune, complete bool) Literal {
	return Literal{Runes: r, Complete: complete}
}

// Len returns the literal's length in code points.
func (l Literal) Len() int { return len(l.Runes) }

func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Runes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals, one of which must occur for a
// match to be possible (e.g. from an alternation like /foo|bar/).
type Seq struct {
	literals []Literal
}

// NewSeq creates a Seq from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int { return len(s.literals) }

// IsEmpty reports whether the sequence carries no literals (nothing
// was extractable — the caller must fall back to running the matcher
// directly, with no prefilter).
func (s *Seq) IsEmpty() bool { return s == nil || len(s.literals) == 0 }

// Literals returns the sequence's members.
func (s *Seq) Literals() []Literal {
	if s == nil {
		return nil
	}
	return s.literals
}

// AllComplete reports whether every literal in the sequence is a
// complete match by itself.
func (s *Seq) AllComplete() bool {
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}

// crossProduct extends every literal in acc with suffix, dropping
// Complete on any literal that grows past maxLen (the extractor can no
// longer guarantee the full literal is captured).
func crossProduct(acc []Literal, suffix []rune, maxLen int) []Literal {
	out := make([]Literal, 0, len(acc))
	for _, l := range acc {
		combined := append(append([]rune(nil), l.Runes...), suffix...)
		complete := l.Complete
		if len(combined) > maxLen {
			combined = combined[:maxLen]
			complete = false
		}
		out = append(out, Literal{Runes: combined, Complete: complete})
	}
	return out
}

// dedup removes duplicate literals (by rune content), preserving order
// of first occurrence.
func dedup(lits []Literal) []Literal {
	seen := make(map[string]bool, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		key := string(l.Runes)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}
