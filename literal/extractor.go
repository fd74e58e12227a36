package literal

import "github.com/coregx/rex/ast"

// ExtractorConfig bounds the work ExtractPrefixes will do, grounded on
// the teacher's literal.ExtractorConfig (MaxLiterals/MaxLiteralLen/
// MaxClassSize/CrossProductLimit), unchanged in purpose.
type ExtractorConfig struct {
	// MaxLiterals caps how many alternative literals a single
	// extraction may return (e.g. from a wide alternation).
	MaxLiterals int
	// MaxLiteralLen caps each literal's length in code points.
	MaxLiteralLen int
	// MaxClassSize caps the size of a character class the extractor
	// will expand into per-member literals; larger classes abort
	// extraction for that branch (treated as non-literal).
	MaxClassSize int
	// CrossProductLimit caps the total number of intermediate literals
	// carried through a Concat's cross-product expansion.
	CrossProductLimit int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:       64,
		MaxLiteralLen:     64,
		MaxClassSize:      10,
		CrossProductLimit: 250,
	}
}

// Extractor extracts required literal sequences from a pattern's AST.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals that must appear at the start
// of any match of root, or an empty Seq if none can be determined
// (e.g. the pattern starts with `.*` or a large class).
func (e *Extractor) ExtractPrefixes(root *ast.Node) *Seq {
	lits, exact := e.extract(root, 0)
	if !exact && len(lits) == 0 {
		return NewSeq()
	}
	lits = dedup(lits)
	if len(lits) > e.config.MaxLiterals {
		// A truncated set would let a prefilter rule out matches that
		// begin with a dropped literal.
		return NewSeq()
	}
	return NewSeq(lits...)
}

// extract returns the candidate prefix literals for n and whether that
// set is exact (n always starts with one of them) or merely a
// best-effort subset (the walk gave up partway, e.g. at a quantifier).
func (e *Extractor) extract(n *ast.Node, depth int) (lits []Literal, exact bool) {
	if depth > 100 {
		return nil, false
	}

	switch n.Kind {
	case ast.KindLiteral:
		if n.Rune == ast.EmptyLiteral {
			return []Literal{NewLiteral(nil, true)}, true
		}
		return []Literal{NewLiteral([]rune{n.Rune}, true)}, true

	case ast.KindEscaped, ast.KindTab:
		return []Literal{NewLiteral([]rune{n.Rune}, true)}, true

	case ast.KindCharClass:
		if len(n.Set) == 0 || len(n.Set) > e.config.MaxClassSize {
			return nil, false
		}
		out := make([]Literal, 0, len(n.Set))
		for _, r := range n.Set {
			out = append(out, NewLiteral([]rune{r}, true))
		}
		return out, true

	case ast.KindAlternation:
		var out []Literal
		for _, br := range n.Children {
			brLits, brExact := e.extract(br, depth+1)
			if !brExact {
				return nil, false
			}
			out = append(out, brLits...)
			if len(out) > e.config.CrossProductLimit {
				return nil, false
			}
		}
		return out, true

	case ast.KindConcat:
		return e.extractConcat(n.Children, depth+1)

	case ast.KindGroup:
		return e.extract(n.Child(), depth+1)

	case ast.KindStar, ast.KindQuestion:
		// Zero occurrences is always legal, so no prefix is required.
		return nil, false

	case ast.KindPlus:
		// At least one occurrence, so the child's own prefix still
		// applies, but anything after is no longer guaranteed.
		lits, _ = e.extract(n.Child(), depth+1)
		for i := range lits {
			lits[i].Complete = false
		}
		return lits, false

	default:
		// AnyChar, NegatedCharClass, Whitespace: no fixed literal.
		return nil, false
	}
}

// extractConcat performs the cross-product expansion of spec.md §4.11's
// EXPANSION description: walk children left to right, extending every
// accumulated literal by each subsequent exact contribution, stopping
// (and marking the result inexact) at the first child that isn't fully
// literal.
func (e *Extractor) extractConcat(children []*ast.Node, depth int) ([]Literal, bool) {
	acc := []Literal{NewLiteral(nil, true)}
	started := false
	for _, child := range children {
		childLits, exact := e.extract(child, depth)
		if len(childLits) == 0 {
			if !started {
				return nil, false
			}
			for i := range acc {
				acc[i].Complete = false
			}
			return acc, false
		}
		started = true

		var next []Literal
		for _, base := range acc {
			if !base.Complete {
				next = append(next, base)
				continue
			}
			for _, cl := range childLits {
				next = append(next, crossProduct([]Literal{base}, cl.Runes, e.config.MaxLiteralLen)...)
			}
		}
		acc = next
		if len(acc) > e.config.CrossProductLimit {
			// A truncated set no longer covers every possible prefix.
			return nil, false
		}
		if !exact {
			for i := range acc {
				acc[i].Complete = false
			}
			return acc, false
		}
	}
	return acc, true
}
