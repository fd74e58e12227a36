package engine

import (
	"time"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/prefilter"
)

// CompiledPattern is the artifact produced by Compile/CompileWithConfig:
// the parsed AST plus everything derived from it once, shared across
// every matchFull/find/findAll/replace/split call for this pattern
// (spec.md §4.10).
type CompiledPattern struct {
	Pattern string
	AST     *ast.Node
	Pretty  string
	Elapsed time.Duration

	nfa        *nfa.NFA
	prefilters prefilter.Prefilter
	literals   *literal.Seq
}

// compile parses pattern and builds everything downstream of the AST:
// the NFA (shared by the NFA and DFA matchers) and, when enabled, the
// literal prefilter. Matchers themselves are constructed fresh per
// operation, since spec.md §5 forbids sharing a matcher across
// concurrent operations.
func compile(pattern string, cfg Config) (*CompiledPattern, error) {
	start := time.Now()

	root, err := parseAndValidate(pattern, cfg)
	if err != nil {
		return nil, err
	}

	n := nfa.Build(root)

	cp := &CompiledPattern{
		Pattern: pattern,
		AST:     root,
		Pretty:  root.Pretty(),
		nfa:     n,
	}

	if cfg.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:       cfg.MaxLiterals,
			MaxLiteralLen:     literal.DefaultConfig().MaxLiteralLen,
			MaxClassSize:      literal.DefaultConfig().MaxClassSize,
			CrossProductLimit: literal.DefaultConfig().CrossProductLimit,
		})
		seq := extractor.ExtractPrefixes(root)
		if !seq.IsEmpty() && seq.Len() > 0 && longestLiteral(seq) >= cfg.MinLiteralLen {
			cp.literals = seq
			cp.prefilters = prefilter.NewBuilder(seq).Build()
		}
	}

	cp.Elapsed = time.Since(start)
	return cp, nil
}

func longestLiteral(seq *literal.Seq) int {
	max := 0
	for _, l := range seq.Literals() {
		if l.Len() > max {
			max = l.Len()
		}
	}
	return max
}
