package engine

import (
	"time"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/backtrack"
	"github.com/coregx/rex/cache"
	"github.com/coregx/rex/dfa"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/parser"
	"github.com/coregx/rex/rexerr"
	"github.com/coregx/rex/simd"
)

// defaultMaxDFAStates bounds the lazy DFA's per-operation state cache.
// Not user-configurable: a cache-full operation transparently falls
// back to the NFA matcher (see dfa.Matcher), so raising or lowering
// this value only trades memory for fallback frequency.
const defaultMaxDFAStates = 10000

// Engine is the compiled-pattern cache plus the configuration every
// operation on it runs under. Grounded on the teacher's Regex type
// (owns a compiled artifact and dispatches matchFull/find/... against
// it) generalized into a long-lived orchestrator over many patterns,
// since this module's façade compiles patterns on demand rather than
// once at construction.
type Engine struct {
	cfg   Config
	cache *cache.Cache[*CompiledPattern]
}

// New creates an Engine under cfg. cfg must already be valid; callers
// that accept configuration from outside this package should call
// Config.Validate first.
func New(cfg Config) *Engine {
	size := cfg.CacheMaxSize
	if !cfg.CacheEnabled {
		size = 0
	}
	return &Engine{cfg: cfg, cache: cache.New[*CompiledPattern](size)}
}

// Match is a single [start, end) code-point span.
type Match struct {
	Start int
	End   int
}

// Result carries a match outcome together with the pattern, elapsed
// time, and work-unit counter spec.md §4.10 requires on every
// operation result.
type Result struct {
	Pattern   string
	Matched   bool
	Start     int // valid for matchFull/find; -1 otherwise
	End       int
	Matches   []Match // valid for findAll; nil otherwise
	Elapsed   time.Duration
	WorkUnits int
}

// ReplaceResult is Replace's outcome: the substituted text and how
// many replacements were made.
type ReplaceResult struct {
	Text  string
	Count int
}

func parseAndValidate(pattern string, cfg Config) (*ast.Node, error) {
	if len(pattern) > cfg.MaxPatternLength {
		return nil, &rexerr.InvalidArgumentError{Reason: "pattern exceeds MaxPatternLength"}
	}
	return parser.Parse(pattern)
}

func validateInput(input string, cfg Config) error {
	if len([]rune(input)) > cfg.MaxInputLength {
		return &rexerr.InvalidArgumentError{Reason: "input exceeds MaxInputLength"}
	}
	return nil
}

// toRunes decodes input, skipping Go's UTF-8 decode loop in favor of a
// direct byte copy when EnableASCIIOptimization is set and simd.IsASCII
// confirms every byte is a one-byte code point (spec.md §4.12
// [EXPANSION]). Either path produces the same []rune the matchers see;
// this only changes how fast decoding is, never what it decodes to.
func toRunes(input string, cfg Config) []rune {
	if cfg.EnableASCIIOptimization && simd.IsASCII([]byte(input)) {
		out := make([]rune, len(input))
		for i := 0; i < len(input); i++ {
			out[i] = rune(input[i])
		}
		return out
	}
	return []rune(input)
}

// Compile parses pattern and returns the shared artifact used by every
// subsequent operation against it, serving it from the cache when
// present (spec.md §4.10 step 2).
func (e *Engine) Compile(pattern string) (*CompiledPattern, error) {
	if cp, ok := e.cache.Get(pattern); ok {
		return cp, nil
	}
	cp, err := compile(pattern, e.cfg)
	if err != nil {
		return nil, err
	}
	e.cache.Insert(pattern, cp)
	return cp, nil
}

// boundMatcher constructs the matcher named by kind, bound to cp's
// shared NFA/AST. Matchers are cheap to build (they hold no per-input
// state until an operation runs) and are never reused across
// operations, per spec.md §5's non-thread-safety contract.
type boundMatcher struct {
	kind Kind
	bt   *backtrack.Matcher
	nf   *nfa.Matcher
	df   *dfa.Matcher
}

func newBoundMatcher(cp *CompiledPattern, cfg Config, kind Kind) *boundMatcher {
	switch kind {
	case NFA:
		return &boundMatcher{kind: kind, nf: nfa.NewMatcher(cp.nfa)}
	case DFA:
		return &boundMatcher{kind: kind, df: dfa.NewMatcher(cp.nfa, defaultMaxDFAStates)}
	default:
		return &boundMatcher{kind: Backtracking, bt: backtrack.New(cp.AST, cfg.MaxBacktracks, cfg.TimeoutMs)}
	}
}

func (b *boundMatcher) matchFull(input []rune) (bool, int, error) {
	switch b.kind {
	case NFA:
		return b.nf.MatchFull(input), b.nf.WorkUnits(), nil
	case DFA:
		return b.df.MatchFull(input), b.df.WorkUnits(), nil
	default:
		ok, err := b.bt.MatchFull(input)
		return ok, b.bt.WorkUnits(), err
	}
}

func (b *boundMatcher) find(input []rune) (start, end int, ok bool, workUnits int, err error) {
	switch b.kind {
	case NFA:
		s, e, ok := b.nf.Find(input)
		return s, e, ok, b.nf.WorkUnits(), nil
	case DFA:
		s, e, ok := b.df.Find(input)
		return s, e, ok, b.df.WorkUnits(), nil
	default:
		s, e, err := b.bt.Find(input)
		if err != nil {
			return 0, 0, false, b.bt.WorkUnits(), err
		}
		return s, e, s != -1, b.bt.WorkUnits(), nil
	}
}

func (b *boundMatcher) findAll(input []rune) ([]Match, int, error) {
	switch b.kind {
	case NFA:
		ms := b.nf.FindAll(input)
		out := make([]Match, len(ms))
		for i, m := range ms {
			out[i] = Match{Start: m.Start, End: m.End}
		}
		return out, b.nf.WorkUnits(), nil
	case DFA:
		ms := b.df.FindAll(input)
		out := make([]Match, len(ms))
		for i, m := range ms {
			out[i] = Match{Start: m.Start, End: m.End}
		}
		return out, b.df.WorkUnits(), nil
	default:
		ms, err := b.bt.FindAll(input)
		if err != nil {
			return nil, b.bt.WorkUnits(), err
		}
		out := make([]Match, len(ms))
		for i, m := range ms {
			out[i] = Match{Start: m.Start, End: m.End}
		}
		return out, b.bt.WorkUnits(), nil
	}
}

// prefilterSkip reports whether cp's prefilter proves the whole input
// cannot contain a match, letting find/findAll skip the real matcher
// entirely. A prefilter only ever narrows candidates; it never
// suppresses a genuine match (spec.md §4.11).
func prefilterSkip(cp *CompiledPattern, input []rune) bool {
	if cp.prefilters == nil {
		return false
	}
	return cp.prefilters.Find(input, 0) == -1
}

// MatchFull anchors the match at both ends of input.
func (e *Engine) MatchFull(pattern, input string, kind Kind) (Result, error) {
	cp, err := e.Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	if err := validateInput(input, e.cfg); err != nil {
		return Result{}, err
	}
	start := time.Now()
	runes := toRunes(input, e.cfg)
	bm := newBoundMatcher(cp, e.cfg, kind)
	ok, wu, err := bm.matchFull(runes)
	if err != nil {
		return Result{}, err
	}
	s, end := -1, -1
	if ok {
		s, end = 0, len(runes)
	}
	return Result{Pattern: pattern, Matched: ok, Start: s, End: end, Elapsed: time.Since(start), WorkUnits: wu}, nil
}

// Find returns the first, leftmost match.
func (e *Engine) Find(pattern, input string, kind Kind) (Result, error) {
	cp, err := e.Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	if err := validateInput(input, e.cfg); err != nil {
		return Result{}, err
	}
	start := time.Now()
	runes := toRunes(input, e.cfg)
	if e.cfg.EnablePrefilter && prefilterSkip(cp, runes) {
		return Result{Pattern: pattern, Matched: false, Start: -1, End: -1, Elapsed: time.Since(start)}, nil
	}
	bm := newBoundMatcher(cp, e.cfg, kind)
	s, end, ok, wu, err := bm.find(runes)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		s, end = -1, -1
	}
	return Result{Pattern: pattern, Matched: ok, Start: s, End: end, Elapsed: time.Since(start), WorkUnits: wu}, nil
}

// FindAll returns every non-overlapping, leftmost match in order.
func (e *Engine) FindAll(pattern, input string, kind Kind) (Result, error) {
	cp, err := e.Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	if err := validateInput(input, e.cfg); err != nil {
		return Result{}, err
	}
	start := time.Now()
	runes := toRunes(input, e.cfg)
	if e.cfg.EnablePrefilter && prefilterSkip(cp, runes) {
		return Result{Pattern: pattern, Matched: false, Start: -1, End: -1, Matches: nil, Elapsed: time.Since(start)}, nil
	}
	bm := newBoundMatcher(cp, e.cfg, kind)
	matches, wu, err := bm.findAll(runes)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Pattern:   pattern,
		Matched:   len(matches) > 0,
		Start:     -1,
		End:       -1,
		Matches:   matches,
		Elapsed:   time.Since(start),
		WorkUnits: wu,
	}, nil
}

// Replace substitutes every non-overlapping match with replacement
// (a literal string; no backreference expansion, spec.md §4.10).
func (e *Engine) Replace(pattern, input, replacement string, kind Kind) (ReplaceResult, error) {
	res, err := e.FindAll(pattern, input, kind)
	if err != nil {
		return ReplaceResult{}, err
	}
	runes := []rune(input)
	repl := []rune(replacement)
	var out []rune
	cursor := 0
	for _, m := range res.Matches {
		out = append(out, runes[cursor:m.Start]...)
		out = append(out, repl...)
		cursor = m.End
	}
	out = append(out, runes[cursor:]...)
	return ReplaceResult{Text: string(out), Count: len(res.Matches)}, nil
}

// Split cuts input at every non-overlapping match, returning the
// N+1 segments surrounding N matches. Adjacent matches, or a match at
// either boundary, produce empty-string segments.
func (e *Engine) Split(pattern, input string, kind Kind) ([]string, error) {
	res, err := e.FindAll(pattern, input, kind)
	if err != nil {
		return nil, err
	}
	runes := []rune(input)
	parts := make([]string, 0, len(res.Matches)+1)
	cursor := 0
	for _, m := range res.Matches {
		parts = append(parts, string(runes[cursor:m.Start]))
		cursor = m.End
	}
	parts = append(parts, string(runes[cursor:]))
	return parts, nil
}
