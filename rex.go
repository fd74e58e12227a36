// Package rex is the public façade over this module's regex engine
// (spec.md §6): lex -> parse -> AST -> NFA/DFA/backtracking matcher,
// with three interchangeable engines selected per call.
//
// Grounded on the teacher's root regex.go (Regex/Compile/MustCompile
// as the package's public entry points), generalized from a single
// bound Regex value into free functions that each take the engine to
// run under, per spec.md §6's explicit three-engine selection
// requirement.
package rex

import "github.com/coregx/rex/engine"

// Engine selects which matcher a call runs under.
type Engine = engine.Kind

const (
	Backtracking = engine.Backtracking
	NFA          = engine.NFA
	DFA          = engine.DFA
)

// Config is the engine's runtime configuration (spec.md §6).
type Config = engine.Config

// DefaultConfig returns spec.md §6's default configuration.
func DefaultConfig() Config { return engine.DefaultConfig() }

// CompiledPattern is the artifact Compile/CompileWithConfig produce.
type CompiledPattern = engine.CompiledPattern

// Match is a single [Start, End) code-point span.
type Match = engine.Match

// Result carries a match outcome plus the pattern, elapsed time, and
// work-unit counter spec.md §4.10 attaches to every operation result.
type Result = engine.Result

// ReplaceResult is Replace's outcome.
type ReplaceResult = engine.ReplaceResult

// defaultEngine backs every operation below except CompileWithConfig:
// Compile/MatchFull/Find/FindAll/Replace/Split all run under
// DefaultConfig's limits and share its compiled-pattern cache.
// CompileWithConfig builds under a caller-supplied Config instead, for
// callers that only need the compiled artifact's AST/Pretty output
// under custom limits rather than a matching call.
var defaultEngine = engine.New(DefaultConfig())

// Compile parses pattern and returns the shared compiled artifact used
// internally by every subsequent call against it.
func Compile(pattern string) (*CompiledPattern, error) {
	return defaultEngine.Compile(pattern)
}

// CompileWithConfig parses pattern under cfg instead of DefaultConfig.
func CompileWithConfig(pattern string, cfg Config) (*CompiledPattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return engine.New(cfg).Compile(pattern)
}

// MatchFull reports whether pattern matches input in its entirety.
func MatchFull(pattern, input string, eng Engine) (Result, error) {
	return defaultEngine.MatchFull(pattern, input, eng)
}

// Find returns the first, leftmost match of pattern in input.
func Find(pattern, input string, eng Engine) (Result, error) {
	return defaultEngine.Find(pattern, input, eng)
}

// FindAll returns every non-overlapping, leftmost match of pattern in
// input, in order.
func FindAll(pattern, input string, eng Engine) (Result, error) {
	return defaultEngine.FindAll(pattern, input, eng)
}

// Replace substitutes every non-overlapping match of pattern in input
// with replacement, a literal string with no backreference expansion.
func Replace(pattern, input, replacement string, eng Engine) (ReplaceResult, error) {
	return defaultEngine.Replace(pattern, input, replacement, eng)
}

// Split cuts input at every non-overlapping match of pattern.
func Split(pattern, input string, eng Engine) ([]string, error) {
	return defaultEngine.Split(pattern, input, eng)
}
