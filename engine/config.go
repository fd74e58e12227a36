// Package engine implements the operations surface of spec.md §4.10:
// pattern compilation (with caching), matcher dispatch across the three
// engines, and the replace/split operations built atop findAll.
//
// Grounded on the teacher's meta package: meta.Config/DefaultConfig/
// Validate for the configuration shape, and meta's compile-then-dispatch
// orchestration for the operations surface, adapted from the teacher's
// automatic strategy *selection* (DFA vs NFA vs reverse-search
// heuristics) to this module's explicit engine *choice* per spec §6
// (Backtracking/NFA/DFA selected by the caller, not inferred).
package engine

import (
	"fmt"

	"github.com/coregx/rex/rexerr"
)

// Kind selects which matcher executes an operation (spec.md §6).
type Kind int

const (
	Backtracking Kind = iota
	NFA
	DFA
)

func (k Kind) String() string {
	switch k {
	case Backtracking:
		return "Backtracking"
	case NFA:
		return "NFA"
	case DFA:
		return "DFA"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Config holds every runtime parameter of spec.md §6's configuration
// table, plus the EXPANSION's ambient performance knobs. None of the
// EXPANSION fields change matching semantics — only speed and the
// work-unit counter trend (spec.md §4.11).
type Config struct {
	// MaxPatternLength rejects longer patterns with InvalidArgument.
	MaxPatternLength int
	// MaxInputLength rejects longer inputs with InvalidArgument.
	MaxInputLength int
	// MaxBacktracks is the backtracker's abort threshold.
	MaxBacktracks int
	// TimeoutMs is the per-operation wall-clock limit of the
	// Backtracking engine. The NFA and DFA engines do not check it.
	TimeoutMs int64
	// CacheEnabled, if false, bypasses the compiled-pattern cache on
	// every compile.
	CacheEnabled bool
	// CacheMaxSize bounds the compiled-pattern cache's entry count.
	CacheMaxSize int

	// EnablePrefilter [EXPANSION] enables literal-based prefiltering
	// ahead of find/findAll on all three engines.
	EnablePrefilter bool
	// MinLiteralLen [EXPANSION] is the minimum literal length worth
	// prefiltering on.
	MinLiteralLen int
	// MaxLiterals [EXPANSION] caps how many alternative literals are
	// extracted for prefiltering.
	MaxLiterals int
	// EnableASCIIOptimization [EXPANSION] lets the engine convert a
	// pure-ASCII input to runes by direct byte copy instead of UTF-8
	// decoding; the matchers see the same []rune either way.
	EnableASCIIOptimization bool
}

// DefaultConfig returns spec.md §6's default configuration.
func DefaultConfig() Config {
	return Config{
		MaxPatternLength:        10000,
		MaxInputLength:          1000000,
		MaxBacktracks:           100000,
		TimeoutMs:               30000,
		CacheEnabled:            true,
		CacheMaxSize:            1000,
		EnablePrefilter:         true,
		MinLiteralLen:           1,
		MaxLiterals:             64,
		EnableASCIIOptimization: true,
	}
}

// Validate reports whether every field is within an acceptable range.
func (c Config) Validate() error {
	switch {
	case c.MaxPatternLength <= 0:
		return &rexerr.InvalidArgumentError{Reason: "MaxPatternLength must be positive"}
	case c.MaxInputLength <= 0:
		return &rexerr.InvalidArgumentError{Reason: "MaxInputLength must be positive"}
	case c.MaxBacktracks < 0:
		return &rexerr.InvalidArgumentError{Reason: "MaxBacktracks must be non-negative"}
	case c.TimeoutMs < 0:
		return &rexerr.InvalidArgumentError{Reason: "TimeoutMs must be non-negative"}
	case c.CacheMaxSize < 0:
		return &rexerr.InvalidArgumentError{Reason: "CacheMaxSize must be non-negative"}
	case c.MinLiteralLen < 0:
		return &rexerr.InvalidArgumentError{Reason: "MinLiteralLen must be non-negative"}
	case c.MaxLiterals < 0:
		return &rexerr.InvalidArgumentError{Reason: "MaxLiterals must be non-negative"}
	default:
		return nil
	}
}
