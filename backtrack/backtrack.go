// Package backtrack implements the AST-level continuation-passing
// matcher of spec.md §4.6: a logical recursion over the pattern's AST
// carrying an input cursor and a "what to do next" continuation, with
// iterative greedy quantifiers and bounded backtrack/timeout resource
// limits.
//
// Grounded on the teacher's nfa.BoundedBacktracker for its
// bounded-resource framing (a configurable budget, exceeding it aborts
// the search rather than running unbounded) and its dispatch-by-kind
// recursion shape; adapted from NFA-state bit-vector visited tracking
// to AST-node recursion, since spec.md §9 requires the greedy loop to
// be iterative over the AST rather than an NFA-state walk.
package backtrack

import (
	"time"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/rexerr"
)

// Matcher runs continuation-passing backtracking search over one AST
// against one input. Not safe for concurrent use, and carries per-run
// mutable state (spec.md §5); MatchFull and Find reset that state on
// entry, so one Matcher can be reused for sequential calls.
type Matcher struct {
	root *ast.Node

	maxBacktracks int
	timeoutMs     int64

	input      []rune
	backtracks int
	workUnits  int
	start      time.Time
	aborted    error
}

// New creates a Matcher for root, bounded by maxBacktracks backtrack
// steps and timeoutMs milliseconds of wall-clock time. A non-positive
// maxBacktracks or timeoutMs disables that limit.
func New(root *ast.Node, maxBacktracks int, timeoutMs int64) *Matcher {
	return &Matcher{root: root, maxBacktracks: maxBacktracks, timeoutMs: timeoutMs}
}

// WorkUnits returns the work-unit counter (AST nodes visited; backtrack
// steps are counted separately, against maxBacktracks) from the most
// recent operation.
func (m *Matcher) WorkUnits() int { return m.workUnits }

func (m *Matcher) reset(input []rune) {
	m.input = input
	m.backtracks = 0
	m.workUnits = 0
	m.start = time.Now()
	m.aborted = nil
}

// checkLimits reports whether the search should abort, recording the
// reason in m.aborted the first time it trips.
func (m *Matcher) checkLimits() bool {
	if m.aborted != nil {
		return true
	}
	if m.maxBacktracks > 0 && m.backtracks > m.maxBacktracks {
		m.aborted = &rexerr.BacktrackLimitExceededError{Limit: m.maxBacktracks, Actual: m.backtracks}
		return true
	}
	if m.timeoutMs > 0 {
		elapsed := time.Since(m.start).Milliseconds()
		if elapsed > m.timeoutMs {
			m.aborted = &rexerr.TimeoutError{TimeoutMs: m.timeoutMs, ElapsedMs: elapsed}
			return true
		}
	}
	return false
}

// cont is the "what to do next" continuation: given the cursor
// reached so far, report whether the remainder of the match succeeds.
type cont func(pos int) bool

// MatchFull reports whether the entire input matches, starting at
// position 0 (spec.md §4.6). err is non-nil only if a resource limit
// was hit.
func (m *Matcher) MatchFull(input []rune) (bool, error) {
	m.reset(input)
	ok := m.match(m.root, 0, func(pos int) bool { return pos == len(m.input) })
	if m.aborted != nil {
		return false, m.aborted
	}
	return ok, nil
}

// Find attempts a match at each start position 0..=len(input), leftmost
// first: the first start position for which any run succeeds wins, and
// its end is whatever position the first successful run reached
// (leftmost-first, not leftmost-longest; spec.md §4.6).
func (m *Matcher) Find(input []rune) (start, end int, err error) {
	m.reset(input)
	for s := 0; s <= len(input); s++ {
		matchEnd := -1
		m.match(m.root, s, func(pos int) bool {
			matchEnd = pos
			return true
		})
		if m.aborted != nil {
			return -1, -1, m.aborted
		}
		if matchEnd >= 0 {
			return s, matchEnd, nil
		}
	}
	return -1, -1, nil
}

// FindAll repeatedly calls Find, resuming at max(matchEnd,
// matchStart+1) after each hit to guarantee progress on zero-width
// matches (spec.md §4.6).
func (m *Matcher) FindAll(input []rune) ([]Match, error) {
	var matches []Match
	pos := 0
	total := 0
	defer func() { m.workUnits = total }()
	for pos <= len(input) {
		s, e, err := m.Find(input[pos:])
		total += m.workUnits
		if err != nil {
			return matches, err
		}
		if s < 0 {
			break
		}
		s += pos
		e += pos
		matches = append(matches, Match{Start: s, End: e})
		if e > pos {
			pos = e
		} else {
			pos++
		}
	}
	return matches, nil
}

// Match is one findAll hit.
type Match struct {
	Start, End int
}

// match dispatches on n's kind, implementing Thompson-style
// continuation-passing over the AST rather than the NFA (spec.md §4.6).
func (m *Matcher) match(n *ast.Node, pos int, k cont) bool {
	if m.checkLimits() {
		return false
	}
	m.workUnits++

	switch n.Kind {
	case ast.KindLiteral:
		if n.Rune == ast.EmptyLiteral {
			return k(pos)
		}
		return m.matchAtom(pos, k, func(r rune) bool { return r == n.Rune })
	case ast.KindEscaped, ast.KindTab:
		return m.matchAtom(pos, k, func(r rune) bool { return r == n.Rune })
	case ast.KindWhitespace:
		return m.matchAtom(pos, k, func(r rune) bool { return isWhitespace(r) })
	case ast.KindAnyChar:
		return m.matchAtom(pos, k, func(r rune) bool { return r != '\n' && r != '\r' })
	case ast.KindCharClass:
		set := toSet(n.Set)
		return m.matchAtom(pos, k, func(r rune) bool { return set[r] })
	case ast.KindNegatedCharClass:
		set := toSet(n.Set)
		return m.matchAtom(pos, k, func(r rune) bool { return !set[r] && r != '\n' && r != '\r' })
	case ast.KindConcat:
		return m.matchConcat(n.Children, pos, k)
	case ast.KindAlternation:
		return m.matchAlternation(n.Children, pos, k)
	case ast.KindStar:
		return m.matchQuantifier(n.Child(), pos, 0, -1, k)
	case ast.KindPlus:
		return m.matchQuantifier(n.Child(), pos, 1, -1, k)
	case ast.KindQuestion:
		return m.matchQuantifier(n.Child(), pos, 0, 1, k)
	case ast.KindGroup:
		return m.match(n.Child(), pos, k)
	default:
		m.aborted = &rexerr.InternalError{Message: "backtrack: unknown ast.Kind"}
		return false
	}
}

// matchAtom consumes exactly one code point satisfying pred, then
// invokes k. The cursor is never mutated in place, only passed by
// value, so a failing continuation automatically leaves the caller
// free to try another alternative at the original position.
func (m *Matcher) matchAtom(pos int, k cont, pred func(rune) bool) bool {
	if pos >= len(m.input) {
		return false
	}
	if !pred(m.input[pos]) {
		return false
	}
	return k(pos + 1)
}

// matchConcat chains children left to right via nested continuations.
func (m *Matcher) matchConcat(children []*ast.Node, pos int, k cont) bool {
	if len(children) == 0 {
		return k(pos)
	}
	return m.match(children[0], pos, func(p int) bool {
		return m.matchConcat(children[1:], p, k)
	})
}

// matchAlternation tries branches left to right; each failing branch
// counts as a backtrack step (spec.md §4.6).
func (m *Matcher) matchAlternation(branches []*ast.Node, pos int, k cont) bool {
	for i, br := range branches {
		if i > 0 {
			m.backtracks++
			if m.checkLimits() {
				return false
			}
		}
		if m.match(br, pos, k) {
			return true
		}
	}
	return false
}

// matchQuantifier implements spec.md §4.6's greedy iterative
// algorithm: collect every position reachable by repeating child
// (stopping on a zero-width iteration or when max is reached), then
// try the continuation from the longest reach down to the minimum
// required, each step down counting as a backtrack.
func (m *Matcher) matchQuantifier(child *ast.Node, pos int, minCount, maxCount int, k cont) bool {
	positions := []int{pos}
	cur := pos
	for maxCount < 0 || len(positions)-1 < maxCount {
		if m.checkLimits() {
			return false
		}
		next := -1
		m.match(child, cur, func(p int) bool {
			next = p
			return true
		})
		if m.aborted != nil {
			return false
		}
		if next < 0 || next == cur {
			break
		}
		positions = append(positions, next)
		cur = next
	}

	for i := len(positions) - 1; i >= minCount; i-- {
		if i != len(positions)-1 {
			m.backtracks++
			if m.checkLimits() {
				return false
			}
		}
		if k(positions[i]) {
			return true
		}
	}
	return false
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func toSet(runes []rune) map[rune]bool {
	m := make(map[rune]bool, len(runes))
	for _, r := range runes {
		m[r] = true
	}
	return m
}
