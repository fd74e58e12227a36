package dfa

import (
	"github.com/coregx/rex/nfa"
)

// Matcher drives the lazy subset construction of spec.md §4.5 over an
// NFA, caching discovered DFA states and transitions. It is single-owner
// for its lifetime (spec.md §5): the transition cache is mutable.
//
// When the cache fills before a search completes, the matcher falls
// back to simulating the remaining search directly on the NFA (spec.md
// §9's resolution of the "what happens when MaxDFAStates is exceeded"
// open question), rather than erroring the whole operation.
type Matcher struct {
	nfa       *nfa.NFA
	cache     *Cache
	nfaFallbk *nfa.Matcher
	workUnits int
}

// NewMatcher creates a Matcher bound to n, capping the live DFA state
// count at maxStates.
func NewMatcher(n *nfa.NFA, maxStates uint32) *Matcher {
	if maxStates == 0 {
		maxStates = 1
	}
	return &Matcher{
		nfa:       n,
		cache:     NewCache(maxStates),
		nfaFallbk: nfa.NewMatcher(n),
	}
}

// WorkUnits returns the work-unit counter accumulated by the most
// recent operation (DFA state visits, plus any NFA work performed after
// a fallback).
func (m *Matcher) WorkUnits() int { return m.workUnits }

// startState returns (creating if necessary) the DFA state representing
// ε-closure({nfa.Start}).
func (m *Matcher) startState() (*State, bool) {
	items := nfa.Closure(m.nfa, []nfa.StateID{m.nfa.Start})
	key := ComputeStateKey(items)
	if s, ok := m.cache.Get(key); ok {
		return s, true
	}
	s := NewState(InvalidState, items, nfa.AnyAccepting(m.nfa, items))
	id, ok := m.cache.Insert(key, s)
	if !ok {
		return nil, false
	}
	s.id = id
	return s, true
}

// step returns the DFA state reached from s on r, computing and caching
// it if this is the first traversal of that edge (spec.md §4.5 steps
// 1-5). dead is true if the transition has no successor; cacheFull is
// true if the cache is full and a new state would be required. next is
// nil in both cases.
func (m *Matcher) step(s *State, r rune) (next *State, dead bool, cacheFull bool) {
	if id, ok := s.Transition(r); ok {
		if id == InvalidState {
			return nil, true, false
		}
		cached, _ := m.cache.GetByID(id)
		return cached, false, false
	}

	items := nfa.Move(m.nfa, s.NFAStates(), r)
	if len(items) == 0 {
		s.AddTransition(r, InvalidState)
		return nil, true, false
	}

	key := ComputeStateKey(items)
	if cached, ok := m.cache.Get(key); ok {
		s.AddTransition(r, cached.id)
		return cached, false, false
	}

	candidate := NewState(InvalidState, items, nfa.AnyAccepting(m.nfa, items))
	id, ok := m.cache.Insert(key, candidate)
	if !ok {
		return nil, false, true
	}
	candidate.id = id
	s.AddTransition(r, id)
	return candidate, false, false
}

// MatchFull reports whether the entire input matches (spec.md §4.8).
func (m *Matcher) MatchFull(input []rune) bool {
	m.workUnits = 0
	cur, ok := m.startState()
	if !ok {
		return m.matchFullViaNFA(input)
	}

	for _, r := range input {
		m.workUnits++
		next, dead, full := m.step(cur, r)
		if dead {
			return false
		}
		if full {
			return m.matchFullViaNFA(input)
		}
		cur = next
	}
	return cur.IsMatch()
}

// matchFullViaNFA restarts the whole operation on the NFA matcher; used
// when the DFA cache fills mid-search (spec.md §9).
func (m *Matcher) matchFullViaNFA(input []rune) bool {
	ok := m.nfaFallbk.MatchFull(input)
	m.workUnits += m.nfaFallbk.WorkUnits()
	return ok
}

// Find walks the DFA from each start position, tracking the last
// accepting position reached, choosing the leftmost start with any
// accept and the longest end for that start (spec.md §4.8).
func (m *Matcher) Find(input []rune) (start, end int, ok bool) {
	m.workUnits = 0
	for s := 0; s <= len(input); s++ {
		if e, found, fellBack := m.simulateFrom(input, s); fellBack {
			s2, e2, ok2 := m.nfaFallbk.Find(input[s:])
			m.workUnits += m.nfaFallbk.WorkUnits()
			if ok2 {
				return s + s2, s + e2, true
			}
			return -1, -1, false
		} else if found {
			return s, e, true
		}
	}
	return -1, -1, false
}

// simulateFrom walks the DFA starting at position s. fellBack is true
// if the cache filled mid-walk and the caller must retry via the NFA.
func (m *Matcher) simulateFrom(input []rune, s int) (end int, found bool, fellBack bool) {
	cur, ok := m.startState()
	if !ok {
		return 0, false, true
	}
	if cur.IsMatch() {
		end, found = s, true
	}

	for i := s; i < len(input); i++ {
		m.workUnits++
		next, dead, full := m.step(cur, input[i])
		if dead {
			break
		}
		if full {
			return 0, false, true
		}
		cur = next
		if cur.IsMatch() {
			end, found = i+1, true
		}
	}
	return end, found, false
}

// FindAll iterates Find, resuming at max(matchEnd, matchStart+1) after
// each hit to guarantee progress on zero-width matches (spec.md §4.8).
func (m *Matcher) FindAll(input []rune) []nfa.Match {
	var matches []nfa.Match
	pos := 0
	total := 0
	defer func() { m.workUnits = total }()
	for pos <= len(input) {
		s, e, ok := m.Find(input[pos:])
		total += m.workUnits
		if !ok {
			break
		}
		s += pos
		e += pos
		matches = append(matches, nfa.Match{Start: s, End: e})
		if e > pos {
			pos = e
		} else {
			pos++
		}
	}
	return matches
}
