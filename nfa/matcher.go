package nfa

import "github.com/coregx/rex/internal/sparse"

// Matcher implements the two-set ε-closure NFA simulation of spec.md
// §4.7. It carries no state between calls other than reusable scratch
// sets, so one Matcher can be reused across many operations against the
// same NFA (it is not safe for concurrent use, per spec.md §5).
type Matcher struct {
	nfa *NFA

	cur, next *sparse.SparseSet
	stack     []StateID // scratch for closure DFS
	workUnits int
}

// NewMatcher creates a Matcher bound to n.
func NewMatcher(n *NFA) *Matcher {
	size := uint32(len(n.States)) + 1
	return &Matcher{
		nfa:  n,
		cur:  sparse.NewSparseSet(size),
		next: sparse.NewSparseSet(size),
	}
}

// WorkUnits returns the work-unit counter (state visits + ε-edges
// traversed) accumulated by the most recent operation.
func (m *Matcher) WorkUnits() int { return m.workUnits }

// closure adds seed and its ε-closure to set, using m.stack as scratch. Split/Epsilon states are expanded; every
// other kind is a "real" state that stops the closure at that point.
func (m *Matcher) closure(set *sparse.SparseSet, seed StateID) {
	m.stack = append(m.stack[:0], seed)
	for len(m.stack) > 0 {
		id := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		if set.Contains(uint32(id)) {
			continue
		}
		set.Insert(uint32(id))
		m.workUnits++

		s := &m.nfa.States[id]
		switch s.Kind {
		case EdgeEpsilon:
			m.stack = append(m.stack, s.Next)
			m.workUnits++
		case EdgeSplit:
			m.stack = append(m.stack, s.Next, s.Next2)
			m.workUnits += 2
		}
	}
}

// step computes, for every "real" (non-epsilon) state in cur that
// consumes r, the set of states reached, writing their ε-closures into
// next (which must start empty).
func (m *Matcher) step(cur *sparse.SparseSet, r rune, hasInput bool, next *sparse.SparseSet) {
	cur.Iter(func(raw uint32) {
		id := StateID(raw)
		s := &m.nfa.States[id]
		if !hasInput {
			return
		}
		if matchesEdge(s, r) {
			m.closure(next, s.Next)
		}
	})
}

// matchesEdge reports whether state s (a non-epsilon, non-split state)
// consumes r.
func matchesEdge(s *State, r rune) bool {
	switch s.Kind {
	case EdgeLiteral:
		return s.Rune == r
	case EdgeAny:
		return r != '\n' && r != '\r'
	case EdgeWhitespace:
		return WhitespaceClass[r]
	case EdgeClass:
		if s.Negated {
			return !s.Set[r] && r != '\n' && r != '\r'
		}
		return s.Set[r]
	default:
		return false
	}
}

func (m *Matcher) anyAccepting(set *sparse.SparseSet) bool {
	found := false
	set.Iter(func(raw uint32) {
		if StateID(raw) == m.nfa.Accept {
			found = true
		}
	})
	return found
}

// MatchFull reports whether the entire input matches the pattern
// (spec.md §4.7 step 1-3).
func (m *Matcher) MatchFull(input []rune) bool {
	m.workUnits = 0
	m.cur.Clear()
	m.closure(m.cur, m.nfa.Start)

	for _, r := range input {
		m.next.Clear()
		m.step(m.cur, r, true, m.next)
		if m.next.IsEmpty() {
			return false
		}
		m.cur, m.next = m.next, m.cur
	}

	return m.anyAccepting(m.cur)
}

// Find runs the simulation from every start position 0..=len(input) and
// returns the leftmost match with the longest end for that start
// (leftmost-longest, spec.md §4.7/§9). ok is false if no start position
// reaches an accepting state.
func (m *Matcher) Find(input []rune) (start, end int, ok bool) {
	m.workUnits = 0
	for s := 0; s <= len(input); s++ {
		if e, found := m.simulateFrom(input, s); found {
			return s, e, true
		}
	}
	return -1, -1, false
}

// simulateFrom runs the simulation starting at position s, returning
// the largest position at which an accepting state was seen.
func (m *Matcher) simulateFrom(input []rune, s int) (end int, found bool) {
	m.cur.Clear()
	m.closure(m.cur, m.nfa.Start)

	if m.anyAccepting(m.cur) {
		end, found = s, true
	}

	for i := s; i < len(input); i++ {
		m.next.Clear()
		m.step(m.cur, input[i], true, m.next)
		if m.next.IsEmpty() {
			break
		}
		m.cur, m.next = m.next, m.cur
		if m.anyAccepting(m.cur) {
			end, found = i+1, true
		}
	}
	return end, found
}

// FindAll repeatedly calls Find, resuming the search at
// max(matchEnd, matchStart+1) after each hit to guarantee progress on
// zero-width matches (spec.md §4.7).
func (m *Matcher) FindAll(input []rune) []Match {
	var matches []Match
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
		matches = append(matches, Match{Start: s, End: e})
		if e > pos {
			pos = e
		} else {
			pos++
		}
	}
	return matches
}

// Match is one findAll hit.
type Match struct {
	Start, End int
}
