// Package dfa implements the lazy subset construction and DFA matcher of
// spec.md §4.5/§4.8: DFA states and transitions are computed on demand
// from an nfa.NFA and cached by canonicalized item set, rather than
// determinized upfront.
//
// StateID/State/StateKey/ComputeStateKey are grounded on the teacher's
// dfa/lazy/state.go, generalized from byte transitions to rune
// transitions (this module matches code points, not bytes) and with the
// look-behind/word-boundary/byte-class machinery dropped (this module
// has no assertions to determinize around).
package dfa

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/coregx/rex/nfa"
)

// StateID uniquely identifies a DFA state in the cache.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// StartState is always state ID 0.
const StartState StateID = 0

// State is a DFA state: a canonicalized set of NFA states, plus the
// transitions discovered for it so far.
type State struct {
	id          StateID
	transitions map[rune]StateID
	isMatch     bool
	nfaStates   []nfa.StateID
}

// NewState creates a DFA state with the given NFA item set.
func NewState(id StateID, nfaStates []nfa.StateID, isMatch bool) *State {
	cp := make([]nfa.StateID, len(nfaStates))
	copy(cp, nfaStates)
	return &State{
		id:          id,
		transitions: make(map[rune]StateID, 8),
		isMatch:     isMatch,
		nfaStates:   cp,
	}
}

// ID returns the state's unique identifier.
func (s *State) ID() StateID { return s.id }

// IsMatch reports whether this is an accepting state.
func (s *State) IsMatch() bool { return s.isMatch }

// Transition returns the cached next state for r, if any.
func (s *State) Transition(r rune) (StateID, bool) {
	id, ok := s.transitions[r]
	return id, ok
}

// AddTransition caches a transition from this state to next on r.
func (s *State) AddTransition(r rune, next StateID) {
	s.transitions[r] = next
}

// NFAStates returns the NFA item set this DFA state represents.
func (s *State) NFAStates() []nfa.StateID { return s.nfaStates }

func (s *State) String() string {
	return fmt.Sprintf("DFAState(id=%d, isMatch=%v, transitions=%d)", s.id, s.isMatch, len(s.transitions))
}

// StateKey canonically identifies a DFA state by its NFA item set,
// independent of the order the set was built in.
type StateKey uint64

// ComputeStateKey hashes the sorted NFA state IDs with FNV-1a, so that
// {1,2,3} and {3,2,1} produce the same key (spec.md §4.5 step 4).
func ComputeStateKey(states []nfa.StateID) StateKey {
	if len(states) == 0 {
		return StateKey(0)
	}
	sorted := make([]nfa.StateID, len(states))
	copy(sorted, states)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	for _, id := range sorted {
		_, _ = h.Write([]byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)})
	}
	return StateKey(h.Sum64())
}
