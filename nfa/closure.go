package nfa

import (
	"sort"

	"github.com/coregx/rex/internal/sparse"
)

// Closure returns the ε-closure of seeds as a sorted slice of StateIDs.
// Exported for the dfa package's lazy subset construction (spec.md §4.5),
// which needs to compute closures and moves over arbitrary NFA item sets
// rather than the two fixed running sets nfa.Matcher keeps.
func Closure(n *NFA, seeds []StateID) []StateID {
	set := sparse.NewSparseSet(uint32(len(n.States)) + 1)
	stack := append([]StateID(nil), seeds...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if set.Contains(uint32(id)) {
			continue
		}
		set.Insert(uint32(id))

		s := &n.States[id]
		switch s.Kind {
		case EdgeEpsilon:
			stack = append(stack, s.Next)
		case EdgeSplit:
			stack = append(stack, s.Next, s.Next2)
		}
	}
	return toSorted(set)
}

// Move returns the ε-closure of every state reachable from one state in
// states by consuming r (spec.md §4.5 step 2-3): the union, over states
// in the set, of their targets on r, closed.
func Move(n *NFA, states []StateID, r rune) []StateID {
	var seeds []StateID
	for _, id := range states {
		s := &n.States[id]
		if matchesEdge(s, r) {
			seeds = append(seeds, s.Next)
		}
	}
	if len(seeds) == 0 {
		return nil
	}
	return Closure(n, seeds)
}

// AnyAccepting reports whether states contains the NFA's accept state.
func AnyAccepting(n *NFA, states []StateID) bool {
	for _, id := range states {
		if id == n.Accept {
			return true
		}
	}
	return false
}

func toSorted(set *sparse.SparseSet) []StateID {
	var out []StateID
	set.Iter(func(raw uint32) {
		out = append(out, StateID(raw))
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
