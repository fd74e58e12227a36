package dfa

import (
	"testing"

	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/parser"
)

func buildNFA(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse(%q) error: %v", pattern, err)
	}
	return nfa.Build(n)
}

func TestMatcher_MatchFull(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"a|b", "a", true},
		{"a*", "aaaa", true},
		{"a*", "", true},
		{"a+", "", false},
		{"[a-z]+", "hello", true},
		{"[a-z]+", "Hello", false},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			n := buildNFA(t, tt.pattern)
			m := NewMatcher(n, 1024)
			if got := m.MatchFull([]rune(tt.input)); got != tt.want {
				t.Errorf("MatchFull(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestMatcher_Find(t *testing.T) {
	n := buildNFA(t, "[0-9]+")
	m := NewMatcher(n, 1024)
	s, e, ok := m.Find([]rune("ab123cd"))
	if !ok || s != 2 || e != 5 {
		t.Fatalf("Find = (%d, %d, %v), want (2, 5, true)", s, e, ok)
	}
}

func TestMatcher_FindAll(t *testing.T) {
	n := buildNFA(t, "[0-9]+")
	m := NewMatcher(n, 1024)
	got := m.FindAll([]rune("a12b345c6"))
	want := []nfa.Match{{Start: 1, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 9}}
	if len(got) != len(want) {
		t.Fatalf("FindAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindAll[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestStateCanonicalization verifies spec.md §8 item 6: two DFA
// traversals that reach the same NFA item set must be the same DFA
// state object (by ID), not merely equal in content.
func TestStateCanonicalization(t *testing.T) {
	// In a(bc|bd), the 'b' transition out of the post-'a' state leads to
	// one item set covering both branches; traversing that edge twice
	// must resolve to the same cached DFA state.
	n := buildNFA(t, "a(bc|bd)")
	m := NewMatcher(n, 1024)

	start, ok := m.startState()
	if !ok {
		t.Fatal("startState failed")
	}
	afterA, dead, full := m.step(start, 'a')
	if dead || full {
		t.Fatalf("step(start, 'a') dead=%v full=%v", dead, full)
	}

	// Transition on 'b' from the post-'a' state twice; both calls must
	// hit the cache and return the identical *State.
	first, dead, full := m.step(afterA, 'b')
	if dead || full {
		t.Fatalf("step(afterA, 'b') dead=%v full=%v", dead, full)
	}
	second, dead, full := m.step(afterA, 'b')
	if dead || full {
		t.Fatalf("second step(afterA, 'b') dead=%v full=%v", dead, full)
	}
	if first != second {
		t.Errorf("repeated transition on the same state/char produced different State objects: %p vs %p", first, second)
	}
}

func TestMatcher_CacheFullFallsBackToNFA(t *testing.T) {
	n := buildNFA(t, "[a-z]+")
	m := NewMatcher(n, 1) // start state alone exhausts the cache
	if !m.MatchFull([]rune("hello")) {
		t.Error("MatchFull should still succeed via NFA fallback when the DFA cache is full")
	}
	if m.MatchFull([]rune("HELLO")) {
		t.Error("fallback result should still respect pattern semantics")
	}
}
