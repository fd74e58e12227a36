package backtrack

import (
	"testing"

	"github.com/coregx/rex/parser"
)

func parse(t *testing.T, pattern string) *Matcher {
	t.Helper()
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse(%q) error: %v", pattern, err)
	}
	return New(n, 0, 0)
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
		{"a|b", "c", false},
		{"a*", "", true},
		{"a*", "aaa", true},
		{"a+", "", false},
		{"a+", "aaa", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
		{"[a-z]+", "hello", true},
		{".", "a", true},
		{".", "\n", false},
		{"", "", true},
		{"(a*)*", "aaaa", true}, // must not hang on zero-width inner iterations
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			m := parse(t, tt.pattern)
			got, err := m.MatchFull([]rune(tt.input))
			if err != nil {
				t.Fatalf("MatchFull error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchFull(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestMatcher_Find_LeftmostFirst(t *testing.T) {
	// "a|ab" against "ab": leftmost-first takes the first alternative
	// that succeeds, so the match ends at 1, not 2 (unlike leftmost-longest).
	m := parse(t, "a|ab")
	s, e, err := m.Find([]rune("ab"))
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if s != 0 || e != 1 {
		t.Errorf("Find = (%d, %d), want (0, 1) [leftmost-first]", s, e)
	}
}

func TestMatcher_FindAll(t *testing.T) {
	m := parse(t, "[0-9]+")
	got, err := m.FindAll([]rune("a12b345c6"))
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	want := []Match{{Start: 1, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 9}}
	if len(got) != len(want) {
		t.Fatalf("FindAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindAll[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMatcher_BacktrackLimitExceeded(t *testing.T) {
	// Each "(a|a)" group offers two equally-viable alternatives for the
	// same input character, so a trailing requirement that never
	// matches ('z') forces the matcher to explore the combinatorial
	// product of branch choices across all groups.
	pattern := "(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)(a|a)z"
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	m := New(n, 10, 0)
	_, err = m.MatchFull([]rune("aaaaaaaaaaaa"))
	if err == nil {
		t.Fatal("expected a BacktrackLimitExceededError")
	}
}
