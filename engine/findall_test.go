package engine

import "testing"

func TestEngine_FindAll_NonOverlapping(t *testing.T) {
	e := newTestEngine(t)
	for _, kind := range []Kind{Backtracking, NFA, DFA} {
		res, err := e.FindAll("[0-9]+", "a12b345c6", kind)
		if err != nil {
			t.Fatalf("%v FindAll: %v", kind, err)
		}
		want := []Match{{1, 3}, {4, 7}, {8, 9}}
		if len(res.Matches) != len(want) {
			t.Fatalf("%v FindAll = %v, want %v", kind, res.Matches, want)
		}
		for i, m := range want {
			if res.Matches[i] != m {
				t.Errorf("%v FindAll[%d] = %v, want %v", kind, i, res.Matches[i], m)
			}
		}
	}
}

func TestEngine_FindAll_ZeroWidthMatchesProgress(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.FindAll("a*", "aabaa", Backtracking)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	for i := 1; i < len(res.Matches); i++ {
		if res.Matches[i].Start <= res.Matches[i-1].Start {
			t.Fatalf("FindAll matches did not make forward progress: %v", res.Matches)
		}
	}
}

func TestEngine_FindAll_NoMatches(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.FindAll("[0-9]+", "no digits", NFA)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if res.Matched || len(res.Matches) != 0 {
		t.Errorf("FindAll on digit-free input = %+v, want no matches", res)
	}
}
