package engine

import "testing"

func TestEngine_Find_LeftmostAcrossEngines(t *testing.T) {
	e := newTestEngine(t)
	for _, kind := range []Kind{Backtracking, NFA, DFA} {
		res, err := e.Find("[0-9]+", "ab123cd456", kind)
		if err != nil {
			t.Fatalf("%v Find: %v", kind, err)
		}
		if !res.Matched || res.Start != 2 || res.End != 5 {
			t.Errorf("%v Find = (matched=%v start=%d end=%d), want (true, 2, 5)", kind, res.Matched, res.Start, res.End)
		}
	}
}

func TestEngine_Find_NoMatch(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Find("[0-9]+", "no digits here", NFA)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if res.Matched {
		t.Error("Find on a digit-free input matched")
	}
	if res.Start != -1 || res.End != -1 {
		t.Errorf("Find no-match Start/End = (%d, %d), want (-1, -1)", res.Start, res.End)
	}
}

func TestEngine_Find_PrefilterDoesNotChangeOutcome(t *testing.T) {
	cfgOn := DefaultConfig()
	cfgOn.EnablePrefilter = true
	cfgOff := DefaultConfig()
	cfgOff.EnablePrefilter = false

	eOn, eOff := New(cfgOn), New(cfgOff)
	for _, input := range []string{"xxhelloxx", "no match here", "hello"} {
		on, err := eOn.Find("hello", input, NFA)
		if err != nil {
			t.Fatalf("prefilter-on Find: %v", err)
		}
		off, err := eOff.Find("hello", input, NFA)
		if err != nil {
			t.Fatalf("prefilter-off Find: %v", err)
		}
		if on.Matched != off.Matched || on.Start != off.Start || on.End != off.End {
			t.Errorf("input %q: prefilter on=%+v off=%+v disagree", input, on, off)
		}
	}
}
