package engine

import "testing"

func TestEngine_Replace_LiteralSubstitution(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Replace("[0-9]+", "a12b345c6", "#", NFA)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if res.Text != "a#b#c#" {
		t.Errorf("Replace.Text = %q, want %q", res.Text, "a#b#c#")
	}
	if res.Count != 3 {
		t.Errorf("Replace.Count = %d, want 3", res.Count)
	}
}

func TestEngine_Replace_NoMatchReturnsInputUnchanged(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Replace("[0-9]+", "no digits", "#", NFA)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if res.Text != "no digits" || res.Count != 0 {
		t.Errorf("Replace on no-match = %+v, want unchanged text and Count=0", res)
	}
}

func TestEngine_Replace_AgreesAcrossEngines(t *testing.T) {
	e := newTestEngine(t)
	var texts []string
	for _, kind := range []Kind{Backtracking, NFA, DFA} {
		res, err := e.Replace("a+", "baaab aa c", "X", kind)
		if err != nil {
			t.Fatalf("%v Replace: %v", kind, err)
		}
		texts = append(texts, res.Text)
	}
	for i := 1; i < len(texts); i++ {
		if texts[i] != texts[0] {
			t.Errorf("engines disagree on Replace result: %v", texts)
		}
	}
}
