package lexer

import "testing"

func TestLex_Metacharacters(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Kind
	}{
		{"", []Kind{End}},
		{"a", []Kind{Literal, End}},
		{".", []Kind{Dot, End}},
		{"a*", []Kind{Literal, Star, End}},
		{"a+b?", []Kind{Literal, Plus, Literal, Question, End}},
		{"a|b", []Kind{Literal, Pipe, Literal, End}},
		{"(a)", []Kind{LParen, Literal, RParen, End}},
		{"[a-z]", []Kind{LBracket, Literal, Hyphen, Literal, RBracket, End}},
		{"^a-]", []Kind{Caret, Literal, Hyphen, RBracket, End}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks := Lex(tt.pattern)
			if len(toks) != len(tt.want) {
				t.Fatalf("Lex(%q) = %v, want kinds %v", tt.pattern, toks, tt.want)
			}
			for i, k := range tt.want {
				if toks[i].Kind != k {
					t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLex_Escapes(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind Kind
		wantVal  rune
	}{
		{`\t`, Tab, '\t'},
		{`\s`, Whitespace, 0},
		{`\n`, EscapedChar, '\n'},
		{`\r`, EscapedChar, '\r'},
		{`\\`, EscapedChar, '\\'},
		{`\.`, EscapedChar, '.'},
		{`\*`, EscapedChar, '*'},
		{`\(`, EscapedChar, '('},
		{`\q`, EscapedChar, 'q'}, // permissive: not an error
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks := Lex(tt.pattern)
			if len(toks) != 2 {
				t.Fatalf("Lex(%q) = %v, want 2 tokens", tt.pattern, toks)
			}
			if toks[0].Kind != tt.wantKind || toks[0].Value != tt.wantVal {
				t.Errorf("Lex(%q)[0] = %v, want kind=%v value=%q", tt.pattern, toks[0], tt.wantKind, tt.wantVal)
			}
		})
	}
}

func TestLex_TrailingBackslashNeverFails(t *testing.T) {
	toks := Lex(`a\`)
	want := []Kind{Literal, Literal, End}
	if len(toks) != len(want) {
		t.Fatalf("Lex(%q) = %v, want %d tokens", `a\`, toks, len(want))
	}
	if toks[1].Value != '\\' {
		t.Errorf("trailing backslash token = %q, want '\\\\'", toks[1].Value)
	}
}

func TestLex_Positions(t *testing.T) {
	toks := Lex(`a\tbc`)
	wantPos := []int{0, 1, 3, 4}
	for i, p := range wantPos {
		if toks[i].Pos != p {
			t.Errorf("token %d pos = %d, want %d", i, toks[i].Pos, p)
		}
	}
}

func TestLex_UnicodeCodePoints(t *testing.T) {
	toks := Lex("αβγ")
	if len(toks) != 4 {
		t.Fatalf("Lex(greek) = %v, want 4 tokens (3 literals + End)", toks)
	}
	for i, want := range []rune{'α', 'β', 'γ'} {
		if toks[i].Value != want {
			t.Errorf("token %d = %q, want %q", i, toks[i].Value, want)
		}
	}
}
