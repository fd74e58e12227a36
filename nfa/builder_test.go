package nfa

import (
	"testing"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/parser"
)

func build(t *testing.T, pattern string) *NFA {
	t.Helper()
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse(%q) error: %v", pattern, err)
	}
	return Build(n)
}

func TestBuild_SingleStartAndAccept(t *testing.T) {
	tests := []string{"a", "abc", "a|b", "a*", "a+", "a?", "(a|b)c", "[a-z]+"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			n := build(t, pattern)
			if n.Start == InvalidState || n.Accept == InvalidState {
				t.Fatalf("Build(%q) has invalid start/accept", pattern)
			}
			accept := n.States[n.Accept]
			if accept.Kind != EdgeMatch {
				t.Errorf("accept state kind = %v, want EdgeMatch", accept.Kind)
			}
		})
	}
}

func TestBuild_EmptyPatternMatchesEmptyString(t *testing.T) {
	n := build(t, "")
	m := NewMatcher(n)
	if !m.MatchFull(nil) {
		t.Error("empty pattern should match empty input")
	}
	if m.MatchFull([]rune("a")) {
		t.Error("empty pattern should not match non-empty input")
	}
}

func TestBuild_EmptyNode(t *testing.T) {
	emptyPattern := ast.Literal(ast.EmptyLiteral)
	n := Build(emptyPattern)
	m := NewMatcher(n)
	if !m.MatchFull(nil) {
		t.Error("empty sentinel literal should match empty string")
	}
}
