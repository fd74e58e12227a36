package prefilter

import (
	"testing"

	"github.com/coregx/rex/literal"
)

func TestBuilder_NoLiterals(t *testing.T) {
	b := NewBuilder(literal.NewSeq())
	if pf := b.Build(); pf != nil {
		t.Errorf("Build() with no literals = %v, want nil", pf)
	}
}

func TestBuilder_SingleShortLiteralDisabled(t *testing.T) {
	b := NewBuilder(literal.NewSeq(literal.NewLiteral([]rune("a"), true)))
	if pf := b.Build(); pf != nil {
		t.Errorf("Build() with a single 1-rune literal = %v, want nil", pf)
	}
}

func TestSubstringPrefilter_Find(t *testing.T) {
	pf := newSubstringPrefilter(literal.NewLiteral([]rune("hello"), true))
	got := pf.Find([]rune("say hello world"), 0)
	if got != 4 {
		t.Errorf("Find = %d, want 4", got)
	}
	if got := pf.Find([]rune("nothing here"), 0); got != -1 {
		t.Errorf("Find = %d, want -1", got)
	}
}

func TestBuilder_MultiLiteralUsesAhoCorasick(t *testing.T) {
	b := NewBuilder(literal.NewSeq(
		literal.NewLiteral([]rune("cat"), true),
		literal.NewLiteral([]rune("dog"), true),
	))
	pf := b.Build()
	if pf == nil {
		t.Fatal("Build() with 2 literals = nil, want an Aho-Corasick prefilter")
	}
	if got := pf.Find([]rune("I have a dog"), 0); got != 9 {
		t.Errorf("Find = %d, want 9", got)
	}
	if got := pf.Find([]rune("no pets here"), 0); got != -1 {
		t.Errorf("Find = %d, want -1", got)
	}
}

func TestBuilder_NonASCIILiteralsDisableAhoCorasick(t *testing.T) {
	b := NewBuilder(literal.NewSeq(
		literal.NewLiteral([]rune("café"), true),
		literal.NewLiteral([]rune("naïve"), true),
	))
	if pf := b.Build(); pf != nil {
		t.Errorf("Build() with non-ASCII multi-literals = %v, want nil", pf)
	}
}
