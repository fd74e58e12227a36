// Package ast defines the immutable parse-tree representation produced
// by package parser and consumed by package nfa (Thompson construction)
// and package backtrack (direct AST-level matching).
//
// A Node is a tagged union: exactly one of 13 kinds, each carrying only
// the payload that kind needs, following the same kind+payload shape as
// the teacher's NFA State (github.com/coregx/coregex nfa.State).
package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindLiteral Kind = iota
	KindEscaped
	KindTab
	KindWhitespace
	KindAnyChar
	KindCharClass
	KindNegatedCharClass
	KindConcat
	KindAlternation
	KindStar
	KindPlus
	KindQuestion
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindEscaped:
		return "Escaped"
	case KindTab:
		return "Tab"
	case KindWhitespace:
		return "Whitespace"
	case KindAnyChar:
		return "AnyChar"
	case KindCharClass:
		return "CharClass"
	case KindNegatedCharClass:
		return "NegatedCharClass"
	case KindConcat:
		return "Concat"
	case KindAlternation:
		return "Alternation"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindQuestion:
		return "Question"
	case KindGroup:
		return "Group"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EmptyLiteral is the sentinel code point representing the empty
// pattern; a Literal node carrying it matches the empty string.
const EmptyLiteral rune = 0

// Node is an immutable AST node. It is a pure value: constructing one
// never mutates shared state and the resulting tree never contains
// cycles.
//
// Field meaning depends on Kind:
//   - KindLiteral, KindEscaped, KindTab: Rune holds the code point.
//   - KindAnyChar, KindWhitespace: no payload.
//   - KindCharClass, KindNegatedCharClass: Set holds the fully
//     enumerated member code points.
//   - KindConcat, KindAlternation: Children holds an ordered list,
//     length >= 2.
//   - KindStar, KindPlus, KindQuestion, KindGroup: Children holds
//     exactly one element, the sole child.
type Node struct {
	Kind     Kind
	Rune     rune
	Set      []rune
	Children []*Node
}

// Literal returns a Literal node carrying r.
func Literal(r rune) *Node { return &Node{Kind: KindLiteral, Rune: r} }

// Escaped returns an Escaped node carrying r.
func Escaped(r rune) *Node { return &Node{Kind: KindEscaped, Rune: r} }

// TabNode returns a Tab node.
func TabNode() *Node { return &Node{Kind: KindTab, Rune: '\t'} }

// WhitespaceNode returns a Whitespace node.
func WhitespaceNode() *Node { return &Node{Kind: KindWhitespace} }

// AnyCharNode returns an AnyChar node.
func AnyCharNode() *Node { return &Node{Kind: KindAnyChar} }

// CharClass returns a CharClass node over the given (already expanded,
// deduplicated) set of code points.
func CharClass(set []rune) *Node {
	return &Node{Kind: KindCharClass, Set: dedupSorted(set)}
}

// NegatedCharClass returns a NegatedCharClass node over the given
// (already expanded, deduplicated) set of code points.
func NegatedCharClass(set []rune) *Node {
	return &Node{Kind: KindNegatedCharClass, Set: dedupSorted(set)}
}

// Concat returns a Concat node over an ordered, non-empty child list.
// A single child collapses to itself; zero children is the empty
// pattern sentinel.
func Concat(children ...*Node) *Node {
	switch len(children) {
	case 0:
		return Literal(EmptyLiteral)
	case 1:
		return children[0]
	default:
		return &Node{Kind: KindConcat, Children: append([]*Node(nil), children...)}
	}
}

// Alternation returns an Alternation node over an ordered, non-empty
// branch list. Branch order is preserved (left-to-right evaluation).
func Alternation(branches ...*Node) *Node {
	if len(branches) == 1 {
		return branches[0]
	}
	return &Node{Kind: KindAlternation, Children: append([]*Node(nil), branches...)}
}

// Star returns a Star (zero-or-more) node wrapping child.
func Star(child *Node) *Node { return &Node{Kind: KindStar, Children: []*Node{child}} }

// Plus returns a Plus (one-or-more) node wrapping child.
func Plus(child *Node) *Node { return &Node{Kind: KindPlus, Children: []*Node{child}} }

// QuestionNode returns a Question (zero-or-one) node wrapping child.
func QuestionNode(child *Node) *Node { return &Node{Kind: KindQuestion, Children: []*Node{child}} }

// Group returns a Group node wrapping child. Grouping is parse-only and
// carries no runtime semantics of its own.
func Group(child *Node) *Node { return &Node{Kind: KindGroup, Children: []*Node{child}} }

// Child returns the sole child of a unary node (Star/Plus/Question/
// Group). Panics if n is not unary — a programming error, not a user
// input error, since the parser is the only constructor of such nodes.
func (n *Node) Child() *Node {
	if len(n.Children) != 1 {
		panic(fmt.Sprintf("ast: Child() called on %s node with %d children", n.Kind, len(n.Children)))
	}
	return n.Children[0]
}

func dedupSorted(set []rune) []rune {
	if len(set) == 0 {
		return nil
	}
	cp := append([]rune(nil), set...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, r := range cp[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}

// Pretty renders a human-readable, indented tree, used only for
// CompiledPattern diagnostics (spec §3).
func (n *Node) Pretty() string {
	var b strings.Builder
	n.pretty(&b, 0)
	return b.String()
}

func (n *Node) pretty(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch n.Kind {
	case KindLiteral, KindEscaped, KindTab:
		fmt.Fprintf(b, "%s(%q)\n", n.Kind, n.Rune)
	case KindCharClass, KindNegatedCharClass:
		fmt.Fprintf(b, "%s(%q)\n", n.Kind, string(n.Set))
	default:
		fmt.Fprintf(b, "%s\n", n.Kind)
	}
	for _, c := range n.Children {
		c.pretty(b, depth+1)
	}
}

// Equal reports whether two nodes are structurally identical.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Rune != b.Rune || len(a.Children) != len(b.Children) || len(a.Set) != len(b.Set) {
		return false
	}
	for i := range a.Set {
		if a.Set[i] != b.Set[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
