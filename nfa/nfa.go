// Package nfa implements Thompson's construction (spec.md §4.4) from an
// ast.Node tree, plus the two-set ε-closure NFA matcher (spec.md §4.7).
//
// State/StateID shape grounded on the teacher's nfa.StateID/nfa.State
// (github.com/coregx/coregex/nfa/nfa.go): an integer-identified state
// with a kind discriminant and only the fields its kind needs. Edge
// kinds are generalized from the teacher's byte-oriented ByteRange/
// Sparse/Split/Epsilon/Capture set to the code-point-oriented edge set
// spec.md §3 requires (literal, any-char, whitespace-class, class/
// negated-class, epsilon) with captures dropped (Non-goals).
package nfa

import "fmt"

// StateID uniquely identifies a state within one NFA.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// EdgeKind identifies which transition a State carries.
type EdgeKind uint8

const (
	// EdgeLiteral consumes exactly the code point Rune.
	EdgeLiteral EdgeKind = iota
	// EdgeAny consumes any code point except '\n' and '\r'.
	EdgeAny
	// EdgeWhitespace consumes any code point in the whitespace class.
	EdgeWhitespace
	// EdgeClass consumes any code point in Set (or, if Negated, any code
	// point NOT in Set and not '\n'/'\r').
	EdgeClass
	// EdgeEpsilon consumes no input.
	EdgeEpsilon
	// EdgeSplit is an ε-transition to two targets (alternation/quantifiers).
	EdgeSplit
	// EdgeMatch marks an accepting state; it has no outgoing edges.
	EdgeMatch
)

// WhitespaceClass is the set of code points \s matches outside a
// character class (spec.md §4.1/§9).
var WhitespaceClass = map[rune]bool{' ': true, '\t': true, '\n': true, '\r': true, '\f': true, '\v': true}

// State is one node of the NFA transition graph.
type State struct {
	Kind EdgeKind

	// EdgeLiteral payload.
	Rune rune

	// EdgeClass payload.
	Set     map[rune]bool
	Negated bool

	// Target state(s); EdgeSplit uses both, every other non-terminal
	// kind uses Next only.
	Next  StateID
	Next2 StateID
}

// NFA is an immutable Thompson-constructed automaton with a single
// start state and a single accept state.
type NFA struct {
	States []State
	Start  StateID
	Accept StateID
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states=%d, start=%d, accept=%d}", len(n.States), n.Start, n.Accept)
}

// IsAccepting reports whether id is the NFA's single accept state.
func (n *NFA) IsAccepting(id StateID) bool {
	return id == n.Accept
}
