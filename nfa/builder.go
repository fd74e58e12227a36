package nfa

import (
	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/internal/conv"
)

// Builder constructs an NFA incrementally, one Thompson fragment at a
// time. Grounded on the teacher's nfa.Builder (AddMatch/AddByteRange/...
// appending to a states slice and returning the new StateID), adapted
// from byte-range states to this module's code-point edge kinds.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, s)
	return id
}

// addMatch appends a StateMatch accept state.
func (b *Builder) addMatch() StateID {
	return b.add(State{Kind: EdgeMatch})
}

// addLiteral appends a literal-edge state targeting next.
func (b *Builder) addLiteral(r rune, next StateID) StateID {
	return b.add(State{Kind: EdgeLiteral, Rune: r, Next: next})
}

// addAny appends an any-char-edge state targeting next.
func (b *Builder) addAny(next StateID) StateID {
	return b.add(State{Kind: EdgeAny, Next: next})
}

// addWhitespace appends a whitespace-class-edge state targeting next.
func (b *Builder) addWhitespace(next StateID) StateID {
	return b.add(State{Kind: EdgeWhitespace, Next: next})
}

// addClass appends a class-edge state targeting next.
func (b *Builder) addClass(set map[rune]bool, negated bool, next StateID) StateID {
	return b.add(State{Kind: EdgeClass, Set: set, Negated: negated, Next: next})
}

// addEpsilon appends a single-target ε-edge state.
func (b *Builder) addEpsilon(next StateID) StateID {
	return b.add(State{Kind: EdgeEpsilon, Next: next})
}

// addSplit appends a two-target ε-edge state (alternation/quantifiers).
func (b *Builder) addSplit(a, c StateID) StateID {
	return b.add(State{Kind: EdgeSplit, Next: a, Next2: c})
}

// patchNext rewrites the Next field of an already-added state. Used to
// close the loop back-edges Star/Plus require, since Thompson
// construction sometimes needs a state's target fixed up after later
// states (and their IDs) exist.
func (b *Builder) patchNext(id StateID, next StateID) {
	b.states[id].Next = next
}

func (b *Builder) patchNext2(id StateID, next StateID) {
	b.states[id].Next2 = next
}

// fragment is a sub-NFA with a distinct entry and exit state, per
// Thompson's construction (spec.md §4.4). exit always denotes a state
// whose Next (a placeholder epsilon, patched by the caller) leads out
// of the fragment; the root Build call redirects the outermost
// fragment's exit into the final accept state.
type fragment struct {
	start StateID
	exit  StateID
}

// Build runs Thompson's construction over root and returns the
// resulting NFA with a single start and single accept state.
func Build(root *ast.Node) *NFA {
	b := NewBuilder()
	frag := b.compile(root)
	accept := b.addMatch()
	b.patchNext(frag.exit, accept)

	return &NFA{States: b.states, Start: frag.start, Accept: accept}
}

// compile translates one AST node into a Thompson fragment, dispatching
// by Kind exactly as spec.md §4.4 prescribes per node kind.
func (b *Builder) compile(n *ast.Node) fragment {
	switch n.Kind {
	case ast.KindLiteral, ast.KindEscaped, ast.KindTab:
		if n.Kind == ast.KindLiteral && n.Rune == ast.EmptyLiteral {
			// The sentinel empty-pattern literal (spec.md §3): "new start
			// with ε to new accept", matching the empty string.
			exit := b.addEpsilon(InvalidState)
			return fragment{start: exit, exit: exit}
		}
		exit := b.addEpsilon(InvalidState)
		start := b.addLiteral(n.Rune, exit)
		return fragment{start: start, exit: exit}

	case ast.KindWhitespace:
		exit := b.addEpsilon(InvalidState)
		start := b.addWhitespace(exit)
		return fragment{start: start, exit: exit}

	case ast.KindAnyChar:
		exit := b.addEpsilon(InvalidState)
		start := b.addAny(exit)
		return fragment{start: start, exit: exit}

	case ast.KindCharClass:
		exit := b.addEpsilon(InvalidState)
		start := b.addClass(setOf(n.Set), false, exit)
		return fragment{start: start, exit: exit}

	case ast.KindNegatedCharClass:
		exit := b.addEpsilon(InvalidState)
		start := b.addClass(setOf(n.Set), true, exit)
		return fragment{start: start, exit: exit}

	case ast.KindConcat:
		return b.compileConcat(n.Children)

	case ast.KindAlternation:
		return b.compileAlternation(n.Children)

	case ast.KindStar:
		return b.compileStar(n.Child())

	case ast.KindPlus:
		return b.compilePlus(n.Child())

	case ast.KindQuestion:
		return b.compileQuestion(n.Child())

	case ast.KindGroup:
		// Grouping is parse-only; identical to compiling the child.
		return b.compile(n.Child())

	default:
		panic("nfa: unknown ast.Kind in compile")
	}
}

func setOf(runes []rune) map[rune]bool {
	m := make(map[rune]bool, len(runes))
	for _, r := range runes {
		m[r] = true
	}
	return m
}

// compileConcat chains fragments via ε from each one's exit to the next
// one's start.
func (b *Builder) compileConcat(children []*ast.Node) fragment {
	first := b.compile(children[0])
	prevExit := first.exit
	for _, child := range children[1:] {
		frag := b.compile(child)
		b.patchNext(prevExit, frag.start)
		prevExit = frag.exit
	}
	return fragment{start: first.start, exit: prevExit}
}

// compileAlternation builds a new start splitting (via a chain of
// 2-way splits) to every branch's start, and a new shared exit each
// branch's exit ε-transitions into.
func (b *Builder) compileAlternation(branches []*ast.Node) fragment {
	exit := b.addEpsilon(InvalidState)

	frags := make([]fragment, len(branches))
	for i, br := range branches {
		frags[i] = b.compile(br)
		b.patchNext(frags[i].exit, exit)
	}

	// Fold the branch starts into a right-leaning chain of splits so
	// branch evaluation order is stable left-to-right (spec.md §4.2).
	start := frags[len(frags)-1].start
	for i := len(frags) - 2; i >= 0; i-- {
		start = b.addSplit(frags[i].start, start)
	}

	return fragment{start: start, exit: exit}
}

// compileStar: zero-or-more. New split state offers either into the
// child (which loops back to the split) or straight to the exit.
func (b *Builder) compileStar(child *ast.Node) fragment {
	split := b.addSplit(InvalidState, InvalidState)
	frag := b.compile(child)
	b.patchNext(split, frag.start)
	b.patchNext(frag.exit, split)

	exit := b.addEpsilon(InvalidState)
	b.patchNext2(split, exit)

	return fragment{start: split, exit: exit}
}

// compilePlus: one-or-more. Enter the child once, then its exit splits
// between looping back and leaving.
func (b *Builder) compilePlus(child *ast.Node) fragment {
	frag := b.compile(child)
	split := b.addSplit(frag.start, InvalidState)
	b.patchNext(frag.exit, split)

	exit := b.addEpsilon(InvalidState)
	b.patchNext2(split, exit)

	return fragment{start: frag.start, exit: exit}
}

// compileQuestion: zero-or-one. New split offers either into the child
// or straight to the exit; the child's exit also leads to the exit.
func (b *Builder) compileQuestion(child *ast.Node) fragment {
	frag := b.compile(child)
	exit := b.addEpsilon(InvalidState)
	b.patchNext(frag.exit, exit)

	split := b.addSplit(frag.start, exit)
	return fragment{start: split, exit: exit}
}
