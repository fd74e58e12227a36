// Package parser implements the recursive-descent parser of spec.md
// §4.2: pattern string -> lexer.Token stream -> ast.Node.
//
// Grammar (highest to lowest precedence): grouping, atom, quantifier,
// concatenation, alternation.
//
//	expr        := concat ('|' concat)*
//	concat      := quantified+
//	quantified  := atom ( '*' | '+' | '?' )?
//	atom        := literal | escape | tab | whitespace
//	             | '.' | '(' expr ')' | charClass
//	             | '^' | '-' | ']'     -- treated as literal outside [ ]
//	charClass   := '[' '^'? classItem+ ']'
//	classItem   := classChar ( '-' classChar )?
//
// Structure grounded on
// mabhi256-codecrafters-grep-go/app/ast/ast_parser.go's recursive-descent
// shape (parseExpression/parseQuantified/parseAtom), adapted to this
// module's own lexer.Token stream and ast.Node tree instead of a
// byte-indexed custom Node interface.
package parser

import (
	"fmt"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/lexer"
	"github.com/coregx/rex/rexerr"
)

// whitespaceClass is the set spec §4.1/§9 documents for \s: space, tab,
// newline, carriage return, form feed, vertical tab.
var whitespaceClass = []rune{' ', '\t', '\n', '\r', '\f', '\v'}

type parser struct {
	pattern string
	tokens  []lexer.Token
	pos     int
}

// Parse compiles a pattern string into an AST, or returns a
// *rexerr.ParseError carrying the failure's message and source offset.
func Parse(pattern string) (*ast.Node, error) {
	p := &parser{pattern: pattern, tokens: lexer.Lex(pattern)}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind != lexer.End {
		return nil, p.errorf("unexpected token %s after end of expression", p.cur().Kind)
	}

	return node, nil
}

func (p *parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return &rexerr.ParseError{
		Message: fmt.Sprintf(format, args...),
		Pattern: p.pattern,
		Pos:     p.cur().Pos,
	}
}

// parseExpr := concat ('|' concat)*
func (p *parser) parseExpr() (*ast.Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	branches := []*ast.Node{first}
	for p.cur().Kind == lexer.Pipe {
		p.advance()
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}

	return ast.Alternation(branches...), nil
}

// parseConcat := quantified+, stopping at '|', ')' or End.
func (p *parser) parseConcat() (*ast.Node, error) {
	var children []*ast.Node
	for !p.atConcatBoundary() {
		child, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	// An empty concat (e.g. the pattern "", or "()" body, or "(|a)") is
	// legal and yields the empty-pattern sentinel literal (spec §4.2).
	return ast.Concat(children...), nil
}

func (p *parser) atConcatBoundary() bool {
	switch p.cur().Kind {
	case lexer.Pipe, lexer.RParen, lexer.End:
		return true
	default:
		return false
	}
}

// parseQuantified := atom ( '*' | '+' | '?' )?
func (p *parser) parseQuantified() (*ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case lexer.Star:
		p.advance()
		return ast.Star(atom), nil
	case lexer.Plus:
		p.advance()
		return ast.Plus(atom), nil
	case lexer.Question:
		p.advance()
		return ast.QuestionNode(atom), nil
	default:
		return atom, nil
	}
}

// parseAtom handles every atom production, including the "outside a
// class, '^'/'-'/']' are literals" rule from spec §4.2.
func (p *parser) parseAtom() (*ast.Node, error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.Dot:
		p.advance()
		return ast.AnyCharNode(), nil

	case lexer.Whitespace:
		p.advance()
		return ast.WhitespaceNode(), nil

	case lexer.Tab:
		p.advance()
		return ast.TabNode(), nil

	case lexer.EscapedChar:
		p.advance()
		return ast.Escaped(tok.Value), nil

	case lexer.Literal, lexer.Caret, lexer.Hyphen, lexer.RBracket:
		p.advance()
		return ast.Literal(tok.Value), nil

	case lexer.LParen:
		return p.parseGroup()

	case lexer.LBracket:
		return p.parseCharClass()

	case lexer.End:
		return nil, p.errorf("unexpected end of pattern, expected an atom")

	default:
		return nil, p.errorf("unexpected token %s", tok.Kind)
	}
}

func (p *parser) parseGroup() (*ast.Node, error) {
	p.advance() // consume '('
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != lexer.RParen {
		return nil, p.errorf("unmatched '(': expected ')'")
	}
	p.advance() // consume ')'
	return ast.Group(inner), nil
}

// parseCharClass := '[' '^'? classItem+ ']'
func (p *parser) parseCharClass() (*ast.Node, error) {
	openPos := p.cur().Pos
	p.advance() // consume '['

	negated := false
	if p.cur().Kind == lexer.Caret {
		negated = true
		p.advance()
	}

	var set []rune
	itemCount := 0
	for {
		if p.cur().Kind == lexer.End {
			return nil, &rexerr.ParseError{
				Message: "unmatched '[': expected ']'",
				Pattern: p.pattern,
				Pos:     openPos,
			}
		}
		if p.cur().Kind == lexer.RBracket {
			break
		}

		expanded, err := p.parseClassItem()
		if err != nil {
			return nil, err
		}
		set = append(set, expanded...)
		itemCount++
	}

	if itemCount == 0 {
		return nil, &rexerr.ParseError{
			Message: "empty character class",
			Pattern: p.pattern,
			Pos:     openPos,
		}
	}

	p.advance() // consume ']'

	if negated {
		return ast.NegatedCharClass(set), nil
	}
	return ast.CharClass(set), nil
}

// parseClassItem := classChar ( '-' classChar )?
//
// classChar is any lexer token's rune payload taken literally inside a
// class, except \s which (per spec §9's resolved Open Question)
// contributes the full whitespace set rather than the source's
// single-space quirk.
func (p *parser) parseClassItem() ([]rune, error) {
	lo, isWhitespace, err := p.classChar()
	if err != nil {
		return nil, err
	}
	if isWhitespace {
		return append([]rune(nil), whitespaceClass...), nil
	}

	if p.cur().Kind == lexer.Hyphen {
		// Lookahead: a trailing '-' right before ']' is a literal hyphen,
		// not a range operator (e.g. "[a-]").
		save := p.pos
		p.advance() // consume '-'
		if p.cur().Kind == lexer.RBracket {
			p.pos = save
			return []rune{lo}, nil
		}

		hi, isWS, err := p.classChar()
		if err != nil {
			return nil, err
		}
		if isWS {
			return nil, &rexerr.ParseError{
				Message: "invalid range endpoint '\\s'",
				Pattern: p.pattern,
				Pos:     p.cur().Pos,
			}
		}
		if lo > hi {
			return nil, &rexerr.ParseError{
				Message: fmt.Sprintf("descending character range %q-%q", lo, hi),
				Pattern: p.pattern,
				Pos:     p.cur().Pos,
			}
		}
		rng := make([]rune, 0, hi-lo+1)
		for r := lo; r <= hi; r++ {
			rng = append(rng, r)
		}
		return rng, nil
	}

	return []rune{lo}, nil
}

// classChar consumes one class-item character, returning its rune value
// (and whether it was \s, which has no single rune value).
func (p *parser) classChar() (rune, bool, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.Whitespace:
		p.advance()
		return 0, true, nil
	case lexer.Tab:
		p.advance()
		return '\t', false, nil
	case lexer.EscapedChar:
		p.advance()
		return tok.Value, false, nil
	case lexer.End:
		return 0, false, &rexerr.ParseError{
			Message: "unmatched '[': expected ']'",
			Pattern: p.pattern,
			Pos:     tok.Pos,
		}
	default:
		// Literal, Dot, Star, Plus, Question, Pipe, LParen, RParen,
		// Caret, Hyphen all lex as metacharacter kinds outside a class but
		// are plain characters inside one; Value carries '.' etc. for the
		// non-Literal kinds via their rune form.
		p.advance()
		return classCharValue(tok), false, nil
	}
}

// classCharValue returns the literal rune a token represents when read
// inside a character class, where every metacharacter kind denotes its
// own rune.
func classCharValue(tok lexer.Token) rune {
	if tok.Value != 0 {
		return tok.Value
	}
	switch tok.Kind {
	case lexer.Dot:
		return '.'
	case lexer.Star:
		return '*'
	case lexer.Plus:
		return '+'
	case lexer.Question:
		return '?'
	case lexer.Pipe:
		return '|'
	case lexer.LParen:
		return '('
	case lexer.RParen:
		return ')'
	case lexer.LBracket:
		return '['
	case lexer.Caret:
		return '^'
	case lexer.Hyphen:
		return '-'
	case lexer.RBracket:
		return ']'
	default:
		return 0
	}
}
