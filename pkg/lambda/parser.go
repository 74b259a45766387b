package lambda

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIllegal
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLambda:
		return `'\'`
	case TokenDot:
		return "'.'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "illegal character"
	}
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// SyntaxError reports malformed input with the byte offset it was found at.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lambda: offset %d: %s", e.Offset, e.Msg)
}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		for p.pos < len(p.input) && (isLetter(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: `\`, Pos: start}
		p.pos++
	case strings.HasPrefix(p.input[p.pos:], "λ"):
		p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
		p.pos += len("λ")
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		p.current = Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
		p.pos++
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse parses a whole term; trailing input is an error.
func (p *Parser) Parse() (Term, error) {
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %v after term", p.current.Type)
	}
	return t, nil
}

// Term ::= Abs | App
func (p *Parser) parseTerm() (Term, error) {
	if p.current.Type == TokenLambda {
		return p.parseAbs()
	}
	return p.parseApp()
}

// Abs ::= '\' Ident+ '.' Term
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume '\'

	var args []string
	for p.current.Type == TokenIdent {
		args = append(args, p.current.Literal)
		p.next()
	}
	if len(args) == 0 {
		return nil, p.errorf("expected bound variable, got %v", p.current.Type)
	}
	if p.current.Type != TokenDot {
		return nil, p.errorf("expected '.', got %v", p.current.Type)
	}
	p.next()

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for i := len(args) - 1; i >= 0; i-- {
		body = Abs{Arg: args[i], Body: body}
	}
	return body, nil
}

// App ::= Atom+ [Abs]
//
// Application is left-associative and an abstraction extends as far
// right as possible, so `x y \z. z a` parses as `(x y) (\z. z a)`.
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen:
			return left, nil
		case TokenLambda:
			abs, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: abs}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

// Atom ::= Ident | '(' Term ')'
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')', got %v", p.current.Type)
		}
		p.next()
		return term, nil
	default:
		return nil, p.errorf("unexpected %v", p.current.Type)
	}
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}
