package parser

import (
	"fmt"

	"github.com/ndesmic/css-parse/ast"
	"github.com/ndesmic/css-parse/scanner"
	"github.com/ndesmic/css-parse/token"
)

// parser consumes component values from a token stream.
type parser struct {
	errors ErrorList
}

// ParseComponentValue parses a component value.
func ParseComponentValue(s Scanner) (ast.ComponentValue, error) {
	var p parser

	// Skip over initial whitespace.
	p.skipWhitespace(s)

	// If the next token is EOF then return an error.
	if tok := s.Scan(); tok.Kind == token.EOF {
		p.errors = append(p.errors, &Error{Message: "unexpected EOF", Pos: tok.Pos})
		return nil, p.error()
	}
	s.Unscan()

	// Consume component value.
	v := p.consumeComponentValue(s)

	// Skip over any trailing whitespace.
	p.skipWhitespace(s)

	// If we're not at EOF then return a syntax error.
	if tok := s.Scan(); tok.Kind != token.EOF {
		s.Unscan()
		p.errors = append(p.errors, &Error{Message: fmt.Sprintf("expected EOF, got %q", tok.String()), Pos: tok.Pos})
		return nil, p.error()
	}

	return v, nil
}

// ParseComponentValues parses a list of component values.
func ParseComponentValues(s Scanner) (ast.ComponentValues, error) {
	var a ast.ComponentValues

	// Repeatedly consume a component value until EOF.
	var p parser
	for {
		v := p.consumeComponentValue(s)

		// If the value is an EOF, then exit.
		if v, ok := v.(*ast.Token); ok && v.Kind == token.EOF {
			break
		}

		// Otherwise append to list of component values.
		a = append(a, v)
	}

	return a, p.error()
}

// Errors returns the error on the parser.
// Returns nil if there are no errors.
func (p *parser) error() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors
}

// consumeComponentValue consumes a single component value. (§5.4.6)
func (p *parser) consumeComponentValue(s Scanner) ast.ComponentValue {
	tok := s.Scan()
	switch tok.Kind {
	case token.LBrace, token.LBrack, token.LParen:
		return p.consumeSimpleBlock(s)
	case token.Function:
		return p.consumeFunction(s)
	default:
		return &ast.Token{Token: tok}
	}
}

// consumeSimpleBlock consumes a simple block. (§5.4.7)
func (p *parser) consumeSimpleBlock(s Scanner) *ast.SimpleBlock {
	b := &ast.SimpleBlock{}

	// Set the block's associated token to the current token.
	b.Token = s.Current()
	mirror := token.Mirror(b.Token.Kind)

	for {
		// If this token is EOF or the mirror of the starting token then return.
		if tok := s.Scan(); tok.Kind == token.EOF || tok.Kind == mirror {
			return b
		}

		// Otherwise consume a component value.
		s.Unscan()
		b.Values = append(b.Values, p.consumeComponentValue(s))
	}
}

// consumeFunction consumes a function. (§5.4.8)
func (p *parser) consumeFunction(s Scanner) *ast.Function {
	f := &ast.Function{}

	// Set the name to the first token.
	f.Name, f.Pos = s.Current().Text, s.Current().Pos

	for {
		// If this token is EOF or the mirror of the starting token then return.
		if tok := s.Scan(); tok.Kind == token.EOF || tok.Kind == token.RParen {
			return f
		}

		// Otherwise consume a component value.
		s.Unscan()
		f.Values = append(f.Values, p.consumeComponentValue(s))
	}
}

// skipWhitespace skips over all contiguous whitespace tokens.
func (p *parser) skipWhitespace(s Scanner) {
	for {
		if tok := s.Scan(); tok.Kind != token.Whitespace {
			s.Unscan()
			return
		}
	}
}

// Scanner represents a type that can retrieve the next token.
type Scanner interface {
	Current() token.Token
	Scan() token.Token
	Unscan()
}

// TokenScanner represents a scanner for a fixed list of tokens.
// Scanning past the last token returns an EOF token.
type TokenScanner struct {
	i      int
	tokens []token.Token
}

// NewTokenScanner returns a new instance of TokenScanner.
func NewTokenScanner(tokens []token.Token) *TokenScanner {
	return &TokenScanner{i: -1, tokens: tokens}
}

// Tokenize scans src and returns a TokenScanner over its tokens.
// Comments are dropped. Scanner errors are fatal and returned as is.
func Tokenize(src string, opts ...scanner.Option) (*TokenScanner, error) {
	var tokens []token.Token
	for tok, err := range scanner.New(src, opts...).All() {
		if err != nil {
			return nil, err
		} else if tok.Kind == token.Comment {
			continue
		}
		tokens = append(tokens, tok)
	}
	return NewTokenScanner(tokens), nil
}

// Current returns the current token.
func (s *TokenScanner) Current() token.Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return s.eof()
	}
	return s.tokens[s.i]
}

// Scan returns the next token.
func (s *TokenScanner) Scan() token.Token {
	if s.i < len(s.tokens) {
		s.i++
	}
	return s.Current()
}

// Unscan moves back one token.
func (s *TokenScanner) Unscan() {
	if s.i > -1 {
		s.i--
	}
}

// eof returns an EOF token positioned after the last token.
func (s *TokenScanner) eof() token.Token {
	var pos int
	if n := len(s.tokens); n > 0 {
		pos = s.tokens[n-1].End
	}
	return token.Token{Kind: token.EOF, Pos: pos, End: pos}
}

// Error represents a syntax error.
type Error struct {
	Message string
	Pos     int
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrorList represents a list of syntax errors.
type ErrorList []error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}
