package css

import (
	"bytes"
	"io"

	"github.com/ndesmic/css-parse/ast"
	"github.com/ndesmic/css-parse/token"
)

// Printer represents a configurable CSS printer.
type Printer struct {
	// SkipComments drops comment tokens from the output.
	SkipComments bool

	// CollapseWhitespace writes every whitespace token as a single space.
	CollapseWhitespace bool
}

// Print writes the CSS serialization of a node to w.
func (p *Printer) Print(w io.Writer, n ast.Node) (err error) {
	switch n := n.(type) {
	case ast.ComponentValues:
		for _, v := range n {
			if err = p.Print(w, v); err != nil {
				return err
			}
		}

	case *ast.SimpleBlock:
		if n == nil {
			return nil
		}
		if err = p.printToken(w, n.Token); err != nil {
			return err
		}
		if err = p.Print(w, n.Values); err != nil {
			return err
		}
		err = p.printToken(w, token.Token{Kind: token.Mirror(n.Token.Kind)})

	case *ast.Function:
		if n == nil {
			return nil
		}
		if _, err = io.WriteString(w, n.Name+"("); err != nil {
			return err
		}
		if err = p.Print(w, n.Values); err != nil {
			return err
		}
		_, err = w.Write([]byte{')'})

	case *ast.Token:
		if n == nil {
			return nil
		}
		err = p.printToken(w, n.Token)
	}

	return
}

// PrintTokens writes the CSS serialization of a token stream to w.
func (p *Printer) PrintTokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if err := p.printToken(w, tok); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printToken(w io.Writer, tok token.Token) (err error) {
	switch {
	case tok.Kind == token.Comment && p.SkipComments:
		return nil
	case tok.Kind == token.Whitespace && p.CollapseWhitespace:
		_, err = w.Write([]byte{' '})
	case tok.Kind == token.EOF:
		return nil
	default:
		_, err = io.WriteString(w, tok.String())
	}
	return
}

// print prints a node to a string using the default configuration.
func print(n ast.Node) string {
	var p Printer
	var buf bytes.Buffer
	_ = p.Print(&buf, n)
	return buf.String()
}
