package ast

import (
	"bytes"
	"fmt"

	"github.com/ndesmic/css-parse/token"
)

// Node represents a node in the component value tree.
type Node interface {
	node()
	String() string
}

func (_ ComponentValues) node() {}
func (_ *SimpleBlock) node()    {}
func (_ *Function) node()       {}
func (_ *Token) node()          {}

// ComponentValues represents a list of component values.
type ComponentValues []ComponentValue

func (a ComponentValues) String() string {
	var buf bytes.Buffer
	for _, v := range a {
		buf.WriteString(v.String())
	}
	return buf.String()
}

// ComponentValue represents a component value.
type ComponentValue interface {
	Node
	componentValue()
}

func (_ *SimpleBlock) componentValue() {}
func (_ *Function) componentValue()    {}
func (_ *Token) componentValue()       {}

// SimpleBlock represents a {-block, [-block, or (-block.
type SimpleBlock struct {
	Token  token.Token
	Values ComponentValues
}

func (b *SimpleBlock) String() string {
	switch b.Token.Kind {
	case token.LBrace:
		return "{" + b.Values.String() + "}"
	case token.LBrack:
		return "[" + b.Values.String() + "]"
	case token.LParen:
		return "(" + b.Values.String() + ")"
	}
	return "<>"
}

// Function represents a function call with a list of arguments.
type Function struct {
	Name   string
	Values ComponentValues
	Pos    int
}

func (f *Function) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, f.Values.String())
}

// Token represents a single token in the tree.
type Token struct {
	token.Token
}

func (t *Token) String() string {
	return t.Token.String()
}

// Position returns the code point offset where a node begins.
// An empty list returns zero.
func Position(n Node) int {
	switch n := n.(type) {
	case ComponentValues:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *SimpleBlock:
		return n.Token.Pos
	case *Function:
		return n.Pos
	case *Token:
		return n.Pos
	}
	return 0
}
