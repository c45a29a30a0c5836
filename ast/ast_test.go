package ast

import (
	"testing"

	"github.com/ndesmic/css-parse/token"
)

// Ensure that all nodes implement the Node interface.
func TestNode(t *testing.T) {
	var a []Node
	a = append(a, &SimpleBlock{}, &Function{}, &Token{}, ComponentValues{})
	for _, n := range a {
		n.node()
	}
}

// Ensure that all component values implement the ComponentValue interface.
func TestComponentValue(t *testing.T) {
	a := []ComponentValue{&SimpleBlock{}, &Function{}, &Token{}}
	for _, v := range a {
		v.componentValue()
	}
}

// Ensure that node positions can be retrieved.
func TestPosition(t *testing.T) {
	var tests = []struct {
		in  Node
		pos int
	}{
		{in: ComponentValues{&SimpleBlock{Token: token.Token{Kind: token.LBrace, Pos: 3}}}, pos: 3},
		{in: ComponentValues{&Function{Pos: 4}}, pos: 4},
		{in: ComponentValues{&Token{token.Token{Pos: 5}}}, pos: 5},
		{in: ComponentValues{}, pos: 0},
		{in: &SimpleBlock{Token: token.Token{Kind: token.LParen, Pos: 6}}, pos: 6},
		{in: &Function{Pos: 7}, pos: 7},
		{in: &Token{token.Token{Pos: 8}}, pos: 8},
	}

	for i, tt := range tests {
		if pos := Position(tt.in); tt.pos != pos {
			t.Errorf("%d. expected: %d, got: %d", i, tt.pos, pos)
		}
	}
}

// Ensure that nodes serialize back to CSS.
func TestNode_String(t *testing.T) {
	v := ComponentValues{
		&Function{Name: "rgb", Values: ComponentValues{
			&Token{token.Token{Kind: token.Number, Text: "0"}},
			&Token{token.Token{Kind: token.Comma}},
			&Token{token.Token{Kind: token.Percentage, Text: "50"}},
		}},
		&Token{token.Token{Kind: token.Whitespace, Text: " "}},
		&SimpleBlock{Token: token.Token{Kind: token.LBrack}, Values: ComponentValues{
			&Token{token.Token{Kind: token.Ident, Text: "a"}},
		}},
		&SimpleBlock{Token: token.Token{Kind: token.Ident}},
	}
	if s := v.String(); s != "rgb(0,50%) [a]<>" {
		t.Errorf("unexpected string: %s", s)
	}
}
