package scanner

import (
	"strconv"
)

// Cursor holds decoded source text and a read position.
//
// The text is stored as runes so that offsets count code points rather
// than bytes.
type Cursor struct {
	text []rune
	pos  int
}

// NewCursor returns a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: []rune(text)}
}

// Advance returns the code point at the current position and moves forward.
func (c *Cursor) Advance() (rune, error) {
	if c.AtEnd() {
		return EOF, &Error{Kind: EndOfInput, Pos: c.pos, Expected: "code point", Found: "EOF"}
	}
	ch := c.text[c.pos]
	c.pos++
	return ch, nil
}

// Peek returns the next n code points without moving.
func (c *Cursor) Peek(n int) ([]rune, error) {
	if !c.HasRemaining(n) {
		return nil, &Error{
			Kind:     LookaheadOverrun,
			Pos:      c.pos,
			Expected: strconv.Itoa(n) + " code points",
			Found:    strconv.Itoa(len(c.text) - c.pos),
		}
	}
	a := make([]rune, n)
	copy(a, c.text[c.pos:c.pos+n])
	return a, nil
}

// At returns the code point i places after the current position.
// Returns EOF if that is past the end of the text.
func (c *Cursor) At(i int) rune {
	if j := c.pos + i; j >= 0 && j < len(c.text) {
		return c.text[j]
	}
	return EOF
}

// Rewind moves the position back by one code point.
func (c *Cursor) Rewind() {
	if c.pos > 0 {
		c.pos--
	}
}

// AtEnd returns true if the whole text has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.text)
}

// HasRemaining returns true if at least n code points remain.
func (c *Cursor) HasRemaining(n int) bool {
	return c.pos+n <= len(c.text)
}

// Pos returns the current code point offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the text in code points.
func (c *Cursor) Len() int { return len(c.text) }

// slice returns the text between two offsets.
func (c *Cursor) slice(start, end int) string {
	return string(c.text[start:end])
}

// skip moves forward n code points, stopping at the end of the text.
func (c *Cursor) skip(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}
