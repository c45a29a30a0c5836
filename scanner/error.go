package scanner

import (
	"fmt"
)

// ErrorKind identifies the class of a fatal scanning error.
type ErrorKind int

const (
	// EndOfInput is returned when reading past the end of the input.
	EndOfInput ErrorKind = iota + 1

	// LookaheadOverrun is returned when a peek asks for more code points
	// than remain.
	LookaheadOverrun

	// UnterminatedComment is returned when input ends inside a comment.
	UnterminatedComment

	// UnterminatedURL is returned when input ends inside an unquoted url().
	UnterminatedURL

	// InvalidEscape is returned for a reverse solidus followed by a newline
	// outside of a string.
	InvalidEscape
)

var errorKinds = [...]string{
	EndOfInput:          "end of input",
	LookaheadOverrun:    "lookahead overrun",
	UnterminatedComment: "unterminated comment",
	UnterminatedURL:     "unterminated url",
	InvalidEscape:       "invalid escape",
}

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	if k > 0 && k < ErrorKind(len(errorKinds)) {
		return errorKinds[k]
	}
	return ""
}

// Sentinel errors for use with errors.Is.
var (
	ErrEndOfInput          = &Error{Kind: EndOfInput}
	ErrLookaheadOverrun    = &Error{Kind: LookaheadOverrun}
	ErrUnterminatedComment = &Error{Kind: UnterminatedComment}
	ErrUnterminatedURL     = &Error{Kind: UnterminatedURL}
	ErrInvalidEscape       = &Error{Kind: InvalidEscape}
)

// Error represents a fatal scanning error.
type Error struct {
	Kind ErrorKind
	Pos  int // code point offset

	Expected string
	Found    string
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
	if e.Expected != "" {
		msg += fmt.Sprintf(": expected %s, found %s", e.Expected, e.Found)
	}
	return msg
}

// Is returns true if target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
