/*
Package css implements a CSS3 compliant tokenizer. This is meant to be a
low-level library for breaking raw CSS text into the tokens defined by the
CSS Syntax specification.

This package can be used for building tools to validate, optimize and format
CSS text.


Basics

The scanner package reads a string of code points (runes) and returns one
token per call to Scan. Tokens represent the most basic units of CSS syntax
such as identifiers, whitespace, numbers and strings. Every token records the
code point offsets it was scanned from, and the tokens of a successful scan
cover the input exactly once, start to finish.

Comments are returned as tokens instead of being discarded. It is up to the
consumer of the token stream to skip them where the grammar requires.


Errors

Malformed input that still has a token representation is returned as a
token. An unterminated string becomes a bad-string token and a malformed
unquoted URL becomes a bad-url token. Input with no token representation,
such as an unterminated comment or a reverse solidus followed by a newline,
stops the scan with a *scanner.Error. Its Kind can be matched with errors.Is
against the Err* values of the scanner package.


Escapes

Escaped code points are kept exactly as written in the token's Text so the
source can be reproduced. Token.Value decodes them, including hex escapes
such as "\2603 ".


Component Values

The parser package consumes a token stream into component values: a simple
block starts with either a {, [, or (, has zero or more component values, and
then ends with the mirror of the starting token (}, ], or )). A Function is
an identifier immediately followed by a left parenthesis, then zero or more
component values, and then ending with a right parenthesis. Rules and
declarations are not parsed.

The Printer in this package writes component values and tokens back out as
CSS text.

*/
package css
