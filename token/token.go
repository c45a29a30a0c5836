package token

import (
	"strings"
)

// Kind represents the type of a lexical token.
type Kind int

const (
	// Special kinds. These are never returned by the scanner.
	Illegal Kind = iota
	EOF

	// CSS standard tokens.
	Ident
	Function
	AtKeyword
	Hash
	String
	BadString
	URL
	BadURL
	Delim
	Number
	Percentage
	Dimension
	Whitespace
	Comment
	CDO
	CDC
	Colon
	Semicolon
	Comma
	LBrack
	RBrack
	LParen
	RParen
	LBrace
	RBrace
)

var kinds = [...]string{
	Illegal:    "illegal",
	EOF:        "EOF",
	Ident:      "ident",
	Function:   "function",
	AtKeyword:  "at-keyword",
	Hash:       "hash",
	String:     "string",
	BadString:  "bad-string",
	URL:        "url",
	BadURL:     "bad-url",
	Delim:      "delim",
	Number:     "number",
	Percentage: "percentage",
	Dimension:  "dimension",
	Whitespace: "whitespace",
	Comment:    "comment",
	CDO:        "CDO",
	CDC:        "CDC",
	Colon:      "colon",
	Semicolon:  "semicolon",
	Comma:      "comma",
	LBrack:     "left-bracket",
	RBrack:     "right-bracket",
	LParen:     "left-paren",
	RParen:     "right-paren",
	LBrace:     "left-brace",
	RBrace:     "right-brace",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k >= 0 && k < Kind(len(kinds)) {
		return kinds[k]
	}
	return ""
}

// IsNumeric returns true for number, percentage and dimension kinds.
func (k Kind) IsNumeric() bool {
	return k == Number || k == Percentage || k == Dimension
}

// NumericFlag records whether a numeric token was written as an integer.
type NumericFlag int

const (
	FlagInteger NumericFlag = iota + 1
	FlagNumber
)

// String returns "integer" or "number".
func (f NumericFlag) String() string {
	switch f {
	case FlagInteger:
		return "integer"
	case FlagNumber:
		return "number"
	}
	return ""
}

// HashFlag records whether a hash token's name is a valid identifier.
type HashFlag int

const (
	HashUnrestricted HashFlag = iota + 1
	HashID
)

// String returns "id" or "unrestricted".
func (f HashFlag) String() string {
	switch f {
	case HashID:
		return "id"
	case HashUnrestricted:
		return "unrestricted"
	}
	return ""
}

// Token represents a single lexeme scanned from CSS source.
//
// Pos and End are code point offsets into the source. The token covers
// the half-open range [Pos, End).
//
// Text holds the raw payload. Escapes inside names, strings and URLs are
// kept exactly as written; use Value to decode them.
type Token struct {
	Kind Kind
	Pos  int
	End  int

	Text  string
	Quote rune

	Number      float64
	NumericFlag NumericFlag
	Unit        string

	HashFlag HashFlag
}

// Len returns the number of code points consumed by the token.
func (t Token) Len() int {
	return t.End - t.Pos
}

// Value returns the token's text with escapes decoded.
// Dimensions return their decoded unit.
func (t Token) Value() string {
	switch t.Kind {
	case Ident, Function, AtKeyword, Hash, String, BadString, URL:
		return Unescape(t.Text)
	case Dimension:
		return Unescape(t.Unit)
	}
	return t.Text
}

// String returns the CSS serialization of the token.
func (t Token) String() string {
	switch t.Kind {
	case Ident, Delim, Whitespace, Comment, Number:
		return t.Text
	case Function:
		return t.Text + "("
	case AtKeyword:
		return "@" + t.Text
	case Hash:
		return "#" + t.Text
	case String:
		q := string(t.quote())
		return q + t.Text + q
	case BadString:
		return string(t.quote()) + t.Text
	case URL:
		return "url(" + t.Text + ")"
	case BadURL:
		return "url()"
	case Percentage:
		return t.Text + "%"
	case Dimension:
		return t.Text + t.Unit
	case CDO:
		return "<!--"
	case CDC:
		return "-->"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LBrack:
		return "["
	case RBrack:
		return "]"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case EOF:
		return "EOF"
	}
	return ""
}

func (t Token) quote() rune {
	if t.Quote == 0 {
		return '"'
	}
	return t.Quote
}

// Mirror returns the closing kind for a block opening kind.
// Returns Illegal for any other kind.
func Mirror(k Kind) Kind {
	switch k {
	case LBrace:
		return RBrace
	case LBrack:
		return RBrack
	case LParen:
		return RParen
	}
	return Illegal
}

// replacementCharacter is substituted for invalid escaped code points.
const replacementCharacter = '\uFFFD'

// Unescape decodes CSS escape sequences in s. (§4.3.7)
//
// A reverse solidus followed by 1-6 hex digits is replaced by the code
// point they encode, consuming one trailing whitespace. Zero, surrogates
// and values above U+10FFFF decode to U+FFFD. An escaped newline is
// removed. A trailing reverse solidus decodes to U+FFFD. Any other
// escaped code point is kept as itself.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	rs := []rune(s)
	var sb strings.Builder
	for i := 0; i < len(rs); i++ {
		ch := rs[i]
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}

		// Trailing reverse solidus.
		i++
		if i == len(rs) {
			sb.WriteRune(replacementCharacter)
			break
		}

		ch = rs[i]
		if v, ok := hexValue(ch); ok {
			// Up to five more hex digits.
			for n := 0; n < 5 && i+1 < len(rs); n++ {
				next, ok := hexValue(rs[i+1])
				if !ok {
					break
				}
				v = v*16 + next
				i++
			}

			// A single whitespace terminates the escape.
			if i+1 < len(rs) {
				switch rs[i+1] {
				case '\r':
					i++
					if i+1 < len(rs) && rs[i+1] == '\n' {
						i++
					}
				case ' ', '\t', '\n', '\f':
					i++
				}
			}

			if v == 0 || (v >= 0xD800 && v <= 0xDFFF) || v > 0x10FFFF {
				sb.WriteRune(replacementCharacter)
			} else {
				sb.WriteRune(rune(v))
			}
			continue
		}

		switch ch {
		case '\n', '\f':
		case '\r':
			if i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func hexValue(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}
