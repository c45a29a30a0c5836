package scanner

import (
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ndesmic/css-parse/token"
)

// Scanner implements a CSS3 standard compliant scanner.
//
// Each call to Scan consumes exactly one lexeme. Comments are returned as
// tokens rather than skipped so that consumers can decide whether to keep
// them. Malformed strings and URLs are returned as bad-string and bad-url
// tokens; only input that cannot be represented as any token is an error.
type Scanner struct {
	cur    *Cursor
	logger *zap.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used to report recoverable conditions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a new instance of Scanner over src.
func New(src string, opts ...Option) *Scanner {
	s := &Scanner{
		cur:    NewCursor(src),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tokenize scans src to completion and returns every token.
func Tokenize(src string, opts ...Option) ([]token.Token, error) {
	var a []token.Token
	for tok, err := range New(src, opts...).All() {
		if err != nil {
			return a, err
		}
		a = append(a, tok)
	}
	return a, nil
}

// AtEnd returns true if all input has been consumed.
func (s *Scanner) AtEnd() bool { return s.cur.AtEnd() }

// Pos returns the current code point offset.
func (s *Scanner) Pos() int { return s.cur.Pos() }

// All returns a sequence of the remaining tokens.
// The sequence ends at the end of input or after the first error.
func (s *Scanner) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for !s.AtEnd() {
			tok, err := s.Scan()
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Scan consumes and returns the next token.
func (s *Scanner) Scan() (token.Token, error) {
	pos := s.cur.Pos()

	if s.cur.At(0) == '/' && s.cur.At(1) == '*' {
		return s.scanComment(pos)
	}

	ch, err := s.cur.Advance()
	if err != nil {
		return token.Token{}, err
	}

	if IsWhitespace(ch) {
		return s.scanWhitespace(pos), nil
	}

	switch ch {
	case '{':
		return s.emit(token.Token{Kind: token.LBrace}, pos), nil
	case '}':
		return s.emit(token.Token{Kind: token.RBrace}, pos), nil
	case '(':
		return s.emit(token.Token{Kind: token.LParen}, pos), nil
	case ')':
		return s.emit(token.Token{Kind: token.RParen}, pos), nil
	case '[':
		return s.emit(token.Token{Kind: token.LBrack}, pos), nil
	case ']':
		return s.emit(token.Token{Kind: token.RBrack}, pos), nil
	case ':':
		return s.emit(token.Token{Kind: token.Colon}, pos), nil
	case ',':
		return s.emit(token.Token{Kind: token.Comma}, pos), nil
	case ';':
		return s.emit(token.Token{Kind: token.Semicolon}, pos), nil

	case '@':
		// This is an at-keyword token if an identifier follows.
		// Otherwise it's just a DELIM.
		if WouldStartIdentifier(s.cur.At(0), s.cur.At(1), s.cur.At(2)) {
			return s.emit(token.Token{Kind: token.AtKeyword, Text: s.scanName()}, pos), nil
		}

	case '#':
		if IsName(s.cur.At(0)) || IsValidEscape(s.cur.At(0), s.cur.At(1)) {
			return s.scanHash(pos), nil
		}

	case '+', '.':
		if IsDigit(s.cur.At(0)) {
			s.cur.Rewind()
			return s.scanNumeric(pos), nil
		}

	case '-':
		// A digit makes it a numeric token, "->" completes a CDC, and an
		// identifier start makes it ident-like.
		if IsDigit(s.cur.At(0)) {
			s.cur.Rewind()
			return s.scanNumeric(pos), nil
		} else if s.cur.At(0) == '-' && s.cur.At(1) == '>' {
			s.cur.skip(2)
			return s.emit(token.Token{Kind: token.CDC, Text: "-->"}, pos), nil
		} else if WouldStartIdentifier(ch, s.cur.At(0), s.cur.At(1)) {
			s.cur.Rewind()
			return s.scanIdentLike(pos)
		}

	case '<':
		if s.cur.At(0) == '!' && s.cur.At(1) == '-' && s.cur.At(2) == '-' {
			s.cur.skip(3)
			return s.emit(token.Token{Kind: token.CDO, Text: "<!--"}, pos), nil
		}

	case '\\':
		next := s.cur.At(0)
		s.cur.Rewind()
		if IsValidEscape(ch, next) {
			return s.scanIdentLike(pos)
		}
		return token.Token{}, &Error{Kind: InvalidEscape, Pos: pos, Expected: "escaped code point", Found: strconv.QuoteRune(next)}

	case '"', '\'':
		return s.scanString(pos, ch), nil

	default:
		if IsDigit(ch) {
			s.cur.Rewind()
			return s.scanNumeric(pos), nil
		} else if IsNameStart(ch) {
			s.cur.Rewind()
			return s.scanIdentLike(pos)
		}
	}

	return s.emit(token.Token{Kind: token.Delim, Text: string(ch)}, pos), nil
}

// emit sets the range of tok from pos to the current position.
func (s *Scanner) emit(tok token.Token, pos int) token.Token {
	tok.Pos, tok.End = pos, s.cur.Pos()
	return tok
}

// scanComment consumes all characters up to "*/", inclusive.
// This function assumes the cursor is positioned on the opening "/*".
func (s *Scanner) scanComment(pos int) (token.Token, error) {
	s.cur.skip(2)
	for {
		switch ch := s.cur.At(0); {
		case ch == EOF:
			return token.Token{}, &Error{Kind: UnterminatedComment, Pos: pos, Expected: strconv.Quote("*/"), Found: "EOF"}
		case ch == '*' && s.cur.At(1) == '/':
			s.cur.skip(2)
			return s.emit(token.Token{Kind: token.Comment, Text: s.cur.slice(pos, s.cur.Pos())}, pos), nil
		default:
			s.cur.skip(1)
		}
	}
}

// scanWhitespace consumes the current code point and all subsequent whitespace.
func (s *Scanner) scanWhitespace(pos int) token.Token {
	for IsWhitespace(s.cur.At(0)) {
		s.cur.skip(1)
	}
	return s.emit(token.Token{Kind: token.Whitespace, Text: s.cur.slice(pos, s.cur.Pos())}, pos)
}

// scanHash consumes a hash token.
//
// This assumes the "#" has been consumed and that a name or valid escape
// follows. Hash tokens' type flag is set to "id" if its value is an identifier.
func (s *Scanner) scanHash(pos int) token.Token {
	flag := token.HashUnrestricted
	if WouldStartIdentifier(s.cur.At(0), s.cur.At(1), s.cur.At(2)) {
		flag = token.HashID
	}
	return s.emit(token.Token{Kind: token.Hash, Text: s.scanName(), HashFlag: flag}, pos)
}

// scanString consumes a quoted string. (§4.3.5)
//
// This assumes that the opening quote has been consumed.
// This function consumes all code points and escaped code points up until
// a matching, unescaped ending quote.
// An EOF closes out a string but does not return an error.
// A newline will close a string and returns a bad-string token.
func (s *Scanner) scanString(pos int, ending rune) token.Token {
	var buf strings.Builder
	for {
		ch := s.cur.At(0)
		switch {
		case ch == EOF:
			return s.emit(token.Token{Kind: token.String, Text: buf.String(), Quote: ending}, pos)
		case ch == ending:
			s.cur.skip(1)
			return s.emit(token.Token{Kind: token.String, Text: buf.String(), Quote: ending}, pos)
		case IsNewline(ch):
			tok := s.emit(token.Token{Kind: token.BadString, Text: buf.String(), Quote: ending}, pos)
			s.logger.Debug("bad string", zap.Int("pos", pos), zap.Int("newline", tok.End))
			return tok
		case ch == '\\':
			switch next := s.cur.At(1); {
			case next == EOF:
				s.cur.skip(1)
			case IsNewline(next):
				// Escaped newlines continue the string and are dropped.
				if next == '\r' && s.cur.At(2) == '\n' {
					s.cur.skip(3)
				} else {
					s.cur.skip(2)
				}
			default:
				s.scanEscape(&buf)
			}
		default:
			s.cur.skip(1)
			buf.WriteRune(ch)
		}
	}
}

// scanNumeric consumes a numeric token.
//
// This assumes that the cursor is on a +, -, . or digit that starts a number.
func (s *Scanner) scanNumeric(pos int) token.Token {
	num, flag, repr := s.scanNumber()
	tok := token.Token{Text: repr, Number: num, NumericFlag: flag}

	switch {
	case s.cur.At(0) == '%':
		s.cur.skip(1)
		tok.Kind = token.Percentage
	case WouldStartIdentifier(s.cur.At(0), s.cur.At(1), s.cur.At(2)):
		tok.Kind, tok.Unit = token.Dimension, s.scanName()
	default:
		tok.Kind = token.Number
	}
	return s.emit(tok, pos)
}

// scanNumber consumes a number and returns its value, flag and
// representation. (§4.3.12)
func (s *Scanner) scanNumber() (num float64, flag token.NumericFlag, repr string) {
	start := s.cur.Pos()
	flag = token.FlagInteger

	// If initial code point is + or - then store it.
	if ch := s.cur.At(0); ch == '+' || ch == '-' {
		s.cur.skip(1)
	}

	// Read as many digits as possible.
	s.scanDigits()

	// If next code points are a full stop and digit then consume them.
	if s.cur.At(0) == '.' && IsDigit(s.cur.At(1)) {
		flag = token.FlagNumber
		s.cur.skip(2)
		s.scanDigits()
	}

	// Consume scientific notation (e0, e+0, e-0, E0, E+0, E-0).
	if ch := s.cur.At(0); ch == 'e' || ch == 'E' {
		if IsDigit(s.cur.At(1)) {
			flag = token.FlagNumber
			s.cur.skip(2)
			s.scanDigits()
		} else if sign := s.cur.At(1); (sign == '+' || sign == '-') && IsDigit(s.cur.At(2)) {
			flag = token.FlagNumber
			s.cur.skip(3)
			s.scanDigits()
		}
	}

	// Out of range values parse to ±Inf or zero, which is what we want.
	repr = s.cur.slice(start, s.cur.Pos())
	num, _ = strconv.ParseFloat(repr, 64)
	return num, flag, repr
}

// scanDigits consumes a contiguous series of digits.
func (s *Scanner) scanDigits() {
	for IsDigit(s.cur.At(0)) {
		s.cur.skip(1)
	}
}

// scanName consumes a name. (§4.3.11)
// Consumes contiguous name code points and escaped code points.
func (s *Scanner) scanName() string {
	var buf strings.Builder
	for {
		if ch := s.cur.At(0); IsName(ch) {
			s.cur.skip(1)
			buf.WriteRune(ch)
		} else if IsValidEscape(ch, s.cur.At(1)) {
			s.scanEscape(&buf)
		} else {
			return buf.String()
		}
	}
}

// scanEscape consumes an escape and writes it to buf as written. (§4.3.7)
//
// This assumes the cursor is on a reverse solidus that starts a valid
// escape. A hex escape takes up to six hex digits and one whitespace.
func (s *Scanner) scanEscape(buf *strings.Builder) {
	start := s.cur.Pos()
	s.cur.skip(1)

	switch ch := s.cur.At(0); {
	case ch == EOF:
	case IsHexDigit(ch):
		for i := 0; i < 6 && IsHexDigit(s.cur.At(0)); i++ {
			s.cur.skip(1)
		}
		if ch := s.cur.At(0); ch == '\r' && s.cur.At(1) == '\n' {
			s.cur.skip(2)
		} else if IsWhitespace(ch) {
			s.cur.skip(1)
		}
	default:
		s.cur.skip(1)
	}
	buf.WriteString(s.cur.slice(start, s.cur.Pos()))
}

// scanIdentLike consumes an ident-like token.
// This function can return an ident, function, url, or bad-url.
func (s *Scanner) scanIdentLike(pos int) (token.Token, error) {
	name := s.scanName()

	if s.cur.At(0) != '(' {
		return s.emit(token.Token{Kind: token.Ident, Text: name}, pos), nil
	}
	s.cur.skip(1)

	// A quoted url() is a function whose argument is a string token.
	if strings.EqualFold(name, "url") {
		for IsWhitespace(s.cur.At(0)) && IsWhitespace(s.cur.At(1)) {
			s.cur.skip(1)
		}
		if ch := s.cur.At(0); !isQuote(ch) && !(IsWhitespace(ch) && isQuote(s.cur.At(1))) {
			return s.scanURL(pos)
		}
	}
	return s.emit(token.Token{Kind: token.Function, Text: name}, pos), nil
}

// scanURL consumes the contents of an unquoted URL. (§4.3.6)
// This function assumes that the "url(" has just been consumed.
// This function can return a url or bad-url token.
func (s *Scanner) scanURL(pos int) (token.Token, error) {
	// Consume all whitespace after the "(".
	for IsWhitespace(s.cur.At(0)) {
		s.cur.skip(1)
	}

	var buf strings.Builder
	for {
		ch := s.cur.At(0)
		switch {
		case ch == ')':
			s.cur.skip(1)
			return s.emit(token.Token{Kind: token.URL, Text: buf.String()}, pos), nil

		case ch == EOF:
			return token.Token{}, s.unterminatedURL(pos)

		case IsWhitespace(ch):
			// Whitespace is only allowed before the closing parenthesis.
			for IsWhitespace(s.cur.At(0)) {
				s.cur.skip(1)
			}
			if next := s.cur.At(0); next == ')' {
				s.cur.skip(1)
				return s.emit(token.Token{Kind: token.URL, Text: buf.String()}, pos), nil
			} else if next == EOF {
				return token.Token{}, s.unterminatedURL(pos)
			}
			return s.scanBadURL(pos, buf.String(), "whitespace inside url"), nil

		case isQuote(ch) || ch == '(' || IsNonPrintable(ch):
			return s.scanBadURL(pos, buf.String(), "invalid url code point: "+strconv.QuoteRune(ch)), nil

		case ch == '\\':
			if !IsValidEscape(ch, s.cur.At(1)) {
				return s.scanBadURL(pos, buf.String(), "unescaped \\ in url"), nil
			}
			s.scanEscape(&buf)

		default:
			s.cur.skip(1)
			buf.WriteRune(ch)
		}
	}
}

func (s *Scanner) unterminatedURL(pos int) error {
	return &Error{Kind: UnterminatedURL, Pos: pos, Expected: strconv.Quote(")"), Found: "EOF"}
}

// scanBadURL recovers the scanner from a malformed URL token. (§4.3.14)
// We simply consume all non-) and non-eof characters and escaped code points.
func (s *Scanner) scanBadURL(pos int, value, reason string) token.Token {
	var discard strings.Builder
	for {
		ch := s.cur.At(0)
		if ch == EOF {
			break
		} else if ch == ')' {
			s.cur.skip(1)
			break
		} else if IsValidEscape(ch, s.cur.At(1)) {
			s.scanEscape(&discard)
		} else {
			s.cur.skip(1)
		}
	}

	tok := s.emit(token.Token{Kind: token.BadURL, Text: value}, pos)
	s.logger.Debug("bad url", zap.Int("pos", pos), zap.Int("end", tok.End), zap.String("reason", reason))
	return tok
}

// isQuote returns true for a single or double quote.
func isQuote(ch rune) bool {
	return ch == '"' || ch == '\''
}
