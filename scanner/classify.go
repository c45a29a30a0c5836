package scanner

// EOF is returned by lookahead past the end of the input.
const EOF rune = -1

// IsWhitespace returns true if the rune is a space, tab, or newline.
// Carriage returns and form feeds count as newlines.
func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || IsNewline(ch)
}

// IsNewline returns true if the rune is a line feed, carriage return or form feed.
func IsNewline(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\f'
}

// IsLetter returns true if the rune is an ASCII letter.
func IsLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsDigit returns true if the rune is a digit.
func IsDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// IsHexDigit returns true if the rune is a hex digit.
func IsHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// IsNonASCII returns true if the rune is greater than U+007F.
func IsNonASCII(ch rune) bool {
	return ch > '\u007F'
}

// IsNameStart returns true if the rune can start a name.
func IsNameStart(ch rune) bool {
	return IsLetter(ch) || IsNonASCII(ch) || ch == '_'
}

// IsName returns true if the character is a name code point.
func IsName(ch rune) bool {
	return IsNameStart(ch) || IsDigit(ch) || ch == '-'
}

// IsNonPrintable returns true if the character is non-printable.
func IsNonPrintable(ch rune) bool {
	return (ch >= '\u0000' && ch <= '\u0008') || ch == '\u000B' || (ch >= '\u000E' && ch <= '\u001F') || ch == '\u007F'
}

// IsValidEscape returns true if the two code points start a valid escape. (§4.3.8)
//
// A reverse solidus followed by the end of input is a valid escape.
func IsValidEscape(ch0, ch1 rune) bool {
	return ch0 == '\\' && !IsNewline(ch1)
}

// WouldStartIdentifier returns true if the three code points would start
// an identifier. (§4.3.9)
func WouldStartIdentifier(ch0, ch1, ch2 rune) bool {
	switch {
	case ch0 == '-':
		return IsNameStart(ch1) || ch1 == '-' || IsValidEscape(ch1, ch2)
	case IsNameStart(ch0):
		return true
	case ch0 == '\\':
		return IsValidEscape(ch0, ch1)
	}
	return false
}
