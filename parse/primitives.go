package parse

// Satisfy returns a parser that consumes a single character matching pred.
// At the end of input it fails with ErrEndOfInput; if the current character
// does not match it fails with ErrUnsatisfied. In both failure cases the
// cursor does not move, making Satisfy (and everything built directly on it)
// atomic.
func Satisfy(pred func(byte) bool) Parser {
	return func(c *Cursor) (string, error) {
		if c.AtEnd() {
			return "", ErrEndOfInput
		}
		ch := c.Current()
		if !pred(ch) {
			return "", ErrUnsatisfied
		}
		c.Advance()
		return string([]byte{ch}), nil
	}
}

// Char matches exactly the character ch.
func Char(ch byte) Parser {
	return Satisfy(func(b byte) bool { return b == ch })
}

// Exclude matches any single character except ch.
func Exclude(ch byte) Parser {
	return Satisfy(func(b byte) bool { return b != ch })
}

// Literal matches the characters of s in order and returns s. Each matched
// character is consumed before the next is checked, so a mismatch partway
// through leaves the cursor advanced past the matched prefix: Literal is not
// atomic for strings longer than one character. Wrap it in Back where
// all-or-nothing behavior is required. The empty literal always succeeds and
// consumes nothing.
func Literal(s string) Parser {
	return func(c *Cursor) (string, error) {
		for i := 0; i < len(s); i++ {
			if c.Current() != s[i] {
				return "", ErrUnsatisfied
			}
			c.Advance()
		}
		return s, nil
	}
}

// Single-character class parsers. Classification is single-byte and
// locale-independent; bytes outside the ASCII range never match.
var (
	AnyChar    = Satisfy(func(byte) bool { return true })
	Digit      = Satisfy(isDigit)
	Alpha      = Satisfy(isAlpha)
	AlphaNum   = Satisfy(isAlphaNum)
	Whitespace = Satisfy(isSpace)
)

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphaNum(ch byte) bool {
	return isDigit(ch) || isAlpha(ch)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
