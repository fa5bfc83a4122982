package parse

import "strings"

// Rep runs p exactly n times and concatenates the results. It fails as soon
// as any invocation fails, propagating whatever that invocation consumed; no
// rollback is performed.
func Rep(n int, p Parser) Parser {
	return func(c *Cursor) (string, error) {
		var b strings.Builder
		for i := 0; i < n; i++ {
			v, err := p(c)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		}
		return b.String(), nil
	}
}

// Many runs p repeatedly until it fails, concatenating the successful
// results. Many itself never fails: zero successful iterations yields the
// empty string. The failing attempt's cursor movement is not undone — if p is
// compound and consumes before failing, the cursor stays advanced. See the
// package documentation for the termination obligation on p.
func Many(p Parser) Parser {
	return func(c *Cursor) (string, error) {
		var b strings.Builder
		for {
			v, err := p(c)
			if err != nil {
				return b.String(), nil
			}
			b.WriteString(v)
		}
	}
}

// Ignore runs p for its consumption and failure only, discarding its value.
// On success it returns the empty string; failures propagate unchanged.
func Ignore(p Parser) Parser {
	return func(c *Cursor) (string, error) {
		if _, err := p(c); err != nil {
			return "", err
		}
		return "", nil
	}
}

// Back makes p all-or-nothing: the cursor position is snapshotted before p
// runs, and restored if p fails. This is the only combinator that rolls a
// failed parse back; use it around Literal and Seq chains whose partial
// consumption would otherwise leak.
func Back(p Parser) Parser {
	return func(c *Cursor) (string, error) {
		mark := c.Pos()
		v, err := p(c)
		if err != nil {
			c.Seek(mark)
			return "", err
		}
		return v, nil
	}
}

// Peek runs p and restores the cursor regardless of the outcome, yielding
// p's value or failure without consuming anything. Used for zero-width
// lookahead.
func Peek(p Parser) Parser {
	return func(c *Cursor) (string, error) {
		mark := c.Pos()
		v, err := p(c)
		c.Seek(mark)
		if err != nil {
			return "", err
		}
		return v, nil
	}
}
