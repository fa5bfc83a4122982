package parse

// Cursor marks a position within a byte sequence. The zero byte serves as the
// end-of-sequence sentinel, so input containing NUL bytes cannot be
// distinguished from its own end.
//
// The cursor never owns the backing storage; callers create one per input and
// thread it through a chain of parser invocations.
type Cursor struct {
	input []byte
	pos   int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input []byte) *Cursor {
	return &Cursor{input: input}
}

// Current returns the byte at the cursor position, or 0 at the end of input.
func (c *Cursor) Current() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

// AtEnd reports whether the cursor has consumed all input.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Advance moves the cursor to the next position. Advancing past the end is a
// no-op.
func (c *Cursor) Advance() {
	if c.pos < len(c.input) {
		c.pos++
	}
}

// Pos returns the current offset from the start of input. Two cursors over
// the same input are at the same position iff their offsets are equal.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the cursor to a previously observed offset. Back and Peek use
// this to restore a snapshot taken with Pos.
func (c *Cursor) Seek(pos int) {
	c.pos = pos
}
