package parse

import (
	"errors"
	"strings"
)

// Parser consumes input at the cursor and returns the matched text. On
// failure it returns a non-nil error; how far the cursor moved before the
// failure depends on the parser (see the package documentation on atomic
// versus compound parsers).
type Parser func(*Cursor) (string, error)

// Failure sentinels. Combinators never discriminate between the two; they
// exist so a primitive can report whether input ran out or merely did not
// match.
var (
	ErrEndOfInput  = errors.New("end of input")
	ErrUnsatisfied = errors.New("condition not satisfied")
)

// Seq runs the given parsers in order, each starting where the previous one
// stopped, and concatenates their results. It fails as soon as any parser
// fails, leaving the cursor wherever that parser left it; no rollback is
// performed.
func Seq(first Parser, rest ...Parser) Parser {
	return func(c *Cursor) (string, error) {
		v, err := first(c)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		b.WriteString(v)
		for _, p := range rest {
			v, err := p(c)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		}
		return b.String(), nil
	}
}

// Or tries each parser in order and returns the first success. Each
// alternative starts from the cursor's current position, which may already be
// advanced if an earlier alternative consumed input before failing — Or does
// not restore the cursor between attempts. Wrap alternatives in Back for
// conventional backtracking alternation. If every alternative fails, Or fails
// with the last error.
func Or(first Parser, rest ...Parser) Parser {
	return func(c *Cursor) (string, error) {
		v, err := first(c)
		for _, p := range rest {
			if err == nil {
				return v, nil
			}
			v, err = p(c)
		}
		if err != nil {
			return "", err
		}
		return v, nil
	}
}

// Then is Seq as a chaining method: p.Then(q) matches p followed by q.
func (p Parser) Then(q Parser) Parser {
	return Seq(p, q)
}

// OrElse is Or as a chaining method: p.OrElse(q) tries p, then q.
func (p Parser) OrElse(q Parser) Parser {
	return Or(p, q)
}
