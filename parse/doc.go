// Package parse provides a small combinator engine for consuming a stream of
// characters and producing string values.
//
// # Overview
//
// A parser is a function over a mutable cursor:
//
//	type Parser func(*Cursor) (string, error)
//
// Invoking a parser either returns a string value and leaves the cursor
// advanced past the consumed input, or returns a non-nil error and signals
// failure. Grammars for concrete formats are built by composing the
// primitives (Satisfy, Char, Literal, the character classes) with the
// structural combinators (Seq, Or, Rep, Many, Ignore, Back, Peek). No
// registration or configuration exists beyond function composition.
//
// # Atomic and compound parsers
//
// Parsers fall into two behavioral classes, and the correctness of any
// composition depends on knowing which class an operand belongs to:
//
//   - Atomic parsers (Satisfy, Char, and everything built directly on them)
//     consume at most the characters they accept. On failure the cursor is
//     untouched.
//   - Compound parsers (Seq chains, Literal over more than one character,
//     Many over compound parsers) may consume input before a later step
//     fails, leaving the cursor advanced past the failure point even though
//     the parser as a whole failed.
//
// Only Back and the read-only Peek restore the cursor. Seq, Or, and Many
// never do.
//
// # Alternation does not backtrack
//
// Or tries its second alternative from wherever the first one left the
// cursor. Combined with the compound behavior of Literal, this means
//
//	parse.Or(parse.Literal("ab"), parse.Literal("ac"))
//
// fails on input "ac": the first alternative consumes 'a' before failing on
// 'b' vs 'c', and the second alternative then sees "c". To get conventional
// try-one-else-the-other semantics, wrap each alternative in Back:
//
//	parse.Or(parse.Back(parse.Literal("ab")), parse.Back(parse.Literal("ac")))
//
// # Failure
//
// Failures carry no position or message. Two sentinels exist, ErrEndOfInput
// and ErrUnsatisfied, but no combinator discriminates between them; all
// control flow (retrying via Or, stopping via Many) reacts to
// success-versus-failure only.
//
// # Termination
//
// Many loops until its operand fails. An operand that succeeds without
// advancing the cursor (for example Many(Literal(""))) never fails, so the
// loop never ends. The engine does not guard against this; guaranteeing
// progress is the caller's obligation.
//
// # Thread safety
//
// A Cursor is mutated in place and must not be shared between goroutines
// during a parse. Parsers themselves hold no mutable state and may be reused
// freely.
package parse
