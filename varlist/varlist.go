// Package varlist reads labeled, comma-delimited variable lists such as
//
//	VARIABLES= "var1", "var2" ,"var3" , "var4"
//
// The grammar is assembled entirely from the parse package and doubles as a
// worked example of composing its combinators, in particular of wrapping
// compound parsers in parse.Back so that a failed label or item leaves the
// cursor where it started.
package varlist

import (
	"fmt"

	"github.com/dhamidi/simparse/parse"
)

// List is the parsed form of a labeled variable list. Label holds the raw
// matched header text, including the whitespace around the equals sign.
type List struct {
	Label string   `json:"label"`
	Names []string `json:"names"`
}

// Label matches the list header: the VARIABLES keyword, optional whitespace,
// and the equals sign. The whole header is all-or-nothing.
func Label() parse.Parser {
	return parse.Trace("varlist.label", parse.Back(parse.Seq(
		parse.Literal("VARIABLES"),
		parse.Many(parse.Whitespace),
		parse.Literal("="),
		parse.Many(parse.Whitespace),
	)))
}

// Item matches one double-quoted name and swallows any trailing comma and
// surrounding whitespace, yielding just the name.
func Item() parse.Parser {
	return parse.Trace("varlist.item", parse.Back(parse.Seq(
		parse.Ignore(parse.Literal(`"`)),
		parse.Many(parse.AlphaNum),
		parse.Ignore(parse.Literal(`"`)),
		parse.Ignore(parse.Seq(
			parse.Many(parse.Whitespace),
			parse.Many(parse.Literal(",")),
			parse.Many(parse.Whitespace),
		)),
	)))
}

// Parse reads a labeled variable list from the start of input. It fails if
// the header is absent and otherwise collects quoted names until the first
// position where no further item matches; trailing input after the last item
// is left unread.
func Parse(input []byte) (*List, error) {
	cur := parse.NewCursor(input)

	label, err := Label()(cur)
	if err != nil {
		return nil, fmt.Errorf("parse label: %w", err)
	}

	list := &List{Label: label}
	item := Item()
	for {
		name, err := item(cur)
		if err != nil {
			return list, nil
		}
		list.Names = append(list.Names, name)
	}
}
