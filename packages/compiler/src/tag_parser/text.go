package tag_parser

import (
	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// parseTextNode consumes one text node: either a braced expression
// group, or a run of raw tokens up to the next `<`
func parseTextNode(cursor tag_lexer.Cursor) (*TextNode, tag_lexer.Cursor, *util.ParseError) {
	tok, ok := cursor.Peek()
	if !ok {
		return nil, cursor, util.NewParseError(
			cursor.EOFSpan(), util.ErrorKindUnexpectedEOF,
			"unexpected end of input, expected text")
	}

	if tok.IsPunct("{") {
		value, c, err := parseBracedGroup(cursor)
		if err != nil {
			return nil, cursor, err
		}
		return NewTextNode(value.Text, true, value.SourceSpan), c, nil
	}

	start := tok.SourceSpan
	end := tok.SourceSpan
	c := cursor
	for {
		tok, ok := c.Peek()
		if !ok || tok.IsPunct("<") || tok.IsPunct("{") {
			break
		}
		end = tok.SourceSpan
		c = advanceOne(c)
	}
	span := spanBetween(start, end)
	return NewTextNode(span.String(), false, span), c, nil
}
