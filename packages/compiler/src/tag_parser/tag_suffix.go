package tag_parser

import (
	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// TagSuffix is the shared tail of an opening tag: the interior token
// stream, the optional `/` self-close marker, and the closing `>`.
// Interior ends with a synthetic EOF token anchored just before the
// closing bracket so inner parses report end-of-input at a useful
// location
type TagSuffix struct {
	Interior  []tag_lexer.Token
	SelfClose *tag_lexer.Token
	Gt        tag_lexer.Token
}

// parseTagSuffix scans from a cursor positioned just after `<` to the
// matching `>` at group depth zero, collecting the interior tokens.
// Group depth tracks `{}`, `()` and `[]` so a `>` inside a braced
// property value does not terminate the tag
func parseTagSuffix(cursor tag_lexer.Cursor) (*TagSuffix, tag_lexer.Cursor, *util.ParseError) {
	var interior []tag_lexer.Token
	depth := 0

	for {
		tok, ok := cursor.Peek()
		if !ok {
			return nil, cursor, util.NewParseError(
				cursor.EOFSpan(),
				util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected `>`",
			)
		}

		if tok.Type == tag_lexer.TokenTypePUNCT {
			switch tok.Text {
			case "{", "(", "[":
				depth++
			case "}", ")", "]":
				depth--
			case ">":
				if depth == 0 {
					suffix := &TagSuffix{Gt: tok}
					if n := len(interior); n > 0 && interior[n-1].IsPunct("/") {
						marker := interior[n-1]
						suffix.SelfClose = &marker
						interior = interior[:n-1]
					}
					eofLoc := tok.SourceSpan.Start
					interior = append(interior, tag_lexer.NewEndOfFileToken(
						util.NewParseSourceSpan(eofLoc, eofLoc, nil)))
					suffix.Interior = interior
					return suffix, advanceOne(cursor), nil
				}
			}
		}

		interior = append(interior, tok)
		cursor = advanceOne(cursor)
	}
}

// advanceOne returns the cursor moved past exactly one token of any
// type
func advanceOne(cursor tag_lexer.Cursor) tag_lexer.Cursor {
	if _, c, ok := cursor.Punct(); ok {
		return c
	}
	if _, c, ok := cursor.Ident(); ok {
		return c
	}
	if _, c, ok := cursor.Literal(); ok {
		return c
	}
	return cursor
}
