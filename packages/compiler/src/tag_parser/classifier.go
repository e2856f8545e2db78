package tag_parser

import (
	"strings"

	"vtc-go/packages/compiler/src/tag_lexer"
)

// doubleColon peeks two consecutive `:` punctuation tokens. It returns
// the cursor advanced past both, or the original cursor when they are
// not present
func doubleColon(cursor tag_lexer.Cursor) (tag_lexer.Cursor, bool) {
	c := cursor
	for i := 0; i < 2; i++ {
		_, next, ok := c.PunctChar(":")
		if !ok {
			return cursor, false
		}
		c = next
	}
	return c, true
}

// PeekComponentType decides whether the tokens ahead of the cursor,
// positioned immediately after an opening `<`, form a type path
// eligible to be a component. It is a pure lookahead: the caller's
// cursor is never advanced.
//
// The path grammar is `ident (:: ident)*` with the first `::` optional;
// once one identifier has been consumed without colons, every further
// segment requires a `::`. The accumulated path qualifies iff it is
// non-empty and contains at least one non-lowercase character, which is
// the sole signal separating a component reference from a plain
// (lowercase) element name
func PeekComponentType(cursor tag_lexer.Cursor) bool {
	var typeStr strings.Builder
	colonsOptional := true

	for {
		foundColons := false
		postColonsCursor := cursor
		if c, ok := doubleColon(postColonsCursor); ok {
			foundColons = true
			postColonsCursor = c
		} else if !colonsOptional {
			break
		}

		ident, c, ok := postColonsCursor.Ident()
		if !ok {
			break
		}
		cursor = c
		if foundColons {
			typeStr.WriteString("::")
		}
		typeStr.WriteString(ident.Text)

		// only first `::` is optional
		colonsOptional = false
	}

	path := typeStr.String()
	if path == "" {
		return false
	}
	return strings.ToLower(path) != path
}

// PeekComponentTag decides whether the cursor sits on an opening `<`
// followed by a component type path. Like PeekComponentType it consumes
// nothing
func PeekComponentTag(cursor tag_lexer.Cursor) bool {
	_, c, ok := cursor.PunctChar("<")
	if !ok {
		return false
	}
	return PeekComponentType(c)
}
