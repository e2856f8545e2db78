package tag_parser

import (
	"fmt"

	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// ParseComponentTag consumes a full component tag: the opening `<`, the
// shared tag suffix, and the interior re-parsed as a component
// descriptor. Component tags have no closing counterpart, so a tag that
// is not self-closed is malformed and is reported at the synthesized
// bracket-pair span. Inner end-of-input failures are re-anchored to the
// self-close marker for a clearer diagnostic; all other inner errors
// propagate unchanged
func ParseComponentTag(cursor tag_lexer.Cursor) (*ComponentNode, tag_lexer.Cursor, *util.ParseError) {
	lt, c, ok := cursor.PunctChar("<")
	if !ok {
		tok, _ := cursor.Peek()
		return nil, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected `<`, found `%s`", tok.Text))
	}

	suffix, c, err := parseTagSuffix(c)
	if err != nil {
		return nil, cursor, err
	}

	if suffix.SelfClose == nil {
		return nil, cursor, util.NewParseError(
			spanBetween(lt.SourceSpan, suffix.Gt.SourceSpan),
			util.ErrorKindMalformedTag,
			"expected component tag be of form `< .. />`")
	}

	inner := tag_lexer.NewCursor(suffix.Interior)
	descriptor, err := parseComponentDescriptor(inner)
	if err != nil {
		if err.Kind == util.ErrorKindUnexpectedEOF {
			err = err.ReanchorTo(suffix.SelfClose.SourceSpan)
		}
		return nil, cursor, err
	}

	node := NewComponentNode(descriptor, spanBetween(lt.SourceSpan, suffix.Gt.SourceSpan))
	return node, c, nil
}

// parseComponentDescriptor parses the tag interior: the type reference,
// an optional legacy `:`, and whichever property form is present. The
// interior must be fully consumed
func parseComponentDescriptor(cursor tag_lexer.Cursor) (*ComponentDescriptor, *util.ParseError) {
	ty, c, err := parseTypeReference(cursor)
	if err != nil {
		return nil, err
	}

	// backwards compat: a lone `:` after the type path is discarded
	if _, next, ok := c.PunctChar(":"); ok {
		c = next
	}

	descriptor := &ComponentDescriptor{Type: ty, Props: PropertySpec{Kind: PropsAbsent}}

	if keyword, _, ok := c.Ident(); ok {
		if keyword.Text == delegateKeyword {
			delegate, next, err := ParseDelegate(c)
			if err != nil {
				return nil, err
			}
			descriptor.Props = PropertySpec{Kind: PropsDelegate, Delegate: delegate}
			c = next
		} else {
			list, next, err := parsePropertyList(c)
			if err != nil {
				return nil, err
			}
			descriptor.Props = PropertySpec{Kind: PropsList, List: list}
			c = next
		}
	}

	if tok, ok := c.Peek(); ok {
		return nil, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("unexpected token `%s` in component tag", tok.Text))
	}

	return descriptor, nil
}

// parseTypeReference consumes a `ident (:: ident)*` type path. The
// first `::` is optional; once a bare identifier has been consumed,
// every further segment requires a preceding `::`
func parseTypeReference(cursor tag_lexer.Cursor) (*TypeReference, tag_lexer.Cursor, *util.ParseError) {
	ty := &TypeReference{}
	c := cursor
	colonsOptional := true

	for {
		foundColons := false
		postColonsCursor := c
		if pc, ok := doubleColon(postColonsCursor); ok {
			foundColons = true
			postColonsCursor = pc
		} else if !colonsOptional {
			break
		}

		ident, afterIdent, ok := postColonsCursor.Ident()
		if !ok {
			break
		}
		c = afterIdent
		if foundColons && len(ty.Segments) == 0 {
			ty.LeadingColons = true
		}
		ty.Segments = append(ty.Segments, ident.Text)
		if ty.SourceSpan == nil {
			ty.SourceSpan = ident.SourceSpan
		} else {
			ty.SourceSpan = spanBetween(ty.SourceSpan, ident.SourceSpan)
		}

		colonsOptional = false
	}

	if len(ty.Segments) == 0 {
		tok, ok := cursor.Peek()
		if !ok {
			return nil, cursor, util.NewParseError(
				cursor.EOFSpan(), util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected type path")
		}
		return nil, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected type path, found `%s`", tok.Text))
	}

	return ty, c, nil
}
