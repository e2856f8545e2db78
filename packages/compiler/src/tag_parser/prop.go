package tag_parser

import (
	"fmt"
	"sort"
	"strings"

	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// reservedLabel is the label plain elements use for their type field;
// it may not appear as a component property name
const reservedLabel = "type"

// delegateKeyword introduces the pre-built-properties form
const delegateKeyword = "with"

func spanBetween(start, end *util.ParseSourceSpan) *util.ParseSourceSpan {
	return util.NewParseSourceSpan(start.Start, end.End, nil)
}

// peekPropertyDeclaration reports whether the tokens ahead look like
// the start of a `label=value` pair. Pure lookahead
func peekPropertyDeclaration(cursor tag_lexer.Cursor) bool {
	_, c, ok := peekPropertyLabel(cursor)
	if !ok {
		return false
	}
	_, _, ok = c.PunctChar("=")
	return ok
}

// peekPropertyLabel peeks an identifier with optional dashed extension
// segments (`data-id`, `aria-hidden`)
func peekPropertyLabel(cursor tag_lexer.Cursor) (PropertyLabel, tag_lexer.Cursor, bool) {
	ident, c, ok := cursor.Ident()
	if !ok {
		return PropertyLabel{}, cursor, false
	}
	label := PropertyLabel{Name: ident.Text, SourceSpan: ident.SourceSpan}
	for {
		_, afterDash, ok := c.PunctChar("-")
		if !ok {
			break
		}
		ext, afterExt, ok := afterDash.Ident()
		if !ok {
			break
		}
		label.Extended = append(label.Extended, ext.Text)
		label.SourceSpan = spanBetween(label.SourceSpan, ext.SourceSpan)
		c = afterExt
	}
	return label, c, true
}

// parsePropertyDeclaration consumes one `label=value` pair
func parsePropertyDeclaration(cursor tag_lexer.Cursor) (PropertyDeclaration, tag_lexer.Cursor, *util.ParseError) {
	label, c, ok := peekPropertyLabel(cursor)
	if !ok {
		tok, peeked := cursor.Peek()
		if !peeked {
			return PropertyDeclaration{}, cursor, util.NewParseError(
				cursor.EOFSpan(), util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected property label")
		}
		return PropertyDeclaration{}, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected property label, found `%s`", tok.Text))
	}

	_, c, ok = c.PunctChar("=")
	if !ok {
		tok, peeked := c.Peek()
		if !peeked {
			return PropertyDeclaration{}, cursor, util.NewParseError(
				c.EOFSpan(), util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected `=`")
		}
		return PropertyDeclaration{}, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected `=`, found `%s`", tok.Text))
	}

	value, c, err := parseAttributeValue(c)
	if err != nil {
		return PropertyDeclaration{}, cursor, err
	}
	return PropertyDeclaration{Label: label, Value: value}, c, nil
}

// parseAttributeValue consumes one property value: a literal, an
// identifier path, or a braced expression group captured verbatim
func parseAttributeValue(cursor tag_lexer.Cursor) (ValueExpr, tag_lexer.Cursor, *util.ParseError) {
	tok, ok := cursor.Peek()
	if !ok {
		return ValueExpr{}, cursor, util.NewParseError(
			cursor.EOFSpan(), util.ErrorKindUnexpectedEOF,
			"unexpected end of input, expected expression")
	}

	if tok.IsPunct("{") {
		return parseBracedGroup(cursor)
	}

	if lit, c, ok := cursor.Literal(); ok {
		return ValueExpr{Text: lit.Text, SourceSpan: lit.SourceSpan}, c, nil
	}

	if ident, c, ok := cursor.Ident(); ok {
		return parseIdentPathValue(ident, c)
	}

	return ValueExpr{}, cursor, util.NewParseError(
		tok.SourceSpan, util.ErrorKindUnexpectedToken,
		fmt.Sprintf("expected expression, found `%s`", tok.Text))
}

// parseBracedGroup captures a balanced `{ ... }` group. The value text
// is the interior source, braces stripped
func parseBracedGroup(cursor tag_lexer.Cursor) (ValueExpr, tag_lexer.Cursor, *util.ParseError) {
	open, c, _ := cursor.PunctChar("{")
	depth := 1
	for {
		tok, ok := c.Peek()
		if !ok {
			return ValueExpr{}, cursor, util.NewParseError(
				c.EOFSpan(), util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected `}`")
		}
		if tok.IsPunct("{") {
			depth++
		} else if tok.IsPunct("}") {
			depth--
			if depth == 0 {
				c = advanceOne(c)
				content := open.SourceSpan.Start.File.Content
				text := strings.TrimSpace(content[open.SourceSpan.End.Offset:tok.SourceSpan.Start.Offset])
				return ValueExpr{
					Text:       text,
					SourceSpan: spanBetween(open.SourceSpan, tok.SourceSpan),
				}, c, nil
			}
		}
		c = advanceOne(c)
	}
}

// parseIdentPathValue consumes the rest of an identifier-path value:
// `a.b.c` or `a::b::c` segments after the leading identifier
func parseIdentPathValue(first tag_lexer.Token, cursor tag_lexer.Cursor) (ValueExpr, tag_lexer.Cursor, *util.ParseError) {
	var text strings.Builder
	text.WriteString(first.Text)
	span := first.SourceSpan
	c := cursor
	for {
		if _, afterDot, ok := c.PunctChar("."); ok {
			if ident, afterIdent, ok := afterDot.Ident(); ok {
				text.WriteString(".")
				text.WriteString(ident.Text)
				span = spanBetween(span, ident.SourceSpan)
				c = afterIdent
				continue
			}
		}
		if colons, ok := doubleColon(c); ok {
			if ident, afterIdent, ok := colons.Ident(); ok {
				text.WriteString("::")
				text.WriteString(ident.Text)
				span = spanBetween(span, ident.SourceSpan)
				c = afterIdent
				continue
			}
		}
		break
	}
	return ValueExpr{Text: text.String(), SourceSpan: span}, c, nil
}

// parsePropertyList consumes zero or more property declarations, then
// validates and canonicalizes them: the reserved element type label and
// dashed labels are rejected, duplicates are rejected, and the accepted
// list is stable-sorted ascending by label text
func parsePropertyList(cursor tag_lexer.Cursor) ([]PropertyDeclaration, tag_lexer.Cursor, *util.ParseError) {
	var props []PropertyDeclaration
	c := cursor
	for peekPropertyDeclaration(c) {
		prop, next, err := parsePropertyDeclaration(c)
		if err != nil {
			return nil, cursor, err
		}
		props = append(props, prop)
		c = next
	}

	seen := map[string]bool{}
	for _, prop := range props {
		if prop.Label.Name == reservedLabel && len(prop.Label.Extended) == 0 {
			return nil, cursor, util.NewParseError(
				prop.Label.SourceSpan, util.ErrorKindReservedLabel,
				fmt.Sprintf("`%s` is a reserved label for element tags, expected identifier", reservedLabel))
		}
		if len(prop.Label.Extended) > 0 {
			return nil, cursor, util.NewParseError(
				prop.Label.SourceSpan, util.ErrorKindQualifiedLabel,
				fmt.Sprintf("dashed label `%s` is not allowed on components, expected identifier", prop.Label))
		}
		if seen[prop.Label.Name] {
			return nil, cursor, util.NewParseError(
				prop.Label.SourceSpan, util.ErrorKindDuplicateLabel,
				fmt.Sprintf("duplicate property `%s`", prop.Label.Name))
		}
		seen[prop.Label.Name] = true
	}

	// alphabetize for canonical emission order
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Label.Name < props[j].Label.Name
	})

	return props, c, nil
}

// ParseDelegate consumes the delegate form: the `with` keyword, one
// plain identifier naming the pre-built properties value, and an
// optional trailing comma
func ParseDelegate(cursor tag_lexer.Cursor) (*PropertyDelegate, tag_lexer.Cursor, *util.ParseError) {
	keyword, c, ok := cursor.Ident()
	if !ok {
		return nil, cursor, util.NewParseError(
			cursor.EOFSpan(), util.ErrorKindUnexpectedEOF,
			"unexpected end of input, expected `with`")
	}
	if keyword.Text != delegateKeyword {
		return nil, cursor, util.NewParseError(
			keyword.SourceSpan, util.ErrorKindDelegateKeyword,
			"expected to find `with` token")
	}

	props, c, ok := c.Ident()
	if !ok {
		tok, peeked := c.Peek()
		if !peeked {
			return nil, cursor, util.NewParseError(
				c.EOFSpan(), util.ErrorKindUnexpectedEOF,
				"unexpected end of input, expected properties identifier")
		}
		return nil, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected properties identifier, found `%s`", tok.Text))
	}

	// trailing comma is accepted and discarded
	if _, next, ok := c.PunctChar(","); ok {
		c = next
	}

	return &PropertyDelegate{Name: props.Text, SourceSpan: props.SourceSpan}, c, nil
}
