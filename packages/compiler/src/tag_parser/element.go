package tag_parser

import (
	"fmt"

	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// parseElementTag consumes a plain element tag. Unlike components,
// elements keep their attributes in source order, accept dashed and
// `type` labels, and may enclose children between an open and a
// matching `</name>` close tag
func parseElementTag(cursor tag_lexer.Cursor) (*ElementNode, tag_lexer.Cursor, *util.ParseError) {
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

	inner := tag_lexer.NewCursor(suffix.Interior)
	name, inner, ok := inner.Ident()
	if !ok {
		return nil, cursor, util.NewParseError(
			spanBetween(lt.SourceSpan, suffix.Gt.SourceSpan),
			util.ErrorKindUnexpectedToken,
			"expected element name after `<`")
	}

	var attrs []PropertyDeclaration
	for peekPropertyDeclaration(inner) {
		attr, next, err := parsePropertyDeclaration(inner)
		if err != nil {
			return nil, cursor, err
		}
		attrs = append(attrs, attr)
		inner = next
	}
	if tok, ok := inner.Peek(); ok {
		return nil, cursor, util.NewParseError(
			tok.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("unexpected token `%s` in element tag", tok.Text))
	}

	span := spanBetween(lt.SourceSpan, suffix.Gt.SourceSpan)
	if suffix.SelfClose != nil {
		return NewElementNode(name.Text, attrs, nil, span), c, nil
	}

	children, c, closeSpan, err := parseNodes(c, name.Text)
	if err != nil {
		return nil, cursor, err
	}
	return NewElementNode(name.Text, attrs, children, spanBetween(span, closeSpan)), c, nil
}

// parseCloseTag consumes `</name>` and verifies the name matches the
// enclosing open tag
func parseCloseTag(cursor tag_lexer.Cursor, name string) (*util.ParseSourceSpan, tag_lexer.Cursor, *util.ParseError) {
	lt, c, _ := cursor.PunctChar("<")
	_, c, _ = c.PunctChar("/")
	ident, c, ok := c.Ident()
	if !ok || ident.Text != name {
		found := "end of input"
		span := c.EOFSpan()
		if ok {
			found = fmt.Sprintf("`%s`", ident.Text)
			span = ident.SourceSpan
		}
		return nil, cursor, util.NewParseError(
			span, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected closing tag `</%s>`, found %s", name, found))
	}
	gt, c, ok := c.PunctChar(">")
	if !ok {
		return nil, cursor, util.NewParseError(
			ident.SourceSpan, util.ErrorKindUnexpectedToken,
			fmt.Sprintf("expected `>` to close `</%s`", name))
	}
	return spanBetween(lt.SourceSpan, gt.SourceSpan), c, nil
}

// atCloseTag reports whether the cursor sits on `</`
func atCloseTag(cursor tag_lexer.Cursor) bool {
	_, c, ok := cursor.PunctChar("<")
	if !ok {
		return false
	}
	_, _, ok = c.PunctChar("/")
	return ok
}
