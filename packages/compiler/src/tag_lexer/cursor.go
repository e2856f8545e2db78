package tag_lexer

import "vtc-go/packages/compiler/src/util"

// Cursor is an immutable, non-consuming read position into a token
// stream. Every peek returns the matched token together with an
// advanced copy of the cursor; the caller commits the advance by
// adopting the copy. Cursors are cheap values and may be copied freely,
// so speculative lookahead never disturbs the committed parse position
type Cursor struct {
	tokens []Token
	index  int
}

// NewCursor creates a Cursor at the start of the token stream
func NewCursor(tokens []Token) Cursor {
	return Cursor{tokens: tokens, index: 0}
}

// Done reports whether the cursor has no tokens left before EOF
func (c Cursor) Done() bool {
	return c.index >= len(c.tokens) || c.tokens[c.index].Type == TokenTypeEOF
}

// Peek returns the token at the cursor without advancing
func (c Cursor) Peek() (Token, bool) {
	if c.Done() {
		return Token{}, false
	}
	return c.tokens[c.index], true
}

// Index returns the position of the cursor in the token stream
func (c Cursor) Index() int {
	return c.index
}

// advanced returns a copy of the cursor moved past one token
func (c Cursor) advanced() Cursor {
	return Cursor{tokens: c.tokens, index: c.index + 1}
}

// Punct peeks one punctuation token of any character
func (c Cursor) Punct() (Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Type != TokenTypePUNCT {
		return Token{}, c, false
	}
	return tok, c.advanced(), true
}

// PunctChar peeks one punctuation token with the given character
func (c Cursor) PunctChar(ch string) (Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || !tok.IsPunct(ch) {
		return Token{}, c, false
	}
	return tok, c.advanced(), true
}

// Ident peeks one identifier token
func (c Cursor) Ident() (Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Type != TokenTypeIDENT {
		return Token{}, c, false
	}
	return tok, c.advanced(), true
}

// Literal peeks one string or number literal token
func (c Cursor) Literal() (Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || !tok.IsLiteral() {
		return Token{}, c, false
	}
	return tok, c.advanced(), true
}

// EOFSpan returns the span of the trailing EOF token, or of the last
// token when the stream carries no EOF marker
func (c Cursor) EOFSpan() *util.ParseSourceSpan {
	if len(c.tokens) == 0 {
		return nil
	}
	return c.tokens[len(c.tokens)-1].SourceSpan
}
