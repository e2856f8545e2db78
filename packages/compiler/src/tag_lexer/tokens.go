package tag_lexer

import "vtc-go/packages/compiler/src/util"

// TokenType represents the type of a token
type TokenType int

const (
	TokenTypeIDENT TokenType = iota
	TokenTypePUNCT
	TokenTypeSTRING
	TokenTypeNUMBER
	TokenTypeEOF
)

// String returns the name of the token type
func (t TokenType) String() string {
	switch t {
	case TokenTypeIDENT:
		return "IDENT"
	case TokenTypePUNCT:
		return "PUNCT"
	case TokenTypeSTRING:
		return "STRING"
	case TokenTypeNUMBER:
		return "NUMBER"
	case TokenTypeEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single token in the markup source. Tokens are
// immutable values; the lexer produces them once and parsers only read
type Token struct {
	Type       TokenType
	Text       string
	SourceSpan *util.ParseSourceSpan
}

// NewIdentToken creates a new identifier token
func NewIdentToken(text string, sourceSpan *util.ParseSourceSpan) Token {
	return Token{Type: TokenTypeIDENT, Text: text, SourceSpan: sourceSpan}
}

// NewPunctToken creates a new punctuation token
func NewPunctToken(text string, sourceSpan *util.ParseSourceSpan) Token {
	return Token{Type: TokenTypePUNCT, Text: text, SourceSpan: sourceSpan}
}

// NewStringToken creates a new string literal token. Text holds the
// literal including its quotes
func NewStringToken(text string, sourceSpan *util.ParseSourceSpan) Token {
	return Token{Type: TokenTypeSTRING, Text: text, SourceSpan: sourceSpan}
}

// NewNumberToken creates a new number literal token
func NewNumberToken(text string, sourceSpan *util.ParseSourceSpan) Token {
	return Token{Type: TokenTypeNUMBER, Text: text, SourceSpan: sourceSpan}
}

// NewEndOfFileToken creates a new end of file token
func NewEndOfFileToken(sourceSpan *util.ParseSourceSpan) Token {
	return Token{Type: TokenTypeEOF, Text: "", SourceSpan: sourceSpan}
}

// IsPunct reports whether the token is the given punctuation character
func (t Token) IsPunct(ch string) bool {
	return t.Type == TokenTypePUNCT && t.Text == ch
}

// IsIdent reports whether the token is the given identifier
func (t Token) IsIdent(name string) bool {
	return t.Type == TokenTypeIDENT && t.Text == name
}

// IsLiteral reports whether the token is a string or number literal
func (t Token) IsLiteral() bool {
	return t.Type == TokenTypeSTRING || t.Type == TokenTypeNUMBER
}
