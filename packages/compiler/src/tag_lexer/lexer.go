package tag_lexer

import (
	"fmt"

	"vtc-go/packages/compiler/src/core"
	"vtc-go/packages/compiler/src/util"
)

// TokenizeResult represents the result of tokenization
type TokenizeResult struct {
	Tokens []Token
	Errors []*util.ParseError
}

// NewTokenizeResult creates a new TokenizeResult
func NewTokenizeResult(tokens []Token, errors []*util.ParseError) *TokenizeResult {
	return &TokenizeResult{
		Tokens: tokens,
		Errors: errors,
	}
}

// Tokenize tokenizes markup source into a flat token stream of
// identifiers, punctuation and literals
func Tokenize(source, url string) *TokenizeResult {
	file := util.NewParseSourceFile(source, url)
	tokenizer := NewTokenizer(file)
	tokenizer.Tokenize()
	return NewTokenizeResult(tokenizer.tokens, tokenizer.errors)
}

// Tokenizer scans a source file into tokens
type Tokenizer struct {
	file   *util.ParseSourceFile
	input  string
	offset int
	line   int
	col    int
	tokens []Token
	errors []*util.ParseError
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer(file *util.ParseSourceFile) *Tokenizer {
	return &Tokenizer{
		file:   file,
		input:  file.Content,
		tokens: []Token{},
		errors: []*util.ParseError{},
	}
}

// Tokenize scans the whole input
func (t *Tokenizer) Tokenize() {
	for {
		t.skipWhitespace()
		if t.offset >= len(t.input) {
			break
		}
		start := t.location()
		ch := int(t.input[t.offset])
		switch {
		case core.IsIdentifierStart(ch):
			t.consumeIdent(start)
		case core.IsDigit(ch):
			t.consumeNumber(start)
		case core.IsQuote(ch):
			t.consumeString(start)
		default:
			t.advance()
			t.tokens = append(t.tokens, NewPunctToken(t.input[start.Offset:t.offset], t.span(start)))
		}
	}
	eof := t.location()
	t.tokens = append(t.tokens, NewEndOfFileToken(util.NewParseSourceSpan(eof, eof, nil)))
}

func (t *Tokenizer) location() *util.ParseLocation {
	return util.NewParseLocation(t.file, t.offset, t.line, t.col)
}

func (t *Tokenizer) span(start *util.ParseLocation) *util.ParseSourceSpan {
	return util.NewParseSourceSpan(start, t.location(), nil)
}

func (t *Tokenizer) advance() {
	if t.offset >= len(t.input) {
		return
	}
	if t.input[t.offset] == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	t.offset++
}

func (t *Tokenizer) skipWhitespace() {
	for t.offset < len(t.input) && core.IsWhitespace(int(t.input[t.offset])) {
		t.advance()
	}
}

func (t *Tokenizer) consumeIdent(start *util.ParseLocation) {
	for t.offset < len(t.input) && core.IsIdentifierPart(int(t.input[t.offset])) {
		t.advance()
	}
	t.tokens = append(t.tokens, NewIdentToken(t.input[start.Offset:t.offset], t.span(start)))
}

func (t *Tokenizer) consumeNumber(start *util.ParseLocation) {
	for t.offset < len(t.input) && core.IsDigit(int(t.input[t.offset])) {
		t.advance()
	}
	// fractional part
	if t.offset+1 < len(t.input) && t.input[t.offset] == '.' && core.IsDigit(int(t.input[t.offset+1])) {
		t.advance()
		for t.offset < len(t.input) && core.IsDigit(int(t.input[t.offset])) {
			t.advance()
		}
	}
	t.tokens = append(t.tokens, NewNumberToken(t.input[start.Offset:t.offset], t.span(start)))
}

func (t *Tokenizer) consumeString(start *util.ParseLocation) {
	quote := t.input[t.offset]
	t.advance()
	for t.offset < len(t.input) {
		ch := t.input[t.offset]
		if ch == '\\' {
			t.advance()
			if t.offset < len(t.input) {
				t.advance()
			}
			continue
		}
		if ch == quote {
			t.advance()
			t.tokens = append(t.tokens, NewStringToken(t.input[start.Offset:t.offset], t.span(start)))
			return
		}
		if core.IsNewLine(int(ch)) {
			break
		}
		t.advance()
	}
	t.errors = append(t.errors, util.NewParseError(
		t.span(start),
		util.ErrorKindUnexpectedEOF,
		fmt.Sprintf("unterminated string literal starting with %q", string(quote)),
	))
}
