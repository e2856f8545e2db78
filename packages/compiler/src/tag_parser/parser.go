package tag_parser

import (
	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"
)

// ParseTreeResult represents the result of parsing a markup source
type ParseTreeResult struct {
	RootNodes []Node
	Errors    []*util.ParseError
}

// NewParseTreeResult creates a new ParseTreeResult
func NewParseTreeResult(rootNodes []Node, errors []*util.ParseError) *ParseTreeResult {
	return &ParseTreeResult{
		RootNodes: rootNodes,
		Errors:    errors,
	}
}

// Parser parses markup source into virtual-tree nodes
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes and parses a whole source file. Parse errors are
// terminal for the compilation unit: the first failure stops the parse
// and is returned alongside whatever nodes completed before it
func (p *Parser) Parse(source, url string) *ParseTreeResult {
	tokenizeResult := tag_lexer.Tokenize(source, url)
	if len(tokenizeResult.Errors) > 0 {
		return NewParseTreeResult(nil, tokenizeResult.Errors)
	}

	cursor := tag_lexer.NewCursor(tokenizeResult.Tokens)
	nodes, _, _, err := parseNodes(cursor, "")
	if err != nil {
		return NewParseTreeResult(nodes, []*util.ParseError{err})
	}
	return NewParseTreeResult(nodes, nil)
}

// parseNodes parses sibling nodes until end of input or, when closeTag
// is non-empty, until the matching `</closeTag>` which it consumes and
// whose span it returns. Each tag position is classified first: a type
// path after `<` makes it a component tag, otherwise it is handed to
// the plain-element parser
func parseNodes(cursor tag_lexer.Cursor, closeTag string) ([]Node, tag_lexer.Cursor, *util.ParseSourceSpan, *util.ParseError) {
	var nodes []Node
	c := cursor

	for {
		tok, ok := c.Peek()
		if !ok {
			if closeTag != "" {
				return nodes, c, nil, util.NewParseError(
					c.EOFSpan(), util.ErrorKindUnexpectedEOF,
					"unexpected end of input, expected `</"+closeTag+">`")
			}
			return nodes, c, nil, nil
		}

		if atCloseTag(c) {
			if closeTag == "" {
				return nodes, c, nil, util.NewParseError(
					tok.SourceSpan, util.ErrorKindUnexpectedToken,
					"unexpected closing tag")
			}
			closeSpan, next, err := parseCloseTag(c, closeTag)
			if err != nil {
				return nodes, c, nil, err
			}
			return nodes, next, closeSpan, nil
		}

		var node Node
		var err *util.ParseError
		var next tag_lexer.Cursor
		if tok.IsPunct("<") {
			if PeekComponentTag(c) {
				node, next, err = ParseComponentTag(c)
			} else {
				node, next, err = parseElementTag(c)
			}
		} else {
			node, next, err = parseTextNode(c)
		}
		if err != nil {
			return nodes, c, nil, err
		}
		nodes = append(nodes, node)
		c = next
	}
}
