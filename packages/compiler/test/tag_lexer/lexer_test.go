package tag_lexer_test

import (
	"fmt"
	"testing"

	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/util"

	"github.com/google/go-cmp/cmp"
)

func tokenizeAndHumanizeParts(input string) []interface{} {
	result := tag_lexer.Tokenize(input, "test.vtx")
	var humanized []interface{}
	for _, token := range result.Tokens {
		humanized = append(humanized, []interface{}{token.Type, token.Text})
	}
	return humanized
}

func tokenizeAndHumanizeLineColumn(input string) []interface{} {
	result := tag_lexer.Tokenize(input, "test.vtx")
	var humanized []interface{}
	for _, token := range result.Tokens {
		humanized = append(humanized, []interface{}{
			token.Type,
			fmt.Sprintf("%d:%d", token.SourceSpan.Start.Line, token.SourceSpan.Start.Col),
		})
	}
	return humanized
}

func tokenizeAndHumanizeErrors(input string) []interface{} {
	result := tag_lexer.Tokenize(input, "test.vtx")
	var humanized []interface{}
	for _, err := range result.Errors {
		humanized = append(humanized, []interface{}{err.Kind, err.Msg})
	}
	return humanized
}

func TestTagLexer_Tokens(t *testing.T) {
	t.Run("should tokenize a self-closed component tag", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypePUNCT, "<"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "Foo"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "a"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "="},
			[]interface{}{tag_lexer.TokenTypeNUMBER, "1"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "/"},
			[]interface{}{tag_lexer.TokenTypePUNCT, ">"},
			[]interface{}{tag_lexer.TokenTypeEOF, ""},
		}
		result := tokenizeAndHumanizeParts("<Foo a=1 />")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeParts() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize qualified type paths as punct pairs", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypeIDENT, "app"},
			[]interface{}{tag_lexer.TokenTypePUNCT, ":"},
			[]interface{}{tag_lexer.TokenTypePUNCT, ":"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "Counter"},
			[]interface{}{tag_lexer.TokenTypeEOF, ""},
		}
		result := tokenizeAndHumanizeParts("app::Counter")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeParts() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize string literals with their quotes", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypeIDENT, "a"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "="},
			[]interface{}{tag_lexer.TokenTypeSTRING, `"hello world"`},
			[]interface{}{tag_lexer.TokenTypeEOF, ""},
		}
		result := tokenizeAndHumanizeParts(`a="hello world"`)
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeParts() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize fractional numbers", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypeNUMBER, "3.14"},
			[]interface{}{tag_lexer.TokenTypeEOF, ""},
		}
		result := tokenizeAndHumanizeParts("3.14")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeParts() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTagLexer_LineColumnNumbers(t *testing.T) {
	t.Run("should work without newlines", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypePUNCT, "0:0"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "0:1"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "0:5"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "0:6"},
			[]interface{}{tag_lexer.TokenTypeEOF, "0:7"},
		}
		result := tokenizeAndHumanizeLineColumn("<Foo />")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeLineColumn() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should work with newlines", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{tag_lexer.TokenTypePUNCT, "0:0"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "0:1"},
			[]interface{}{tag_lexer.TokenTypeIDENT, "1:1"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "1:2"},
			[]interface{}{tag_lexer.TokenTypeNUMBER, "1:3"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "2:0"},
			[]interface{}{tag_lexer.TokenTypePUNCT, "2:1"},
			[]interface{}{tag_lexer.TokenTypeEOF, "2:2"},
		}
		result := tokenizeAndHumanizeLineColumn("<Foo\n a=1\n/>")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeLineColumn() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTagLexer_Errors(t *testing.T) {
	t.Run("should report unterminated strings", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{util.ErrorKindUnexpectedEOF, `unterminated string literal starting with "\""`},
		}
		result := tokenizeAndHumanizeErrors(`a="oops`)
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenizeAndHumanizeErrors() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should not report errors for valid input", func(t *testing.T) {
		result := tokenizeAndHumanizeErrors(`<Foo a="ok" />`)
		if len(result) != 0 {
			t.Errorf("expected no errors, got %v", result)
		}
	})
}
