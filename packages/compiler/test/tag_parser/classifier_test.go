package tag_parser_test

import (
	"testing"

	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/tag_parser"
)

func TestPeekComponentType(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare uppercase ident", "Foo", true},
		{"bare lowercase ident", "foo", false},
		{"empty input", "", false},
		{"literal is not a path", "42", false},
		{"lowercase multi-segment path", "foo::bar", false},
		{"capitalized final segment", "app::Counter", true},
		{"capital anywhere qualifies", "App::counter", true},
		{"leading double colon", "::app::Counter", true},
		{"three segments", "a::b::Widget", true},
		{"path stops at non-colon boundary", "Foo bar", true},
		{"lowercase stops at non-colon boundary", "foo Bar", false},
		{"trailing colons ignored", "Foo::", true},
		{"single colon does not extend the path", "foo:Bar", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tag_lexer.Tokenize(tc.input, "test.vtx")
			if len(result.Errors) > 0 {
				t.Fatalf("unexpected lex errors: %v", result.Errors)
			}
			got := tag_parser.PeekComponentType(tag_lexer.NewCursor(result.Tokens))
			if got != tc.want {
				t.Errorf("PeekComponentType(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestPeekComponentTag(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"component tag", "<Foo />", true},
		{"qualified component tag", "<app::Counter />", true},
		{"element tag", "<div />", false},
		{"closing tag", "</div>", false},
		{"not a tag at all", "Foo", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tag_lexer.Tokenize(tc.input, "test.vtx")
			if len(result.Errors) > 0 {
				t.Fatalf("unexpected lex errors: %v", result.Errors)
			}
			got := tag_parser.PeekComponentTag(tag_lexer.NewCursor(result.Tokens))
			if got != tc.want {
				t.Errorf("PeekComponentTag(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestPeekComponentTagDoesNotConsume(t *testing.T) {
	result := tag_lexer.Tokenize("<Foo />", "test.vtx")
	cursor := tag_lexer.NewCursor(result.Tokens)
	before := cursor.Index()
	tag_parser.PeekComponentTag(cursor)
	if cursor.Index() != before {
		t.Error("expected classification to leave the cursor untouched")
	}
}
