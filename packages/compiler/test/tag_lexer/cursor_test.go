package tag_lexer_test

import (
	"testing"

	"vtc-go/packages/compiler/src/tag_lexer"
)

func cursorFor(t *testing.T, input string) tag_lexer.Cursor {
	t.Helper()
	result := tag_lexer.Tokenize(input, "test.vtx")
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected lex errors: %v", result.Errors)
	}
	return tag_lexer.NewCursor(result.Tokens)
}

func TestCursor_Lookahead(t *testing.T) {
	t.Run("peeks do not advance the receiver", func(t *testing.T) {
		cursor := cursorFor(t, "Foo bar")

		first, _, ok := cursor.Ident()
		if !ok || first.Text != "Foo" {
			t.Fatalf("expected to peek `Foo`, got %v (ok=%v)", first.Text, ok)
		}

		// peeking again from the same cursor yields the same token
		again, _, ok := cursor.Ident()
		if !ok || again.Text != "Foo" {
			t.Errorf("expected repeated peek to yield `Foo`, got %v (ok=%v)", again.Text, ok)
		}
	})

	t.Run("adopting the advanced copy commits the consume", func(t *testing.T) {
		cursor := cursorFor(t, "Foo bar")

		_, next, ok := cursor.Ident()
		if !ok {
			t.Fatal("expected first peek to match")
		}
		second, _, ok := next.Ident()
		if !ok || second.Text != "bar" {
			t.Errorf("expected advanced copy to see `bar`, got %v (ok=%v)", second.Text, ok)
		}
		if cursor.Index() == next.Index() {
			t.Error("expected the advanced copy to be a distinct position")
		}
	})

	t.Run("mismatched peeks return the original cursor", func(t *testing.T) {
		cursor := cursorFor(t, "Foo")

		_, same, ok := cursor.PunctChar("<")
		if ok {
			t.Fatal("expected punct peek to fail on an identifier")
		}
		if same.Index() != cursor.Index() {
			t.Error("expected failed peek to hand back the original position")
		}
	})

	t.Run("is done at EOF", func(t *testing.T) {
		cursor := cursorFor(t, "x")
		if cursor.Done() {
			t.Fatal("expected cursor with one token to not be done")
		}
		_, next, _ := cursor.Ident()
		if !next.Done() {
			t.Error("expected cursor at EOF to be done")
		}
	})

	t.Run("literal matches strings and numbers", func(t *testing.T) {
		cursor := cursorFor(t, `"s" 42`)
		lit, next, ok := cursor.Literal()
		if !ok || lit.Text != `"s"` {
			t.Fatalf("expected string literal, got %v (ok=%v)", lit.Text, ok)
		}
		num, _, ok := next.Literal()
		if !ok || num.Text != "42" {
			t.Errorf("expected number literal, got %v (ok=%v)", num.Text, ok)
		}
	})
}
