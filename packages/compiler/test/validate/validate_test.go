package validate_test

import (
	"strings"
	"testing"

	"vtc-go/packages/compiler/src/schema"
	"vtc-go/packages/compiler/src/tag_lexer"
	"vtc-go/packages/compiler/src/tag_parser"
	"vtc-go/packages/compiler/src/util"
	"vtc-go/packages/compiler/src/validate"
)

func testRegistry(t *testing.T) *schema.ManifestRegistry {
	t.Helper()
	registry := schema.NewManifestRegistry("")
	err := registry.Register(&schema.ComponentSchema{
		Name:           "app::Counter",
		PropertiesType: "app.CounterProps",
		Properties: []schema.PropertyField{
			{Name: "count", Type: "int", Required: true},
			{Name: "label", Type: "string"},
		},
	})
	if err != nil {
		t.Fatalf("registering schema: %v", err)
	}
	return registry
}

func descriptorFor(t *testing.T, input string) *tag_parser.ComponentDescriptor {
	t.Helper()
	result := tag_lexer.Tokenize(input, "test.vtx")
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected lex errors: %v", result.Errors)
	}
	node, _, err := tag_parser.ParseComponentTag(tag_lexer.NewCursor(result.Tokens))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return node.Descriptor
}

func TestValidateDescriptor(t *testing.T) {
	t.Run("should accept declared properties", func(t *testing.T) {
		descriptor := descriptorFor(t, `<app::Counter count=1 label="x" />`)
		errors := validate.Descriptor(descriptor, testRegistry(t))
		if len(errors) != 0 {
			t.Errorf("expected no errors, got %v", errors)
		}
	})

	t.Run("should accept absent and delegate property specs", func(t *testing.T) {
		for _, input := range []string{"<app::Counter />", "<app::Counter with bag />"} {
			descriptor := descriptorFor(t, input)
			if errors := validate.Descriptor(descriptor, testRegistry(t)); len(errors) != 0 {
				t.Errorf("%s: expected no errors, got %v", input, errors)
			}
		}
	})

	t.Run("should reject an unknown component", func(t *testing.T) {
		descriptor := descriptorFor(t, "<app::Missing count=1 />")
		errors := validate.Descriptor(descriptor, testRegistry(t))
		if len(errors) != 1 || errors[0].Kind != util.ErrorKindUnknownComponent {
			t.Fatalf("expected UnknownComponent, got %v", errors)
		}
		if errors[0].Span.String() != "app::Missing" {
			t.Errorf("expected the error anchored at the type path, got span %q", errors[0].Span.String())
		}
		if !strings.Contains(errors[0].Msg, "known components: app::Counter") {
			t.Errorf("expected known components listed, got %q", errors[0].Msg)
		}
	})

	t.Run("should not check properties of an unknown component", func(t *testing.T) {
		descriptor := descriptorFor(t, "<app::Missing bogus=1 />")
		errors := validate.Descriptor(descriptor, testRegistry(t))
		if len(errors) != 1 {
			t.Errorf("expected only the component error, got %v", errors)
		}
	})

	t.Run("should reject unknown properties at the label span", func(t *testing.T) {
		descriptor := descriptorFor(t, "<app::Counter count=1 missing=2 />")
		errors := validate.Descriptor(descriptor, testRegistry(t))
		if len(errors) != 1 || errors[0].Kind != util.ErrorKindUnknownProperty {
			t.Fatalf("expected UnknownProperty, got %v", errors)
		}
		if errors[0].Span.String() != "missing" {
			t.Errorf("expected the error anchored at the label, got span %q", errors[0].Span.String())
		}
		if !strings.Contains(errors[0].Msg, "expected one of: count, label") {
			t.Errorf("expected schema fields listed, got %q", errors[0].Msg)
		}
	})

	t.Run("should collect every unknown property", func(t *testing.T) {
		descriptor := descriptorFor(t, "<app::Counter x=1 y=2 />")
		errors := validate.Descriptor(descriptor, testRegistry(t))
		if len(errors) != 2 {
			t.Errorf("expected two errors, got %v", errors)
		}
	})
}

func TestValidateNodes(t *testing.T) {
	t.Run("should descend into element children", func(t *testing.T) {
		source := `<div><app::Counter bogus=1 /></div>`
		parseResult := tag_parser.NewParser().Parse(source, "test.vtx")
		if len(parseResult.Errors) > 0 {
			t.Fatalf("unexpected parse errors: %v", parseResult.Errors)
		}
		errors := validate.Nodes(parseResult.RootNodes, testRegistry(t))
		if len(errors) != 1 || errors[0].Kind != util.ErrorKindUnknownProperty {
			t.Errorf("expected the nested component error, got %v", errors)
		}
	})
}
