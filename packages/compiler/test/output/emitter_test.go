package output_test

import (
	"testing"

	"vtc-go/packages/compiler/src/output"
	"vtc-go/packages/compiler/src/schema"
	"vtc-go/packages/compiler/src/tag_parser"

	"github.com/google/go-cmp/cmp"
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

func emit(t *testing.T, source string) string {
	t.Helper()
	result := tag_parser.NewParser().Parse(source, "test.vtx")
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", result.Errors)
	}
	ctx := output.NewEmitterContext(0)
	output.NewEmitter(testRegistry(t), "").EmitRoots(ctx, result.RootNodes)
	return ctx.ToSource()
}

func TestEmitComponentNode(t *testing.T) {
	t.Run("should build listed properties through the schema builder", func(t *testing.T) {
		got := emit(t, `<app::Counter count=3 label="Hi" />`)
		expected := `func() vtree.VNode {
	scope := vtree.NewScopeHolder()
	props := app.NewCounterPropsBuilder().
		SetCount(vtree.TransformTo[int](scope, 3)).
		SetLabel(vtree.TransformTo[string](scope, "Hi")).
		Build()
	return vtree.NewComponentNode("app::Counter", props, scope)
}()
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should take the delegate expression verbatim", func(t *testing.T) {
		got := emit(t, "<app::Counter with bag />")
		expected := `func() vtree.VNode {
	scope := vtree.NewScopeHolder()
	props := bag
	return vtree.NewComponentNode("app::Counter", props, scope)
}()
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should default-construct absent properties", func(t *testing.T) {
		got := emit(t, "<app::Counter />")
		expected := `func() vtree.VNode {
	scope := vtree.NewScopeHolder()
	props := app.NewCounterPropsBuilder().Build()
	return vtree.NewComponentNode("app::Counter", props, scope)
}()
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEmitElementNode(t *testing.T) {
	t.Run("should render attributes and children", func(t *testing.T) {
		got := emit(t, `<div class="wrap">hi</div>`)
		expected := `vtree.NewElementNode("div", vtree.Attrs{"class": "wrap"},
	vtree.NewTextNode("hi"),
)
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should render a childless element without attributes", func(t *testing.T) {
		got := emit(t, "<br />")
		expected := "vtree.NewElementNode(\"br\", nil)\n"
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEmitTextNode(t *testing.T) {
	t.Run("should quote raw text and pass expressions through", func(t *testing.T) {
		got := emit(t, "<span>{ total }</span>")
		expected := `vtree.NewElementNode("span", nil,
	vtree.NewTextNode(total),
)
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEmitRoots(t *testing.T) {
	t.Run("should wrap sibling roots into a fragment", func(t *testing.T) {
		got := emit(t, "<br /><hr />")
		expected := `vtree.NewFragmentNode(
	vtree.NewElementNode("br", nil),
	vtree.NewElementNode("hr", nil),
)
`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("emitted source mismatch (-want +got):\n%s", diff)
		}
	})
}
