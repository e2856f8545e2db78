// Package output renders parsed virtual-tree nodes into Go
// construction expressions against the virtual-tree runtime. The
// emitter assumes its input already passed validation; it has no error
// paths of its own
package output

import (
	"fmt"
	"strconv"
	"unicode"

	"vtc-go/packages/compiler/src/schema"
	"vtc-go/packages/compiler/src/tag_parser"
)

const (
	scopeVar = "scope"
	propsVar = "props"
)

// Emitter renders virtual-tree nodes as construction expressions
type Emitter struct {
	registry     schema.ComponentSchemaRegistry
	runtimeAlias string
}

// NewEmitter creates a new Emitter. Pass "" for the default runtime
// alias
func NewEmitter(registry schema.ComponentSchemaRegistry, runtimeAlias string) *Emitter {
	if runtimeAlias == "" {
		runtimeAlias = "vtree"
	}
	return &Emitter{
		registry:     registry,
		runtimeAlias: runtimeAlias,
	}
}

// EmitNode renders one node into the context
func (e *Emitter) EmitNode(ctx *EmitterContext, node tag_parser.Node) {
	switch n := node.(type) {
	case *tag_parser.ComponentNode:
		e.EmitComponentNode(ctx, n)
	case *tag_parser.ElementNode:
		e.EmitElementNode(ctx, n)
	case *tag_parser.TextNode:
		e.EmitTextNode(ctx, n)
	}
}

// EmitComponentNode renders the construction expression for a
// component tag: the properties value is built through the schema's
// builder with a per-field value conversion, taken verbatim from the
// delegate, or default-constructed when absent; it is paired with a
// freshly created scope holder and wrapped into a component node
func (e *Emitter) EmitComponentNode(ctx *EmitterContext, node *tag_parser.ComponentNode) {
	descriptor := node.Descriptor
	typePath := descriptor.Type.Path()

	ctx.Println(fmt.Sprintf("func() %s.VNode {", e.runtimeAlias))
	ctx.IncIndent()
	ctx.Println(fmt.Sprintf("%s := %s.NewScopeHolder()", scopeVar, e.runtimeAlias))

	switch descriptor.Props.Kind {
	case tag_parser.PropsList:
		ctx.Println(fmt.Sprintf("%s := %s.", propsVar, e.registry.BuilderExpr(typePath)))
		ctx.IncIndent()
		for _, prop := range descriptor.Props.List {
			conversion := e.registry.FieldConversion(typePath, prop.Label.Name, scopeVar, prop.Value.Text)
			ctx.Println(fmt.Sprintf("%s(%s).", setterName(prop.Label.Name), conversion))
		}
		ctx.Println("Build()")
		ctx.DecIndent()
	case tag_parser.PropsDelegate:
		ctx.Println(fmt.Sprintf("%s := %s", propsVar, descriptor.Props.Delegate.Name))
	default:
		ctx.Println(fmt.Sprintf("%s := %s", propsVar, e.registry.DefaultExpr(typePath)))
	}

	ctx.Println(fmt.Sprintf("return %s.NewComponentNode(%q, %s, %s)",
		e.runtimeAlias, typePath, propsVar, scopeVar))
	ctx.DecIndent()
	ctx.Print("}()")
}

// EmitElementNode renders a plain element node with its attributes in
// source order and its children nested
func (e *Emitter) EmitElementNode(ctx *EmitterContext, node *tag_parser.ElementNode) {
	ctx.Print(fmt.Sprintf("%s.NewElementNode(%q, ", e.runtimeAlias, node.Name))
	if len(node.Attributes) == 0 {
		ctx.Print("nil")
	} else {
		ctx.Print(fmt.Sprintf("%s.Attrs{", e.runtimeAlias))
		for i, attr := range node.Attributes {
			if i > 0 {
				ctx.Print(", ")
			}
			ctx.Print(fmt.Sprintf("%q: %s", attr.Label.String(), attr.Value.Text))
		}
		ctx.Print("}")
	}
	if len(node.Children) == 0 {
		ctx.Print(")")
		return
	}
	ctx.Println(",")
	ctx.IncIndent()
	for _, child := range node.Children {
		e.EmitNode(ctx, child)
		ctx.Println(",")
	}
	ctx.DecIndent()
	ctx.Print(")")
}

// EmitTextNode renders a text node: raw text as a quoted literal,
// interpolated content as the expression it carries
func (e *Emitter) EmitTextNode(ctx *EmitterContext, node *tag_parser.TextNode) {
	expr := node.Expr
	if !node.Interpolated {
		expr = strconv.Quote(node.Expr)
	}
	ctx.Print(fmt.Sprintf("%s.NewTextNode(%s)", e.runtimeAlias, expr))
}

// setterName derives the builder setter for a property label
func setterName(label string) string {
	if label == "" {
		return "Set"
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return "Set" + string(runes)
}

// EmitRoots renders the root nodes: a single root as its own
// expression, multiple roots wrapped into a fragment node
func (e *Emitter) EmitRoots(ctx *EmitterContext, nodes []tag_parser.Node) {
	if len(nodes) == 1 {
		e.EmitNode(ctx, nodes[0])
		return
	}
	ctx.Println(fmt.Sprintf("%s.NewFragmentNode(", e.runtimeAlias))
	ctx.IncIndent()
	for _, node := range nodes {
		e.EmitNode(ctx, node)
		ctx.Println(",")
	}
	ctx.DecIndent()
	ctx.Print(")")
}
