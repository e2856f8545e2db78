package tag_parser

import (
	"strings"

	"vtc-go/packages/compiler/src/util"
)

// TypeReference is a possibly-qualified path of identifiers naming the
// component's implementing type, e.g. `app::Counter`. Immutable once
// parsed
type TypeReference struct {
	Segments      []string
	LeadingColons bool
	SourceSpan    *util.ParseSourceSpan
}

// Path returns the canonical `a::B::C` spelling of the reference
func (t *TypeReference) Path() string {
	path := strings.Join(t.Segments, "::")
	if t.LeadingColons {
		return "::" + path
	}
	return path
}

// GoPath returns the reference spelled as a Go qualified identifier
func (t *TypeReference) GoPath() string {
	return strings.Join(t.Segments, ".")
}

// PropertyLabel is the name part of a property declaration. Extended
// holds the dash-separated trailing segments of a dashed label such as
// `data-id`; component properties require Extended to be empty
type PropertyLabel struct {
	Name       string
	Extended   []string
	SourceSpan *util.ParseSourceSpan
}

// String returns the full label text including dashed segments
func (l PropertyLabel) String() string {
	if len(l.Extended) == 0 {
		return l.Name
	}
	return l.Name + "-" + strings.Join(l.Extended, "-")
}

// ValueExpr is the raw expression text supplied as a property value
type ValueExpr struct {
	Text       string
	SourceSpan *util.ParseSourceSpan
}

// PropertyDeclaration is a single `label=value` pair
type PropertyDeclaration struct {
	Label PropertyLabel
	Value ValueExpr
}

// PropertyDelegate names an already-constructed properties value
// supplied through the `with` form
type PropertyDelegate struct {
	Name       string
	SourceSpan *util.ParseSourceSpan
}

// PropSpecKind discriminates the active PropertySpec variant
type PropSpecKind int

const (
	PropsAbsent PropSpecKind = iota
	PropsList
	PropsDelegate
)

// PropertySpec is the tagged union over the two property-declaration
// forms. Exactly one variant is active per component tag; List is kept
// sorted ascending by label text after parsing
type PropertySpec struct {
	Kind     PropSpecKind
	List     []PropertyDeclaration
	Delegate *PropertyDelegate
}

// ComponentDescriptor is the fully parsed component tag: the type
// reference plus whichever property spec was present. Immutable after
// parse and consumed exactly once by the emitter
type ComponentDescriptor struct {
	Type  *TypeReference
	Props PropertySpec
}

// Node is a parsed virtual-tree node
type Node interface {
	SourceSpan() *util.ParseSourceSpan
}

// ComponentNode is a virtual-tree node for a user-defined component tag
type ComponentNode struct {
	Descriptor *ComponentDescriptor
	sourceSpan *util.ParseSourceSpan
}

// NewComponentNode creates a new ComponentNode
func NewComponentNode(descriptor *ComponentDescriptor, sourceSpan *util.ParseSourceSpan) *ComponentNode {
	return &ComponentNode{Descriptor: descriptor, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span of the node
func (n *ComponentNode) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// ElementNode is a virtual-tree node for a plain markup element
type ElementNode struct {
	Name       string
	Attributes []PropertyDeclaration
	Children   []Node
	sourceSpan *util.ParseSourceSpan
}

// NewElementNode creates a new ElementNode
func NewElementNode(name string, attributes []PropertyDeclaration, children []Node, sourceSpan *util.ParseSourceSpan) *ElementNode {
	return &ElementNode{Name: name, Attributes: attributes, Children: children, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span of the node
func (n *ElementNode) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// TextNode is a virtual-tree text or expression node. Interpolated
// marks braced `{ expr }` content whose text is an expression rather
// than raw text
type TextNode struct {
	Expr         string
	Interpolated bool
	sourceSpan   *util.ParseSourceSpan
}

// NewTextNode creates a new TextNode
func NewTextNode(expr string, interpolated bool, sourceSpan *util.ParseSourceSpan) *TextNode {
	return &TextNode{Expr: expr, Interpolated: interpolated, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span of the node
func (n *TextNode) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}
