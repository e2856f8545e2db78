// Package validate performs the compile-time-only checks on parsed
// component descriptors: the referenced type must satisfy the
// component contract, and every declared property label must name a
// field of the type's properties schema. The checks run against the
// schema registry directly, so nothing is emitted and nothing can
// execute at runtime; failures surface as diagnostics anchored to the
// offending source spans
package validate

import (
	"fmt"
	"strings"

	"vtc-go/packages/compiler/src/schema"
	"vtc-go/packages/compiler/src/tag_parser"
	"vtc-go/packages/compiler/src/util"
)

// Descriptor validates one parsed component descriptor against the
// registry. All failures are collected; an unknown component
// suppresses the per-property checks because there is no schema to
// check against
func Descriptor(descriptor *tag_parser.ComponentDescriptor, registry schema.ComponentSchemaRegistry) []*util.ParseError {
	var errors []*util.ParseError

	typePath := descriptor.Type.Path()
	if !registry.HasComponent(typePath) {
		msg := fmt.Sprintf("`%s` does not satisfy the component contract", typePath)
		if known := registry.AllKnownComponentNames(); len(known) > 0 {
			msg = fmt.Sprintf("%s (known components: %s)", msg, strings.Join(known, ", "))
		}
		errors = append(errors, util.NewParseError(
			descriptor.Type.SourceSpan, util.ErrorKindUnknownComponent, msg))
		return errors
	}

	if descriptor.Props.Kind != tag_parser.PropsList {
		return errors
	}

	for _, prop := range descriptor.Props.List {
		if registry.HasProperty(typePath, prop.Label.Name) {
			continue
		}
		msg := fmt.Sprintf("`%s` is not a property of `%s`", prop.Label.Name, typePath)
		if names := registry.PropertyNames(typePath); len(names) > 0 {
			msg = fmt.Sprintf("%s (expected one of: %s)", msg, strings.Join(names, ", "))
		}
		errors = append(errors, util.NewParseError(
			prop.Label.SourceSpan, util.ErrorKindUnknownProperty, msg))
	}

	return errors
}

// Nodes validates every component descriptor in a parsed tree,
// descending through element children
func Nodes(nodes []tag_parser.Node, registry schema.ComponentSchemaRegistry) []*util.ParseError {
	var errors []*util.ParseError
	for _, node := range nodes {
		switch n := node.(type) {
		case *tag_parser.ComponentNode:
			errors = append(errors, Descriptor(n.Descriptor, registry)...)
		case *tag_parser.ElementNode:
			errors = append(errors, Nodes(n.Children, registry)...)
		}
	}
	return errors
}
