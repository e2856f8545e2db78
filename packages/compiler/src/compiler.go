// Package compiler wires the vtc-go front end into a single pass:
// tokenize, parse the tag tree, statically validate component
// descriptors against the schema registry, and emit the Go
// construction expressions for the resulting virtual-tree nodes
package compiler

import (
	"fmt"

	"vtc-go/packages/compiler/src/config"
	"vtc-go/packages/compiler/src/output"
	"vtc-go/packages/compiler/src/schema"
	"vtc-go/packages/compiler/src/tag_parser"
	"vtc-go/packages/compiler/src/util"
	"vtc-go/packages/compiler/src/validate"
)

// CompileResult represents the outcome of compiling one source unit
type CompileResult struct {
	RootNodes []tag_parser.Node
	Code      string
	Errors    []*util.ParseError
}

// Valid reports whether compilation produced no errors
func (r *CompileResult) Valid() bool {
	return len(r.Errors) == 0
}

// Compiler compiles component markup into Go source
type Compiler struct {
	registry schema.ComponentSchemaRegistry
	options  *config.Options
}

// NewCompiler creates a new Compiler
func NewCompiler(registry schema.ComponentSchemaRegistry, options *config.Options) *Compiler {
	if options == nil {
		options = config.DefaultOptions()
	}
	return &Compiler{
		registry: registry,
		options:  options,
	}
}

// Compile runs the full pipeline over one source unit. Parse and
// validation failures are terminal: no code is produced and the
// diagnostics are returned on the result
func (c *Compiler) Compile(source, url string) *CompileResult {
	parseResult := tag_parser.NewParser().Parse(source, url)
	if len(parseResult.Errors) > 0 {
		return &CompileResult{RootNodes: parseResult.RootNodes, Errors: parseResult.Errors}
	}

	validationErrors := validate.Nodes(parseResult.RootNodes, c.registry)
	if len(validationErrors) > 0 {
		return &CompileResult{RootNodes: parseResult.RootNodes, Errors: validationErrors}
	}

	return &CompileResult{
		RootNodes: parseResult.RootNodes,
		Code:      c.render(parseResult.RootNodes),
	}
}

// render emits a complete generated Go file for the parsed roots
func (c *Compiler) render(nodes []tag_parser.Node) string {
	ctx := output.NewEmitterContext(0)
	ctx.Println("// Code generated by vtc-go. DO NOT EDIT.")
	ctx.Println("")
	ctx.Println(fmt.Sprintf("package %s", c.options.Package))
	ctx.Println("")
	if len(c.options.Imports) == 0 {
		ctx.Println(fmt.Sprintf("import %s %q", c.options.RuntimeAlias, c.options.RuntimeImport))
	} else {
		ctx.Println("import (")
		ctx.IncIndent()
		ctx.Println(fmt.Sprintf("%s %q", c.options.RuntimeAlias, c.options.RuntimeImport))
		for _, path := range c.options.Imports {
			ctx.Println(fmt.Sprintf("%q", path))
		}
		ctx.DecIndent()
		ctx.Println(")")
	}
	ctx.Println("")
	ctx.Println(fmt.Sprintf("func Render() %s.VNode {", c.options.RuntimeAlias))
	ctx.IncIndent()
	ctx.Print("return ")
	emitter := output.NewEmitter(c.registry, c.options.RuntimeAlias)
	emitter.EmitRoots(ctx, nodes)
	ctx.Println("")
	ctx.DecIndent()
	ctx.Println("}")
	return ctx.ToSource()
}
