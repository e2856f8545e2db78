package output

import "strings"

var indentWith = "\t"

// EmittedLine represents a line being emitted
type EmittedLine struct {
	Parts  []string
	Indent int
}

// NewEmittedLine creates a new EmittedLine
func NewEmittedLine(indent int) *EmittedLine {
	return &EmittedLine{
		Parts:  []string{},
		Indent: indent,
	}
}

// EmitterContext accumulates emitted source text line by line
type EmitterContext struct {
	lines  []*EmittedLine
	indent int
}

// NewEmitterContext creates a new EmitterContext
func NewEmitterContext(indent int) *EmitterContext {
	return &EmitterContext{
		lines:  []*EmittedLine{NewEmittedLine(indent)},
		indent: indent,
	}
}

// currentLine returns the current line being built
func (ctx *EmitterContext) currentLine() *EmittedLine {
	return ctx.lines[len(ctx.lines)-1]
}

// LineIsEmpty checks if the current line is empty
func (ctx *EmitterContext) LineIsEmpty() bool {
	return len(ctx.currentLine().Parts) == 0
}

// Print appends a part to the current line
func (ctx *EmitterContext) Print(part string) {
	if len(part) > 0 {
		line := ctx.currentLine()
		line.Parts = append(line.Parts, part)
	}
}

// Println appends a part and terminates the current line
func (ctx *EmitterContext) Println(part string) {
	ctx.Print(part)
	ctx.lines = append(ctx.lines, NewEmittedLine(ctx.indent))
}

// IncIndent increases the indent of subsequent lines
func (ctx *EmitterContext) IncIndent() {
	ctx.indent++
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// DecIndent decreases the indent of subsequent lines
func (ctx *EmitterContext) DecIndent() {
	ctx.indent--
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// ToSource renders the accumulated lines as source text
func (ctx *EmitterContext) ToSource() string {
	var sb strings.Builder
	for i, line := range ctx.lines {
		if i == len(ctx.lines)-1 && len(line.Parts) == 0 {
			break
		}
		if len(line.Parts) > 0 {
			sb.WriteString(strings.Repeat(indentWith, line.Indent))
			for _, part := range line.Parts {
				sb.WriteString(part)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
