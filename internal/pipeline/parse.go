package pipeline

import "github.com/uguisu-dev/uguisu/internal/parser"

// ParseProcessor turns ctx.Source into ctx.AST, grounded on
// funvibe-funxy's internal/parser/processor.go.
type ParseProcessor struct{}

func (p *ParseProcessor) Process(ctx *Context) *Context {
	prog, err := parser.Parse(ctx.Source)
	if err != nil {
		ctx.SyntaxErr = err
		return ctx
	}
	ctx.AST = prog
	return ctx
}
