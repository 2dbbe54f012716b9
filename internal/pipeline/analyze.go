package pipeline

import "github.com/uguisu-dev/uguisu/internal/analyzer"

// AnalyzeProcessor turns ctx.AST into ctx.Program, grounded on
// funvibe-funxy's internal/analyzer/processor.go.
type AnalyzeProcessor struct{}

func (a *AnalyzeProcessor) Process(ctx *Context) *Context {
	prog, err := analyzer.Generate(ctx.Source, ctx.AST)
	if err != nil {
		ctx.SyntaxErr = err
		return ctx
	}
	ctx.Program = prog
	return ctx
}
