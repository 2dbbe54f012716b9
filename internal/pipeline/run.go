package pipeline

import "github.com/uguisu-dev/uguisu/internal/interpreter"

// RunProcessor executes ctx.Program, writing host output to ctx.Out.
type RunProcessor struct{}

func (r *RunProcessor) Process(ctx *Context) *Context {
	if err := interpreter.Run(ctx.Program, ctx.Out); err != nil {
		ctx.RuntimeErr = err
	}
	return ctx
}
