// Package engine is the host embedding API: a small wrapper around the
// parse/analyze/run pipeline, grounded on funvibe-funxy's pkg/embed/vm.go.
// That VM marshals arbitrary Go values across a reflection boundary because
// Funxy scripts bind into a host program's own types; uguisu has no such
// boundary (spec.md's Non-goals exclude host interop beyond the three fixed
// builtins), so Engine is reduced to what spec.md §6.2 actually asks for:
// running a program and, optionally, inspecting the stages it passed
// through.
package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/uguisu-dev/uguisu/internal/analyzer"
	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/hir"
	"github.com/uguisu-dev/uguisu/internal/interpreter"
	"github.com/uguisu-dev/uguisu/internal/parser"
	"github.com/uguisu-dev/uguisu/internal/pipeline"
)

// Engine runs uguisu programs. Each instance carries a UUID so a caller
// driving many Engines concurrently (e.g. a test harness) can correlate
// trace/log output back to the instance that produced it.
type Engine struct {
	ID    uuid.UUID
	Trace Tracer
}

// Tracer receives debug snapshots when a stage finishes, if the caller asked
// for them via SetTrace. A nil Tracer (the default) means no tracing.
type Tracer interface {
	TraceStage(engineID uuid.UUID, stage string, detail string)
}

// New creates an Engine with no tracing.
func New() *Engine {
	return &Engine{ID: uuid.New()}
}

// SetTrace installs a Tracer. Passing nil disables tracing.
func (e *Engine) SetTrace(t Tracer) {
	e.Trace = t
}

func (e *Engine) trace(stage, detail string) {
	if e.Trace != nil {
		e.Trace.TraceStage(e.ID, stage, detail)
	}
}

// Parse runs only the lexer/parser stage, returning the raw AST. Exposed for
// tooling that wants to inspect a program's syntax tree without analyzing or
// running it (spec.md §6.2's debug facilities, e.g. `--graph ast`).
func (e *Engine) Parse(src string) (*ast.Program, *diagnostics.SyntaxError) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	e.trace("parse", ast.Dump(prog))
	return prog, nil
}

// Analyze runs the lexer/parser/analyzer stages, returning the typed HIR.
func (e *Engine) Analyze(src string) (*hir.Program, *diagnostics.SyntaxError) {
	astProg, err := e.Parse(src)
	if err != nil {
		return nil, err
	}
	hirProg, err := analyzer.Generate(src, astProg)
	if err != nil {
		return nil, err
	}
	e.trace("analyze", hir.Dump(hirProg))
	return hirProg, nil
}

// Run analyzes and executes src, writing host output (print_num/print_lf) to
// out. It is the full pipeline described in spec.md §3's lifecycle.
func (e *Engine) Run(src string, out io.Writer) (*diagnostics.SyntaxError, *diagnostics.RuntimeError) {
	cw := &countingWriter{w: out}
	ctx := &pipeline.Context{Source: src, Out: cw}
	p := pipeline.New(&pipeline.ParseProcessor{}, &pipeline.AnalyzeProcessor{}, &pipeline.RunProcessor{})
	ctx = p.Run(ctx)
	e.trace("run", runTraceDetail(ctx, cw.n))
	return ctx.SyntaxErr, ctx.RuntimeErr
}

// runTraceDetail summarizes the run stage for the Tracer: bytes written to
// out, and the terminal error if the run stage itself failed (a SyntaxError
// belongs to an earlier stage and is already reported by its own trace).
func runTraceDetail(ctx *pipeline.Context, bytesWritten int) string {
	detail := fmt.Sprintf("wrote %d bytes", bytesWritten)
	if ctx.RuntimeErr != nil {
		detail += fmt.Sprintf("; %s", ctx.RuntimeErr.Error())
	}
	return detail
}

// countingWriter tracks how many bytes flow through it so the run stage can
// report something to Tracer even when the program printed nothing.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Eval runs src and returns everything it printed to stdout as a string.
// Convenience wrapper over Run for callers (tests, REPLs) that just want the
// captured output rather than managing an io.Writer themselves.
func (e *Engine) Eval(src string) (string, *diagnostics.SyntaxError, *diagnostics.RuntimeError) {
	var buf bytes.Buffer
	synErr, runErr := e.Run(src, &buf)
	return buf.String(), synErr, runErr
}

// RunFile reads path and executes it, writing output to stdout.
func (e *Engine) RunFile(path string) (*diagnostics.SyntaxError, *diagnostics.RuntimeError, error) {
	data, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return nil, nil, ioErr
	}
	synErr, runErr := e.Run(string(data), os.Stdout)
	return synErr, runErr, nil
}
