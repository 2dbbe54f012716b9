// Package pipeline chains the parse/analyze/run stages behind a uniform
// Processor interface, grounded on funvibe-funxy's internal/pipeline package.
// Unlike that pipeline — which keeps running every stage so an LSP client can
// collect diagnostics from all of them at once — Run here stops at the first
// error: spec.md §7 treats a program as either fully valid or rejected by a
// single SyntaxError/RuntimeError, never both at once.
package pipeline

import (
	"io"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

// Context carries a single run's state through every stage. Each stage reads
// the fields the previous stage filled in and fills in its own.
type Context struct {
	Path   string
	Source string
	Out    io.Writer

	AST     *ast.Program
	Program *hir.Program

	SyntaxErr  *diagnostics.SyntaxError
	RuntimeErr *diagnostics.RuntimeError
}

// Failed reports whether a stage has produced an error. Pipeline.Run checks
// it after every stage and stops, so no later stage operates on a nil AST or
// Program.
func (c *Context) Failed() bool {
	return c.SyntaxErr != nil || c.RuntimeErr != nil
}
