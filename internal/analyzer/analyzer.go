// Package analyzer translates a parsed ast.Program into hir.Program: it
// resolves every identifier to a declaration, checks types against the
// closed Void/Number/Bool/Function set, and installs the three host
// builtins before translating user code (spec.md §4.2).
package analyzer

import (
	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/config"
	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

type analyzer struct {
	src   string
	store *hir.Store
	res   *resolver
	err   *diagnostics.SyntaxError
}

func newAnalyzer(src string) *analyzer {
	return &analyzer{src: src, store: hir.NewStore(), res: newResolver()}
}

// fail records the first SyntaxError encountered. Subsequent calls are
// no-ops, matching the parser's eager-return-on-first-error discipline
// (spec.md §7: diagnostics are reported one at a time).
func (a *analyzer) fail(offset int, format string, args ...interface{}) {
	if a.err != nil {
		return
	}
	a.err = diagnostics.NewSyntaxError(diagnostics.PhaseAnalyzer, resolvePos(a.src, offset), format, args...)
}

// Generate runs the full AST-to-HIR translation described in spec.md §4.2:
// it installs the builtins, translates every top-level statement, then
// resolves `main` and appends a synthetic zero-argument call to it as the
// program's implicit entry point.
func Generate(src string, prog *ast.Program) (*hir.Program, *diagnostics.SyntaxError) {
	a := newAnalyzer(src)
	a.registerBuiltins()

	entries := a.translateStatementList(prog.Statements)
	if a.err != nil {
		return nil, a.err
	}

	mainID, ok := a.res.lookupIdentifier(config.EntryFuncName)
	if !ok {
		a.fail(len(src), "function `main` is not found")
		return nil, a.err
	}
	mainTy, ok := a.store.Type(mainID)
	if !ok || mainTy != hir.Function {
		a.fail(len(src), "function `main` is not found")
		return nil, a.err
	}
	mainSig := a.store.Node(mainID).(*hir.Declaration).Sig.(hir.FunctionSignature)

	calleeRef := a.store.Alloc(&hir.Reference{Dest: mainID})
	a.store.SetType(calleeRef, hir.Function)
	call := a.store.Alloc(&hir.CallExpr{Callee: calleeRef})
	a.store.SetType(call, mainSig.RetTy)
	entries = append(entries, call)

	return &hir.Program{Store: a.store, Entries: entries}, nil
}
