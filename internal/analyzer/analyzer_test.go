package analyzer_test

import (
	"strings"
	"testing"

	"github.com/uguisu-dev/uguisu/internal/analyzer"
	"github.com/uguisu-dev/uguisu/internal/hir"
	"github.com/uguisu-dev/uguisu/internal/parser"
)

func analyze(t *testing.T, src string) (*hir.Program, error) {
	t.Helper()
	astProg, synErr := parser.Parse(src)
	if synErr != nil {
		return nil, synErr
	}
	prog, genErr := analyzer.Generate(src, astProg)
	if genErr != nil {
		return nil, genErr
	}
	return prog, nil
}

func expectError(t *testing.T, src string, substr string) {
	t.Helper()
	_, err := analyze(t, src)
	if err == nil {
		t.Fatalf("expected an error containing %q, got none\nsrc: %s", substr, src)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got %q", substr, err.Error())
	}
}

func expectOK(t *testing.T, src string) *hir.Program {
	t.Helper()
	prog, err := analyze(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %s\nsrc: %s", err.Error(), src)
	}
	return prog
}

func TestMissingMainIsRejected(t *testing.T) {
	expectError(t, "fn f() {}", "main")
}

func TestSimplestValidProgram(t *testing.T) {
	prog := expectOK(t, "fn main() {}")
	// The synthetic call to `main` is always the final entry.
	last := prog.Entries[len(prog.Entries)-1]
	if _, ok := prog.Store.Node(last).(*hir.CallExpr); !ok {
		t.Errorf("expected the last entry to be the synthetic call to main, got %T", prog.Store.Node(last))
	}
}

func TestConstAndLetAreRejected(t *testing.T) {
	expectError(t, "fn main() { const x = 1; }", "no longer supported")
	expectError(t, "fn main() { let x = 1; }", "no longer supported")
}

func TestUnknownIdentifierIsRejected(t *testing.T) {
	expectError(t, "fn main() { print_num(y); }", "unknown identifier")
}

func TestFunctionCannotBeUsedAsAValue(t *testing.T) {
	expectError(t, "fn main() { var f = main; }", "function")
}

func TestAssignmentToFunctionNameIsRejected(t *testing.T) {
	expectError(t, "fn main() { main = 1; }", "function")
}

func TestTypeMismatchOnVarInitializer(t *testing.T) {
	expectError(t, "fn main() { var x: bool = 1; }", "type mismatched")
}

func TestBreakOutsideLoopAtGlobalScopeIsRejected(t *testing.T) {
	expectError(t, "break;\nfn main() {}", "global space")
}

func TestDeferredVariableDefinedByFirstAssignment(t *testing.T) {
	expectOK(t, "fn main() { var x; x = 1; print_num(x); }")
}

func TestCompoundAssignToDeferredVariableIsRejected(t *testing.T) {
	expectError(t, "fn main() { var x; x += 1; }", "type mismatched")
}

func TestArgumentCountMismatch(t *testing.T) {
	expectError(t, "fn main() { print_lf(1); }", "argument count")
}

func TestRecursiveFunctionResolves(t *testing.T) {
	expectOK(t, `
		fn fact(n: number): number {
			if n == 0 { return 1; }
			return n * fact(n - 1);
		}
		fn main() { print_num(fact(5)); }
	`)
}
