package parser_test

import (
	"testing"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	return prog
}

func TestParseFunctionDecl(t *testing.T) {
	prog := mustParse(t, "fn add(a: number, b: number): number { return a + b; }")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", prog.Statements[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 || !fn.HasBody {
		t.Errorf("unexpected decl shape: %+v", fn)
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "number" {
		t.Errorf("unexpected return type: %+v", fn.ReturnType)
	}
}

func TestParseFunctionDeclWithoutBody(t *testing.T) {
	prog := mustParse(t, "fn f();")
	fn := prog.Statements[0].(*ast.FunctionDecl)
	if fn.HasBody {
		t.Errorf("expected HasBody=false for a semicolon-terminated declaration")
	}
}

func TestParseVarDeclWithInitializer(t *testing.T) {
	prog := mustParse(t, "var x = 1 + 2 * 3;")
	decl := prog.Statements[0].(*ast.VarDecl)
	if decl.Keyword != "var" || decl.Name != "x" {
		t.Fatalf("unexpected decl: %+v", decl)
	}
	bin, ok := decl.Value.(*ast.BinaryExpr)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %#v", decl.Value)
	}
	// precedence: `2 * 3` should bind tighter than `1 + ...`
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Errorf("expected right operand of + to be the * subexpression")
	}
}

func TestParseConstAndLetAreAcceptedSyntactically(t *testing.T) {
	// The grammar accepts const/let; the analyzer is what rejects them
	// (spec.md §9 "no longer supported").
	for _, kw := range []string{"const", "let"} {
		prog := mustParse(t, kw+" x = 1;")
		decl := prog.Statements[0].(*ast.VarDecl)
		if decl.Keyword != kw {
			t.Errorf("got keyword %q, want %q", decl.Keyword, kw)
		}
	}
}

func TestParseIfElseIfChainDesugarsToNestedIf(t *testing.T) {
	prog := mustParse(t, `fn f() {
		if a {
			return 1;
		} else if b {
			return 2;
		} else {
			return 3;
		}
	}`)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	outer := fn.Body[0].(*ast.IfStatement)
	if len(outer.Else) != 1 {
		t.Fatalf("expected else-if to desugar to a single nested statement, got %d", len(outer.Else))
	}
	inner, ok := outer.Else[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested *ast.IfStatement, got %T", outer.Else[0])
	}
	if len(inner.Else) != 1 {
		t.Errorf("expected the final else block to have one statement")
	}
}

func TestParseLoopAndBreak(t *testing.T) {
	prog := mustParse(t, "loop { break; }")
	loop := prog.Statements[0].(*ast.LoopStatement)
	if len(loop.Body) != 1 {
		t.Fatalf("got %d statements in loop body, want 1", len(loop.Body))
	}
	if _, ok := loop.Body[0].(*ast.BreakStatement); !ok {
		t.Errorf("got %T, want *ast.BreakStatement", loop.Body[0])
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	prog := mustParse(t, "x += 1;")
	assign := prog.Statements[0].(*ast.AssignStatement)
	if assign.Mode != ast.AddAssign {
		t.Errorf("got mode %q, want %q", assign.Mode, ast.AddAssign)
	}
}

func TestParseCallExpr(t *testing.T) {
	prog := mustParse(t, "print_num(1 + 2);")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.CallExpr", stmt.Expression)
	}
	if callee, ok := call.Callee.(*ast.Identifier); !ok || callee.Name != "print_num" {
		t.Errorf("unexpected callee: %#v", call.Callee)
	}
	if len(call.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(call.Args))
	}
}

func TestParseMissingSemicolonIsSyntaxError(t *testing.T) {
	_, err := parser.Parse("var x = 1")
	if err == nil {
		t.Fatal("expected a SyntaxError for a missing `;`")
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := parser.Parse("fn f() {\n  var x = 1\n}")
	if err == nil {
		t.Fatal("expected a SyntaxError")
	}
	if err.Pos.Line != 2 {
		t.Errorf("got line %d, want 2", err.Pos.Line)
	}
}
