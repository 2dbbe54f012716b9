package ast

import (
	"fmt"
	"strings"
)

// Dump renders a Program as an indented S-expression tree, used by
// pkg/engine's "parse" trace stage and the CLI's `--graph ast` flag.
// There is no requirement on its exact shape — it exists to be read by a
// human debugging a program, not parsed back.
func Dump(prog *Program) string {
	var b strings.Builder
	for _, stmt := range prog.Statements {
		dumpStatement(&b, stmt, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStatement(b *strings.Builder, stmt Statement, depth int) {
	indent(b, depth)
	switch s := stmt.(type) {
	case *FunctionDecl:
		fmt.Fprintf(b, "(fn %s\n", s.Name)
		for _, st := range s.Body {
			dumpStatement(b, st, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *VarDecl:
		fmt.Fprintf(b, "(%s %s", s.Keyword, s.Name)
		if s.Value != nil {
			b.WriteString(" ")
			dumpExpression(b, s.Value)
		}
		b.WriteString(")\n")
	case *BreakStatement:
		b.WriteString("(break)\n")
	case *ReturnStatement:
		if s.Value == nil {
			b.WriteString("(return)\n")
		} else {
			b.WriteString("(return ")
			dumpExpression(b, s.Value)
			b.WriteString(")\n")
		}
	case *AssignStatement:
		fmt.Fprintf(b, "(%s %s ", s.Mode, s.Target.Name)
		dumpExpression(b, s.Value)
		b.WriteString(")\n")
	case *IfStatement:
		b.WriteString("(if ")
		dumpExpression(b, s.Condition)
		b.WriteString("\n")
		for _, st := range s.Then {
			dumpStatement(b, st, depth+1)
		}
		if len(s.Else) > 0 {
			indent(b, depth)
			b.WriteString("else\n")
			for _, st := range s.Else {
				dumpStatement(b, st, depth+1)
			}
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *LoopStatement:
		b.WriteString("(loop\n")
		for _, st := range s.Body {
			dumpStatement(b, st, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *ExpressionStatement:
		dumpExpression(b, s.Expression)
		b.WriteString("\n")
	default:
		fmt.Fprintf(b, "(unknown-statement %T)\n", s)
	}
}

func dumpExpression(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Identifier:
		b.WriteString(e.Name)
	case *NumberLiteral:
		fmt.Fprintf(b, "%d", e.Value)
	case *BoolLiteral:
		fmt.Fprintf(b, "%t", e.Value)
	case *UnaryExpr:
		fmt.Fprintf(b, "(%s ", e.Operator)
		dumpExpression(b, e.Operand)
		b.WriteString(")")
	case *BinaryExpr:
		fmt.Fprintf(b, "(%s ", e.Operator)
		dumpExpression(b, e.Left)
		b.WriteString(" ")
		dumpExpression(b, e.Right)
		b.WriteString(")")
	case *CallExpr:
		b.WriteString("(call ")
		dumpExpression(b, e.Callee)
		for _, arg := range e.Args {
			b.WriteString(" ")
			dumpExpression(b, arg)
		}
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<unknown-expr %T>", e)
	}
}
