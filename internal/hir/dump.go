package hir

import (
	"fmt"
	"strings"
)

// Dump renders a Program's top-level entries as an indented tree annotated
// with node ids and resolved types, used by pkg/engine's "analyze" trace
// stage and the CLI's `--graph hir` flag. Like ast.Dump, its shape is for
// a human reading debug output, not for round-tripping.
func Dump(prog *Program) string {
	var b strings.Builder
	for _, id := range prog.Entries {
		dumpNode(&b, prog.Store, id, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func typeSuffix(store *Store, id NodeID) string {
	if ty, ok := store.Type(id); ok {
		return ":" + ty.String()
	}
	return ""
}

func dumpNode(b *strings.Builder, store *Store, id NodeID, depth int) {
	indent(b, depth)
	if id == NoValue {
		b.WriteString("<novalue>\n")
		return
	}

	switch n := store.Node(id).(type) {
	case *Declaration:
		fmt.Fprintf(b, "(decl#%d %s%s\n", id, n.Name, typeSuffix(store, id))
		if bodyID, ok := store.Body(id); ok {
			dumpNode(b, store, bodyID, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *Function:
		b.WriteString("(fn\n")
		for _, s := range n.Body.Statements {
			dumpNode(b, store, s, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *Variable:
		b.WriteString("(var\n")
		dumpNode(b, store, n.Value, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *BreakStatement:
		b.WriteString("(break)\n")
	case *ReturnStatement:
		if n.Value == NoValue {
			b.WriteString("(return)\n")
		} else {
			b.WriteString("(return\n")
			dumpNode(b, store, n.Value, depth+1)
			indent(b, depth)
			b.WriteString(")\n")
		}
	case *Assignment:
		fmt.Fprintf(b, "(%s#%d\n", n.Mode, id)
		dumpNode(b, store, n.Target, depth+1)
		dumpNode(b, store, n.Value, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *IfStatement:
		b.WriteString("(if\n")
		dumpNode(b, store, n.Condition, depth+1)
		for _, s := range n.Then {
			dumpNode(b, store, s, depth+1)
		}
		if len(n.Else) > 0 {
			indent(b, depth)
			b.WriteString("else\n")
			for _, s := range n.Else {
				dumpNode(b, store, s, depth+1)
			}
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *LoopStatement:
		b.WriteString("(loop\n")
		for _, s := range n.Body {
			dumpNode(b, store, s, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *Reference:
		decl, _ := store.Node(n.Dest).(*Declaration)
		name := "?"
		if decl != nil {
			name = decl.Name
		}
		fmt.Fprintf(b, "(ref %s#%d%s)\n", name, n.Dest, typeSuffix(store, id))
	case *Literal:
		switch n.Kind {
		case LiteralNumber:
			fmt.Fprintf(b, "%d\n", n.Number)
		case LiteralBool:
			fmt.Fprintf(b, "%t\n", n.Bool)
		}
	case *ArithmeticOp:
		fmt.Fprintf(b, "(%s%s\n", n.Op, typeSuffix(store, id))
		dumpNode(b, store, n.Left, depth+1)
		dumpNode(b, store, n.Right, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *RelationalOp:
		fmt.Fprintf(b, "(%s %s\n", n.Op, n.RelationTy)
		dumpNode(b, store, n.Left, depth+1)
		dumpNode(b, store, n.Right, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *LogicalBinaryOp:
		fmt.Fprintf(b, "(%s\n", n.Op)
		dumpNode(b, store, n.Left, depth+1)
		dumpNode(b, store, n.Right, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *LogicalUnaryOp:
		b.WriteString("(!\n")
		dumpNode(b, store, n.Operand, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *CallExpr:
		fmt.Fprintf(b, "(call%s\n", typeSuffix(store, id))
		dumpNode(b, store, n.Callee, depth+1)
		for _, a := range n.Args {
			dumpNode(b, store, a, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	default:
		fmt.Fprintf(b, "<unknown-node#%d %T>\n", id, n)
	}
}
