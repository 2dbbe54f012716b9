package interpreter

import (
	"math"

	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

func (it *Interpreter) evalExpression(id hir.NodeID) (Value, *diagnostics.RuntimeError) {
	switch node := it.store.Node(id).(type) {
	case *hir.Variable:
		return it.evalExpression(node.Value)
	case *hir.Reference:
		v, ok := it.getSymbol(node.Dest)
		if !ok {
			panic("interpreter: reference to a symbol with no value")
		}
		return v, nil
	case *hir.Literal:
		switch node.Kind {
		case hir.LiteralNumber:
			return Number(node.Number), nil
		case hir.LiteralBool:
			return Bool(node.Bool), nil
		default:
			panic("interpreter: unknown literal kind")
		}
	case *hir.ArithmeticOp:
		return it.evalArithmeticOp(node)
	case *hir.RelationalOp:
		return it.evalRelationalOp(node)
	case *hir.LogicalBinaryOp:
		return it.evalLogicalBinaryOp(node)
	case *hir.LogicalUnaryOp:
		return it.evalLogicalUnaryOp(node)
	case *hir.CallExpr:
		return it.evalCallExpr(node)
	default:
		panic("interpreter: unexpected expression node")
	}
}

func (it *Interpreter) evalArithmeticOp(node *hir.ArithmeticOp) (Value, *diagnostics.RuntimeError) {
	left, err := it.evalExpression(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpression(node.Right)
	if err != nil {
		return nil, err
	}
	result, rerr := applyArithmetic(node.Op, int64(left.(Number)), int64(right.(Number)))
	if rerr != nil {
		return nil, rerr
	}
	return Number(result), nil
}

// evalRelationalOp switches on RelationTy (set by the analyzer) rather
// than re-inspecting the values' dynamic tags (spec.md §9). `<`/`<=`/`>`/
// `>=` on Bool compare in lexicographic boolean order (`false < true`).
func (it *Interpreter) evalRelationalOp(node *hir.RelationalOp) (Value, *diagnostics.RuntimeError) {
	left, err := it.evalExpression(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpression(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.RelationTy {
	case hir.Number:
		l, r := int64(left.(Number)), int64(right.(Number))
		return Bool(compareOrdered(node.Op, l < r, l == r, l > r)), nil
	case hir.Bool:
		l, r := boolRank(bool(left.(Bool))), boolRank(bool(right.(Bool)))
		return Bool(compareOrdered(node.Op, l < r, l == r, l > r)), nil
	default:
		panic("interpreter: relational op over unsupported type")
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareOrdered(op string, lt, eq, gt bool) bool {
	switch op {
	case "==":
		return eq
	case "!=":
		return !eq
	case "<":
		return lt
	case "<=":
		return lt || eq
	case ">":
		return gt
	case ">=":
		return gt || eq
	default:
		panic("interpreter: unknown relational operator")
	}
}

// evalLogicalBinaryOp always evaluates both operands: there is no
// short-circuit in this version (spec.md §4.3.1, §9).
func (it *Interpreter) evalLogicalBinaryOp(node *hir.LogicalBinaryOp) (Value, *diagnostics.RuntimeError) {
	left, err := it.evalExpression(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpression(node.Right)
	if err != nil {
		return nil, err
	}
	l, r := bool(left.(Bool)), bool(right.(Bool))
	switch node.Op {
	case "&&":
		return Bool(l && r), nil
	case "||":
		return Bool(l || r), nil
	default:
		panic("interpreter: unknown logical operator")
	}
}

func (it *Interpreter) evalLogicalUnaryOp(node *hir.LogicalUnaryOp) (Value, *diagnostics.RuntimeError) {
	v, err := it.evalExpression(node.Operand)
	if err != nil {
		return nil, err
	}
	return Bool(!bool(v.(Bool))), nil
}

// evalCallExpr implements spec.md §4.3.1 point 4: resolve the callee to a
// Declaration + its linked Function, push a frame, bind arguments, and
// either run the statement body or dispatch to a builtin.
func (it *Interpreter) evalCallExpr(node *hir.CallExpr) (Value, *diagnostics.RuntimeError) {
	ref := it.store.Node(node.Callee).(*hir.Reference)
	declID := ref.Dest
	decl := it.store.Node(declID).(*hir.Declaration)
	sig := decl.Sig.(hir.FunctionSignature)

	bodyID, ok := it.store.Body(declID)
	if !ok {
		panic("interpreter: function declaration has no linked body")
	}
	fn := it.store.Node(bodyID).(*hir.Function)

	it.pushFrame()
	defer it.popFrame()

	if fn.Body.IsNative {
		args := make([]Value, len(node.Args))
		for i, argID := range node.Args {
			v, err := it.evalExpression(argID)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		handler, ok := it.builtins[decl.Name]
		if !ok {
			panic("interpreter: unknown builtin " + decl.Name)
		}
		return handler(it, args)
	}

	// Arguments are evaluated before any parameter is bound, then bound
	// directly in the new frame, so a recursive call never overwrites the
	// caller's binding of the same FuncParam id.
	args := make([]Value, len(sig.Params))
	for i := range sig.Params {
		v, err := it.evalExpression(node.Args[i])
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	for i, paramID := range sig.Params {
		it.cur.store[paramID] = args[i]
	}
	res, err := it.execBlock(fn.Body.Statements)
	if err != nil {
		return nil, err
	}
	switch res.kind {
	case resBreak:
		return nil, diagnostics.NewRuntimeError("break target is missing")
	case resReturnWith:
		return res.value, nil
	default:
		return None{}, nil
	}
}

// applyArithmetic implements spec.md §7's overflow/division-by-zero
// runtime errors, matching the original engine's checked-arithmetic
// wording (division and modulo by zero share "div/mod operation
// overflowed" since a checked division by zero also returns no result).
func applyArithmetic(op string, a, b int64) (int64, *diagnostics.RuntimeError) {
	switch op {
	case "+":
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, diagnostics.NewRuntimeError("add operation overflowed")
		}
		return sum, nil
	case "-":
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return 0, diagnostics.NewRuntimeError("sub operation overflowed")
		}
		return diff, nil
	case "*":
		if a == 0 || b == 0 {
			return 0, nil
		}
		product := a * b
		if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, diagnostics.NewRuntimeError("mult operation overflowed")
		}
		return product, nil
	case "/":
		if b == 0 || (a == math.MinInt64 && b == -1) {
			return 0, diagnostics.NewRuntimeError("div operation overflowed")
		}
		return a / b, nil
	case "%":
		if b == 0 || (a == math.MinInt64 && b == -1) {
			return 0, diagnostics.NewRuntimeError("mod operation overflowed")
		}
		return a % b, nil
	default:
		panic("interpreter: unknown arithmetic operator")
	}
}
