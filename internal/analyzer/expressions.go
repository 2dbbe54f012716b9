package analyzer

import (
	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var relationalOps = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// lowerExpression is the general expression-lowering entry point. Every
// caller except the callee position of a CallExpr goes through here, which
// is what enforces "an operand typed Function is a syntax error, except
// the immediate callee of a call" (spec.md §4.2.2).
func (a *analyzer) lowerExpression(expr ast.Expression) (hir.NodeID, hir.Type) {
	id, ty := a.lowerExpressionInner(expr)
	if a.err != nil {
		return 0, 0
	}
	if ty == hir.Function {
		a.fail(expr.Pos(), "type `function` is not supported")
		return 0, 0
	}
	return id, ty
}

func (a *analyzer) lowerExpressionInner(expr ast.Expression) (hir.NodeID, hir.Type) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return a.lowerReference(e)
	case *ast.NumberLiteral:
		id := a.store.Alloc(&hir.Literal{Kind: hir.LiteralNumber, Number: e.Value})
		a.store.SetType(id, hir.Number)
		a.store.SetPos(id, e.Pos())
		return id, hir.Number
	case *ast.BoolLiteral:
		id := a.store.Alloc(&hir.Literal{Kind: hir.LiteralBool, Bool: e.Value})
		a.store.SetType(id, hir.Bool)
		a.store.SetPos(id, e.Pos())
		return id, hir.Bool
	case *ast.UnaryExpr:
		return a.lowerUnaryExpr(e)
	case *ast.BinaryExpr:
		return a.lowerBinaryExpr(e)
	case *ast.CallExpr:
		return a.lowerCallExpr(e)
	default:
		a.fail(expr.Pos(), "unexpected operation")
		return 0, 0
	}
}

func (a *analyzer) lowerReference(id *ast.Identifier) (hir.NodeID, hir.Type) {
	declID, ok := a.res.lookupIdentifier(id.Name)
	if !ok {
		a.fail(id.Pos(), "unknown identifier")
		return 0, 0
	}
	declTy, ok := a.store.Type(declID)
	if !ok {
		a.fail(id.Pos(), "type not resolved")
		return 0, 0
	}
	refID := a.store.Alloc(&hir.Reference{Dest: declID})
	a.store.SetType(refID, declTy)
	a.store.SetPos(refID, id.Pos())
	return refID, declTy
}

func (a *analyzer) lowerUnaryExpr(e *ast.UnaryExpr) (hir.NodeID, hir.Type) {
	if e.Operator != "!" {
		a.fail(e.Pos(), "unexpected operation")
		return 0, 0
	}
	operandID, operandTy := a.lowerExpression(e.Operand)
	if a.err != nil {
		return 0, 0
	}
	if operandTy != hir.Bool {
		a.fail(e.Operand.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Bool, operandTy)
		return 0, 0
	}
	id := a.store.Alloc(&hir.LogicalUnaryOp{Operand: operandID})
	a.store.SetType(id, hir.Bool)
	a.store.SetPos(id, e.Pos())
	return id, hir.Bool
}

func (a *analyzer) lowerBinaryExpr(e *ast.BinaryExpr) (hir.NodeID, hir.Type) {
	switch {
	case arithmeticOps[e.Operator]:
		return a.lowerArithmeticOp(e)
	case relationalOps[e.Operator]:
		return a.lowerRelationalOp(e)
	case logicalOps[e.Operator]:
		return a.lowerLogicalOp(e)
	default:
		a.fail(e.Pos(), "unexpected operation")
		return 0, 0
	}
}

func (a *analyzer) lowerArithmeticOp(e *ast.BinaryExpr) (hir.NodeID, hir.Type) {
	leftID, leftTy := a.lowerExpression(e.Left)
	if a.err != nil {
		return 0, 0
	}
	rightID, rightTy := a.lowerExpression(e.Right)
	if a.err != nil {
		return 0, 0
	}
	if leftTy != hir.Number {
		a.fail(e.Left.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Number, leftTy)
		return 0, 0
	}
	if rightTy != hir.Number {
		a.fail(e.Right.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Number, rightTy)
		return 0, 0
	}
	id := a.store.Alloc(&hir.ArithmeticOp{Left: leftID, Right: rightID, Op: e.Operator})
	a.store.SetType(id, hir.Number)
	a.store.SetPos(id, e.Pos())
	return id, hir.Number
}

func (a *analyzer) lowerRelationalOp(e *ast.BinaryExpr) (hir.NodeID, hir.Type) {
	leftID, leftTy := a.lowerExpression(e.Left)
	if a.err != nil {
		return 0, 0
	}
	rightID, rightTy := a.lowerExpression(e.Right)
	if a.err != nil {
		return 0, 0
	}
	if leftTy != rightTy {
		a.fail(e.Pos(), "type mismatched. expected `%s`, found `%s`", leftTy, rightTy)
		return 0, 0
	}
	id := a.store.Alloc(&hir.RelationalOp{Left: leftID, Right: rightID, Op: e.Operator, RelationTy: leftTy})
	a.store.SetType(id, hir.Bool)
	a.store.SetPos(id, e.Pos())
	return id, hir.Bool
}

func (a *analyzer) lowerLogicalOp(e *ast.BinaryExpr) (hir.NodeID, hir.Type) {
	leftID, leftTy := a.lowerExpression(e.Left)
	if a.err != nil {
		return 0, 0
	}
	rightID, rightTy := a.lowerExpression(e.Right)
	if a.err != nil {
		return 0, 0
	}
	if leftTy != hir.Bool {
		a.fail(e.Left.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Bool, leftTy)
		return 0, 0
	}
	if rightTy != hir.Bool {
		a.fail(e.Right.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Bool, rightTy)
		return 0, 0
	}
	id := a.store.Alloc(&hir.LogicalBinaryOp{Left: leftID, Right: rightID, Op: e.Operator})
	a.store.SetType(id, hir.Bool)
	a.store.SetPos(id, e.Pos())
	return id, hir.Bool
}

// lowerCallee resolves a call's callee expression to a function
// Declaration, bypassing the Function-type rejection that lowerExpression
// applies everywhere else (spec.md §4.2.2's one exception). In this
// grammar the callee is always a bare identifier — there is no field or
// module-path syntax to chain through.
func (a *analyzer) lowerCallee(expr ast.Expression) (refID, declID hir.NodeID, ok bool) {
	id, isIdent := expr.(*ast.Identifier)
	if !isIdent {
		a.fail(expr.Pos(), "unexpected operation")
		return 0, 0, false
	}
	declID, found := a.res.lookupIdentifier(id.Name)
	if !found {
		a.fail(id.Pos(), "unknown identifier")
		return 0, 0, false
	}
	declTy, tyOk := a.store.Type(declID)
	if !tyOk {
		a.fail(id.Pos(), "type not resolved")
		return 0, 0, false
	}
	if declTy != hir.Function {
		a.fail(id.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Function, declTy)
		return 0, 0, false
	}
	refID = a.store.Alloc(&hir.Reference{Dest: declID})
	a.store.SetType(refID, hir.Function)
	a.store.SetPos(refID, id.Pos())
	return refID, declID, true
}

func (a *analyzer) lowerCallExpr(e *ast.CallExpr) (hir.NodeID, hir.Type) {
	calleeRef, declID, ok := a.lowerCallee(e.Callee)
	if !ok {
		return 0, 0
	}
	sig := a.store.Node(declID).(*hir.Declaration).Sig.(hir.FunctionSignature)

	if len(e.Args) != len(sig.Params) {
		a.fail(e.Pos(), "argument count incorrect")
		return 0, 0
	}

	args := make([]hir.NodeID, len(e.Args))
	for i, argExpr := range e.Args {
		argID, argTy := a.lowerExpression(argExpr)
		if a.err != nil {
			return 0, 0
		}
		paramTy, _ := a.store.Type(sig.Params[i])
		if argTy != paramTy {
			a.fail(argExpr.Pos(), "type mismatched. expected `%s`, found `%s`", paramTy, argTy)
			return 0, 0
		}
		args[i] = argID
	}

	id := a.store.Alloc(&hir.CallExpr{Callee: calleeRef, Args: args})
	a.store.SetType(id, sig.RetTy)
	a.store.SetPos(id, e.Pos())
	return id, sig.RetTy
}
