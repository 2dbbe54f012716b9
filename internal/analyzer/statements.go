package analyzer

import (
	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

// translateStatementList lowers a block (or the top-level program) one
// statement at a time, stopping at the first error. It is used for both
// global scope and nested blocks: the global/local distinction is enforced
// inside each statement kind, not by having two separate code paths.
func (a *analyzer) translateStatementList(stmts []ast.Statement) []hir.NodeID {
	ids := make([]hir.NodeID, 0, len(stmts))
	for _, stmt := range stmts {
		id := a.translateStatement(stmt)
		if a.err != nil {
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func (a *analyzer) translateStatement(stmt ast.Statement) hir.NodeID {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		return a.translateFunctionDecl(s)
	case *ast.VarDecl:
		return a.translateVarDecl(s)
	case *ast.BreakStatement:
		return a.translateBreakStatement(s)
	case *ast.ReturnStatement:
		return a.translateReturnStatement(s)
	case *ast.AssignStatement:
		return a.translateAssignStatement(s)
	case *ast.IfStatement:
		return a.translateIfStatement(s)
	case *ast.LoopStatement:
		return a.translateLoopStatement(s)
	case *ast.ExpressionStatement:
		return a.translateExpressionStatement(s)
	default:
		a.fail(stmt.Pos(), "unexpected operation")
		return 0
	}
}

func (a *analyzer) resolveTypeName(tn *ast.TypeName) (hir.Type, bool) {
	switch tn.Name {
	case "number":
		return hir.Number, true
	case "bool":
		return hir.Bool, true
	case "void":
		a.fail(tn.Pos(), "type `void` is invalid")
		return 0, false
	default:
		a.fail(tn.Pos(), "unknown type name")
		return 0, false
	}
}

// translateFunctionDecl builds the Declaration (with its FunctionSignature)
// and binds its name before translating the body, so a function can call
// itself (spec.md §4.2.1).
func (a *analyzer) translateFunctionDecl(decl *ast.FunctionDecl) hir.NodeID {
	params := make([]hir.NodeID, len(decl.Params))
	for i, p := range decl.Params {
		if p.Type == nil {
			a.fail(p.Pos(), "parameter type missing")
			return 0
		}
		ty, ok := a.resolveTypeName(p.Type)
		if !ok {
			return 0
		}
		pid := a.store.Alloc(&hir.FuncParam{Name: p.Name})
		a.store.SetType(pid, ty)
		a.store.SetPos(pid, p.Pos())
		params[i] = pid
	}

	retTy := hir.Void
	if decl.ReturnType != nil {
		ty, ok := a.resolveTypeName(decl.ReturnType)
		if !ok {
			return 0
		}
		retTy = ty
	}

	declID := a.store.Alloc(&hir.Declaration{
		Name: decl.Name,
		Sig:  hir.FunctionSignature{Params: params, RetTy: retTy},
	})
	a.store.SetType(declID, hir.Function)
	a.store.SetPos(declID, decl.Pos())
	a.res.setIdentifier(decl.Name, declID)

	if !decl.HasBody {
		a.fail(decl.Pos(), "function declaration cannot be undefined.")
		return declID
	}

	a.res.pushFrame()
	for i, p := range decl.Params {
		a.res.setIdentifier(p.Name, params[i])
	}
	body := a.translateStatementList(decl.Body)
	a.res.popFrame()
	if a.err != nil {
		return declID
	}

	fnID := a.store.Alloc(&hir.Function{
		Params: params,
		RetTy:  retTy,
		Body:   hir.FunctionBody{Statements: body},
	})
	a.store.SetBody(declID, fnID)
	return declID
}

// translateVarDecl rejects const/let outright, otherwise registers the
// Declaration and — if an initializer is present — defines it immediately
// via defineVariableDecl. A bare `var x: T;` is left undefined until its
// first assignment (spec.md §4.2.3).
func (a *analyzer) translateVarDecl(decl *ast.VarDecl) hir.NodeID {
	if decl.Keyword != "var" {
		a.fail(decl.Pos(), "A variable with `%s` is no longer supported. Use the `var` keyword instead.", decl.Keyword)
		return 0
	}

	var specifiedTy *hir.Type
	if decl.Type != nil {
		ty, ok := a.resolveTypeName(decl.Type)
		if !ok {
			return 0
		}
		specifiedTy = &ty
	}

	declID := a.store.Alloc(&hir.Declaration{
		Name: decl.Name,
		Sig:  hir.VariableSignature{SpecifiedTy: specifiedTy},
	})
	a.store.SetPos(declID, decl.Pos())
	a.res.setIdentifier(decl.Name, declID)

	if decl.Value == nil {
		return declID
	}

	valueID, valueTy := a.lowerExpression(decl.Value)
	if a.err != nil {
		return declID
	}
	a.defineVariableDecl(declID, valueID, valueTy, decl.Pos())
	return declID
}

// defineVariableDecl installs the Variable body for declID and sets its
// resolved type, checking the body's type against the declaration's
// annotation if one was given. Used both for `var x = expr;` and for the
// first assignment of a previously-deferred `var x;` (spec.md §4.2.3).
func (a *analyzer) defineVariableDecl(declID, valueID hir.NodeID, valueTy hir.Type, pos int) {
	sig := a.store.Node(declID).(*hir.Declaration).Sig.(hir.VariableSignature)
	varTy := valueTy
	if sig.SpecifiedTy != nil {
		if *sig.SpecifiedTy != valueTy {
			a.fail(pos, "type mismatched. expected `%s`, found `%s`", *sig.SpecifiedTy, valueTy)
			return
		}
		varTy = *sig.SpecifiedTy
	}
	varID := a.store.Alloc(&hir.Variable{Value: valueID})
	a.store.SetBody(declID, varID)
	a.store.SetType(declID, varTy)
}

func (a *analyzer) translateBreakStatement(stmt *ast.BreakStatement) hir.NodeID {
	if a.res.atGlobalScope() {
		a.fail(stmt.Pos(), "A break statement cannot be used in global space")
		return 0
	}
	id := a.store.Alloc(&hir.BreakStatement{})
	a.store.SetPos(id, stmt.Pos())
	return id
}

func (a *analyzer) translateReturnStatement(stmt *ast.ReturnStatement) hir.NodeID {
	if a.res.atGlobalScope() {
		a.fail(stmt.Pos(), "A return statement cannot be used in global space")
		return 0
	}
	value := hir.NoValue
	if stmt.Value != nil {
		valueID, _ := a.lowerExpression(stmt.Value)
		if a.err != nil {
			return 0
		}
		value = valueID
	}
	id := a.store.Alloc(&hir.ReturnStatement{Value: value})
	a.store.SetPos(id, stmt.Pos())
	return id
}

// translateAssignStatement resolves the target's declaration and either
// checks the assignment against its existing type, or — if the
// declaration is still deferred (no body installed yet) — defines it now
// (spec.md §4.2.1, §4.2.3). Compound operators (+=, -=, ...) require an
// already-defined Number variable.
func (a *analyzer) translateAssignStatement(stmt *ast.AssignStatement) hir.NodeID {
	if a.res.atGlobalScope() {
		a.fail(stmt.Pos(), "A assignment statement cannot be used in global space")
		return 0
	}

	declID, ok := a.res.lookupIdentifier(stmt.Target.Name)
	if !ok {
		a.fail(stmt.Target.Pos(), "unknown identifier")
		return 0
	}

	valueID, valueTy := a.lowerExpression(stmt.Value)
	if a.err != nil {
		return 0
	}

	mode := hir.AssignMode(stmt.Mode)

	// A function identifier is never a valid assignment target: its
	// declaration type is always Function, which may never appear on
	// either side of an assignment (spec.md §4.2.1, end-to-end scenario 5).
	if _, isFn := a.store.Node(declID).(*hir.Declaration).Sig.(hir.FunctionSignature); isFn {
		a.fail(stmt.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Function, valueTy)
		return 0
	}

	_, hasBody := a.store.Body(declID)

	var declTy hir.Type
	if !hasBody {
		if mode != hir.Assign {
			a.fail(stmt.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Number, hir.Void)
			return 0
		}
		a.defineVariableDecl(declID, valueID, valueTy, stmt.Pos())
		if a.err != nil {
			return 0
		}
		declTy, _ = a.store.Type(declID)
	} else {
		declTy, _ = a.store.Type(declID)
		if mode == hir.Assign {
			if declTy != valueTy {
				a.fail(stmt.Pos(), "type mismatched. expected `%s`, found `%s`", declTy, valueTy)
				return 0
			}
		} else {
			if declTy != hir.Number || valueTy != hir.Number {
				a.fail(stmt.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Number, valueTy)
				return 0
			}
		}
	}

	refID := a.store.Alloc(&hir.Reference{Dest: declID})
	a.store.SetType(refID, declTy)
	a.store.SetPos(refID, stmt.Target.Pos())

	id := a.store.Alloc(&hir.Assignment{Target: refID, Mode: mode, Value: valueID})
	a.store.SetPos(id, stmt.Pos())
	return id
}

func (a *analyzer) translateIfStatement(stmt *ast.IfStatement) hir.NodeID {
	condID, condTy := a.lowerExpression(stmt.Condition)
	if a.err != nil {
		return 0
	}
	if condTy != hir.Bool {
		a.fail(stmt.Condition.Pos(), "type mismatched. expected `%s`, found `%s`", hir.Bool, condTy)
		return 0
	}

	a.res.pushFrame()
	then := a.translateStatementList(stmt.Then)
	a.res.popFrame()
	if a.err != nil {
		return 0
	}

	var elseIDs []hir.NodeID
	if len(stmt.Else) > 0 {
		a.res.pushFrame()
		elseIDs = a.translateStatementList(stmt.Else)
		a.res.popFrame()
		if a.err != nil {
			return 0
		}
	}

	id := a.store.Alloc(&hir.IfStatement{Condition: condID, Then: then, Else: elseIDs})
	a.store.SetPos(id, stmt.Pos())
	return id
}

func (a *analyzer) translateLoopStatement(stmt *ast.LoopStatement) hir.NodeID {
	if a.res.atGlobalScope() {
		a.fail(stmt.Pos(), "A loop statement cannot be used in global space")
		return 0
	}

	a.res.pushFrame()
	body := a.translateStatementList(stmt.Body)
	a.res.popFrame()
	if a.err != nil {
		return 0
	}

	id := a.store.Alloc(&hir.LoopStatement{Body: body})
	a.store.SetPos(id, stmt.Pos())
	return id
}

func (a *analyzer) translateExpressionStatement(stmt *ast.ExpressionStatement) hir.NodeID {
	if a.res.atGlobalScope() {
		a.fail(stmt.Pos(), "A expression statement cannot be used in global space")
		return 0
	}
	id, _ := a.lowerExpression(stmt.Expression)
	return id
}
