// Package interpreter tree-walks an analyzed hir.Program, evaluating
// expressions and executing statements against a running stack of frames
// keyed by HIR node id (spec.md §4.3). Host-observable effects happen only
// through the builtin dispatcher.
package interpreter

import (
	"io"

	"github.com/uguisu-dev/uguisu/internal/diagnostics"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

// resultKind classifies how a statement or block finished, per spec.md
// §4.3.1 point 2: None, Break, Return, ReturnWith(Value).
type resultKind int

const (
	resNone resultKind = iota
	resBreak
	resReturn
	resReturnWith
)

type stmtResult struct {
	kind  resultKind
	value Value
}

var noneResult = stmtResult{kind: resNone}

type Interpreter struct {
	store    *hir.Store
	out      io.Writer
	root     *frame
	cur      *frame
	builtins map[string]builtinFunc
}

func newInterpreter(store *hir.Store, out io.Writer) *Interpreter {
	it := &Interpreter{store: store, out: out}
	it.root = newFrame(nil)
	it.cur = it.root
	it.builtins = builtinTable()
	return it
}

// Run executes an analyzed program's top-level entries in order: a
// Declaration (installing a function or evaluating a with-initializer
// variable), any other statement the analyzer accepts at global scope (an
// if statement), and, as the final entry, the synthetic call to `main`
// (spec.md §4.3.1 point 1).
func Run(prog *hir.Program, out io.Writer) *diagnostics.RuntimeError {
	it := newInterpreter(prog.Store, out)
	for _, id := range prog.Entries {
		switch node := it.store.Node(id).(type) {
		case *hir.Declaration:
			if err := it.execDeclaration(id, node); err != nil {
				return err
			}
		case *hir.CallExpr:
			if _, err := it.evalCallExpr(node); err != nil {
				return err
			}
		default:
			if _, err := it.execStatement(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (it *Interpreter) pushFrame() { it.cur = newFrame(it.cur) }
func (it *Interpreter) popFrame() { it.cur = it.cur.outer }

func (it *Interpreter) getSymbol(id hir.NodeID) (Value, bool) { return it.cur.get(id) }
func (it *Interpreter) setSymbol(id hir.NodeID, v Value) { it.cur.set(id, v) }

// execDeclaration implements spec.md §4.3.1 point 1.
func (it *Interpreter) execDeclaration(id hir.NodeID, decl *hir.Declaration) *diagnostics.RuntimeError {
	switch decl.Sig.(type) {
	case hir.FunctionSignature:
		it.setSymbol(id, Function(id))
		return nil
	case hir.VariableSignature:
		bodyID, ok := it.store.Body(id)
		if !ok {
			return nil // deferred: assignment installs the value later
		}
		v, err := it.evalExpression(bodyID)
		if err != nil {
			return err
		}
		// Bound in the current frame, not via set: in a recursive call the
		// same id is already bound in the caller's frame.
		it.cur.store[id] = v
		return nil
	default:
		panic("interpreter: declaration with unknown signature kind")
	}
}

func (it *Interpreter) execBlock(ids []hir.NodeID) (stmtResult, *diagnostics.RuntimeError) {
	for _, id := range ids {
		res, err := it.execStatement(id)
		if err != nil {
			return noneResult, err
		}
		if res.kind != resNone {
			return res, nil
		}
	}
	return noneResult, nil
}

func (it *Interpreter) execStatement(id hir.NodeID) (stmtResult, *diagnostics.RuntimeError) {
	switch node := it.store.Node(id).(type) {
	case *hir.Declaration:
		if err := it.execDeclaration(id, node); err != nil {
			return noneResult, err
		}
		return noneResult, nil
	case *hir.BreakStatement:
		return stmtResult{kind: resBreak}, nil
	case *hir.ReturnStatement:
		if node.Value == hir.NoValue {
			return stmtResult{kind: resReturn}, nil
		}
		v, err := it.evalExpression(node.Value)
		if err != nil {
			return noneResult, err
		}
		return stmtResult{kind: resReturnWith, value: v}, nil
	case *hir.Assignment:
		if err := it.execAssignment(node); err != nil {
			return noneResult, err
		}
		return noneResult, nil
	case *hir.IfStatement:
		return it.execIf(node)
	case *hir.LoopStatement:
		return it.execLoop(node)
	default:
		// Any other node id in statement position is a bare
		// expression-as-statement: evaluate it and discard the result.
		if _, err := it.evalExpression(id); err != nil {
			return noneResult, err
		}
		return noneResult, nil
	}
}

func (it *Interpreter) execIf(node *hir.IfStatement) (stmtResult, *diagnostics.RuntimeError) {
	condVal, err := it.evalExpression(node.Condition)
	if err != nil {
		return noneResult, err
	}
	it.pushFrame()
	defer it.popFrame()
	if bool(condVal.(Bool)) {
		return it.execBlock(node.Then)
	}
	return it.execBlock(node.Else)
}

// execLoop implements spec.md §4.3.1 point 3: Break terminates the loop
// and yields None; Return/ReturnWith propagate outward; anything else
// continues looping.
func (it *Interpreter) execLoop(node *hir.LoopStatement) (stmtResult, *diagnostics.RuntimeError) {
	for {
		it.pushFrame()
		res, err := it.execBlock(node.Body)
		it.popFrame()
		if err != nil {
			return noneResult, err
		}
		switch res.kind {
		case resBreak:
			return noneResult, nil
		case resReturn, resReturnWith:
			return res, nil
		default:
		}
	}
}

func (it *Interpreter) execAssignment(node *hir.Assignment) *diagnostics.RuntimeError {
	ref := it.store.Node(node.Target).(*hir.Reference)
	declID := ref.Dest

	value, err := it.evalExpression(node.Value)
	if err != nil {
		return err
	}

	if node.Mode == hir.Assign {
		it.setSymbol(declID, value)
		return nil
	}

	current, ok := it.getSymbol(declID)
	if !ok {
		panic("interpreter: compound assignment to an undefined symbol")
	}
	result, rerr := applyArithmetic(compoundOp(node.Mode), int64(current.(Number)), int64(value.(Number)))
	if rerr != nil {
		return rerr
	}
	it.setSymbol(declID, Number(result))
	return nil
}

func compoundOp(mode hir.AssignMode) string {
	switch mode {
	case hir.AddAssign:
		return "+"
	case hir.SubAssign:
		return "-"
	case hir.MulAssign:
		return "*"
	case hir.DivAssign:
		return "/"
	case hir.ModAssign:
		return "%"
	default:
		panic("interpreter: unknown compound assignment mode")
	}
}
