package analyzer

import (
	"fmt"

	"github.com/uguisu-dev/uguisu/internal/config"
	"github.com/uguisu-dev/uguisu/internal/hir"
)

// registerBuiltins installs the three host functions as synthetic
// declarations before any user code is translated (spec.md §4.2 step 1,
// §6.3). They carry no symbol-table position: Pos() on their NodeIDs
// always reports "absent", since they never appear in source.
func (a *analyzer) registerBuiltins() {
	a.registerBuiltin(config.PrintNumFuncName, []hir.Type{hir.Number}, hir.Void)
	a.registerBuiltin(config.PrintLfFuncName, nil, hir.Void)
	a.registerBuiltin(config.AssertEqFuncName, []hir.Type{hir.Number, hir.Number}, hir.Void)
}

func (a *analyzer) registerBuiltin(name string, paramTypes []hir.Type, retTy hir.Type) {
	params := make([]hir.NodeID, len(paramTypes))
	for i, pt := range paramTypes {
		pid := a.store.Alloc(&hir.FuncParam{Name: fmt.Sprintf("arg%d", i)})
		a.store.SetType(pid, pt)
		params[i] = pid
	}

	declID := a.store.Alloc(&hir.Declaration{
		Name: name,
		Sig:  hir.FunctionSignature{Params: params, RetTy: retTy},
	})
	a.store.SetType(declID, hir.Function)
	a.res.setIdentifier(name, declID)

	fnID := a.store.Alloc(&hir.Function{
		Params: params,
		RetTy:  retTy,
		Body:   hir.FunctionBody{IsNative: true},
	})
	a.store.SetBody(declID, fnID)
}
