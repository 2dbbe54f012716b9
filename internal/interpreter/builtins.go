package interpreter

import (
	"fmt"

	"github.com/uguisu-dev/uguisu/internal/config"
	"github.com/uguisu-dev/uguisu/internal/diagnostics"
)

// builtinFunc is a host-side handler for one builtin, dispatched by the
// declaration's identifier (spec.md §4.3.2). Builtins run synchronously on
// the caller's goroutine; there is no async handoff in this engine.
type builtinFunc func(it *Interpreter, args []Value) (Value, *diagnostics.RuntimeError)

func builtinTable() map[string]builtinFunc {
	return map[string]builtinFunc{
		config.PrintNumFuncName: builtinPrintNum,
		config.PrintLfFuncName:  builtinPrintLf,
		config.AssertEqFuncName: builtinAssertEq,
	}
}

func builtinPrintNum(it *Interpreter, args []Value) (Value, *diagnostics.RuntimeError) {
	fmt.Fprintf(it.out, "%d", int64(args[0].(Number)))
	return None{}, nil
}

func builtinPrintLf(it *Interpreter, args []Value) (Value, *diagnostics.RuntimeError) {
	fmt.Fprint(it.out, "\n")
	return None{}, nil
}

func builtinAssertEq(it *Interpreter, args []Value) (Value, *diagnostics.RuntimeError) {
	actual := int64(args[0].(Number))
	expected := int64(args[1].(Number))
	if actual != expected {
		return nil, diagnostics.NewRuntimeError("assertion error. expected `%d`, actual `%d`.", expected, actual)
	}
	return None{}, nil
}
