// Package config holds the engine's small set of ambient constants and the
// optional uguisu.yaml project configuration loader. Grounded on
// funvibe-funxy/internal/config/constants.go's source-extension constants
// and internal/ext/config.go's yaml.v3-backed config file shape.
package config

// SourceFileExt is the recognized extension for uguisu source files.
const SourceFileExt = ".ug"

// Builtin function names, shared between the analyzer's registration pass
// and the interpreter's dispatch table so neither side can drift from the
// other (spec.md §4.2 step 1, §4.3.2).
const (
	PrintNumFuncName = "print_num"
	PrintLfFuncName  = "print_lf"
	AssertEqFuncName = "assert_eq"
)

// EntryFuncName is the implicit entry point the analyzer looks up and calls
// at the end of every program (spec.md §4.2 step 3).
const EntryFuncName = "main"
