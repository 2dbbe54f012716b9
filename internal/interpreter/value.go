package interpreter

import "github.com/uguisu-dev/uguisu/internal/hir"

// Value is the tagged sum of spec.md §4.3: {NoneValue, Number, Bool,
// Function}. Each variant is its own concrete type, mirroring the
// teacher's Object-per-kind style (funvibe-funxy/internal/evaluator/
// object_primitives.go) rather than a single struct with an unused-field
// union.
type Value interface {
	valueNode()
}

// None marks a call with no result.
type None struct{}

func (None) valueNode() {}

// Number is a signed 64-bit integer value.
type Number int64

func (Number) valueNode() {}

// Bool is a boolean value.
type Bool bool

func (Bool) valueNode() {}

// Function names the declaration a function-typed symbol refers to. It is
// produced only when a function Declaration is executed (§4.3.1) and never
// reaches a user-visible expression position (enforced by the analyzer).
type Function hir.NodeID

func (Function) valueNode() {}
