package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/uguisu-dev/uguisu/internal/analyzer"
	"github.com/uguisu-dev/uguisu/internal/interpreter"
	"github.com/uguisu-dev/uguisu/internal/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	astProg, synErr := parser.Parse(src)
	if synErr != nil {
		return "", synErr
	}
	prog, genErr := analyzer.Generate(src, astProg)
	if genErr != nil {
		return "", genErr
	}
	var buf bytes.Buffer
	if runErr := interpreter.Run(prog, &buf); runErr != nil {
		return buf.String(), runErr
	}
	return buf.String(), nil
}

func expectOutput(t *testing.T, src, want string) {
	t.Helper()
	got, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestPrintNumAndPrintLf(t *testing.T) {
	expectOutput(t, `fn main() { print_num(42); print_lf(); }`, "42\n")
}

func TestArithmeticPrecedenceAndEvaluation(t *testing.T) {
	expectOutput(t, `fn main() { print_num(1 + 2 * 3); }`, "7")
}

func TestLoopAndBreak(t *testing.T) {
	expectOutput(t, `
		fn main() {
			var i = 0;
			loop {
				if i >= 3 { break; }
				print_num(i);
				i += 1;
			}
		}
	`, "012")
}

func TestRecursionViaForwardReference(t *testing.T) {
	expectOutput(t, `
		fn fact(n: number): number {
			if n == 0 { return 1; }
			return n * fact(n - 1);
		}
		fn main() { print_num(fact(5)); }
	`, "120")
}

func TestAssignmentToOuterScopeSurvivesBlockExit(t *testing.T) {
	// Reassigning x from inside the loop body must mutate the same
	// binding across iterations, not shadow-and-discard it.
	expectOutput(t, `
		fn main() {
			var x = 1;
			var i = 0;
			loop {
				if i >= 3 { break; }
				x = x * 2;
				i += 1;
			}
			print_num(x);
		}
	`, "8")
}

func TestAssertEqPassesSilently(t *testing.T) {
	expectOutput(t, `fn main() { assert_eq(2 + 2, 4); }`, "")
}

func TestAssertEqFailureIsARuntimeError(t *testing.T) {
	_, err := run(t, `fn main() { assert_eq(2 + 2, 5); }`)
	if err == nil {
		t.Fatal("expected a RuntimeError")
	}
	if !strings.Contains(err.Error(), "assertion error") {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := run(t, `fn main() { print_num(1 / 0); }`)
	if err == nil {
		t.Fatal("expected a RuntimeError")
	}
	if !strings.Contains(err.Error(), "div operation overflowed") {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestAdditionOverflowIsARuntimeError(t *testing.T) {
	_, err := run(t, `fn main() { print_num(9223372036854775807 + 1); }`)
	if err == nil {
		t.Fatal("expected a RuntimeError")
	}
	if !strings.Contains(err.Error(), "add operation overflowed") {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestBoolOrdering(t *testing.T) {
	expectOutput(t, `fn main() { if false < true { print_num(1); } else { print_num(0); } }`, "1")
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	// Both sides are always evaluated: side() prints 9 even when the left
	// operand alone decides the result.
	expectOutput(t, `fn side(): bool { print_num(9); return true; } fn main() { if true || side() { print_num(1); } if false && side() { print_num(2); } else { print_num(3); } }`, "9193")
}
