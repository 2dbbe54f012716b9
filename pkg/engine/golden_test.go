// This file runs the fixed set of end-to-end scenarios as txtar fixtures
// through the full Engine pipeline, grounded on golang.org/x/tools/txtar
// (already a go.mod dependency via funvibe-funxy, used there for
// introspection via x/tools/go/packages; txtar is the same module's
// fixture format, reused here for readable multi-field golden cases
// instead of one ad hoc struct literal per scenario).
package engine_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/uguisu-dev/uguisu/pkg/engine"
)

// A fixture has a `source.ug` file and exactly one of `stdout`, `syntax_error`,
// or `runtime_error`.
func runFixture(t *testing.T, archive string) {
	t.Helper()
	a := txtar.Parse([]byte(archive))
	files := make(map[string]string, len(a.Files))
	for _, f := range a.Files {
		files[f.Name] = strings.TrimSuffix(string(f.Data), "\n")
	}

	src, ok := files["source.ug"]
	if !ok {
		t.Fatal("fixture is missing a source.ug file")
	}

	e := engine.New()
	out, synErr, runErr := e.Eval(src)

	if want, ok := files["syntax_error"]; ok {
		if synErr == nil {
			t.Fatalf("expected a SyntaxError containing %q, got none", want)
		}
		if !strings.Contains(synErr.Error(), want) {
			t.Fatalf("got SyntaxError %q, want it to contain %q", synErr.Error(), want)
		}
		return
	}
	if want, ok := files["runtime_error"]; ok {
		if runErr == nil {
			t.Fatalf("expected a RuntimeError containing %q, got none", want)
		}
		if !strings.Contains(runErr.Error(), want) {
			t.Fatalf("got RuntimeError %q, want it to contain %q", runErr.Error(), want)
		}
		return
	}

	if synErr != nil {
		t.Fatalf("unexpected SyntaxError: %s", synErr.Error())
	}
	if runErr != nil {
		t.Fatalf("unexpected RuntimeError: %s", runErr.Error())
	}
	want := files["stdout"]
	if out != want {
		t.Fatalf("got stdout %q, want %q", out, want)
	}
}

func TestEndToEndScenario1_SimpleAddition(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn add(x: number, y: number): number { return x + y; }
fn main() { assert_eq(add(1, 2), 3); }
-- stdout --
`)
}

func TestEndToEndScenario2_Recursion(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn calc(x: number): number { if x == 0 { return 1; } else { return calc(x - 1) * 2; } }
fn main() { assert_eq(calc(8), 256); }
-- stdout --
`)
}

func TestEndToEndScenario3_LoopAccumulation(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() {
	var i = 0;
	var x = 1;
	loop {
		if i == 10 { break; }
		x = x * 2;
		i = i + 1;
	}
	assert_eq(x, 1024);
}
-- stdout --
`)
}

func TestEndToEndScenario4_BreakOutsideLoop(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() { break; }
-- runtime_error --
break target is missing
`)
}

func TestEndToEndScenario5_AssignToFunctionName(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() { main = 1; }
-- syntax_error --
function
`)
}

func TestEndToEndScenario6_CompoundAssignmentChain(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() {
	var x = 0;
	x += 10;
	x -= 2;
	x *= 2;
	x /= 4;
	assert_eq(x, 4);
}
-- stdout --
`)
}

func TestEndToEndDeferredVariable(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() { var x; x = 5; assert_eq(x, 5); }
-- stdout --
`)
}

func TestEndToEndDivisionByZero(t *testing.T) {
	runFixture(t, `
-- source.ug --
fn main() { print_num(1 / 0); }
-- runtime_error --
div operation overflowed
`)
}
