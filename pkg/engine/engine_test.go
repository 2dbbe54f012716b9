package engine_test

import (
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/pkg/engine"
)

func TestEvalCapturesPrintedOutput(t *testing.T) {
	e := engine.New()
	out, synErr, runErr := e.Eval(`fn main() { print_num(1); print_num(2); }`)
	if synErr != nil || runErr != nil {
		t.Fatalf("unexpected error: syn=%v run=%v", synErr, runErr)
	}
	if out != "12" {
		t.Errorf("got %q, want %q", out, "12")
	}
}

func TestEvalSyntaxError(t *testing.T) {
	e := engine.New()
	_, synErr, _ := e.Eval(`fn main() {`)
	if synErr == nil {
		t.Fatal("expected a SyntaxError for an unterminated block")
	}
}

func TestEvalRuntimeError(t *testing.T) {
	e := engine.New()
	_, synErr, runErr := e.Eval(`fn main() { assert_eq(1, 2); }`)
	if synErr != nil {
		t.Fatalf("unexpected syntax error: %v", synErr)
	}
	if runErr == nil {
		t.Fatal("expected a RuntimeError")
	}
}

type recordingTracer struct {
	stages  []string
	details map[string]string
}

func (r *recordingTracer) TraceStage(_ uuid.UUID, stage string, detail string) {
	r.stages = append(r.stages, stage)
	if r.details == nil {
		r.details = make(map[string]string)
	}
	r.details[stage] = detail
}

func TestSetTraceRecordsStageOnAnalyze(t *testing.T) {
	e := engine.New()
	rec := &recordingTracer{}
	e.SetTrace(rec)
	if _, synErr := e.Analyze(`fn main() {}`); synErr != nil {
		t.Fatalf("unexpected error: %v", synErr)
	}
	found := false
	for _, s := range rec.stages {
		if s == "analyze" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"analyze\" trace stage, got %v", rec.stages)
	}
}

func TestSetTraceRecordsNonEmptyDetailOnRun(t *testing.T) {
	e := engine.New()
	rec := &recordingTracer{}
	e.SetTrace(rec)
	if synErr, runErr := e.Run(`fn main() { print_num(7); }`, io.Discard); synErr != nil || runErr != nil {
		t.Fatalf("unexpected error: syn=%v run=%v", synErr, runErr)
	}
	detail, ok := rec.details["run"]
	if !ok || detail == "" {
		t.Fatalf("expected a non-empty \"run\" trace detail, got %q (stages: %v)", detail, rec.stages)
	}
}

func TestEngineIDIsStableAcrossCalls(t *testing.T) {
	e := engine.New()
	id1 := e.ID
	e.Eval(`fn main() {}`)
	if e.ID != id1 {
		t.Errorf("Engine.ID changed across calls")
	}
}

func TestShowASTProducesNonEmptyDump(t *testing.T) {
	e := engine.New()
	prog, synErr := e.Parse(`fn main() {}`)
	if synErr != nil {
		t.Fatalf("unexpected error: %v", synErr)
	}
	if prog == nil {
		t.Fatal("expected a non-nil AST")
	}
	if ast.Dump(prog) == "" {
		t.Error("expected a non-empty AST dump")
	}
}

func TestShowHIRProducesAnalyzedProgram(t *testing.T) {
	e := engine.New()
	prog, synErr := e.Analyze(`fn main() {}`)
	if synErr != nil {
		t.Fatalf("unexpected error: %v", synErr)
	}
	if prog == nil || len(prog.Entries) == 0 {
		t.Fatal("expected a non-empty analyzed program")
	}
}

func TestRunFileReportsReadError(t *testing.T) {
	e := engine.New()
	_, _, err := e.RunFile("/nonexistent/path/to/a/file.ug")
	if err == nil {
		t.Fatal("expected a file read error")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("unexpected error: %v", err)
	}
}
