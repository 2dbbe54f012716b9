// Command uguisu is the thin CLI front-end over pkg/engine (spec.md §6.3).
// Flag parsing is hand-rolled over os.Args, grounded on funvibe-funxy's
// cmd/funxy/main.go subcommand dispatch rather than a flag library.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/uguisu-dev/uguisu/internal/ast"
	"github.com/uguisu-dev/uguisu/internal/config"
	"github.com/uguisu-dev/uguisu/internal/hir"
	"github.com/uguisu-dev/uguisu/pkg/engine"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "run" {
		usage()
		os.Exit(1)
	}

	var graphStage, traceStage, path string
	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--graph":
			i++
			if i >= len(args) {
				usage()
				os.Exit(1)
			}
			graphStage = args[i]
		case "--trace":
			i++
			if i >= len(args) {
				usage()
				os.Exit(1)
			}
			traceStage = args[i]
		default:
			path = args[i]
		}
	}
	if path == "" {
		usage()
		os.Exit(1)
	}

	entryPath := path
	traceStages := []string{}
	if traceStage != "" {
		traceStages = append(traceStages, traceStage)
	}
	if proj, ok := findProject(path); ok {
		if proj.Entry != "" {
			entryPath = filepath.Join(filepath.Dir(path), proj.Entry)
		}
		if len(traceStages) == 0 {
			traceStages = proj.Trace
		}
	}

	data, err := os.ReadFile(entryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	src := string(data)

	e := engine.New()
	if len(traceStages) > 0 {
		e.SetTrace(&stderrTracer{stages: stageSet(traceStages), color: useColor()})
	}

	if graphStage != "" {
		switch graphStage {
		case "ast":
			prog, synErr := e.Parse(src)
			if synErr != nil {
				printError(synErr.Error())
				os.Exit(1)
			}
			fmt.Print(ast.Dump(prog))
		case "hir":
			prog, synErr := e.Analyze(src)
			if synErr != nil {
				printError(synErr.Error())
				os.Exit(1)
			}
			fmt.Print(hir.Dump(prog))
		default:
			fmt.Fprintf(os.Stderr, "unknown --graph target %q (want ast or hir)\n", graphStage)
			os.Exit(1)
		}
		return
	}

	synErr, runErr := e.Run(src, os.Stdout)
	if synErr != nil {
		printError(synErr.Error())
		os.Exit(1)
	}
	if runErr != nil {
		printError(runErr.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: uguisu run [--graph ast|hir] [--trace stage] <file>")
}

func useColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// printError writes a diagnostic to stderr, dimmed red when the terminal
// supports it (grounded on funvibe-funxy's internal/evaluator/builtins_term.go
// color-level detection, scaled down to a single on/off decision since
// uguisu only ever prints one diagnostic per run).
func printError(msg string) {
	if useColor() {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// findProject looks for a uguisu.yaml beside the source file named on the
// command line; the caller applies its Entry (a replacement source file
// path; the entry function stays `main`) and Trace (default trace stages)
// fields. Its absence is not an error; a malformed one is.
func findProject(entryFile string) (*config.Project, bool) {
	cfgPath := filepath.Join(filepath.Dir(entryFile), config.ProjectFileName)
	if _, err := os.Stat(cfgPath); err != nil {
		return nil, false
	}
	proj, err := config.LoadProject(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	return proj, true
}

func stageSet(stages []string) map[string]bool {
	set := make(map[string]bool, len(stages))
	for _, s := range stages {
		set[s] = true
	}
	return set
}

type stderrTracer struct {
	stages map[string]bool
	color  bool
}

func (t *stderrTracer) TraceStage(engineID uuid.UUID, stage string, detail string) {
	if !t.stages[stage] || detail == "" {
		return
	}
	header := fmt.Sprintf("--- trace:%s ---\n", stage)
	if t.color {
		header = "\x1b[2m" + header + "\x1b[0m"
	}
	fmt.Fprint(os.Stderr, header, detail)
}
