package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the optional project configuration file the uguisu CLI
// looks for alongside the entry source file (spec.md §6.1: project discovery is an
// ambient convenience, not part of the language itself).
const ProjectFileName = "uguisu.yaml"

// Project is the shape of uguisu.yaml. It carries no required fields: a
// missing or empty file is a valid, fully-defaulted project.
type Project struct {
	// Entry overrides the source file passed on the command line. Relative
	// to the directory containing uguisu.yaml.
	Entry string `yaml:"entry,omitempty"`

	// Trace names the pipeline stage(s) whose debug output should be
	// printed on every run, equivalent to passing `--trace` on the CLI
	// (spec.md §6.2's debug facilities).
	Trace []string `yaml:"trace,omitempty"`
}

// LoadProject reads and parses a uguisu.yaml file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config %s: %w", path, err)
	}
	return ParseProject(data, path)
}

// ParseProject parses uguisu.yaml content from bytes. The path argument is
// used only for error messages.
func ParseProject(data []byte, path string) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}
