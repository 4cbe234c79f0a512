package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is where generated modules land when no directory is
// configured.
const DefaultOutputDir = "generated"

// Config carries one generation run's settings. It is assembled once, from
// flags or a project file, and not mutated afterwards.
type Config struct {
	// EntryFilePath is the OpenAPI document to read (YAML or JSON).
	EntryFilePath string `yaml:"spec"`
	// OutputDir is the directory the generated module is written under.
	OutputDir string `yaml:"outputDir"`
	// ModuleName overrides the module name derived from the spec title.
	ModuleName string `yaml:"moduleName"`
	// GenerateTodos is the raw user-supplied toggle for Debug.todo stubs;
	// interpretation happens in the output resolver.
	GenerateTodos string `yaml:"generateTodos"`
}

// Load reads configuration from a YAML project file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Overlay returns a copy of base with any non-empty field of over taking
// precedence. Flags given explicitly on the command line win over the
// project file this way.
func Overlay(base, over Config) Config {
	out := base
	if over.EntryFilePath != "" {
		out.EntryFilePath = over.EntryFilePath
	}
	if over.OutputDir != "" {
		out.OutputDir = over.OutputDir
	}
	if over.ModuleName != "" {
		out.ModuleName = over.ModuleName
	}
	if over.GenerateTodos != "" {
		out.GenerateTodos = over.GenerateTodos
	}
	if out.OutputDir == "" {
		out.OutputDir = DefaultOutputDir
	}
	return out
}
