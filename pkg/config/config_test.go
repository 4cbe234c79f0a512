package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elm-open-api.yaml")
	contents := `
spec: ./openapi.yaml
outputDir: src
moduleName: Api.Pets
generateTodos: "yes"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.EntryFilePath != "./openapi.yaml" {
		t.Errorf("EntryFilePath = %q", cfg.EntryFilePath)
	}
	if cfg.OutputDir != "src" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.ModuleName != "Api.Pets" {
		t.Errorf("ModuleName = %q", cfg.ModuleName)
	}
	if cfg.GenerateTodos != "yes" {
		t.Errorf("GenerateTodos = %q", cfg.GenerateTodos)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load() succeeded on a missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("spec: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() succeeded on malformed YAML")
	}
}

func TestOverlay(t *testing.T) {
	base := Config{
		EntryFilePath: "base.yaml",
		OutputDir:     "base-out",
		ModuleName:    "Base",
		GenerateTodos: "no",
	}
	over := Config{
		EntryFilePath: "flag.yaml",
		ModuleName:    "Flag",
	}

	got := Overlay(base, over)
	if got.EntryFilePath != "flag.yaml" {
		t.Errorf("EntryFilePath = %q, expected flag override", got.EntryFilePath)
	}
	if got.OutputDir != "base-out" {
		t.Errorf("OutputDir = %q, expected base value", got.OutputDir)
	}
	if got.ModuleName != "Flag" {
		t.Errorf("ModuleName = %q, expected flag override", got.ModuleName)
	}
	if got.GenerateTodos != "no" {
		t.Errorf("GenerateTodos = %q, expected base value", got.GenerateTodos)
	}
}

func TestOverlayDefaultOutputDir(t *testing.T) {
	got := Overlay(Config{}, Config{EntryFilePath: "spec.yaml"})
	if got.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, expected %q", got.OutputDir, DefaultOutputDir)
	}
}
