// Package cli runs the generation pipeline: acquire the entry document,
// normalize and decode it, generate the Elm module, report warnings, and
// write the artifact.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/lawik/elm-open-api-cli/pkg/config"
	"github.com/lawik/elm-open-api-cli/pkg/generator"
	"github.com/lawik/elm-open-api-cli/pkg/generator/elm"
	"github.com/lawik/elm-open-api-cli/pkg/openapi"
	"github.com/lawik/elm-open-api-cli/pkg/output"
)

// Reporter is the subset of diagnostic output the pipeline emits. Failures
// are returned as errors and rendered by the caller.
type Reporter interface {
	Warning(text string)
	Success(path string)
}

// RunParams carries the command-line inputs before they are merged with an
// optional project file.
type RunParams struct {
	ConfigPath    string
	EntryFilePath string
	OutputDir     string
	ModuleName    string
	GenerateTodos string
}

// BuildConfig merges the optional project file with the explicit
// command-line values; explicit values win.
func BuildConfig(p RunParams) (config.Config, error) {
	base := config.Config{}
	if p.ConfigPath != "" {
		loaded, err := config.Load(p.ConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("loading config %s: %w", p.ConfigPath, err)
		}
		base = *loaded
	}
	cfg := config.Overlay(base, config.Config{
		EntryFilePath: p.EntryFilePath,
		OutputDir:     p.OutputDir,
		ModuleName:    p.ModuleName,
		GenerateTodos: p.GenerateTodos,
	})
	if cfg.EntryFilePath == "" {
		return config.Config{}, errors.New("an entry file path is required")
	}
	return cfg, nil
}

// RunGenerate executes the pipeline stages in order, stopping at the first
// failure. Warnings are reported as they are encountered and never change
// the outcome.
func RunGenerate(cfg config.Config, reporter Reporter) error {
	raw, err := readEntryFile(cfg.EntryFilePath)
	if err != nil {
		return err
	}

	doc, err := openapi.NormalizeAndDecode(raw)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", cfg.EntryFilePath, err)
	}

	moduleName := output.ResolveModuleName(cfg, doc)

	gen := elm.New()
	artifact, err := gen.Generate(generator.Options{
		Namespace:     moduleName,
		GenerateTodos: output.ResolveGenerateTodos(cfg),
	}, doc)
	if err != nil {
		return fmt.Errorf("generating module %s: %w", moduleName, err)
	}

	for _, w := range artifact.Warnings {
		reporter.Warning(w)
	}

	path := output.ResolveFilePath(cfg, moduleName)
	if err := writeArtifact(path, artifact.Contents); err != nil {
		return err
	}

	reporter.Success(path)
	return nil
}

// RunValidate decodes and validates the entry document without generating.
func RunValidate(entryFilePath string) error {
	raw, err := readEntryFile(entryFilePath)
	if err != nil {
		return err
	}
	if err := openapi.ValidateDocument(raw); err != nil {
		return fmt.Errorf("validating %s: %w", entryFilePath, err)
	}
	return nil
}

// readEntryFile maps read problems to the three acquisition failure kinds.
func readEntryFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("entry file not found: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("could not read entry file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("entry file %s is not valid UTF-8 text", path)
	}
	return string(data), nil
}

func writeArtifact(path, contents string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
