// Package elmopenapi provides a Go library for generating Elm client
// modules from OpenAPI specifications.
//
// The CLI in cmd/elm-open-api is a thin wrapper over this package.
//
// Quick start:
//
//	import elmopenapi "github.com/lawik/elm-open-api-cli"
//
//	// Generate an Elm module under ./generated
//	err := elmopenapi.Generate("./openapi.yaml", "./generated")
//
// For control over the module name and TODO stubs, see GenerateWithOptions.
package elmopenapi

import (
	"github.com/lawik/elm-open-api-cli/internal/cli"
	"github.com/lawik/elm-open-api-cli/pkg/config"
)

// Options contains options for Elm module generation
type Options struct {
	// EntryFilePath is the OpenAPI document to read (YAML or JSON).
	EntryFilePath string

	// OutputDir is the directory the module is written under (default
	// "generated").
	OutputDir string

	// ModuleName overrides the name derived from the spec title.
	ModuleName string

	// GenerateTodos emits Debug.todo stubs for unsupported operations.
	GenerateTodos bool

	// Warn receives non-fatal generator warnings in order; nil discards
	// them.
	Warn func(text string)

	// Generated receives the written file path on success; nil discards it.
	Generated func(path string)
}

// Generate generates an Elm client module from an OpenAPI document with
// default settings.
//
// Example:
//
//	err := elmopenapi.Generate("./openapi.yaml", "./generated")
func Generate(entryFilePath, outputDir string) error {
	return GenerateWithOptions(Options{
		EntryFilePath: entryFilePath,
		OutputDir:     outputDir,
	})
}

// GenerateWithOptions generates an Elm client module with full control over
// the generation run.
//
// Example:
//
//	err := elmopenapi.GenerateWithOptions(elmopenapi.Options{
//		EntryFilePath: "./openapi.yaml",
//		OutputDir:     "./src",
//		ModuleName:    "Api.PetStore",
//		GenerateTodos: true,
//	})
func GenerateWithOptions(opts Options) error {
	generateTodos := "no"
	if opts.GenerateTodos {
		generateTodos = "yes"
	}
	cfg, err := cli.BuildConfig(cli.RunParams{
		EntryFilePath: opts.EntryFilePath,
		OutputDir:     opts.OutputDir,
		ModuleName:    opts.ModuleName,
		GenerateTodos: generateTodos,
	})
	if err != nil {
		return err
	}
	return cli.RunGenerate(cfg, callbackReporter{warn: opts.Warn, generated: opts.Generated})
}

// ValidateSpec decodes and validates an OpenAPI specification file. This is
// useful for checking a spec before attempting to generate a module.
func ValidateSpec(entryFilePath string) error {
	return cli.RunValidate(entryFilePath)
}

// DefaultOutputDir is where generated modules land when no directory is
// configured.
const DefaultOutputDir = config.DefaultOutputDir

type callbackReporter struct {
	warn      func(string)
	generated func(string)
}

func (r callbackReporter) Warning(text string) {
	if r.warn != nil {
		r.warn(text)
	}
}

func (r callbackReporter) Success(path string) {
	if r.generated != nil {
		r.generated(path)
	}
}
