// Package generator defines the contract between the pipeline and concrete
// code generators.
package generator

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Artifact is the output of one generation run: the module source text plus
// ordered, non-fatal warnings about imperfectly handled spec features.
type Artifact struct {
	Contents string
	Warnings []string
}

// Options configure a generation run.
type Options struct {
	// Namespace is the dotted module name the artifact is emitted under.
	Namespace string
	// GenerateTodos emits Debug.todo stubs for unsupported operations
	// instead of dropping them.
	GenerateTodos bool
}

// Generator produces an artifact from a decoded OpenAPI document.
type Generator interface {
	Generate(opts Options, doc *openapi3.T) (Artifact, error)
}
