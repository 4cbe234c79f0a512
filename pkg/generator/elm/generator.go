// Package elm generates a single Elm client module from a decoded OpenAPI
// document.
package elm

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lawik/elm-open-api-cli/pkg/generator"
	"github.com/lawik/elm-open-api-cli/pkg/ir"
	"github.com/lawik/elm-open-api-cli/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// ElmGenerator implements the Generator interface for Elm
type ElmGenerator struct{}

// New creates a new Elm generator
func New() *ElmGenerator {
	return &ElmGenerator{}
}

// Generate builds the module IR from the document and renders it. The
// artifact is returned as text; the caller decides where it is written.
func (g *ElmGenerator) Generate(opts generator.Options, doc *openapi3.T) (generator.Artifact, error) {
	b := &builder{doc: doc, todos: opts.GenerateTodos}

	mod := ir.Module{Name: opts.Namespace}
	if doc.Info != nil {
		mod.Title = doc.Info.Title
		mod.Version = doc.Info.Version
	}
	mod.Aliases, mod.Enums = b.buildComponents()
	mod.Requests = b.buildRequests()

	contents, err := render(mod)
	if err != nil {
		return generator.Artifact{}, err
	}
	return generator.Artifact{Contents: contents, Warnings: b.warnings}, nil
}

// render executes the module template over the IR.
func render(mod ir.Module) (string, error) {
	funcMap := template.FuncMap{
		"camel":  utils.ToCamelCase,
		"pascal": utils.ToPascalCase,
	}
	for k, v := range sprig.TxtFuncMap() {
		if _, ok := funcMap[k]; !ok {
			funcMap[k] = v
		}
	}

	tmplContent, err := templatesFS.ReadFile("templates/module.elm.gotmpl")
	if err != nil {
		return "", fmt.Errorf("elm: reading module template: %w", err)
	}
	tmpl, err := template.New("module.elm.gotmpl").Funcs(funcMap).Parse(string(tmplContent))
	if err != nil {
		return "", fmt.Errorf("elm: parsing module template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, mod); err != nil {
		return "", fmt.Errorf("elm: rendering module %s: %w", mod.Name, err)
	}
	return buf.String(), nil
}
