// Package output derives the logical module name and the concrete output
// file path for a generation run.
package output

import (
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lawik/elm-open-api-cli/pkg/config"
	"github.com/lawik/elm-open-api-cli/pkg/utils"
)

// Extension is the file extension of generated modules.
const Extension = ".elm"

// DefaultModuleName is used when neither a flag nor the spec title yields a
// usable name.
const DefaultModuleName = "Api"

// ResolveModuleName picks the module name: the configured name verbatim if
// present, otherwise the sanitized spec title, otherwise DefaultModuleName.
func ResolveModuleName(cfg config.Config, doc *openapi3.T) string {
	if cfg.ModuleName != "" {
		return cfg.ModuleName
	}
	title := ""
	if doc != nil && doc.Info != nil {
		title = doc.Info.Title
	}
	if name := utils.SanitizeModuleName(title); name != "" {
		return name
	}
	return DefaultModuleName
}

// ResolveFilePath maps a dotted module name onto the filesystem: segments
// become directories under the output directory and the last segment gets
// the module extension, so "Foo.Bar" resolves to <outDir>/Foo/Bar.elm.
func ResolveFilePath(cfg config.Config, moduleName string) string {
	segments := strings.Split(moduleName, ".")
	parts := append([]string{cfg.OutputDir}, segments...)
	return filepath.Clean(filepath.Join(parts...) + Extension)
}

// ResolveGenerateTodos interprets the raw generateTodos setting: absent
// defaults to "no", comparison is case-insensitive, and only "y", "yes" and
// "true" enable it.
func ResolveGenerateTodos(cfg config.Config) bool {
	raw := cfg.GenerateTodos
	if raw == "" {
		raw = "no"
	}
	switch strings.ToLower(raw) {
	case "y", "yes", "true":
		return true
	default:
		return false
	}
}
