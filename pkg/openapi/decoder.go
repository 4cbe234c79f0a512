package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lawik/elm-open-api-cli/pkg/decode"
)

// DecodeFromText decodes an OpenAPI document from its raw text encoding
// using the decoder's native entry point.
func DecodeFromText(raw string) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return loader.LoadFromData([]byte(raw))
}

// DecodeFromValue decodes an OpenAPI document from the canonical value form.
func DecodeFromValue(v decode.Value) (*openapi3.T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("openapi: encoding canonical value: %w", err)
	}
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return loader.LoadFromData(data)
}

// NormalizeAndDecode parses a raw document with the permissive YAML grammar
// and decodes the resulting canonical value. If the permissive parse fails,
// the original text goes to the native decode path instead; the parse error
// is discarded, never combined with the fallback's result.
func NormalizeAndDecode(raw string) (*openapi3.T, error) {
	v, err := decode.Parse(raw)
	if err != nil {
		return DecodeFromText(raw)
	}
	return DecodeFromValue(v)
}

// ValidateDocument decodes and validates an OpenAPI document.
func ValidateDocument(raw string) error {
	doc, err := NormalizeAndDecode(raw)
	if err != nil {
		return err
	}
	return doc.Validate(context.Background())
}
