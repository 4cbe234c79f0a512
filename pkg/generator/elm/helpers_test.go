package elm

import (
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

func sref(s *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: s}
}

func typed(t string) *openapi3.Schema {
	return &openapi3.Schema{Type: &openapi3.Types{t}}
}

func TestExprs(t *testing.T) {
	tests := []struct {
		name    string
		schema  *openapi3.SchemaRef
		typ     string
		decoder string
		encoder string
	}{
		{"nil schema", nil, "Json.Encode.Value", "Json.Decode.value", "identity"},
		{"string", sref(typed(openapi3.TypeString)), "String", "Json.Decode.string", "Json.Encode.string"},
		{"integer", sref(typed(openapi3.TypeInteger)), "Int", "Json.Decode.int", "Json.Encode.int"},
		{"number", sref(typed(openapi3.TypeNumber)), "Float", "Json.Decode.float", "Json.Encode.float"},
		{"boolean", sref(typed(openapi3.TypeBoolean)), "Bool", "Json.Decode.bool", "Json.Encode.bool"},
		{
			"array of string",
			sref(&openapi3.Schema{Type: &openapi3.Types{openapi3.TypeArray}, Items: sref(typed(openapi3.TypeString))}),
			"List String", "Json.Decode.list Json.Decode.string", "Json.Encode.list Json.Encode.string",
		},
		{
			"component ref",
			&openapi3.SchemaRef{Ref: "#/components/schemas/Pet"},
			"Pet", "petDecoder", "encodePet",
		},
		{
			"nullable string",
			sref(&openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Nullable: true}),
			"Maybe String", "Json.Decode.nullable Json.Decode.string", "maybeEncode Json.Encode.string",
		},
		{"untyped", sref(&openapi3.Schema{}), "Json.Encode.Value", "Json.Decode.value", "identity"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := &builder{}
			typ, dec, enc := b.exprs(test.schema, "test")
			if typ != test.typ {
				t.Errorf("type = %q, expected %q", typ, test.typ)
			}
			if dec != test.decoder {
				t.Errorf("decoder = %q, expected %q", dec, test.decoder)
			}
			if enc != test.encoder {
				t.Errorf("encoder = %q, expected %q", enc, test.encoder)
			}
		})
	}
}

func TestExprsCompositesWarn(t *testing.T) {
	b := &builder{}
	typ, _, _ := b.exprs(sref(&openapi3.Schema{OneOf: openapi3.SchemaRefs{sref(typed(openapi3.TypeString))}}), "schema X")
	if typ != "Json.Encode.Value" {
		t.Errorf("oneOf type = %q, expected raw JSON passthrough", typ)
	}
	if len(b.warnings) != 1 || !strings.Contains(b.warnings[0], "oneOf/anyOf/allOf") {
		t.Errorf("expected a composite warning, got %v", b.warnings)
	}
}

func TestParen(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pet", "Pet"},
		{"List Pet", "(List Pet)"},
		{"(already)", "(already)"},
		{"()", "()"},
	}
	for _, test := range tests {
		if got := paren(test.input); got != test.expected {
			t.Errorf("paren(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestApply(t *testing.T) {
	if got := apply("identity", "body"); got != "body" {
		t.Errorf("apply(identity) = %q", got)
	}
	if got := apply("encodePet", "body"); got != "encodePet body" {
		t.Errorf("apply() = %q", got)
	}
}

func TestURLExprUndeclaredParam(t *testing.T) {
	b := &builder{}
	got := b.urlExpr("/pets/{petId}", map[string]string{}, "GET /pets/{petId}")
	want := `baseUrl ++ "/pets/" ++ "{petId}"`
	if got != want {
		t.Errorf("urlExpr() = %q, expected %q", got, want)
	}
	if len(b.warnings) != 1 {
		t.Errorf("expected one warning, got %v", b.warnings)
	}
}

func TestMergeParameters(t *testing.T) {
	pathLevel := openapi3.Parameters{
		{Value: &openapi3.Parameter{Name: "petId", In: openapi3.ParameterInPath, Schema: sref(typed(openapi3.TypeString))}},
	}
	opLevel := openapi3.Parameters{
		{Value: &openapi3.Parameter{Name: "petId", In: openapi3.ParameterInPath, Schema: sref(typed(openapi3.TypeInteger))}},
	}

	merged := mergeParameters(pathLevel, opLevel)
	if len(merged) != 1 {
		t.Fatalf("merged %d parameters, expected 1", len(merged))
	}
	if !merged[0].Value.Schema.Value.Type.Is(openapi3.TypeInteger) {
		t.Errorf("operation-level parameter did not win")
	}
}
