package decode

import (
	"encoding/json"
	"testing"
)

func mustParse(t *testing.T, raw string) Value {
	t.Helper()
	v, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", raw, err)
	}
	return v
}

func asJSON(t *testing.T, v Value) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling value: %v", err)
	}
	return string(data)
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"null", `null`},
		{"~", `null`},
		{"true", `true`},
		{"false", `false`},
		{"42", `42`},
		{"-1", `-1`},
		{"3.5", `3.5`},
		{"hello", `"hello"`},
		{`"true"`, `"true"`},
		{"2.0.1", `"2.0.1"`},
	}

	for _, test := range tests {
		got := asJSON(t, mustParse(t, test.raw))
		if got != test.expected {
			t.Errorf("Parse(%q) = %s, expected %s", test.raw, got, test.expected)
		}
	}
}

func TestParseSequencePreservesOrder(t *testing.T) {
	v := mustParse(t, "- c\n- a\n- b\n")
	if got, want := asJSON(t, v), `["c","a","b"]`; got != want {
		t.Errorf("Parse() = %s, expected %s", got, want)
	}
}

func TestParseMappingLastWriteWins(t *testing.T) {
	v := mustParse(t, "key: first\nother: x\nkey: second\n")
	if v.Kind != KindObject {
		t.Fatalf("expected object, got kind %d", v.Kind)
	}
	if got := v.Object["key"]; got.Str != "second" {
		t.Errorf("duplicate key resolved to %q, expected %q", got.Str, "second")
	}
}

func TestParseNested(t *testing.T) {
	raw := `
info:
  title: Petstore
  version: 1.0.0
tags:
  - name: pets
    count: 3
`
	v := mustParse(t, raw)
	want := `{"info":{"title":"Petstore","version":"1.0.0"},"tags":[{"count":3,"name":"pets"}]}`
	if got := asJSON(t, v); got != want {
		t.Errorf("Parse() = %s, expected %s", got, want)
	}
}

func TestParseAliases(t *testing.T) {
	raw := `
base: &shared
  kind: common
copy: *shared
`
	v := mustParse(t, raw)
	want := `{"base":{"kind":"common"},"copy":{"kind":"common"}}`
	if got := asJSON(t, v); got != want {
		t.Errorf("Parse() = %s, expected %s", got, want)
	}
}

func TestParseJSONIsAccepted(t *testing.T) {
	// JSON is a subset of the permissive grammar
	v := mustParse(t, `{"a": [1, true, null]}`)
	if got, want := asJSON(t, v), `{"a":[1,true,null]}`; got != want {
		t.Errorf("Parse() = %s, expected %s", got, want)
	}
}

func TestParseFailure(t *testing.T) {
	malformed := "key: [unclosed\n\tbad: \"indent"
	if _, err := Parse(malformed); err == nil {
		t.Errorf("Parse(%q) succeeded, expected an error", malformed)
	}
}
