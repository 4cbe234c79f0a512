package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		text     string
		color    bool
		expected string
	}{
		{"warning plain", KindWarning, "something odd", false, "Warning: something odd"},
		{"failure plain", KindFailure, "boom", false, "Error: boom"},
		{"success plain", KindSuccess, "done", false, "done"},
		{"warning color", KindWarning, "odd", true, "\033[33mWarning: odd\033[0m"},
		{"failure color", KindFailure, "boom", true, "\033[31mError: boom\033[0m"},
		{"success color", KindSuccess, "done", true, "\033[32mdone\033[0m"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Format(test.kind, test.text, test.color); got != test.expected {
				t.Errorf("Format() = %q, expected %q", got, test.expected)
			}
		})
	}
}

func TestReporterStreams(t *testing.T) {
	var out, errw bytes.Buffer
	r := New(&out, &errw, false)

	r.Warning("first")
	r.Warning("second")
	r.Failure("broke")
	r.Success("generated/Api.elm")

	errLines := strings.Split(strings.TrimRight(errw.String(), "\n"), "\n")
	if len(errLines) != 3 {
		t.Fatalf("error stream has %d lines, expected 3: %q", len(errLines), errw.String())
	}
	if errLines[0] != "Warning: first" || errLines[1] != "Warning: second" {
		t.Errorf("warnings out of order: %v", errLines)
	}
	if errLines[2] != "Error: broke" {
		t.Errorf("failure line = %q", errLines[2])
	}

	if got := out.String(); got != "Generated generated/Api.elm\n" {
		t.Errorf("success line = %q", got)
	}
}
