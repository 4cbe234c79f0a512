// Package diag renders warnings, failures and the final confirmation for a
// generation run.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Kind classifies a diagnostic for formatting purposes.
type Kind int

const (
	KindWarning Kind = iota
	KindFailure
	KindSuccess
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// Format renders one diagnostic line. It is stateless: color support is an
// explicit argument, not process-wide configuration.
func Format(kind Kind, text string, color bool) string {
	prefix := ""
	code := ""
	switch kind {
	case KindWarning:
		prefix = "Warning: "
		code = ansiYellow
	case KindFailure:
		prefix = "Error: "
		code = ansiRed
	case KindSuccess:
		code = ansiGreen
	}
	if !color {
		return prefix + text
	}
	return code + prefix + text + ansiReset
}

// Reporter writes ordered diagnostics to its streams. Warnings and failures
// go to the error stream, success confirmations to the output stream.
type Reporter struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// New builds a Reporter with explicit streams and color choice.
func New(out, errw io.Writer, color bool) *Reporter {
	return &Reporter{out: out, err: errw, color: color}
}

// Detect builds a Reporter on stdout/stderr, enabling color when stderr is
// a terminal.
func Detect() *Reporter {
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return New(os.Stdout, os.Stderr, color)
}

// Warning emits a non-fatal diagnostic.
func (r *Reporter) Warning(text string) {
	fmt.Fprintln(r.err, Format(KindWarning, text, r.color))
}

// Failure emits a fatal diagnostic.
func (r *Reporter) Failure(text string) {
	fmt.Fprintln(r.err, Format(KindFailure, text, r.color))
}

// Success emits the confirmation naming the written path.
func (r *Reporter) Success(path string) {
	fmt.Fprintln(r.out, Format(KindSuccess, fmt.Sprintf("Generated %s", path), r.color))
}
