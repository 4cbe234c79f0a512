package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// SplitWords splits a string into words, handling camelCase, PascalCase, snake_case, and kebab-case
func SplitWords(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Remove accents first
	s = RemoveAccents(s)

	// Split on non-alphanumeric characters, then break camelCase runs
	parts := nonAlnum.Split(s, -1)
	var words []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, splitCamelCase(p)...)
	}
	return words
}

// splitCamelCase splits a camelCase or PascalCase string into words.
// Runs of capitals stay together until a lowercase follows, so
// "XMLHttp" becomes "XML", "Http".
func splitCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var parts []string
	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		isNewWord := false
		if i > 0 && isUppercase(r) {
			if !isUppercase(runes[i-1]) {
				isNewWord = true
			} else if i < len(runes)-1 && !isUppercase(runes[i+1]) {
				isNewWord = true
			}
		}

		if isNewWord && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func isUppercase(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ToPascalCase converts a string to PascalCase
func ToPascalCase(s string) string {
	parts := SplitWords(s)
	if len(parts) == 0 {
		return ""
	}

	b := strings.Builder{}
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		if len(p) > 1 {
			b.WriteString(strings.ToLower(p[1:]))
		}
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// SanitizeModuleName turns a human title into a valid Elm module segment:
// PascalCase, ASCII alphanumeric, starting with a letter. It returns the
// empty string when no usable name can be derived.
func SanitizeModuleName(title string) string {
	name := ToPascalCase(title)
	// An Elm module name must start with a letter; drop digits left over
	// from titles like "123 API".
	name = strings.TrimLeft(name, "0123456789")
	return name
}
