// This file converts OpenAPI schema and property names into valid Go
// identifiers, including keyword escaping and description formatting.

package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/oasdoc/internal/naming"
)

// maxDescriptionLength caps schema descriptions copied into doc comments so
// generated files stay readable.
const maxDescriptionLength = 200

// goKeywords contains the Go keywords that cannot appear as identifiers.
// Predeclared identifiers such as "error" are deliberately absent: they can
// be shadowed and show up routinely as schema names.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeKeyword appends an underscore when name collides with a Go keyword.
// The check is case-insensitive so PascalCase forms like "Type" or "Range"
// stay escaped.
func escapeKeyword(name string) string {
	if goKeywords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// toTypeName converts a schema name to an exported Go identifier.
// Non-alphanumeric runs become word boundaries, each word is capitalized,
// a digit-leading result gains a "T" prefix, and keywords are escaped.
func toTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	// Collapse every non-alphanumeric run into a separator so the shared
	// case converter sees clean word boundaries.
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)

	name := naming.ToPascalCase(cleaned)
	if name == "" {
		return "Type"
	}

	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(r) {
		name = "T" + name
	}

	return escapeKeyword(name)
}

// toFieldName converts a property name to an exported struct field name.
func toFieldName(s string) string {
	return toTypeName(s)
}

// cleanDescription flattens a schema description onto one line and
// truncates it at a rune boundary when it runs long.
func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) > maxDescriptionLength {
		runes := []rune(s)
		if len(runes) > maxDescriptionLength-3 {
			s = string(runes[:maxDescriptionLength-3]) + "..."
		}
	}
	return s
}
