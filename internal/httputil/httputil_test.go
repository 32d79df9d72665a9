package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		// Valid: "default" keyword
		{"default keyword", "default", true},

		// Valid: Extension fields (x-)
		{"extension x-custom", "x-custom", true},
		{"extension x-200", "x-200", true},
		{"extension x-", "x-", true},

		// Valid: Wildcard patterns (1XX-5XX)
		{"wildcard 1XX", "1XX", true},
		{"wildcard 2XX", "2XX", true},
		{"wildcard 3XX", "3XX", true},
		{"wildcard 4XX", "4XX", true},
		{"wildcard 5XX", "5XX", true},

		// Invalid: Wildcards outside 1-5 range
		{"invalid wildcard 0XX", "0XX", false},
		{"invalid wildcard 6XX", "6XX", false},

		// Invalid: Partial wildcards
		{"partial wildcard 2X", "2X", false},
		{"partial wildcard 20X", "20X", false},
		{"partial wildcard X2X", "X2X", false},

		// Valid: Numeric codes in valid range (100-599)
		{"valid 100", "100", true},
		{"valid 200", "200", true},
		{"valid 404", "404", true},
		{"valid 418", "418", true}, // I'm a teapot
		{"valid 599", "599", true},

		// Invalid: Numeric codes outside valid range
		{"invalid 099", "099", false},
		{"invalid 600", "600", false},
		{"invalid 999", "999", false},

		// Invalid: Too short or too long
		{"too short 99", "99", false},
		{"too long 1000", "1000", false},

		// Invalid: Empty and malformed
		{"empty string", "", false},
		{"space in code", "2 00", false},
		{"alphabetic abc", "abc", false},
		{"alphanumeric 2a0", "2a0", false},
		{"not extension x", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code), "code %q", tt.code)
		})
	}
}

func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		expected  bool
	}{
		{"full wildcard", "*/*", true},
		{"type wildcard", "application/*", true},
		{"text wildcard", "text/*", true},
		{"standard json", "application/json", true},
		{"vendor json", "application/vnd.example+json", true},
		{"with parameter", "application/json; charset=utf-8", true},
		{"form data", "multipart/form-data", true},
		{"urlencoded", "application/x-www-form-urlencoded", true},

		{"wildcard type with subtype", "*/json", false},
		{"bare wildcard slash", "/*", false},
		{"empty", "", false},
		{"no slash", "applicationjson", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidMediaType(tt.mediaType), "media type %q", tt.mediaType)
		})
	}
}
