// Package httputil provides HTTP-related validation utilities and constants
// shared by the oas2 and oas3 decoders.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// HTTP status code bounds
const (
	statusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	minStatusCode    = 100 // Minimum valid HTTP status code
	maxStatusCode    = 599 // Maximum valid HTTP status code
	wildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP method keys as they appear in Path Item objects.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// ValidateStatusCode checks if a responses map key is valid according to the
// OpenAPI specification. Valid values are:
//   - "default" for the default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) == statusCodeLength {
		// Wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == wildcardChar && code[2] == wildcardChar {
			if code[0] >= '1' && code[0] <= '5' {
				return true
			}
		}

		// Numeric codes
		if code[0] >= '0' && code[0] <= '9' &&
			code[1] >= '0' && code[1] <= '9' &&
			code[2] >= '0' && code[2] <= '9' {
			statusCode, err := strconv.Atoi(code)
			if err == nil && statusCode >= minStatusCode && statusCode <= maxStatusCode {
				return true
			}
		}
	}

	return false
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and rejects invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	// Require a type/subtype separator and a concrete type;
	// mime.ParseMediaType tolerates slash-less tokens and
	// wildcard types we must reject.
	typePart, _, _ := strings.Cut(mediaType, ";")
	if strings.Count(typePart, "/") != 1 || strings.HasPrefix(typePart, "*/") {
		return false
	}

	// Use standard MIME type parser for regular types
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
