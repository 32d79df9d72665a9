// Package oaserrors provides structured error types for the oasdoc library.
//
// Import path: github.com/erraggy/oasdoc/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides six core error types:
//
//   - [IOError]: document source read failures (file missing, permissions, stream errors)
//   - [ParseError]: input that is not well-formed JSON or YAML, with position info
//   - [VersionMismatchError]: both discriminants present, or an unsupported version value
//   - [UnknownFormatError]: neither a "swagger" nor an "openapi" top-level key
//   - [SchemaError]: structural violations against the selected version's object model
//   - [ConfigError]: invalid load options or conflicting input sources
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrIO]: Matches any [IOError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrVersionMismatch]: Matches any [VersionMismatchError]
//   - [ErrUnknownFormat]: Matches any [UnknownFormatError]
//   - [ErrSchema]: Matches any [SchemaError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	doc, err := oasdoc.FromPath("api.json")
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // Input was not valid JSON/YAML
//	}
//
// Extract error details with errors.As():
//
//	var schemaErr *oaserrors.SchemaError
//	if errors.As(err, &schemaErr) {
//	    fmt.Printf("invalid document at %s: %s\n", schemaErr.Path, schemaErr.Message)
//	}
//
// Distinguish version problems from structural ones:
//
//	if errors.Is(err, oaserrors.ErrUnknownFormat) {
//	    // Not an OpenAPI document at all
//	}
//	if errors.Is(err, oaserrors.ErrVersionMismatch) {
//	    // Claims a version this library does not support, or claims two at once
//	}
//
// # Error Chaining
//
// Error types with a Cause field support chaining via Unwrap(), so root causes
// remain reachable through the standard error chain:
//
//	var ioErr *oaserrors.IOError
//	if errors.As(err, &ioErr) {
//	    if errors.Is(ioErr.Cause, os.ErrNotExist) {
//	        // The document file doesn't exist
//	    }
//	}
package oaserrors
