package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrIO indicates the document source could not be read.
	ErrIO = errors.New("io error")

	// ErrParse indicates the input is not well-formed JSON or YAML.
	ErrParse = errors.New("parse error")

	// ErrVersionMismatch indicates conflicting or unsupported version discriminants.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrUnknownFormat indicates no version discriminant was found.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrSchema indicates a structural violation of the document object model.
	ErrSchema = errors.New("schema error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// IOError represents a failure to read a document source.
// The decode pipeline never retries; the original cause is attached.
type IOError struct {
	// Path is the file path, URL, or source identifier
	Path string
	// Op is the operation that failed, e.g. "open", "read", "fetch"
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError represents input that is not well-formed JSON or YAML.
// Position fields are populated when the underlying decoder provides them.
type ParseError struct {
	// Source is the file path or source identifier
	Source string
	// Line is the line number where the syntax error occurred (0 if unknown)
	Line int
	// Column is the column number where the syntax error occurred (0 if unknown)
	Column int
	// Offset is the byte offset of the syntax error (0 if unknown)
	Offset int64
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	} else if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// VersionMismatchError represents a document whose version discriminants are
// conflicting or unsupported: both "swagger" and "openapi" present, or a
// discriminant whose value is not a supported major version.
type VersionMismatchError struct {
	// SwaggerValue is the raw value of the top-level "swagger" key (nil if absent)
	SwaggerValue any
	// OpenAPIValue is the raw value of the top-level "openapi" key (nil if absent)
	OpenAPIValue any
	// Message describes the mismatch
	Message string
}

// Error returns a human-readable error message.
func (e *VersionMismatchError) Error() string {
	msg := "version mismatch"
	var found []string
	if e.SwaggerValue != nil {
		found = append(found, fmt.Sprintf("swagger=%v", e.SwaggerValue))
	}
	if e.OpenAPIValue != nil {
		found = append(found, fmt.Sprintf("openapi=%v", e.OpenAPIValue))
	}
	if len(found) > 0 {
		msg += " (" + strings.Join(found, ", ") + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as VersionMismatchError has no underlying cause.
func (e *VersionMismatchError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// UnknownFormatError represents a document with neither a "swagger" nor an
// "openapi" key at the top level.
type UnknownFormatError struct {
	// Keys holds the top-level keys that were found, for diagnostics
	Keys []string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *UnknownFormatError) Error() string {
	msg := "unknown document format"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Keys) > 0 {
		msg += fmt.Sprintf(" (top-level keys: %s)", strings.Join(e.Keys, ", "))
	}
	return msg
}

// Unwrap returns nil as UnknownFormatError has no underlying cause.
func (e *UnknownFormatError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// SchemaError represents syntactically valid input that violates the expected
// structure for the selected version: a missing required field, a value of the
// wrong type, an enumerated field holding an unrecognized value, or the decode
// nesting ceiling being exceeded. Decoding is all-or-nothing; the first
// SchemaError aborts the decode.
type SchemaError struct {
	// Path is the JSON path to the offending field (e.g., "paths./pets.get.responses")
	Path string
	// Message describes the structural violation
	Message string
	// Value is the offending value (may be nil)
	Value any
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
