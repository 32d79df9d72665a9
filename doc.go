// Package oasdoc loads OpenAPI Specification (OAS) documents into typed,
// version-specific in-memory models.
//
// oasdoc reads a document from a file, URL, byte slice, string, or reader,
// detects whether it is an OAS 2.0 (Swagger) or OAS 3.x document, and decodes
// it into the matching typed model. Decoding is structural and strict: every
// member is checked against its declared type, required members must be
// present, and the first violation aborts the load with an error naming the
// exact field path. No partially decoded documents are ever returned.
//
// # Overview
//
// The module consists of the following packages:
//
//   - oasdoc (this package): version detection, loading entry points, and the
//     version-dispatched Doc union
//   - oas2: the typed OAS 2.0 (Swagger) document model and decoder
//   - oas3: the typed OAS 3.x document model and decoder
//   - oaserrors: the shared error taxonomy (IOError, ParseError,
//     VersionMismatchError, UnknownFormatError, SchemaError, ConfigError)
//   - gen: Go type generation from document schemas
//
// Supported OpenAPI Specification versions:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x (3.0.0 - 3.0.4): https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x (3.1.0 - 3.1.2): https://spec.openapis.org/oas/v3.1.0.html
//   - OAS 3.2.0: https://spec.openapis.org/oas/v3.2.0.html
//
// Unrecognized 3.x releases still load as OAS 3.x documents; only the
// OASVersion classification degrades to Unknown.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasdoc
//
// # Quick Start
//
// Load a document and branch on its version:
//
//	doc, err := oasdoc.Load(oasdoc.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	switch {
//	case doc.IsV2():
//		v2, _ := doc.V2()
//		fmt.Printf("Swagger %s: %s\n", doc.Version(), v2.Info.Title)
//	case doc.IsV3():
//		v3, _ := doc.V3()
//		fmt.Printf("OpenAPI %s: %s\n", doc.Version(), v3.Info.Title)
//	}
//
// Shorthand entry points cover the common sources:
//
//	doc, err := oasdoc.FromPath("https://example.com/api.json")
//	doc, err := oasdoc.FromBytes(data)
//	doc, err := oasdoc.FromString(spec)
//	doc, err := oasdoc.FromReader(resp.Body)
//
// When the version is already known, skip dispatch entirely:
//
//	v3, err := oasdoc.DecodeV3(data)
//
// # Version Dispatch
//
// A well-formed document declares exactly one of the top-level swagger or
// openapi members, as a string. The dispatcher enforces this:
//
//   - swagger "2.0" decodes via oas2
//   - openapi "3.x.y" decodes via oas3
//   - both members present: VersionMismatchError carrying both raw values
//   - neither member present: UnknownFormatError listing the top-level keys
//   - a non-string or unsupported value: VersionMismatchError carrying it
//
// The declared version string is preserved byte for byte and available via
// Doc.Version.
//
// # Error Handling
//
// Every failure maps to one category in the oaserrors package, and each
// category has a sentinel for errors.Is:
//
//	doc, err := oasdoc.FromPath(path)
//	switch {
//	case errors.Is(err, oaserrors.ErrIO):
//		// file missing, unreadable, fetch failed, or size cap exceeded
//	case errors.Is(err, oaserrors.ErrParse):
//		// malformed JSON/YAML, or the top level is not an object
//	case errors.Is(err, oaserrors.ErrVersionMismatch):
//		// contradictory or unsupported version declaration
//	case errors.Is(err, oaserrors.ErrUnknownFormat):
//		// no version declaration at all
//	case errors.Is(err, oaserrors.ErrSchema):
//		// a member failed structural decoding; the error names its path
//	}
//
// SchemaError paths use dotted notation with bracketed indexes, for example
// "paths./pets.get.parameters[0].in".
//
// # References
//
// Fields that admit a Reference Object decode into a reference-or-value sum:
// when an object carries $ref, it decodes as a Reference and sibling members
// are ignored; otherwise it decodes as the inline value. No reference
// resolution is performed, targets are preserved as written.
//
// # Extensions
//
// Unknown members are never discarded. Keys beginning with "x-" and any other
// unrecognized keys are collected into each object's Extra map and written
// back out on marshal, so a load/marshal round trip preserves them.
//
// # Command-Line Interface
//
// In addition to the library packages, oasdoc provides a command-line
// interface:
//
//	# Detect the version of a spec
//	oasdoc detect openapi.yaml
//
//	# Parse a spec and report the outcome
//	oasdoc parse openapi.yaml
//
//	# Print document statistics
//	oasdoc stats openapi.yaml
//
//	# Generate Go types from schemas
//	oasdoc gen -pkg models -out models.go openapi.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/oasdoc/cmd/oasdoc@latest
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org
//   - JSON Schema Specification: https://json-schema.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/oasdoc
package oasdoc
