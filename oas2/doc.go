// Package oas2 defines the typed object model for OpenAPI Specification 2.0
// (Swagger) documents, together with a strict structural decoder.
//
// Import path: github.com/erraggy/oasdoc/oas2
//
// The model mirrors the Swagger 2.0 object graph field by field. Every struct
// field declares its wire name via struct tags, so the full renaming table is
// auditable at the type definitions. Exactly four identifiers differ from
// their wire names beyond Go's exported casing:
//
//   - wire "type" is field Type (Go keyword-free, but renamed for symmetry with "enum"/"in")
//   - wire "enum" is field Enum
//   - wire "in" is field In
//   - wire "$ref" is field Ref
//
// Every other field name is the camelCase wire name in Go's exported casing
// (operationId becomes OperationID, basePath becomes BasePath, and so on).
//
// # Optionality
//
// Required fields use value types; optional scalars use pointer types so that
// an absent field is distinguishable from a present-but-zero one. Optional
// slices and maps are nil when absent and empty when present-but-empty.
// Specification extensions (x-*) and any other unrecognized keys are captured
// in each object's Extra map.
//
// # Decoding
//
// Decoding is strict and all-or-nothing: [DecodeMap] (or a [Decoder]) walks
// the generic map tree that json.Unmarshal/yaml.Unmarshal produce and returns
// either a fully populated *[Document] or a single *oaserrors.SchemaError
// naming the offending JSON path. Wherever the specification permits a
// Reference Object in place of an inline object the model uses [RefOr], a
// two-variant sum probed $ref-first; sibling keys next to $ref are not merged
// into an inline value.
//
// json.Unmarshal into model types routes through the same strict decoder via
// UnmarshalJSON, so extension capture and error paths behave identically.
// Marshaling restores the original wire keys exactly, extensions included.
package oas2
