// Package oas3 defines the typed object model for OpenAPI Specification 3.x
// documents, together with a strict structural decoder.
//
// Import path: github.com/erraggy/oasdoc/oas3
//
// The model mirrors the OpenAPI 3.0 object graph field by field: the
// components registries, servers, request bodies, media types, callbacks and
// links that have no Swagger 2.0 counterpart are all first-class types here.
// Wire names are declared via struct tags; the renamed identifiers are the
// same four as in package oas2 (wire "type", "enum", "in" and "$ref" become
// Type, Enum, In and Ref), with every other field the camelCase wire name in
// Go's exported casing.
//
// Optionality follows the same rules as oas2: required fields are value
// types, optional scalars are pointers, optional collections are nil when
// absent, and unrecognized keys land in each object's Extra map. One V3
// difference worth noting is Parameter.In: the accepted locations are query,
// header, path and cookie; the V2-only formData and body locations are a
// SchemaError.
//
// Decoding is strict and all-or-nothing via [DecodeMap] or a [Decoder] and
// reports *oaserrors.SchemaError values naming the offending JSON path.
// Reference Objects win over inline objects wherever both are permitted; in
// V3 a Reference may carry sibling summary and description fields, which are
// kept on the [Reference] itself rather than merged into an inline value.
package oas3
