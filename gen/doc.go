// Package gen emits Go type declarations from a loaded OpenAPI document.
//
// Generation covers the named schemas of a document: the definitions map of
// a Swagger 2.0 document or components.schemas of an OpenAPI 3.x document.
// Object schemas become structs with json tags, string enums become defined
// string types with a constant per value, arrays become slice types, and
// top-level $ref entries become type aliases. Optional properties map to
// pointer fields so absent members survive a round trip through
// encoding/json.
//
// Output is processed with goimports-equivalent formatting, so the emitted
// file compiles without a separate formatting step.
//
//	doc, err := oasdoc.FromPath("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	src, err := gen.Generate(doc, gen.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("types.go", src, 0o644)
package gen
