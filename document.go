package oasdoc

import (
	"time"

	"github.com/erraggy/oasdoc/oas2"
	"github.com/erraggy/oasdoc/oas3"
)

// Doc is the result of loading an OpenAPI document: a closed two-variant
// union holding exactly one version-specific tree alongside source metadata.
// The variant is decided once, by inspecting the top-level version
// discriminant, before any structural decoding happens.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat Doc as
// read-only after loading. The typed trees are plain structs; modifying them
// is safe for the caller's own copy but invalidates the recorded Stats.
type Doc struct {
	version      string
	oasVersion   OASVersion
	sourceName   string
	sourceFormat SourceFormat
	sourceSize   int64
	loadTime     time.Duration
	stats        DocumentStats

	// Exactly one of v2/v3 is non-nil.
	v2 *oas2.Document
	v3 *oas3.Document
}

// V2 returns the typed tree as an *oas2.Document if the source declared
// Swagger 2.0, and a boolean indicating whether this is the V2 variant.
// This is a convenience method that provides a safe type-switch-free pattern.
//
// Example:
//
//	doc, _ := oasdoc.FromPath("swagger.yaml")
//	if v2, ok := doc.V2(); ok {
//	    fmt.Println("API Title:", v2.Info.Title)
//	}
func (d *Doc) V2() (*oas2.Document, bool) {
	return d.v2, d.v2 != nil
}

// V3 returns the typed tree as an *oas3.Document if the source declared
// OpenAPI 3.x, and a boolean indicating whether this is the V3 variant.
//
// Example:
//
//	doc, _ := oasdoc.FromPath("api.yaml")
//	if v3, ok := doc.V3(); ok {
//	    fmt.Println("API Title:", v3.Info.Title)
//	}
func (d *Doc) V3() (*oas3.Document, bool) {
	return d.v3, d.v3 != nil
}

// IsV2 returns true if the loaded document is an OpenAPI 2.0 (Swagger)
// specification.
func (d *Doc) IsV2() bool {
	return d.v2 != nil
}

// IsV3 returns true if the loaded document is an OpenAPI 3.x specification
// (including 3.0.x, 3.1.x, and 3.2.x).
func (d *Doc) IsV3() bool {
	return d.v3 != nil
}

// Version returns the literal discriminant value from the source document,
// e.g. "2.0" or "3.0.3". It is preserved byte-for-byte, not normalized.
func (d *Doc) Version() string {
	return d.version
}

// OASVersion returns the classified specification version. Unreleased patch
// versions classify to the closest known release in the same series (see
// ParseVersion); a 3.x series this library has never heard of classifies as
// Unknown while the document still loads as V3.
func (d *Doc) OASVersion() OASVersion {
	return d.oasVersion
}

// SourceName returns the document's input source path or URL, or the
// override given via WithSourceName. Byte and reader sources without an
// override report "FromBytes.json"-style synthetic names matching the
// detected format.
func (d *Doc) SourceName() string {
	return d.sourceName
}

// SourceFormat returns the format of the source document (JSON or YAML).
func (d *Doc) SourceFormat() SourceFormat {
	return d.sourceFormat
}

// SourceSize returns the size of the source document in bytes.
func (d *Doc) SourceSize() int64 {
	return d.sourceSize
}

// LoadTime returns the time taken to read the source data (file, URL, reader).
// It is zero for byte and string sources.
func (d *Doc) LoadTime() time.Duration {
	return d.loadTime
}

// Stats returns statistical information about the document, collected once
// at load time.
func (d *Doc) Stats() DocumentStats {
	return d.stats
}
