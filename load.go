package oasdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc/internal/jsonwire"
	"github.com/erraggy/oasdoc/oas2"
	"github.com/erraggy/oasdoc/oas3"
	"github.com/erraggy/oasdoc/oaserrors"
)

// Load reads an OpenAPI document from the configured input source, detects
// its version, and decodes it into a typed Doc. Exactly one input source
// option (WithFilePath, WithBytes, WithString, or WithReader) must be given;
// anything else fails with a ConfigError before any I/O happens.
//
// The version discriminant decides which decoder runs: a top-level swagger
// member routes to oas2, an openapi member routes to oas3. Documents that
// declare both fail with a VersionMismatchError, documents that declare
// neither fail with an UnknownFormatError.
//
// Example:
//
//	doc, err := oasdoc.Load(oasdoc.WithFilePath("api.yaml"))
//	if err != nil {
//	    return err
//	}
//	if v3, ok := doc.V3(); ok {
//	    fmt.Println(v3.Info.Title)
//	}
func Load(opts ...Option) (*Doc, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.load()
}

// FromPath loads an OpenAPI document from a file path or an http(s) URL.
// It is shorthand for Load(WithFilePath(path), opts...).
func FromPath(path string, opts ...Option) (*Doc, error) {
	return Load(append([]Option{WithFilePath(path)}, opts...)...)
}

// FromBytes loads an OpenAPI document from a byte slice.
// It is shorthand for Load(WithBytes(data), opts...).
func FromBytes(data []byte, opts ...Option) (*Doc, error) {
	return Load(append([]Option{WithBytes(data)}, opts...)...)
}

// FromString loads an OpenAPI document from a string.
// It is shorthand for Load(WithString(s), opts...).
func FromString(s string, opts ...Option) (*Doc, error) {
	return Load(append([]Option{WithString(s)}, opts...)...)
}

// FromReader loads an OpenAPI document from an io.Reader.
// It is shorthand for Load(WithReader(r), opts...).
func FromReader(r io.Reader, opts ...Option) (*Doc, error) {
	return Load(append([]Option{WithReader(r)}, opts...)...)
}

// DecodeV2 decodes data already known to hold a Swagger 2.0 document,
// skipping version dispatch. The top-level swagger member must still be
// present as a string; its value is not inspected.
//
// Only configuration options are accepted; passing an input source option
// fails with a ConfigError.
func DecodeV2(data []byte, opts ...Option) (*oas2.Document, error) {
	cfg, err := applyDecodeOptions(opts...)
	if err != nil {
		return nil, err
	}
	m, err := parseMap(data, cfg.decodeSourceName("DecodeV2", data), detectFormatFromContent(data))
	if err != nil {
		return nil, err
	}
	dec := oas2.Decoder{MaxDepth: cfg.maxDepth}
	return dec.Decode(m)
}

// DecodeV3 decodes data already known to hold an OpenAPI 3.x document,
// skipping version dispatch. The top-level openapi member must still be
// present as a string; its value is not inspected.
//
// Only configuration options are accepted; passing an input source option
// fails with a ConfigError.
func DecodeV3(data []byte, opts ...Option) (*oas3.Document, error) {
	cfg, err := applyDecodeOptions(opts...)
	if err != nil {
		return nil, err
	}
	m, err := parseMap(data, cfg.decodeSourceName("DecodeV3", data), detectFormatFromContent(data))
	if err != nil {
		return nil, err
	}
	dec := oas3.Decoder{MaxDepth: cfg.maxDepth}
	return dec.Decode(m)
}

// decodeSourceName returns the source name for the version-pinned decode
// entry points, honoring WithSourceName when set.
func (cfg *loadConfig) decodeSourceName(prefix string, data []byte) string {
	if cfg.sourceName != nil {
		return *cfg.sourceName
	}
	return syntheticName(prefix, detectFormatFromContent(data))
}

// syntheticName builds a stand-in source name for inputs that have no path
func syntheticName(prefix string, format SourceFormat) string {
	if format == SourceFormatJSON {
		return prefix + ".json"
	}
	return prefix + ".yaml"
}

// load runs the full pipeline: read the source, detect the format, parse to
// a generic map, dispatch on the version discriminant, and collect stats.
func (cfg *loadConfig) load() (*Doc, error) {
	data, name, format, loadTime, err := cfg.readSource()
	if err != nil {
		return nil, err
	}
	size := int64(len(data))

	log := cfg.log()
	log.Debug("loading document", "source", name, "format", string(format), "size", FormatBytes(size))

	m, err := parseMap(data, name, format)
	if err != nil {
		return nil, err
	}

	doc, err := cfg.dispatch(m)
	if err != nil {
		return nil, err
	}

	doc.sourceName = name
	doc.sourceFormat = format
	doc.sourceSize = size
	doc.loadTime = loadTime
	doc.stats = collectStats(doc)

	log.Debug("decoded document",
		"source", name,
		"version", doc.version,
		"paths", doc.stats.PathCount,
		"operations", doc.stats.OperationCount,
		"schemas", doc.stats.SchemaCount)

	return doc, nil
}

// readSource reads the configured input into memory and resolves the source
// name and format. It enforces the size cap but performs no parsing; loadTime
// covers I/O only and is zero for in-memory sources.
func (cfg *loadConfig) readSource() (data []byte, name string, format SourceFormat, loadTime time.Duration, err error) {
	// The named return starts at the zero value "", not SourceFormatUnknown;
	// the sniffing fallback below compares against Unknown, so set it now.
	format = SourceFormatUnknown
	var prefix string

	switch {
	case cfg.filePath != nil:
		path := *cfg.filePath
		start := time.Now()
		if isURL(path) {
			fetched, contentType, fetchErr := cfg.fetchURL(path)
			if fetchErr != nil {
				return nil, "", "", 0, fetchErr
			}
			data = fetched
			format = detectFormatFromURL(path, contentType)
			if format == SourceFormatUnknown && contentType != "" {
				cfg.log().Warn("unrecognized content type, sniffing format from body", "url", path, "contentType", contentType)
			}
		} else {
			read, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, "", "", 0, &oaserrors.IOError{Path: path, Op: "read", Cause: readErr}
			}
			data = read
			format = detectFormatFromPath(path)
		}
		loadTime = time.Since(start)
		name = path

	case cfg.reader != nil:
		r := cfg.reader
		if cfg.maxSourceSize > 0 {
			// Read one byte past the cap so the size check below can tell
			// capped from exact.
			r = io.LimitReader(r, cfg.maxSourceSize+1)
		}
		read, readErr := io.ReadAll(r)
		if readErr != nil {
			return nil, "", "", 0, &oaserrors.IOError{Path: "FromReader", Op: "read", Cause: readErr}
		}
		data = read
		prefix = "FromReader"

	case cfg.bytes != nil:
		data = cfg.bytes
		prefix = "FromBytes"

	case cfg.str != nil:
		data = []byte(*cfg.str)
		prefix = "FromString"
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	if name == "" {
		name = syntheticName(prefix, format)
	}
	if cfg.sourceName != nil {
		name = *cfg.sourceName
	}

	if size := int64(len(data)); cfg.maxSourceSize > 0 && size > cfg.maxSourceSize {
		cfg.log().Warn("source exceeds size limit", "source", name, "size", FormatBytes(size), "limit", FormatBytes(cfg.maxSourceSize))
		return nil, "", "", 0, &oaserrors.IOError{
			Path:  name,
			Op:    "read",
			Cause: fmt.Errorf("source size %s exceeds maximum size limit (%s)", FormatBytes(size), FormatBytes(cfg.maxSourceSize)),
		}
	}

	return data, name, format, loadTime, nil
}

// parseMap parses raw document bytes into a generic map, surfacing syntax
// problems as ParseErrors tagged with the source name. JSON input goes
// through encoding/json so syntax errors carry byte offsets; everything else
// goes through the YAML parser, which also accepts JSON.
func parseMap(data []byte, name string, format SourceFormat) (map[string]any, error) {
	var m map[string]any

	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &m); err != nil {
			var syn *json.SyntaxError
			if errors.As(err, &syn) {
				return nil, &oaserrors.ParseError{
					Source:  name,
					Offset:  syn.Offset,
					Message: "invalid JSON syntax",
					Cause:   err,
				}
			}
			var typ *json.UnmarshalTypeError
			if errors.As(err, &typ) {
				return nil, &oaserrors.ParseError{
					Source:  name,
					Offset:  typ.Offset,
					Message: fmt.Sprintf("top-level value is %s, expected an object", typ.Value),
					Cause:   err,
				}
			}
			return nil, &oaserrors.ParseError{Source: name, Message: "invalid JSON document", Cause: err}
		}
	} else {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, &oaserrors.ParseError{Source: name, Message: "invalid YAML document", Cause: err}
		}
		switch tv := v.(type) {
		case nil:
			// Fall through to the empty-document check below.
		case map[string]any:
			m = tv
		default:
			return nil, &oaserrors.ParseError{
				Source:  name,
				Message: fmt.Sprintf("top-level value is %T, expected an object", v),
			}
		}
	}

	if m == nil {
		return nil, &oaserrors.ParseError{Source: name, Message: "document has no top-level object"}
	}
	return m, nil
}

// dispatch routes a parsed document to the version-specific decoder based on
// the top-level discriminant, then decodes the full structure.
func (cfg *loadConfig) dispatch(m map[string]any) (*Doc, error) {
	version, ov, isV2, err := detectVersion(m)
	if err != nil {
		return nil, err
	}

	if isV2 {
		dec := oas2.Decoder{MaxDepth: cfg.maxDepth}
		d, err := dec.Decode(m)
		if err != nil {
			return nil, err
		}
		return &Doc{version: version, oasVersion: ov, v2: d}, nil
	}

	dec := oas3.Decoder{MaxDepth: cfg.maxDepth}
	d, err := dec.Decode(m)
	if err != nil {
		return nil, err
	}
	return &Doc{version: version, oasVersion: ov, v3: d}, nil
}

// detectVersion applies the version dispatch rules to a parsed top-level map.
// A document must carry exactly one of swagger or openapi, as a string, with
// a supported value; every other combination maps to VersionMismatchError or
// UnknownFormatError. No structural decoding happens here.
func detectVersion(m map[string]any) (version string, ov OASVersion, isV2 bool, err error) {
	swaggerRaw, hasSwagger := m["swagger"]
	openapiRaw, hasOpenAPI := m["openapi"]

	switch {
	case hasSwagger && hasOpenAPI:
		return "", Unknown, false, &oaserrors.VersionMismatchError{
			SwaggerValue: swaggerRaw,
			OpenAPIValue: openapiRaw,
			Message:      "document declares both a swagger and an openapi version",
		}

	case !hasSwagger && !hasOpenAPI:
		return "", Unknown, false, &oaserrors.UnknownFormatError{
			Keys:    jsonwire.SortedKeys(m),
			Message: `neither "swagger" nor "openapi" found at the top level`,
		}

	case hasSwagger:
		value, ok := swaggerRaw.(string)
		if !ok {
			return "", Unknown, false, &oaserrors.VersionMismatchError{
				SwaggerValue: swaggerRaw,
				Message:      "swagger version must be a string",
			}
		}
		if sv, ok := ParseVersion(value); !ok || sv != OASVersion20 {
			return "", Unknown, false, &oaserrors.VersionMismatchError{
				SwaggerValue: value,
				Message:      `unsupported swagger version, expected "2.0"`,
			}
		}
		return value, OASVersion20, true, nil

	default:
		value, ok := openapiRaw.(string)
		if !ok {
			return "", Unknown, false, &oaserrors.VersionMismatchError{
				OpenAPIValue: openapiRaw,
				Message:      "openapi version must be a string",
			}
		}
		v, err := parseVersion(value)
		if err != nil || v.major != 3 {
			return "", Unknown, false, &oaserrors.VersionMismatchError{
				OpenAPIValue: value,
				Message:      "unsupported openapi version, expected a 3.x release",
			}
		}
		// Unrecognized 3.x series still decode; OASVersion stays Unknown.
		ov, _ = ParseVersion(value)
		return value, ov, false, nil
	}
}
