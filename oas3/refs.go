package oas3

import (
	"encoding/json"
	"fmt"
)

// Reference represents an OpenAPI 3.x Reference Object. Unlike in Swagger 2.0
// a reference may carry its own summary and description, overriding those of
// the referenced component; any other keys alongside $ref are discarded
// during decoding.
type Reference struct {
	Ref         string  `yaml:"$ref" json:"$ref"` // Required
	Summary     *string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
}

// RefOr is a two-variant sum holding either a Reference Object or an inline
// value of type T. After a successful decode exactly one of Ref and Value is
// non-nil. Decoding probes $ref first: an object containing a "$ref" key
// always becomes the reference variant, never a partially filled inline one.
type RefOr[T any] struct {
	Ref   *Reference
	Value *T
}

// SchemaOrRef holds either a Reference Object or an inline Schema Object.
type SchemaOrRef = RefOr[Schema]

// ParameterOrRef holds either a Reference Object or an inline Parameter Object.
type ParameterOrRef = RefOr[Parameter]

// ResponseOrRef holds either a Reference Object or an inline Response Object.
type ResponseOrRef = RefOr[Response]

// ExampleOrRef holds either a Reference Object or an inline Example Object.
type ExampleOrRef = RefOr[Example]

// RequestBodyOrRef holds either a Reference Object or an inline Request Body Object.
type RequestBodyOrRef = RefOr[RequestBody]

// HeaderOrRef holds either a Reference Object or an inline Header Object.
type HeaderOrRef = RefOr[Header]

// SecuritySchemeOrRef holds either a Reference Object or an inline Security Scheme Object.
type SecuritySchemeOrRef = RefOr[SecurityScheme]

// LinkOrRef holds either a Reference Object or an inline Link Object.
type LinkOrRef = RefOr[Link]

// CallbackOrRef holds either a Reference Object or an inline Callback Object.
type CallbackOrRef = RefOr[Callback]

// IsRef reports whether the reference variant is set.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.Ref != nil
}

// RefString returns the reference string, or "" when the inline variant is set.
func (r *RefOr[T]) RefString() string {
	if r == nil || r.Ref == nil {
		return ""
	}
	return r.Ref.Ref
}

// MarshalJSON implements json.Marshaler, emitting whichever variant is set.
func (r RefOr[T]) MarshalJSON() ([]byte, error) {
	if r.Ref != nil {
		return json.Marshal(r.Ref)
	}
	return json.Marshal(r.Value)
}

// MarshalYAML implements yaml.Marshaler, emitting whichever variant is set.
func (r RefOr[T]) MarshalYAML() (any, error) {
	if r.Ref != nil {
		return r.Ref, nil
	}
	return r.Value, nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder, so the
// $ref-first probe and path-bearing errors behave exactly as they do when
// decoding a whole document.
func (r *RefOr[T]) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.decodeAny(raw)
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict decoder.
func (r *RefOr[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return r.decodeAny(raw)
}

func (r *RefOr[T]) decodeAny(raw any) error {
	dc := newDecodeContext(DefaultMaxDepth)
	switch tr := any(r).(type) {
	case *SchemaOrRef:
		out, err := decodeSchemaOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *ParameterOrRef:
		out, err := decodeParameterOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *ResponseOrRef:
		out, err := decodeResponseOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *ExampleOrRef:
		out, err := decodeExampleOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *RequestBodyOrRef:
		out, err := decodeRequestBodyOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *HeaderOrRef:
		out, err := decodeHeaderOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *SecuritySchemeOrRef:
		out, err := decodeSecuritySchemeOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *LinkOrRef:
		out, err := decodeLinkOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	case *CallbackOrRef:
		out, err := decodeCallbackOrRef(dc, raw, "")
		if err != nil {
			return err
		}
		*tr = *out
	default:
		return fmt.Errorf("oas3: no decoder for %T", r)
	}
	return nil
}
