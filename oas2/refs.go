package oas2

import (
	"encoding/json"
	"fmt"
)

// Reference represents a JSON Reference object, the only member of the model
// that carries no Extra map: per the JSON Reference rules any keys alongside
// $ref are discarded during decoding.
type Reference struct {
	Ref string `yaml:"$ref" json:"$ref"` // Required
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
	default:
		return fmt.Errorf("oas2: no decoder for %T", r)
	}
	return nil
}
