package oas2

import (
	"encoding/json"

	"github.com/erraggy/oasdoc/internal/jsonwire"
)

// marshalWithExtras marshals base (an alias value, so the method set does not
// recurse) and flattens extras into the resulting object. Extension keys
// cannot collide with known fields because the decoder only routes unclaimed
// keys into Extra.
func marshalWithExtras(base any, extras map[string]any) ([]byte, error) {
	data, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return data, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return jsonwire.MarshalWithExtras(m, extras)
}

// rawObject decodes data into the generic map form the strict decoder consumes.
func rawObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtras((*alias)(d), d.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtras((*alias)(i), i.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (c *Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	return marshalWithExtras((*alias)(c), c.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (l *License) MarshalJSON() ([]byte, error) {
	type alias License
	return marshalWithExtras((*alias)(l), l.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (t *Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return marshalWithExtras((*alias)(t), t.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	type alias ExternalDocs
	return marshalWithExtras((*alias)(e), e.Extra)
}

// MarshalJSON implements json.Marshaler, restoring path keys and extensions
// to a single wire object.
func (p *Paths) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Items)+len(p.Extra))
	for k, v := range p.Items {
		m[k] = v
	}
	return jsonwire.MarshalWithExtras(m, p.Extra)
}

// MarshalYAML implements yaml.Marshaler, restoring path keys and extensions
// to a single wire object.
func (p *Paths) MarshalYAML() (any, error) {
	m := make(map[string]any, len(p.Items)+len(p.Extra))
	for k, v := range p.Items {
		m[k] = v
	}
	for k, v := range p.Extra {
		m[k] = v
	}
	return m, nil
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtras((*alias)(p), p.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtras((*alias)(o), o.Extra)
}

// MarshalJSON implements json.Marshaler, restoring default, status-code keys
// and extensions to a single wire object.
func (r *Responses) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Codes)+len(r.Extra)+1)
	if r.Default != nil {
		m["default"] = r.Default
	}
	for k, v := range r.Codes {
		m[k] = v
	}
	return jsonwire.MarshalWithExtras(m, r.Extra)
}

// MarshalYAML implements yaml.Marshaler, restoring default, status-code keys
// and extensions to a single wire object.
func (r *Responses) MarshalYAML() (any, error) {
	m := make(map[string]any, len(r.Codes)+len(r.Extra)+1)
	if r.Default != nil {
		m["default"] = r.Default
	}
	for k, v := range r.Codes {
		m[k] = v
	}
	for k, v := range r.Extra {
		m[k] = v
	}
	return m, nil
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtras((*alias)(r), r.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return marshalWithExtras((*alias)(h), h.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return marshalWithExtras((*alias)(p), p.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (it *Items) MarshalJSON() ([]byte, error) {
	type alias Items
	return marshalWithExtras((*alias)(it), it.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtras((*alias)(s), s.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (x *XML) MarshalJSON() ([]byte, error) {
	type alias XML
	return marshalWithExtras((*alias)(x), x.Extra)
}

// MarshalJSON implements json.Marshaler, flattening Extra into the output.
func (ss *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return marshalWithExtras((*alias)(ss), ss.Extra)
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder, so
// json.Unmarshal into a Document behaves exactly like DecodeMap.
func (d *Document) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	doc, err := DecodeMap(m)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict decoder.
// yaml.Unmarshal wraps any error returned here in its own load-error
// type, which does not unwrap to the oaserrors types; callers that
// need typed errors should unmarshal to a map[string]any and call
// DecodeMap, or load through the oasdoc entry points.
func (d *Document) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[string]any
	if err := unmarshal(&m); err != nil {
		return err
	}
	doc, err := DecodeMap(m)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (i *Info) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeInfo(m, "")
	if err != nil {
		return err
	}
	*i = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (c *Contact) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeContact(m, "")
	if err != nil {
		return err
	}
	*c = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (l *License) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeLicense(m, "")
	if err != nil {
		return err
	}
	*l = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (t *Tag) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeTag(m, "")
	if err != nil {
		return err
	}
	*t = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (e *ExternalDocs) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeExternalDocs(m, "")
	if err != nil {
		return err
	}
	*e = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (p *Paths) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodePaths(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*p = *out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict decoder.
func (p *Paths) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[string]any
	if err := unmarshal(&m); err != nil {
		return err
	}
	out, err := decodePaths(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*p = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (p *PathItem) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodePathItem(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*p = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (o *Operation) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeOperation(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*o = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (r *Responses) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeResponses(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict decoder, so status
// code keys are validated during parsing.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[string]any
	if err := unmarshal(&m); err != nil {
		return err
	}
	out, err := decodeResponses(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (r *Response) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeResponse(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (h *Header) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeHeader(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*h = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeParameter(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*p = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (it *Items) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeItems(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*it = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (s *Schema) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeSchema(newDecodeContext(DefaultMaxDepth), m, "")
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (x *XML) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeXML(m, "")
	if err != nil {
		return err
	}
	*x = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (ss *SecurityScheme) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeSecurityScheme(m, "")
	if err != nil {
		return err
	}
	*ss = *out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder, so an
// object without "$ref" is rejected rather than silently zeroed.
func (r *Reference) UnmarshalJSON(data []byte) error {
	m, err := rawObject(data)
	if err != nil {
		return err
	}
	out, err := decodeReference(m, "")
	if err != nil {
		return err
	}
	*r = *out
	return nil
}
