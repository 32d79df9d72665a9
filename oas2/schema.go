package oas2

import "encoding/json"

// Schema is the Schema Object: the subset of JSON Schema draft 4 adopted by
// Swagger 2.0, plus the specification's own extensions (discriminator,
// readOnly, xml, externalDocs, example).
type Schema struct {
	Title            *string  `yaml:"title,omitempty" json:"title,omitempty"`
	Description      *string  `yaml:"description,omitempty" json:"description,omitempty"`
	Type             *string  `yaml:"type,omitempty" json:"type,omitempty"`
	Format           *string  `yaml:"format,omitempty" json:"format,omitempty"`
	Default          any      `yaml:"default,omitempty" json:"default,omitempty"`
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum *bool    `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum *bool    `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          *string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      *bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	MaxProperties    *int     `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties    *int     `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	Required         []string `yaml:"required,omitempty" json:"required,omitempty"`
	Enum             []any    `yaml:"enum,omitempty" json:"enum,omitempty"`

	Items                *RefOr[Schema]            `yaml:"items,omitempty" json:"items,omitempty"`
	Properties           map[string]*RefOr[Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties     `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	AllOf                []*RefOr[Schema]          `yaml:"allOf,omitempty" json:"allOf,omitempty"`

	Discriminator *string       `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      *bool         `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	XML           *XML          `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any           `yaml:"example,omitempty" json:"example,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	// and any other fields not explicitly defined in the struct
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AdditionalProperties is the two-variant value of the additionalProperties
// keyword: either a boolean toggle or a schema constraining additional
// members. Exactly one of Allowed and Schema is set.
type AdditionalProperties struct {
	Allowed *bool
	Schema  *RefOr[Schema]
}

// MarshalJSON implements json.Marshaler, emitting whichever variant is set.
func (ap AdditionalProperties) MarshalJSON() ([]byte, error) {
	if ap.Allowed != nil {
		return json.Marshal(*ap.Allowed)
	}
	return json.Marshal(ap.Schema)
}

// MarshalYAML implements yaml.Marshaler, emitting whichever variant is set.
func (ap AdditionalProperties) MarshalYAML() (any, error) {
	if ap.Allowed != nil {
		return *ap.Allowed, nil
	}
	return ap.Schema, nil
}

// UnmarshalJSON implements json.Unmarshaler via the strict decoder.
func (ap *AdditionalProperties) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out, err := decodeAdditionalProperties(newDecodeContext(DefaultMaxDepth), raw, "")
	if err != nil {
		return err
	}
	*ap = *out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict decoder.
func (ap *AdditionalProperties) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	out, err := decodeAdditionalProperties(newDecodeContext(DefaultMaxDepth), raw, "")
	if err != nil {
		return err
	}
	*ap = *out
	return nil
}

// XML adds metadata for XML representations of a model definition
type XML struct {
	Name      *string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace *string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    *string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute *bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   *bool   `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
