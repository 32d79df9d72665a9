package oas3

// MediaType provides the schema and examples for the media type its key names
type MediaType struct {
	Schema   *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding       `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Example represents a reusable example of a schema or parameter value
type Example struct {
	Summary       *string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   *string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any     `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue *string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Encoding defines serialization for a single request body schema property
type Encoding struct {
	ContentType   *string                   `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       map[string]*RefOr[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         *string                   `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                     `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved *bool                     `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
