package oas3

// Parameter describes a single operation parameter.
//
// The value is described either by Schema (possibly with Style and Explode
// serialization hints) or, for complex serialization, by Content with exactly
// one media type entry.
type Parameter struct {
	Name            string  `yaml:"name" json:"name"`                                           // Required
	In              string  `yaml:"in" json:"in"`                                               // Required: "query", "header", "path", "cookie"
	Description     *string `yaml:"description,omitempty" json:"description,omitempty"`
	Required        *bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      *bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue *bool   `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	Style         *string                    `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                      `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved *bool                      `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       map[string]*MediaType      `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body, keyed by media type
type RequestBody struct {
	Description *string               `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content" json:"content"`                             // Required
	Required    *bool                 `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header describes a single header; it follows the Parameter structure minus
// Name and In, both fixed by the map key and location it appears in.
type Header struct {
	Description     *string `yaml:"description,omitempty" json:"description,omitempty"`
	Required        *bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      *bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue *bool   `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	Style         *string                    `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                      `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved *bool                      `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       map[string]*MediaType      `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
