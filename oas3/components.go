package oas3

// Components holds the reusable objects of the document, each registry keyed
// by component name and referenced elsewhere via "#/components/<kind>/<name>".
// Every registry value may itself be a Reference to another component.
type Components struct {
	Schemas         map[string]*RefOr[Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*RefOr[Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*RefOr[Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*RefOr[Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RefOr[RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*RefOr[Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*RefOr[SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*RefOr[Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*RefOr[Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
