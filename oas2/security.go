package oas2

// SecurityRequirement lists the security schemes required to execute an
// operation. Each key names a declared security scheme; the value is the list
// of scope names required for execution (empty unless the scheme is oauth2).
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by the operations
type SecurityScheme struct {
	Type             string            `yaml:"type" json:"type"` // Required: "basic", "apiKey", "oauth2"
	Description      *string           `yaml:"description,omitempty" json:"description,omitempty"`
	Name             *string           `yaml:"name,omitempty" json:"name,omitempty"` // apiKey: name of the header or query parameter
	In               *string           `yaml:"in,omitempty" json:"in,omitempty"`     // apiKey: "query" or "header"
	Flow             *string           `yaml:"flow,omitempty" json:"flow,omitempty"` // oauth2: "implicit", "password", "application", "accessCode"
	AuthorizationURL *string           `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         *string           `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"` // oauth2: scope name to short description
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
