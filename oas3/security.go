package oas3

// SecurityRequirement lists the security schemes required to execute an
// operation, mapping scheme names to the scopes needed (empty for non-OAuth2
// schemes)
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme usable by the operations.
//
// Which fields apply depends on Type: apiKey uses Name and In, http uses
// Scheme and BearerFormat, oauth2 uses Flows, and openIdConnect uses
// OpenIDConnectURL.
type SecurityScheme struct {
	Type        string  `yaml:"type" json:"type"` // Required: "apiKey", "http", "oauth2", "openIdConnect"
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type: apiKey
	Name *string `yaml:"name,omitempty" json:"name,omitempty"`
	In   *string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "cookie"

	// Type: http
	Scheme       *string `yaml:"scheme,omitempty" json:"scheme,omitempty"` // e.g., "basic", "bearer"
	BearerFormat *string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`

	// Type: oauth2
	Flows *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`

	// Type: openIdConnect
	OpenIDConnectURL *string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlows configures the OAuth flows supported by a security scheme
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlow configures a single supported OAuth flow
type OAuthFlow struct {
	AuthorizationURL *string           `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         *string           `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       *string           `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"` // Required
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
