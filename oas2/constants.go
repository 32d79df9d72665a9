package oas2

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInFormData indicates the parameter is passed as form data
	ParamInFormData = "formData"
	// ParamInBody indicates the parameter is the request body payload
	ParamInBody = "body"
)

// Parameter and header type constants (used in Parameter.Type, Items.Type and
// Header.Type fields)
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	// TypeFile is valid only for formData parameters
	TypeFile = "file"
)

// Collection format constants (used in CollectionFormat fields)
const (
	CollectionFormatCSV = "csv"
	CollectionFormatSSV = "ssv"
	CollectionFormatTSV = "tsv"
	// CollectionFormatPipes separates values with the "|" character
	CollectionFormatPipes = "pipes"
	// CollectionFormatMulti repeats the parameter once per value and is valid
	// only for query and formData parameters
	CollectionFormatMulti = "multi"
)

// Security scheme type constants (used in SecurityScheme.Type field)
const (
	SecurityTypeBasic  = "basic"
	SecurityTypeAPIKey = "apiKey"
	SecurityTypeOAuth2 = "oauth2"
)

// OAuth2 flow constants (used in SecurityScheme.Flow field)
const (
	FlowImplicit    = "implicit"
	FlowPassword    = "password"
	FlowApplication = "application"
	FlowAccessCode  = "accessCode"
)
