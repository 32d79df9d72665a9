package oas3

// Paths holds the relative paths to individual endpoints. Path keys always
// begin with a forward slash; specification extensions share the same wire
// object, so the two are kept apart here and rejoined during marshaling.
type Paths struct {
	// Items maps each path template to the operations available on it
	Items map[string]*PathItem `yaml:"-" json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         *string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     *string             `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description *string             `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation          `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation          `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation          `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation          `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation          `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation          `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation          `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation          `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server           `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*RefOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// EachOperation calls fn for every defined operation, in the fixed method
// order get, put, post, delete, options, head, patch, trace.
func (p *PathItem) EachOperation(fn func(method string, op *Operation)) {
	if p == nil {
		return
	}
	for _, m := range []struct {
		name string
		op   *Operation
	}{
		{"get", p.Get}, {"put", p.Put}, {"post", p.Post}, {"delete", p.Delete},
		{"options", p.Options}, {"head", p.Head}, {"patch", p.Patch}, {"trace", p.Trace},
	} {
		if m.op != nil {
			fn(m.name, m.op)
		}
	}
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string                    `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      *string                     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  *string                     `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs               `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  *string                     `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*RefOr[Parameter]         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RefOr[RequestBody]         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *Responses                  `yaml:"responses" json:"responses"`                           // Required
	Callbacks    map[string]*RefOr[Callback] `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   *bool                       `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement       `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server                   `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses lists the possible responses of an operation by status code.
// Status keys must be "default", a three-digit code, or a wildcard range such
// as "2XX"; anything else fails decoding.
type Responses struct {
	// Default documents the response for all codes not listed in Codes
	Default *RefOr[Response] `yaml:"-" json:"-"`
	// Codes maps explicit status codes or ranges to their responses
	Codes map[string]*RefOr[Response] `yaml:"-" json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Description string                    `yaml:"description" json:"description"`             // Required
	Headers     map[string]*RefOr[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType     `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*RefOr[Link]   `yaml:"links,omitempty" json:"links,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Callback maps runtime expressions (such as "{$request.body#/callbackUrl}")
// to the path items describing the out-of-band requests the API will make.
// Expression keys and specification extensions share the same wire object,
// split here and rejoined during marshaling.
type Callback struct {
	// Expressions maps each runtime expression to its path item
	Expressions map[string]*PathItem `yaml:"-" json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// Link represents a design-time link from a response to another operation
type Link struct {
	OperationRef *string        `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  *string        `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  *string        `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
