package oas2

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
	Ref        *string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Get        *Operation          `yaml:"get,omitempty" json:"get,omitempty"`
	Put        *Operation          `yaml:"put,omitempty" json:"put,omitempty"`
	Post       *Operation          `yaml:"post,omitempty" json:"post,omitempty"`
	Delete     *Operation          `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options    *Operation          `yaml:"options,omitempty" json:"options,omitempty"`
	Head       *Operation          `yaml:"head,omitempty" json:"head,omitempty"`
	Patch      *Operation          `yaml:"patch,omitempty" json:"patch,omitempty"`
	Parameters []*RefOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// EachOperation calls fn for every defined operation, in the fixed method
// order get, put, post, delete, options, head, patch.
func (p *PathItem) EachOperation(fn func(method string, op *Operation)) {
	if p == nil {
		return
	}
	for _, m := range []struct {
		name string
		op   *Operation
	}{
		{"get", p.Get}, {"put", p.Put}, {"post", p.Post}, {"delete", p.Delete},
		{"options", p.Options}, {"head", p.Head}, {"patch", p.Patch},
	} {
		if m.op != nil {
			fn(m.name, m.op)
		}
	}
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      *string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  *string               `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  *string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Consumes     []string              `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces     []string              `yaml:"produces,omitempty" json:"produces,omitempty"`
	Parameters   []*RefOr[Parameter]   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses    *Responses            `yaml:"responses" json:"responses"`                           // Required
	Schemes      []string              `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Deprecated   *bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
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
	Description string             `yaml:"description" json:"description"`               // Required
	Schema      *RefOr[Schema]     `yaml:"schema,omitempty" json:"schema,omitempty"`
	Headers     map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Examples    map[string]any     `yaml:"examples,omitempty" json:"examples,omitempty"` // keyed by media type
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
