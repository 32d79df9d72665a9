package oas3

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasdoc/internal/httputil"
	"github.com/erraggy/oasdoc/internal/jsonwire"
	"github.com/erraggy/oasdoc/oaserrors"
)

// DefaultMaxDepth is the nesting ceiling applied when a Decoder does not set
// its own. It bounds recursion through schemas, path items and their callback
// cycles so a hostile input fails with a SchemaError instead of exhausting
// the stack.
const DefaultMaxDepth = 100

// Decoder decodes the generic object tree produced by json.Unmarshal or
// yaml.Unmarshal into a Document. The zero value is ready to use.
type Decoder struct {
	// MaxDepth bounds nesting depth during decoding; 0 means DefaultMaxDepth
	MaxDepth int
}

// Decode walks m and returns a fully populated Document, or the first
// structural violation found as a *oaserrors.SchemaError. Decoding is
// all-or-nothing: no partially decoded document is ever returned.
//
// The openapi discriminant must be present and a string; classifying its
// value is the caller's concern.
func (d Decoder) Decode(m map[string]any) (*Document, error) {
	dc := newDecodeContext(d.MaxDepth)
	return decodeDocument(dc, m)
}

// DecodeMap decodes m with default Decoder settings.
func DecodeMap(m map[string]any) (*Document, error) {
	return Decoder{}.Decode(m)
}

// decodeContext tracks recursion depth across one decode pass.
type decodeContext struct {
	maxDepth int
	depth    int
}

func newDecodeContext(maxDepth int) *decodeContext {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &decodeContext{maxDepth: maxDepth}
}

// enter records one level of nesting, failing once the ceiling is crossed.
// Paired with leave so sibling subtrees each get the full budget.
func (dc *decodeContext) enter(path string) error {
	dc.depth++
	if dc.depth > dc.maxDepth {
		return &oaserrors.SchemaError{
			Path:    path,
			Message: fmt.Sprintf("nesting exceeds maximum depth %d", dc.maxDepth),
		}
	}
	return nil
}

func (dc *decodeContext) leave() {
	dc.depth--
}

// checkEnum validates a decoded string against its closed set of values.
func checkEnum(value, path string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return &oaserrors.SchemaError{
		Path:    path,
		Message: fmt.Sprintf("invalid value %q, must be one of: %s", value, strings.Join(allowed, ", ")),
		Value:   value,
	}
}

var (
	documentKeys = map[string]bool{
		"openapi": true, "info": true, "servers": true, "paths": true,
		"components": true, "security": true, "tags": true,
		"externalDocs": true,
	}
	infoKeys = map[string]bool{
		"title": true, "description": true, "termsOfService": true,
		"contact": true, "license": true, "version": true,
	}
	contactKeys      = map[string]bool{"name": true, "url": true, "email": true}
	licenseKeys      = map[string]bool{"name": true, "url": true}
	tagKeys          = map[string]bool{"name": true, "description": true, "externalDocs": true}
	externalDocsKeys = map[string]bool{"description": true, "url": true}
	serverKeys       = map[string]bool{"url": true, "description": true, "variables": true}
	serverVarKeys    = map[string]bool{"enum": true, "default": true, "description": true}
	componentsKeys   = map[string]bool{
		"schemas": true, "responses": true, "parameters": true,
		"examples": true, "requestBodies": true, "headers": true,
		"securitySchemes": true, "links": true, "callbacks": true,
	}
	pathItemKeys = map[string]bool{
		"$ref": true, "summary": true, "description": true,
		"get": true, "put": true, "post": true, "delete": true,
		"options": true, "head": true, "patch": true, "trace": true,
		"servers": true, "parameters": true,
	}
	operationKeys = map[string]bool{
		"tags": true, "summary": true, "description": true, "externalDocs": true,
		"operationId": true, "parameters": true, "requestBody": true,
		"responses": true, "callbacks": true, "deprecated": true,
		"security": true, "servers": true,
	}
	headerKeys = map[string]bool{
		"description": true, "required": true, "deprecated": true,
		"allowEmptyValue": true, "style": true, "explode": true,
		"allowReserved": true, "schema": true, "example": true,
		"examples": true, "content": true,
	}
	parameterKeys   = joinKeys(headerKeys, map[string]bool{"name": true, "in": true})
	requestBodyKeys = map[string]bool{"description": true, "content": true, "required": true}
	responseKeys    = map[string]bool{
		"description": true, "headers": true, "content": true, "links": true,
	}
	mediaTypeKeys = map[string]bool{
		"schema": true, "example": true, "examples": true, "encoding": true,
	}
	encodingKeys = map[string]bool{
		"contentType": true, "headers": true, "style": true, "explode": true,
		"allowReserved": true,
	}
	exampleKeys = map[string]bool{
		"summary": true, "description": true, "value": true, "externalValue": true,
	}
	linkKeys = map[string]bool{
		"operationRef": true, "operationId": true, "parameters": true,
		"requestBody": true, "description": true, "server": true,
	}
	schemaKeys = map[string]bool{
		"title": true, "description": true, "type": true, "format": true,
		"default": true, "multipleOf": true, "maximum": true,
		"exclusiveMaximum": true, "minimum": true, "exclusiveMinimum": true,
		"maxLength": true, "minLength": true, "pattern": true, "maxItems": true,
		"minItems": true, "uniqueItems": true, "maxProperties": true,
		"minProperties": true, "required": true, "enum": true, "items": true,
		"properties": true, "additionalProperties": true, "allOf": true,
		"oneOf": true, "anyOf": true, "not": true, "nullable": true,
		"discriminator": true, "readOnly": true, "writeOnly": true,
		"xml": true, "externalDocs": true, "example": true, "deprecated": true,
	}
	discriminatorKeys = map[string]bool{"propertyName": true, "mapping": true}
	xmlKeys           = map[string]bool{
		"name": true, "namespace": true, "prefix": true, "attribute": true,
		"wrapped": true,
	}
	securitySchemeKeys = map[string]bool{
		"type": true, "description": true, "name": true, "in": true,
		"scheme": true, "bearerFormat": true, "flows": true,
		"openIdConnectUrl": true,
	}
	oauthFlowsKeys = map[string]bool{
		"implicit": true, "password": true, "clientCredentials": true,
		"authorizationCode": true,
	}
	oauthFlowKeys = map[string]bool{
		"authorizationUrl": true, "tokenUrl": true, "refreshUrl": true,
		"scopes": true,
	}
)

func joinKeys(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, set := range sets {
		for k := range set {
			out[k] = true
		}
	}
	return out
}

func decodeDocument(dc *decodeContext, m map[string]any) (*Document, error) {
	doc := &Document{}
	var err error
	if doc.OpenAPI, err = jsonwire.RequiredString(m, "openapi", ""); err != nil {
		return nil, err
	}
	infoMap, err := jsonwire.RequiredObject(m, "info", "")
	if err != nil {
		return nil, err
	}
	if doc.Info, err = decodeInfo(infoMap, "info"); err != nil {
		return nil, err
	}
	if doc.Servers, err = decodeServerSlice(m, "servers", ""); err != nil {
		return nil, err
	}
	pathsMap, err := jsonwire.RequiredObject(m, "paths", "")
	if err != nil {
		return nil, err
	}
	if doc.Paths, err = decodePaths(dc, pathsMap, "paths"); err != nil {
		return nil, err
	}
	compMap, ok, err := jsonwire.Object(m, "components", "")
	if err != nil {
		return nil, err
	}
	if ok {
		if doc.Components, err = decodeComponents(dc, compMap, "components"); err != nil {
			return nil, err
		}
	}
	if doc.Security, err = decodeSecurityRequirements(m, "security", ""); err != nil {
		return nil, err
	}
	if doc.Tags, err = decodeTagSlice(m, "tags", ""); err != nil {
		return nil, err
	}
	docsMap, ok, err := jsonwire.Object(m, "externalDocs", "")
	if err != nil {
		return nil, err
	}
	if ok {
		if doc.ExternalDocs, err = decodeExternalDocs(docsMap, "externalDocs"); err != nil {
			return nil, err
		}
	}
	doc.Extra = jsonwire.Extras(m, documentKeys)
	return doc, nil
}

func decodeInfo(m map[string]any, path string) (*Info, error) {
	info := &Info{}
	var err error
	if info.Title, err = jsonwire.RequiredString(m, "title", path); err != nil {
		return nil, err
	}
	if info.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if info.TermsOfService, err = jsonwire.String(m, "termsOfService", path); err != nil {
		return nil, err
	}
	contactMap, ok, err := jsonwire.Object(m, "contact", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if info.Contact, err = decodeContact(contactMap, jsonwire.FieldPath(path, "contact")); err != nil {
			return nil, err
		}
	}
	licenseMap, ok, err := jsonwire.Object(m, "license", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if info.License, err = decodeLicense(licenseMap, jsonwire.FieldPath(path, "license")); err != nil {
			return nil, err
		}
	}
	if info.Version, err = jsonwire.RequiredString(m, "version", path); err != nil {
		return nil, err
	}
	info.Extra = jsonwire.Extras(m, infoKeys)
	return info, nil
}

func decodeContact(m map[string]any, path string) (*Contact, error) {
	c := &Contact{}
	var err error
	if c.Name, err = jsonwire.String(m, "name", path); err != nil {
		return nil, err
	}
	if c.URL, err = jsonwire.String(m, "url", path); err != nil {
		return nil, err
	}
	if c.Email, err = jsonwire.String(m, "email", path); err != nil {
		return nil, err
	}
	c.Extra = jsonwire.Extras(m, contactKeys)
	return c, nil
}

func decodeLicense(m map[string]any, path string) (*License, error) {
	l := &License{}
	var err error
	if l.Name, err = jsonwire.RequiredString(m, "name", path); err != nil {
		return nil, err
	}
	if l.URL, err = jsonwire.String(m, "url", path); err != nil {
		return nil, err
	}
	l.Extra = jsonwire.Extras(m, licenseKeys)
	return l, nil
}

func decodeExternalDocs(m map[string]any, path string) (*ExternalDocs, error) {
	d := &ExternalDocs{}
	var err error
	if d.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if d.URL, err = jsonwire.RequiredString(m, "url", path); err != nil {
		return nil, err
	}
	d.Extra = jsonwire.Extras(m, externalDocsKeys)
	return d, nil
}

func decodeTagSlice(m map[string]any, key, path string) ([]*Tag, error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]*Tag, 0, len(arr))
	for i, item := range arr {
		itemPath := jsonwire.IndexPath(keyPath, i)
		tm, err := jsonwire.Obj(item, itemPath)
		if err != nil {
			return nil, err
		}
		tag, err := decodeTag(tm, itemPath)
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, nil
}

func decodeTag(m map[string]any, path string) (*Tag, error) {
	t := &Tag{}
	var err error
	if t.Name, err = jsonwire.RequiredString(m, "name", path); err != nil {
		return nil, err
	}
	if t.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	docsMap, ok, err := jsonwire.Object(m, "externalDocs", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if t.ExternalDocs, err = decodeExternalDocs(docsMap, jsonwire.FieldPath(path, "externalDocs")); err != nil {
			return nil, err
		}
	}
	t.Extra = jsonwire.Extras(m, tagKeys)
	return t, nil
}

func decodeServerSlice(m map[string]any, key, path string) ([]*Server, error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]*Server, 0, len(arr))
	for i, item := range arr {
		itemPath := jsonwire.IndexPath(keyPath, i)
		sm, err := jsonwire.Obj(item, itemPath)
		if err != nil {
			return nil, err
		}
		srv, err := decodeServer(sm, itemPath)
		if err != nil {
			return nil, err
		}
		out = append(out, srv)
	}
	return out, nil
}

func decodeServer(m map[string]any, path string) (*Server, error) {
	s := &Server{}
	var err error
	if s.URL, err = jsonwire.RequiredString(m, "url", path); err != nil {
		return nil, err
	}
	if s.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if s.Variables, err = decodeServerVariableMap(m, "variables", path); err != nil {
		return nil, err
	}
	s.Extra = jsonwire.Extras(m, serverKeys)
	return s, nil
}

func decodeServerVariableMap(m map[string]any, key, path string) (map[string]*ServerVariable, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*ServerVariable, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		vm, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		v, err := decodeServerVariable(vm, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func decodeServerVariable(m map[string]any, path string) (*ServerVariable, error) {
	v := &ServerVariable{}
	var err error
	if v.Enum, err = jsonwire.StringSlice(m, "enum", path); err != nil {
		return nil, err
	}
	if v.Default, err = jsonwire.RequiredString(m, "default", path); err != nil {
		return nil, err
	}
	if v.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	v.Extra = jsonwire.Extras(m, serverVarKeys)
	return v, nil
}

func decodeComponents(dc *decodeContext, m map[string]any, path string) (*Components, error) {
	c := &Components{}
	var err error
	if c.Schemas, err = decodeRefOrMap(dc, m, "schemas", path, decodeSchema); err != nil {
		return nil, err
	}
	if c.Responses, err = decodeRefOrMap(dc, m, "responses", path, decodeResponse); err != nil {
		return nil, err
	}
	if c.Parameters, err = decodeRefOrMap(dc, m, "parameters", path, decodeParameter); err != nil {
		return nil, err
	}
	if c.Examples, err = decodeRefOrMap(dc, m, "examples", path, decodeExample); err != nil {
		return nil, err
	}
	if c.RequestBodies, err = decodeRefOrMap(dc, m, "requestBodies", path, decodeRequestBody); err != nil {
		return nil, err
	}
	if c.Headers, err = decodeRefOrMap(dc, m, "headers", path, decodeHeader); err != nil {
		return nil, err
	}
	if c.SecuritySchemes, err = decodeRefOrMap(dc, m, "securitySchemes", path, decodeSecurityScheme); err != nil {
		return nil, err
	}
	if c.Links, err = decodeRefOrMap(dc, m, "links", path, decodeLink); err != nil {
		return nil, err
	}
	if c.Callbacks, err = decodeRefOrMap(dc, m, "callbacks", path, decodeCallback); err != nil {
		return nil, err
	}
	c.Extra = jsonwire.Extras(m, componentsKeys)
	return c, nil
}

func decodePaths(dc *decodeContext, m map[string]any, path string) (*Paths, error) {
	out := &Paths{Items: make(map[string]*PathItem, len(m))}
	for _, k := range jsonwire.SortedKeys(m) {
		keyPath := jsonwire.FieldPath(path, k)
		switch {
		case strings.HasPrefix(k, "/"):
			itemMap, err := jsonwire.Obj(m[k], keyPath)
			if err != nil {
				return nil, err
			}
			item, err := decodePathItem(dc, itemMap, keyPath)
			if err != nil {
				return nil, err
			}
			out.Items[k] = item
		case strings.HasPrefix(k, "x-"):
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[k] = m[k]
		default:
			return nil, &oaserrors.SchemaError{
				Path:    keyPath,
				Message: `path keys must begin with "/"`,
				Value:   k,
			}
		}
	}
	return out, nil
}

// decodePathItem counts against the depth budget because path items recurse
// through operation callbacks.
func decodePathItem(dc *decodeContext, m map[string]any, path string) (*PathItem, error) {
	if err := dc.enter(path); err != nil {
		return nil, err
	}
	defer dc.leave()
	item := &PathItem{}
	var err error
	if item.Ref, err = jsonwire.String(m, "$ref", path); err != nil {
		return nil, err
	}
	if item.Summary, err = jsonwire.String(m, "summary", path); err != nil {
		return nil, err
	}
	if item.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	methods := []struct {
		name   string
		target **Operation
	}{
		{httputil.MethodGet, &item.Get},
		{httputil.MethodPut, &item.Put},
		{httputil.MethodPost, &item.Post},
		{httputil.MethodDelete, &item.Delete},
		{httputil.MethodOptions, &item.Options},
		{httputil.MethodHead, &item.Head},
		{httputil.MethodPatch, &item.Patch},
		{httputil.MethodTrace, &item.Trace},
	}
	for _, method := range methods {
		opMap, ok, err := jsonwire.Object(m, method.name, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		op, err := decodeOperation(dc, opMap, jsonwire.FieldPath(path, method.name))
		if err != nil {
			return nil, err
		}
		*method.target = op
	}
	if item.Servers, err = decodeServerSlice(m, "servers", path); err != nil {
		return nil, err
	}
	if item.Parameters, err = decodeRefOrSlice(dc, m, "parameters", path, decodeParameter); err != nil {
		return nil, err
	}
	item.Extra = jsonwire.Extras(m, pathItemKeys)
	return item, nil
}

func decodeOperation(dc *decodeContext, m map[string]any, path string) (*Operation, error) {
	op := &Operation{}
	var err error
	if op.Tags, err = jsonwire.StringSlice(m, "tags", path); err != nil {
		return nil, err
	}
	if op.Summary, err = jsonwire.String(m, "summary", path); err != nil {
		return nil, err
	}
	if op.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	docsMap, ok, err := jsonwire.Object(m, "externalDocs", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if op.ExternalDocs, err = decodeExternalDocs(docsMap, jsonwire.FieldPath(path, "externalDocs")); err != nil {
			return nil, err
		}
	}
	if op.OperationID, err = jsonwire.String(m, "operationId", path); err != nil {
		return nil, err
	}
	if op.Parameters, err = decodeRefOrSlice(dc, m, "parameters", path, decodeParameter); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "requestBody"); ok {
		if op.RequestBody, err = decodeRequestBodyOrRef(dc, v, jsonwire.FieldPath(path, "requestBody")); err != nil {
			return nil, err
		}
	}
	respMap, err := jsonwire.RequiredObject(m, "responses", path)
	if err != nil {
		return nil, err
	}
	if op.Responses, err = decodeResponses(dc, respMap, jsonwire.FieldPath(path, "responses")); err != nil {
		return nil, err
	}
	if op.Callbacks, err = decodeRefOrMap(dc, m, "callbacks", path, decodeCallback); err != nil {
		return nil, err
	}
	if op.Deprecated, err = jsonwire.Bool(m, "deprecated", path); err != nil {
		return nil, err
	}
	if op.Security, err = decodeSecurityRequirements(m, "security", path); err != nil {
		return nil, err
	}
	if op.Servers, err = decodeServerSlice(m, "servers", path); err != nil {
		return nil, err
	}
	op.Extra = jsonwire.Extras(m, operationKeys)
	return op, nil
}

// decodeCallback treats every non-extension key as a runtime expression
// naming a path item; expressions have no required prefix.
func decodeCallback(dc *decodeContext, m map[string]any, path string) (*Callback, error) {
	cb := &Callback{Expressions: make(map[string]*PathItem, len(m))}
	for _, k := range jsonwire.SortedKeys(m) {
		keyPath := jsonwire.FieldPath(path, k)
		if strings.HasPrefix(k, "x-") {
			if cb.Extra == nil {
				cb.Extra = make(map[string]any)
			}
			cb.Extra[k] = m[k]
			continue
		}
		itemMap, err := jsonwire.Obj(m[k], keyPath)
		if err != nil {
			return nil, err
		}
		item, err := decodePathItem(dc, itemMap, keyPath)
		if err != nil {
			return nil, err
		}
		cb.Expressions[k] = item
	}
	return cb, nil
}

func decodeResponses(dc *decodeContext, m map[string]any, path string) (*Responses, error) {
	out := &Responses{}
	for _, k := range jsonwire.SortedKeys(m) {
		keyPath := jsonwire.FieldPath(path, k)
		switch {
		case k == "default":
			r, err := decodeResponseOrRef(dc, m[k], keyPath)
			if err != nil {
				return nil, err
			}
			out.Default = r
		case strings.HasPrefix(k, "x-"):
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[k] = m[k]
		default:
			if !httputil.ValidateStatusCode(k) {
				return nil, &oaserrors.SchemaError{
					Path:    keyPath,
					Message: "response keys must be a status code, a range like 2XX, or default",
					Value:   k,
				}
			}
			r, err := decodeResponseOrRef(dc, m[k], keyPath)
			if err != nil {
				return nil, err
			}
			if out.Codes == nil {
				out.Codes = make(map[string]*ResponseOrRef)
			}
			out.Codes[k] = r
		}
	}
	return out, nil
}

func decodeResponse(dc *decodeContext, m map[string]any, path string) (*Response, error) {
	r := &Response{}
	var err error
	if r.Description, err = jsonwire.RequiredString(m, "description", path); err != nil {
		return nil, err
	}
	if r.Headers, err = decodeRefOrMap(dc, m, "headers", path, decodeHeader); err != nil {
		return nil, err
	}
	if r.Content, err = decodeMediaTypeMap(dc, m, "content", path); err != nil {
		return nil, err
	}
	if r.Links, err = decodeRefOrMap(dc, m, "links", path, decodeLink); err != nil {
		return nil, err
	}
	r.Extra = jsonwire.Extras(m, responseKeys)
	return r, nil
}

// decodeMediaTypeMap decodes a content map, checking each key for media type
// syntax. Range keys like "text/*" and "*/*" are accepted.
func decodeMediaTypeMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*MediaType, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*MediaType, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		entryPath := jsonwire.FieldPath(keyPath, k)
		if !httputil.IsValidMediaType(k) {
			return nil, &oaserrors.SchemaError{
				Path:    entryPath,
				Message: fmt.Sprintf("invalid media type %q", k),
				Value:   k,
			}
		}
		mm, err := jsonwire.Obj(sub[k], entryPath)
		if err != nil {
			return nil, err
		}
		mt, err := decodeMediaType(dc, mm, entryPath)
		if err != nil {
			return nil, err
		}
		out[k] = mt
	}
	return out, nil
}

func decodeMediaType(dc *decodeContext, m map[string]any, path string) (*MediaType, error) {
	mt := &MediaType{}
	var err error
	if v, ok := jsonwire.Value(m, "schema"); ok {
		if mt.Schema, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	mt.Example, _ = jsonwire.Value(m, "example")
	if mt.Examples, err = decodeRefOrMap(dc, m, "examples", path, decodeExample); err != nil {
		return nil, err
	}
	if mt.Encoding, err = decodeEncodingMap(dc, m, "encoding", path); err != nil {
		return nil, err
	}
	mt.Extra = jsonwire.Extras(m, mediaTypeKeys)
	return mt, nil
}

func decodeEncodingMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*Encoding, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*Encoding, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		em, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		e, err := decodeEncoding(dc, em, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = e
	}
	return out, nil
}

func decodeEncoding(dc *decodeContext, m map[string]any, path string) (*Encoding, error) {
	e := &Encoding{}
	var err error
	if e.ContentType, err = jsonwire.String(m, "contentType", path); err != nil {
		return nil, err
	}
	if e.Headers, err = decodeRefOrMap(dc, m, "headers", path, decodeHeader); err != nil {
		return nil, err
	}
	if e.Style, err = jsonwire.String(m, "style", path); err != nil {
		return nil, err
	}
	if e.Explode, err = jsonwire.Bool(m, "explode", path); err != nil {
		return nil, err
	}
	if e.AllowReserved, err = jsonwire.Bool(m, "allowReserved", path); err != nil {
		return nil, err
	}
	e.Extra = jsonwire.Extras(m, encodingKeys)
	return e, nil
}

func decodeExample(dc *decodeContext, m map[string]any, path string) (*Example, error) {
	ex := &Example{}
	var err error
	if ex.Summary, err = jsonwire.String(m, "summary", path); err != nil {
		return nil, err
	}
	if ex.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	ex.Value, _ = jsonwire.Value(m, "value")
	if ex.ExternalValue, err = jsonwire.String(m, "externalValue", path); err != nil {
		return nil, err
	}
	ex.Extra = jsonwire.Extras(m, exampleKeys)
	return ex, nil
}

func decodeLink(dc *decodeContext, m map[string]any, path string) (*Link, error) {
	l := &Link{}
	var err error
	if l.OperationRef, err = jsonwire.String(m, "operationRef", path); err != nil {
		return nil, err
	}
	if l.OperationID, err = jsonwire.String(m, "operationId", path); err != nil {
		return nil, err
	}
	paramsMap, ok, err := jsonwire.Object(m, "parameters", path)
	if err != nil {
		return nil, err
	}
	if ok {
		l.Parameters = paramsMap
	}
	l.RequestBody, _ = jsonwire.Value(m, "requestBody")
	if l.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	serverMap, ok, err := jsonwire.Object(m, "server", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if l.Server, err = decodeServer(serverMap, jsonwire.FieldPath(path, "server")); err != nil {
			return nil, err
		}
	}
	l.Extra = jsonwire.Extras(m, linkKeys)
	return l, nil
}

func decodeHeader(dc *decodeContext, m map[string]any, path string) (*Header, error) {
	h := &Header{}
	var err error
	if h.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if h.Required, err = jsonwire.Bool(m, "required", path); err != nil {
		return nil, err
	}
	if h.Deprecated, err = jsonwire.Bool(m, "deprecated", path); err != nil {
		return nil, err
	}
	if h.AllowEmptyValue, err = jsonwire.Bool(m, "allowEmptyValue", path); err != nil {
		return nil, err
	}
	if h.Style, err = jsonwire.String(m, "style", path); err != nil {
		return nil, err
	}
	if h.Explode, err = jsonwire.Bool(m, "explode", path); err != nil {
		return nil, err
	}
	if h.AllowReserved, err = jsonwire.Bool(m, "allowReserved", path); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "schema"); ok {
		if h.Schema, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	h.Example, _ = jsonwire.Value(m, "example")
	if h.Examples, err = decodeRefOrMap(dc, m, "examples", path, decodeExample); err != nil {
		return nil, err
	}
	if h.Content, err = decodeMediaTypeMap(dc, m, "content", path); err != nil {
		return nil, err
	}
	h.Extra = jsonwire.Extras(m, headerKeys)
	return h, nil
}

func decodeParameter(dc *decodeContext, m map[string]any, path string) (*Parameter, error) {
	p := &Parameter{}
	var err error
	if p.Name, err = jsonwire.RequiredString(m, "name", path); err != nil {
		return nil, err
	}
	if p.In, err = jsonwire.RequiredString(m, "in", path); err != nil {
		return nil, err
	}
	if err = checkEnum(p.In, jsonwire.FieldPath(path, "in"),
		ParamInQuery, ParamInHeader, ParamInPath, ParamInCookie); err != nil {
		return nil, err
	}
	if p.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if p.Required, err = jsonwire.Bool(m, "required", path); err != nil {
		return nil, err
	}
	if p.Deprecated, err = jsonwire.Bool(m, "deprecated", path); err != nil {
		return nil, err
	}
	if p.AllowEmptyValue, err = jsonwire.Bool(m, "allowEmptyValue", path); err != nil {
		return nil, err
	}
	if p.Style, err = jsonwire.String(m, "style", path); err != nil {
		return nil, err
	}
	if p.Explode, err = jsonwire.Bool(m, "explode", path); err != nil {
		return nil, err
	}
	if p.AllowReserved, err = jsonwire.Bool(m, "allowReserved", path); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "schema"); ok {
		if p.Schema, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	p.Example, _ = jsonwire.Value(m, "example")
	if p.Examples, err = decodeRefOrMap(dc, m, "examples", path, decodeExample); err != nil {
		return nil, err
	}
	if p.Content, err = decodeMediaTypeMap(dc, m, "content", path); err != nil {
		return nil, err
	}
	p.Extra = jsonwire.Extras(m, parameterKeys)
	return p, nil
}

func decodeRequestBody(dc *decodeContext, m map[string]any, path string) (*RequestBody, error) {
	rb := &RequestBody{}
	var err error
	if rb.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if _, ok := jsonwire.Value(m, "content"); !ok {
		return nil, jsonwire.Missing(path, "content")
	}
	if rb.Content, err = decodeMediaTypeMap(dc, m, "content", path); err != nil {
		return nil, err
	}
	if rb.Required, err = jsonwire.Bool(m, "required", path); err != nil {
		return nil, err
	}
	rb.Extra = jsonwire.Extras(m, requestBodyKeys)
	return rb, nil
}

func decodeSchema(dc *decodeContext, m map[string]any, path string) (*Schema, error) {
	if err := dc.enter(path); err != nil {
		return nil, err
	}
	defer dc.leave()
	s := &Schema{}
	var err error
	if s.Title, err = jsonwire.String(m, "title", path); err != nil {
		return nil, err
	}
	if s.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if s.Type, err = jsonwire.String(m, "type", path); err != nil {
		return nil, err
	}
	if s.Format, err = jsonwire.String(m, "format", path); err != nil {
		return nil, err
	}
	s.Default, _ = jsonwire.Value(m, "default")
	if s.MultipleOf, err = jsonwire.Float(m, "multipleOf", path); err != nil {
		return nil, err
	}
	if s.Maximum, err = jsonwire.Float(m, "maximum", path); err != nil {
		return nil, err
	}
	if s.ExclusiveMaximum, err = jsonwire.Bool(m, "exclusiveMaximum", path); err != nil {
		return nil, err
	}
	if s.Minimum, err = jsonwire.Float(m, "minimum", path); err != nil {
		return nil, err
	}
	if s.ExclusiveMinimum, err = jsonwire.Bool(m, "exclusiveMinimum", path); err != nil {
		return nil, err
	}
	if s.MaxLength, err = jsonwire.Int(m, "maxLength", path); err != nil {
		return nil, err
	}
	if s.MinLength, err = jsonwire.Int(m, "minLength", path); err != nil {
		return nil, err
	}
	if s.Pattern, err = jsonwire.String(m, "pattern", path); err != nil {
		return nil, err
	}
	if s.MaxItems, err = jsonwire.Int(m, "maxItems", path); err != nil {
		return nil, err
	}
	if s.MinItems, err = jsonwire.Int(m, "minItems", path); err != nil {
		return nil, err
	}
	if s.UniqueItems, err = jsonwire.Bool(m, "uniqueItems", path); err != nil {
		return nil, err
	}
	if s.MaxProperties, err = jsonwire.Int(m, "maxProperties", path); err != nil {
		return nil, err
	}
	if s.MinProperties, err = jsonwire.Int(m, "minProperties", path); err != nil {
		return nil, err
	}
	if s.Required, err = jsonwire.StringSlice(m, "required", path); err != nil {
		return nil, err
	}
	if s.Enum, err = jsonwire.AnySlice(m, "enum", path); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "items"); ok {
		if s.Items, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "items")); err != nil {
			return nil, err
		}
	}
	if s.Properties, err = decodeRefOrMap(dc, m, "properties", path, decodeSchema); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "additionalProperties"); ok {
		if s.AdditionalProperties, err = decodeAdditionalProperties(dc, v, jsonwire.FieldPath(path, "additionalProperties")); err != nil {
			return nil, err
		}
	}
	if s.AllOf, err = decodeRefOrSlice(dc, m, "allOf", path, decodeSchema); err != nil {
		return nil, err
	}
	if s.OneOf, err = decodeRefOrSlice(dc, m, "oneOf", path, decodeSchema); err != nil {
		return nil, err
	}
	if s.AnyOf, err = decodeRefOrSlice(dc, m, "anyOf", path, decodeSchema); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "not"); ok {
		if s.Not, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "not")); err != nil {
			return nil, err
		}
	}
	if s.Nullable, err = jsonwire.Bool(m, "nullable", path); err != nil {
		return nil, err
	}
	discMap, ok, err := jsonwire.Object(m, "discriminator", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if s.Discriminator, err = decodeDiscriminator(discMap, jsonwire.FieldPath(path, "discriminator")); err != nil {
			return nil, err
		}
	}
	if s.ReadOnly, err = jsonwire.Bool(m, "readOnly", path); err != nil {
		return nil, err
	}
	if s.WriteOnly, err = jsonwire.Bool(m, "writeOnly", path); err != nil {
		return nil, err
	}
	xmlMap, ok, err := jsonwire.Object(m, "xml", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if s.XML, err = decodeXML(xmlMap, jsonwire.FieldPath(path, "xml")); err != nil {
			return nil, err
		}
	}
	docsMap, ok, err := jsonwire.Object(m, "externalDocs", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if s.ExternalDocs, err = decodeExternalDocs(docsMap, jsonwire.FieldPath(path, "externalDocs")); err != nil {
			return nil, err
		}
	}
	s.Example, _ = jsonwire.Value(m, "example")
	if s.Deprecated, err = jsonwire.Bool(m, "deprecated", path); err != nil {
		return nil, err
	}
	s.Extra = jsonwire.Extras(m, schemaKeys)
	return s, nil
}

func decodeDiscriminator(m map[string]any, path string) (*Discriminator, error) {
	d := &Discriminator{}
	var err error
	if d.PropertyName, err = jsonwire.RequiredString(m, "propertyName", path); err != nil {
		return nil, err
	}
	if d.Mapping, err = jsonwire.StringMap(m, "mapping", path); err != nil {
		return nil, err
	}
	d.Extra = jsonwire.Extras(m, discriminatorKeys)
	return d, nil
}

func decodeXML(m map[string]any, path string) (*XML, error) {
	x := &XML{}
	var err error
	if x.Name, err = jsonwire.String(m, "name", path); err != nil {
		return nil, err
	}
	if x.Namespace, err = jsonwire.String(m, "namespace", path); err != nil {
		return nil, err
	}
	if x.Prefix, err = jsonwire.String(m, "prefix", path); err != nil {
		return nil, err
	}
	if x.Attribute, err = jsonwire.Bool(m, "attribute", path); err != nil {
		return nil, err
	}
	if x.Wrapped, err = jsonwire.Bool(m, "wrapped", path); err != nil {
		return nil, err
	}
	x.Extra = jsonwire.Extras(m, xmlKeys)
	return x, nil
}

func decodeAdditionalProperties(dc *decodeContext, v any, path string) (*AdditionalProperties, error) {
	switch t := v.(type) {
	case bool:
		return &AdditionalProperties{Allowed: &t}, nil
	case map[string]any:
		sr, err := decodeSchemaOrRef(dc, t, path)
		if err != nil {
			return nil, err
		}
		return &AdditionalProperties{Schema: sr}, nil
	default:
		return nil, jsonwire.WrongType(path, "boolean or object", v)
	}
}

func decodeSecurityScheme(dc *decodeContext, m map[string]any, path string) (*SecurityScheme, error) {
	ss := &SecurityScheme{}
	var err error
	if ss.Type, err = jsonwire.RequiredString(m, "type", path); err != nil {
		return nil, err
	}
	if err = checkEnum(ss.Type, jsonwire.FieldPath(path, "type"),
		SecurityTypeAPIKey, SecurityTypeHTTP, SecurityTypeOAuth2, SecurityTypeOpenIDConnect); err != nil {
		return nil, err
	}
	if ss.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if ss.Name, err = jsonwire.String(m, "name", path); err != nil {
		return nil, err
	}
	if ss.In, err = jsonwire.String(m, "in", path); err != nil {
		return nil, err
	}
	if ss.Scheme, err = jsonwire.String(m, "scheme", path); err != nil {
		return nil, err
	}
	if ss.BearerFormat, err = jsonwire.String(m, "bearerFormat", path); err != nil {
		return nil, err
	}
	flowsMap, ok, err := jsonwire.Object(m, "flows", path)
	if err != nil {
		return nil, err
	}
	if ok {
		if ss.Flows, err = decodeOAuthFlows(flowsMap, jsonwire.FieldPath(path, "flows")); err != nil {
			return nil, err
		}
	}
	if ss.OpenIDConnectURL, err = jsonwire.String(m, "openIdConnectUrl", path); err != nil {
		return nil, err
	}
	ss.Extra = jsonwire.Extras(m, securitySchemeKeys)
	return ss, nil
}

func decodeOAuthFlows(m map[string]any, path string) (*OAuthFlows, error) {
	flows := &OAuthFlows{}
	kinds := []struct {
		name   string
		target **OAuthFlow
	}{
		{"implicit", &flows.Implicit},
		{"password", &flows.Password},
		{"clientCredentials", &flows.ClientCredentials},
		{"authorizationCode", &flows.AuthorizationCode},
	}
	for _, kind := range kinds {
		flowMap, ok, err := jsonwire.Object(m, kind.name, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		flow, err := decodeOAuthFlow(flowMap, jsonwire.FieldPath(path, kind.name))
		if err != nil {
			return nil, err
		}
		*kind.target = flow
	}
	flows.Extra = jsonwire.Extras(m, oauthFlowsKeys)
	return flows, nil
}

func decodeOAuthFlow(m map[string]any, path string) (*OAuthFlow, error) {
	flow := &OAuthFlow{}
	var err error
	if flow.AuthorizationURL, err = jsonwire.String(m, "authorizationUrl", path); err != nil {
		return nil, err
	}
	if flow.TokenURL, err = jsonwire.String(m, "tokenUrl", path); err != nil {
		return nil, err
	}
	if flow.RefreshURL, err = jsonwire.String(m, "refreshUrl", path); err != nil {
		return nil, err
	}
	if flow.Scopes, err = jsonwire.RequiredStringMap(m, "scopes", path); err != nil {
		return nil, err
	}
	flow.Extra = jsonwire.Extras(m, oauthFlowKeys)
	return flow, nil
}

func decodeSecurityRequirements(m map[string]any, key, path string) ([]SecurityRequirement, error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]SecurityRequirement, 0, len(arr))
	for i, item := range arr {
		itemPath := jsonwire.IndexPath(keyPath, i)
		obj, err := jsonwire.Obj(item, itemPath)
		if err != nil {
			return nil, err
		}
		req := make(SecurityRequirement, len(obj))
		for _, name := range jsonwire.SortedKeys(obj) {
			scopes, err := jsonwire.StringSlice(obj, name, itemPath)
			if err != nil {
				return nil, err
			}
			req[name] = scopes
		}
		out = append(out, req)
	}
	return out, nil
}

// decodeReference reads $ref along with the sibling summary and description
// a 3.x reference may carry; all other sibling keys are discarded.
func decodeReference(m map[string]any, path string) (*Reference, error) {
	ref := &Reference{}
	var err error
	if ref.Ref, err = jsonwire.RequiredString(m, "$ref", path); err != nil {
		return nil, err
	}
	if ref.Summary, err = jsonwire.String(m, "summary", path); err != nil {
		return nil, err
	}
	if ref.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	return ref, nil
}

// decodeRefOr probes the $ref key first; only when it is absent does the
// inline decoder run.
func decodeRefOr[T any](dc *decodeContext, v any, path string, inline func(*decodeContext, map[string]any, string) (*T, error)) (*RefOr[T], error) {
	m, err := jsonwire.Obj(v, path)
	if err != nil {
		return nil, err
	}
	if _, ok := m["$ref"]; ok {
		ref, err := decodeReference(m, path)
		if err != nil {
			return nil, err
		}
		return &RefOr[T]{Ref: ref}, nil
	}
	val, err := inline(dc, m, path)
	if err != nil {
		return nil, err
	}
	return &RefOr[T]{Value: val}, nil
}

// decodeRefOrMap decodes an optional object whose values are all
// reference-or-inline, such as a components registry.
func decodeRefOrMap[T any](dc *decodeContext, m map[string]any, key, path string, inline func(*decodeContext, map[string]any, string) (*T, error)) (map[string]*RefOr[T], error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*RefOr[T], len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		r, err := decodeRefOr(dc, sub[k], jsonwire.FieldPath(keyPath, k), inline)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}

// decodeRefOrSlice decodes an optional array whose elements are all
// reference-or-inline, such as a parameter list or allOf.
func decodeRefOrSlice[T any](dc *decodeContext, m map[string]any, key, path string, inline func(*decodeContext, map[string]any, string) (*T, error)) ([]*RefOr[T], error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]*RefOr[T], 0, len(arr))
	for i, item := range arr {
		r, err := decodeRefOr(dc, item, jsonwire.IndexPath(keyPath, i), inline)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeSchemaOrRef(dc *decodeContext, v any, path string) (*SchemaOrRef, error) {
	return decodeRefOr(dc, v, path, decodeSchema)
}

func decodeParameterOrRef(dc *decodeContext, v any, path string) (*ParameterOrRef, error) {
	return decodeRefOr(dc, v, path, decodeParameter)
}

func decodeResponseOrRef(dc *decodeContext, v any, path string) (*ResponseOrRef, error) {
	return decodeRefOr(dc, v, path, decodeResponse)
}

func decodeExampleOrRef(dc *decodeContext, v any, path string) (*ExampleOrRef, error) {
	return decodeRefOr(dc, v, path, decodeExample)
}

func decodeRequestBodyOrRef(dc *decodeContext, v any, path string) (*RequestBodyOrRef, error) {
	return decodeRefOr(dc, v, path, decodeRequestBody)
}

func decodeHeaderOrRef(dc *decodeContext, v any, path string) (*HeaderOrRef, error) {
	return decodeRefOr(dc, v, path, decodeHeader)
}

func decodeSecuritySchemeOrRef(dc *decodeContext, v any, path string) (*SecuritySchemeOrRef, error) {
	return decodeRefOr(dc, v, path, decodeSecurityScheme)
}

func decodeLinkOrRef(dc *decodeContext, v any, path string) (*LinkOrRef, error) {
	return decodeRefOr(dc, v, path, decodeLink)
}

func decodeCallbackOrRef(dc *decodeContext, v any, path string) (*CallbackOrRef, error) {
	return decodeRefOr(dc, v, path, decodeCallback)
}
