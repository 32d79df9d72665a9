package oas2

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasdoc/internal/httputil"
	"github.com/erraggy/oasdoc/internal/jsonwire"
	"github.com/erraggy/oasdoc/oaserrors"
)

// DefaultMaxDepth is the nesting ceiling applied when a Decoder does not set
// its own. It bounds recursion through schemas and items so a hostile input
// fails with a SchemaError instead of exhausting the stack.
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
// The swagger discriminant must be present and a string; classifying its
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
		"swagger": true, "info": true, "host": true, "basePath": true,
		"schemes": true, "consumes": true, "produces": true, "paths": true,
		"definitions": true, "parameters": true, "responses": true,
		"securityDefinitions": true, "security": true, "tags": true,
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
	pathItemKeys     = map[string]bool{
		"$ref": true, "get": true, "put": true, "post": true, "delete": true,
		"options": true, "head": true, "patch": true, "parameters": true,
	}
	operationKeys = map[string]bool{
		"tags": true, "summary": true, "description": true, "externalDocs": true,
		"operationId": true, "consumes": true, "produces": true, "parameters": true,
		"responses": true, "schemes": true, "deprecated": true, "security": true,
	}
	constraintKeys = map[string]bool{
		"format": true, "items": true, "collectionFormat": true, "default": true,
		"maximum": true, "exclusiveMaximum": true, "minimum": true,
		"exclusiveMinimum": true, "maxLength": true, "minLength": true,
		"pattern": true, "maxItems": true, "minItems": true, "uniqueItems": true,
		"enum": true, "multipleOf": true,
	}
	parameterKeys = joinKeys(constraintKeys, map[string]bool{
		"name": true, "in": true, "description": true, "required": true,
		"schema": true, "type": true, "allowEmptyValue": true,
	})
	itemsKeys  = joinKeys(constraintKeys, map[string]bool{"type": true})
	headerKeys = joinKeys(constraintKeys, map[string]bool{"description": true, "type": true})
	responseKeys = map[string]bool{
		"description": true, "schema": true, "headers": true, "examples": true,
	}
	schemaKeys = map[string]bool{
		"title": true, "description": true, "type": true, "format": true,
		"default": true, "multipleOf": true, "maximum": true,
		"exclusiveMaximum": true, "minimum": true, "exclusiveMinimum": true,
		"maxLength": true, "minLength": true, "pattern": true, "maxItems": true,
		"minItems": true, "uniqueItems": true, "maxProperties": true,
		"minProperties": true, "required": true, "enum": true, "items": true,
		"properties": true, "additionalProperties": true, "allOf": true,
		"discriminator": true, "readOnly": true, "xml": true,
		"externalDocs": true, "example": true,
	}
	xmlKeys = map[string]bool{
		"name": true, "namespace": true, "prefix": true, "attribute": true,
		"wrapped": true,
	}
	securitySchemeKeys = map[string]bool{
		"type": true, "description": true, "name": true, "in": true,
		"flow": true, "authorizationUrl": true, "tokenUrl": true, "scopes": true,
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
	if doc.Swagger, err = jsonwire.RequiredString(m, "swagger", ""); err != nil {
		return nil, err
	}
	infoMap, err := jsonwire.RequiredObject(m, "info", "")
	if err != nil {
		return nil, err
	}
	if doc.Info, err = decodeInfo(infoMap, "info"); err != nil {
		return nil, err
	}
	if doc.Host, err = jsonwire.String(m, "host", ""); err != nil {
		return nil, err
	}
	if doc.BasePath, err = jsonwire.String(m, "basePath", ""); err != nil {
		return nil, err
	}
	if doc.Schemes, err = jsonwire.StringSlice(m, "schemes", ""); err != nil {
		return nil, err
	}
	if doc.Consumes, err = decodeMediaTypeList(m, "consumes", ""); err != nil {
		return nil, err
	}
	if doc.Produces, err = decodeMediaTypeList(m, "produces", ""); err != nil {
		return nil, err
	}
	pathsMap, err := jsonwire.RequiredObject(m, "paths", "")
	if err != nil {
		return nil, err
	}
	if doc.Paths, err = decodePaths(dc, pathsMap, "paths"); err != nil {
		return nil, err
	}
	if doc.Definitions, err = decodeSchemaOrRefMap(dc, m, "definitions", ""); err != nil {
		return nil, err
	}
	if doc.Parameters, err = decodeParameterMap(dc, m, "parameters", ""); err != nil {
		return nil, err
	}
	if doc.Responses, err = decodeResponseMap(dc, m, "responses", ""); err != nil {
		return nil, err
	}
	if doc.SecurityDefinitions, err = decodeSecuritySchemeMap(m, "securityDefinitions", ""); err != nil {
		return nil, err
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

// decodeMediaTypeList decodes a consumes/produces style list, checking each
// element for media type syntax.
func decodeMediaTypeList(m map[string]any, key, path string) ([]string, error) {
	list, err := jsonwire.StringSlice(m, key, path)
	if err != nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	for i, mt := range list {
		if !httputil.IsValidMediaType(mt) {
			return nil, &oaserrors.SchemaError{
				Path:    jsonwire.IndexPath(keyPath, i),
				Message: fmt.Sprintf("invalid media type %q", mt),
				Value:   mt,
			}
		}
	}
	return list, nil
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

func decodePathItem(dc *decodeContext, m map[string]any, path string) (*PathItem, error) {
	item := &PathItem{}
	var err error
	if item.Ref, err = jsonwire.String(m, "$ref", path); err != nil {
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
	if item.Parameters, err = decodeParameterOrRefSlice(dc, m, "parameters", path); err != nil {
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
	if op.Consumes, err = decodeMediaTypeList(m, "consumes", path); err != nil {
		return nil, err
	}
	if op.Produces, err = decodeMediaTypeList(m, "produces", path); err != nil {
		return nil, err
	}
	if op.Parameters, err = decodeParameterOrRefSlice(dc, m, "parameters", path); err != nil {
		return nil, err
	}
	respMap, err := jsonwire.RequiredObject(m, "responses", path)
	if err != nil {
		return nil, err
	}
	if op.Responses, err = decodeResponses(dc, respMap, jsonwire.FieldPath(path, "responses")); err != nil {
		return nil, err
	}
	if op.Schemes, err = jsonwire.StringSlice(m, "schemes", path); err != nil {
		return nil, err
	}
	if op.Deprecated, err = jsonwire.Bool(m, "deprecated", path); err != nil {
		return nil, err
	}
	if op.Security, err = decodeSecurityRequirements(m, "security", path); err != nil {
		return nil, err
	}
	op.Extra = jsonwire.Extras(m, operationKeys)
	return op, nil
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
	if v, ok := jsonwire.Value(m, "schema"); ok {
		if r.Schema, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	if r.Headers, err = decodeHeaderMap(dc, m, "headers", path); err != nil {
		return nil, err
	}
	exMap, ok, err := jsonwire.Object(m, "examples", path)
	if err != nil {
		return nil, err
	}
	if ok {
		r.Examples = exMap
	}
	r.Extra = jsonwire.Extras(m, responseKeys)
	return r, nil
}

func decodeHeaderMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*Header, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*Header, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		hm, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		h, err := decodeHeader(dc, hm, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = h
	}
	return out, nil
}

func decodeHeader(dc *decodeContext, m map[string]any, path string) (*Header, error) {
	h := &Header{}
	var err error
	if h.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if h.Type, err = jsonwire.RequiredString(m, "type", path); err != nil {
		return nil, err
	}
	if err = checkEnum(h.Type, jsonwire.FieldPath(path, "type"),
		TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray); err != nil {
		return nil, err
	}
	vc, err := decodeValueConstraints(dc, m, path)
	if err != nil {
		return nil, err
	}
	h.Format = vc.Format
	h.Items = vc.Items
	h.CollectionFormat = vc.CollectionFormat
	h.Default = vc.Default
	h.Maximum = vc.Maximum
	h.ExclusiveMaximum = vc.ExclusiveMaximum
	h.Minimum = vc.Minimum
	h.ExclusiveMinimum = vc.ExclusiveMinimum
	h.MaxLength = vc.MaxLength
	h.MinLength = vc.MinLength
	h.Pattern = vc.Pattern
	h.MaxItems = vc.MaxItems
	h.MinItems = vc.MinItems
	h.UniqueItems = vc.UniqueItems
	h.Enum = vc.Enum
	h.MultipleOf = vc.MultipleOf
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
		ParamInQuery, ParamInHeader, ParamInPath, ParamInFormData, ParamInBody); err != nil {
		return nil, err
	}
	if p.Description, err = jsonwire.String(m, "description", path); err != nil {
		return nil, err
	}
	if p.Required, err = jsonwire.Bool(m, "required", path); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "schema"); ok {
		if p.Schema, err = decodeSchemaOrRef(dc, v, jsonwire.FieldPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	if p.Type, err = jsonwire.String(m, "type", path); err != nil {
		return nil, err
	}
	if p.Type != nil {
		if err = checkEnum(*p.Type, jsonwire.FieldPath(path, "type"),
			TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray, TypeFile); err != nil {
			return nil, err
		}
	}
	if p.AllowEmptyValue, err = jsonwire.Bool(m, "allowEmptyValue", path); err != nil {
		return nil, err
	}
	vc, err := decodeValueConstraints(dc, m, path)
	if err != nil {
		return nil, err
	}
	p.Format = vc.Format
	p.Items = vc.Items
	p.CollectionFormat = vc.CollectionFormat
	p.Default = vc.Default
	p.Maximum = vc.Maximum
	p.ExclusiveMaximum = vc.ExclusiveMaximum
	p.Minimum = vc.Minimum
	p.ExclusiveMinimum = vc.ExclusiveMinimum
	p.MaxLength = vc.MaxLength
	p.MinLength = vc.MinLength
	p.Pattern = vc.Pattern
	p.MaxItems = vc.MaxItems
	p.MinItems = vc.MinItems
	p.UniqueItems = vc.UniqueItems
	p.Enum = vc.Enum
	p.MultipleOf = vc.MultipleOf
	p.Extra = jsonwire.Extras(m, parameterKeys)
	return p, nil
}

// valueConstraints is the serialized-value grammar shared by non-body
// Parameters, Items and Headers.
type valueConstraints struct {
	Format           *string
	Items            *Items
	CollectionFormat *string
	Default          any
	Maximum          *float64
	ExclusiveMaximum *bool
	Minimum          *float64
	ExclusiveMinimum *bool
	MaxLength        *int
	MinLength        *int
	Pattern          *string
	MaxItems         *int
	MinItems         *int
	UniqueItems      *bool
	Enum             []any
	MultipleOf       *float64
}

func decodeValueConstraints(dc *decodeContext, m map[string]any, path string) (valueConstraints, error) {
	var vc valueConstraints
	var err error
	if vc.Format, err = jsonwire.String(m, "format", path); err != nil {
		return vc, err
	}
	itemsMap, ok, err := jsonwire.Object(m, "items", path)
	if err != nil {
		return vc, err
	}
	if ok {
		if vc.Items, err = decodeItems(dc, itemsMap, jsonwire.FieldPath(path, "items")); err != nil {
			return vc, err
		}
	}
	if vc.CollectionFormat, err = jsonwire.String(m, "collectionFormat", path); err != nil {
		return vc, err
	}
	vc.Default, _ = jsonwire.Value(m, "default")
	if vc.Maximum, err = jsonwire.Float(m, "maximum", path); err != nil {
		return vc, err
	}
	if vc.ExclusiveMaximum, err = jsonwire.Bool(m, "exclusiveMaximum", path); err != nil {
		return vc, err
	}
	if vc.Minimum, err = jsonwire.Float(m, "minimum", path); err != nil {
		return vc, err
	}
	if vc.ExclusiveMinimum, err = jsonwire.Bool(m, "exclusiveMinimum", path); err != nil {
		return vc, err
	}
	if vc.MaxLength, err = jsonwire.Int(m, "maxLength", path); err != nil {
		return vc, err
	}
	if vc.MinLength, err = jsonwire.Int(m, "minLength", path); err != nil {
		return vc, err
	}
	if vc.Pattern, err = jsonwire.String(m, "pattern", path); err != nil {
		return vc, err
	}
	if vc.MaxItems, err = jsonwire.Int(m, "maxItems", path); err != nil {
		return vc, err
	}
	if vc.MinItems, err = jsonwire.Int(m, "minItems", path); err != nil {
		return vc, err
	}
	if vc.UniqueItems, err = jsonwire.Bool(m, "uniqueItems", path); err != nil {
		return vc, err
	}
	if vc.Enum, err = jsonwire.AnySlice(m, "enum", path); err != nil {
		return vc, err
	}
	if vc.MultipleOf, err = jsonwire.Float(m, "multipleOf", path); err != nil {
		return vc, err
	}
	return vc, nil
}

func decodeItems(dc *decodeContext, m map[string]any, path string) (*Items, error) {
	if err := dc.enter(path); err != nil {
		return nil, err
	}
	defer dc.leave()
	it := &Items{}
	var err error
	if it.Type, err = jsonwire.RequiredString(m, "type", path); err != nil {
		return nil, err
	}
	if err = checkEnum(it.Type, jsonwire.FieldPath(path, "type"),
		TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray); err != nil {
		return nil, err
	}
	vc, err := decodeValueConstraints(dc, m, path)
	if err != nil {
		return nil, err
	}
	it.Format = vc.Format
	it.Items = vc.Items
	it.CollectionFormat = vc.CollectionFormat
	it.Default = vc.Default
	it.Maximum = vc.Maximum
	it.ExclusiveMaximum = vc.ExclusiveMaximum
	it.Minimum = vc.Minimum
	it.ExclusiveMinimum = vc.ExclusiveMinimum
	it.MaxLength = vc.MaxLength
	it.MinLength = vc.MinLength
	it.Pattern = vc.Pattern
	it.MaxItems = vc.MaxItems
	it.MinItems = vc.MinItems
	it.UniqueItems = vc.UniqueItems
	it.Enum = vc.Enum
	it.MultipleOf = vc.MultipleOf
	it.Extra = jsonwire.Extras(m, itemsKeys)
	return it, nil
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
	if s.Properties, err = decodeSchemaOrRefMap(dc, m, "properties", path); err != nil {
		return nil, err
	}
	if v, ok := jsonwire.Value(m, "additionalProperties"); ok {
		if s.AdditionalProperties, err = decodeAdditionalProperties(dc, v, jsonwire.FieldPath(path, "additionalProperties")); err != nil {
			return nil, err
		}
	}
	if s.AllOf, err = decodeSchemaOrRefSlice(dc, m, "allOf", path); err != nil {
		return nil, err
	}
	if s.Discriminator, err = jsonwire.String(m, "discriminator", path); err != nil {
		return nil, err
	}
	if s.ReadOnly, err = jsonwire.Bool(m, "readOnly", path); err != nil {
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
	s.Extra = jsonwire.Extras(m, schemaKeys)
	return s, nil
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

func decodeSecuritySchemeMap(m map[string]any, key, path string) (map[string]*SecurityScheme, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*SecurityScheme, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		sm, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		ss, err := decodeSecurityScheme(sm, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = ss
	}
	return out, nil
}

func decodeSecurityScheme(m map[string]any, path string) (*SecurityScheme, error) {
	ss := &SecurityScheme{}
	var err error
	if ss.Type, err = jsonwire.RequiredString(m, "type", path); err != nil {
		return nil, err
	}
	if err = checkEnum(ss.Type, jsonwire.FieldPath(path, "type"),
		SecurityTypeBasic, SecurityTypeAPIKey, SecurityTypeOAuth2); err != nil {
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
	if ss.In != nil {
		if err = checkEnum(*ss.In, jsonwire.FieldPath(path, "in"), ParamInQuery, ParamInHeader); err != nil {
			return nil, err
		}
	}
	if ss.Flow, err = jsonwire.String(m, "flow", path); err != nil {
		return nil, err
	}
	if ss.Flow != nil {
		if err = checkEnum(*ss.Flow, jsonwire.FieldPath(path, "flow"),
			FlowImplicit, FlowPassword, FlowApplication, FlowAccessCode); err != nil {
			return nil, err
		}
	}
	if ss.AuthorizationURL, err = jsonwire.String(m, "authorizationUrl", path); err != nil {
		return nil, err
	}
	if ss.TokenURL, err = jsonwire.String(m, "tokenUrl", path); err != nil {
		return nil, err
	}
	if ss.Scopes, err = jsonwire.StringMap(m, "scopes", path); err != nil {
		return nil, err
	}
	ss.Extra = jsonwire.Extras(m, securitySchemeKeys)
	return ss, nil
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

func decodeReference(m map[string]any, path string) (*Reference, error) {
	ref, err := jsonwire.RequiredString(m, "$ref", path)
	if err != nil {
		return nil, err
	}
	return &Reference{Ref: ref}, nil
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

func decodeSchemaOrRef(dc *decodeContext, v any, path string) (*SchemaOrRef, error) {
	return decodeRefOr(dc, v, path, decodeSchema)
}

func decodeParameterOrRef(dc *decodeContext, v any, path string) (*ParameterOrRef, error) {
	return decodeRefOr(dc, v, path, decodeParameter)
}

func decodeResponseOrRef(dc *decodeContext, v any, path string) (*ResponseOrRef, error) {
	return decodeRefOr(dc, v, path, decodeResponse)
}

func decodeSchemaOrRefMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*SchemaOrRef, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*SchemaOrRef, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		sr, err := decodeSchemaOrRef(dc, sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = sr
	}
	return out, nil
}

func decodeSchemaOrRefSlice(dc *decodeContext, m map[string]any, key, path string) ([]*SchemaOrRef, error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]*SchemaOrRef, 0, len(arr))
	for i, item := range arr {
		sr, err := decodeSchemaOrRef(dc, item, jsonwire.IndexPath(keyPath, i))
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, nil
}

func decodeParameterOrRefSlice(dc *decodeContext, m map[string]any, key, path string) ([]*ParameterOrRef, error) {
	arr, err := jsonwire.AnySlice(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make([]*ParameterOrRef, 0, len(arr))
	for i, item := range arr {
		pr, err := decodeParameterOrRef(dc, item, jsonwire.IndexPath(keyPath, i))
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

func decodeParameterMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*Parameter, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*Parameter, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		pm, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		p, err := decodeParameter(dc, pm, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = p
	}
	return out, nil
}

func decodeResponseMap(dc *decodeContext, m map[string]any, key, path string) (map[string]*Response, error) {
	sub, ok, err := jsonwire.Object(m, key, path)
	if err != nil || !ok {
		return nil, err
	}
	keyPath := jsonwire.FieldPath(path, key)
	out := make(map[string]*Response, len(sub))
	for _, k := range jsonwire.SortedKeys(sub) {
		rm, err := jsonwire.Obj(sub[k], jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		r, err := decodeResponse(dc, rm, jsonwire.FieldPath(keyPath, k))
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}
