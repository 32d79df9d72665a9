package oas3

import (
	"slices"

	"github.com/erraggy/oasdoc/internal/jsonwire"
)

// WalkSchemas visits every inline Schema Object in doc, calling fn with the
// schema and its JSON path ("components.schemas.Pet",
// "paths./pets.get.responses.200.content.application/json.schema").
// Reference variants are skipped, not resolved. The walk covers the
// components registries, every path operation including request bodies,
// response headers, media types and callbacks, and all nested subschemas, in
// deterministic order. Returning false stops the walk.
func WalkSchemas(doc *Document, fn func(s *Schema, path string) bool) {
	if doc == nil || fn == nil {
		return
	}
	w := &schemaWalker{fn: fn}
	if c := doc.Components; c != nil {
		for _, name := range sortedKeys(c.Schemas) {
			w.walkRef(c.Schemas[name], jsonwire.FieldPath("components.schemas", name))
		}
		for _, name := range sortedKeys(c.Responses) {
			rr := c.Responses[name]
			if rr == nil || rr.Value == nil {
				continue
			}
			w.walkResponse(rr.Value, jsonwire.FieldPath("components.responses", name))
		}
		for _, name := range sortedKeys(c.Parameters) {
			pr := c.Parameters[name]
			if pr == nil || pr.Value == nil {
				continue
			}
			w.walkParameter(pr.Value, jsonwire.FieldPath("components.parameters", name))
		}
		for _, name := range sortedKeys(c.RequestBodies) {
			br := c.RequestBodies[name]
			if br == nil || br.Value == nil {
				continue
			}
			w.walkRequestBody(br.Value, jsonwire.FieldPath("components.requestBodies", name))
		}
		for _, name := range sortedKeys(c.Headers) {
			hr := c.Headers[name]
			if hr == nil || hr.Value == nil {
				continue
			}
			w.walkHeader(hr.Value, jsonwire.FieldPath("components.headers", name))
		}
		for _, name := range sortedKeys(c.Callbacks) {
			cr := c.Callbacks[name]
			if cr == nil || cr.Value == nil {
				continue
			}
			w.walkCallback(cr.Value, jsonwire.FieldPath("components.callbacks", name))
		}
	}
	if doc.Paths != nil {
		for _, pt := range sortedKeys(doc.Paths.Items) {
			w.walkPathItem(doc.Paths.Items[pt], jsonwire.FieldPath("paths", pt))
		}
	}
}

type schemaWalker struct {
	fn      func(s *Schema, path string) bool
	stopped bool
}

func (w *schemaWalker) visit(s *Schema, path string) {
	if w.stopped || s == nil {
		return
	}
	if !w.fn(s, path) {
		w.stopped = true
		return
	}
	if s.Items != nil {
		w.walkRef(s.Items, jsonwire.FieldPath(path, "items"))
	}
	propsPath := jsonwire.FieldPath(path, "properties")
	for _, k := range sortedKeys(s.Properties) {
		w.walkRef(s.Properties[k], jsonwire.FieldPath(propsPath, k))
	}
	if s.AdditionalProperties != nil {
		w.walkRef(s.AdditionalProperties.Schema, jsonwire.FieldPath(path, "additionalProperties"))
	}
	allOfPath := jsonwire.FieldPath(path, "allOf")
	for i, sub := range s.AllOf {
		w.walkRef(sub, jsonwire.IndexPath(allOfPath, i))
	}
	oneOfPath := jsonwire.FieldPath(path, "oneOf")
	for i, sub := range s.OneOf {
		w.walkRef(sub, jsonwire.IndexPath(oneOfPath, i))
	}
	anyOfPath := jsonwire.FieldPath(path, "anyOf")
	for i, sub := range s.AnyOf {
		w.walkRef(sub, jsonwire.IndexPath(anyOfPath, i))
	}
	if s.Not != nil {
		w.walkRef(s.Not, jsonwire.FieldPath(path, "not"))
	}
}

func (w *schemaWalker) walkRef(sr *SchemaOrRef, path string) {
	if w.stopped || sr == nil || sr.Value == nil {
		return
	}
	w.visit(sr.Value, path)
}

// walkContent visits the schema of each media type entry.
func (w *schemaWalker) walkContent(content map[string]*MediaType, path string) {
	for _, mt := range sortedKeys(content) {
		if w.stopped {
			return
		}
		media := content[mt]
		if media == nil || media.Schema == nil {
			continue
		}
		w.walkRef(media.Schema, jsonwire.FieldPath(jsonwire.FieldPath(path, mt), "schema"))
	}
}

func (w *schemaWalker) walkParameter(p *Parameter, path string) {
	if w.stopped || p == nil {
		return
	}
	if p.Schema != nil {
		w.walkRef(p.Schema, jsonwire.FieldPath(path, "schema"))
	}
	w.walkContent(p.Content, jsonwire.FieldPath(path, "content"))
}

func (w *schemaWalker) walkParameterRefs(params []*ParameterOrRef, path string) {
	for i, pr := range params {
		if w.stopped {
			return
		}
		if pr == nil || pr.Value == nil {
			continue
		}
		w.walkParameter(pr.Value, jsonwire.IndexPath(path, i))
	}
}

func (w *schemaWalker) walkHeader(h *Header, path string) {
	if w.stopped || h == nil {
		return
	}
	if h.Schema != nil {
		w.walkRef(h.Schema, jsonwire.FieldPath(path, "schema"))
	}
	w.walkContent(h.Content, jsonwire.FieldPath(path, "content"))
}

func (w *schemaWalker) walkRequestBody(rb *RequestBody, path string) {
	if w.stopped || rb == nil {
		return
	}
	w.walkContent(rb.Content, jsonwire.FieldPath(path, "content"))
}

func (w *schemaWalker) walkResponse(r *Response, path string) {
	if w.stopped || r == nil {
		return
	}
	headersPath := jsonwire.FieldPath(path, "headers")
	for _, name := range sortedKeys(r.Headers) {
		if w.stopped {
			return
		}
		hr := r.Headers[name]
		if hr == nil || hr.Value == nil {
			continue
		}
		w.walkHeader(hr.Value, jsonwire.FieldPath(headersPath, name))
	}
	w.walkContent(r.Content, jsonwire.FieldPath(path, "content"))
}

func (w *schemaWalker) walkResponses(r *Responses, path string) {
	if w.stopped || r == nil {
		return
	}
	if r.Default != nil && r.Default.Value != nil {
		w.walkResponse(r.Default.Value, jsonwire.FieldPath(path, "default"))
	}
	for _, code := range sortedKeys(r.Codes) {
		if w.stopped {
			return
		}
		rr := r.Codes[code]
		if rr == nil || rr.Value == nil {
			continue
		}
		w.walkResponse(rr.Value, jsonwire.FieldPath(path, code))
	}
}

func (w *schemaWalker) walkCallback(cb *Callback, path string) {
	if w.stopped || cb == nil {
		return
	}
	for _, expr := range sortedKeys(cb.Expressions) {
		if w.stopped {
			return
		}
		w.walkPathItem(cb.Expressions[expr], jsonwire.FieldPath(path, expr))
	}
}

func (w *schemaWalker) walkPathItem(item *PathItem, path string) {
	if w.stopped || item == nil {
		return
	}
	w.walkParameterRefs(item.Parameters, jsonwire.FieldPath(path, "parameters"))
	item.EachOperation(func(method string, op *Operation) {
		if w.stopped {
			return
		}
		opPath := jsonwire.FieldPath(path, method)
		w.walkParameterRefs(op.Parameters, jsonwire.FieldPath(opPath, "parameters"))
		if op.RequestBody != nil && op.RequestBody.Value != nil {
			w.walkRequestBody(op.RequestBody.Value, jsonwire.FieldPath(opPath, "requestBody"))
		}
		w.walkResponses(op.Responses, jsonwire.FieldPath(opPath, "responses"))
		cbPath := jsonwire.FieldPath(opPath, "callbacks")
		for _, name := range sortedKeys(op.Callbacks) {
			if w.stopped {
				return
			}
			cr := op.Callbacks[name]
			if cr == nil || cr.Value == nil {
				continue
			}
			w.walkCallback(cr.Value, jsonwire.FieldPath(cbPath, name))
		}
	})
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
