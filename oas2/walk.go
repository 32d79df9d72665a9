package oas2

import (
	"slices"

	"github.com/erraggy/oasdoc/internal/jsonwire"
)

// WalkSchemas visits every inline Schema Object in doc, calling fn with the
// schema and its JSON path ("definitions.Pet", "paths./pets.get.responses.200.schema").
// Reference variants are skipped, not resolved. The walk covers definitions,
// the parameter and response registries, every path operation, and all nested
// subschemas, in deterministic order. Returning false stops the walk.
func WalkSchemas(doc *Document, fn func(s *Schema, path string) bool) {
	if doc == nil || fn == nil {
		return
	}
	w := &schemaWalker{fn: fn}
	for _, name := range sortedKeys(doc.Definitions) {
		w.walkRef(doc.Definitions[name], jsonwire.FieldPath("definitions", name))
	}
	for _, name := range sortedKeys(doc.Parameters) {
		w.walkParameter(doc.Parameters[name], jsonwire.FieldPath("parameters", name))
	}
	for _, name := range sortedKeys(doc.Responses) {
		w.walkResponse(doc.Responses[name], jsonwire.FieldPath("responses", name))
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
}

func (w *schemaWalker) walkRef(sr *SchemaOrRef, path string) {
	if w.stopped || sr == nil || sr.Value == nil {
		return
	}
	w.visit(sr.Value, path)
}

func (w *schemaWalker) walkParameter(p *Parameter, path string) {
	if w.stopped || p == nil {
		return
	}
	if p.Schema != nil {
		w.walkRef(p.Schema, jsonwire.FieldPath(path, "schema"))
	}
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

func (w *schemaWalker) walkResponse(r *Response, path string) {
	if w.stopped || r == nil {
		return
	}
	if r.Schema != nil {
		w.walkRef(r.Schema, jsonwire.FieldPath(path, "schema"))
	}
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
		w.walkResponses(op.Responses, jsonwire.FieldPath(opPath, "responses"))
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
