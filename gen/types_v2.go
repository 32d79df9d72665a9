// This file emits Go type declarations from Swagger 2.0 definitions.

package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/oasdoc/oas2"
)

// v2Emitter generates type declarations from a Swagger 2.0 document.
type v2Emitter struct {
	opts Options
	doc  *oas2.Document
	buf  bytes.Buffer
	// typeNames maps definition references to generated type names.
	typeNames map[string]string
}

func (e *v2Emitter) emit() []byte {
	names := e.collect()

	e.buf.WriteString("// Code generated by oasdoc. DO NOT EDIT.\n\n")
	fmt.Fprintf(&e.buf, "package %s\n", e.opts.PackageName)

	for _, name := range names {
		e.buf.WriteString("\n")
		e.emitType(name, e.doc.Definitions[name])
	}
	return e.buf.Bytes()
}

// collect indexes the named definitions and returns their names sorted for
// deterministic output. Names that collide after conversion gain a numeric
// suffix.
func (e *v2Emitter) collect() []string {
	e.typeNames = make(map[string]string)
	if len(e.doc.Definitions) == 0 {
		return nil
	}

	names := make([]string, 0, len(e.doc.Definitions))
	for name, sor := range e.doc.Definitions {
		if sor == nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	used := make(map[string]int)
	for _, name := range names {
		base := toTypeName(name)
		typeName := base
		if n := used[base]; n > 0 {
			typeName = fmt.Sprintf("%s%d", base, n+1)
		}
		used[base]++
		e.typeNames["#/definitions/"+name] = typeName
	}
	return names
}

func (e *v2Emitter) typeName(name string) string {
	return e.typeNames["#/definitions/"+name]
}

func (e *v2Emitter) emitType(name string, sor *oas2.SchemaOrRef) {
	typeName := e.typeName(name)

	if sor.IsRef() {
		target := e.resolveRef(sor.RefString())
		fmt.Fprintf(&e.buf, "// %s is an alias for %s.\n", typeName, target)
		fmt.Fprintf(&e.buf, "type %s = %s\n", typeName, target)
		return
	}

	s := sor.Value
	switch schemaKindV2(s) {
	case "object":
		e.emitStruct(typeName, s)
	case "array":
		e.comment(typeName, strVal(s.Description))
		fmt.Fprintf(&e.buf, "type %s []%s\n", typeName, e.arrayItemType(s))
	case "string":
		if len(s.Enum) > 0 {
			e.emitEnum(typeName, s)
			return
		}
		e.emitScalarAlias(typeName, stringGoType(strVal(s.Format)), s)
	case "integer":
		e.emitScalarAlias(typeName, integerGoType(strVal(s.Format)), s)
	case "number":
		e.emitScalarAlias(typeName, numberGoType(strVal(s.Format)), s)
	case "boolean":
		e.emitScalarAlias(typeName, "bool", s)
	default:
		if len(s.AllOf) > 0 {
			e.emitAllOf(typeName, s)
			return
		}
		e.emitScalarAlias(typeName, "any", s)
	}
}

func (e *v2Emitter) emitStruct(typeName string, s *oas2.Schema) {
	e.comment(typeName, strVal(s.Description))
	fmt.Fprintf(&e.buf, "type %s struct {\n", typeName)

	props := make([]string, 0, len(s.Properties))
	for prop := range s.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	// Properties like "@id" and "id" convert to the same field name; later
	// ones gain a numeric suffix.
	used := make(map[string]int)
	for _, prop := range props {
		ps := s.Properties[prop]
		if ps == nil {
			continue
		}
		required := isRequired(s.Required, prop)
		goType := e.schemaToGoType(ps, required)

		// Self-referential fields need pointer indirection to keep the
		// struct finite.
		if e.isSelfReference(ps, typeName) &&
			!strings.HasPrefix(goType, "*") && !strings.HasPrefix(goType, "[]") {
			goType = "*" + goType
		}

		base := toFieldName(prop)
		fieldName := base
		if n := used[base]; n > 0 {
			fieldName = fmt.Sprintf("%s%d", base, n+1)
		}
		used[base]++

		tag := prop
		if !required {
			tag += ",omitempty"
		}

		if ps.Value != nil && ps.Value.Description != nil {
			fmt.Fprintf(&e.buf, "\t// %s\n", cleanDescription(*ps.Value.Description))
		}
		fmt.Fprintf(&e.buf, "\t%s %s `json:\"%s\"`\n", fieldName, goType, tag)
	}

	if addl := e.structAdditionalType(s); addl != "" {
		if len(props) > 0 {
			e.buf.WriteString("\n")
		}
		e.buf.WriteString("\t// AdditionalProperties collects members beyond the declared properties.\n")
		fmt.Fprintf(&e.buf, "\tAdditionalProperties map[string]%s `json:\"-\"`\n", addl)
	}

	e.buf.WriteString("}\n")
}

func (e *v2Emitter) emitEnum(typeName string, s *oas2.Schema) {
	e.comment(typeName, strVal(s.Description))
	fmt.Fprintf(&e.buf, "type %s string\n\n", typeName)
	e.buf.WriteString("const (\n")
	for _, v := range s.Enum {
		val := fmt.Sprintf("%v", v)
		fmt.Fprintf(&e.buf, "\t%s%s %s = %q\n", typeName, toFieldName(val), typeName, val)
	}
	e.buf.WriteString(")\n")
}

func (e *v2Emitter) emitScalarAlias(typeName, goType string, s *oas2.Schema) {
	e.comment(typeName, strVal(s.Description))
	fmt.Fprintf(&e.buf, "type %s = %s\n", typeName, goType)
}

// emitAllOf flattens an allOf composition into a struct: referenced schemas
// become embedded types and inline object members become fields.
func (e *v2Emitter) emitAllOf(typeName string, s *oas2.Schema) {
	e.comment(typeName, strVal(s.Description))
	fmt.Fprintf(&e.buf, "type %s struct {\n", typeName)

	for _, sub := range s.AllOf {
		if sub == nil {
			continue
		}
		if sub.IsRef() {
			fmt.Fprintf(&e.buf, "\t%s\n", e.resolveRef(sub.RefString()))
			continue
		}
		if sub.Value == nil || sub.Value.Properties == nil {
			continue
		}
		props := make([]string, 0, len(sub.Value.Properties))
		for prop := range sub.Value.Properties {
			props = append(props, prop)
		}
		sort.Strings(props)
		for _, prop := range props {
			ps := sub.Value.Properties[prop]
			if ps == nil {
				continue
			}
			required := isRequired(sub.Value.Required, prop)
			tag := prop
			if !required {
				tag += ",omitempty"
			}
			fmt.Fprintf(&e.buf, "\t%s %s `json:\"%s\"`\n", toFieldName(prop), e.schemaToGoType(ps, required), tag)
		}
	}

	e.buf.WriteString("}\n")
}

// comment writes a doc comment when the schema carries a description.
func (e *v2Emitter) comment(typeName, desc string) {
	if desc == "" {
		return
	}
	fmt.Fprintf(&e.buf, "// %s %s\n", typeName, cleanDescription(desc))
}

// schemaToGoType converts a property schema to the Go type used for its
// struct field.
func (e *v2Emitter) schemaToGoType(sor *oas2.SchemaOrRef, required bool) string {
	if sor == nil {
		return "any"
	}
	if sor.IsRef() {
		refType := e.resolveRef(sor.RefString())
		if !required && e.opts.UsePointers {
			return "*" + refType
		}
		return refType
	}

	s := sor.Value
	var goType string
	switch schemaKindV2(s) {
	case "string":
		goType = stringGoType(strVal(s.Format))
	case "integer":
		goType = integerGoType(strVal(s.Format))
	case "number":
		goType = numberGoType(strVal(s.Format))
	case "boolean":
		goType = "bool"
	case "array":
		goType = "[]" + e.arrayItemType(s)
	case "object":
		if s.Properties == nil && s.AdditionalProperties != nil {
			goType = "map[string]" + e.additionalPropertiesType(s)
		} else {
			// Nested inline objects flatten to maps; only named schemas
			// become structs.
			goType = "map[string]any"
		}
	default:
		goType = "any"
	}

	if !required && e.opts.UsePointers &&
		!strings.HasPrefix(goType, "[]") && !strings.HasPrefix(goType, "map") {
		return "*" + goType
	}
	return goType
}

// arrayItemType extracts the Go element type for an array schema.
func (e *v2Emitter) arrayItemType(s *oas2.Schema) string {
	if s.Items == nil {
		return "any"
	}
	if s.Items.IsRef() {
		return e.resolveRef(s.Items.RefString())
	}
	return e.schemaToGoType(s.Items, true)
}

// additionalPropertiesType extracts the Go element type for a map schema.
func (e *v2Emitter) additionalPropertiesType(s *oas2.Schema) string {
	ap := s.AdditionalProperties
	if ap == nil || ap.Schema == nil {
		return "any"
	}
	return e.schemaToGoType(ap.Schema, true)
}

// structAdditionalType returns the element type for a struct's catch-all
// map, or "" when additionalProperties is absent or explicitly false.
func (e *v2Emitter) structAdditionalType(s *oas2.Schema) string {
	ap := s.AdditionalProperties
	if ap == nil {
		return ""
	}
	if ap.Allowed != nil {
		if *ap.Allowed {
			return "any"
		}
		return ""
	}
	return e.schemaToGoType(ap.Schema, true)
}

// resolveRef maps a $ref to its generated type name, falling back to the
// last path segment for references outside definitions.
func (e *v2Emitter) resolveRef(ref string) string {
	if typeName, ok := e.typeNames[ref]; ok {
		return typeName
	}
	parts := strings.Split(ref, "/")
	if len(parts) > 0 {
		return toTypeName(parts[len(parts)-1])
	}
	return "any"
}

func (e *v2Emitter) isSelfReference(sor *oas2.SchemaOrRef, typeName string) bool {
	return sor.IsRef() && e.resolveRef(sor.RefString()) == typeName
}

// schemaKindV2 returns the effective type of a schema, inferring object and
// array from structure when no explicit type is set.
func schemaKindV2(s *oas2.Schema) string {
	if s == nil {
		return ""
	}
	if t := strVal(s.Type); t != "" {
		return t
	}
	if s.Properties != nil {
		return "object"
	}
	if s.Items != nil {
		return "array"
	}
	if len(s.Enum) > 0 {
		return "string"
	}
	return ""
}
