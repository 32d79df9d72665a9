// Package jsonwire provides strict typed accessors over the generic
// map[string]any tree that json.Unmarshal and yaml.Unmarshal produce.
//
// Unlike lenient extraction helpers, every accessor reports a
// *oaserrors.SchemaError naming the offending JSON path when a value has the
// wrong type, so decode failures surface with an exact location. Absent
// optional keys return nil without error; missing required keys are errors.
//
// The package also handles extension capture (keys not claimed by the owning
// object are collected into its Extra map) and JSON marshaling with extension
// flattening.
package jsonwire

import (
	"fmt"
	"math"
	"slices"

	"github.com/erraggy/oasdoc/oaserrors"
)

// TypeName returns the JSON type name of a decoded value, for error messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64, uint, uint64, uint32, uint16, uint8:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Missing returns the SchemaError for a required key absent from the object at path.
func Missing(path, key string) error {
	return &oaserrors.SchemaError{
		Path:    FieldPath(path, key),
		Message: "missing required field",
	}
}

// WrongType returns the SchemaError for a value of the wrong JSON type at path.
func WrongType(path, want string, got any) error {
	return &oaserrors.SchemaError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %s", want, TypeName(got)),
		Value:   got,
	}
}

// Obj asserts that v is a JSON object.
func Obj(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, WrongType(path, "object", v)
	}
	return m, nil
}

// String extracts an optional string value. Absent keys return nil.
func String(m map[string]any, key, path string) (*string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "string", v)
	}
	return &s, nil
}

// RequiredString extracts a required string value.
func RequiredString(m map[string]any, key, path string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", Missing(path, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", WrongType(FieldPath(path, key), "string", v)
	}
	return s, nil
}

// Bool extracts an optional boolean value. Absent keys return nil.
func Bool(m map[string]any, key, path string) (*bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "boolean", v)
	}
	return &b, nil
}

// Float extracts an optional numeric value as *float64.
// Handles both float64 (from JSON) and the int/uint family (from YAML).
func Float(m map[string]any, key, path string) (*float64, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, ok := floatFromAny(v)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "number", v)
	}
	return &f, nil
}

// Int extracts an optional whole-number value as *int.
// JSON numbers arrive as float64; fractional values are rejected.
func Int(m map[string]any, key, path string) (*int, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	i, ok := intFromAny(v)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "integer", v)
	}
	return &i, nil
}

// StringSlice extracts an optional array of strings. Absent keys return nil.
// A non-array value or a non-string element is a SchemaError.
func StringSlice(m map[string]any, key, path string) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "array", v)
	}
	result := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, WrongType(IndexPath(FieldPath(path, key), i), "string", item)
		}
		result = append(result, s)
	}
	return result, nil
}

// AnySlice extracts an optional array of arbitrary values. Absent keys return nil.
func AnySlice(m map[string]any, key, path string) ([]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "array", v)
	}
	return arr, nil
}

// StringMap extracts an optional object whose values are all strings
// (e.g. OAuth scopes, discriminator mappings). Absent keys return nil.
func StringMap(m map[string]any, key, path string) (map[string]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "object", v)
	}
	result := make(map[string]string, len(sub))
	for _, k := range SortedKeys(sub) {
		s, ok := sub[k].(string)
		if !ok {
			return nil, WrongType(FieldPath(FieldPath(path, key), k), "string", sub[k])
		}
		result[k] = s
	}
	return result, nil
}

// RequiredStringMap extracts a required object whose values are all strings.
func RequiredStringMap(m map[string]any, key, path string) (map[string]string, error) {
	if _, ok := m[key]; !ok {
		return nil, Missing(path, key)
	}
	return StringMap(m, key, path)
}

// Object extracts an optional nested object. The second return reports presence.
func Object(m map[string]any, key, path string) (map[string]any, bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, false, WrongType(FieldPath(path, key), "object", v)
	}
	return sub, true, nil
}

// RequiredObject extracts a required nested object.
func RequiredObject(m map[string]any, key, path string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, Missing(path, key)
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, WrongType(FieldPath(path, key), "object", v)
	}
	return sub, nil
}

// Value returns the raw value for key and whether it was present.
// Used for free-form fields (default, example) that accept any JSON value.
func Value(m map[string]any, key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Extras collects every key of m not present in known into a fresh map.
// Returns nil when there are none. OpenAPI extensions (x-*) and any other
// unrecognized keys both land here; rejection is not the decoder's job.
func Extras(m map[string]any, known map[string]bool) map[string]any {
	var extras map[string]any
	for k, v := range m {
		if !known[k] {
			if extras == nil {
				extras = make(map[string]any)
			}
			extras[k] = v
		}
	}
	return extras
}

// SortedKeys returns the keys of m in sorted order, so decode iteration and
// first-error selection are deterministic.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// floatFromAny converts any JSON/YAML numeric representation to float64.
func floatFromAny(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}

// intFromAny converts any whole-number representation to int.
// Fractional floats do not convert.
func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint32:
		return int(n), true
	case uint16:
		return int(n), true
	case uint8:
		return int(n), true
	default:
		return 0, false
	}
}
