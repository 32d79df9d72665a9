package jsonwire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
)

func TestString(t *testing.T) {
	m := map[string]any{"title": "Petstore"}

	s, err := String(m, "title", "info")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Petstore", *s)
}

func TestString_Absent(t *testing.T) {
	s, err := String(map[string]any{}, "title", "info")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestString_WrongType(t *testing.T) {
	m := map[string]any{"title": 42.0}

	_, err := String(m, "title", "info")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrSchema))

	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "info.title", schemaErr.Path)
	assert.Contains(t, schemaErr.Message, "expected string")
	assert.Contains(t, schemaErr.Message, "number")
}

func TestRequiredString(t *testing.T) {
	m := map[string]any{"swagger": "2.0"}

	s, err := RequiredString(m, "swagger", "")
	require.NoError(t, err)
	assert.Equal(t, "2.0", s)
}

func TestRequiredString_Missing(t *testing.T) {
	_, err := RequiredString(map[string]any{}, "version", "info")

	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "info.version", schemaErr.Path)
	assert.Contains(t, schemaErr.Message, "missing required field")
}

func TestBool(t *testing.T) {
	m := map[string]any{"deprecated": true}

	b, err := Bool(m, "deprecated", "paths./x.get")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	b, err = Bool(m, "required", "paths./x.get")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestBool_WrongType(t *testing.T) {
	m := map[string]any{"deprecated": "yes"}

	_, err := Bool(m, "deprecated", "")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "deprecated", schemaErr.Path)
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want float64
	}{
		{"float64 from JSON", 3.5, 3.5},
		{"int from YAML", 10, 10.0},
		{"int64 from YAML", int64(7), 7.0},
		{"uint64 from YAML", uint64(9), 9.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{"maximum": tt.val}
			f, err := Float(m, "maximum", "schema")
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, *f)
		})
	}
}

func TestFloat_WrongType(t *testing.T) {
	m := map[string]any{"maximum": "100"}
	_, err := Float(m, "maximum", "schema")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrSchema))
}

func TestInt(t *testing.T) {
	m := map[string]any{"maxLength": 255.0}

	i, err := Int(m, "maxLength", "schema")
	require.NoError(t, err)
	require.NotNil(t, i)
	assert.Equal(t, 255, *i)
}

func TestInt_Fractional(t *testing.T) {
	m := map[string]any{"maxLength": 1.5}

	_, err := Int(m, "maxLength", "schema")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "schema.maxLength", schemaErr.Path)
	assert.Contains(t, schemaErr.Message, "expected integer")
}

func TestStringSlice(t *testing.T) {
	m := map[string]any{"schemes": []any{"https", "http"}}

	ss, err := StringSlice(m, "schemes", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"https", "http"}, ss)
}

func TestStringSlice_Absent(t *testing.T) {
	ss, err := StringSlice(map[string]any{}, "schemes", "")
	require.NoError(t, err)
	assert.Nil(t, ss)
}

func TestStringSlice_BadElement(t *testing.T) {
	m := map[string]any{"required": []any{"id", 42.0}}

	_, err := StringSlice(m, "required", "definitions.Pet")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "definitions.Pet.required[1]", schemaErr.Path)
}

func TestStringSlice_NotArray(t *testing.T) {
	m := map[string]any{"required": "id"}

	_, err := StringSlice(m, "required", "definitions.Pet")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "definitions.Pet.required", schemaErr.Path)
	assert.Contains(t, schemaErr.Message, "expected array")
}

func TestStringMap(t *testing.T) {
	m := map[string]any{"scopes": map[string]any{"read:pets": "read pets"}}

	sm, err := StringMap(m, "scopes", "securityDefinitions.oauth")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"read:pets": "read pets"}, sm)
}

func TestStringMap_BadValue(t *testing.T) {
	m := map[string]any{"scopes": map[string]any{"read:pets": 1.0}}

	_, err := StringMap(m, "scopes", "securityDefinitions.oauth")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "securityDefinitions.oauth.scopes.read:pets", schemaErr.Path)
}

func TestRequiredStringMap_Missing(t *testing.T) {
	_, err := RequiredStringMap(map[string]any{}, "scopes", "flows.implicit")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "flows.implicit.scopes", schemaErr.Path)
}

func TestObject(t *testing.T) {
	m := map[string]any{"info": map[string]any{"title": "T"}}

	sub, ok, err := Object(m, "info", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T", sub["title"])

	_, ok, err = Object(m, "components", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestObject_WrongType(t *testing.T) {
	m := map[string]any{"info": []any{}}

	_, _, err := Object(m, "info", "")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "info", schemaErr.Path)
	assert.Contains(t, schemaErr.Message, "expected object, got array")
}

func TestRequiredObject_Missing(t *testing.T) {
	_, err := RequiredObject(map[string]any{}, "paths", "")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "paths", schemaErr.Path)
}

func TestObj(t *testing.T) {
	m, err := Obj(map[string]any{"a": 1.0}, "paths./pets")
	require.NoError(t, err)
	assert.Len(t, m, 1)

	_, err = Obj("nope", "paths./pets")
	var schemaErr *oaserrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "paths./pets", schemaErr.Path)
}

func TestExtras(t *testing.T) {
	m := map[string]any{
		"type":     "object",
		"x-custom": "value",
		"x-flag":   true,
		"vendor":   "extra non x- key",
	}
	known := map[string]bool{"type": true}

	extras := Extras(m, known)
	require.Len(t, extras, 3)
	assert.Equal(t, "value", extras["x-custom"])
	assert.Equal(t, true, extras["x-flag"])
	assert.Equal(t, "extra non x- key", extras["vendor"])
}

func TestExtras_NoneLeft(t *testing.T) {
	m := map[string]any{"type": "string"}
	assert.Nil(t, Extras(m, map[string]bool{"type": true}))
	assert.Nil(t, Extras(nil, map[string]bool{}))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]any{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestValue(t *testing.T) {
	m := map[string]any{"default": nil}

	v, ok := Value(m, "default")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = Value(m, "example")
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "null", TypeName(nil))
	assert.Equal(t, "boolean", TypeName(true))
	assert.Equal(t, "string", TypeName("s"))
	assert.Equal(t, "number", TypeName(1.5))
	assert.Equal(t, "number", TypeName(int64(2)))
	assert.Equal(t, "array", TypeName([]any{}))
	assert.Equal(t, "object", TypeName(map[string]any{}))
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "info", FieldPath("", "info"))
	assert.Equal(t, "info.title", FieldPath("info", "title"))
	assert.Equal(t, "paths./pets.get", FieldPath("paths./pets", "get"))
}

func TestIndexPath(t *testing.T) {
	assert.Equal(t, "parameters[0]", IndexPath("parameters", 0))
	assert.Equal(t, "paths./pets.get.parameters[2]", IndexPath("paths./pets.get.parameters", 2))
}
