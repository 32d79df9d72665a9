package oas2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The named *OrRef aliases must stay interchangeable with the generic
// instantiations the model fields use; these assignments fail to compile if
// either side drifts.
var (
	_ map[string]*SchemaOrRef = Schema{}.Properties
	_ []*ParameterOrRef       = Operation{}.Parameters
	_ *ResponseOrRef          = Responses{}.Default
	_ *SchemaOrRef            = Parameter{}.Schema
)

func TestRefOr_Accessors(t *testing.T) {
	ref := &SchemaOrRef{Ref: &Reference{Ref: "#/definitions/Pet"}}
	assert.True(t, ref.IsRef())
	assert.Equal(t, "#/definitions/Pet", ref.RefString())

	inline := &SchemaOrRef{Value: &Schema{}}
	assert.False(t, inline.IsRef())
	assert.Empty(t, inline.RefString())

	var nilRef *SchemaOrRef
	assert.False(t, nilRef.IsRef())
	assert.Empty(t, nilRef.RefString())
}

func TestRefOr_RecursiveSchema(t *testing.T) {
	// Properties nest through RefOr without any depth limit in the type
	// system itself; the decoder enforces the ceiling.
	doc, err := DecodeMap(map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "T", "version": "1"},
		"paths":   map[string]any{},
		"definitions": map[string]any{
			"Node": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"children": map[string]any{
						"type":  "array",
						"items": map[string]any{"$ref": "#/definitions/Node"},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	node := doc.Definitions["Node"]
	require.NotNil(t, node)
	require.False(t, node.IsRef())
	children := node.Value.Properties["children"]
	require.NotNil(t, children)
	require.NotNil(t, children.Value.Items)
	assert.Equal(t, "#/definitions/Node", children.Value.Items.RefString())
}
