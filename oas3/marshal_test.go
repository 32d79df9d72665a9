package oas3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc/oaserrors"
)

const petstoreYAML = `openapi: 3.0.1
info:
  title: YAML Petstore
  version: 2.1.0
  x-team: pets
servers:
  - url: https://petstore.example.com/v3
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: status
          in: query
          schema:
            type: string
            enum: [available, sold]
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          maxLength: 100
  securitySchemes:
    api_key:
      type: apiKey
      name: api_key
      in: header
`

func TestDocument_MarshalJSON_RoundTrip(t *testing.T) {
	original := mustMap(t, petstoreJSON)
	doc, err := DecodeMap(original)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var restored map[string]any
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestDocument_UnmarshalJSON(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(petstoreJSON), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	require.NotNil(t, doc.Paths)
	assert.Len(t, doc.Paths.Items, 2)
}

func TestDocument_UnmarshalJSON_Strict(t *testing.T) {
	var doc Document
	err := json.Unmarshal([]byte(`{"openapi":"3.0.0","info":{"title":"t","version":"1"}}`), &doc)
	require.Error(t, err)
	var se *oaserrors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "paths", se.Path)
}

func TestMarshalJSON_RenamedKeys(t *testing.T) {
	schema := &Schema{
		Type: ptr("string"),
		Enum: []any{"a", "b"},
	}
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	m := mustMap(t, string(data))
	assert.Equal(t, map[string]any{"type": "string", "enum": []any{"a", "b"}}, m)

	param := &Parameter{Name: "limit", In: ParamInQuery}
	data, err = json.Marshal(param)
	require.NoError(t, err)
	m = mustMap(t, string(data))
	assert.Equal(t, map[string]any{"name": "limit", "in": "query"}, m)

	ref := &SchemaOrRef{Ref: &Reference{Ref: "#/components/schemas/Pet"}}
	data, err = json.Marshal(ref)
	require.NoError(t, err)
	m = mustMap(t, string(data))
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Pet"}, m)

	annotated := &Reference{
		Ref:     "#/components/schemas/Pet",
		Summary: ptr("Pet alias"),
	}
	data, err = json.Marshal(annotated)
	require.NoError(t, err)
	m = mustMap(t, string(data))
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Pet", "summary": "Pet alias"}, m)
}

func TestMarshalJSON_ExtrasFlattened(t *testing.T) {
	info := &Info{
		Title:   "Petstore",
		Version: "1.0.0",
		Extra:   map[string]any{"x-audience": "internal", "x-owner": "platform"},
	}
	data, err := json.Marshal(info)
	require.NoError(t, err)
	m := mustMap(t, string(data))
	assert.Equal(t, map[string]any{
		"title":      "Petstore",
		"version":    "1.0.0",
		"x-audience": "internal",
		"x-owner":    "platform",
	}, m)
}

func TestResponses_MarshalJSON(t *testing.T) {
	resp := &Responses{
		Default: &ResponseOrRef{Value: &Response{Description: "fallback"}},
		Codes: map[string]*ResponseOrRef{
			"200": {Value: &Response{Description: "ok"}},
			"404": {Ref: &Reference{Ref: "#/components/responses/NotFound"}},
		},
		Extra: map[string]any{"x-note": "generated"},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	m := mustMap(t, string(data))
	assert.Equal(t, map[string]any{
		"default": map[string]any{"description": "fallback"},
		"200":     map[string]any{"description": "ok"},
		"404":     map[string]any{"$ref": "#/components/responses/NotFound"},
		"x-note":  "generated",
	}, m)
}

func TestPaths_MarshalJSON(t *testing.T) {
	paths := &Paths{
		Items: map[string]*PathItem{
			"/pets": {Get: &Operation{
				Responses: &Responses{Codes: map[string]*ResponseOrRef{
					"204": {Value: &Response{Description: "no content"}},
				}},
			}},
		},
		Extra: map[string]any{"x-router": "chi"},
	}
	data, err := json.Marshal(paths)
	require.NoError(t, err)
	m := mustMap(t, string(data))
	assert.Equal(t, map[string]any{
		"/pets": map[string]any{
			"get": map[string]any{
				"responses": map[string]any{
					"204": map[string]any{"description": "no content"},
				},
			},
		},
		"x-router": "chi",
	}, m)
}

func TestCallback_MarshalJSON(t *testing.T) {
	cb := &Callback{
		Expressions: map[string]*PathItem{
			"{$request.body#/url}": {Post: &Operation{
				Responses: &Responses{Codes: map[string]*ResponseOrRef{
					"200": {Value: &Response{Description: "received"}},
				}},
			}},
		},
		Extra: map[string]any{"x-priority": "high"},
	}
	data, err := json.Marshal(cb)
	require.NoError(t, err)
	m := mustMap(t, string(data))
	assert.Equal(t, map[string]any{
		"{$request.body#/url}": map[string]any{
			"post": map[string]any{
				"responses": map[string]any{
					"200": map[string]any{"description": "received"},
				},
			},
		},
		"x-priority": "high",
	}, m)
}

func TestAdditionalProperties_JSON(t *testing.T) {
	t.Run("boolean", func(t *testing.T) {
		var ap AdditionalProperties
		require.NoError(t, json.Unmarshal([]byte(`false`), &ap))
		assert.Equal(t, ptr(false), ap.Allowed)
		assert.Nil(t, ap.Schema)

		data, err := json.Marshal(&ap)
		require.NoError(t, err)
		assert.JSONEq(t, `false`, string(data))
	})

	t.Run("schema", func(t *testing.T) {
		var ap AdditionalProperties
		require.NoError(t, json.Unmarshal([]byte(`{"type":"string"}`), &ap))
		assert.Nil(t, ap.Allowed)
		require.NotNil(t, ap.Schema)
		require.NotNil(t, ap.Schema.Value)
		assert.Equal(t, ptr("string"), ap.Schema.Value.Type)

		data, err := json.Marshal(&ap)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"string"}`, string(data))
	})

	t.Run("invalid", func(t *testing.T) {
		var ap AdditionalProperties
		err := json.Unmarshal([]byte(`3`), &ap)
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Contains(t, se.Message, "expected boolean or object")
	})
}

func TestSchemaOrRef_UnmarshalJSON(t *testing.T) {
	t.Run("reference", func(t *testing.T) {
		var sr SchemaOrRef
		require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/components/schemas/Pet"}`), &sr))
		assert.True(t, sr.IsRef())
		assert.Equal(t, "#/components/schemas/Pet", sr.RefString())
		assert.Nil(t, sr.Value)
	})

	t.Run("inline", func(t *testing.T) {
		var sr SchemaOrRef
		require.NoError(t, json.Unmarshal([]byte(`{"type":"object","required":["id"]}`), &sr))
		assert.False(t, sr.IsRef())
		require.NotNil(t, sr.Value)
		assert.Equal(t, []string{"id"}, sr.Value.Required)
	})

	t.Run("inline invalid", func(t *testing.T) {
		var pr ParameterOrRef
		err := json.Unmarshal([]byte(`{"name":"q"}`), &pr)
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "in", se.Path)
	})
}

func TestReference_UnmarshalJSON(t *testing.T) {
	var ref Reference
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/components/schemas/Pet","summary":"s","description":"d"}`), &ref))
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref)
	assert.Equal(t, ptr("s"), ref.Summary)
	assert.Equal(t, ptr("d"), ref.Description)

	err := json.Unmarshal([]byte(`{"href":"#/components/schemas/Pet"}`), &ref)
	require.Error(t, err)
	var se *oaserrors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "$ref", se.Path)
}

func TestDocument_UnmarshalYAML(t *testing.T) {
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(petstoreYAML), &doc))

	assert.Equal(t, "3.0.1", doc.OpenAPI)
	assert.Equal(t, "YAML Petstore", doc.Info.Title)
	assert.Equal(t, "2.1.0", doc.Info.Version)
	assert.Equal(t, map[string]any{"x-team": "pets"}, doc.Info.Extra)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://petstore.example.com/v3", doc.Servers[0].URL)

	get := doc.Paths.Items["/pets"].Get
	require.NotNil(t, get)
	status := get.Parameters[0].Value
	require.NotNil(t, status)
	assert.Equal(t, ParamInQuery, status.In)
	require.NotNil(t, status.Schema)
	assert.Equal(t, []any{"available", "sold"}, status.Schema.Value.Enum)

	ok := get.Responses.Codes["200"]
	require.NotNil(t, ok)
	media := ok.Value.Content["application/json"]
	require.NotNil(t, media)
	require.NotNil(t, media.Schema.Value)
	assert.Equal(t, "#/components/schemas/Pet", media.Schema.Value.Items.RefString())

	pet := doc.Components.Schemas["Pet"].Value
	require.NotNil(t, pet)
	assert.Equal(t, ptr(100), pet.Properties["name"].Value.MaxLength)

	apiKey := doc.Components.SecuritySchemes["api_key"].Value
	require.NotNil(t, apiKey)
	assert.Equal(t, SecurityTypeAPIKey, apiKey.Type)
	assert.Equal(t, ptr(ParamInHeader), apiKey.In)
}

func TestDocument_UnmarshalYAML_Strict(t *testing.T) {
	var doc Document
	err := yaml.Unmarshal([]byte("openapi: \"3.0.0\"\ninfo:\n  title: t\n  version: \"1\"\npaths:\n  pets: {}\n"), &doc)
	require.Error(t, err)
	// yaml.Unmarshal wraps the decoder's error in its own load-error type,
	// so only the message survives; typed errors come from DecodeMap.
	assert.Contains(t, err.Error(), "schema error at paths.pets")
	assert.Contains(t, err.Error(), `path keys must begin with "/"`)
}

func TestDocument_YAMLRoundTrip(t *testing.T) {
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(petstoreYAML), &doc))

	out, err := yaml.Marshal(&doc)
	require.NoError(t, err)

	var restored Document
	require.NoError(t, yaml.Unmarshal(out, &restored))
	assert.Equal(t, doc, restored)
}
