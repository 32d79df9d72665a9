package oas3

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
)

const minimalJSON = `{"openapi":"3.0.0","info":{"title":"Minimal","version":"1.0.0"},"paths":{}}`

const petstoreJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Swagger Petstore",
    "description": "A sample API that uses a petstore as an example",
    "termsOfService": "https://swagger.io/terms/",
    "contact": {"name": "Swagger API Team", "email": "apiteam@swagger.io", "url": "https://swagger.io"},
    "license": {"name": "Apache 2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0.html"},
    "version": "1.0.0",
    "x-audience": "public"
  },
  "servers": [
    {"url": "https://petstore.swagger.io/v2", "description": "Production"},
    {
      "url": "https://{region}.petstore.dev/v2",
      "variables": {
        "region": {"default": "eu", "enum": ["eu", "us"], "description": "Deployment region"}
      }
    }
  ],
  "paths": {
    "x-router": "petstore-v3",
    "/pets": {
      "summary": "Pet collection",
      "get": {
        "tags": ["pets"],
        "summary": "List all pets",
        "operationId": "listPets",
        "parameters": [
          {"$ref": "#/components/parameters/limitParam"},
          {"name": "status", "in": "query", "description": "Status filter", "schema": {"type": "string", "enum": ["available", "pending", "sold"]}}
        ],
        "responses": {
          "200": {
            "description": "A paged array of pets",
            "headers": {"X-Next": {"description": "Cursor to the next page", "schema": {"type": "string"}}},
            "content": {
              "application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Pet"}}}
            }
          },
          "default": {"$ref": "#/components/responses/Error"}
        }
      },
      "post": {
        "tags": ["pets"],
        "summary": "Create a pet",
        "operationId": "createPet",
        "requestBody": {
          "description": "Pet to add to the store",
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NewPet"}}}
        },
        "responses": {
          "201": {
            "description": "Created",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}},
            "links": {
              "GetPetById": {"operationId": "getPet", "parameters": {"id": "$response.body#/id"}, "description": "The created pet"}
            }
          }
        },
        "callbacks": {
          "onPetStatus": {
            "{$request.body#/statusUrl}": {
              "post": {
                "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}},
                "responses": {"200": {"description": "Callback received"}}
              }
            }
          }
        },
        "security": [{"petstore_auth": ["write:pets"]}]
      }
    },
    "/pets/{id}": {
      "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64"}}],
      "get": {
        "tags": ["pets"],
        "summary": "Find pet by ID",
        "operationId": "getPet",
        "responses": {
          "200": {"description": "Pet found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "delete": {
        "operationId": "deletePet",
        "deprecated": true,
        "responses": {"204": {"description": "Deleted"}}
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer", "format": "int64", "readOnly": true},
          "name": {"type": "string", "minLength": 1},
          "tag": {"type": "string", "nullable": true},
          "status": {"type": "string", "enum": ["available", "pending", "sold"]}
        },
        "xml": {"name": "pet"},
        "x-table": "pets"
      },
      "NewPet": {
        "allOf": [
          {"$ref": "#/components/schemas/Pet"},
          {"type": "object", "properties": {"certificate": {"type": "string", "writeOnly": true}}}
        ]
      },
      "PetOrError": {
        "oneOf": [{"$ref": "#/components/schemas/Pet"}, {"$ref": "#/components/schemas/Error"}],
        "discriminator": {"propertyName": "kind", "mapping": {"pet": "#/components/schemas/Pet"}}
      },
      "Error": {
        "type": "object",
        "required": ["code", "message"],
        "properties": {"code": {"type": "integer", "format": "int32"}, "message": {"type": "string"}},
        "additionalProperties": false
      }
    },
    "responses": {
      "NotFound": {"description": "Pet not found"},
      "Error": {
        "description": "Unexpected error",
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}
      }
    },
    "parameters": {
      "limitParam": {
        "name": "limit",
        "in": "query",
        "description": "Maximum number of results to return",
        "schema": {"type": "integer", "format": "int32", "maximum": 100}
      }
    },
    "examples": {
      "cat": {"summary": "A cat", "value": {"id": 1, "name": "Felix"}}
    },
    "requestBodies": {
      "PetBody": {
        "description": "Pet payload",
        "required": true,
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
      }
    },
    "headers": {
      "X-Rate-Limit": {"description": "Calls per hour allowed", "schema": {"type": "integer"}}
    },
    "securitySchemes": {
      "api_key": {"type": "apiKey", "name": "api_key", "in": "header"},
      "petstore_auth": {
        "type": "oauth2",
        "flows": {
          "implicit": {
            "authorizationUrl": "https://petstore.swagger.io/oauth/authorize",
            "scopes": {"read:pets": "read your pets", "write:pets": "modify pets in your account"}
          }
        }
      },
      "bearer_auth": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
    },
    "links": {
      "PetStatus": {"operationRef": "#/paths/~1pets~1{id}/get", "description": "Status of the pet"}
    },
    "callbacks": {
      "PetEvents": {
        "{$request.query.callbackUrl}": {
          "post": {"responses": {"200": {"description": "ok"}}}
        }
      }
    }
  },
  "security": [{"api_key": []}],
  "tags": [{"name": "pets", "description": "Everything about pets"}],
  "externalDocs": {"description": "Find out more", "url": "https://swagger.io"},
  "x-generated-by": "petstore-tools"
}`

func mustMap(t *testing.T, data string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &m))
	return m
}

func ptr[T any](v T) *T {
	return &v
}

func TestDecodeMap_Petstore(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, petstoreJSON))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.NotNil(t, doc.Info.Contact)
	assert.Equal(t, "apiteam@swagger.io", *doc.Info.Contact.Email)
	require.NotNil(t, doc.Info.License)
	assert.Equal(t, "Apache 2.0", doc.Info.License.Name)
	assert.Equal(t, map[string]any{"x-audience": "public"}, doc.Info.Extra)

	require.Len(t, doc.Servers, 2)
	assert.Equal(t, "https://petstore.swagger.io/v2", doc.Servers[0].URL)
	assert.Equal(t, ptr("Production"), doc.Servers[0].Description)
	assert.Nil(t, doc.Servers[0].Variables)
	region := doc.Servers[1].Variables["region"]
	require.NotNil(t, region)
	assert.Equal(t, "eu", region.Default)
	assert.Equal(t, []string{"eu", "us"}, region.Enum)
	assert.Equal(t, ptr("Deployment region"), region.Description)

	require.NotNil(t, doc.Paths)
	require.Len(t, doc.Paths.Items, 2)
	assert.Equal(t, map[string]any{"x-router": "petstore-v3"}, doc.Paths.Extra)

	pets := doc.Paths.Items["/pets"]
	require.NotNil(t, pets)
	assert.Equal(t, ptr("Pet collection"), pets.Summary)
	require.NotNil(t, pets.Get)
	assert.Equal(t, []string{"pets"}, pets.Get.Tags)
	assert.Equal(t, "listPets", *pets.Get.OperationID)

	require.Len(t, pets.Get.Parameters, 2)
	assert.True(t, pets.Get.Parameters[0].IsRef())
	assert.Equal(t, "#/components/parameters/limitParam", pets.Get.Parameters[0].RefString())
	status := pets.Get.Parameters[1].Value
	require.NotNil(t, status)
	assert.Equal(t, "status", status.Name)
	assert.Equal(t, ParamInQuery, status.In)
	require.NotNil(t, status.Schema)
	require.NotNil(t, status.Schema.Value)
	assert.Equal(t, []any{"available", "pending", "sold"}, status.Schema.Value.Enum)

	require.NotNil(t, pets.Get.Responses)
	ok := pets.Get.Responses.Codes["200"]
	require.NotNil(t, ok)
	require.NotNil(t, ok.Value)
	assert.Equal(t, "A paged array of pets", ok.Value.Description)
	next := ok.Value.Headers["X-Next"]
	require.NotNil(t, next)
	require.NotNil(t, next.Value)
	assert.Equal(t, ptr("string"), next.Value.Schema.Value.Type)
	listMedia := ok.Value.Content["application/json"]
	require.NotNil(t, listMedia)
	require.NotNil(t, listMedia.Schema.Value)
	assert.Equal(t, ptr("array"), listMedia.Schema.Value.Type)
	assert.Equal(t, "#/components/schemas/Pet", listMedia.Schema.Value.Items.RefString())

	require.NotNil(t, pets.Get.Responses.Default)
	assert.True(t, pets.Get.Responses.Default.IsRef())
	assert.Equal(t, "#/components/responses/Error", pets.Get.Responses.Default.RefString())

	require.NotNil(t, pets.Post)
	body := pets.Post.RequestBody
	require.NotNil(t, body)
	require.NotNil(t, body.Value)
	assert.Equal(t, ptr("Pet to add to the store"), body.Value.Description)
	assert.Equal(t, ptr(true), body.Value.Required)
	assert.Equal(t, "#/components/schemas/NewPet", body.Value.Content["application/json"].Schema.RefString())
	created := pets.Post.Responses.Codes["201"]
	require.NotNil(t, created)
	link := created.Value.Links["GetPetById"]
	require.NotNil(t, link)
	require.NotNil(t, link.Value)
	assert.Equal(t, ptr("getPet"), link.Value.OperationID)
	assert.Equal(t, map[string]any{"id": "$response.body#/id"}, link.Value.Parameters)
	cb := pets.Post.Callbacks["onPetStatus"]
	require.NotNil(t, cb)
	require.NotNil(t, cb.Value)
	hook := cb.Value.Expressions["{$request.body#/statusUrl}"]
	require.NotNil(t, hook)
	require.NotNil(t, hook.Post)
	assert.Equal(t, "#/components/schemas/Pet", hook.Post.RequestBody.Value.Content["application/json"].Schema.RefString())
	assert.Equal(t, []SecurityRequirement{{"petstore_auth": {"write:pets"}}}, pets.Post.Security)

	petByID := doc.Paths.Items["/pets/{id}"]
	require.NotNil(t, petByID)
	require.Len(t, petByID.Parameters, 1)
	idParam := petByID.Parameters[0].Value
	require.NotNil(t, idParam)
	assert.Equal(t, ParamInPath, idParam.In)
	assert.Equal(t, ptr(true), idParam.Required)
	notFound := petByID.Get.Responses.Codes["404"]
	require.NotNil(t, notFound)
	assert.True(t, notFound.IsRef())
	assert.Equal(t, "#/components/responses/NotFound", notFound.RefString())
	assert.Equal(t, ptr(true), petByID.Delete.Deprecated)

	require.NotNil(t, doc.Components)
	require.Len(t, doc.Components.Schemas, 4)
	pet := doc.Components.Schemas["Pet"].Value
	require.NotNil(t, pet)
	assert.Equal(t, []string{"id", "name"}, pet.Required)
	assert.Equal(t, map[string]any{"x-table": "pets"}, pet.Extra)
	require.NotNil(t, pet.XML)
	assert.Equal(t, ptr("pet"), pet.XML.Name)
	assert.Equal(t, ptr(true), pet.Properties["id"].Value.ReadOnly)
	assert.Equal(t, ptr(1), pet.Properties["name"].Value.MinLength)
	assert.Equal(t, ptr(true), pet.Properties["tag"].Value.Nullable)

	newPet := doc.Components.Schemas["NewPet"].Value
	require.NotNil(t, newPet)
	require.Len(t, newPet.AllOf, 2)
	assert.True(t, newPet.AllOf[0].IsRef())
	require.NotNil(t, newPet.AllOf[1].Value)
	assert.Equal(t, ptr(true), newPet.AllOf[1].Value.Properties["certificate"].Value.WriteOnly)

	petOrErr := doc.Components.Schemas["PetOrError"].Value
	require.NotNil(t, petOrErr)
	require.Len(t, petOrErr.OneOf, 2)
	require.NotNil(t, petOrErr.Discriminator)
	assert.Equal(t, "kind", petOrErr.Discriminator.PropertyName)
	assert.Equal(t, map[string]string{"pet": "#/components/schemas/Pet"}, petOrErr.Discriminator.Mapping)

	errSchema := doc.Components.Schemas["Error"].Value
	require.NotNil(t, errSchema)
	require.NotNil(t, errSchema.AdditionalProperties)
	assert.Equal(t, ptr(false), errSchema.AdditionalProperties.Allowed)

	require.Len(t, doc.Components.Responses, 2)
	notFoundResp := doc.Components.Responses["NotFound"].Value
	require.NotNil(t, notFoundResp)
	assert.Equal(t, "Pet not found", notFoundResp.Description)
	assert.Nil(t, notFoundResp.Content)
	errResp := doc.Components.Responses["Error"].Value
	require.NotNil(t, errResp)
	assert.Equal(t, "#/components/schemas/Error", errResp.Content["application/json"].Schema.RefString())

	limit := doc.Components.Parameters["limitParam"].Value
	require.NotNil(t, limit)
	assert.Equal(t, "limit", limit.Name)
	assert.Equal(t, ptr(100.0), limit.Schema.Value.Maximum)

	cat := doc.Components.Examples["cat"].Value
	require.NotNil(t, cat)
	assert.Equal(t, ptr("A cat"), cat.Summary)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Felix"}, cat.Value)

	petBody := doc.Components.RequestBodies["PetBody"].Value
	require.NotNil(t, petBody)
	assert.Equal(t, ptr(true), petBody.Required)

	rateLimit := doc.Components.Headers["X-Rate-Limit"].Value
	require.NotNil(t, rateLimit)
	assert.Equal(t, ptr("integer"), rateLimit.Schema.Value.Type)

	apiKey := doc.Components.SecuritySchemes["api_key"].Value
	require.NotNil(t, apiKey)
	assert.Equal(t, SecurityTypeAPIKey, apiKey.Type)
	assert.Equal(t, ptr("api_key"), apiKey.Name)
	assert.Equal(t, ptr(ParamInHeader), apiKey.In)
	assert.Nil(t, apiKey.Flows)
	auth := doc.Components.SecuritySchemes["petstore_auth"].Value
	require.NotNil(t, auth)
	assert.Equal(t, SecurityTypeOAuth2, auth.Type)
	require.NotNil(t, auth.Flows)
	require.NotNil(t, auth.Flows.Implicit)
	assert.Equal(t, ptr("https://petstore.swagger.io/oauth/authorize"), auth.Flows.Implicit.AuthorizationURL)
	assert.Equal(t, "read your pets", auth.Flows.Implicit.Scopes["read:pets"])
	bearer := doc.Components.SecuritySchemes["bearer_auth"].Value
	require.NotNil(t, bearer)
	assert.Equal(t, SecurityTypeHTTP, bearer.Type)
	assert.Equal(t, ptr("bearer"), bearer.Scheme)
	assert.Equal(t, ptr("JWT"), bearer.BearerFormat)

	petStatus := doc.Components.Links["PetStatus"].Value
	require.NotNil(t, petStatus)
	assert.Equal(t, ptr("#/paths/~1pets~1{id}/get"), petStatus.OperationRef)

	events := doc.Components.Callbacks["PetEvents"].Value
	require.NotNil(t, events)
	require.Contains(t, events.Expressions, "{$request.query.callbackUrl}")

	assert.Equal(t, []SecurityRequirement{{"api_key": {}}}, doc.Security)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "pets", doc.Tags[0].Name)
	require.NotNil(t, doc.ExternalDocs)
	assert.Equal(t, "https://swagger.io", doc.ExternalDocs.URL)
	assert.Equal(t, map[string]any{"x-generated-by": "petstore-tools"}, doc.Extra)
}

func TestDecodeMap_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"openapi", `{"info":{"title":"t","version":"1"},"paths":{}}`, "openapi"},
		{"info", `{"openapi":"3.0.0","paths":{}}`, "info"},
		{"info title", `{"openapi":"3.0.0","info":{"version":"1"},"paths":{}}`, "info.title"},
		{"info version", `{"openapi":"3.0.0","info":{"title":"t"},"paths":{}}`, "info.version"},
		{"paths", `{"openapi":"3.0.0","info":{"title":"t","version":"1"}}`, "paths"},
		{"license name", `{"openapi":"3.0.0","info":{"title":"t","version":"1","license":{"url":"https://x"}},"paths":{}}`, "info.license.name"},
		{"tag name", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"tags":[{"description":"d"}]}`, "tags[0].name"},
		{"externalDocs url", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"externalDocs":{"description":"d"}}`, "externalDocs.url"},
		{"server url", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"servers":[{"description":"d"}]}`, "servers[0].url"},
		{"server variable default", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"servers":[{"url":"https://{r}.x.dev","variables":{"r":{"description":"region"}}}]}`, "servers[0].variables.r.default"},
		{"operation responses", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{}}}}`, "paths./p.get.responses"},
		{"parameter name", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{"parameters":[{"in":"query"}],"responses":{"200":{"description":"ok"}}}}}}`, "paths./p.get.parameters[0].name"},
		{"parameter in", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{"parameters":[{"name":"q"}],"responses":{"200":{"description":"ok"}}}}}}`, "paths./p.get.parameters[0].in"},
		{"response description", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"responses":{"NotFound":{}}}}`, "components.responses.NotFound.description"},
		{"requestBody content", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"post":{"requestBody":{"description":"d"},"responses":{"201":{"description":"ok"}}}}}}`, "paths./p.post.requestBody.content"},
		{"security scheme type", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"securitySchemes":{"key":{"name":"k","in":"header"}}}}`, "components.securitySchemes.key.type"},
		{"oauth flow scopes", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"securitySchemes":{"auth":{"type":"oauth2","flows":{"implicit":{"authorizationUrl":"https://x"}}}}}}`, "components.securitySchemes.auth.flows.implicit.scopes"},
		{"discriminator propertyName", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"schemas":{"P":{"discriminator":{"mapping":{"a":"#/components/schemas/A"}}}}}}`, "components.schemas.P.discriminator.propertyName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMap(mustMap(t, tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrSchema)
			var se *oaserrors.SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
			assert.Contains(t, se.Message, "missing required field")
		})
	}
}

func TestDecodeMap_WrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		message string
	}{
		{"openapi number", `{"openapi":3.0,"info":{"title":"t","version":"1"},"paths":{}}`, "openapi", "expected string, got number"},
		{"info string", `{"openapi":"3.0.0","info":"nope","paths":{}}`, "info", "expected object, got string"},
		{"servers object", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"servers":{"url":"https://x"}}`, "servers", "expected array, got object"},
		{"path item array", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":[]}}`, "paths./p", "expected object, got array"},
		{"fractional maxLength", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"schemas":{"Pet":{"maxLength":3.5}}}}`, "components.schemas.Pet.maxLength", "expected integer, got number"},
		{"required string", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{"parameters":[{"name":"q","in":"query","required":"yes"}],"responses":{"200":{"description":"ok"}}}}}}`, "paths./p.get.parameters[0].required", "expected boolean, got string"},
		{"callback expression scalar", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"post":{"responses":{"200":{"description":"ok"}},"callbacks":{"onEvent":{"{$url}":"nope"}}}}}}`, "paths./p.post.callbacks.onEvent.{$url}", "expected object, got string"},
		{"scope value number", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"securitySchemes":{"oauth":{"type":"oauth2","flows":{"implicit":{"authorizationUrl":"https://x","scopes":{"read":7}}}}}}}`, "components.securitySchemes.oauth.flows.implicit.scopes.read", "expected string, got number"},
		{"additionalProperties number", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"schemas":{"M":{"additionalProperties":42}}}}`, "components.schemas.M.additionalProperties", "expected boolean or object, got number"},
		{"variable enum element", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"servers":[{"url":"u","variables":{"r":{"default":"eu","enum":["eu",5]}}}]}`, "servers[0].variables.r.enum[1]", "expected string, got number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMap(mustMap(t, tt.doc))
			require.Error(t, err)
			var se *oaserrors.SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
			assert.Contains(t, se.Message, tt.message)
		})
	}
}

func TestDecodeMap_EnumValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"parameter in formData", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"parameters":{"p":{"name":"f","in":"formData"}}}}`, "components.parameters.p.in"},
		{"parameter in body", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"parameters":{"p":{"name":"b","in":"body"}}}}`, "components.parameters.p.in"},
		{"security type basic", `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"securitySchemes":{"s":{"type":"basic"}}}}`, "components.securitySchemes.s.type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMap(mustMap(t, tt.doc))
			require.Error(t, err)
			var se *oaserrors.SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
			assert.Contains(t, se.Message, "must be one of")
		})
	}
}

func TestDecodeMap_CookieParameter(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.3",
		"info": {"title": "Session", "version": "1.0.0"},
		"paths": {
			"/me": {
				"get": {
					"parameters": [
						{"name": "session", "in": "cookie", "required": true, "schema": {"type": "string"}}
					],
					"responses": {"200": {"description": "current user"}}
				}
			}
		}
	}`))
	require.NoError(t, err)
	params := doc.Paths.Items["/me"].Get.Parameters
	require.Len(t, params, 1)
	assert.Equal(t, ParamInCookie, params[0].Value.In)
}

func TestDecodeMap_FormDataRejected(t *testing.T) {
	_, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.3",
		"info": {"title": "Upload", "version": "1.0.0"},
		"paths": {
			"/upload": {
				"post": {
					"parameters": [
						{"name": "file", "in": "formData", "schema": {"type": "string"}}
					],
					"responses": {"201": {"description": "stored"}}
				}
			}
		}
	}`))
	require.Error(t, err)
	var se *oaserrors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "paths./upload.post.parameters[0].in", se.Path)
	assert.Contains(t, se.Message, "must be one of: query, header, path, cookie")
}

func TestDecodeMap_RefWinsOverSiblings(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"components": {
			"schemas": {
				"Alias": {"$ref": "#/components/schemas/Pet", "summary": "Pet alias", "description": "Points at Pet", "properties": 12},
				"Pet": {"type": "object"}
			}
		}
	}`))
	require.NoError(t, err)
	alias := doc.Components.Schemas["Alias"]
	require.NotNil(t, alias)
	assert.True(t, alias.IsRef())
	assert.Equal(t, "#/components/schemas/Pet", alias.RefString())
	assert.Equal(t, ptr("Pet alias"), alias.Ref.Summary)
	assert.Equal(t, ptr("Points at Pet"), alias.Ref.Description)
	// Sibling keys other than summary and description must not leak into an
	// inline value.
	assert.Nil(t, alias.Value)
}

func TestDecodeMap_ContentKeys(t *testing.T) {
	base := `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{"responses":{"200":{"description":"ok","content":%s}}}}}}`

	t.Run("wildcard ranges", func(t *testing.T) {
		doc, err := DecodeMap(mustMap(t, fmt.Sprintf(base, `{"application/json":{},"text/*":{},"*/*":{}}`)))
		require.NoError(t, err)
		content := doc.Paths.Items["/p"].Get.Responses.Codes["200"].Value.Content
		assert.Len(t, content, 3)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := DecodeMap(mustMap(t, fmt.Sprintf(base, `{"not a media type":{}}`)))
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "paths./p.get.responses.200.content.not a media type", se.Path)
		assert.Contains(t, se.Message, "invalid media type")
	})
}

func TestDecodeMap_ResponseKeys(t *testing.T) {
	base := `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/p":{"get":{"responses":%s}}}}`

	t.Run("valid keys", func(t *testing.T) {
		doc, err := DecodeMap(mustMap(t, fmt.Sprintf(base, `{"200":{"description":"ok"},"4XX":{"description":"client error"},"default":{"description":"fallback"},"x-note":"internal"}`)))
		require.NoError(t, err)
		resp := doc.Paths.Items["/p"].Get.Responses
		assert.Contains(t, resp.Codes, "200")
		assert.Contains(t, resp.Codes, "4XX")
		require.NotNil(t, resp.Default)
		assert.Equal(t, map[string]any{"x-note": "internal"}, resp.Extra)
	})

	for _, bad := range []string{"600", "20", "ok"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := DecodeMap(mustMap(t, fmt.Sprintf(base, `{"`+bad+`":{"description":"d"}}`)))
			require.Error(t, err)
			var se *oaserrors.SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "paths./p.get.responses."+bad, se.Path)
		})
	}
}

func TestDecodeMap_PathKeys(t *testing.T) {
	t.Run("missing slash", func(t *testing.T) {
		_, err := DecodeMap(mustMap(t, `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"pets":{}}}`))
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "paths.pets", se.Path)
		assert.Contains(t, se.Message, `begin with "/"`)
	})

	t.Run("extension key", func(t *testing.T) {
		doc, err := DecodeMap(mustMap(t, `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"x-meta":{"owner":"platform"}}}`))
		require.NoError(t, err)
		assert.Empty(t, doc.Paths.Items)
		assert.Equal(t, map[string]any{"x-meta": map[string]any{"owner": "platform"}}, doc.Paths.Extra)
	})
}

func TestDecodeMap_CallbackExtensions(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {"/p": {"post": {
			"responses": {"200": {"description": "ok"}},
			"callbacks": {"onEvent": {
				"x-priority": "high",
				"{$request.body#/url}": {"post": {"responses": {"200": {"description": "received"}}}}
			}}
		}}}
	}`))
	require.NoError(t, err)
	cb := doc.Paths.Items["/p"].Post.Callbacks["onEvent"]
	require.NotNil(t, cb)
	require.NotNil(t, cb.Value)
	assert.Equal(t, map[string]any{"x-priority": "high"}, cb.Value.Extra)
	require.Len(t, cb.Value.Expressions, 1)
	require.Contains(t, cb.Value.Expressions, "{$request.body#/url}")
	assert.NotNil(t, cb.Value.Expressions["{$request.body#/url}"].Post)
}

func nestedArraySchema(depth int) map[string]any {
	schema := map[string]any{"type": "string"}
	for range depth {
		schema = map[string]any{"type": "array", "items": schema}
	}
	return schema
}

func TestDecode_DepthCeiling(t *testing.T) {
	doc := mustMap(t, minimalJSON)
	doc["components"] = map[string]any{"schemas": map[string]any{"Deep": nestedArraySchema(150)}}

	t.Run("default ceiling", func(t *testing.T) {
		_, err := DecodeMap(doc)
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Contains(t, se.Message, "maximum depth 100")
	})

	t.Run("raised ceiling", func(t *testing.T) {
		_, err := Decoder{MaxDepth: 200}.Decode(doc)
		assert.NoError(t, err)
	})

	t.Run("lowered ceiling", func(t *testing.T) {
		shallow := mustMap(t, minimalJSON)
		shallow["components"] = map[string]any{"schemas": map[string]any{"Deep": nestedArraySchema(10)}}
		_, err := Decoder{MaxDepth: 5}.Decode(shallow)
		require.Error(t, err)
		var se *oaserrors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Contains(t, se.Message, "maximum depth 5")
	})
}

func nestedCallbackPathItem(depth int) string {
	item := `{"get":{"responses":{"200":{"description":"ok"}}}}`
	for range depth {
		item = `{"get":{"responses":{"200":{"description":"ok"}},"callbacks":{"onEvent":{"{$request.body#/url}":` + item + `}}}}`
	}
	return item
}

func TestDecode_CallbackDepthCeiling(t *testing.T) {
	raw := fmt.Sprintf(`{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{"/hooks":%s}}`, nestedCallbackPathItem(10))

	_, err := Decoder{MaxDepth: 5}.Decode(mustMap(t, raw))
	require.Error(t, err)
	var se *oaserrors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Message, "maximum depth 5")

	_, err = DecodeMap(mustMap(t, raw))
	assert.NoError(t, err)
}

func TestDecodeMap_OptionalAbsentVersusEmpty(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1", "description": ""},
		"paths": {},
		"components": {"schemas": {}}
	}`))
	require.NoError(t, err)

	// Absent optional scalars stay nil; present-but-empty ones do not.
	require.NotNil(t, doc.Info.Description)
	assert.Equal(t, "", *doc.Info.Description)
	assert.Nil(t, doc.Info.TermsOfService)

	// Present-but-empty collections are non-nil; absent ones are nil.
	require.NotNil(t, doc.Components)
	require.NotNil(t, doc.Components.Schemas)
	assert.Empty(t, doc.Components.Schemas)
	assert.Nil(t, doc.Components.Responses)
	assert.Nil(t, doc.Servers)
	require.NotNil(t, doc.Paths.Items)
	assert.Empty(t, doc.Paths.Items)
}

func TestDecodeMap_NoExtrasMeansNilExtra(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, minimalJSON))
	require.NoError(t, err)
	assert.Nil(t, doc.Extra)
	assert.Nil(t, doc.Info.Extra)
}

func TestDecodeMap_UnknownKeysCaptured(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, `{
		"openapi": "3.0.0",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"x-internal": true,
		"vendorMeta": {"team": "api"}
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Extra)
	assert.Equal(t, true, doc.Extra["x-internal"])
	assert.Equal(t, map[string]any{"team": "api"}, doc.Extra["vendorMeta"])
	assert.NotContains(t, doc.Extra, "openapi")
	assert.NotContains(t, doc.Extra, "info")
}
