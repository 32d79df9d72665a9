package oas3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkSchemas_Petstore(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, petstoreJSON))
	require.NoError(t, err)

	var visited []string
	WalkSchemas(doc, func(s *Schema, path string) bool {
		require.NotNil(t, s)
		visited = append(visited, path)
		return true
	})

	// Inline schemas only: references are skipped, not resolved, so media types
	// whose schema is a $ref (and the whole callback tree here) contribute
	// nothing.
	assert.Equal(t, []string{
		"components.schemas.Error",
		"components.schemas.Error.properties.code",
		"components.schemas.Error.properties.message",
		"components.schemas.NewPet",
		"components.schemas.NewPet.allOf[1]",
		"components.schemas.NewPet.allOf[1].properties.certificate",
		"components.schemas.Pet",
		"components.schemas.Pet.properties.id",
		"components.schemas.Pet.properties.name",
		"components.schemas.Pet.properties.status",
		"components.schemas.Pet.properties.tag",
		"components.schemas.PetOrError",
		"components.parameters.limitParam.schema",
		"components.headers.X-Rate-Limit.schema",
		"paths./pets.get.parameters[1].schema",
		"paths./pets.get.responses.200.headers.X-Next.schema",
		"paths./pets.get.responses.200.content.application/json.schema",
		"paths./pets/{id}.parameters[0].schema",
	}, visited)
}

func TestWalkSchemas_Stop(t *testing.T) {
	doc, err := DecodeMap(mustMap(t, petstoreJSON))
	require.NoError(t, err)

	var visited []string
	WalkSchemas(doc, func(s *Schema, path string) bool {
		visited = append(visited, path)
		return len(visited) < 3
	})
	assert.Equal(t, []string{
		"components.schemas.Error",
		"components.schemas.Error.properties.code",
		"components.schemas.Error.properties.message",
	}, visited)
}

func TestWalkSchemas_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		WalkSchemas(nil, func(s *Schema, path string) bool { return true })
		WalkSchemas(&Document{}, func(s *Schema, path string) bool { return true })
		WalkSchemas(&Document{}, nil)
	})
}
