package openapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Servers)

	for _, path := range []string{
		"/api/v1/auth/register",
		"/api/v1/item-colors/{id}",
		"/api/v1/relationships/{userId}/block",
		"/api/v1/task-lists",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterSwagger(t *testing.T) {
	RegisterSwagger()
	RegisterSwagger() // second call is a no-op

	out, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, out, `"TaskHub API"`)
}
