// Package openapi embeds the API description. The same document backs request
// validation, the /openapi.json endpoint and the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var document []byte

// Document returns the raw embedded JSON.
func Document() []byte {
	return document
}

// Load parses and validates the embedded document. Servers are cleared so request
// validation matches on path alone, whatever host the API is served from.
func Load(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	doc.Servers = nil
	return doc, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return string(document) }

// RegisterSwagger makes the document available to gin-swagger under the default name.
func RegisterSwagger() {
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{})
	}
}
