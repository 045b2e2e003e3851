// Package api holds the HTTP contract of the service: the embedded OpenAPI
// document, request and response bodies, and the echo binding of every operation
// to ServerInterface.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading swagger spec: %w", err)
	}
	if err = swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("error validating swagger spec: %w", err)
	}
	return swagger, nil
}
