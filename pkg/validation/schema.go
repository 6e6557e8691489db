package validation

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaName is the component schema describing the order form payload.
const SchemaName = "PizzaOrder"

//go:embed schema/pizza_order.openapi.yaml
var rawDocument []byte

var (
	documentOnce sync.Once
	document     *openapi3.T
	orderSchema  *openapi3.Schema
	documentErr  error
)

// RawDocument returns the embedded OpenAPI document (YAML) describing the
// order form endpoints and the validation schema.
func RawDocument() []byte {
	return append([]byte(nil), rawDocument...)
}

// Document returns the parsed OpenAPI document. The result is shared; callers
// must not mutate it.
func Document() (*openapi3.T, error) {
	documentOnce.Do(loadDocument)
	return document, documentErr
}

// Schema returns the PizzaOrder schema the validator visits.
func Schema() (*openapi3.Schema, error) {
	documentOnce.Do(loadDocument)
	return orderSchema, documentErr
}

// MustSchema panics when the embedded document cannot be loaded.
func MustSchema() *openapi3.Schema {
	schema, err := Schema()
	if err != nil {
		panic(err)
	}
	return schema
}

func loadDocument() {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawDocument)
	if err != nil {
		documentErr = fmt.Errorf("validation: load document: %w", err)
		return
	}
	if err := doc.Validate(context.Background()); err != nil {
		documentErr = fmt.Errorf("validation: invalid document: %w", err)
		return
	}

	ref := doc.Components.Schemas[SchemaName]
	if ref == nil || ref.Value == nil {
		documentErr = errors.New("validation: schema " + SchemaName + " not found")
		return
	}

	document = doc
	orderSchema = ref.Value
}
