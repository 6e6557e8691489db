// Package testsupport holds fixtures shared by the order form tests.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-orderform/pkg/order"
)

// ValidOrder returns the canonical accepted order: Jane Doe, medium,
// pepperoni.
func ValidOrder() order.FormState {
	return order.FormState{
		FullName: "Jane Doe",
		Size:     order.SizeMedium,
		Toppings: []string{"Pepperoni"},
	}
}

// ValidConfirmation is the message produced for ValidOrder.
const ValidConfirmation = "Thank you for your order, Jane Doe! Your medium pizza with 1 topping is on the way."

// MustCatalog parses a YAML or JSON catalog document.
func MustCatalog(t *testing.T, doc string) order.Catalog {
	t.Helper()

	catalog, err := order.ParseCatalog([]byte(doc), "fixture")
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return catalog
}

// WriteFile writes body to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
