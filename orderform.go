// Package orderform is the top-level entry point for the pizza order form.
// It re-exports the controller, validation, and rendering building blocks so
// callers can wire a form without importing each package.
package orderform

import (
	"context"
	"net/http"

	theme "github.com/goliatone/go-theme"

	component "github.com/goliatone/go-orderform/components/orderform"
	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/renderers/html"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// FormState aliases the record of current user input.
type FormState = order.FormState

// Size aliases the pizza size code.
type Size = order.Size

// Catalog aliases the topping catalog.
type Catalog = order.Catalog

// Controller aliases the order form controller.
type Controller = controller.Controller

// View is the read-only snapshot renderers consume.
type View = controller.View

// SubmissionResult is the outcome of a submit event.
type SubmissionResult = controller.SubmissionResult

// ValidationResult carries field errors, the toppings flag, and issues.
type ValidationResult = validation.Result

// NewController builds a controller holding an empty, validated form.
func NewController(options ...controller.Option) *Controller {
	return controller.New(options...)
}

// Validate applies the order ruleset to state.
func Validate(state FormState) ValidationResult {
	return validation.Validate(state)
}

// FormatConfirmation builds the success message for a submitted order.
func FormatConfirmation(snapshot FormState) string {
	return order.FormatConfirmation(snapshot)
}

// DefaultCatalog returns the built-in toppings.
func DefaultCatalog() Catalog {
	return order.DefaultCatalog()
}

// RenderHTML renders the current view of ctrl as an HTML form, optionally
// themed with a go-theme manifest.
func RenderHTML(ctx context.Context, ctrl *Controller, manifest *theme.Manifest, options ...html.Option) ([]byte, error) {
	if manifest != nil {
		options = append(options, html.WithThemeManifest(manifest))
	}
	renderer, err := html.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, ctrl.View())
}

// Handler returns the net/http handler serving the form.
func Handler(options ...component.OptionFn) http.Handler {
	return component.Handler(options...)
}
