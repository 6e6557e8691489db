package controller

import (
	"maps"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// View is a read-only snapshot of a controller, shaped for renderers.
type View struct {
	State         order.FormState   `json:"values"`
	Errors        validation.Errors `json:"errors"`
	ToppingsError bool              `json:"toppingsError"`
	Valid         bool              `json:"valid"`
	Result        SubmissionResult  `json:"-"`
	Message       string            `json:"message,omitempty"`
	Catalog       order.Catalog     `json:"-"`
}

// View captures the current state, findings, and last result.
func (c *Controller) View() View {
	return View{
		State:         c.state.Clone(),
		Errors:        maps.Clone(c.errors),
		ToppingsError: c.toppingsError,
		Valid:         c.valid,
		Result:        c.result,
		Message:       c.result.Message(),
		Catalog:       c.catalog,
	}
}

// ErrorFor returns the message attached to field, if any.
func (v View) ErrorFor(field string) string {
	return v.Errors[field]
}
