package controller

import (
	"github.com/charmbracelet/log"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// ValidateFunc computes validation findings for a form state.
type ValidateFunc func(order.FormState) validation.Result

// Option configures a Controller.
type Option func(*Controller)

// WithCatalog replaces the default topping catalog.
func WithCatalog(catalog order.Catalog) Option {
	return func(c *Controller) {
		if catalog.Len() > 0 {
			c.catalog = catalog
		}
	}
}

// WithLogger attaches a logger for event tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithValidator overrides the validation ruleset.
func WithValidator(fn ValidateFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.validate = fn
		}
	}
}
