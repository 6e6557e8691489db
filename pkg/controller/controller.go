package controller

import (
	"fmt"
	"io"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// Controller owns the state of one order form.
type Controller struct {
	catalog  order.Catalog
	validate ValidateFunc
	logger   *log.Logger

	state         order.FormState
	errors        validation.Errors
	toppingsError bool
	valid         bool
	result        SubmissionResult

	observers map[int]func(View)
	nextID    int
}

// New constructs a controller holding an empty form and validates it once so
// the initial view already reflects the ruleset.
func New(options ...Option) *Controller {
	c := &Controller{
		catalog:   order.DefaultCatalog(),
		validate:  validation.Validate,
		logger:    log.New(io.Discard),
		state:     order.NewFormState(),
		errors:    validation.Errors{},
		observers: make(map[int]func(View)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.revalidate()
	return c
}

// OnFieldChange sets a scalar field and revalidates.
func (c *Controller) OnFieldChange(field, value string) error {
	switch field {
	case order.FieldFullName:
		c.state.FullName = value
	case order.FieldSize:
		c.state.Size = order.Size(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.logger.Debug("field changed", "field", field)
	c.revalidate()
	return nil
}

// OnToppingToggle adds or removes a catalog topping and revalidates.
func (c *Controller) OnToppingToggle(label string, checked bool) error {
	if _, ok := c.catalog.Lookup(label); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTopping, label)
	}
	if checked {
		c.state.AddTopping(label)
	} else {
		c.state.RemoveTopping(label)
	}
	c.logger.Debug("topping toggled", "topping", label, "checked", checked)
	c.revalidate()
	return nil
}

// Apply replays a complete form as a sequence of events: full name, size,
// then each topping in order. Toppings already selected but absent from
// values are cleared.
func (c *Controller) Apply(values order.FormState) error {
	if err := c.OnFieldChange(order.FieldFullName, values.FullName); err != nil {
		return err
	}
	if err := c.OnFieldChange(order.FieldSize, string(values.Size)); err != nil {
		return err
	}
	for _, label := range append([]string(nil), c.state.Toppings...) {
		if !values.HasTopping(label) {
			if err := c.OnToppingToggle(label, false); err != nil {
				return err
			}
		}
	}
	for _, label := range values.Toppings {
		if err := c.OnToppingToggle(label, true); err != nil {
			return err
		}
	}
	return nil
}

// OnSubmit accepts the order when the form is valid. A success snapshots the
// state, resets the form, and revalidates the empty form so its errors and
// toppings notice are shown again. A failure leaves state as is.
func (c *Controller) OnSubmit() SubmissionResult {
	if !c.valid {
		c.result = Failure()
		c.logger.Info("order rejected", "errors", len(c.errors), "toppingsError", c.toppingsError)
		c.notify()
		return c.result
	}

	c.result = Success(c.state)
	c.state = order.NewFormState()
	c.errors = validation.Errors{}
	c.toppingsError = false
	c.valid = false

	c.logger.Info("order accepted", "size", c.result.Snapshot.Size, "toppings", len(c.result.Snapshot.Toppings))
	c.revalidate()
	return c.result
}

// Revalidate recomputes the derived state for the current form.
func (c *Controller) Revalidate() {
	c.revalidate()
}

// Subscribe registers fn to receive a View after every revalidation and
// submission. The returned func removes the observer.
func (c *Controller) Subscribe(fn func(View)) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() {
		delete(c.observers, id)
	}
}

// State returns a copy of the current form state.
func (c *Controller) State() order.FormState {
	return c.state.Clone()
}

// Errors returns a copy of the current field errors.
func (c *Controller) Errors() validation.Errors {
	return maps.Clone(c.errors)
}

// ToppingsError reports whether the toppings notice should be shown.
func (c *Controller) ToppingsError() bool {
	return c.toppingsError
}

// Valid reports whether the form can be submitted.
func (c *Controller) Valid() bool {
	return c.valid
}

// Result returns the outcome of the last submission.
func (c *Controller) Result() SubmissionResult {
	return c.result
}

// Catalog returns the topping catalog the controller accepts.
func (c *Controller) Catalog() order.Catalog {
	return c.catalog
}

func (c *Controller) revalidate() {
	result := c.validate(c.state)
	c.errors = maps.Clone(result.Errors)
	if c.errors == nil {
		c.errors = validation.Errors{}
	}
	c.toppingsError = result.ToppingsMissing
	c.valid = len(c.errors) == 0 && len(c.state.Toppings) > 0
	c.notify()
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	view := c.View()
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.observers[id]; ok {
			fn(view)
		}
	}
}
