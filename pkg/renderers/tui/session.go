package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
)

// Session walks a user through the order form in the terminal. Every answer
// is applied to the controller as a form event, so validation findings are
// the same as in the browser form.
type Session struct {
	driver PromptDriver
	ctrl   *controller.Controller
	theme  Theme
	styles Styles
	text   *TextRenderer
}

// NewSession constructs a session with the survey driver and a fresh
// controller unless overridden.
func NewSession(options ...Option) *Session {
	s := &Session{
		theme:  DefaultTheme(),
		styles: DefaultStyles(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.ctrl == nil {
		s.ctrl = controller.New()
	}
	s.text = NewTextRenderer(s.theme, s.styles)
	return s
}

// Controller exposes the controller the session drives.
func (s *Session) Controller() *controller.Controller {
	return s.ctrl
}

// Run prompts until an order is accepted or the user stops retrying. The
// last submission result is returned; declining to submit on the first pass
// yields a result with StatusNone.
func (s *Session) Run(ctx context.Context) (controller.SubmissionResult, error) {
	if ctx == nil {
		return controller.SubmissionResult{}, errors.New("tui: context is required")
	}

	if err := s.driver.Info(ctx, s.styles.Title.Render("Order Your Pizza")); err != nil {
		return controller.SubmissionResult{}, err
	}

	for {
		if err := s.promptFields(ctx); err != nil {
			return s.ctrl.Result(), err
		}

		view := s.ctrl.View()
		for _, line := range s.text.ErrorLines(view) {
			if err := s.driver.Info(ctx, line); err != nil {
				return s.ctrl.Result(), err
			}
		}

		submit, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Submit order?",
			Default: view.Valid,
			Help:    "An incomplete order is rejected and kept for editing.",
		})
		if err != nil {
			return s.ctrl.Result(), err
		}

		if submit {
			result := s.ctrl.OnSubmit()
			if err := s.driver.Info(ctx, s.text.Notice(result)); err != nil {
				return result, err
			}
			if result.Succeeded() {
				return result, nil
			}
		} else if err := s.driver.Info(ctx, s.styles.Muted.Render(joinPrefix(s.theme.InfoPrefix, "Order not submitted."))); err != nil {
			return s.ctrl.Result(), err
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Edit the order again?",
			Default: true,
		})
		if err != nil {
			return s.ctrl.Result(), err
		}
		if !again {
			return s.ctrl.Result(), nil
		}
	}
}

func (s *Session) promptFields(ctx context.Context) error {
	state := s.ctrl.State()

	name, err := s.driver.Input(ctx, InputConfig{
		Message: "Full Name",
		Default: state.FullName,
		Help:    "Between 3 and 20 characters.",
	})
	if err != nil {
		return err
	}
	if err := s.ctrl.OnFieldChange(order.FieldFullName, name); err != nil {
		return err
	}

	sizes := order.Sizes()
	labels := make([]string, 0, len(sizes))
	for _, size := range sizes {
		labels = append(labels, size.Label())
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Size",
		Options:      labels,
		DefaultIndex: slices.Index(sizes, state.Size),
		Help:         "Pick one pizza size.",
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(sizes) {
		return fmt.Errorf("%w: size index %d", ErrNoSelection, idx)
	}
	if err := s.ctrl.OnFieldChange(order.FieldSize, string(sizes[idx])); err != nil {
		return err
	}

	toppings := s.ctrl.Catalog().Labels()
	var defaults []int
	for i, label := range toppings {
		if state.HasTopping(label) {
			defaults = append(defaults, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Toppings",
		Options:  toppings,
		Defaults: defaults,
		Help:     "Space toggles a topping. At least one is required.",
		PageSize: len(toppings),
	})
	if err != nil {
		return err
	}
	for i, label := range toppings {
		checked := slices.Contains(picked, i)
		if checked == s.ctrl.State().HasTopping(label) {
			continue
		}
		if err := s.ctrl.OnToppingToggle(label, checked); err != nil {
			return err
		}
	}
	return nil
}
