package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/testsupport"
	"github.com/goliatone/go-orderform/pkg/validation"
)

func fill(t *testing.T, c *Controller, name, size string, toppings ...string) {
	t.Helper()
	if err := c.OnFieldChange(order.FieldFullName, name); err != nil {
		t.Fatalf("full name: %v", err)
	}
	if err := c.OnFieldChange(order.FieldSize, size); err != nil {
		t.Fatalf("size: %v", err)
	}
	for _, topping := range toppings {
		if err := c.OnToppingToggle(topping, true); err != nil {
			t.Fatalf("topping %s: %v", topping, err)
		}
	}
}

func TestNew_ValidatesInitialState(t *testing.T) {
	c := New()

	if c.Valid() {
		t.Fatalf("initial form must not be valid")
	}
	if !c.ToppingsError() {
		t.Fatalf("expected toppings notice on initial form")
	}
	want := validation.Errors{
		order.FieldFullName: validation.MessageFullNameTooShort,
		order.FieldSize:     validation.MessageSizeIncorrect,
	}
	if diff := cmp.Diff(want, c.Errors()); diff != "" {
		t.Fatalf("initial errors mismatch (-want +got):\n%s", diff)
	}
	if c.Result().Status != StatusNone {
		t.Fatalf("expected no submission result, got %q", c.Result().Status)
	}
}

func TestSubmit_SuccessResetsForm(t *testing.T) {
	c := New()
	fill(t, c, "Jane Doe", "M", "Pepperoni")
	if !c.Valid() {
		t.Fatalf("expected valid form, errors: %+v", c.Errors())
	}

	result := c.OnSubmit()
	if !result.Succeeded() {
		t.Fatalf("expected success, got %q", result.Status)
	}
	want := testsupport.ValidConfirmation
	if got := result.Message(); got != want {
		t.Fatalf("message mismatch:\nwant %q\ngot  %q", want, got)
	}

	if diff := cmp.Diff(testsupport.ValidOrder(), result.Snapshot); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if !c.State().Empty() {
		t.Fatalf("expected form reset, got %+v", c.State())
	}
	if c.Valid() {
		t.Fatalf("fresh form must not be valid")
	}
	if !c.ToppingsError() {
		t.Fatalf("expected toppings notice on the fresh form")
	}
	wantErrors := validation.Errors{
		order.FieldFullName: validation.MessageFullNameTooShort,
		order.FieldSize:     validation.MessageSizeIncorrect,
	}
	if diff := cmp.Diff(wantErrors, c.Errors()); diff != "" {
		t.Fatalf("fresh form errors mismatch (-want +got):\n%s", diff)
	}
	if !c.Result().Succeeded() {
		t.Fatalf("success result must persist after the reset")
	}

	// Submitting the fresh form is blocked until it is valid again.
	if again := c.OnSubmit(); !again.Failed() {
		t.Fatalf("expected failure on fresh form, got %q", again.Status)
	}
}

func TestSubmit_ZeroToppingsFails(t *testing.T) {
	c := New()
	fill(t, c, "Jane Doe", "M")

	if c.Valid() {
		t.Fatalf("form without toppings must not be valid")
	}
	if !c.ToppingsError() {
		t.Fatalf("expected toppings notice")
	}
	if len(c.Errors()) != 0 {
		t.Fatalf("expected no field errors, got %+v", c.Errors())
	}

	result := c.OnSubmit()
	if !result.Failed() {
		t.Fatalf("expected failure, got %q", result.Status)
	}
	if result.Message() != FailureMessage {
		t.Fatalf("unexpected failure message %q", result.Message())
	}
	if c.State().FullName != "Jane Doe" {
		t.Fatalf("failure must keep the form state")
	}
}

func TestToppingToggle(t *testing.T) {
	c := New()
	fill(t, c, "Jane Doe", "L", "Ham", "Pineapple", "Ham")

	if diff := cmp.Diff([]string{"Ham", "Pineapple"}, c.State().Toppings); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}
	if err := c.OnToppingToggle("Ham", false); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	if err := c.OnToppingToggle("Pineapple", false); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	if c.Valid() || !c.ToppingsError() {
		t.Fatalf("expected invalid form after removing every topping")
	}

	err := c.OnToppingToggle("Anchovies", true)
	if !errors.Is(err, ErrUnknownTopping) {
		t.Fatalf("expected ErrUnknownTopping, got %v", err)
	}
}

func TestOnFieldChange_UnknownField(t *testing.T) {
	c := New()
	err := c.OnFieldChange("crust", "thin")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSubscribe_ReceivesEveryRevalidation(t *testing.T) {
	c := New()
	var views []View
	unsubscribe := c.Subscribe(func(v View) { views = append(views, v) })

	fill(t, c, "Jane Doe", "S", "Mushrooms")
	if len(views) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(views))
	}
	if !views[2].Valid {
		t.Fatalf("last view should be valid")
	}

	c.OnSubmit()
	if len(views) != 4 || views[3].Result.Status != StatusSuccess {
		t.Fatalf("expected submission notification, got %d views", len(views))
	}
	if !strings.Contains(views[3].Message, "small pizza with 1 topping") {
		t.Fatalf("unexpected message %q", views[3].Message)
	}

	unsubscribe()
	_ = c.OnFieldChange(order.FieldFullName, "Jo")
	if len(views) != 4 {
		t.Fatalf("expected no notifications after unsubscribe")
	}
}

func TestApply_ReplaysForm(t *testing.T) {
	c := New()
	fill(t, c, "Old Name", "S", "Ham")

	err := c.Apply(order.FormState{
		FullName: "Jane Doe",
		Size:     order.SizeLarge,
		Toppings: []string{"Pepperoni", "Mushrooms"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := order.FormState{FullName: "Jane Doe", Size: order.SizeLarge, Toppings: []string{"Pepperoni", "Mushrooms"}}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	if err := c.Apply(order.FormState{Toppings: []string{"Anchovies"}}); !errors.Is(err, ErrUnknownTopping) {
		t.Fatalf("expected ErrUnknownTopping, got %v", err)
	}
}

func TestWithCatalogAndLogger(t *testing.T) {
	catalog, err := order.NewCatalog([]order.ToppingOption{{ID: "x", Label: "Basil"}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	c := New(WithCatalog(catalog), WithLogger(logger))
	if err := c.OnToppingToggle("Pepperoni", true); !errors.Is(err, ErrUnknownTopping) {
		t.Fatalf("default toppings must be rejected with a custom catalog")
	}
	if err := c.OnToppingToggle("Basil", true); err != nil {
		t.Fatalf("basil: %v", err)
	}
	if !strings.Contains(buf.String(), "topping toggled") {
		t.Fatalf("expected debug log, got %q", buf.String())
	}
}

func TestValidityIgnoresValidatorFlag(t *testing.T) {
	c := New(WithValidator(func(order.FormState) validation.Result {
		return validation.Result{Errors: validation.Errors{}, Valid: true}
	}))
	if c.Valid() {
		t.Fatalf("validity must still require at least one topping")
	}
	if err := c.OnToppingToggle("Ham", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !c.Valid() {
		t.Fatalf("expected valid form once a topping is selected")
	}
}
