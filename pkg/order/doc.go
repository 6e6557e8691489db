// Package order defines the pizza order form state, the topping catalog the
// form offers, and the confirmation text shown after a successful submission.
// Types here carry no validation logic; see pkg/validation for the ruleset and
// pkg/controller for the event loop that keeps validity in sync with state.
package order
