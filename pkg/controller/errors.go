package controller

import "errors"

var (
	// ErrUnknownField is returned when a field event targets a field the form
	// does not have.
	ErrUnknownField = errors.New("controller: unknown field")
	// ErrUnknownTopping is returned when a topping toggle names a label that
	// is not in the catalog.
	ErrUnknownTopping = errors.New("controller: unknown topping")
)
