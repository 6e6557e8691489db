package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSelection is returned when a select prompt yields no usable option.
	ErrNoSelection = errors.New("tui: no option selected")
)
