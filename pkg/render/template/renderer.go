package template

import (
	"errors"
	"io"
)

// ErrFilterExists reports a filter name that is already registered.
var ErrFilterExists = errors.New("template: filter already registered")

// FilterFunc is a template filter over plain Go values.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer is the engine contract HTML renderers rely on. Output is
// returned as a string and, when writers are supplied, copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
