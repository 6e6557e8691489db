package render

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-orderform/pkg/order"
)

// HiddenField is a hidden input emitted with the order form, such as a CSRF
// token issued by the host application.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying token under the input name
// the backend expects (for example "_csrf").
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

type hiddenFieldsKey struct{}

// WithHiddenFields returns a context carrying fields for the renderer of the
// current request. Fields already on ctx are kept; later fields win on name
// collisions. Empty names and the order field names are dropped.
func WithHiddenFields(ctx context.Context, fields ...HiddenField) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	existing, _ := ctx.Value(hiddenFieldsKey{}).(map[string]string)
	merged := make(map[string]string, len(existing)+len(fields))
	for name, value := range existing {
		merged[name] = value
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" || reservedField(name) {
			continue
		}
		merged[name] = field.Value
	}
	return context.WithValue(ctx, hiddenFieldsKey{}, merged)
}

// HiddenFieldsFrom returns the hidden fields carried by ctx sorted by name.
func HiddenFieldsFrom(ctx context.Context) []HiddenField {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(hiddenFieldsKey{}).(map[string]string)
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{
			Name:  name,
			Value: fields[name],
		})
	}
	return result
}

func reservedField(name string) bool {
	switch name {
	case order.FieldFullName, order.FieldSize, order.FieldToppings:
		return true
	default:
		return false
	}
}
