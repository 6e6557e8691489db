package validation

import (
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-orderform/pkg/order"
)

// Messages surfaced for failed rules.
const (
	MessageFullNameTooShort = "full name must be at least 3 characters"
	MessageFullNameTooLong  = "full name must be at most 20 characters"
	MessageSizeIncorrect    = "size must be S or M or L"
	MessageToppingsMissing  = "Please select at least one topping."
)

// Rule identifiers mirror the OpenAPI keywords that produced an issue.
const (
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleEnum      = "enum"
	RuleMinItems  = "minItems"
)

// Issue is a single failed rule.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// Errors maps field names to their user-facing message.
type Errors map[string]string

// Result is the outcome of validating one FormState. Toppings are tracked by
// ToppingsMissing and never appear in Errors.
type Result struct {
	Errors          Errors  `json:"errors"`
	ToppingsMissing bool    `json:"toppingsError"`
	Valid           bool    `json:"valid"`
	Issues          []Issue `json:"-"`
}

// Validate checks state against the PizzaOrder schema. It is a pure function:
// the full result is recomputed from state on every call.
func Validate(state order.FormState) Result {
	result := Result{Errors: Errors{}}

	schema, err := Schema()
	if err != nil {
		result.Issues = []Issue{{Message: err.Error()}}
		result.Errors[""] = err.Error()
		return result
	}

	verr := schema.VisitJSON(payload(state), openapi3.MultiErrors())
	result.Issues = collectIssues(verr, nil)

	for _, issue := range result.Issues {
		if issue.Field == order.FieldToppings {
			result.ToppingsMissing = true
			continue
		}
		if _, exists := result.Errors[issue.Field]; exists {
			continue
		}
		result.Errors[issue.Field] = issue.Message
	}

	// The schema already requires one topping; the explicit check keeps the
	// flag correct even if the schema is relaxed.
	if len(state.Toppings) == 0 {
		result.ToppingsMissing = true
	}

	result.Valid = len(result.Errors) == 0 && !result.ToppingsMissing
	return result
}

// Valid reports only the validity flag for state.
func Valid(state order.FormState) bool {
	return Validate(state).Valid
}

func payload(state order.FormState) map[string]any {
	toppings := make([]any, 0, len(state.Toppings))
	for _, label := range state.Toppings {
		toppings = append(toppings, label)
	}
	return map[string]any{
		order.FieldFullName: state.TrimmedName(),
		order.FieldSize:     string(state.Size),
		order.FieldToppings: toppings,
	}
}

func collectIssues(err error, out []Issue) []Issue {
	if err == nil {
		return out
	}

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, inner := range multi {
			out = collectIssues(inner, out)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return append(out, issueFromSchemaError(schemaErr))
	}

	return append(out, Issue{Message: strings.TrimSpace(err.Error())})
}

func issueFromSchemaError(err *openapi3.SchemaError) Issue {
	issue := Issue{Rule: err.SchemaField}
	if pointer := err.JSONPointer(); len(pointer) > 0 {
		issue.Field = pointer[0]
	}
	issue.Message = messageFor(issue.Field, issue.Rule)
	if issue.Message == "" {
		issue.Message = strings.TrimSpace(err.Reason)
	}
	return issue
}

func messageFor(field, rule string) string {
	switch field {
	case order.FieldFullName:
		switch rule {
		case RuleMinLength:
			return MessageFullNameTooShort
		case RuleMaxLength:
			return MessageFullNameTooLong
		}
	case order.FieldSize:
		return MessageSizeIncorrect
	case order.FieldToppings:
		return MessageToppingsMissing
	}
	return ""
}
