package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// TextRenderer renders a view as styled terminal text. It implements
// render.Renderer so the CLI can register it next to the HTML renderer.
type TextRenderer struct {
	theme  Theme
	styles Styles
}

// NewTextRenderer builds a text renderer with the given theme and styles.
func NewTextRenderer(theme Theme, styles Styles) *TextRenderer {
	return &TextRenderer{theme: theme, styles: styles}
}

func (r *TextRenderer) Name() string {
	return "text"
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render lists the current values, field errors, the toppings notice, and
// the last submission outcome.
func (r *TextRenderer) Render(ctx context.Context, view controller.View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b strings.Builder

	if view.Result.Status != controller.StatusNone {
		b.WriteString(r.Notice(view.Result))
		b.WriteByte('\n')
	}

	name := view.State.FullName
	size := view.State.Size.Label()
	if size == "" {
		size = "-"
	}
	toppings := "-"
	if len(view.State.Toppings) > 0 {
		toppings = strings.Join(view.State.Toppings, ", ")
	}
	fmt.Fprintf(&b, "%s %s\n", r.styles.Muted.Render("Full Name:"), name)
	fmt.Fprintf(&b, "%s %s\n", r.styles.Muted.Render("Size:"), size)
	fmt.Fprintf(&b, "%s %s\n", r.styles.Muted.Render("Toppings:"), toppings)

	for _, line := range r.ErrorLines(view) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// Notice formats the success or failure line for a result.
func (r *TextRenderer) Notice(result controller.SubmissionResult) string {
	switch result.Status {
	case controller.StatusSuccess:
		return r.styles.Success.Render(joinPrefix(r.theme.SuccessPrefix, result.Message()))
	case controller.StatusFailure:
		return r.styles.Failure.Render(joinPrefix(r.theme.ErrorPrefix, result.Message()))
	default:
		return ""
	}
}

// ErrorLines returns one styled line per field error, in form order, plus
// the toppings notice when it is raised.
func (r *TextRenderer) ErrorLines(view controller.View) []string {
	fields := make([]string, 0, len(view.Errors))
	for field := range view.Errors {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		if ri, rj := fieldRank(fields[i]), fieldRank(fields[j]); ri != rj {
			return ri < rj
		}
		return fields[i] < fields[j]
	})

	lines := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		lines = append(lines, r.styles.Error.Render(joinPrefix(r.theme.ErrorPrefix, view.Errors[field])))
	}
	if view.ToppingsError {
		lines = append(lines, r.styles.Error.Render(joinPrefix(r.theme.ErrorPrefix, validation.MessageToppingsMissing)))
	}
	return lines
}

func fieldRank(field string) int {
	switch field {
	case order.FieldFullName:
		return 0
	case order.FieldSize:
		return 1
	default:
		return 2
	}
}

func joinPrefix(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	return prefix + " " + msg
}
