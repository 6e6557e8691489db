package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/render"
)

func TestHiddenFieldsRoundTripThroughContext(t *testing.T) {
	ctx := render.WithHiddenFields(context.Background(),
		render.CSRFToken("_csrf", "token123"),
		render.Hidden(" version ", 4),
		render.Hidden("  ", "skip"),
		render.Hidden("fullName", "spoofed"),
	)
	ctx = render.WithHiddenFields(ctx, render.CSRFToken("_csrf", "rotated"))

	want := []render.HiddenField{
		{Name: "_csrf", Value: "rotated"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, render.HiddenFieldsFrom(ctx)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenFieldsFromEmptyContext(t *testing.T) {
	if got := render.HiddenFieldsFrom(context.Background()); got != nil {
		t.Fatalf("expected no hidden fields, got %#v", got)
	}
	ctx := render.WithHiddenFields(context.Background())
	if got := render.HiddenFieldsFrom(ctx); got != nil {
		t.Fatalf("expected no hidden fields, got %#v", got)
	}
}
