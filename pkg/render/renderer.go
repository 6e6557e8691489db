package render

import (
	"context"

	"github.com/goliatone/go-orderform/pkg/controller"
)

// Renderer converts a controller View into a byte representation (HTML,
// terminal text, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view controller.View) ([]byte, error)
}
