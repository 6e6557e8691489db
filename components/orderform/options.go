package orderform

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
)

const (
	defaultRoutePath    = "/order"
	defaultValidatePath = "/validate"
	defaultFormatParam  = "format"
	defaultRenderer     = "html"
	defaultMaxFormBytes = 64 << 10
)

// GuardFunc authorizes a request before the form is served. A returned
// error implementing HTTPError picks the response status.
type GuardFunc func(r *http.Request) error

// HiddenFieldsFunc returns hidden inputs for the form rendered in response
// to r, such as a CSRF token.
type HiddenFieldsFunc func(r *http.Request) []render.HiddenField

type Options struct {
	RoutePath    string
	ValidatePath string
	FormatParam  string
	Renderer     string
	MaxFormBytes int64
	Guard        GuardFunc
	HiddenFields HiddenFieldsFunc

	Catalog   order.Catalog
	Theme     *theme.Manifest
	Renderers []render.Renderer
	Logger    *log.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		ValidatePath: defaultValidatePath,
		FormatParam:  defaultFormatParam,
		Renderer:     defaultRenderer,
		MaxFormBytes: defaultMaxFormBytes,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.ValidatePath == "" {
		opts.ValidatePath = defaultValidatePath
	}
	if opts.FormatParam == "" {
		opts.FormatParam = defaultFormatParam
	}
	if opts.Renderer == "" {
		opts.Renderer = defaultRenderer
	}
	if opts.MaxFormBytes <= 0 {
		opts.MaxFormBytes = defaultMaxFormBytes
	}
	if opts.Catalog.Len() == 0 {
		opts.Catalog = order.DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderers != nil {
		opts.Renderers = append([]render.Renderer{}, opts.Renderers...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithValidatePath sets the revalidation route, relative to the form route.
func WithValidatePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValidatePath = path
	}
}

// WithFormatParam names the query parameter that selects a renderer.
func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormatParam = name
	}
}

// WithRenderer picks the renderer used when the request does not ask for one.
func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = name
	}
}

// WithRenderers registers additional renderers next to the built-in HTML one.
func WithRenderers(renderers ...render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = append(o.Renderers, renderers...)
	}
}

func WithMaxFormBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxFormBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithHiddenFields(fn HiddenFieldsFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HiddenFields = fn
	}
}

func WithCatalog(catalog order.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = catalog
	}
}

// WithTheme applies a go-theme manifest to the HTML form.
func WithTheme(manifest *theme.Manifest) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = manifest
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
