package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	rendertemplate "github.com/goliatone/go-orderform/pkg/render/template"
	"github.com/goliatone/go-orderform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-orderform/pkg/validation"
)

const defaultTitle = "Order Your Pizza"

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	action           string
	validateURL      string
	title            string
	stylesheet       *string
	manifest         *theme.Manifest
}

// WithTemplatesFS supplies an alternate template bundle. The bundle must
// contain templates/order.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template engine. The renderer seeds
// the engine's global context and registers its filters on it, so an engine
// should not be shared between renderers with different settings.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAction sets the form action URL.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
	}
}

// WithValidateURL enables live revalidation: the form posts its values to
// url on every change and toggles the submit button from the JSON reply.
func WithValidateURL(url string) Option {
	return func(cfg *config) {
		cfg.validateURL = strings.TrimSpace(url)
	}
}

// WithTitle overrides the form heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithStylesheet replaces the inlined stylesheet. An empty string disables it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// WithThemeManifest emits the manifest tokens as CSS custom properties on
// the form and tags the form with the theme name.
func WithThemeManifest(manifest *theme.Manifest) Option {
	return func(cfg *config) {
		cfg.manifest = manifest
	}
}

// Renderer renders a controller view as an HTML form.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options. Settings
// that do not change between views are handed to the engine as globals.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), title: defaultTitle}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	globals := cfg.globals()
	filters := templateFilters()

	engine := cfg.templateRenderer
	if engine == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templatesDir != "" {
			source = gotemplate.WithBaseDir(cfg.templatesDir)
		}
		built, err := gotemplate.New(
			source,
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithFilters(filters),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		return &Renderer{templates: built}, nil
	}

	for name, fn := range filters {
		if err := engine.RegisterFilter(name, fn); err != nil && !errors.Is(err, rendertemplate.ErrFilterExists) {
			return nil, fmt.Errorf("html renderer: register filter %q: %w", name, err)
		}
	}
	if err := engine.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("html renderer: seed template globals: %w", err)
	}
	return &Renderer{templates: engine}, nil
}

func (cfg config) globals() map[string]any {
	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}
	script := ""
	if cfg.validateURL != "" {
		script = liveScript()
	}
	globals := map[string]any{
		"title":           cfg.title,
		"action":          cfg.action,
		"validate_url":    cfg.validateURL,
		"script":          script,
		"stylesheet":      stylesheet,
		"toppings_notice": validation.MessageToppingsMissing,
		"theme_name":      "",
		"tokens":          []map[string]any(nil),
	}
	if cfg.manifest != nil {
		globals["theme_name"] = cssIdent(cfg.manifest.Name)
		globals["tokens"] = themeTokens(cfg.manifest.Tokens)
	}
	return globals
}

// templateFilters are registered on every engine the renderer uses.
func templateFilters() map[string]rendertemplate.FilterFunc {
	return map[string]rendertemplate.FilterFunc{
		"size_label": sizeLabel,
	}
}

// sizeLabel maps a size code to its display label. Unknown codes pass
// through unchanged.
func sizeLabel(input any, _ any) (any, error) {
	code := fmt.Sprint(input)
	if label := order.Size(code).Label(); label != "" {
		return label, nil
	}
	return code, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the order form markup for view.
func (r *Renderer) Render(ctx context.Context, view controller.View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	data := viewData(view)
	data["hidden"] = hiddenFields(render.HiddenFieldsFrom(ctx))

	result, err := r.templates.RenderTemplate(TemplateName, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func viewData(view controller.View) map[string]any {
	errs := make(map[string]any, len(view.Errors))
	for field, message := range view.Errors {
		errs[field] = message
	}

	sizes := make([]map[string]any, 0, len(order.Sizes()))
	for _, size := range order.Sizes() {
		sizes = append(sizes, map[string]any{
			"value":    string(size),
			"selected": view.State.Size == size,
		})
	}

	toppings := make([]map[string]any, 0, view.Catalog.Len())
	for _, opt := range view.Catalog.Options() {
		toppings = append(toppings, map[string]any{
			"id":      opt.ID,
			"label":   opt.Label,
			"icon":    opt.Icon,
			"checked": view.State.HasTopping(opt.Label),
		})
	}

	return map[string]any{
		"values": map[string]any{
			order.FieldFullName: view.State.FullName,
			order.FieldSize:     string(view.State.Size),
		},
		"errors":         errs,
		"toppings_error": view.ToppingsError,
		"valid":          view.Valid,
		"status":         string(view.Result.Status),
		"message":        view.Message,
		"sizes":          sizes,
		"toppings":       toppings,
	}
}

var (
	identPattern      = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	tokenValueCleaner = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "")
)

func hiddenFields(fields []render.HiddenField) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		out = append(out, map[string]any{"name": field.Name, "value": field.Value})
	}
	return out
}

func cssIdent(raw string) string {
	return strings.Trim(identPattern.ReplaceAllString(strings.TrimSpace(raw), "-"), "-")
}

func themeTokens(tokens map[string]string) []map[string]any {
	if len(tokens) == 0 {
		return nil
	}
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		ident := cssIdent(name)
		value := strings.TrimSpace(tokenValueCleaner.Replace(tokens[name]))
		if ident == "" || value == "" {
			continue
		}
		out = append(out, map[string]any{"name": ident, "value": value})
	}
	return out
}
