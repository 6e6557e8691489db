package orderform

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	"github.com/goliatone/go-orderform/pkg/renderers/html"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value, assuming the form is mounted at the root.
func HandlerWithOptions(opts Options) http.Handler {
	return handlerAt("", opts)
}

type formHandler struct {
	opts         Options
	registry     *render.Registry
	formPath     string
	validatePath string
}

func handlerAt(basePath string, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	formPath := mountPath(basePath, opts.RoutePath)
	validatePath := joinRoute(formPath, opts.ValidatePath)

	h, err := newFormHandler(opts, formPath, validatePath)
	if err != nil {
		opts.Logger.Error("orderform: build handler", "err", err)
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}
	return h
}

func newFormHandler(opts Options, formPath, validatePath string) (*formHandler, error) {
	registry := render.NewRegistry()
	for _, renderer := range opts.Renderers {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("orderform: register renderer: %w", err)
		}
	}
	if !registry.Has(defaultRenderer) {
		renderer, err := html.New(
			html.WithAction(formPath),
			html.WithValidateURL(validatePath),
			html.WithThemeManifest(opts.Theme),
		)
		if err != nil {
			return nil, fmt.Errorf("orderform: html renderer: %w", err)
		}
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("orderform: register renderer: %w", err)
		}
	}
	if !registry.Has(opts.Renderer) {
		return nil, fmt.Errorf("orderform: default renderer %q not registered", opts.Renderer)
	}
	return &formHandler{
		opts:         opts,
		registry:     registry,
		formPath:     formPath,
		validatePath: validatePath,
	}, nil
}

func (h *formHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
	}

	if isValidateRoute(r.URL.Path, h.validatePath) {
		h.serveValidate(w, r)
		return
	}
	h.serveForm(w, r)
}

func (h *formHandler) serveForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.writeView(w, r, h.newController().View(), http.StatusOK)
	case http.MethodPost:
		values, err := h.readValues(w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		ctrl := h.newController()
		if err := ctrl.Apply(values); err != nil {
			writeError(w, StatusError{Code: http.StatusBadRequest, Err: err})
			return
		}
		result := ctrl.OnSubmit()

		status := http.StatusOK
		if !result.Succeeded() {
			status = http.StatusUnprocessableEntity
		}
		h.opts.Logger.Info("order submitted", "status", result.Status, "remote", r.RemoteAddr)
		h.writeView(w, r, ctrl.View(), status)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *formHandler) serveValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	values, err := h.readValues(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	ctrl := h.newController()
	if err := ctrl.Apply(values); err != nil {
		writeError(w, StatusError{Code: http.StatusBadRequest, Err: err})
		return
	}
	h.opts.Logger.Debug("order revalidated", "valid", ctrl.Valid(), "errors", len(ctrl.Errors()))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(ctrl.View())
}

func (h *formHandler) newController() *controller.Controller {
	return controller.New(
		controller.WithCatalog(h.opts.Catalog),
		controller.WithLogger(h.opts.Logger),
	)
}

// readValues decodes a posted form, either urlencoded or JSON.
func (h *formHandler) readValues(w http.ResponseWriter, r *http.Request) (order.FormState, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxFormBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var values order.FormState
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&values); err != nil {
			return order.FormState{}, requestError(err)
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return order.FormState{}, requestError(err)
	}
	return order.FormState{
		FullName: r.PostForm.Get(order.FieldFullName),
		Size:     order.Size(r.PostForm.Get(order.FieldSize)),
		Toppings: r.PostForm[order.FieldToppings],
	}, nil
}

func (h *formHandler) writeView(w http.ResponseWriter, r *http.Request, view controller.View, status int) {
	name := r.URL.Query().Get(h.opts.FormatParam)
	if name == "" {
		name = h.opts.Renderer
	}
	renderer, err := h.registry.Get(name)
	if err != nil {
		writeError(w, StatusError{Code: http.StatusNotAcceptable, Err: err})
		return
	}

	ctx := r.Context()
	if h.opts.HiddenFields != nil {
		ctx = render.WithHiddenFields(ctx, h.opts.HiddenFields(r)...)
	}
	body, err := renderer.Render(ctx, view)
	if err != nil {
		h.opts.Logger.Error("orderform: render", "renderer", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func requestError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return StatusError{Code: http.StatusRequestEntityTooLarge, Err: err}
	}
	return StatusError{Code: http.StatusBadRequest, Err: err}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	msg := http.StatusText(code)
	if code < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	http.Error(w, msg, code)
}

func isValidateRoute(path, validatePath string) bool {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	return path == validatePath
}
