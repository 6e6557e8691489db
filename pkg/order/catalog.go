package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCatalog is returned when a catalog source defines no toppings.
	ErrEmptyCatalog = errors.New("order: catalog has no toppings")
)

// ToppingOption is a read-only entry of the topping catalog. Icon holds
// optional SVG markup that has already been sanitised.
type ToppingOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Catalog is an ordered, immutable list of topping options.
type Catalog struct {
	options []ToppingOption
	byLabel map[string]int
}

var defaultToppings = []ToppingOption{
	{ID: "1", Label: "Pepperoni"},
	{ID: "2", Label: "Green Peppers"},
	{ID: "3", Label: "Pineapple"},
	{ID: "4", Label: "Mushrooms"},
	{ID: "5", Label: "Ham"},
}

// DefaultCatalog returns the five built-in toppings.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog(defaultToppings)
	if err != nil {
		panic(err)
	}
	return catalog
}

// NewCatalog validates and indexes the provided options. IDs and labels are
// trimmed and must be unique; icon markup is sanitised.
func NewCatalog(options []ToppingOption) (Catalog, error) {
	if len(options) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	out := Catalog{
		options: make([]ToppingOption, 0, len(options)),
		byLabel: make(map[string]int, len(options)),
	}
	ids := make(map[string]struct{}, len(options))
	for idx, raw := range options {
		opt := ToppingOption{
			ID:    strings.TrimSpace(raw.ID),
			Label: strings.TrimSpace(raw.Label),
			Icon:  sanitizeIconMarkup(raw.Icon),
		}
		if opt.Label == "" {
			return Catalog{}, fmt.Errorf("order: topping %d has an empty label", idx)
		}
		if opt.ID == "" {
			opt.ID = fmt.Sprint(idx + 1)
		}
		if _, exists := ids[opt.ID]; exists {
			return Catalog{}, fmt.Errorf("order: duplicate topping id %q", opt.ID)
		}
		if _, exists := out.byLabel[opt.Label]; exists {
			return Catalog{}, fmt.Errorf("order: duplicate topping label %q", opt.Label)
		}
		ids[opt.ID] = struct{}{}
		out.byLabel[opt.Label] = len(out.options)
		out.options = append(out.options, opt)
	}
	return out, nil
}

// Options returns a copy of the catalog entries in display order.
func (c Catalog) Options() []ToppingOption {
	return append([]ToppingOption(nil), c.options...)
}

// Labels returns the topping labels in display order.
func (c Catalog) Labels() []string {
	out := make([]string, 0, len(c.options))
	for _, opt := range c.options {
		out = append(out, opt.Label)
	}
	return out
}

// Lookup finds an option by its label.
func (c Catalog) Lookup(label string) (ToppingOption, bool) {
	idx, ok := c.byLabel[label]
	if !ok {
		return ToppingOption{}, false
	}
	return c.options[idx], true
}

// Len reports the number of toppings.
func (c Catalog) Len() int {
	return len(c.options)
}

type catalogFile struct {
	Toppings []ToppingOption `json:"toppings" yaml:"toppings"`
}

// ParseCatalog decodes a JSON or YAML document of the form
// {"toppings": [{"id": "1", "label": "Pepperoni"}]}.
func ParseCatalog(data []byte, source string) (Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Catalog{}, fmt.Errorf("order: parse %s: %w", source, ErrEmptyCatalog)
	}

	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Catalog{}, fmt.Errorf("order: parse %s: invalid JSON or YAML", source)
		}
	}

	catalog, err := NewCatalog(doc.Toppings)
	if err != nil {
		return Catalog{}, fmt.Errorf("order: parse %s: %w", source, err)
	}
	return catalog, nil
}

// LoadCatalogFS reads a catalog file from fsys.
func LoadCatalogFS(fsys fs.FS, name string) (Catalog, error) {
	if fsys == nil {
		return Catalog{}, fmt.Errorf("order: catalog filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Catalog{}, fmt.Errorf("order: read %s: %w", name, err)
	}
	return ParseCatalog(data, name)
}

// LoadCatalogFile reads a catalog file from disk. An empty path yields the
// default catalog.
func LoadCatalogFile(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
