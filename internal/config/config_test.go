package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/testsupport"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	return testsupport.WriteFile(t, dir, AppName+".yaml", body)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(context.Background(), LoadOptions{SearchPaths: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no config file, got %q", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir, `
server:
  addr: ":9090"
  base_path: /shop
log:
  level: debug
catalog:
  path: toppings.yaml
theme:
  name: night
  tokens:
    accent: "#f60"
`)

	cfg, path, err := Load(context.Background(), LoadOptions{SearchPaths: []string{dir}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
	expected := &Config{
		Server:  ServerConfig{Addr: ":9090", BasePath: "/shop"},
		Log:     LogConfig{Level: "debug"},
		Catalog: CatalogConfig{Path: "toppings.yaml"},
		Theme:   ThemeConfig{Name: "night", Tokens: map[string]string{"accent": "#f60"}},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvAndOverridesTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "server:\n  addr: \":9090\"\nlog:\n  level: warn\n")
	t.Setenv("ORDERFORM_SERVER_ADDR", ":7070")

	cfg, _, err := Load(context.Background(), LoadOptions{
		ConfigFilePath: path,
		Overrides:      map[string]any{"log.level": "debug"},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("expected env override, got %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected flag override, got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Load(ctx, LoadOptions{}); err == nil {
		t.Fatalf("expected canceled context to fail")
	}
}

func TestCatalogConfig_LoadCatalog(t *testing.T) {
	catalog, err := CatalogConfig{}.LoadCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if catalog.Len() != 5 {
		t.Fatalf("expected built-in catalog, got %d toppings", catalog.Len())
	}

	path := testsupport.WriteFile(t, t.TempDir(), "toppings.yaml", "toppings:\n  - id: olive\n    label: Olives\n")
	catalog, err = CatalogConfig{Path: path}.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"Olives"}, catalog.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}
