package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-orderform/pkg/order"
)

const (
	// AppName is the application name and the config file base name.
	AppName = "orderform"
	// EnvPrefix prefixes environment overrides, e.g. ORDERFORM_SERVER_ADDR.
	EnvPrefix = "ORDERFORM"
)

// Config is the resolved application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogConfig points at a YAML or JSON topping catalog. Empty uses the
// built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ThemeConfig names a theme and the design tokens emitted into the form.
type ThemeConfig struct {
	Name   string            `mapstructure:"name"`
	Tokens map[string]string `mapstructure:"tokens"`
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific file when set.
	ConfigFilePath string
	// SearchPaths are probed for orderform.yaml when no file is forced.
	SearchPaths []string
	// Overrides are applied last, keyed by dotted config key.
	Overrides map[string]any
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:     ":8080",
			BasePath: "/",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load resolves the configuration. The returned path is the config file that
// was read, or empty when only defaults and environment applied.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("config: load canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.base_path", defaults.Server.BasePath)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("catalog.path", defaults.Catalog.Path)
	v.SetDefault("theme.name", defaults.Theme.Name)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config: config file not found: %w", err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("config: read %s: %w", opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		for _, dir := range searchPaths(opts.SearchPaths) {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("config: read config: %w", err)
			}
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("config: parse config: %w", err)
	}
	return &cfg, resolvedPath, nil
}

// LoadCatalog reads the configured topping catalog.
func (c CatalogConfig) LoadCatalog() (order.Catalog, error) {
	return order.LoadCatalogFile(c.Path)
}

func searchPaths(extra []string) []string {
	if len(extra) > 0 {
		return extra
	}
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	return paths
}
