package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/internal/config"
	"github.com/goliatone/go-orderform/internal/logging"
	"github.com/goliatone/go-orderform/pkg/order"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the state shared by subcommands once the root command has
// resolved configuration.
type app struct {
	cfgFile  string
	logLevel string

	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "orderform",
		Short:         "Pizza order form: web server, terminal session, and schema export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./orderform.yaml or the user config dir)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(a),
		newTUICmd(a),
		newPreviewCmd(a),
		newSchemaCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	overrides := map[string]any{}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		overrides["log.level"] = a.logLevel
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		overrides["server.addr"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("base-path"); f != nil && f.Changed {
		overrides["server.base_path"] = f.Value.String()
	}

	cfg, path, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: a.cfgFile,
		Overrides:      overrides,
	})
	if err != nil {
		return err
	}

	logger, err := logging.New(a.errOut, cfg.Log.Level)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) catalog() (order.Catalog, error) {
	catalog, err := a.cfg.Catalog.LoadCatalog()
	if err != nil {
		return order.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// themeManifest converts the configured theme into a go-theme manifest, or
// nil when no theme is configured.
func (a *app) themeManifest() *theme.Manifest {
	t := a.cfg.Theme
	if t.Name == "" && len(t.Tokens) == 0 {
		return nil
	}
	return &theme.Manifest{
		Name:    t.Name,
		Version: Version,
		Tokens:  t.Tokens,
	}
}
