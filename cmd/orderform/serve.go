package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/components/orderform"
	"github.com/goliatone/go-orderform/pkg/renderers/tui"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, pattern, err := a.buildMux()
			if err != nil {
				return err
			}
			server := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}
			a.logger.Info("serving order form", "addr", server.Addr, "path", pattern)
			return runServer(cmd.Context(), server)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	cmd.Flags().String("base-path", "", "mount prefix for the form routes (overrides server.base_path)")
	return cmd
}

func (a *app) buildMux() (http.Handler, string, error) {
	catalog, err := a.catalog()
	if err != nil {
		return nil, "", err
	}

	mux := http.NewServeMux()
	pattern, err := orderform.RegisterRoutes(mux, a.cfg.Server.BasePath,
		orderform.WithCatalog(catalog),
		orderform.WithTheme(a.themeManifest()),
		orderform.WithLogger(a.logger),
		orderform.WithRenderers(tui.NewTextRenderer(tui.DefaultTheme(), tui.PlainStyles())),
	)
	if err != nil {
		return nil, "", fmt.Errorf("register routes: %w", err)
	}
	if pattern != "/" {
		mux.Handle("/{$}", http.RedirectHandler(pattern, http.StatusFound))
	}
	return mux, pattern, nil
}

func runServer(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
