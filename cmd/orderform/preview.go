package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	"github.com/goliatone/go-orderform/pkg/renderers/html"
	"github.com/goliatone/go-orderform/pkg/renderers/tui"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		rendererName string
		values       order.FormState
		size         string
		submit       bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the form for the given values without serving it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			registry, err := a.renderers()
			if err != nil {
				return err
			}
			renderer, err := registry.Get(rendererName)
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, registry.List())
			}

			ctrl := controller.New(
				controller.WithCatalog(catalog),
				controller.WithLogger(a.logger),
			)
			values.Size = order.Size(size)
			if err := ctrl.Apply(values); err != nil {
				return err
			}
			if submit {
				ctrl.OnSubmit()
			}

			out, err := renderer.Render(cmd.Context(), ctrl.View())
			if err != nil {
				return err
			}
			_, err = a.out.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&rendererName, "renderer", "text", "renderer to use")
	cmd.Flags().StringVar(&values.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&size, "size", "", "size code: S, M or L")
	cmd.Flags().StringArrayVar(&values.Toppings, "topping", nil, "topping label (repeatable)")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit the form before rendering")
	return cmd
}

func (a *app) renderers() (*render.Registry, error) {
	registry := render.NewRegistry()
	htmlRenderer, err := html.New(html.WithThemeManifest(a.themeManifest()))
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(tui.NewTextRenderer(tui.DefaultTheme(), tui.PlainStyles())); err != nil {
		return nil, err
	}
	return registry, nil
}
