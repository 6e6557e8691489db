package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/pkg/controller"
	"github.com/goliatone/go-orderform/pkg/renderers/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the order form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			ctrl := controller.New(
				controller.WithCatalog(catalog),
				controller.WithLogger(a.logger),
			)
			session := tui.NewSession(
				tui.WithController(ctrl),
				tui.WithPromptDriver(tui.NewSurveyDriver(a.out)),
			)

			result, err := session.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(a.out, "Order cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			if !result.Succeeded() {
				return errors.New("no order was placed")
			}
			return nil
		},
	}
}
