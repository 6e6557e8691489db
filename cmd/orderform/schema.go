package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/pkg/validation"
)

func newSchemaCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing the order form",
		RunE: func(_ *cobra.Command, _ []string) error {
			switch format {
			case "yaml", "yml":
				_, err := a.out.Write(validation.RawDocument())
				return err
			case "json":
				doc, err := validation.Document()
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return fmt.Errorf("encode schema: %w", err)
				}
				_, err = fmt.Fprintln(a.out, string(data))
				return err
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
