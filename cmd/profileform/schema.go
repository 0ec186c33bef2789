package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/openapi"
)

func (a *app) schemaCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document of the submission API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var options []openapi.Option
			if server != "" {
				options = append(options, openapi.WithServer(server))
			}
			doc, err := openapi.Build(cmd.Context(), model.ProfileForm(), options...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(doc.Raw()); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "server URL to list in the document")
	return cmd
}
