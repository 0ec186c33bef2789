package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-profileform/pkg/renderers/prompt"
)

func (a *app) promptCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill the form one question at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := prompt.New(
				prompt.WithOutput(cmd.OutOrStdout()),
				prompt.WithSubmitter(a.submitter()),
				prompt.WithPresenter(a.presenter()),
				prompt.WithOutputFormat(format),
				prompt.WithLogger(a.logger),
			)
			out, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "summary format: text or json")
	return cmd
}
