package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-profileform/pkg/renderers/tui"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill the form in an interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	_, err := tui.Run(cmd.Context(),
		tui.WithSubmitter(a.submitter()),
		tui.WithPresenter(a.presenter()),
		tui.WithLogger(a.logger),
	)
	return err
}
