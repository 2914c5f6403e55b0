package main

import (
	"github.com/Veraticus/sift/internal/cli"
	"github.com/Veraticus/sift/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse PATH...",
		Short: "Browse organized files interactively",
		Long: `Organize the files under the given paths and open them in a terminal browser.
Switch folders with tab, search with /, remove a file with d.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := newOrganizer(currentConfig())
			if err != nil {
				return err
			}

			report, err := ingest(cmd.Context(), org, args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := cli.WriteFailures(cmd.ErrOrStderr(), report.Failed); err != nil {
				return err
			}

			return tui.Run(cmd.Context(), org)
		},
	}
}
