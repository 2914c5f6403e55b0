package main

import (
	"fmt"

	"github.com/Veraticus/sift/internal/cli"
	"github.com/Veraticus/sift/internal/model"
	"github.com/Veraticus/sift/internal/organizer"
	"github.com/spf13/cobra"
)

// organizeResult is the structured output of the organize command.
type organizeResult struct {
	Folders []model.SemanticFolder `json:"folders,omitempty" yaml:"folders,omitempty"`
	Files   []model.OrganizedFile  `json:"files,omitempty" yaml:"files,omitempty"`
	Failed  []organizer.Failure    `json:"failed,omitempty" yaml:"failed,omitempty"`
	Stats   model.Stats            `json:"stats" yaml:"stats"`
}

func organizeCmd() *cobra.Command {
	var (
		category   string
		search     string
		output     string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "organize PATH...",
		Short: "Sort files into semantic folders",
		Long: `Read every file under the given paths, extract its keywords and assign it to a
semantic folder. Plain text, HTML and PDF files are supported.

Use --category and --search to narrow the listing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			org, err := newOrganizer(currentConfig())
			if err != nil {
				return err
			}

			var filter model.CategoryName
			if category != "" {
				if filter, err = model.ParseCategoryName(category); err != nil {
					return err
				}
			}
			if err := org.SetCategoryFilter(filter); err != nil {
				return err
			}
			org.SetSearchQuery(search)

			progressOut := cmd.ErrOrStderr()
			if noProgress || output != outputText {
				progressOut = nil
			}

			report, err := ingest(cmd.Context(), org, args, progressOut)
			if err != nil {
				return err
			}

			filtered := category != "" || search != ""
			result := organizeResult{Failed: report.Failed, Stats: org.Stats()}
			if filtered {
				result.Files = org.Files()
			} else {
				result.Folders = org.Folders()
			}

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, result)
			}
			return writeOrganizeText(cmd, result, filtered)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list files in this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only list files whose name, keywords or text contain this")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")

	return cmd
}

func writeOrganizeText(cmd *cobra.Command, result organizeResult, filtered bool) error {
	out := cmd.OutOrStdout()

	if len(result.Failed) > 0 {
		if err := cli.WriteFailures(cmd.ErrOrStderr(), result.Failed); err != nil {
			return err
		}
	}

	write := func() error { return cli.WriteFolders(out, result.Folders) }
	if filtered {
		write = func() error { return cli.WriteFiles(out, result.Files) }
	}
	if err := write(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := cli.WriteStats(out, result.Stats); err != nil {
		return err
	}

	if result.Stats.TotalFiles == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("No files could be organized"))
	}
	return nil
}
