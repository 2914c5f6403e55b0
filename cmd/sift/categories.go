package main

import (
	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var (
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the semantic categories",
		Long:  `Display every category with its keyword vocabulary. Others is the fallback and has none.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			categories := classification.Categories()
			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, categories)
			}
			return cli.WriteCategories(cmd.OutOrStdout(), categories, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show every keyword")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json, yaml)")

	return cmd
}
