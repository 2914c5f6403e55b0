package main

import (
	"fmt"

	"github.com/Veraticus/sift/internal/cli"
	"github.com/Veraticus/sift/internal/model"
	"github.com/spf13/cobra"
)

// categorizeResult is the structured output of the categorize command.
type categorizeResult struct {
	File     string             `json:"file" yaml:"file"`
	Category model.CategoryName `json:"category" yaml:"category"`
	Keywords []string           `json:"keywords" yaml:"keywords"`
	Score    int                `json:"score" yaml:"score"`
}

func categorizeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categorize FILE|-",
		Short: "Categorize a single file",
		Long: `Extract the keywords of a file and print the semantic category it belongs to,
together with the score that decided it. Use - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			cfg := currentConfig()
			org, err := newOrganizer(cfg)
			if err != nil {
				return err
			}

			name, data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			text, err := newExtractor(cfg).Extract(cmd.Context(), name, data)
			if err != nil {
				return err
			}

			analysis := org.Analyzer().Analyze(text)
			result := categorizeResult{
				File:     name,
				Category: analysis.Result.Category,
				Keywords: analysis.Keywords,
				Score:    analysis.Result.Score,
			}

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", cli.BoldStyle.Render(result.File), cli.RenderCategory(result.Category))
			fmt.Fprintf(out, "Score: %d\n", result.Score)
			_, err = fmt.Fprintf(out, "Keywords: %s\n", cli.RenderKeywords(result.Keywords))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json, yaml)")

	return cmd
}
