package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/cli"
	"github.com/spf13/cobra"
)

func keywordsCmd() *cobra.Command {
	var (
		top    int
		output string
	)

	cmd := &cobra.Command{
		Use:   "keywords FILE|-",
		Short: "Show the most frequent keywords of a file",
		Long: `Print the highest-frequency words of a file after dropping stop-words and words
shorter than three letters. Use - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if top < 0 {
				return errors.New("--top must not be negative")
			}
			if !cmd.Flags().Changed("top") {
				top = currentConfig().Categorize.TopN
			}

			name, data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			text, err := newExtractor(currentConfig()).Extract(cmd.Context(), name, data)
			if err != nil {
				return err
			}

			keywords := classification.ExtractKeywords(text, top)
			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, map[string]any{
					"file":     name,
					"keywords": keywords,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderKeywords(keywords))
			return err
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", classification.DefaultTopN, "number of keywords to show")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json, yaml)")

	return cmd
}
