package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/model"
	"github.com/Veraticus/sift/internal/organizer"
)

// RenderKeywords joins keywords into chips. An empty list renders a placeholder.
func RenderKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return SubtleStyle.Render("(no keywords)")
	}
	chips := make([]string, len(keywords))
	for i, k := range keywords {
		chips[i] = KeywordStyle.Render(k)
	}
	return strings.Join(chips, " ")
}

// RenderCategory renders a category name with its icon and color.
func RenderCategory(name model.CategoryName) string {
	cfg := classification.GetCategoryConfig(name)
	return CategoryStyle(cfg).Render(cfg.Icon + " " + string(cfg.Name))
}

// WriteFolders prints each folder with its files.
func WriteFolders(w io.Writer, folders []model.SemanticFolder) error {
	var b strings.Builder
	for _, folder := range folders {
		cfg := classification.GetCategoryConfig(folder.Name)
		header := fmt.Sprintf("%s %s (%d)", folder.Icon, folder.Name, len(folder.Files))
		b.WriteString(CategoryStyle(cfg).Render(header))
		b.WriteString("\n")

		if len(folder.Files) == 0 {
			b.WriteString("  " + SubtleStyle.Render("empty") + "\n")
			continue
		}
		for _, f := range folder.Files {
			fmt.Fprintf(&b, "  %s %s\n    %s\n",
				BoldStyle.Render(f.Name),
				SubtleStyle.Render(extract.FormatFileSize(f.Size)),
				RenderKeywords(f.Keywords))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFiles prints a flat file listing.
func WriteFiles(w io.Writer, files []model.OrganizedFile) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No files match."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			f.Name,
			RenderCategory(f.Category),
			extract.FormatFileSize(f.Size),
			strings.Join(f.Keywords, ", "))
	}
	return tw.Flush()
}

// WriteStats prints totals and the per-category breakdown.
func WriteStats(w io.Writer, stats model.Stats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Files: %d\nTotal size: %s\n", stats.TotalFiles, extract.FormatFileSize(stats.TotalSize))
	for _, c := range stats.Categories {
		fmt.Fprintf(&b, "  %s: %d\n", RenderCategory(c.Name), c.Count)
	}
	_, err := fmt.Fprintln(w, RenderBox(ChartIcon+" Summary", strings.TrimRight(b.String(), "\n")))
	return err
}

// WriteFailures prints uploads that could not be decoded.
func WriteFailures(w io.Writer, failures []organizer.Failure) error {
	for _, f := range failures {
		if _, err := fmt.Fprintln(w, FormatError(fmt.Sprintf("Failed to process %s: %s", f.Name, f.Message))); err != nil {
			return err
		}
	}
	return nil
}

// WriteCategories prints the category registry as a table.
func WriteCategories(w io.Writer, categories []model.CategoryConfig, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		BoldStyle.Render("Category"),
		BoldStyle.Render("Keywords"),
		BoldStyle.Render("Vocabulary"))

	for _, c := range categories {
		vocab := SubtleStyle.Render("(fallback)")
		if len(c.Keywords) > 0 {
			vocab = strings.Join(c.Keywords, ", ")
			if !verbose && len(c.Keywords) > 6 {
				vocab = strings.Join(c.Keywords[:6], ", ") + ", …"
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", RenderCategory(c.Name), len(c.Keywords), vocab)
	}
	return tw.Flush()
}
