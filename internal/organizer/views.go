package organizer

import (
	"strings"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/model"
)

// FilterFiles returns the files in category (all when empty) that match query.
// A blank query matches everything; otherwise the lowercased query must occur in the
// lowercased name, in any keyword, or in the lowercased content.
func FilterFiles(files []model.OrganizedFile, category model.CategoryName, query string) []model.OrganizedFile {
	out := make([]model.OrganizedFile, 0, len(files))
	search := strings.TrimSpace(query) != ""
	q := strings.ToLower(query)

	for _, f := range files {
		if category != "" && f.Category != category {
			continue
		}
		if search && !matches(f, q) {
			continue
		}
		out = append(out, cloneFile(f))
	}
	return out
}

func matches(f model.OrganizedFile, q string) bool {
	if strings.Contains(strings.ToLower(f.Name), q) {
		return true
	}
	for _, k := range f.Keywords {
		if strings.Contains(k, q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(f.Content), q)
}

// BuildFolders returns one folder per registry category in registry order.
// The Others folder is left out while it is empty.
func BuildFolders(files []model.OrganizedFile) []model.SemanticFolder {
	categories := classification.Categories()
	folders := make([]model.SemanticFolder, 0, len(categories))

	for _, c := range categories {
		folder := model.SemanticFolder{
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
			Files: []model.OrganizedFile{},
		}
		for _, f := range files {
			if f.Category == c.Name {
				folder.Files = append(folder.Files, cloneFile(f))
			}
		}
		if len(folder.Files) == 0 && c.Name == model.CategoryOthers {
			continue
		}
		folders = append(folders, folder)
	}
	return folders
}

// BuildStats counts files and bytes, listing only categories that hold at least one file.
func BuildStats(files []model.OrganizedFile) model.Stats {
	stats := model.Stats{
		TotalFiles: len(files),
		Categories: []model.CategoryCount{},
	}

	counts := make(map[model.CategoryName]int)
	for _, f := range files {
		stats.TotalSize += f.Size
		counts[f.Category]++
	}

	for _, c := range classification.Categories() {
		if n := counts[c.Name]; n > 0 {
			stats.Categories = append(stats.Categories, model.CategoryCount{Name: c.Name, Count: n})
		}
	}
	return stats
}

func cloneFile(f model.OrganizedFile) model.OrganizedFile {
	f.Keywords = append([]string{}, f.Keywords...)
	return f
}

func cloneFiles(files []model.OrganizedFile) []model.OrganizedFile {
	out := make([]model.OrganizedFile, len(files))
	for i, f := range files {
		out[i] = cloneFile(f)
	}
	return out
}
