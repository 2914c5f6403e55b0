package model

import "time"

// OrganizedFile is an ingested file together with the keywords and category derived from it.
type OrganizedFile struct {
	UploadedAt time.Time    `json:"uploaded_at" yaml:"uploaded_at"`
	ID         string       `json:"id" yaml:"id"`
	Name       string       `json:"name" yaml:"name"`
	Type       string       `json:"type" yaml:"type"`
	Content    string       `json:"-" yaml:"-"`
	Category   CategoryName `json:"category" yaml:"category"`
	Keywords   []string     `json:"keywords" yaml:"keywords"`
	Size       int64        `json:"size" yaml:"size"`
}

// SemanticFolder groups organized files under one category.
type SemanticFolder struct {
	Name  CategoryName    `json:"name" yaml:"name"`
	Icon  string          `json:"icon" yaml:"icon"`
	Color string          `json:"color" yaml:"color"`
	Files []OrganizedFile `json:"files" yaml:"files"`
}

// CategoryCount is the number of files assigned to a category.
type CategoryCount struct {
	Name  CategoryName `json:"name" yaml:"name"`
	Count int          `json:"count" yaml:"count"`
}

// Stats summarizes the organized file set.
type Stats struct {
	Categories []CategoryCount `json:"categories" yaml:"categories"`
	TotalFiles int             `json:"total_files" yaml:"total_files"`
	TotalSize  int64           `json:"total_size" yaml:"total_size"`
}

// PreviewLimit is the number of characters of extracted text shown in a file preview.
const PreviewLimit = 5000

// Preview returns the first n characters of the file's extracted text and whether
// anything was cut off.
func (f OrganizedFile) Preview(n int) (string, bool) {
	if n <= 0 {
		return "", f.Content != ""
	}
	seen := 0
	for i := range f.Content {
		if seen == n {
			return f.Content[:i], true
		}
		seen++
	}
	return f.Content, false
}
