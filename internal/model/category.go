package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sift/internal/common"
)

// CategoryName identifies one of the fixed semantic folders.
type CategoryName string

// Category name constants, in registry order.
const (
	CategoryEducation  CategoryName = "Education"
	CategoryFinance    CategoryName = "Finance"
	CategoryHealth     CategoryName = "Health"
	CategoryTechnology CategoryName = "Technology"
	// CategoryOthers is the fallback for content that scores below the threshold.
	CategoryOthers CategoryName = "Others"
)

// CategoryNames lists every valid category name in registry order.
var CategoryNames = []CategoryName{
	CategoryEducation,
	CategoryFinance,
	CategoryHealth,
	CategoryTechnology,
	CategoryOthers,
}

// Valid reports whether n is one of the known category names.
func (n CategoryName) Valid() bool {
	for _, name := range CategoryNames {
		if n == name {
			return true
		}
	}
	return false
}

func (n CategoryName) String() string {
	return string(n)
}

// ParseCategoryName resolves user input to a category name, ignoring case.
func ParseCategoryName(s string) (CategoryName, error) {
	s = strings.TrimSpace(s)
	for _, name := range CategoryNames {
		if strings.EqualFold(s, string(name)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, s)
}

// CategoryConfig describes a semantic folder and the vocabulary that scores content into it.
type CategoryConfig struct {
	Name     CategoryName `json:"name" yaml:"name"`
	Icon     string       `json:"icon" yaml:"icon"`
	Color    string       `json:"color" yaml:"color"`
	Keywords []string     `json:"keywords" yaml:"keywords"`
}
