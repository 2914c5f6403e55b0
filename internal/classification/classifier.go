// Package classification scores text content into the fixed set of semantic categories.
package classification

import (
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/sift/internal/model"
)

// DefaultMinScore is the lowest winning score that still assigns a real category.
// A single incidental substring hit scores 1 and stays below it.
const DefaultMinScore = 3

const (
	exactMatchPoints     = 2
	substringMatchPoints = 1
)

// Classifier scores content against the category registry.
// The zero value is not useful; use NewClassifier or the package-level functions.
type Classifier struct {
	minScore int
}

// NewClassifier creates a classifier that requires minScore to assign a non-fallback category.
func NewClassifier(minScore int) *Classifier {
	return &Classifier{minScore: minScore}
}

var defaultClassifier = NewClassifier(DefaultMinScore)

// MinScore returns the classifier's threshold.
func (c *Classifier) MinScore() int {
	return c.minScore
}

// Classify scores text and its extracted keywords against every category except Others and
// returns the best one, or Others when the best score is below the threshold.
func (c *Classifier) Classify(text string, keywords []string) model.ClassificationResult {
	lowerText := toLower(text)

	allWords := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		allWords[k] = struct{}{}
	}
	// Raw whitespace tokens keep their punctuation and stop-words on purpose.
	for _, w := range strings.Fields(lowerText) {
		if utf8.RuneCountInString(w) >= minTokenLen {
			allWords[w] = struct{}{}
		}
	}

	bestCategory := model.CategoryOthers
	bestScore := 0

	for _, category := range registry {
		if category.Name == model.CategoryOthers {
			continue
		}

		score := 0
		for _, keyword := range category.Keywords {
			if _, ok := allWords[keyword]; ok {
				score += exactMatchPoints
			}
			if strings.Contains(lowerText, keyword) {
				score += substringMatchPoints
			}
		}

		// Strictly greater: the earlier category keeps a tie.
		if score > bestScore {
			bestScore = score
			bestCategory = category.Name
		}
	}

	if bestScore < c.minScore {
		bestCategory = model.CategoryOthers
	}

	return model.ClassificationResult{
		Category: bestCategory,
		Score:    bestScore,
	}
}

// CategorizeContent returns the category for text using the classifier's threshold.
func (c *Classifier) CategorizeContent(text string, keywords []string) model.CategoryName {
	return c.Classify(text, keywords).Category
}

// Classify scores text with the default threshold.
func Classify(text string, keywords []string) model.ClassificationResult {
	return defaultClassifier.Classify(text, keywords)
}

// CategorizeContent returns the category for text with the default threshold.
func CategorizeContent(text string, keywords []string) model.CategoryName {
	return defaultClassifier.CategorizeContent(text, keywords)
}
