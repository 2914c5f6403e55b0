// Package model defines the core domain models used throughout the application.
package model

// ClassificationResult is the outcome of scoring a piece of content against the registry.
type ClassificationResult struct {
	Category CategoryName `json:"category" yaml:"category"`
	// Score is the best category score seen, even when it fell below the threshold.
	Score int `json:"score" yaml:"score"`
}
