package organizer

import (
	"testing"

	"github.com/Veraticus/sift/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer(t *testing.T) {
	a, err := NewAnalyzer(3, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, a.TopN())

	got := a.Analyze("bank investment stock portfolio dividend")
	assert.Equal(t, []string{"bank", "investment", "stock"}, got.Keywords)
	assert.Equal(t, model.CategoryFinance, got.Result.Category)
	assert.Equal(t, 15, got.Result.Score)
	assert.Equal(t, 1, a.CacheLen())

	got.Keywords[0] = "mutated"
	again := a.Analyze("bank investment stock portfolio dividend")
	assert.Equal(t, "bank", again.Keywords[0], "cached analysis not aliased")
	assert.Equal(t, 1, a.CacheLen())
}

func TestAnalyzerWithoutCache(t *testing.T) {
	a, err := NewAnalyzer(10, 3, 0)
	require.NoError(t, err)

	first := a.Analyze("bankrupt weather")
	second := a.Analyze("bankrupt weather")
	assert.Equal(t, first, second)
	assert.Equal(t, model.CategoryOthers, first.Result.Category)
	assert.Equal(t, 0, a.CacheLen())
}

func TestAnalyzerMinScore(t *testing.T) {
	a, err := NewAnalyzer(10, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFinance, a.Analyze("bankrupt weather").Result.Category)
}

func TestAnalyzeN(t *testing.T) {
	a, err := NewAnalyzer(10, 3, 4)
	require.NoError(t, err)

	got := a.AnalyzeN("alpha beta gamma bank loan", 2)
	assert.Equal(t, []string{"alpha", "beta"}, got.Keywords)
	assert.Equal(t, model.CategoryFinance, got.Result.Category)
	assert.Equal(t, 0, a.CacheLen())
}
