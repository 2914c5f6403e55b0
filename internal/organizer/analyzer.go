package organizer

import (
	"crypto/sha256"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Analysis is what the categorization core derives from one piece of text.
type Analysis struct {
	Keywords []string                  `json:"keywords" yaml:"keywords"`
	Result   model.ClassificationResult `json:"result" yaml:"result"`
}

// Analyzer runs keyword extraction and classification, memoizing results by content hash.
// It is safe for concurrent use.
type Analyzer struct {
	classifier *classification.Classifier
	cache      *lru.Cache[[sha256.Size]byte, Analysis]
	topN       int
}

// NewAnalyzer creates an analyzer. cacheSize <= 0 disables memoization.
func NewAnalyzer(topN, minScore, cacheSize int) (*Analyzer, error) {
	a := &Analyzer{
		classifier: classification.NewClassifier(minScore),
		topN:       topN,
	}
	if cacheSize > 0 {
		cache, err := lru.New[[sha256.Size]byte, Analysis](cacheSize)
		if err != nil {
			return nil, err
		}
		a.cache = cache
	}
	return a, nil
}

// TopN returns the number of keywords extracted per text.
func (a *Analyzer) TopN() int {
	return a.topN
}

// Analyze extracts keywords from text and classifies it.
func (a *Analyzer) Analyze(text string) Analysis {
	if a.cache == nil {
		return a.analyze(text)
	}

	key := sha256.Sum256([]byte(text))
	if cached, ok := a.cache.Get(key); ok {
		return cloneAnalysis(cached)
	}

	result := a.analyze(text)
	a.cache.Add(key, cloneAnalysis(result))
	return result
}

// AnalyzeN is Analyze with an explicit keyword count. Results are not memoized.
func (a *Analyzer) AnalyzeN(text string, topN int) Analysis {
	keywords := classification.ExtractKeywords(text, topN)
	return Analysis{
		Keywords: keywords,
		Result:   a.classifier.Classify(text, keywords),
	}
}

// CacheLen reports how many analyses are memoized.
func (a *Analyzer) CacheLen() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}

func (a *Analyzer) analyze(text string) Analysis {
	return a.AnalyzeN(text, a.topN)
}

func cloneAnalysis(a Analysis) Analysis {
	a.Keywords = append([]string{}, a.Keywords...)
	return a
}
