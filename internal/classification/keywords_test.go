package classification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
		topN int
	}{
		{
			name: "education sentence drops stop-words",
			text: "The university student studied for the exam with the professor at school",
			topN: DefaultTopN,
			want: []string{"university", "student", "studied", "exam", "professor", "school"},
		},
		{
			name: "empty text",
			text: "",
			topN: DefaultTopN,
			want: []string{},
		},
		{
			name: "only stop-words",
			text: "the a an",
			topN: DefaultTopN,
			want: []string{},
		},
		{
			name: "short tokens dropped",
			text: "go ok xy zz",
			topN: DefaultTopN,
			want: []string{},
		},
		{
			name: "frequency descending",
			text: "cloud server cloud data server cloud",
			topN: DefaultTopN,
			want: []string{"cloud", "server", "data"},
		},
		{
			name: "ties keep first appearance",
			text: "zebra apple mango apple zebra",
			topN: DefaultTopN,
			want: []string{"zebra", "apple", "mango"},
		},
		{
			name: "truncated to topN",
			text: "alpha beta gamma delta",
			topN: 2,
			want: []string{"alpha", "beta"},
		},
		{
			name: "case folded",
			text: "Bank BANK bank",
			topN: DefaultTopN,
			want: []string{"bank"},
		},
		{
			name: "digits and punctuation split tokens",
			text: "hello,world 123abc x-ray café",
			topN: DefaultTopN,
			want: []string{"hello", "world", "abc", "ray", "caf"},
		},
		{
			name: "zero topN",
			text: "alpha beta",
			topN: 0,
			want: []string{},
		},
		{
			name: "negative topN",
			text: "alpha beta",
			topN: -1,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, tt.topN)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

var propertyInputs = []string{
	"",
	"the a an",
	"The university student studied for the exam with the professor at school",
	"bank investment stock portfolio dividend",
	"Patients visited the clinic; the doctor prescribed therapy, therapy and more therapy.",
	"software software hardware cloud cloud cloud api api web debug debug debug debug",
	"She said that they would have been here, but the weather was very bad indeed.",
	strings.Repeat("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu ", 5),
	"数字 123 ünïcödé tokens mixed-with ASCII_words and_underscores",
}

func TestExtractKeywordsProperties(t *testing.T) {
	for _, text := range propertyInputs {
		for _, topN := range []int{0, 1, 3, DefaultTopN, 50} {
			got := ExtractKeywords(text, topN)

			assert.Equal(t, got, ExtractKeywords(text, topN), "deterministic for %q", text)
			assert.LessOrEqual(t, len(got), topN)

			counts := filteredCounts(text)
			seen := make(map[string]bool)
			for i, word := range got {
				assert.False(t, IsStopWord(word), "stop-word %q in output", word)
				assert.Greater(t, len(word), 2, "short token %q in output", word)
				assert.Equal(t, strings.ToLower(word), word)
				assert.False(t, seen[word], "duplicate %q", word)
				seen[word] = true

				if i > 0 {
					assert.GreaterOrEqual(t, counts[got[i-1]], counts[word],
						"%q before %q out of frequency order", got[i-1], word)
				}
			}
		}
	}
}

// filteredCounts recounts token frequencies independently of ExtractKeywords.
func filteredCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if len(token) > 2 && !IsStopWord(token) {
			counts[token]++
		}
	}
	return counts
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"don", "t", "stop", "me", "now"}, tokenize("Don't STOP\tme\nnow!"))
	assert.Empty(t, tokenize("  123 456 !!! "))
}

func TestTokenizeDottedCapitalI(t *testing.T) {
	// U+0130 lowers to "i" plus a combining dot, which splits the token.
	assert.Equal(t, []string{"i", "stanbul"}, tokenize("\u0130stanbul"))
	assert.Equal(t, []string{"stanbul", "istanbul"}, ExtractKeywords("\u0130stanbul istanbul", 5))
	assert.Equal(t, "i\u0307zmir", toLower("\u0130ZMIR"))
}

func TestIsStopWord(t *testing.T) {
	for _, word := range []string{"the", "and", "because", "why", "between"} {
		assert.True(t, IsStopWord(word), word)
	}
	for _, word := range []string{"university", "bank", "The"} {
		assert.False(t, IsStopWord(word), word)
	}
}
