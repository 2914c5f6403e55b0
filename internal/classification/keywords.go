package classification

import (
	"sort"
	"strings"
)

// DefaultTopN is the number of keywords extracted per file unless configured otherwise.
const DefaultTopN = 10

// minTokenLen is the shortest token that counts as a keyword or a match candidate.
const minTokenLen = 3

// ExtractKeywords returns up to topN of the most frequent non-stop-word tokens in text.
// Only ASCII letters survive tokenization. Tokens with equal frequency keep the order in
// which they first appeared.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	type wordCount struct {
		word  string
		count int
	}

	var (
		counts []wordCount
		index  = make(map[string]int)
	)
	for _, token := range tokenize(text) {
		if len(token) < minTokenLen || IsStopWord(token) {
			continue
		}
		if i, ok := index[token]; ok {
			counts[i].count++
			continue
		}
		index[token] = len(counts)
		counts = append(counts, wordCount{word: token, count: 1})
	}

	// counts is in first-appearance order, so a stable sort settles ties by that order.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	if len(counts) > topN {
		counts = counts[:topN]
	}

	keywords := make([]string, len(counts))
	for i, wc := range counts {
		keywords[i] = wc.word
	}
	return keywords
}

// dottedCapitalI keeps the combining dot when lowering U+0130, as the full Unicode casing
// table does. strings.ToLower alone drops it and yields a plain "i".
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

// toLower lowercases text with full Unicode casing for U+0130.
func toLower(text string) string {
	return strings.ToLower(dottedCapitalI.Replace(text))
}

// tokenize lowercases text and splits it on every character that is not a-z.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return ' '
	}, toLower(text))
	return strings.Fields(cleaned)
}
