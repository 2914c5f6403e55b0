package classification

// stopWords are English function words that carry no topical signal.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "shall": {}, "can": {}, "it": {}, "its": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {}, "my": {}, "your": {}, "his": {},
	"our": {}, "their": {}, "not": {}, "no": {}, "nor": {}, "so": {}, "if": {}, "then": {},
	"than": {}, "too": {}, "very": {}, "just": {}, "about": {}, "above": {}, "after": {},
	"again": {}, "all": {}, "also": {}, "am": {}, "any": {}, "as": {}, "because": {},
	"before": {}, "between": {}, "both": {}, "each": {}, "few": {}, "get": {}, "got": {},
	"here": {}, "how": {}, "into": {}, "more": {}, "most": {}, "much": {}, "must": {},
	"new": {}, "now": {}, "off": {}, "old": {}, "only": {}, "other": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "some": {}, "such": {}, "up": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "why": {},
}

// IsStopWord reports whether word is in the stop-word set. word must already be lowercase.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
