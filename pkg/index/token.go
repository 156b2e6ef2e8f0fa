package index

import "strings"

// TokenIndex is an inverted index from case-folded menu words to id sets.
// Lookups use OR semantics: broad recall for free-text cravings where the
// user names a single dish.
type TokenIndex struct {
	postings map[string]IDSet
}

func NewTokenIndex() *TokenIndex {
	return &TokenIndex{postings: make(map[string]IDSet)}
}

// Add tokenizes text by whitespace and records id under every word.
func (t *TokenIndex) Add(id, text string) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set, ok := t.postings[word]
		if !ok {
			set = IDSet{}
			t.postings[word] = set
		}
		set[id] = struct{}{}
	}
}

// Search returns the union of the id sets for every query word present in
// the index. Unknown words contribute nothing; an empty or fully unmatched
// query yields an empty set.
func (t *TokenIndex) Search(query string) IDSet {
	ids := IDSet{}
	for _, word := range strings.Fields(strings.ToLower(query)) {
		for id := range t.postings[word] {
			ids[id] = struct{}{}
		}
	}
	return ids
}
