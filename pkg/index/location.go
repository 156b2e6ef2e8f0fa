package index

import (
	"strings"
	"unicode"
)

// LocationIndex is an inverted index from case-folded location tokens to id
// sets. Lookups use AND semantics so a query naming two areas only matches
// restaurants indexed under both; this asymmetry with TokenIndex is
// deliberate and relied on by candidate ranking.
type LocationIndex struct {
	postings map[string]IDSet
}

func NewLocationIndex() *LocationIndex {
	return &LocationIndex{postings: make(map[string]IDSet)}
}

// Add splits location on runs of commas and whitespace ("Phase 2, Hayatabad"
// becomes "phase", "2", "hayatabad") and records id under each token.
// Restaurants without a location are skipped.
func (l *LocationIndex) Add(id, location string) {
	if location == "" {
		return
	}
	tokens := strings.FieldsFunc(strings.ToLower(location), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, tok := range tokens {
		set, ok := l.postings[tok]
		if !ok {
			set = IDSet{}
			l.postings[tok] = set
		}
		set[id] = struct{}{}
	}
}

// Search intersects the id sets of every query word known to the index.
// Words absent from the index are noise and dropped rather than treated as
// mismatches; if no word is known at all the result is empty, never the full
// catalog.
func (l *LocationIndex) Search(query string) IDSet {
	var matched []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, ok := l.postings[word]; ok {
			matched = append(matched, word)
		}
	}
	if len(matched) == 0 {
		return IDSet{}
	}

	ids := IDSet{}
	for id := range l.postings[matched[0]] {
		ids[id] = struct{}{}
	}
	for _, word := range matched[1:] {
		set := l.postings[word]
		for id := range ids {
			if _, ok := set[id]; !ok {
				delete(ids, id)
			}
		}
	}
	return ids
}
