// Package index holds the three in-memory indices over the restaurant
// catalog: a patricia trie over names, an OR-semantics inverted index over
// menu words, and an AND-semantics inverted index over location tokens.
// All three are populated once at startup and read-only afterwards, so they
// carry no locks.
package index

// IDSet is a set of restaurant ids.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
