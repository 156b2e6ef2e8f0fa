package index

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex maps case-folded restaurant names to id sets on a patricia
// trie. Keys are full names; prefix lookups union every id set stored in the
// subtree under the prefix.
type PrefixIndex struct {
	trie *patricia.Trie
}

func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{trie: patricia.NewTrie()}
}

// Insert records id under the case-folded name. Restaurants sharing one name
// accumulate in the same id set, and re-inserting a (name, id) pair is a
// no-op.
func (p *PrefixIndex) Insert(name, id string) {
	key := patricia.Prefix(strings.ToLower(name))
	if item := p.trie.Get(key); item != nil {
		item.(IDSet)[id] = struct{}{}
		return
	}
	p.trie.Insert(key, NewIDSet(id))
}

// SearchPrefix returns the ids of every restaurant whose name starts with
// prefix, exact matches included. A prefix path that does not exist yields an
// empty set; the empty prefix matches every inserted name.
func (p *PrefixIndex) SearchPrefix(prefix string) IDSet {
	ids := IDSet{}
	visitor := func(_ patricia.Prefix, item patricia.Item) error {
		for id := range item.(IDSet) {
			ids[id] = struct{}{}
		}
		return nil
	}

	var err error
	if prefix == "" {
		err = p.trie.Visit(visitor)
	} else {
		err = p.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return ids
}
