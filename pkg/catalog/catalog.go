// Package catalog owns the restaurant dataset and its derived indices.
//
// A Catalog is built once from the loaded records: each record is normalized
// in place (cuisine, budget tier, fallback location) and inserted into the
// name trie, the menu index and the location index. After construction the
// catalog is read-only and safe to share across concurrent queries without
// locking; restarting the process is the only refresh mechanism.
package catalog

import (
	"sort"
	"strings"

	"github.com/danigit7/Inzaghi-FoodAI/internal/logger"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/index"
)

// Catalog maps restaurant ids to records and answers the composite queries
// the candidate selector is built on.
type Catalog struct {
	restaurants map[string]*Restaurant
	order       []string // insertion order, for deterministic scans

	names     *index.PrefixIndex
	menu      *index.TokenIndex
	locations *index.LocationIndex
}

// New normalizes every record and builds all three indices. This is the only
// point where records are mutated. Records with a duplicate id overwrite the
// earlier one in the id map but are still indexed; upstream loading is
// expected to reject such datasets.
func New(restaurants []*Restaurant) *Catalog {
	c := &Catalog{
		restaurants: make(map[string]*Restaurant, len(restaurants)),
		order:       make([]string, 0, len(restaurants)),
		names:       index.NewPrefixIndex(),
		menu:        index.NewTokenIndex(),
		locations:   index.NewLocationIndex(),
	}

	for _, r := range restaurants {
		r.normalize()
		if _, seen := c.restaurants[r.ID]; !seen {
			c.order = append(c.order, r.ID)
		}
		c.restaurants[r.ID] = r

		c.names.Insert(r.Name, r.ID)
		for _, item := range r.Menu {
			c.menu.Add(r.ID, item.Item)
		}
		c.locations.Add(r.ID, r.Location)
	}

	logger.New("catalog").Debugf("built indices for %d restaurants", len(c.order))
	return c
}

// Len returns the number of restaurants in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get looks up a restaurant by id.
func (c *Catalog) Get(id string) (*Restaurant, bool) {
	r, ok := c.restaurants[id]
	return r, ok
}

// SearchByName returns every restaurant whose name starts with prefix,
// case-insensitively.
func (c *Catalog) SearchByName(prefix string) []*Restaurant {
	return c.resolve(c.names.SearchPrefix(prefix))
}

// SearchByMenu returns every restaurant whose menu matches any word of the
// query (OR semantics).
func (c *Catalog) SearchByMenu(query string) []*Restaurant {
	return c.resolve(c.menu.Search(query))
}

// SearchByLocation returns the restaurants matching all indexed words of the
// query (AND semantics, unknown words dropped as noise).
func (c *Catalog) SearchByLocation(query string) []*Restaurant {
	return c.resolve(c.locations.Search(query))
}

// FilterByBudget returns the restaurants whose budget tier equals tier,
// case-insensitively.
func (c *Catalog) FilterByBudget(tier string) []*Restaurant {
	var out []*Restaurant
	for _, id := range c.order {
		if r := c.restaurants[id]; strings.EqualFold(r.Budget, tier) {
			out = append(out, r)
		}
	}
	return out
}

// ItemMatch pairs a menu item with the restaurant serving it.
type ItemMatch struct {
	Restaurant *Restaurant
	Item       MenuItem
}

// ItemsWithinBudget scans every menu for items priced at or under maxPrice.
// Results are stably sorted by price descending, so the item closest to the
// ceiling comes first; ties keep catalog insertion order.
func (c *Catalog) ItemsWithinBudget(maxPrice int) []ItemMatch {
	var matches []ItemMatch
	for _, id := range c.order {
		r := c.restaurants[id]
		for _, item := range r.Menu {
			if item.Price <= maxPrice {
				matches = append(matches, ItemMatch{Restaurant: r, Item: item})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Item.Price > matches[j].Item.Price
	})
	return matches
}

// resolve maps an id set to records, walking insertion order so equal sets
// always yield the same slice.
func (c *Catalog) resolve(ids index.IDSet) []*Restaurant {
	out := make([]*Restaurant, 0, len(ids))
	for _, id := range c.order {
		if ids.Has(id) {
			out = append(out, c.restaurants[id])
		}
	}
	return out
}
