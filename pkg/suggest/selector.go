// Package suggest is the candidate-selection heuristic: it merges budget,
// location, menu and name signals from the catalog into one ranked candidate
// set for retrieval-augmented prompting.
package suggest

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/danigit7/Inzaghi-FoodAI/pkg/catalog"
)

// budgetItemLimit caps the budget stage at the priciest items still under
// the ceiling.
const budgetItemLimit = 10

// nameWordGuard disables the name search on messages of this many words or
// more; prefix matching over long sentences is pure noise.
const nameWordGuard = 5

// digitRun finds the first run of decimal digits in a message. Only the
// first run counts: "between 200 and 500" parses as 200. Range intent is
// ambiguous, so it is not guessed at.
var digitRun = regexp.MustCompile(`\d+`)

// Selector turns a free-text user message into a deduplicated candidate
// list. The stage queries run in parallel on a small worker pool, but the
// merge keeps a fixed stage order so output is deterministic: budget and
// location are the higher-precision signals and go first, which makes any
// downstream truncation favor them.
type Selector struct {
	catalog *catalog.Catalog
	pool    *ants.Pool
}

// NewSelector creates a selector over the given catalog.
func NewSelector(c *catalog.Catalog) (*Selector, error) {
	pool, err := ants.NewPool(4)
	if err != nil {
		return nil, err
	}
	return &Selector{catalog: c, pool: pool}, nil
}

// Release shuts down the worker pool.
func (s *Selector) Release() {
	s.pool.Release()
}

// Candidates runs the four-stage heuristic over message and returns the
// merged list in first-insertion order, deduplicated by id. Callers handle
// any display truncation.
func (s *Selector) Candidates(message string) []*catalog.Restaurant {
	var (
		wg                           sync.WaitGroup
		budget, location, menu, name []*catalog.Restaurant
	)

	run := func(stage func()) {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			stage()
		}
		if err := s.pool.Submit(task); err != nil {
			// pool unavailable, degrade to inline execution
			task()
		}
	}

	run(func() { budget = s.budgetStage(message) })
	run(func() { location = s.catalog.SearchByLocation(message) })
	run(func() { menu = s.catalog.SearchByMenu(message) })
	if len(strings.Fields(message)) < nameWordGuard {
		run(func() { name = s.catalog.SearchByName(message) })
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var merged []*catalog.Restaurant
	for _, stage := range [][]*catalog.Restaurant{budget, location, menu, name} {
		for _, r := range stage {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}

// budgetStage parses the first digit run as a price ceiling and collects the
// restaurants behind the top items under it. No digits means no budget
// signal, not an error.
func (s *Selector) budgetStage(message string) []*catalog.Restaurant {
	m := digitRun.FindString(message)
	if m == "" {
		return nil
	}
	ceiling, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}

	matches := s.catalog.ItemsWithinBudget(ceiling)
	if len(matches) > budgetItemLimit {
		matches = matches[:budgetItemLimit]
	}
	out := make([]*catalog.Restaurant, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Restaurant)
	}
	return out
}
