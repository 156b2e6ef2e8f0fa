package suggest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danigit7/Inzaghi-FoodAI/pkg/catalog"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	c := catalog.New([]*catalog.Restaurant{
		{
			ID:       "a",
			Name:     "Cafe One",
			Menu:     []catalog.MenuItem{{Item: "Burger", Price: 400}},
			Location: "Saddar",
		},
		{
			ID:       "b",
			Name:     "Cafe Two",
			Menu:     []catalog.MenuItem{{Item: "Burger", Price: 1800}},
			Location: "University Road",
		},
		{
			ID:       "c",
			Name:     "Shinwari Palace",
			Menu:     []catalog.MenuItem{{Item: "Dumba Karahi", Price: 2500}},
			Location: "Ring Road",
		},
	})
	s, err := NewSelector(c)
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	t.Cleanup(s.Release)
	return s
}

func ids(restaurants []*catalog.Restaurant) []string {
	var out []string
	for _, r := range restaurants {
		out = append(out, r.ID)
	}
	return out
}

// Budget puts Cafe One first, the menu stage pulls in Cafe Two as well,
// dedup keeps first insertion only.
func TestCandidatesBudgetBeforeMenu(t *testing.T) {
	s := newTestSelector(t)

	got := ids(s.Candidates("burger under 500 in saddar"))
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesLocationOnly(t *testing.T) {
	s := newTestSelector(t)

	got := ids(s.Candidates("anything tasty around university road please folks"))
	if diff := cmp.Diff([]string{"b"}, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesFirstDigitRunOnly(t *testing.T) {
	s := newTestSelector(t)

	// "between 300 and 5000" parses as 300: only Cafe One has an item
	// under that, and nothing else in the message matches any index.
	got := ids(s.Candidates("between 300 and 5000"))
	if len(got) != 0 {
		t.Errorf("ceiling should come from the first digit run, got %v", got)
	}

	got = ids(s.Candidates("between 500 and 300"))
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesNoDigitsSkipsBudgetStage(t *testing.T) {
	s := newTestSelector(t)

	got := ids(s.Candidates("dumba karahi"))
	if diff := cmp.Diff([]string{"c"}, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesNameSearchOnShortMessagesOnly(t *testing.T) {
	s := newTestSelector(t)

	// four words: the name stage runs and prefix-matches both cafes
	got := ids(s.Candidates("cafe"))
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("short message should hit the name index (-want +got):\n%s", diff)
	}

	// five words: the name stage is skipped and nothing else matches
	got = ids(s.Candidates("cafe that my cousin recommended"))
	if len(got) != 0 {
		t.Errorf("long message should skip the name index, got %v", got)
	}
}

// Parallel stage execution must not leak into the output order.
func TestCandidatesDeterministic(t *testing.T) {
	s := newTestSelector(t)

	first := ids(s.Candidates("burger under 2000 in saddar"))
	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(first, ids(s.Candidates("burger under 2000 in saddar"))); diff != "" {
			t.Fatalf("candidate order changed between runs (-first +later):\n%s", diff)
		}
	}
}
