package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPrefixIndex() *PrefixIndex {
	p := NewPrefixIndex()
	p.Insert("Charsi Tikka", "r1")
	p.Insert("Cafe Crunch", "r2")
	p.Insert("Cafe Crunch", "r3") // second branch of the same name
	p.Insert("Chief Burger", "r4")
	p.Insert("Tarogi Rooftop", "r5")
	return p
}

func TestPrefixIndexSearch(t *testing.T) {
	p := newTestPrefixIndex()

	cases := []struct {
		name   string
		prefix string
		want   IDSet
	}{
		{
			name:   "case insensitive prefix",
			prefix: "CAFE",
			want:   NewIDSet("r2", "r3"),
		},
		{
			name:   "shared prefix across names",
			prefix: "c",
			want:   NewIDSet("r1", "r2", "r3", "r4"),
		},
		{
			name:   "full name",
			prefix: "charsi tikka",
			want:   NewIDSet("r1"),
		},
		{
			name:   "missing path",
			prefix: "zam zam",
			want:   IDSet{},
		},
		{
			name:   "prefix longer than any name",
			prefix: "charsi tikka house",
			want:   IDSet{},
		},
		{
			name:   "empty prefix matches everything",
			prefix: "",
			want:   NewIDSet("r1", "r2", "r3", "r4", "r5"),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SearchPrefix(tt.prefix)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SearchPrefix(%q) mismatch (-want +got):\n%s", tt.prefix, diff)
			}
		})
	}
}

func TestPrefixIndexInsertIdempotent(t *testing.T) {
	p := NewPrefixIndex()
	p.Insert("Cafe Crunch", "r2")
	p.Insert("Cafe Crunch", "r2")
	p.Insert("cafe crunch", "r2") // case folds to the same key

	got := p.SearchPrefix("cafe")
	if diff := cmp.Diff(NewIDSet("r2"), got); diff != "" {
		t.Errorf("repeated insert changed the id set (-want +got):\n%s", diff)
	}
}
