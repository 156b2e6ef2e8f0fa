package catalog

import "strings"

// Budget tiers. Derived from the mean menu price when a record carries no
// explicit tier.
const (
	BudgetStreet  = "Street/Pocket-Friendly"
	BudgetMid     = "Mid-Range"
	BudgetPremium = "Fine Dining/Premium"
)

// Mean-price ceilings for budget derivation, in the minor currency unit.
// A mean of exactly streetCeiling lands in the Mid-Range branch.
const (
	streetCeiling = 600
	midCeiling    = 1600
)

// FallbackCity is assigned to records loaded without a location.
const FallbackCity = "Peshawar"

// MenuItem is a single dish with its price in the minor currency unit.
// Immutable once parsed.
type MenuItem struct {
	Item  string `json:"item" msgpack:"item"`
	Price int    `json:"price" msgpack:"price"`
}

// Restaurant is one catalog record. ID is the stable identity key used by
// every index. Category is a legacy slash-delimited cuisine list kept for
// older datasets; Cuisine is derived from it when absent.
type Restaurant struct {
	ID       string     `json:"id" msgpack:"id"`
	Name     string     `json:"name" msgpack:"name"`
	Category string     `json:"category,omitempty" msgpack:"category,omitempty"`
	Menu     []MenuItem `json:"menu" msgpack:"menu"`
	Deals    []string   `json:"deals,omitempty" msgpack:"deals,omitempty"`
	Cuisine  []string   `json:"cuisine,omitempty" msgpack:"cuisine,omitempty"`
	Rating   float64    `json:"rating,omitempty" msgpack:"rating,omitempty"`
	Budget   string     `json:"budget,omitempty" msgpack:"budget,omitempty"`
	Location string     `json:"location,omitempty" msgpack:"location,omitempty"`
}

// normalize fills the derived fields of a freshly loaded record. It only
// touches fields that are unset, so running it again is a no-op.
func (r *Restaurant) normalize() {
	if len(r.Cuisine) == 0 && r.Category != "" {
		for _, c := range strings.Split(r.Category, "/") {
			r.Cuisine = append(r.Cuisine, strings.TrimSpace(c))
		}
	}

	if r.Budget == "" && len(r.Menu) > 0 {
		total := 0
		for _, m := range r.Menu {
			total += m.Price
		}
		mean := float64(total) / float64(len(r.Menu))
		switch {
		case mean < streetCeiling:
			r.Budget = BudgetStreet
		case mean < midCeiling:
			r.Budget = BudgetMid
		default:
			r.Budget = BudgetPremium
		}
	}

	if r.Location == "" {
		r.Location = FallbackCity
	}
}
