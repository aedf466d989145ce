package listingview

import "strconv"

// Query is the canonical, wire-ready projection of a FilterState. Only
// non-default fields appear as keys, so two states that agree on final values
// always produce equal queries regardless of edit history, and the
// all-defaults state produces the empty query.
type Query map[string]string

// Normalize projects a FilterState onto its canonical query. It is pure and
// order-independent: each field is compared against its static default and,
// when different, written under its wire key. UI-local enum values are
// translated to the API vocabulary here and nowhere else.
func Normalize(f *FilterState) Query {
	q := Query{}

	if f.category != "" {
		q["category"] = f.category
	}
	if f.game != "" {
		q["game"] = f.game
	}

	switch f.location {
	case LocationDomestic:
		q["location"] = "fr"
	case LocationInternational:
		q["location"] = "other"
	}

	// (0, MaxPrice) is equivalent to unset even if the user dragged the
	// control and released it back at the extremes
	if f.priceMin > 0 {
		q["min_price"] = formatPrice(f.priceMin)
	}
	if f.priceMax < MaxPrice {
		q["max_price"] = formatPrice(f.priceMax)
	}

	if f.condition != "" {
		q["condition"] = f.condition
	}
	if f.featuredOnly {
		q["featured"] = "true"
	}
	if f.sortOrder != SortNewest {
		q["sort"] = f.sortOrder
	}

	return q
}

// Denormalize reconstructs a FilterState from a canonical query. Keys that
// Normalize would never emit are ignored. Round-tripping through Denormalize
// and Normalize is lossless: the reconstruction normalizes back to an equal
// query.
func Denormalize(q Query) *FilterState {
	f := NewFilterState()

	if v, ok := q["category"]; ok {
		f.SetCategory(v)
	}
	if v, ok := q["game"]; ok {
		f.SetGame(v)
	}
	switch q["location"] {
	case "fr":
		f.SetLocation(LocationDomestic)
	case "other":
		f.SetLocation(LocationInternational)
	}

	min, max := 0.0, float64(MaxPrice)
	if v, ok := q["min_price"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			min = parsed
		}
	}
	if v, ok := q["max_price"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			max = parsed
		}
	}
	f.SetPriceRange(min, max)

	if v, ok := q["condition"]; ok {
		f.SetCondition(v)
	}
	if q["featured"] == "true" {
		f.SetFeaturedOnly(true)
	}
	if v, ok := q["sort"]; ok {
		f.SetSortOrder(v)
	}

	return f
}

// Equal reports structural equality of two queries. Used to skip a fetch
// when an edit lands on a value that produces the same canonical query.
func (q Query) Equal(other Query) bool {
	if len(q) != len(other) {
		return false
	}
	for key, value := range q {
		if other[key] != value {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (q Query) Clone() Query {
	out := make(Query, len(q))
	for key, value := range q {
		out[key] = value
	}
	return out
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
