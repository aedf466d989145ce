// Package listingview implements the storefront's listing query model: a
// per-view filter state, its normalization into a canonical wire query, and
// a fetcher that keeps the displayed results consistent under overlapping
// requests.
package listingview

// MaxPrice is the upper bound of the price range control, in EUR.
const MaxPrice = 1000

// UI-local location values. Translation to the API's wire vocabulary happens
// in Normalize, not here.
const (
	LocationDomestic      = "domestic"
	LocationInternational = "international"
)

// Sort keys accepted by the sort control.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
)

var validCategories = map[string]bool{
	"accounts": true, "items": true, "characters": true,
	"skins": true, "currency": true, "boosting": true,
}

var validConditions = map[string]bool{
	"new": true, "excellent": true, "good": true, "fair": true,
}

var validLocations = map[string]bool{
	LocationDomestic: true, LocationInternational: true,
}

var validSorts = map[string]bool{
	SortNewest: true, SortPriceAsc: true, SortPriceDesc: true, SortRating: true,
}

// FilterState is the mutable state of one listing view's filter controls.
// Created with all defaults on mount, mutated field by field, discarded on
// unmount. Not safe for concurrent use: one view owns it.
//
// Empty string means Unset for the discrete fields.
type FilterState struct {
	category     string
	game         string
	location     string
	condition    string
	priceMin     float64
	priceMax     float64
	featuredOnly bool
	sortOrder    string
}

// NewFilterState returns the all-defaults state.
func NewFilterState() *FilterState {
	return &FilterState{
		priceMin:  0,
		priceMax:  MaxPrice,
		sortOrder: SortNewest,
	}
}

// SetCategory selects a category. Selecting the current value clears it
// (single-click clear); unknown values are rejected and the previous value
// kept.
func (f *FilterState) SetCategory(v string) {
	f.category = toggleDiscrete(f.category, v, validCategories)
}

// SetGame selects a game. Any non-empty id is accepted; reselecting clears.
func (f *FilterState) SetGame(v string) {
	if v == "" {
		return
	}
	if f.game == v {
		f.game = ""
		return
	}
	f.game = v
}

// SetLocation selects "domestic" or "international"; reselecting clears.
func (f *FilterState) SetLocation(v string) {
	f.location = toggleDiscrete(f.location, v, validLocations)
}

// SetCondition selects a condition tier; reselecting clears.
func (f *FilterState) SetCondition(v string) {
	f.condition = toggleDiscrete(f.condition, v, validConditions)
}

// SetSortOrder selects the sort key. The sort control always has a value, so
// there is no toggle-to-clear here; unknown keys are rejected.
func (f *FilterState) SetSortOrder(v string) {
	if validSorts[v] {
		f.sortOrder = v
	}
}

// SetFeaturedOnly sets the featured toggle.
func (f *FilterState) SetFeaturedOnly(v bool) {
	f.featuredOnly = v
}

// SetPriceRange sets the price bounds, clamped to [0, MaxPrice]. Bounds
// arriving inverted are swapped rather than rejected, preserving the
// invariant min <= max.
func (f *FilterState) SetPriceRange(min, max float64) {
	min = clampPrice(min)
	max = clampPrice(max)
	if min > max {
		min, max = max, min
	}
	f.priceMin = min
	f.priceMax = max
}

// Accessors for rendering the controls.

func (f *FilterState) Category() string  { return f.category }
func (f *FilterState) Game() string      { return f.game }
func (f *FilterState) Location() string  { return f.location }
func (f *FilterState) Condition() string { return f.condition }

func (f *FilterState) PriceRange() (min, max float64) { return f.priceMin, f.priceMax }

func (f *FilterState) FeaturedOnly() bool { return f.featuredOnly }
func (f *FilterState) SortOrder() string  { return f.sortOrder }

func toggleDiscrete(current, next string, valid map[string]bool) string {
	if !valid[next] {
		return current
	}
	if current == next {
		return ""
	}
	return next
}

func clampPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxPrice {
		return MaxPrice
	}
	return v
}
