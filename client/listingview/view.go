package listingview

import (
	"sync"
	"time"

	"github.com/Grimm02938/COCMarket/client"
)

const defaultPriceDebounce = 200 * time.Millisecond

// View wires the filter state, the normalizer and the fetcher into one
// listing view. Discrete control edits propagate synchronously; the
// continuous price control is debounced so a drag does not fire a fetch per
// pixel. Edits that land on a value producing the same canonical query are
// deduplicated and cause no fetch.
type View struct {
	fetcher       *Fetcher
	priceDebounce time.Duration

	mu         sync.Mutex
	filters    *FilterState
	lastQuery  Query
	priceTimer *time.Timer
	mounted    bool
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithPriceDebounce overrides the price-drag settle delay.
func WithPriceDebounce(d time.Duration) ViewOption {
	return func(v *View) { v.priceDebounce = d }
}

// NewView builds a listing view backed by the given API client.
func NewView(source ListingSource, opts ...ViewOption) *View {
	v := &View{
		fetcher:       NewFetcher(source),
		priceDebounce: defaultPriceDebounce,
		filters:       NewFilterState(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewViewWithFetcher builds a view around an existing fetcher, letting the
// caller configure timeouts and change callbacks.
func NewViewWithFetcher(f *Fetcher, opts ...ViewOption) *View {
	v := &View{
		fetcher:       f,
		priceDebounce: defaultPriceDebounce,
		filters:       NewFilterState(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount issues the initial fetch with the all-defaults (empty) query.
func (v *View) Mount() {
	v.mu.Lock()
	v.mounted = true
	v.lastQuery = Normalize(v.filters)
	query := v.lastQuery.Clone()
	v.mu.Unlock()

	v.fetcher.Fetch(query)
}

// Unmount stops any pending debounce. The fetcher's recency guard already
// neutralizes in-flight responses.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	if v.priceTimer != nil {
		v.priceTimer.Stop()
		v.priceTimer = nil
	}
}

// SelectCategory handles a category control click (reselect clears).
func (v *View) SelectCategory(value string) {
	v.edit(func(f *FilterState) { f.SetCategory(value) })
}

// SelectGame handles a game control click (reselect clears).
func (v *View) SelectGame(value string) {
	v.edit(func(f *FilterState) { f.SetGame(value) })
}

// SelectLocation handles a location control click (reselect clears).
func (v *View) SelectLocation(value string) {
	v.edit(func(f *FilterState) { f.SetLocation(value) })
}

// SelectCondition handles a condition control click (reselect clears).
func (v *View) SelectCondition(value string) {
	v.edit(func(f *FilterState) { f.SetCondition(value) })
}

// SelectSortOrder handles a sort control selection.
func (v *View) SelectSortOrder(value string) {
	v.edit(func(f *FilterState) { f.SetSortOrder(value) })
}

// ToggleFeatured flips the featured-only toggle.
func (v *View) ToggleFeatured() {
	v.edit(func(f *FilterState) { f.SetFeaturedOnly(!f.FeaturedOnly()) })
}

// DragPriceRange updates the price bounds immediately for rendering, but
// defers query propagation until the control has been still for the debounce
// delay. Every new drag event replaces the pending timer, so a stale value
// can never fire after a newer one.
func (v *View) DragPriceRange(min, max float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filters.SetPriceRange(min, max)

	if v.priceTimer != nil {
		v.priceTimer.Stop()
	}
	v.priceTimer = time.AfterFunc(v.priceDebounce, func() {
		v.mu.Lock()
		if !v.mounted {
			v.mu.Unlock()
			return
		}
		query := Normalize(v.filters)
		if query.Equal(v.lastQuery) {
			v.mu.Unlock()
			return
		}
		v.lastQuery = query
		v.mu.Unlock()

		v.fetcher.Fetch(query)
	})
}

// Retry re-issues the current query after a failure. Listing queries are
// idempotent, so this is always safe.
func (v *View) Retry() {
	v.mu.Lock()
	query := v.lastQuery.Clone()
	v.mu.Unlock()

	v.fetcher.Fetch(query)
}

// Filters exposes the current filter state for rendering the controls.
func (v *View) Filters() *FilterState {
	return v.filters
}

// State returns the fetcher's published state.
func (v *View) State() FetchState {
	return v.fetcher.State()
}

// Results returns the display list: the last successful results re-sorted by
// the current sort key.
func (v *View) Results() []client.ListingSummary {
	v.mu.Lock()
	sortOrder := v.filters.SortOrder()
	v.mu.Unlock()

	return Render(v.fetcher.State(), sortOrder)
}

// edit applies a discrete control change, then fetches if the canonical
// query actually changed.
func (v *View) edit(apply func(*FilterState)) {
	v.mu.Lock()
	apply(v.filters)

	if !v.mounted {
		v.mu.Unlock()
		return
	}

	query := Normalize(v.filters)
	if query.Equal(v.lastQuery) {
		v.mu.Unlock()
		return
	}
	v.lastQuery = query
	v.mu.Unlock()

	v.fetcher.Fetch(query)
}
