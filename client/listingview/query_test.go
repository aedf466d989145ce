package listingview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAllDefaultsIsEmpty(t *testing.T) {
	q := Normalize(NewFilterState())
	assert.Empty(t, q)
}

func TestNormalizeIdempotence(t *testing.T) {
	states := []*FilterState{
		NewFilterState(),
		func() *FilterState {
			f := NewFilterState()
			f.SetCategory("accounts")
			f.SetPriceRange(30, 100)
			return f
		}(),
		func() *FilterState {
			f := NewFilterState()
			f.SetGame("Fortnite")
			f.SetLocation(LocationInternational)
			f.SetCondition("good")
			f.SetFeaturedOnly(true)
			f.SetSortOrder(SortPriceDesc)
			return f
		}(),
	}

	for _, s := range states {
		q := Normalize(s)
		assert.True(t, Normalize(Denormalize(q)).Equal(q))
	}
}

func TestNormalizeOrderIndependence(t *testing.T) {
	edits := []func(*FilterState){
		func(f *FilterState) { f.SetCategory("skins") },
		func(f *FilterState) { f.SetGame("CS:GO") },
		func(f *FilterState) { f.SetLocation(LocationDomestic) },
		func(f *FilterState) { f.SetPriceRange(10, 200) },
		func(f *FilterState) { f.SetFeaturedOnly(true) },
		func(f *FilterState) { f.SetSortOrder(SortRating) },
	}

	// A few distinct permutations; the result must not depend on edit order
	orders := [][]int{
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{2, 0, 5, 1, 4, 3},
		{3, 5, 0, 4, 2, 1},
	}

	var reference Query
	for i, order := range orders {
		f := NewFilterState()
		for _, idx := range order {
			edits[idx](f)
		}
		q := Normalize(f)
		if i == 0 {
			reference = q
			continue
		}
		assert.True(t, q.Equal(reference), "permutation %v produced %v, want %v", order, q, reference)
	}
}

func TestNormalizeTranslatesLocation(t *testing.T) {
	f := NewFilterState()
	f.SetLocation(LocationDomestic)
	assert.Equal(t, "fr", Normalize(f)["location"])

	f.SetLocation(LocationDomestic) // toggle clears
	f.SetLocation(LocationInternational)
	assert.Equal(t, "other", Normalize(f)["location"])
}

func TestPriceRangeRoundTripOmitted(t *testing.T) {
	f := NewFilterState()
	f.SetPriceRange(50, 400)
	f.SetPriceRange(0, MaxPrice) // dragged back to the extremes

	q := Normalize(f)
	assert.NotContains(t, q, "min_price")
	assert.NotContains(t, q, "max_price")
}

func TestNormalizeHalfOpenPriceRange(t *testing.T) {
	f := NewFilterState()
	f.SetPriceRange(0, 250)

	q := Normalize(f)
	assert.NotContains(t, q, "min_price")
	assert.Equal(t, "250", q["max_price"])
}

func TestScenarioCategoryClearedPriceKept(t *testing.T) {
	f := NewFilterState()
	f.SetCategory("accounts")
	f.SetPriceRange(30, 100)
	f.SetCategory("accounts") // reselect clears

	q := Normalize(f)
	assert.True(t, q.Equal(Query{"min_price": "30", "max_price": "100"}))
}

func TestNormalizeOmitsDefaultSort(t *testing.T) {
	f := NewFilterState()
	f.SetSortOrder(SortNewest)
	assert.NotContains(t, Normalize(f), "sort")

	f.SetSortOrder(SortPriceAsc)
	assert.Equal(t, SortPriceAsc, Normalize(f)["sort"])
}

func TestQueryEqual(t *testing.T) {
	a := Query{"category": "items", "featured": "true"}
	b := Query{"featured": "true", "category": "items"}
	assert.True(t, a.Equal(b))

	b["category"] = "skins"
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Query{"category": "items"}))
}
