package listingview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleToClear(t *testing.T) {
	f := NewFilterState()

	f.SetCategory("accounts")
	assert.Equal(t, "accounts", f.Category())
	f.SetCategory("accounts")
	assert.Equal(t, "", f.Category())

	f.SetCondition("new")
	f.SetCondition("new")
	assert.Equal(t, "", f.Condition())

	f.SetLocation(LocationDomestic)
	f.SetLocation(LocationDomestic)
	assert.Equal(t, "", f.Location())

	f.SetGame("Valorant")
	f.SetGame("Valorant")
	assert.Equal(t, "", f.Game())
}

func TestSelectingDifferentValueReplaces(t *testing.T) {
	f := NewFilterState()

	f.SetCategory("accounts")
	f.SetCategory("skins")
	assert.Equal(t, "skins", f.Category())

	f.SetLocation(LocationDomestic)
	f.SetLocation(LocationInternational)
	assert.Equal(t, LocationInternational, f.Location())
}

func TestUnknownEnumValuesRejected(t *testing.T) {
	f := NewFilterState()

	f.SetCategory("accounts")
	f.SetCategory("vehicles")
	assert.Equal(t, "accounts", f.Category(), "unknown category must leave previous value")

	f.SetCondition("mint")
	assert.Equal(t, "", f.Condition())

	f.SetLocation("mars")
	assert.Equal(t, "", f.Location())

	f.SetSortOrder("alphabetical")
	assert.Equal(t, SortNewest, f.SortOrder())
}

func TestPriceClamping(t *testing.T) {
	f := NewFilterState()

	f.SetPriceRange(-50, MaxPrice+500)
	min, max := f.PriceRange()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, float64(MaxPrice), max)

	// Inverted bounds are swapped, preserving min <= max
	f.SetPriceRange(300, 100)
	min, max = f.PriceRange()
	assert.Equal(t, 100.0, min)
	assert.Equal(t, 300.0, max)
}

func TestDefaults(t *testing.T) {
	f := NewFilterState()

	min, max := f.PriceRange()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, float64(MaxPrice), max)
	assert.False(t, f.FeaturedOnly())
	assert.Equal(t, SortNewest, f.SortOrder())
	assert.Equal(t, "", f.Category())
}
