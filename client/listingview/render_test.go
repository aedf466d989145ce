package listingview

import (
	"testing"

	"github.com/Grimm02938/COCMarket/client"
	"github.com/stretchr/testify/assert"
)

func row(id string, price, rating float64) client.ListingSummary {
	return client.ListingSummary{ID: id, Price: price, Rating: rating}
}

func ids(rows []client.ListingSummary) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestRenderPriceAscending(t *testing.T) {
	state := FetchState{
		Status:  StatusSuccess,
		Results: []client.ListingSummary{row("c", 30, 4), row("a", 10, 5), row("b", 20, 3)},
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(Render(state, SortPriceAsc)))
	assert.Equal(t, []string{"c", "b", "a"}, ids(Render(state, SortPriceDesc)))
}

func TestRenderRatingDescending(t *testing.T) {
	state := FetchState{
		Status:  StatusSuccess,
		Results: []client.ListingSummary{row("a", 10, 3.5), row("b", 20, 4.8), row("c", 30, 4.1)},
	}

	assert.Equal(t, []string{"b", "c", "a"}, ids(Render(state, SortRating)))
}

func TestRenderTieBreaksOnID(t *testing.T) {
	state := FetchState{
		Status:  StatusSuccess,
		Results: []client.ListingSummary{row("z", 25, 4), row("a", 25, 4), row("m", 25, 4)},
	}

	// Equal prices: deterministic id order regardless of input order
	assert.Equal(t, []string{"a", "m", "z"}, ids(Render(state, SortPriceAsc)))
}

func TestRenderDeterministicAcrossCalls(t *testing.T) {
	state := FetchState{
		Status:  StatusSuccess,
		Results: []client.ListingSummary{row("b", 25, 4), row("a", 25, 4), row("c", 10, 2)},
	}

	first := ids(Render(state, SortPriceAsc))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ids(Render(state, SortPriceAsc)))
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	original := []client.ListingSummary{row("b", 20, 1), row("a", 10, 2)}
	state := FetchState{Status: StatusSuccess, Results: original}

	Render(state, SortPriceAsc)
	assert.Equal(t, "b", original[0].ID, "input slice must stay untouched")
}

func TestRenderEmpty(t *testing.T) {
	assert.Nil(t, Render(FetchState{Status: StatusIdle}, SortNewest))
}

func TestRenderNewestByDescendingID(t *testing.T) {
	// v7 ids are time-ordered, so newest-first means descending id
	state := FetchState{
		Status:  StatusSuccess,
		Results: []client.ListingSummary{row("01a", 1, 1), row("03c", 2, 2), row("02b", 3, 3)},
	}
	assert.Equal(t, []string{"03c", "02b", "01a"}, ids(Render(state, SortNewest)))
}
