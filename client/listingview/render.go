package listingview

import (
	"sort"

	"github.com/Grimm02938/COCMarket/client"
)

// Render projects a FetchState into the displayed list: the last successful
// results re-sorted client-side by the requested key. The server is asked
// for the same order, but the client never trusts it to have honored the
// request, so ordering is always recomputed here. Ties break on listing id,
// which makes the output deterministic for equal input across re-renders.
func Render(state FetchState, sortOrder string) []client.ListingSummary {
	if len(state.Results) == 0 {
		return nil
	}

	out := make([]client.ListingSummary, len(state.Results))
	copy(out, state.Results)

	sort.SliceStable(out, func(i, j int) bool {
		if less, decided := compareByKey(out[i], out[j], sortOrder); decided {
			return less
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// compareByKey orders two rows by the sort key; decided is false on a tie.
func compareByKey(a, b client.ListingSummary, sortOrder string) (less, decided bool) {
	switch sortOrder {
	case SortPriceAsc:
		if a.Price != b.Price {
			return a.Price < b.Price, true
		}
	case SortPriceDesc:
		if a.Price != b.Price {
			return a.Price > b.Price, true
		}
	case SortRating:
		if a.Rating != b.Rating {
			return a.Rating > b.Rating, true
		}
	default:
		// newest: ids are time-ordered, so descending id approximates
		// descending creation time
		if a.ID != b.ID {
			return a.ID > b.ID, true
		}
	}
	return false, false
}
