package listingview

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Grimm02938/COCMarket/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records every query it is asked for.
type countingSource struct {
	mu      sync.Mutex
	queries []map[string]string
	calls   atomic.Int64
}

func (s *countingSource) Listings(ctx context.Context, query map[string]string, page, limit int) ([]client.ListingSummary, *client.Pagination, error) {
	s.calls.Add(1)
	s.mu.Lock()
	copied := make(map[string]string, len(query))
	for k, v := range query {
		copied[k] = v
	}
	s.queries = append(s.queries, copied)
	s.mu.Unlock()
	return summaries("r1"), nil, nil
}

func (s *countingSource) lastQuery() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}

func waitCalls(t *testing.T, s *countingSource, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.calls.Load() < want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d fetches, saw %d", want, s.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestMountFetchesEmptyQuery(t *testing.T) {
	src := &countingSource{}
	v := NewView(src)

	v.Mount()
	waitCalls(t, src, 1)

	assert.Empty(t, src.lastQuery())
}

func TestRedundantEditCausesNoFetch(t *testing.T) {
	src := &countingSource{}
	v := NewView(src)
	v.Mount()
	waitCalls(t, src, 1)

	// Same canonical query as the all-defaults state: no fetch
	v.SelectSortOrder(SortNewest)
	v.SelectCategory("not-a-category")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestDiscreteEditFetchesSynchronously(t *testing.T) {
	src := &countingSource{}
	v := NewView(src)
	v.Mount()
	waitCalls(t, src, 1)

	v.SelectCategory("accounts")
	waitCalls(t, src, 2)
	assert.Equal(t, "accounts", src.lastQuery()["category"])

	// Toggle-to-clear returns to the empty query and refetches
	v.SelectCategory("accounts")
	waitCalls(t, src, 3)
	assert.Empty(t, src.lastQuery())
}

func TestPriceDragDebounced(t *testing.T) {
	src := &countingSource{}
	v := NewView(src, WithPriceDebounce(30*time.Millisecond))
	v.Mount()
	waitCalls(t, src, 1)

	// Simulated drag: many intermediate positions, one fetch. The release
	// point stays below MaxPrice so the settled query differs from the
	// mount query and actually fetches.
	for i := 1; i <= 9; i++ {
		v.DragPriceRange(0, float64(100*i))
		time.Sleep(2 * time.Millisecond)
	}
	waitCalls(t, src, 2)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(2), src.calls.Load(), "a drag must settle into exactly one fetch")
	assert.Equal(t, "900", src.lastQuery()["max_price"])
}

func TestPriceDragLiveValueImmediate(t *testing.T) {
	src := &countingSource{}
	v := NewView(src, WithPriceDebounce(time.Hour))
	v.Mount()
	waitCalls(t, src, 1)

	v.DragPriceRange(50, 300)

	// Rendering sees the new bounds immediately even though no fetch fired
	min, max := v.Filters().PriceRange()
	assert.Equal(t, 50.0, min)
	assert.Equal(t, 300.0, max)
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestPriceDragBackToDefaultsCausesNoFetch(t *testing.T) {
	src := &countingSource{}
	v := NewView(src, WithPriceDebounce(20*time.Millisecond))
	v.Mount()
	waitCalls(t, src, 1)

	v.DragPriceRange(200, 700)
	v.DragPriceRange(0, MaxPrice) // released back at the extremes

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestRetryReissuesCurrentQuery(t *testing.T) {
	src := &countingSource{}
	v := NewView(src)
	v.Mount()
	waitCalls(t, src, 1)

	v.SelectCategory("boosting")
	waitCalls(t, src, 2)

	v.Retry()
	waitCalls(t, src, 3)
	assert.Equal(t, "boosting", src.lastQuery()["category"])
}

func TestUnmountStopsPendingDebounce(t *testing.T) {
	src := &countingSource{}
	v := NewView(src, WithPriceDebounce(20*time.Millisecond))
	v.Mount()
	waitCalls(t, src, 1)

	v.DragPriceRange(100, 500)
	v.Unmount()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int64(1), src.calls.Load())
}

func TestResultsRenderedWithCurrentSort(t *testing.T) {
	src := &countingSource{}
	v := NewView(src)
	v.Mount()
	waitCalls(t, src, 1)

	require.Eventually(t, func() bool {
		return v.State().Status == StatusSuccess
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"r1"}, ids(v.Results()))
}
