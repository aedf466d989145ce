package listingview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Grimm02938/COCMarket/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource dispatches on the query content, letting tests gate individual
// responses to force any arrival order.
type stubSource struct {
	mu sync.Mutex
	fn func(query map[string]string) ([]client.ListingSummary, error)
}

func (s *stubSource) Listings(ctx context.Context, query map[string]string, page, limit int) ([]client.ListingSummary, *client.Pagination, error) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	results, err := fn(query)
	return results, nil, err
}

func summaries(ids ...string) []client.ListingSummary {
	out := make([]client.ListingSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, client.ListingSummary{ID: id})
	}
	return out
}

// collectResolved returns a channel receiving every non-Loading transition.
func collectResolved() (chan FetchState, FetcherOption) {
	ch := make(chan FetchState, 16)
	return ch, WithOnChange(func(st FetchState) {
		if st.Status != StatusLoading {
			ch <- st
		}
	})
}

func waitResolved(t *testing.T, ch chan FetchState) FetchState {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch to resolve")
		return FetchState{}
	}
}

func assertNoMorePublishes(t *testing.T, ch chan FetchState) {
	t.Helper()
	select {
	case st := <-ch:
		t.Fatalf("unexpected extra publish: %+v", st)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLastQueryWins(t *testing.T) {
	releaseA := make(chan struct{})
	src := &stubSource{}
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		if len(q) == 0 { // fetch A
			<-releaseA
			return summaries("a1", "a2"), nil
		}
		return summaries("b1"), nil // fetch B
	}

	resolved, onChange := collectResolved()
	f := NewFetcher(src, onChange)

	idA := f.Fetch(Query{})
	idB := f.Fetch(Query{"featured": "true"})
	require.Greater(t, idB, idA)

	st := waitResolved(t, resolved)
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Equal(t, idB, st.RequestID)
	assert.Equal(t, summaries("b1"), st.Results)

	// A resolves after B but must be discarded silently
	close(releaseA)
	assertNoMorePublishes(t, resolved)

	final := f.State()
	assert.Equal(t, idB, final.RequestID)
	assert.Equal(t, summaries("b1"), final.Results)
}

func TestFeaturedToggleOnThenOff(t *testing.T) {
	// Queries issued: {} then {featured} then {} again. The middle response
	// arrives last; the displayed set must still be the last issued query's.
	releaseFeatured := make(chan struct{})
	src := &stubSource{}
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		if q["featured"] == "true" {
			<-releaseFeatured
			return summaries("featured-only"), nil
		}
		return summaries("all-1", "all-2"), nil
	}

	resolved, onChange := collectResolved()
	f := NewFetcher(src, onChange)

	f.Fetch(Query{})
	first := waitResolved(t, resolved)
	assert.Equal(t, summaries("all-1", "all-2"), first.Results)

	f.Fetch(Query{"featured": "true"})
	lastID := f.Fetch(Query{})

	st := waitResolved(t, resolved)
	assert.Equal(t, lastID, st.RequestID)
	assert.Equal(t, summaries("all-1", "all-2"), st.Results)

	close(releaseFeatured)
	assertNoMorePublishes(t, resolved)

	assert.Equal(t, summaries("all-1", "all-2"), f.State().Results)
}

func TestFailureKeepsPreviousResults(t *testing.T) {
	src := &stubSource{}
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		return summaries("ok"), nil
	}

	resolved, onChange := collectResolved()
	f := NewFetcher(src, onChange)

	f.Fetch(Query{})
	st := waitResolved(t, resolved)
	require.Equal(t, StatusSuccess, st.Status)

	src.mu.Lock()
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		return nil, &client.ServiceError{Status: 500}
	}
	src.mu.Unlock()

	f.Fetch(Query{"category": "skins"})
	st = waitResolved(t, resolved)

	assert.Equal(t, StatusFailed, st.Status)
	var svcErr *client.ServiceError
	require.ErrorAs(t, st.Err, &svcErr)
	assert.Equal(t, 500, svcErr.Status)
	// Previous success results stay visible under the error affordance
	assert.Equal(t, summaries("ok"), st.Results)
}

func TestLoadingKeepsPreviousResults(t *testing.T) {
	block := make(chan struct{})
	src := &stubSource{}
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		if len(q) != 0 {
			<-block
		}
		return summaries("first"), nil
	}

	resolved, onChange := collectResolved()
	f := NewFetcher(src, onChange)

	f.Fetch(Query{})
	waitResolved(t, resolved)

	f.Fetch(Query{"category": "items"})
	st := f.State()
	assert.Equal(t, StatusLoading, st.Status)
	assert.Equal(t, summaries("first"), st.Results)

	close(block)
	waitResolved(t, resolved)
}

func TestTimeoutSurfacesNetworkError(t *testing.T) {
	src := &stubSource{}
	src.fn = func(q map[string]string) ([]client.ListingSummary, error) {
		time.Sleep(50 * time.Millisecond)
		return nil, context.DeadlineExceeded
	}

	resolved, onChange := collectResolved()
	f := NewFetcher(src, WithTimeout(10*time.Millisecond), onChange)

	f.Fetch(Query{})
	st := waitResolved(t, resolved)

	assert.Equal(t, StatusFailed, st.Status)
	var netErr *client.NetworkError
	assert.ErrorAs(t, st.Err, &netErr)
}
