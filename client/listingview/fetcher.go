package listingview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Grimm02938/COCMarket/client"
)

// Status tags the fetch lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

// FetchState is the published state of the most recent listing request.
// Results holds the last successful result set and survives Loading and
// Failed transitions, so the view can keep showing it under a spinner or an
// error affordance.
type FetchState struct {
	Status    Status
	RequestID uint64
	Results   []client.ListingSummary
	Err       error
}

// ListingSource is the one call the fetcher needs from the API client.
type ListingSource interface {
	Listings(ctx context.Context, query map[string]string, page, limit int) ([]client.ListingSummary, *client.Pagination, error)
}

const (
	defaultFetchTimeout = 15 * time.Second
	defaultPageSize     = 20
)

// Fetcher turns canonical queries into listing requests and guarantees
// last-query-wins: overlapping fetches may race on the wire, but only the
// most recently issued one is allowed to publish its outcome. Superseded
// responses are discarded on arrival regardless of order.
type Fetcher struct {
	source   ListingSource
	timeout  time.Duration
	pageSize int
	onChange func(FetchState)

	mu     sync.Mutex
	lastID uint64
	state  FetchState
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout overrides the per-fetch deadline.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.timeout = d }
}

// WithPageSize overrides the requested page size.
func WithPageSize(n int) FetcherOption {
	return func(f *Fetcher) { f.pageSize = n }
}

// WithOnChange registers a callback invoked after every published state
// transition. Called outside the fetcher's lock.
func WithOnChange(fn func(FetchState)) FetcherOption {
	return func(f *Fetcher) { f.onChange = fn }
}

func NewFetcher(source ListingSource, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:   source,
		timeout:  defaultFetchTimeout,
		pageSize: defaultPageSize,
		state:    FetchState{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the currently published state.
func (f *Fetcher) State() FetchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fetch issues a request for the given query and returns its request id.
// The published state transitions to Loading immediately, keeping the
// previous results visible. At most one live transition is published per
// call: the one at resolution, and only if no newer fetch was issued in the
// meantime.
func (f *Fetcher) Fetch(query Query) uint64 {
	f.mu.Lock()
	f.lastID++
	id := f.lastID
	f.state = FetchState{
		Status:    StatusLoading,
		RequestID: id,
		Results:   f.state.Results,
	}
	published := f.state
	f.mu.Unlock()

	f.notify(published)

	go f.run(id, query.Clone())
	return id
}

func (f *Fetcher) run(id uint64, query Query) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	results, _, err := f.source.Listings(ctx, query, 0, f.pageSize)
	if err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
		err = &client.NetworkError{Err: err}
	}

	f.mu.Lock()
	if id != f.lastID {
		// Superseded: a newer fetch owns the published state now
		f.mu.Unlock()
		return
	}

	if err != nil {
		f.state = FetchState{
			Status:    StatusFailed,
			RequestID: id,
			Results:   f.state.Results,
			Err:       err,
		}
	} else {
		f.state = FetchState{
			Status:    StatusSuccess,
			RequestID: id,
			Results:   results,
		}
	}
	published := f.state
	f.mu.Unlock()

	f.notify(published)
}

func (f *Fetcher) notify(state FetchState) {
	if f.onChange != nil {
		f.onChange(state)
	}
}
