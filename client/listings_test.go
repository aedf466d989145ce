package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingsPassesQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/store/listings", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Listings fetched successfully",
			"data": []map[string]interface{}{
				{"id": "l1", "title": "Compte Fortnite", "price": 45.99, "currency": "eur"},
			},
			"meta": map[string]interface{}{"page": 1, "limit": 20, "total": 1, "total_pages": 1},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	results, meta, err := c.Listings(context.Background(), map[string]string{
		"category":  "accounts",
		"min_price": "30",
		"max_price": "100",
	}, 1, 20)
	require.NoError(t, err)

	// Canonical query keys map 1:1 onto request parameters
	assert.Equal(t, "accounts", gotQuery["category"][0])
	assert.Equal(t, "30", gotQuery["min_price"][0])
	assert.Equal(t, "100", gotQuery["max_price"][0])
	assert.Equal(t, "1", gotQuery["page"][0])
	assert.Equal(t, "20", gotQuery["limit"][0])

	require.Len(t, results, 1)
	assert.Equal(t, "l1", results[0].ID)
	assert.Equal(t, 45.99, results[0].Price)
	require.NotNil(t, meta)
	assert.Equal(t, 1, meta.Total)
}

func TestListingsEmptyQueryTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No filter params beyond paging
		for key := range r.URL.Query() {
			assert.Contains(t, []string{"page", "limit"}, key)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Listings fetched successfully",
			"data":    []map[string]interface{}{},
			"meta":    map[string]interface{}{"page": 1, "limit": 20, "total": 0, "total_pages": 0},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	results, _, err := c.Listings(context.Background(), nil, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListingsServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Failed to fetch listings",
			"error":   true,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, _, err := c.Listings(context.Background(), nil, 1, 20)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.Status)
	assert.Equal(t, "Failed to fetch listings", svcErr.Message)
}

func TestListingsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "ok", "data": "not-an-array"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, _, err := c.Listings(context.Background(), nil, 1, 20)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestListingsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	c := New(server.URL)
	_, _, err := c.Listings(context.Background(), nil, 1, 20)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFilterMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/store/filters/metadata", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Filter metadata fetched successfully",
			"data": map[string]interface{}{
				"categories": []map[string]interface{}{{"label": "Accounts", "value": "accounts", "count": 3}},
				"games":      []map[string]interface{}{{"name": "Fortnite", "listings_count": 2}},
				"conditions": []map[string]interface{}{},
				"priceRange": map[string]interface{}{"min": 19.99, "max": 45.99},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	metadata, err := c.FilterMetadata(context.Background())
	require.NoError(t, err)

	require.Len(t, metadata.Categories, 1)
	assert.Equal(t, "accounts", metadata.Categories[0].Value)
	require.NotNil(t, metadata.PriceRange)
	assert.Equal(t, 19.99, metadata.PriceRange.Min)
}

func TestCreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/checkout/session", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "l1", req["listing_id"])
		assert.Equal(t, "https://app/success", req["success_url"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Checkout session created",
			"data": map[string]interface{}{
				"session_id":   "cs_123",
				"checkout_url": "https://checkout.stripe.com/pay/cs_123",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.CreateCheckoutSession(context.Background(), "l1", "https://app/success", "https://app/cancel")
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.SessionID)
	assert.Contains(t, session.CheckoutURL, "checkout.stripe.com")
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	c := New("http://unused")
	_, err := c.CreateCheckoutSession(context.Background(), "", "s", "c")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "listing_id", valErr.Field)
}
