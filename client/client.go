package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// apiEnvelope matches the server's response wrapper. Data stays raw until the
// caller decodes it into the operation's result type.
type apiEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error,omitempty"`
	Meta    *Pagination     `json:"meta"`
}

// Pagination mirrors the server's list metadata.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Client talks to the CocMarket API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// New builds a client for the API at baseURL (e.g. "https://api.cocmarket.gg").
// The "/api/v1" prefix is appended automatically.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  &MemoryTokenStore{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved API root including the version prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON performs one API round trip and decodes the envelope's data field
// into out (when out is non-nil). It returns the pagination metadata for list
// endpoints, nil otherwise. Errors follow the client taxonomy: NetworkError,
// ServiceError, DecodeError.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) (*Pagination, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token, _ := c.tokens.Load(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode >= 400 {
			// Non-JSON error body; the status alone is meaningful
			return nil, &ServiceError{Status: resp.StatusCode}
		}
		return nil, &DecodeError{Err: err}
	}

	if resp.StatusCode >= 400 || envelope.Error {
		return nil, &ServiceError{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, &DecodeError{Err: err}
		}
	}
	return envelope.Meta, nil
}
