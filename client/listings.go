package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListingSummary is one storefront result row, exactly as the API serves it.
// Immutable once received; a new fetch replaces the whole set.
type ListingSummary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Thumbnail     string  `json:"thumbnail"`
	IsFeatured    bool    `json:"is_featured"`
	SellerName    string  `json:"seller_name"`
	DeliverySpeed string  `json:"delivery_speed"`
}

// FilterOption is one filter-panel entry with its listing count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GameData is one game with its active listing count.
type GameData struct {
	Name          string `json:"name"`
	ListingsCount int    `json:"listings_count"`
}

// PriceRange is the store-wide min/max price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata is everything the filter panel needs in one call.
type FilterMetadata struct {
	Categories []FilterOption `json:"categories"`
	Games      []GameData     `json:"games"`
	Conditions []FilterOption `json:"conditions"`
	PriceRange *PriceRange    `json:"priceRange"`
}

// Listings fetches one page of results for a canonical query. The query maps
// 1:1 onto the API's parameters; an empty map returns the default-sorted
// first page.
func (c *Client) Listings(ctx context.Context, query map[string]string, page, limit int) ([]ListingSummary, *Pagination, error) {
	params := url.Values{}
	for key, value := range query {
		params.Set(key, value)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var results []ListingSummary
	meta, err := c.doJSON(ctx, http.MethodGet, "/store/listings", params, nil, &results)
	if err != nil {
		return nil, nil, err
	}
	return results, meta, nil
}

// FilterMetadata fetches the filter panel data (category counts, popular
// games, condition counts, price range).
func (c *Client) FilterMetadata(ctx context.Context) (*FilterMetadata, error) {
	var metadata FilterMetadata
	if _, err := c.doJSON(ctx, http.MethodGet, "/store/filters/metadata", nil, nil, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// Games fetches the most-listed games.
func (c *Client) Games(ctx context.Context) ([]GameData, error) {
	var games []GameData
	if _, err := c.doJSON(ctx, http.MethodGet, "/store/games", nil, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Categories fetches every category with its listing count.
func (c *Client) Categories(ctx context.Context) ([]FilterOption, error) {
	var categories []FilterOption
	if _, err := c.doJSON(ctx, http.MethodGet, "/store/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
