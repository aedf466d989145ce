// models/filters.go
package models

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories []FilterOption  `json:"categories"`
	Games      []GameData      `json:"games"`
	Conditions []FilterOption  `json:"conditions"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// FilterOption represents a single filter option with its listing count
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GameData represents one game and how many active listings it has
type GameData struct {
	Name          string `json:"name"`
	ListingsCount int    `json:"listings_count"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
