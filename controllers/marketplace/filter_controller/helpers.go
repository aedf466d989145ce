package filter_controller

import (
	"strings"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
)

// titleLabel turns an enum value into its display label ("accounts" -> "Accounts").
func titleLabel(value string) string {
	if value == "" {
		return ""
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// fetchPopularGames aggregates active listings per game, most listed first.
// Runs on the pgx pool: it is a hot storefront query and needs no ORM features.
func fetchPopularGames(limit int) ([]models.GameData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.MarketDB.Query(ctx, `
		SELECT game_name, COUNT(*) AS listings_count
		FROM listings
		WHERE is_available = TRUE
		GROUP BY game_name
		ORDER BY listings_count DESC, game_name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.GameData, 0)
	for rows.Next() {
		var g models.GameData
		if err := rows.Scan(&g.Name, &g.ListingsCount); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// fetchPriceRange returns the min/max price across available listings,
// or nil when the store is empty.
func fetchPriceRange() (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var min, max *float64
	err := config.MarketDB.QueryRow(ctx, `
		SELECT MIN(price), MAX(price)
		FROM listings
		WHERE is_available = TRUE
	`).Scan(&min, &max)
	if err != nil {
		return nil, err
	}
	if min == nil || max == nil {
		return nil, nil
	}
	return &models.PriceRangeData{Min: *min, Max: *max}, nil
}

// fetchCountsByColumn counts available listings grouped by an enum column and
// returns one option per known value, zero counts included, in vocabulary order.
func fetchCountsByColumn(column string, vocabulary []string) ([]models.FilterOption, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	type row struct {
		Value string
		Count int
	}

	var counted []row
	if err := config.MarketGorm.WithContext(ctx).
		Raw(`
			SELECT ` + column + ` AS value, COUNT(*) AS count
			FROM listings
			WHERE is_available = TRUE
			GROUP BY ` + column + `
		`).
		Scan(&counted).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(counted))
	for _, r := range counted {
		counts[r.Value] = r.Count
	}

	options := make([]models.FilterOption, 0, len(vocabulary))
	for _, v := range vocabulary {
		options = append(options, models.FilterOption{
			Label: titleLabel(v),
			Value: v,
			Count: counts[v],
		})
	}
	return options, nil
}
