package listing_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildListingOrderClause maps the storefront sort key to SQL. Keys match the
// client's canonical query vocabulary; anything unknown falls back to newest.
func buildListingOrderClause(sort string) string {
	switch sort {
	case "price_asc":
		return "l.price ASC, l.id ASC"
	case "price_desc":
		return "l.price DESC, l.id ASC"
	case "rating":
		return "s.trust_score DESC, l.id ASC"
	case "newest":
		return "l.created_at DESC, l.id ASC"
	default:
		return "l.created_at DESC, l.id ASC"
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}

// buildListingFilters translates the request's query parameters into WHERE
// conditions. The parameter names are exactly the canonical query keys the
// client emits; unknown enum values are dropped rather than rejected, so an
// empty query always works.
func buildListingFilters(c *gin.Context) (conditions []string, args []interface{}) {
	conditions = []string{"l.is_available = TRUE"}
	args = []interface{}{}

	if category := c.Query("category"); category != "" && models.IsValidCategory(category) {
		conditions = append(conditions, "l.category = ?")
		args = append(args, category)
	}

	if game := c.Query("game"); game != "" {
		conditions = append(conditions, "LOWER(l.game_name) = LOWER(?)")
		args = append(args, strings.TrimSpace(game))
	}

	// "fr" selects the domestic market; "other" matches everything else
	switch location := c.Query("location"); location {
	case models.LocationFR:
		conditions = append(conditions, "l.location = ?")
		args = append(args, models.LocationFR)
	case models.LocationOther:
		conditions = append(conditions, "l.location <> ?")
		args = append(args, models.LocationFR)
	default:
		if location != "" && models.IsValidLocation(location) {
			conditions = append(conditions, "l.location = ?")
			args = append(args, location)
		}
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			conditions = append(conditions, "l.price >= ?")
			args = append(args, minPrice)
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			conditions = append(conditions, "l.price <= ?")
			args = append(args, maxPrice)
		}
	}

	if condition := c.Query("condition"); condition != "" && models.IsValidCondition(condition) {
		conditions = append(conditions, "l.condition = ?")
		args = append(args, condition)
	}

	if c.Query("featured") == "true" {
		conditions = append(conditions, "l.is_featured = TRUE")
	}

	// Free-text search over title, description and game name
	if search := c.Query("q"); search != "" {
		conditions = append(conditions, "(l.title ILIKE ? OR l.description ILIKE ? OR l.game_name ILIKE ?)")
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}

	return conditions, args
}

// ─────────────────────────────────────────────────────────────
// Database fetcher (THIN RESPONSE)
// ─────────────────────────────────────────────────────────────

func fetchListingSummaries(
	whereClause string,
	orderClause string,
	args []interface{},
	page int,
	limit int,
) ([]models.ListingSummary, int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	offset := (page - 1) * limit

	// Count query
	countQuery := fmt.Sprintf(`
		SELECT COUNT(l.id)
		FROM listings l
		JOIN users s ON s.id = l.seller_id
		WHERE %s
	`, whereClause)

	var totalCount int64
	if err := config.MarketGorm.
		WithContext(ctx).
		Raw(countQuery, args...).
		Scan(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Data query (ONLY required fields)
	dataQuery := fmt.Sprintf(`
		SELECT
			l.id::text AS id,
			l.title,
			l.price,
			'%s' AS currency,
			l.condition,
			l.location,
			s.trust_score AS rating,
			s.total_sales AS review_count,
			COALESCE(l.images->>0, '') AS thumbnail,
			l.is_featured,
			COALESCE(s.display_name, s.username) AS seller_name,
			l.delivery_speed
		FROM listings l
		JOIN users s ON s.id = l.seller_id
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, models.ListingCurrency, whereClause, orderClause)

	dataArgs := append(args, limit, offset)

	listings := make([]models.ListingSummary, 0)

	if err := config.MarketGorm.
		WithContext(ctx).
		Raw(dataQuery, dataArgs...).
		Scan(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, int(totalCount), nil
}
