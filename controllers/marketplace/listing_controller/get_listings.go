package listing_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
)

// GetListings godoc
// @Summary Browse marketplace listings
// @Description Returns available listings filtered by the storefront's canonical query parameters. Every parameter is optional; an empty query returns the newest listings first.
// @Tags Store - Listings
// @Accept json
// @Produce json
// @Param category query string false "Listing category" Enums(accounts, items, characters, skins, currency, boosting)
// @Param game query string false "Game name (case-insensitive exact match)"
// @Param location query string false "Seller region; 'fr' is domestic, 'other' matches every non-domestic region" Enums(fr, eu, na, asia, other)
// @Param min_price query number false "Minimum price in EUR"
// @Param max_price query number false "Maximum price in EUR"
// @Param condition query string false "Listing condition" Enums(new, excellent, good, fair)
// @Param featured query boolean false "Only featured listings"
// @Param q query string false "Free-text search over title, description and game"
// @Param sort query string false "Sort order" Enums(newest, price_asc, price_desc, rating) default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ListingSummary}
// @Failure 500 {object} models.ApiResponse "Failed to fetch listings"
// @Router /store/listings [get]
func GetListings(c *gin.Context) {
	page, limit := parsePagination(c)

	conditions, args := buildListingFilters(c)
	whereClause := strings.Join(conditions, " AND ")
	orderClause := buildListingOrderClause(c.DefaultQuery("sort", "newest"))

	listings, totalCount, err := fetchListingSummaries(whereClause, orderClause, args, page, limit)
	if err != nil {
		log.Printf("❌ Failed to fetch listings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch listings"))
		return
	}

	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Listings fetched successfully",
		listings,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
