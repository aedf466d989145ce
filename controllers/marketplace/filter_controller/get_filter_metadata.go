package filter_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get storefront filter metadata
// @Description Returns everything the storefront needs to render its filter panel: category counts, popular games, condition counts and the store's price range. Cached server-side for five minutes.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse "Failed to build filter metadata"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := catalog_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", cached))
		return
	}

	categories, err := fetchCountsByColumn("category", models.Categories)
	if err != nil {
		log.Printf("❌ Failed to count categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build filter metadata"))
		return
	}

	conditions, err := fetchCountsByColumn("condition", models.Conditions)
	if err != nil {
		log.Printf("❌ Failed to count conditions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build filter metadata"))
		return
	}

	games, err := fetchPopularGames(20)
	if err != nil {
		log.Printf("❌ Failed to aggregate games: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build filter metadata"))
		return
	}

	priceRange, err := fetchPriceRange()
	if err != nil {
		log.Printf("❌ Failed to fetch price range: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build filter metadata"))
		return
	}

	metadata := &models.FilterMetadata{
		Categories: categories,
		Games:      games,
		Conditions: conditions,
		PriceRange: priceRange,
	}
	catalog_cache.SetMetadata(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}
