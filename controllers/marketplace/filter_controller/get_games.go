package filter_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
)

// GetGames godoc
// @Summary List popular games
// @Description Returns the twenty most listed games with their active listing counts. Cached server-side for five minutes.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.GameData}
// @Failure 500 {object} models.ApiResponse "Failed to fetch games"
// @Router /store/games [get]
func GetGames(c *gin.Context) {
	if cached, ok := catalog_cache.GetGames(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Games fetched successfully", cached))
		return
	}

	games, err := fetchPopularGames(20)
	if err != nil {
		log.Printf("❌ Failed to fetch games: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch games"))
		return
	}

	catalog_cache.SetGames(games)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Games fetched successfully", games))
}
