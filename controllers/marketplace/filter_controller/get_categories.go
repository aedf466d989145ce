package filter_controller

import (
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List marketplace categories
// @Description Returns every category with its label and active listing count.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.FilterOption}
// @Failure 500 {object} models.ApiResponse "Failed to fetch categories"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := fetchCountsByColumn("category", models.Categories)
	if err != nil {
		log.Printf("❌ Failed to fetch categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
