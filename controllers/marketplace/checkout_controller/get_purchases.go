package checkout_controller

import (
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetPurchases godoc
// @Summary List the current user's purchases
// @Description Returns the authenticated user's purchases, newest first, with the purchased listing embedded.
// @Tags User - Purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Purchase}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /checkout/purchases [get]
func GetPurchases(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	buyerID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	purchases := make([]models.Purchase, 0)
	if err := config.MarketGorm.WithContext(ctx).
		Preload("Listing").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		log.Printf("❌ Failed to fetch purchases for %s: %v", buyerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchases"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchases fetched successfully", purchases))
}
