package seller_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerProfile godoc
// @Summary Get a seller's public profile
// @Description Returns a seller's public profile together with their available listings, newest first.
// @Tags Store - Sellers
// @Produce json
// @Param id path string true "Seller ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.SellerProfile}
// @Failure 400 {object} models.ApiResponse "Invalid seller ID"
// @Failure 404 {object} models.ApiResponse "Seller not found"
// @Router /store/sellers/{id} [get]
func GetSellerProfile(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid seller ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var seller models.User
	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ? AND status = ?", sellerID, "active").
		First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Seller not found"))
			return
		}
		log.Printf("❌ Failed to fetch seller %s: %v", sellerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch seller"))
		return
	}

	listings := make([]models.ListingSummary, 0)
	if err := config.MarketGorm.WithContext(ctx).
		Raw(`
			SELECT
				l.id::text AS id,
				l.title,
				l.price,
				'`+models.ListingCurrency+`' AS currency,
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
			WHERE l.seller_id = ? AND l.is_available = TRUE
			ORDER BY l.created_at DESC, l.id ASC
		`, sellerID).
		Scan(&listings).Error; err != nil {
		log.Printf("❌ Failed to fetch seller listings for %s: %v", sellerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch seller listings"))
		return
	}

	profile := models.SellerProfile{
		Seller:   seller.ToResponse(),
		Listings: listings,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller profile fetched successfully", profile))
}
