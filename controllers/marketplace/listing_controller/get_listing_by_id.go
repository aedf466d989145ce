package listing_controller

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

// GetListingByID godoc
// @Summary Get a single listing
// @Description Returns the full listing with its seller's public profile. Each call increments the listing's view counter.
// @Tags Store - Listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Listing}
// @Failure 400 {object} models.ApiResponse "Invalid listing ID"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /store/listings/{id} [get]
func GetListingByID(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var listing models.Listing
	if err := config.MarketGorm.WithContext(ctx).
		Preload("Seller").
		Where("id = ?", listingID).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
			return
		}
		log.Printf("❌ Failed to fetch listing %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch listing"))
		return
	}

	// Best-effort view counter; a failed increment never blocks the response
	if err := config.MarketGorm.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", listingID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("⚠️ Failed to increment views for %s: %v", listingID, err)
	} else {
		listing.Views++
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing fetched successfully", listing))
}
