package listing_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteListing godoc
// @Summary Delete a listing
// @Description Removes a listing and its uploaded screenshots. Only the listing's owner may delete it.
// @Tags Seller - Listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Not the listing owner"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /store/listings/{id} [delete]
func DeleteListing(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var listing models.Listing
	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ?", listingID).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch listing"))
		return
	}

	if listing.SellerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You can only delete your own listings"))
		return
	}

	if err := config.MarketGorm.WithContext(ctx).Delete(&listing).Error; err != nil {
		log.Printf("❌ Failed to delete listing %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete listing"))
		return
	}

	catalog_cache.Invalidate()

	// Screenshots are cleaned up in the background; the listing row is already gone
	if cloudinarySvc != nil {
		go func(id string) {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := cloudinarySvc.DeleteListingImages(cleanupCtx, id); err != nil {
				log.Printf("⚠️ Failed to delete images for listing %s: %v", id, err)
			}
		}(listingID.String())
	}

	log.Printf("✅ Listing deleted: %s", listingID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing deleted successfully", nil))
}
