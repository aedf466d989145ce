package listing_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateListing godoc
// @Summary Update a listing
// @Description Partially updates a listing. Only the listing's owner may edit it; absent fields are left untouched.
// @Tags Seller - Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID (UUID)"
// @Param request body models.UpdateListingRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Listing}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 403 {object} models.ApiResponse "Not the listing owner"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /store/listings/{id} [patch]
func UpdateListing(c *gin.Context) {
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

	var req models.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing data: "+err.Error()))
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
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You can only edit your own listings"))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Price must be positive"))
			return
		}
		updates["price"] = *req.Price
	}
	if req.Condition != nil {
		if !models.IsValidCondition(*req.Condition) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown condition: "+*req.Condition))
			return
		}
		updates["condition"] = *req.Condition
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.DeliverySpeed != nil {
		updates["delivery_speed"] = *req.DeliverySpeed
	}
	if req.Stats != nil {
		raw, err := json.Marshal(*req.Stats)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stats"))
			return
		}
		updates["stats"] = datatypes.JSON(raw)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.MarketGorm.WithContext(ctx).Model(&listing).Updates(updates).Error; err != nil {
		log.Printf("❌ Failed to update listing %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update listing"))
		return
	}

	catalog_cache.Invalidate()

	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ?", listingID).
		First(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload listing"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing updated successfully", listing))
}
