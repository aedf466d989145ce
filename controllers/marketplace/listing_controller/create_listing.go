package listing_controller

import (
	"encoding/json"
	"log"
	"net/http"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateListing godoc
// @Summary Publish a new listing
// @Description Creates a listing owned by the authenticated user. Screenshots are uploaded separately via the images endpoint.
// @Tags Seller - Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateListingRequest true "Listing payload"
// @Success 201 {object} models.ApiResponse{data=models.Listing}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /store/listings [post]
func CreateListing(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	sellerID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing data: "+err.Error()))
		return
	}

	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category: "+req.Category))
		return
	}
	if !models.IsValidLocation(req.Location) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown location: "+req.Location))
		return
	}

	condition := req.Condition
	if condition == "" {
		condition = models.ConditionExcellent
	}
	if !models.IsValidCondition(condition) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown condition: "+condition))
		return
	}

	deliverySpeed := req.DeliverySpeed
	if deliverySpeed == "" {
		deliverySpeed = "instant"
	}

	stats := datatypes.JSON([]byte("{}"))
	if req.Stats != nil {
		raw, err := json.Marshal(req.Stats)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stats"))
			return
		}
		stats = datatypes.JSON(raw)
	}

	listing := models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		GameName:      req.GameName,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Condition:     condition,
		Location:      req.Location,
		SellerID:      sellerID,
		Images:        datatypes.JSON([]byte("[]")),
		Stats:         stats,
		Level:         req.Level,
		Rank:          req.Rank,
		DeliverySpeed: deliverySpeed,
		IsAvailable:   true,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.MarketGorm.WithContext(ctx).Create(&listing).Error; err != nil {
		log.Printf("❌ Failed to create listing: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create listing"))
		return
	}

	// New games/categories may now exist
	catalog_cache.Invalidate()

	log.Printf("✅ Listing created: %s (%s)", listing.Title, listing.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Listing created successfully", listing))
}
