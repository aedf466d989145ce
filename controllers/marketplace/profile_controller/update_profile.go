package profile_controller

import (
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Partially update display name, bio, avatar or location display. Absent fields are left untouched.
// @Tags User - Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /auth/profile [patch]
func UpdateProfile(c *gin.Context) {
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

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid profile data: "+err.Error()))
		return
	}

	// Only non-nil fields are written
	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.LocationDisplay != nil {
		updates["location_display"] = *req.LocationDisplay
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}

	if err := config.MarketGorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		log.Printf("❌ Failed to update profile for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	// Re-read to return the stored state
	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated", user.ToResponse()))
}
