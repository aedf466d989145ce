package auth_controller

import (
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register godoc
// @Summary Register a new user
// @Description Create a marketplace account with username, email and password. Returns the user and a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Email or username already taken"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration data: "+err.Error()))
		return
	}

	log.Printf("📝 New user registration attempt for email: %s", req.Email)

	location := req.Location
	if location == "" {
		location = models.LocationFR
	}
	if !models.IsValidLocation(location) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown location"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Uniqueness checks mirror the storefront error messages
	var count int64
	if err := config.MarketGorm.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", req.Email).Count(&count).Error; err == nil && count > 0 {
		log.Printf("❌ Email already registered: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if err := config.MarketGorm.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", req.Username).Count(&count).Error; err == nil && count > 0 {
		log.Printf("❌ Username already taken: %s", req.Username)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Username already taken"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process password"))
		return
	}
	passwordHash := string(hash)

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Provider:     "email",
		Location:     location,
		Status:       "active",
	}

	if err := config.MarketGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("❌ DB insertion error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error during user creation"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Username)
	if err != nil {
		log.Printf("❌ Failed to generate JWT: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	setAuthCookie(c, token)

	// Non-blocking: login events are best effort
	_ = utils.LogLoginEvent(c, user.ID)

	log.Printf("🎉 Registration successful for: %s", user.Username)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Registration successful", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
