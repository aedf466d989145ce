package auth_controller

import (
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Login with email and password
// @Description Authenticate a user and return the user with a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid login data: "+err.Error()))
		return
	}

	log.Printf("🔑 Login attempt for: %s", req.Email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.MarketGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("❌ User not found: %s", req.Email)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Social-login accounts have no password hash
	if user.PasswordHash == nil {
		log.Printf("❌ Social login account, no password: %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("❌ Incorrect password for: %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Username)
	if err != nil {
		log.Printf("❌ Failed to generate JWT: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	setAuthCookie(c, token)
	_ = utils.LogLoginEvent(c, user.ID)

	log.Printf("🎉 Login successful for: %s", user.Username)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
