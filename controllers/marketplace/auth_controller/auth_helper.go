package auth_controller

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setAuthCookie stores the session token the same way for every login path
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		30*24*3600, // 30 days, matching the JWT expiry
		"/",
		"",
		isProd,
		true, // httpOnly
	)
}

func createOrUpdateGoogleUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.MarketGorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user with a free username
			username, err := availableUsername(googleUser.Name, googleUser.Email)
			if err != nil {
				return nil, err
			}

			user = models.User{
				Username:    username,
				Email:       googleUser.Email,
				GoogleID:    googleID,
				Provider:    "google",
				Location:    models.LocationFR,
				IsVerified:  emailVerified,
				Avatar:      &googleUser.Picture,
				DisplayName: &googleUser.Name,
				Status:      "active",
			}

			if err := config.MarketGorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":      googleUser.Picture,
		"is_verified": emailVerified,
	}

	// Only set display name if user never had one
	if user.DisplayName == nil {
		updates["display_name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.MarketGorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.DisplayName == nil {
		user.DisplayName = &googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.IsVerified = emailVerified

	return &user, nil
}

// availableUsername derives a unique username from the Google profile name,
// suffixing a counter on collision
func availableUsername(name, email string) (string, error) {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if base == "" {
		base = strings.Split(email, "@")[0]
	}

	username := base
	counter := 1
	for {
		var count int64
		if err := config.MarketGorm.Model(&models.User{}).
			Where("username = ?", username).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
