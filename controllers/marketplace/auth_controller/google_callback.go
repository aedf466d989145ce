// Path: controllers/marketplace/auth_controller/google_callback.go

package auth_controller

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/utils"
	"github.com/gin-gonic/gin"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, retrieves user info, creates/updates the user in the database, issues a JWT cookie, and redirects the user back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	log.Printf("🔄 Exchanging code for token...")
	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	log.Printf("🔄 Getting user info...")
	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("❌ Failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Failed to read user info: %v", err)
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("❌ Failed to decode user info: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	if googleUser.Email == "" {
		log.Printf("❌ No email from Google")
		redirectToFrontendWithError(c, "Email not provided by Google")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail

	log.Printf("🔄 Social login for email: %s", googleUser.Email)
	user, err := createOrUpdateGoogleUser(c, &googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("❌ Failed to create/update user: %v", err)
		redirectToFrontendWithError(c, "Failed to create user")
		return
	}

	if user.Status != "active" {
		redirectToFrontendWithError(c, "Account is not active")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Username)
	if err != nil {
		log.Printf("❌ Failed to generate JWT: %v", err)
		redirectToFrontendWithError(c, "Failed to create session")
		return
	}

	setAuthCookie(c, jwtToken)
	_ = utils.LogLoginEvent(c, user.ID)

	log.Printf("🎉 Social login successful for: %s", user.Username)
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL())
}
