package marketplace_routes

import (
	"time"

	"github.com/Grimm02938/COCMarket/controllers/marketplace/auth_controller"
	"github.com/Grimm02938/COCMarket/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	// Credential endpoints are rate limited to slow down brute force attempts
	auth.Use(middleware.RateLimiter(30, time.Minute))
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
