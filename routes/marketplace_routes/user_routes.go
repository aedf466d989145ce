package marketplace_routes

import (
	"github.com/Grimm02938/COCMarket/controllers/marketplace/profile_controller"
	"github.com/Grimm02938/COCMarket/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the authenticated user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		auth.GET("/me", profile_controller.GetMe)
		auth.PATCH("/profile", profile_controller.UpdateProfile)
	}
}
