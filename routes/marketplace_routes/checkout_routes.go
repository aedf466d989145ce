package marketplace_routes

import (
	"github.com/Grimm02938/COCMarket/controllers/marketplace/checkout_controller"
	"github.com/Grimm02938/COCMarket/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes sets up the payment handoff routes
func SetupCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")

	// Stripe calls this; signature verification replaces auth
	checkout.POST("/webhook", checkout_controller.StripeWebhook)

	authed := checkout.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/session", checkout_controller.CreateCheckoutSession)
		authed.GET("/purchases", checkout_controller.GetPurchases)
		authed.GET("/purchases/:id/receipt", checkout_controller.DownloadReceipt)
	}
}
