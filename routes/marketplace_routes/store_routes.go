package marketplace_routes

import (
	"github.com/Grimm02938/COCMarket/controllers/marketplace/filter_controller"
	"github.com/Grimm02938/COCMarket/controllers/marketplace/listing_controller"
	"github.com/Grimm02938/COCMarket/controllers/marketplace/seller_controller"
	"github.com/Grimm02938/COCMarket/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStoreRoutes sets up the public storefront routes
func SetupStoreRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Listing routes
	listings := store.Group("/listings")
	{
		listings.GET("", listing_controller.GetListings) // Browse with filters
		listings.GET("/:id", listing_controller.GetListingByID)

		// Seller-side listing management
		authed := listings.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", listing_controller.CreateListing)
			authed.PATCH("/:id", listing_controller.UpdateListing)
			authed.DELETE("/:id", listing_controller.DeleteListing)
			authed.POST("/:id/images", listing_controller.UploadListingImages)
		}
	}

	// Filter panel data
	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)
	store.GET("/categories", filter_controller.GetCategories)
	store.GET("/games", filter_controller.GetGames)

	// Public seller pages
	store.GET("/sellers/:id", seller_controller.GetSellerProfile)
}
