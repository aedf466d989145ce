package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/controllers/marketplace/listing_controller"
	_ "github.com/Grimm02938/COCMarket/docs"
	"github.com/Grimm02938/COCMarket/routes/marketplace_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CocMarket API
// @version 1.0
// @description Marketplace for gaming accounts, items, skins and boosting services.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitDB()
	config.ConnectRedis()

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := listing_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	config.InitGoogleOAuth()
	config.InitStripe()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	marketplace_routes.SetupAuthRoutes(api)
	marketplace_routes.SetupUserRoutes(api)
	marketplace_routes.SetupStoreRoutes(api)
	marketplace_routes.SetupCheckoutRoutes(api)
	log.Println("✅ Marketplace routes registered")

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
