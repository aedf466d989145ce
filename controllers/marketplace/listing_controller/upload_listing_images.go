package listing_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var cloudinarySvc *services.CloudinaryService

// InitCloudinary wires the shared Cloudinary client used for listing screenshots.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinarySvc = svc
	log.Println("✅ Cloudinary initialized")
	return nil
}

// UploadListingImages godoc
// @Summary Upload listing screenshots
// @Description Uploads one or more screenshots for a listing and appends their URLs to the listing's image list. Only the listing's owner may upload.
// @Tags Seller - Listings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID (UUID)"
// @Param images formData file true "Screenshot files (repeatable)"
// @Success 200 {object} models.ApiResponse{data=[]string} "Uploaded image URLs"
// @Failure 400 {object} models.ApiResponse "No files provided"
// @Failure 403 {object} models.ApiResponse "Not the listing owner"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /store/listings/{id}/images [post]
func UploadListingImages(c *gin.Context) {
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

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	if cloudinarySvc == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No files provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var listing models.Listing
	if err := config.MarketGorm.WithContext(ctx).
		Where("id = ?", listingID).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch listing"))
		return
	}

	if listing.SellerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You can only upload images to your own listings"))
		return
	}

	urls, err := cloudinarySvc.UploadListingImages(c.Request.Context(), files, listingID.String())
	if err != nil {
		log.Printf("❌ Image upload failed for listing %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	// Append to the existing image list
	var images []string
	if len(listing.Images) > 0 {
		_ = json.Unmarshal(listing.Images, &images)
	}
	images = append(images, urls...)

	raw, err := json.Marshal(images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to encode image list"))
		return
	}

	if err := config.MarketGorm.WithContext(ctx).
		Model(&listing).
		UpdateColumn("images", datatypes.JSON(raw)).Error; err != nil {
		log.Printf("❌ Failed to save image list for %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image list"))
		return
	}

	log.Printf("✅ Uploaded %d image(s) for listing %s", len(urls), listingID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", urls))
}
