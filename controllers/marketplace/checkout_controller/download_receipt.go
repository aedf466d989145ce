package checkout_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DownloadReceipt godoc
// @Summary Download a purchase receipt PDF
// @Description Generates and streams the PDF receipt for one of the authenticated user's purchases. Only the buyer can download it.
// @Tags User - Purchases
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Purchase ID (UUID)"
// @Success 200 {file} binary "PDF receipt"
// @Failure 403 {object} models.ApiResponse "Not the buyer"
// @Failure 404 {object} models.ApiResponse "Purchase not found"
// @Router /checkout/purchases/{id}/receipt [get]
func DownloadReceipt(c *gin.Context) {
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

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid purchase ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var purchase models.Purchase
	if err := config.MarketGorm.WithContext(ctx).
		Preload("Listing").
		Where("id = ?", purchaseID).
		First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Purchase not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchase"))
		return
	}

	if purchase.BuyerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You can only download your own receipts"))
		return
	}
	if purchase.Listing == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Purchase has no listing"))
		return
	}

	var buyer, seller models.User
	if err := config.MarketGorm.WithContext(ctx).Where("id = ?", purchase.BuyerID).First(&buyer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch buyer"))
		return
	}
	if err := config.MarketGorm.WithContext(ctx).Where("id = ?", purchase.SellerID).First(&seller).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch seller"))
		return
	}

	buyerName := buyer.Username
	if buyer.DisplayName != nil && *buyer.DisplayName != "" {
		buyerName = *buyer.DisplayName
	}
	sellerName := seller.Username
	if seller.DisplayName != nil && *seller.DisplayName != "" {
		sellerName = *seller.DisplayName
	}

	pdf := services.GeneratePurchaseReceiptPDF(&purchase, purchase.Listing, buyerName, buyer.Email, sellerName)

	log.Printf("📝 Receipt generated for purchase %s", purchaseID)

	filename := fmt.Sprintf("receipt-%s.pdf", purchaseID)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}
