package checkout_controller

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"gorm.io/gorm"
)

// CreateCheckoutSession godoc
// @Summary Start a checkout for a listing
// @Description Creates a Stripe hosted checkout session for one listing and returns the redirect URL. The listing is marked sold only when the payment webhook confirms it; nothing is reserved before that.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutSessionRequest true "Listing and redirect URLs"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutSessionResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload or listing no longer available"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /checkout/session [post]
func CreateCheckoutSession(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	buyerID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid checkout data: "+err.Error()))
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
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

	if !listing.IsAvailable {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Listing is no longer available"))
		return
	}
	if listing.SellerID == buyerID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot buy your own listing"))
		return
	}

	// Stripe wants cents
	amountCents := amountInCents(listing.Price)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(models.ListingCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(listing.Title),
						Description: stripe.String(listing.GameName + " - " + listing.Category),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}&listing_id=" + listing.ID.String()),
		CancelURL:  stripe.String(req.CancelURL),
		Metadata: map[string]string{
			"listing_id": listing.ID.String(),
			"buyer_id":   buyerID.String(),
			"seller_id":  listing.SellerID.String(),
		},
	}

	s, err := session.New(params)
	if err != nil {
		log.Printf("❌ Failed to create checkout session for listing %s: %v", listingID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create checkout session"))
		return
	}

	log.Printf("🔄 Checkout session %s created for listing %s", s.ID, listingID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout session created", models.CheckoutSessionResponse{
		SessionID:   s.ID,
		CheckoutURL: s.URL,
	}))
}

// amountInCents converts a EUR price to Stripe's integer cents. Rounded, not
// truncated: 19.99 * 100 is 1998.999... as a float64.
func amountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
