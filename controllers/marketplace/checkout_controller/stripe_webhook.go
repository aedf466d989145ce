package checkout_controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/Grimm02938/COCMarket/cache"
	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/Grimm02938/COCMarket/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/gorm"
)

const maxWebhookBodyBytes = int64(65536)

// StripeWebhook godoc
// @Summary Stripe payment webhook
// @Description Receives checkout.session.completed events from Stripe. Marks the listing as sold, updates buyer/seller counters, records the purchase and emails the receipt. The handler is idempotent: a replayed event for an already-recorded session is acknowledged without side effects.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Event processed"
// @Failure 400 {object} map[string]string "Invalid signature or payload"
// @Router /checkout/webhook [post]
func StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.StripeWebhookSecret())
	if err != nil {
		log.Printf("❌ Webhook signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		// Acknowledge events we don't handle so Stripe stops retrying them
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Printf("❌ Failed to decode checkout session: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload"})
		return
	}

	if err := recordCompletedCheckout(&session); err != nil {
		log.Printf("❌ Failed to record checkout %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

// recordCompletedCheckout applies all marketplace effects of a paid session
// inside one transaction.
func recordCompletedCheckout(session *stripe.CheckoutSession) error {
	listingID, err := uuid.Parse(session.Metadata["listing_id"])
	if err != nil {
		return err
	}
	buyerID, err := uuid.Parse(session.Metadata["buyer_id"])
	if err != nil {
		return err
	}
	sellerID, err := uuid.Parse(session.Metadata["seller_id"])
	if err != nil {
		return err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var purchase models.Purchase

	err = config.MarketGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replayed event: the session is already recorded
		var existing int64
		if err := tx.Model(&models.Purchase{}).
			Where("stripe_session_id = ?", session.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.Printf("⚠️ Duplicate webhook for session %s, skipping", session.ID)
			return nil
		}

		if err := tx.Model(&models.Listing{}).
			Where("id = ?", listingID).
			Update("is_available", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", sellerID).
			UpdateColumn("total_sales", gorm.Expr("total_sales + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", buyerID).
			UpdateColumn("total_purchases", gorm.Expr("total_purchases + 1")).Error; err != nil {
			return err
		}

		purchase = models.Purchase{
			ListingID:       listingID,
			BuyerID:         buyerID,
			SellerID:        sellerID,
			StripeSessionID: session.ID,
			Amount:          float64(session.AmountTotal) / 100,
			Currency:        models.ListingCurrency,
			Status:          models.PurchaseCompleted,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return err
	}

	if purchase.ID != uuid.Nil {
		log.Printf("🎉 Purchase recorded: listing %s sold to %s", listingID, buyerID)
		// The listing just left the storefront; counts and popular games
		// cached from before the sale are stale now
		catalog_cache.Invalidate()
		go sendReceiptEmail(purchase.ID)
	}
	return nil
}

// sendReceiptEmail builds the PDF receipt and mails it. Runs detached from the
// webhook response; a failure here never un-records the purchase.
func sendReceiptEmail(purchaseID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var purchase models.Purchase
	if err := config.MarketGorm.WithContext(ctx).
		Preload("Listing").
		Where("id = ?", purchaseID).
		First(&purchase).Error; err != nil {
		log.Printf("⚠️ Receipt email: failed to load purchase %s: %v", purchaseID, err)
		return
	}
	if purchase.Listing == nil {
		log.Printf("⚠️ Receipt email: purchase %s has no listing", purchaseID)
		return
	}

	var buyer, seller models.User
	if err := config.MarketGorm.WithContext(ctx).Where("id = ?", purchase.BuyerID).First(&buyer).Error; err != nil {
		log.Printf("⚠️ Receipt email: failed to load buyer: %v", err)
		return
	}
	if err := config.MarketGorm.WithContext(ctx).Where("id = ?", purchase.SellerID).First(&seller).Error; err != nil {
		log.Printf("⚠️ Receipt email: failed to load seller: %v", err)
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

	resend := services.NewResendClient()
	err := resend.SendPurchaseReceiptEmail(services.PurchaseReceiptEmailData{
		BuyerName:    buyerName,
		BuyerEmail:   buyer.Email,
		ListingTitle: purchase.Listing.Title,
		GameName:     purchase.Listing.GameName,
		SellerName:   sellerName,
		Amount:       purchase.Amount,
		Currency:     purchase.Currency,
		PurchaseDate: purchase.CreatedAt.Format(time.RFC1123),
		PDFContent:   pdf.Bytes(),
	})
	if err != nil {
		log.Printf("⚠️ Failed to send receipt email for purchase %s: %v", purchaseID, err)
		return
	}
	log.Printf("📧 Receipt emailed to %s for purchase %s", buyer.Email, purchaseID)
}
