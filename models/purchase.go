package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase statuses. A purchase row only exists once Stripe confirmed the
// checkout session, so "completed" is the normal state; "refunded" is set
// manually by support.
const (
	PurchaseCompleted = "completed"
	PurchaseRefunded  = "refunded"
)

// Purchase records a completed checkout. Created exclusively by the Stripe
// webhook handler; nothing client-side survives the hosted redirect.
type Purchase struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index"`
	Listing         *Listing  `json:"listing,omitempty" gorm:"foreignKey:ListingID;references:ID"`
	BuyerID         uuid.UUID `json:"buyer_id" gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID `json:"seller_id" gorm:"type:uuid;not null;index"`
	StripeSessionID string    `json:"stripe_session_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	Amount          float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency        string    `json:"currency" gorm:"type:varchar(10);not null;default:'eur'"`
	Status          string    `json:"status" gorm:"type:varchar(50);not null;default:'completed'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// CheckoutSessionRequest starts the hosted payment handoff.
type CheckoutSessionRequest struct {
	ListingID  string `json:"listing_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

// CheckoutSessionResponse hands back the opaque session and the hosted URL.
type CheckoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
