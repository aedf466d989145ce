package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Listing domain vocabulary
// ═══════════════════════════════════════════════════════════

// Categories of items sold on the marketplace.
const (
	CategoryAccounts   = "accounts"
	CategoryItems      = "items"
	CategoryCharacters = "characters"
	CategorySkins      = "skins"
	CategoryCurrency   = "currency"
	CategoryBoosting   = "boosting"
)

// Condition tiers for a listing.
const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
)

// Seller regions. "fr" is the domestic market, everything else international.
const (
	LocationFR    = "fr"
	LocationEU    = "eu"
	LocationNA    = "na"
	LocationAsia  = "asia"
	LocationOther = "other"
)

// Currency used for every listing price. Stripe amounts are derived from it.
const ListingCurrency = "eur"

var Categories = []string{
	CategoryAccounts, CategoryItems, CategoryCharacters,
	CategorySkins, CategoryCurrency, CategoryBoosting,
}

var Conditions = []string{
	ConditionNew, ConditionExcellent, ConditionGood, ConditionFair,
}

var Locations = []string{
	LocationFR, LocationEU, LocationNA, LocationAsia, LocationOther,
}

// IsValidCategory reports whether v is a known category value.
func IsValidCategory(v string) bool {
	for _, c := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func IsValidCondition(v string) bool {
	for _, c := range Conditions {
		if c == v {
			return true
		}
	}
	return false
}

func IsValidLocation(v string) bool {
	for _, l := range Locations {
		if l == v {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Main Listing Model (GORM)
// ═══════════════════════════════════════════════════════════

type Listing struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string         `json:"title" gorm:"not null;index"`
	Description   string         `json:"description" gorm:"not null"`
	Category      string         `json:"category" gorm:"type:varchar(50);not null;index"`
	GameName      string         `json:"game_name" gorm:"type:varchar(100);not null;index"`
	Price         float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64       `json:"original_price,omitempty" gorm:"type:numeric(12,2)"`
	Condition     string         `json:"condition" gorm:"type:varchar(50);not null;default:'excellent'"`
	Location      string         `json:"location" gorm:"type:varchar(20);not null;index"`
	SellerID      uuid.UUID      `json:"seller_id" gorm:"type:uuid;not null;index"`
	Seller        *User          `json:"seller,omitempty" gorm:"foreignKey:SellerID;references:ID"`
	Images        datatypes.JSON `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	IsFeatured    bool           `json:"is_featured" gorm:"default:false;index"`
	IsAvailable   bool           `json:"is_available" gorm:"default:true;index"`
	Level         *int           `json:"level,omitempty"`
	Rank          *string        `json:"rank,omitempty" gorm:"type:varchar(100)"`
	Stats         datatypes.JSON `json:"stats" gorm:"type:jsonb;not null;default:'{}'"`
	DeliverySpeed string         `json:"delivery_speed" gorm:"type:varchar(50);not null;default:'instant'"`
	Views         int            `json:"views" gorm:"default:0"`
	FavoriteCount int            `json:"favorite_count" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate hook - auto-generate UUID v7
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Storefront projections
// ═══════════════════════════════════════════════════════════

// ListingSummary is one storefront result row: the listing joined with the
// seller's public reputation. This is the exact shape the client SDK decodes.
type ListingSummary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Thumbnail     string  `json:"thumbnail"`
	IsFeatured    bool    `json:"is_featured"`
	SellerName    string  `json:"seller_name"`
	DeliverySpeed string  `json:"delivery_speed"`
}

// CreateListingRequest for sellers publishing a new listing
type CreateListingRequest struct {
	Title         string                 `json:"title" binding:"required"`
	Description   string                 `json:"description" binding:"required"`
	Category      string                 `json:"category" binding:"required"`
	GameName      string                 `json:"game_name" binding:"required"`
	Price         float64                `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64               `json:"original_price"`
	Condition     string                 `json:"condition"`
	Location      string                 `json:"location" binding:"required"`
	Level         *int                   `json:"level"`
	Rank          *string                `json:"rank"`
	Stats         map[string]interface{} `json:"stats"`
	DeliverySpeed string                 `json:"delivery_speed"`
}

// UpdateListingRequest for partial listing edits (nil = leave unchanged)
type UpdateListingRequest struct {
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Price         *float64                `json:"price"`
	Condition     *string                 `json:"condition"`
	IsAvailable   *bool                   `json:"is_available"`
	DeliverySpeed *string                 `json:"delivery_speed"`
	Stats         *map[string]interface{} `json:"stats"`
}
