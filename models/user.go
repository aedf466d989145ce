package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Username        string         `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email           string         `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    *string        `json:"-" gorm:"type:varchar(255)"`
	GoogleID        string         `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);index"`
	Provider        string         `json:"provider" gorm:"type:varchar(50);default:'email'"`
	Location        string         `json:"location" gorm:"type:varchar(20);not null;default:'fr'"`
	Avatar          *string        `json:"avatar,omitempty" gorm:"type:text"`
	TrustScore      float64        `json:"trust_score" gorm:"type:numeric(3,1);default:5.0"`
	TotalSales      int            `json:"total_sales" gorm:"default:0"`
	TotalPurchases  int            `json:"total_purchases" gorm:"default:0"`
	IsVerified      bool           `json:"is_verified" gorm:"default:false"`
	Badges          datatypes.JSON `json:"badges" gorm:"type:jsonb;not null;default:'[]'"`
	DisplayName     *string        `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	Bio             *string        `json:"bio,omitempty" gorm:"type:text"`
	LocationDisplay *string        `json:"location_display,omitempty" gorm:"type:varchar(100)"`
	Status          string         `json:"status" gorm:"type:varchar(50);default:'active';index"`
	CreatedAt       time.Time      `json:"member_since" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Listings []Listing `json:"listings,omitempty" gorm:"foreignKey:SellerID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID             uuid.UUID      `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Provider       string         `json:"provider"`
	Location       string         `json:"location"`
	Avatar         *string        `json:"avatar,omitempty"`
	TrustScore     float64        `json:"trust_score"`
	TotalSales     int            `json:"total_sales"`
	TotalPurchases int            `json:"total_purchases"`
	IsVerified     bool           `json:"is_verified"`
	Badges         datatypes.JSON `json:"badges"`
	DisplayName    *string        `json:"display_name,omitempty"`
	Bio            *string        `json:"bio,omitempty"`
	MemberSince    time.Time      `json:"member_since"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Provider:       u.Provider,
		Location:       u.Location,
		Avatar:         u.Avatar, // keep pointer
		TrustScore:     u.TrustScore,
		TotalSales:     u.TotalSales,
		TotalPurchases: u.TotalPurchases,
		IsVerified:     u.IsVerified,
		Badges:         u.Badges,
		DisplayName:    u.DisplayName,
		Bio:            u.Bio,
		MemberSince:    u.CreatedAt,
	}
}

// SellerProfile is the public seller page: reputation plus active listings.
type SellerProfile struct {
	Seller   UserResponse     `json:"seller"`
	Listings []ListingSummary `json:"listings"`
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest for credential registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Location string `json:"location"`
}

// LoginRequest for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest for profile updates
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name"`
	Bio             *string `json:"bio"`
	Avatar          *string `json:"avatar"`
	LocationDisplay *string `json:"location_display"`
}
