package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Grimm02938/COCMarket/config"
	"github.com/Grimm02938/COCMarket/models"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and inserts sample marketplace data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("COCMARKET - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	if err := config.MarketGorm.Model(&models.Listing{}).Count(&existing).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing > 0 {
		fmt.Printf("Sample data already exists (%d listings), nothing to do\n", existing)
		return
	}

	sellers, err := seedSellers()
	if err != nil {
		log.Fatalf("Failed to seed sellers: %v", err)
	}
	log.Printf("✓ Created %d sellers", len(sellers))

	count, err := seedListings(sellers)
	if err != nil {
		log.Fatalf("Failed to seed listings: %v", err)
	}
	log.Printf("✓ Created %d listings", count)

	fmt.Println()
	fmt.Println("🎉 Seeding complete")
}

func migrate() error {
	if err := config.MarketGorm.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Purchase{},
	); err != nil {
		return err
	}

	// login_events is written via the pgx pool, so it is not a GORM model
	return config.MarketGorm.Exec(`
		CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ip_address TEXT,
			user_agent TEXT,
			device_type VARCHAR(50),
			browser VARCHAR(100),
			os VARCHAR(100)
		)
	`).Error
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Failed to encode JSON: %v", err)
	}
	return datatypes.JSON(raw)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func f64Ptr(f float64) *float64 {
	return &f
}

func seedSellers() ([]models.User, error) {
	sellers := []models.User{
		{
			Username:       "GamerPro123",
			Email:          "gamer@example.com",
			Provider:       "email",
			Location:       models.LocationFR,
			TrustScore:     4.8,
			TotalSales:     15,
			TotalPurchases: 3,
			IsVerified:     true,
			Badges:         mustJSON([]string{"Vendeur fiable", "Réponse rapide"}),
			DisplayName:    strPtr("GamerPro123"),
			Bio:            strPtr("Vendeur de comptes gaming depuis 2 ans"),
			Status:         "active",
			CreatedAt:      time.Now().AddDate(0, -3, 0),
		},
		{
			Username:       "SkinDealer",
			Email:          "dealer@example.com",
			Provider:       "email",
			Location:       models.LocationFR,
			TrustScore:     4.5,
			TotalSales:     8,
			TotalPurchases: 12,
			IsVerified:     true,
			Badges:         mustJSON([]string{"Nouveau vendeur"}),
			DisplayName:    strPtr("Skin Dealer"),
			Bio:            strPtr("Spécialisé dans les skins CS:GO"),
			Status:         "active",
			CreatedAt:      time.Now().AddDate(0, 0, -45),
		},
	}

	err := config.MarketGorm.Transaction(func(tx *gorm.DB) error {
		for i := range sellers {
			if err := tx.Create(&sellers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return sellers, err
}

func seedListings(sellers []models.User) (int, error) {
	listings := []models.Listing{
		{
			Title:         "Compte Fortnite niveau 150 avec skin rare",
			Description:   "Compte Fortnite avec de nombreux skins rares, niveau 150, plus de 200 victoires royales",
			Category:      models.CategoryAccounts,
			GameName:      "Fortnite",
			Price:         45.99,
			OriginalPrice: f64Ptr(60.00),
			Condition:     models.ConditionExcellent,
			Location:      models.LocationFR,
			SellerID:      sellers[0].ID,
			Images:        mustJSON([]string{}),
			IsFeatured:    true,
			IsAvailable:   true,
			Level:         intPtr(150),
			Stats:         mustJSON(map[string]interface{}{"wins": 200, "kills": 1500}),
			DeliverySpeed: "instant",
		},
		{
			Title:         "V-Bucks Fortnite - 2800 V-Bucks",
			Description:   "2800 V-Bucks pour Fortnite, livraison immédiate",
			Category:      models.CategoryCurrency,
			GameName:      "Fortnite",
			Price:         19.99,
			Condition:     models.ConditionNew,
			Location:      models.LocationFR,
			SellerID:      sellers[1].ID,
			Images:        mustJSON([]string{}),
			IsAvailable:   true,
			Stats:         mustJSON(map[string]interface{}{"amount": 2800}),
			DeliverySpeed: "instant",
		},
		{
			Title:         "Skin CS:GO AK-47 Redline",
			Description:   "Skin AK-47 Redline Field-Tested, très bon état",
			Category:      models.CategorySkins,
			GameName:      "CS:GO",
			Price:         25.50,
			Condition:     models.ConditionGood,
			Location:      models.LocationEU,
			SellerID:      sellers[0].ID,
			Images:        mustJSON([]string{}),
			IsAvailable:   true,
			Stats:         mustJSON(map[string]interface{}{"wear": "Field-Tested", "float": 0.15}),
			DeliverySpeed: "instant",
		},
	}

	err := config.MarketGorm.Transaction(func(tx *gorm.DB) error {
		for i := range listings {
			if err := tx.Create(&listings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return len(listings), err
}
