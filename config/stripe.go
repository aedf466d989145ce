// ════════════════════════════════════════════════════════════
// Path: config/stripe.go
// Stripe Configuration
// ════════════════════════════════════════════════════════════

package config

import (
	"log"
	"os"

	"github.com/stripe/stripe-go/v79"
)

var stripeWebhookSecret string

// InitStripe wires the global Stripe API key and keeps the webhook secret
// around for signature verification.
func InitStripe() {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("❌ STRIPE_SECRET_KEY environment variable not set")
	}
	stripe.Key = secretKey

	stripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	if stripeWebhookSecret == "" {
		log.Println("⚠️  STRIPE_WEBHOOK_SECRET not set, webhook verification will fail")
	}

	log.Println("✅ Stripe configured")
}

// StripeWebhookSecret returns the endpoint secret for webhook verification
func StripeWebhookSecret() string {
	return stripeWebhookSecret
}
