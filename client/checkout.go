package client

import (
	"context"
	"net/http"
)

// CheckoutSession is the opaque handle to a hosted payment flow. Phase one
// of the handoff creates it; phase two redirects the buyer to CheckoutURL.
// Nothing local survives the redirect: on return the success or cancel URL
// carries all remaining context.
type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// Purchase is one completed order, with the bought listing embedded.
type Purchase struct {
	ID        string  `json:"id"`
	ListingID string  `json:"listing_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type checkoutSessionRequest struct {
	ListingID  string `json:"listing_id"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CreateCheckoutSession starts the two-phase payment handoff for one listing.
// The caller must then send the buyer to the returned CheckoutURL; the hosted
// flow redirects to successURL or cancelURL when finished.
func (c *Client) CreateCheckoutSession(ctx context.Context, listingID, successURL, cancelURL string) (*CheckoutSession, error) {
	if listingID == "" {
		return nil, &ValidationError{Field: "listing_id", Message: "must not be empty"}
	}

	var session CheckoutSession
	_, err := c.doJSON(ctx, http.MethodPost, "/checkout/session", nil, checkoutSessionRequest{
		ListingID:  listingID,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Purchases lists the authenticated user's completed orders, newest first.
func (c *Client) Purchases(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase
	if _, err := c.doJSON(ctx, http.MethodGet, "/checkout/purchases", nil, nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}
