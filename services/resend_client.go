package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@cocmarket.gg" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// send posts one email payload to the Resend API
func (r *ResendClient) send(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] request failed: %v", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API error (%d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, string(body))
	}

	return nil
}

// PurchaseReceiptEmailData holds data for the purchase receipt email
type PurchaseReceiptEmailData struct {
	BuyerName    string
	BuyerEmail   string
	ListingTitle string
	GameName     string
	SellerName   string
	Amount       float64
	Currency     string
	PurchaseDate string
	PDFContent   []byte
}

// SendPurchaseReceiptEmail sends an HTML receipt with the PDF attached via Resend
func (r *ResendClient) SendPurchaseReceiptEmail(data PurchaseReceiptEmailData) error {
	var html bytes.Buffer
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Receipt - %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #0b0e14; color: #e5e5e0; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #151a23; padding: 24px; border-radius: 8px;">
    <tr>
      <td style="border-bottom: 1px solid #2a3040; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 26px; font-weight: bold; color: #ffffff;">COCMARKET</h1>
        <p style="margin: 4px 0; font-size: 14px; color: #79819a;">Purchase receipt</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px;">Hi %s,</p>
        <p style="margin: 8px 0 0; font-size: 14px;">Thanks for your purchase! Your order is confirmed.</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 8px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="padding: 6px 0; font-size: 14px; color: #79819a;">Item</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 6px 0; font-size: 14px; color: #79819a;">Game</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 6px 0; font-size: 14px; color: #79819a;">Seller</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 6px 0; font-size: 14px; color: #79819a;">Date</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="padding: 10px 0; font-size: 16px; font-weight: 600; border-top: 1px solid #2a3040;">Total</td>
            <td style="padding: 10px 0; font-size: 16px; font-weight: 600; text-align: right; border-top: 1px solid #2a3040;">%.2f %s</td>
          </tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding-top: 16px; font-size: 12px; color: #79819a;">
        The seller will deliver your item shortly. Your PDF receipt is attached.
      </td>
    </tr>
  </table>
</body>
</html>
`,
		data.ListingTitle,
		data.BuyerName,
		data.ListingTitle,
		data.GameName,
		data.SellerName,
		data.PurchaseDate,
		data.Amount,
		data.Currency,
	))

	// Encode PDF to base64 for the attachment
	pdfBase64 := base64.StdEncoding.EncodeToString(data.PDFContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.BuyerEmail,
		"subject": fmt.Sprintf("Your CocMarket receipt - %s", data.ListingTitle),
		"html":    html.String(),
		"attachments": []map[string]interface{}{
			{
				"filename": "receipt.pdf",
				"content":  pdfBase64,
			},
		},
	}

	return r.send(payload)
}
