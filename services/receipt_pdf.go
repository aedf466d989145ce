package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Grimm02938/COCMarket/models"
)

// GeneratePurchaseReceiptPDF creates the receipt PDF handed to buyers after
// a completed checkout
func GeneratePurchaseReceiptPDF(purchase *models.Purchase, listing *models.Listing, buyerName, buyerEmail, sellerName string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Receipt Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("RECEIPT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Marketplace Info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("COCMARKET", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("support@cocmarket.gg", props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
	})

	m.Line(4)

	// Purchase metadata
	m.Row(8, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Receipt: %s", purchase.ID.String()), props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", purchase.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  10,
				Align: consts.Right,
				Color: mediumGray,
			})
		})
	})

	// Buyer
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Billed to: %s (%s)", buyerName, buyerEmail), props.Text{
				Size:  10,
				Color: darkGray,
			})
		})
	})

	m.Line(4)

	// Item table header
	m.Row(8, func() {
		m.Col(6, func() {
			m.Text("Item", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Seller", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Amount", props.Text{Size: 10, Style: consts.Bold, Align: consts.Right, Color: darkGray})
		})
	})

	// Single line item: marketplace purchases are one listing each
	m.Row(8, func() {
		m.Col(6, func() {
			m.Text(listing.Title, props.Text{Size: 10, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text(sellerName, props.Text{Size: 10, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text(fmt.Sprintf("%.2f %s", purchase.Amount, purchase.Currency), props.Text{
				Size:  10,
				Align: consts.Right,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s - %s", listing.GameName, listing.Category), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Line(4)

	// Total
	m.Row(10, func() {
		m.Col(9, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Align: consts.Right, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text(fmt.Sprintf("%.2f %s", purchase.Amount, purchase.Currency), props.Text{
				Size:  12,
				Style: consts.Bold,
				Align: consts.Right,
				Color: darkGray,
			})
		})
	})

	// Footer
	m.Row(14, func() {
		m.Col(12, func() {
			m.Text("Delivery is handled directly by the seller. Contact support if the item does not arrive.", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	buffer, err := m.Output()
	if err != nil {
		log.Printf("[receipt.pdf] failed to generate PDF: %v", err)
		return &bytes.Buffer{}
	}

	return &buffer
}
