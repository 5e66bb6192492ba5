package rates

import "github.com/shopspring/decimal"

// Offer is one shipping product as returned by the carrier's rate API,
// reduced to the fields the assembler needs: the product identifier, the
// display texts under both naming policies, the help text, and the package
// price with and without VAT.
type Offer struct {
	ProductID   string
	DisplayName string
	ProductName string
	Description string
	PriceExVAT  decimal.Decimal
	PriceIncVAT decimal.Decimal
}

// Destination is where the shipment is going: the shopper's postcode and
// country as captured at checkout.
type Destination struct {
	Postcode string
	Country  string
}
