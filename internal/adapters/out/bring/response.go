package bring

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"fraktguiden/internal/core/domain/model/rates"
)

// rateResponse mirrors the shipping guide response document. Only the
// fields the rate assembler consumes are mapped.
type rateResponse struct {
	Product productList `json:"Product"`
}

// productList absorbs the carrier's habit of returning a bare object
// instead of a one-element array when exactly one product matches.
type productList []product

func (l *productList) UnmarshalJSON(data []byte) error {
	var many []product
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one product
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = productList{one}

	return nil
}

type product struct {
	ProductID      string         `json:"ProductId"`
	GuiInformation guiInformation `json:"GuiInformation"`
	Price          productPrice   `json:"Price"`
}

type guiInformation struct {
	DisplayName     string `json:"DisplayName"`
	ProductName     string `json:"ProductName"`
	DescriptionText string `json:"DescriptionText"`
}

type productPrice struct {
	PackagePriceWithoutAdditionalServices packagePrice `json:"PackagePriceWithoutAdditionalServices"`
}

type packagePrice struct {
	AmountWithVAT    decimal.Decimal `json:"AmountWithVAT"`
	AmountWithoutVAT decimal.Decimal `json:"AmountWithoutVAT"`
}

// decodeOffers parses a shipping guide response body into domain offers,
// preserving the carrier's product order.
func decodeOffers(body []byte) ([]rates.Offer, error) {
	var response rateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	offers := make([]rates.Offer, 0, len(response.Product))
	for _, p := range response.Product {
		offers = append(offers, rates.Offer{
			ProductID:   p.ProductID,
			DisplayName: p.GuiInformation.DisplayName,
			ProductName: p.GuiInformation.ProductName,
			Description: p.GuiInformation.DescriptionText,
			PriceExVAT:  p.Price.PackagePriceWithoutAdditionalServices.AmountWithoutVAT,
			PriceIncVAT: p.Price.PackagePriceWithoutAdditionalServices.AmountWithVAT,
		})
	}

	return offers, nil
}
