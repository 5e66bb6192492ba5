package services

import (
	"slices"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
)

// RateAssembler turns the carrier's service offers into the rate rows shown
// to the shopper, applying the service allow-list, the VAT mode, the
// handling fee and the display-name policy from the settings snapshot.
type RateAssembler struct{}

// NewRateAssembler creates a new RateAssembler instance.
func NewRateAssembler() RateAssembler {
	return RateAssembler{}
}

// Assemble builds one rate row per admitted offer, preserving the carrier's
// product order.
//
// Offers outside a non-empty allow-list are skipped. The cost is the
// VAT-mode-selected price plus the handling fee. The label follows the
// naming policy, optionally suffixed with the carrier's description text.
// An empty offer list yields no rows, which is distinct from a zero-cost
// rate.
func (a RateAssembler) Assemble(offers []rates.Offer, s settings.Settings) ([]rates.Row, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	allowed := s.Services()

	var rows []rates.Row
	for _, offer := range offers {
		if len(allowed) > 0 && !slices.Contains(allowed, offer.ProductID) {
			continue
		}

		price := offer.PriceIncVAT
		if s.VATMode() == settings.ExcludeVAT {
			price = offer.PriceExVAT
		}

		label := offer.DisplayName
		if s.NamePolicy() == settings.UseProductName {
			label = offer.ProductName
		}
		if s.DisplayDescription() {
			label += ": " + offer.Description
		}

		rows = append(rows, rates.Row{
			ID:    rates.NewRowID(offer.ProductID),
			Cost:  price.Add(s.HandlingFee()),
			Label: label,
		})
	}

	return rows, nil
}
