package services

import (
	"fraktguiden/internal/core/domain/model/rates"

	"github.com/shopspring/decimal"
)

// PriceOverrides applies the pro-tier per-service overrides to assembled
// rate rows: a fixed price replacing the carrier's quote, and free shipping
// once the cart total reaches a threshold.
type PriceOverrides struct{}

// NewPriceOverrides creates a new PriceOverrides instance.
func NewPriceOverrides() PriceOverrides {
	return PriceOverrides{}
}

// Apply mutates the rows in place against the override table and the cart
// total.
//
// Only rows whose identifier belongs to this shipping method are touched;
// their service key is the upper-cased id remainder. A configured fixed
// price replaces the cost first; free shipping runs after it and zeroes the
// cost when the threshold is absent or the cart total reaches it, so free
// shipping wins when both trigger.
func (o PriceOverrides) Apply(
	rows []rates.Row,
	overrides map[string]rates.Override,
	cartTotal decimal.Decimal,
) {
	for i := range rows {
		key, ok := rates.ServiceKeyFromRowID(rows[i].ID)
		if !ok {
			continue
		}

		override, ok := overrides[key]
		if !ok {
			continue
		}

		if override.FixedPrice != nil {
			rows[i].Cost = *override.FixedPrice
		}

		if override.FreeShipping &&
			(override.FreeShippingThreshold == nil || cartTotal.GreaterThanOrEqual(*override.FreeShippingThreshold)) {
			rows[i].Cost = decimal.Zero
		}
	}
}
