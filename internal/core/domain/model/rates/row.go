package rates

import "github.com/shopspring/decimal"

// Row is one shipping option offered to the shopper: the shipping-method
// identifier (method id plus slugified product id), the computed cost and the
// display label. The price override engine mutates rows in place; nothing
// else does.
type Row struct {
	ID    string
	Cost  decimal.Decimal
	Label string
}

// Override is the pro-tier per-service price override record, keyed by
// upper-cased service id in the settings.
//
// FixedPrice, when present, replaces the carrier's price. FreeShipping, when
// enabled, zeroes the cost once the cart total reaches FreeShippingThreshold;
// an absent threshold means the service is always free. Free shipping is
// applied after the fixed price, so it wins when both trigger.
type Override struct {
	FixedPrice            *decimal.Decimal
	FreeShipping          bool
	FreeShippingThreshold *decimal.Decimal
}
