// Package ports defines the outbound contracts of the rate calculation core:
// the carrier rate API, quote persistence and the unit of work. Adapters
// implement these interfaces, enabling dependency inversion and deterministic
// unit tests without a live carrier or database.
package ports

import (
	"context"
	"errors"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/model/shipment"
)

var (
	// ErrCarrierUnavailable indicates a non-200 response or a transport
	// failure from the carrier's rate API. The carrier is rate-sensitive,
	// so implementations must not retry; the calculation simply offers no
	// rates.
	ErrCarrierUnavailable = errors.New("carrier rate service unavailable")

	// ErrEmptyCarrierResponse indicates the carrier answered successfully
	// but returned no usable product data.
	ErrEmptyCarrierResponse = errors.New("carrier returned no usable products")
)

// RateService is the carrier's rate API. Given the settings snapshot, the
// shipment destination and the packed manifest, it returns the carrier's
// service offers in their original order.
//
// The call blocks for at most the implementation's configured timeout and is
// the single suspension point of a rate calculation.
type RateService interface {
	FetchOffers(
		ctx context.Context,
		s settings.Settings,
		shipTo rates.Destination,
		manifest shipment.Manifest,
	) ([]rates.Offer, error)
}
