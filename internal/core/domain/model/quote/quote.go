// Package quote provides the persisted record of a completed rate
// calculation: which rate the shopper selected for which packed shipment.
// This is the durable counterpart of what the original system wrote into
// order metadata at checkout. Quotes are retained for the booking and
// admin rate-lookup paths and pruned after a configured retention.
package quote

import (
	"errors"
	"time"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrQuoteIsNotConstructed indicates that a Quote was not created through
// one of the constructor functions.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

// Quote is the aggregate root recording one selected shipping rate together
// with a summary of the packed shipment it was quoted for.
type Quote struct {
	id           kernel.UUID
	destination  rates.Destination
	packageCount int
	totalWeight  float64
	rateID       string
	cost         decimal.Decimal
	createdAt    time.Time

	isConstructed bool
}

// NewQuote creates a quote for a freshly selected rate.
func NewQuote(
	id kernel.UUID,
	destination rates.Destination,
	packageCount int,
	totalWeight float64,
	rateID string,
	cost decimal.Decimal,
) (*Quote, error) {
	return newQuote(id, destination, packageCount, totalWeight, rateID, cost, time.Now().UTC())
}

// RestoreQuote reconstructs a quote from persistent storage, preserving its
// original creation time.
func RestoreQuote(
	id kernel.UUID,
	destination rates.Destination,
	packageCount int,
	totalWeight float64,
	rateID string,
	cost decimal.Decimal,
	createdAt time.Time,
) (*Quote, error) {
	return newQuote(id, destination, packageCount, totalWeight, rateID, cost, createdAt)
}

func newQuote(
	id kernel.UUID,
	destination rates.Destination,
	packageCount int,
	totalWeight float64,
	rateID string,
	cost decimal.Decimal,
	createdAt time.Time,
) (*Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if packageCount <= 0 {
		return nil, errs.NewValueIsInvalidError("packageCount")
	}
	if totalWeight < 0 {
		return nil, errs.NewValueIsInvalidError("totalWeight")
	}
	if rateID == "" {
		return nil, errs.NewValueIsRequiredError("rateID")
	}
	if cost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("cost")
	}

	return &Quote{
		id:            id,
		destination:   destination,
		packageCount:  packageCount,
		totalWeight:   totalWeight,
		rateID:        rateID,
		cost:          cost,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the quote was created through a constructor.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the quote.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// Destination returns where the quoted shipment is going.
func (q *Quote) Destination() rates.Destination {
	return q.destination
}

// PackageCount returns how many packages the cart was consolidated into.
func (q *Quote) PackageCount() int {
	return q.packageCount
}

// TotalWeight returns the packed shipment weight in kg.
func (q *Quote) TotalWeight() float64 {
	return q.totalWeight
}

// RateID returns the selected shipping-method identifier.
func (q *Quote) RateID() string {
	return q.rateID
}

// Cost returns the selected rate's cost as offered to the shopper.
func (q *Quote) Cost() decimal.Decimal {
	return q.cost
}

// CreatedAt returns when the quote was recorded, in UTC.
func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}
