// Package queries contains read operations in the CQRS architecture.
// The rate calculation is modeled as a query: it derives shipping rates
// from the cart and configuration without modifying system state.
package queries

import (
	"errors"

	"fraktguiden/internal/core/domain/model/cart"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

var (
	ErrCalculateRatesQueryIsNotConstructed = errors.New(
		"CalculateRatesQuery must be created via NewCalculateRatesQuery constructor",
	)
)

// CalculateRatesQuery requests shipping rates for a cart bound for a
// destination. One query covers one checkout calculation.
type CalculateRatesQuery struct { //nolint:recvcheck //using for validation
	cart   cart.Cart
	shipTo rates.Destination

	guard guard.ConstructorGuard
}

// NewCalculateRatesQuery creates a rate calculation query.
// Validates that the cart was properly constructed and the destination
// names a country.
func NewCalculateRatesQuery(c cart.Cart, shipTo rates.Destination) (CalculateRatesQuery, error) {
	query := CalculateRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCart(c),
		query.setShipTo(shipTo),
	); err != nil {
		return CalculateRatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateRatesQueryIsNotConstructed if validation fails.
func (q CalculateRatesQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRatesQueryIsNotConstructed)
}

// Cart returns the cart the rates are calculated for.
func (q CalculateRatesQuery) Cart() cart.Cart {
	return q.cart
}

// ShipTo returns the shipment destination.
func (q CalculateRatesQuery) ShipTo() rates.Destination {
	return q.shipTo
}

func (q *CalculateRatesQuery) setCart(c cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	q.cart = c
	return nil
}

func (q *CalculateRatesQuery) setShipTo(shipTo rates.Destination) error {
	if shipTo.Country == "" {
		return errs.NewValueIsRequiredError("destination country")
	}

	q.shipTo = shipTo
	return nil
}
