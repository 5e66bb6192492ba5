package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/pkg/guard"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery retrieves one recorded rate quote by its identifier.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a query to retrieve a recorded quote.
// Validates that the quote ID is a proper UUID.
func NewGetQuoteQuery(quoteID kernel.UUID) (GetQuoteQuery, error) {
	query := GetQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setQuoteID(quoteID); err != nil {
		return GetQuoteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQuoteQueryIsNotConstructed if validation fails.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// QuoteID returns the identifier of the quote to retrieve.
func (q GetQuoteQuery) QuoteID() kernel.UUID {
	return q.quoteID
}

func (q *GetQuoteQuery) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	q.quoteID = quoteID
	return nil
}

// GetQuoteQueryResponse is the read model for one recorded quote.
type GetQuoteQueryResponse struct {
	ID           kernel.UUID
	Postcode     string
	Country      string
	PackageCount int
	TotalWeight  float64
	RateID       string
	Cost         decimal.Decimal
	CreatedAt    time.Time
}
