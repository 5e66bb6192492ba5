package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/pkg/errs"
)

// GetQuoteQueryHandler retrieves recorded quotes straight from the
// database. Uses direct SQL for the read side of the CQRS split.
type GetQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetQuoteQueryHandler creates a handler for quote retrieval queries.
func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db}
}

// Handle executes the query and returns the quote read model.
// Returns an object-not-found error when no quote matches the ID.
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	var response GetQuoteQueryResponse
	var id uuid.UUID
	var cost decimal.Decimal
	var createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			postcode,
			country,
			package_count,
			total_weight,
			rate_id,
			cost,
			created_at
		FROM quotes
		WHERE id = ?
	`, query.QuoteID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Postcode,
		&response.Country,
		&response.PackageCount,
		&response.TotalWeight,
		&response.RateID,
		&cost,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetQuoteQueryResponse{}, errs.NewObjectNotFoundError("quote", query.QuoteID().String())
		}
		return GetQuoteQueryResponse{}, err
	}

	quoteID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetQuoteQueryResponse{}, idErr
	}

	response.ID = quoteID
	response.Cost = cost
	response.CreatedAt = createdAt

	return response, nil
}
