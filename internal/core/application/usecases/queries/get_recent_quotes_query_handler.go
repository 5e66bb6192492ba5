package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fraktguiden/internal/core/domain/model/kernel"
)

// GetRecentQuotesQueryHandler lists recorded quotes from the database.
// Uses direct SQL for the read side of the CQRS split.
type GetRecentQuotesQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentQuotesQueryHandler creates a handler for quote listing
// queries.
func NewGetRecentQuotesQueryHandler(db *gorm.DB) GetRecentQuotesQueryHandler {
	return GetRecentQuotesQueryHandler{db: db}
}

// Handle executes the query and returns quote read models, newest first.
func (h GetRecentQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetRecentQuotesQuery,
) ([]GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotes := make([]GetQuoteQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY created_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q GetQuoteQueryResponse
		var id uuid.UUID
		var cost decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&q.Postcode,
			&q.Country,
			&q.PackageCount,
			&q.TotalWeight,
			&q.RateID,
			&cost,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		q.ID = quoteID
		q.Cost = cost
		q.CreatedAt = createdAt
		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
