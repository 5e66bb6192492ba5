package ports

import (
	"context"
	"time"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for recorded rate quotes.
type QuoteRepository interface {
	// Add persists a new quote. The quote must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, q *quote.Quote) error

	// Get retrieves a quote by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// DeleteOlderThan removes quotes recorded before the cutoff and
	// returns how many were deleted. Used by the retention job.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
