package queries

import (
	"errors"

	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

var (
	ErrGetRecentQuotesQueryIsNotConstructed = errors.New(
		"GetRecentQuotesQuery must be created via NewGetRecentQuotesQuery constructor",
	)
)

// maxQuotePageSize caps how many quotes one listing returns.
const maxQuotePageSize = 500

// GetRecentQuotesQuery lists the most recently recorded quotes, newest
// first. Used for monitoring which rates shoppers actually select.
type GetRecentQuotesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentQuotesQuery creates a query listing the newest quotes.
// The limit must be between 1 and 500.
func NewGetRecentQuotesQuery(limit int) (GetRecentQuotesQuery, error) {
	query := GetRecentQuotesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetRecentQuotesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentQuotesQueryIsNotConstructed if validation fails.
func (q GetRecentQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentQuotesQueryIsNotConstructed)
}

// Limit returns how many quotes to list at most.
func (q GetRecentQuotesQuery) Limit() int {
	return q.limit
}

func (q *GetRecentQuotesQuery) setLimit(limit int) error {
	if limit < 1 || limit > maxQuotePageSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxQuotePageSize)
	}

	q.limit = limit
	return nil
}
