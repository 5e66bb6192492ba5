package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraktguiden/internal/core/application/usecases/queries"
	"fraktguiden/internal/core/domain/model/kernel"
)

func TestNewGetQuoteQuery(t *testing.T) {
	t.Run("should create valid query with valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetQuoteQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.QuoteID().IsEqual(id))
	})

	t.Run("should fail with unconstructed UUID", func(t *testing.T) {
		var id kernel.UUID

		_, err := queries.NewGetQuoteQuery(id)

		require.Error(t, err)
	})
}

func TestGetQuoteQuery_Validate(t *testing.T) {
	t.Run("should fail for zero value query", func(t *testing.T) {
		var query queries.GetQuoteQuery

		err := query.Validate()

		assert.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
	})
}

func TestNewGetRecentQuotesQuery(t *testing.T) {
	t.Run("should create valid query within the limit range", func(t *testing.T) {
		query, err := queries.NewGetRecentQuotesQuery(50)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 50, query.Limit())
	})

	t.Run("should fail with non-positive limit", func(t *testing.T) {
		_, err := queries.NewGetRecentQuotesQuery(0)

		require.Error(t, err)
	})

	t.Run("should fail with limit above the page cap", func(t *testing.T) {
		_, err := queries.NewGetRecentQuotesQuery(501)

		require.Error(t, err)
	})
}
