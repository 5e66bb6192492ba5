package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fraktguiden/internal/adapters/out/postgres/quoterepo"
	"fraktguiden/internal/core/application/usecases/queries"
	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/quote"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QuoteQueryHandlersTestSuite verifies the quote read-side handlers
// against a real PostgreSQL database.
type QuoteQueryHandlersTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	getHandler    queries.GetQuoteQueryHandler
	recentHandler queries.GetRecentQuotesQueryHandler
	repo          *quoterepo.GormQuoteRepository
}

func (suite *QuoteQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&quoterepo.QuoteDTO{})
	suite.Require().NoError(err)

	suite.getHandler = queries.NewGetQuoteQueryHandler(db)
	suite.recentHandler = queries.NewGetRecentQuotesQueryHandler(db)
	suite.repo = quoterepo.NewGormQuoteRepository(db, noopTracker{})
}

func (suite *QuoteQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE quotes").Error
	suite.Require().NoError(err)
}

func (suite *QuoteQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QuoteQueryHandlersTestSuite) addQuote(rateID, cost string) *quote.Quote {
	q, err := quote.NewQuote(
		kernel.NewUUID(),
		rates.Destination{Postcode: "5006", Country: "NO"},
		1,
		4.2,
		rateID,
		decimal.RequireFromString(cost),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), q))

	return q
}

func (suite *QuoteQueryHandlersTestSuite) TestGetQuote() {
	ctx := context.Background()
	q := suite.addQuote("bring_fraktguiden:servicepakke", "165.00")

	query, err := queries.NewGetQuoteQuery(q.ID())
	suite.Require().NoError(err)

	response, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(response.ID.IsEqual(q.ID()))
	suite.Equal("5006", response.Postcode)
	suite.Equal("NO", response.Country)
	suite.Equal(1, response.PackageCount)
	suite.InDelta(4.2, response.TotalWeight, 0.001)
	suite.Equal("bring_fraktguiden:servicepakke", response.RateID)
	suite.True(response.Cost.Equal(decimal.RequireFromString("165.00")))
}

func (suite *QuoteQueryHandlersTestSuite) TestGetQuoteNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetQuoteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QuoteQueryHandlersTestSuite) TestGetRecentQuotesNewestFirst() {
	ctx := context.Background()
	first := suite.addQuote("bring_fraktguiden:servicepakke", "165.00")
	second := suite.addQuote("bring_fraktguiden:ekspress09", "720.00")

	// Space the quotes apart so the ordering is unambiguous.
	err := suite.db.Exec(
		"UPDATE quotes SET created_at = ? WHERE id = ?",
		time.Now().UTC().Add(-time.Hour), first.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetRecentQuotesQuery(10)
	suite.Require().NoError(err)

	quotes, err := suite.recentHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(quotes, 2)
	suite.True(quotes[0].ID.IsEqual(second.ID()))
	suite.True(quotes[1].ID.IsEqual(first.ID()))
}

func (suite *QuoteQueryHandlersTestSuite) TestGetRecentQuotesRespectsLimit() {
	ctx := context.Background()
	suite.addQuote("bring_fraktguiden:servicepakke", "165.00")
	suite.addQuote("bring_fraktguiden:ekspress09", "720.00")
	suite.addQuote("bring_fraktguiden:pa_doren", "310.00")

	query, err := queries.NewGetRecentQuotesQuery(2)
	suite.Require().NoError(err)

	quotes, err := suite.recentHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(quotes, 2)
}

func TestQuoteQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueryHandlersTestSuite))
}
