// Package http implements the inbound HTTP adapter. The Server translates
// API requests into application queries and commands, and their results
// back into API responses.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"fraktguiden/internal/core/application/usecases/commands"
	"fraktguiden/internal/core/application/usecases/queries"
	"fraktguiden/internal/core/domain/model/cart"
	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/generated/servers"
	"fraktguiden/internal/pkg/errs"
)

// defaultQuoteListLimit applies when the listing request names no limit.
const defaultQuoteListLimit = 50

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	saveQuoteHandler commands.SaveQuoteCommandHandler

	// Query handlers
	calculateRatesHandler  queries.CalculateRatesQueryHandler
	getQuoteHandler        queries.GetQuoteQueryHandler
	getRecentQuotesHandler queries.GetRecentQuotesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveQuoteHandler commands.SaveQuoteCommandHandler,
	calculateRatesHandler queries.CalculateRatesQueryHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	getRecentQuotesHandler queries.GetRecentQuotesQueryHandler,
) *Server {
	return &Server{
		saveQuoteHandler:       saveQuoteHandler,
		calculateRatesHandler:  calculateRatesHandler,
		getQuoteHandler:        getQuoteHandler,
		getRecentQuotesHandler: getRecentQuotesHandler,
	}
}

// CalculateRates handles POST /api/v1/rates - calculates shipping rates
// for a cart bound for a destination.
func (s *Server) CalculateRates(ctx echo.Context) error {
	var request servers.CalculateRatesRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	c, err := cartFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart data: " + err.Error(),
		})
	}

	shipTo := rates.Destination{
		Postcode: stringValue(request.Postcode),
		Country:  request.Country,
	}

	query, err := queries.NewCalculateRatesQuery(c, shipTo)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rate request: " + err.Error(),
		})
	}

	rows, err := s.calculateRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to calculate rates",
		})
	}

	response := make([]servers.Rate, len(rows))
	for i, row := range rows {
		response[i] = servers.Rate{
			Id:    row.ID,
			Label: row.Label,
			Cost:  row.Cost.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateQuote handles POST /api/v1/quotes - records the rate a shopper
// selected at checkout.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var newQuote servers.NewQuote
	if err := ctx.Bind(&newQuote); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cost, err := decimal.NewFromString(newQuote.Cost)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cost: " + err.Error(),
		})
	}

	quoteID := kernel.NewUUID()
	cmd, err := commands.NewSaveQuoteCommand(
		quoteID,
		rates.Destination{
			Postcode: stringValue(newQuote.Postcode),
			Country:  newQuote.Country,
		},
		newQuote.PackageCount,
		newQuote.TotalWeight,
		newQuote.RateId,
		cost,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote data: " + err.Error(),
		})
	}

	if handleErr := s.saveQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to record quote",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.QuoteCreated{
		Id: quoteID.Bytes(),
	})
}

// GetQuote handles GET /api/v1/quotes/{quoteId} - retrieves one recorded quote.
func (s *Server) GetQuote(ctx echo.Context, quoteId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(quoteId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote id",
		})
	}

	query, err := queries.NewGetQuoteQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote id: " + err.Error(),
		})
	}

	q, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Quote not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve quote",
		})
	}

	return ctx.JSON(http.StatusOK, quoteResponse(q))
}

// GetQuotes handles GET /api/v1/quotes - lists recently recorded quotes.
func (s *Server) GetQuotes(ctx echo.Context, params servers.GetQuotesParams) error {
	limit := defaultQuoteListLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetRecentQuotesQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	quotes, err := s.getRecentQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve quotes",
		})
	}

	response := make([]servers.Quote, len(quotes))
	for i, q := range quotes {
		response[i] = quoteResponse(q)
	}

	return ctx.JSON(http.StatusOK, response)
}

func cartFromRequest(request servers.CalculateRatesRequest) (cart.Cart, error) {
	items := make([]cart.LineItem, 0, len(request.Items))
	for _, item := range request.Items {
		unitPrice, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return cart.Cart{}, err
		}

		lineItem, err := cart.NewLineItem(
			item.ProductRef,
			item.Quantity,
			floatValue(item.Length),
			floatValue(item.Width),
			floatValue(item.Height),
			floatValue(item.Weight),
			item.RequiresShipping,
			unitPrice,
		)
		if err != nil {
			return cart.Cart{}, err
		}

		items = append(items, lineItem)
	}

	return cart.NewCart(items)
}

func quoteResponse(q queries.GetQuoteQueryResponse) servers.Quote {
	var postcode *string
	if q.Postcode != "" {
		postcode = &q.Postcode
	}

	return servers.Quote{
		Id:           q.ID.Bytes(),
		Postcode:     postcode,
		Country:      q.Country,
		PackageCount: q.PackageCount,
		TotalWeight:  q.TotalWeight,
		RateId:       q.RateID,
		Cost:         q.Cost.String(),
		CreatedAt:    q.CreatedAt,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
