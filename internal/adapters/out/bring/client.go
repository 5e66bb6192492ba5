package bring

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/model/shipment"
	"fraktguiden/internal/core/ports"
	"fraktguiden/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.RateService = &Client{}

// Client fetches shipping rates from the Bring shipping guide API.
// A single carrier request covers the whole manifest, there is no retry:
// on any failure the caller falls back to showing no rates.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

// NewClient creates a rate service client with a bounded request timeout.
func NewClient(logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   Endpoint,
		logger:     logger,
	}, nil
}

// SetEndpoint overrides the rate endpoint. Used to point the client at a
// test server.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// FetchOffers builds the rate request for the given shipment and performs
// the carrier call. A non-2xx status or transport error yields
// ports.ErrCarrierUnavailable; a successful response without any product
// yields ports.ErrEmptyCarrierResponse.
func (c *Client) FetchOffers(
	ctx context.Context,
	s settings.Settings,
	shipTo rates.Destination,
	m shipment.Manifest,
) ([]rates.Offer, error) {
	request, err := BuildRateRequest(s, shipTo, m)
	if err != nil {
		return nil, err
	}
	request.Endpoint = c.endpoint

	if s.Debug() {
		c.logger.DebugContext(ctx, "requesting carrier rates", "url", request.URL())
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, request.URL(), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCarrierUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ports.ErrCarrierUnavailable, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCarrierUnavailable, err)
	}

	offers, err := decodeOffers(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrEmptyCarrierResponse, err)
	}
	if len(offers) == 0 {
		return nil, ports.ErrEmptyCarrierResponse
	}

	return offers, nil
}
