package queries

import (
	"context"
	"log/slog"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/model/shipment"
	"fraktguiden/internal/core/domain/services"
	"fraktguiden/internal/core/ports"
	"fraktguiden/internal/pkg/errs"
)

// CalculateRatesQueryHandler runs the full rate calculation pipeline:
// extract boxes from the cart, consolidate them into packages, fetch
// carrier offers, assemble rate rows and apply the configured overrides.
//
// The handler never surfaces pipeline failures to the shopper: an
// oversized item, an unreachable carrier or an empty response all result
// in no rates being offered, which the checkout treats as "this shipping
// method has nothing for you". Failures are logged instead.
type CalculateRatesQueryHandler struct {
	settings    settings.Settings
	limits      shipment.CarrierLimits
	rateService ports.RateService
	logger      *slog.Logger

	extractor services.BoxExtractor
	packer    services.Packer
	assembler services.RateAssembler
	overrides services.PriceOverrides
}

// NewCalculateRatesQueryHandler creates the rate calculation handler.
// Requires a validated settings snapshot, the carrier limits to pack
// against, the carrier rate service and a logger.
func NewCalculateRatesQueryHandler(
	s settings.Settings,
	limits shipment.CarrierLimits,
	rateService ports.RateService,
	logger *slog.Logger,
) (CalculateRatesQueryHandler, error) {
	if err := s.Validate(); err != nil {
		return CalculateRatesQueryHandler{}, err
	}
	if err := limits.Validate(); err != nil {
		return CalculateRatesQueryHandler{}, err
	}
	if rateService == nil {
		return CalculateRatesQueryHandler{}, errs.NewValueIsRequiredError("rateService")
	}
	if logger == nil {
		return CalculateRatesQueryHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return CalculateRatesQueryHandler{
		settings:    s,
		limits:      limits,
		rateService: rateService,
		logger:      logger,
		extractor:   services.NewBoxExtractor(),
		packer:      services.NewPacker(),
		assembler:   services.NewRateAssembler(),
		overrides:   services.NewPriceOverrides(),
	}, nil
}

// Handle executes the rate calculation.
// Returns the assembled rate rows in carrier order, or an empty result
// when the method is disabled, the cart has nothing to ship, or any step
// of the pipeline fails.
func (h *CalculateRatesQueryHandler) Handle(
	ctx context.Context,
	query CalculateRatesQuery,
) ([]rates.Row, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !h.settings.Enabled() {
		return nil, nil
	}

	c := query.Cart()
	if c.ItemCount() > h.settings.MaxProducts() {
		return h.flatRateFallback(ctx, c.ItemCount()), nil
	}

	boxes, err := h.extractor.Extract(c, h.limits)
	if err != nil {
		h.logger.WarnContext(ctx, "box extraction failed, offering no rates", "error", err)
		return nil, nil
	}
	if len(boxes) == 0 {
		return nil, nil
	}

	manifest, err := h.packer.Pack(boxes, h.limits, true)
	if err != nil {
		h.logger.WarnContext(ctx, "packing failed, offering no rates", "error", err)
		return nil, nil
	}

	offers, err := h.rateService.FetchOffers(ctx, h.settings, query.ShipTo(), manifest)
	if err != nil {
		h.logger.WarnContext(ctx, "carrier rate fetch failed, offering no rates", "error", err)
		return nil, nil
	}

	rows, err := h.assembler.Assemble(offers, h.settings)
	if err != nil {
		return nil, err
	}

	h.overrides.Apply(rows, h.settings.Overrides(), c.Total())

	if h.settings.Debug() {
		h.logger.DebugContext(ctx, "rates calculated",
			"packages", len(manifest),
			"offers", len(offers),
			"rates", len(rows),
		)
	}

	return rows, nil
}

// flatRateFallback handles carts above the configured max product count.
// When a flat rate is configured it is offered as the only rate; otherwise
// the method offers nothing.
func (h *CalculateRatesQueryHandler) flatRateFallback(ctx context.Context, itemCount int) []rates.Row {
	flat, ok := h.settings.FlatRate()
	if !ok {
		h.logger.WarnContext(ctx, "cart exceeds max products and no flat rate is configured",
			"items", itemCount,
			"maxProducts", h.settings.MaxProducts(),
		)
		return nil
	}

	return []rates.Row{{
		ID:    rates.FlatRateRowID,
		Cost:  flat,
		Label: h.settings.Title() + " flat rate",
	}}
}
