package commands

import (
	"context"
	"time"
)

// PruneQuotesCommandHandler deletes recorded quotes past their retention.
type PruneQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewPruneQuotesCommandHandler creates a handler for quote pruning.
func NewPruneQuotesCommandHandler(uowFactory QuoteUoWFactory) PruneQuotesCommandHandler {
	return PruneQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the prune command and reports how many quotes were
// removed. The cutoff is computed from the command's retention at the time
// of execution.
func (h *PruneQuotesCommandHandler) Handle(ctx context.Context, cmd PruneQuotesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	deleted, err := uow.QuoteRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
