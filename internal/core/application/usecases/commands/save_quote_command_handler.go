package commands

import (
	"context"

	"fraktguiden/internal/core/domain/model/quote"
)

// SaveQuoteCommandHandler persists selected rate quotes.
// Uses a transaction to ensure the quote is fully recorded or not at all.
type SaveQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewSaveQuoteCommandHandler creates a handler for quote recording.
// Requires a QuoteUoWFactory for transactional persistence.
func NewSaveQuoteCommandHandler(uowFactory QuoteUoWFactory) SaveQuoteCommandHandler {
	return SaveQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save quote command.
// Builds the quote aggregate from the command and persists it within a
// transaction, rolling back on any error.
func (h *SaveQuoteCommandHandler) Handle(ctx context.Context, cmd SaveQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	q, err := quote.NewQuote(
		cmd.QuoteID(),
		cmd.Destination(),
		cmd.PackageCount(),
		cmd.TotalWeight(),
		cmd.RateID(),
		cmd.Cost(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.QuoteRepository().Add(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
