package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fraktguiden/internal/core/application/usecases/commands"
)

func TestPruneQuotesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPruneQuotesCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("DeleteOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPruneQuotesCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(3), deleted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPruneQuotesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PruneQuotesCommand{} // not constructed properly
	factory := new(MockQuoteUoWFactory)
	h := commands.NewPruneQuotesCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPruneQuotesCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPruneQuotesCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("DeleteOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPruneQuotesCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
