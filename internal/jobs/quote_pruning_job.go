package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fraktguiden/internal/core/application/usecases/commands"
)

// QuotePruningJob removes recorded quotes past their retention window.
// Runs hourly; the quotes table only serves recent monitoring, so anything
// older than the retention has no readers.
type QuotePruningJob struct {
	handler   commands.PruneQuotesCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewQuotePruningJob creates a new job for pruning stale quotes.
// Uses PruneQuotesCommandHandler to delete quotes older than the retention.
func NewQuotePruningJob(
	handler commands.PruneQuotesCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *QuotePruningJob {
	return &QuotePruningJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "quote_pruning_job"),
	}
}

// Start begins the quote pruning job to run at the top of every hour.
func (j *QuotePruningJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPruneQuotesCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote pruning job misconfigured", "error", cmdErr)
			return
		}

		deleted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Quote pruning job failed", "error", handleErr)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Pruned stale quotes", "deleted", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote pruning job started (running hourly)")
	return nil
}

// Stop stops the quote pruning job.
func (j *QuotePruningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote pruning job stopped")
}
