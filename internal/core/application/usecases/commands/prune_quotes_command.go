package commands

import (
	"errors"
	"time"

	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

var (
	ErrPruneQuotesCommandIsNotConstructed = errors.New(
		"PruneQuotesCommand must be created via NewPruneQuotesCommand constructor",
	)
)

// PruneQuotesCommand removes recorded quotes older than a retention window.
// Issued periodically by the retention job.
type PruneQuotesCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPruneQuotesCommand creates a command to prune quotes older than the
// given retention period. The retention must be positive.
func NewPruneQuotesCommand(retention time.Duration) (PruneQuotesCommand, error) {
	command := PruneQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRetention(retention); err != nil {
		return PruneQuotesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPruneQuotesCommandIsNotConstructed if validation fails.
func (c PruneQuotesCommand) Validate() error {
	return c.guard.Validate(ErrPruneQuotesCommandIsNotConstructed)
}

// Retention returns how long quotes are kept before pruning.
func (c PruneQuotesCommand) Retention() time.Duration {
	return c.retention
}

func (c *PruneQuotesCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidError("retention")
	}

	c.retention = retention
	return nil
}
