package quoterepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/quote"
	"fraktguiden/internal/pkg/errs"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote to the database.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteOlderThan removes quotes recorded before the cutoff and reports how
// many rows were deleted.
func (r *GormQuoteRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&QuoteDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
