// Package quoterepo provides data transfer objects and mapping functions
// for quote persistence. Implements the repository pattern for the quote
// aggregate, converting between domain entities and database rows.
package quoterepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/quote"
	"fraktguiden/internal/core/domain/model/rates"
)

// QuoteDTO represents the database row for a recorded rate quote.
// The created_at column is indexed to support retention pruning by cutoff.
type QuoteDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Postcode     string          `gorm:"type:varchar(16)"`
	Country      string          `gorm:"type:varchar(2)"`
	PackageCount int             `gorm:"type:int"`
	TotalWeight  float64         `gorm:"type:numeric"`
	RateID       string          `gorm:"type:varchar(128)"`
	Cost         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time       `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "quotes".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// fromDomain converts a quote aggregate to its database representation.
func fromDomain(q *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:           q.ID().Bytes(),
		Postcode:     q.Destination().Postcode,
		Country:      q.Destination().Country,
		PackageCount: q.PackageCount(),
		TotalWeight:  q.TotalWeight(),
		RateID:       q.RateID(),
		Cost:         q.Cost(),
		CreatedAt:    q.CreatedAt(),
	}
}

// toDomain reconstructs a quote aggregate from a database row.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	destination := rates.Destination{
		Postcode: dto.Postcode,
		Country:  dto.Country,
	}

	return quote.RestoreQuote(
		id,
		destination,
		dto.PackageCount,
		dto.TotalWeight,
		dto.RateID,
		dto.Cost,
		dto.CreatedAt,
	)
}
