package repositories

import (
	"context"
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// RateCacheReader defines read operations for persisted exchange rates.
type RateCacheReader interface {
	// LoadLatestRates returns the most recently persisted inverted rate pair,
	// regardless of date. apperrors.ErrNotFound when none exist.
	LoadLatestRates(ctx context.Context) (usd, eur float64, err error)

	// FindHistoricalRate returns the banknote selling prices stored for a
	// calendar date. apperrors.ErrNotFound when the date has no record.
	FindHistoricalRate(ctx context.Context, date time.Time) (*domain.RatePair, error)
}

// RateCacheWriter defines write operations for persisted exchange rates.
type RateCacheWriter interface {
	// SaveCurrentRates upserts today's inverted rate pair.
	SaveCurrentRates(ctx context.Context, usd, eur float64) error

	// UpsertHistoricalRate stores selling prices for a date, replacing any
	// existing record. Safe under concurrent writers.
	UpsertHistoricalRate(ctx context.Context, rate domain.HistoricalRate) error
}

// RateCacheRepositoryFacade combines all rate persistence interfaces.
type RateCacheRepositoryFacade interface {
	RateCacheReader
	RateCacheWriter
}
