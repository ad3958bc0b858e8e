package services

import (
	"context"
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// RateSource performs a single fetch of the daily rate table for one
// calendar date and returns the banknote selling prices. Implemented by the
// central-bank feed client; failures of any flavor (network, status,
// parsing, missing currency) come back as a plain error.
type RateSource interface {
	FetchDaily(ctx context.Context, date time.Time) (*domain.RatePair, error)
}

// RateNotifier receives user-visible notices when rate resolution falls back
// to a non-live tier. Implementations must tolerate being called from
// background goroutines; the resolver discards panics and never lets a
// notifier fault abort resolution.
type RateNotifier interface {
	Notify(message string, duration time.Duration)
}

// RateResolverSvcFacade owns the current-rate snapshot and the fallback chain.
type RateResolverSvcFacade interface {
	// Current returns the current snapshot. When force is false and the
	// snapshot is warm this performs no I/O. It never fails: the default
	// tier guarantees a usable result.
	Current(ctx context.Context, force bool) domain.RateSnapshot

	// FetchHistorical resolves selling prices for a target date, walking
	// back up to ten calendar days. Returns nil on exhaustion; the caller
	// decides what that means.
	FetchHistorical(ctx context.Context, date time.Time) *domain.RatePair

	// StartAutoRefresh launches a background goroutine that refreshes the
	// snapshot every interval until ctx is cancelled.
	StartAutoRefresh(ctx context.Context, interval time.Duration)
}

// ConverterSvcFacade converts amounts between TRY and foreign currencies
// using the resolver's current snapshot.
type ConverterSvcFacade interface {
	// Convert returns the amount in the target currency rounded to 5
	// decimal places, or 0 when the amount is zero or a needed rate is
	// missing.
	Convert(ctx context.Context, amount float64, from, to string) float64
}

// BulkRateSvcFacade back-fills selling prices for many report dates.
type BulkRateSvcFacade interface {
	// ResolveMany resolves each unique date, cache first, then the feed
	// under a bounded worker pool. Keys are ISO dates; dates that could not
	// be resolved are absent. Never returns an error.
	ResolveMany(ctx context.Context, dates []time.Time) map[string]domain.RatePair
}
