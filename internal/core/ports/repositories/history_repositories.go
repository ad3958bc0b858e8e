package repositories

import (
	"context"
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// HistoryRepositoryFacade is the append-only operation log.
type HistoryRepositoryFacade interface {
	AddHistoryRecord(ctx context.Context, action, details string) error
	RecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
	HistoryByDateRange(ctx context.Context, from, to time.Time) ([]domain.HistoryRecord, error)
	// PurgeHistoryOlderThan deletes records older than the given number of
	// days and returns how many were removed.
	PurgeHistoryOlderThan(ctx context.Context, days int) (int64, error)
}
