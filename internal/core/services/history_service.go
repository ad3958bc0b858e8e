package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
)

const defaultHistoryLimit = 100

type historyService struct {
	historyRepo portsrepo.HistoryRepositoryFacade
	logger      *slog.Logger
}

// NewHistoryService creates a HistorySvcFacade.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade, logger *slog.Logger) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo, logger: logger}
}

func (s *historyService) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.historyRepo.RecentHistory(ctx, limit)
}

// HistoryByDateRange accepts DD.MM.YYYY bounds, inclusive on both ends.
func (s *historyService) HistoryByDateRange(ctx context.Context, from, to string) ([]domain.HistoryRecord, error) {
	start := dateutil.ParseDisplayDate(from)
	if start == nil {
		return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, from)
	}
	end := dateutil.ParseDisplayDate(to)
	if end == nil {
		return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, to)
	}
	if end.Before(*start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	// Push the end bound to the last instant of its day so the range is
	// inclusive.
	inclusiveEnd := end.Add(24*time.Hour - time.Nanosecond)
	return s.historyRepo.HistoryByDateRange(ctx, *start, inclusiveEnd)
}

func (s *historyService) PurgeHistory(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: days must be positive", apperrors.ErrValidation)
	}
	purged, err := s.historyRepo.PurgeHistoryOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}
	s.logger.Info("purged history records", slog.Int64("count", purged), slog.Int("olderThanDays", days))
	return purged, nil
}
