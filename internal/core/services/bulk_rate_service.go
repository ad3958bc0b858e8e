package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
	cache "github.com/patrickmn/go-cache"
)

const (
	memoExpiration      = 24 * time.Hour
	memoCleanupInterval = 48 * time.Hour
)

// bulkRateService back-fills selling prices for many report dates: memo
// cache, then the persisted historical table, then the feed under a bounded
// worker pool, writing successes through to both caches.
type bulkRateService struct {
	resolver    portssvc.RateResolverSvcFacade
	repo        portsrepo.RateCacheRepositoryFacade
	memo        *cache.Cache
	concurrency int
	logger      *slog.Logger
}

// NewBulkRateService creates a BulkRateSvcFacade. concurrency caps the
// number of simultaneous feed fetches.
func NewBulkRateService(resolver portssvc.RateResolverSvcFacade, repo portsrepo.RateCacheRepositoryFacade, concurrency int, logger *slog.Logger) portssvc.BulkRateSvcFacade {
	if concurrency <= 0 {
		concurrency = 10
	}
	return &bulkRateService{
		resolver:    resolver,
		repo:        repo,
		memo:        cache.New(memoExpiration, memoCleanupInterval),
		concurrency: concurrency,
		logger:      logger,
	}
}

// ResolveMany resolves each unique date to its selling prices. Dates that
// cannot be resolved anywhere are absent from the result; callers get a map
// and no error, matching the fire-and-collect contract of report back-fill.
func (s *bulkRateService) ResolveMany(ctx context.Context, dates []time.Time) map[string]domain.RatePair {
	results := make(map[string]domain.RatePair)
	if len(dates) == 0 {
		return results
	}

	unique := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		unique[dateutil.ISODate(d)] = d
	}

	var toFetch []time.Time
	for iso, d := range unique {
		if pair, ok := s.cached(ctx, iso, d); ok {
			results[iso] = pair
			continue
		}
		toFetch = append(toFetch, d)
	}
	if len(toFetch) == 0 {
		return results
	}

	s.logger.Info("back-filling historical rates", slog.Int("dates", len(toFetch)))

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.concurrency)
	)
	for _, d := range toFetch {
		wg.Add(1)
		sem <- struct{}{}
		go func(day time.Time) {
			defer wg.Done()
			defer func() { <-sem }()

			pair := s.resolver.FetchHistorical(ctx, day)
			if pair == nil {
				return
			}
			s.writeThrough(ctx, day, *pair)

			mu.Lock()
			results[dateutil.ISODate(day)] = *pair
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	return results
}

// cached checks the in-process memo, then the persisted table. Persisted
// hits are promoted into the memo.
func (s *bulkRateService) cached(ctx context.Context, iso string, date time.Time) (domain.RatePair, bool) {
	if v, ok := s.memo.Get(iso); ok {
		return v.(domain.RatePair), true
	}

	pair, err := s.repo.FindHistoricalRate(ctx, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("historical rate lookup failed",
				slog.String("date", iso), slog.String("error", err.Error()))
		}
		return domain.RatePair{}, false
	}

	s.memo.Set(iso, *pair, cache.DefaultExpiration)
	return *pair, true
}

// writeThrough persists a fetched pair before it enters the result map.
// A persistence failure only costs the cache hit next time.
func (s *bulkRateService) writeThrough(ctx context.Context, date time.Time, pair domain.RatePair) {
	record := domain.HistoricalRate{Date: date, USD: pair.USD, EUR: pair.EUR}
	if err := s.repo.UpsertHistoricalRate(ctx, record); err != nil {
		s.logger.Error("failed to persist historical rate",
			slog.String("date", dateutil.ISODate(date)), slog.String("error", err.Error()))
	}
	s.memo.Set(dateutil.ISODate(date), pair, cache.DefaultExpiration)
}
