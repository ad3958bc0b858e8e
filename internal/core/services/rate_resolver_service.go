package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
)

const (
	// previousDayLookback bounds the previous-business-day tier of the
	// current-rates path.
	previousDayLookback = 7
	// historicalLookback bounds FetchHistorical's backward walk; longer than
	// the current path to ride out multi-day holidays.
	historicalLookback = 10
)

// rateResolverService owns the process-wide rate snapshot and the fallback
// chain live → previous business day → persisted cache → default constants.
type rateResolverService struct {
	source   portssvc.RateSource
	repo     portsrepo.RateCacheRepositoryFacade
	notifier portssvc.RateNotifier
	logger   *slog.Logger

	fetchTimeout      time.Duration
	historicalTimeout time.Duration

	mu       sync.RWMutex
	snapshot domain.RateSnapshot
}

// RateResolverOption customizes the resolver.
type RateResolverOption func(*rateResolverService)

// WithRateNotifier installs the tier-downgrade notification sink.
func WithRateNotifier(n portssvc.RateNotifier) RateResolverOption {
	return func(s *rateResolverService) { s.notifier = n }
}

// WithRateTimeouts overrides the per-request deadlines for the current-rates
// and historical paths.
func WithRateTimeouts(fetch, historical time.Duration) RateResolverOption {
	return func(s *rateResolverService) {
		s.fetchTimeout = fetch
		s.historicalTimeout = historical
	}
}

// NewRateResolverService creates the resolver. The snapshot starts cold;
// the first Current call resolves it.
func NewRateResolverService(source portssvc.RateSource, repo portsrepo.RateCacheRepositoryFacade, logger *slog.Logger, opts ...RateResolverOption) portssvc.RateResolverSvcFacade {
	s := &rateResolverService{
		source:            source,
		repo:              repo,
		logger:            logger,
		fetchTimeout:      5 * time.Second,
		historicalTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the current snapshot, resolving it through the tier chain
// when cold or forced. It never fails; the default tier always produces a
// usable pair. The in-memory snapshot is session-lifetime: once warm,
// non-forced calls perform zero I/O.
func (s *rateResolverService) Current(ctx context.Context, force bool) domain.RateSnapshot {
	if !force {
		s.mu.RLock()
		snap := s.snapshot
		s.mu.RUnlock()
		if snap.Warm() {
			return snap
		}
	}

	snap := s.resolve(ctx)

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return snap
}

// resolve walks the tier chain in strict order; the first success is terminal.
func (s *rateResolverService) resolve(ctx context.Context) domain.RateSnapshot {
	now := time.Now()

	if pair, ok := s.fetchDay(ctx, now); ok {
		s.persist(ctx, pair)
		s.notify("Central bank rates updated.", 3*time.Second)
		s.logger.Info("resolved live rates",
			slog.Float64("usd_selling", pair.USD), slog.Float64("eur_selling", pair.EUR))
		return snapshotFromPair(pair, now, domain.TierLive)
	}

	for daysBack := 1; daysBack <= previousDayLookback; daysBack++ {
		day := now.AddDate(0, 0, -daysBack)
		pair, ok := s.fetchDay(ctx, day)
		if !ok {
			continue
		}
		s.persist(ctx, pair)
		s.notify("Using previous business day rates.", 4*time.Second)
		s.logger.Info("resolved previous-day rates",
			slog.String("date", dateutil.ISODate(day)),
			slog.Float64("usd_selling", pair.USD), slog.Float64("eur_selling", pair.EUR))
		return snapshotFromPair(pair, day, domain.TierPreviousDay)
	}

	if usd, eur, err := s.repo.LoadLatestRates(ctx); err == nil && (usd > 0 || eur > 0) {
		s.notify("Using last saved exchange rates.", 4*time.Second)
		s.logger.Info("resolved cached rates", slog.Float64("usd", usd), slog.Float64("eur", eur))
		return domain.RateSnapshot{USD: usd, EUR: eur, AsOf: now, Tier: domain.TierCache}
	}

	s.logger.Warn("all rate sources failed, using default rates")
	s.notify("No connection! Using default exchange rates.", 5*time.Second)
	return domain.RateSnapshot{
		USD:  domain.DefaultUSDRate,
		EUR:  domain.DefaultEURRate,
		AsOf: now,
		Tier: domain.TierDefault,
	}
}

// FetchHistorical resolves selling prices for a target date, walking back up
// to ten calendar days to find a business day. Returns nil on exhaustion;
// unlike Current there is no cache or default fallback here, the caller
// decides what a miss means.
func (s *rateResolverService) FetchHistorical(ctx context.Context, date time.Time) *domain.RatePair {
	for i := 0; i < historicalLookback; i++ {
		probe := date.AddDate(0, 0, -i)

		fetchCtx, cancel := context.WithTimeout(ctx, s.historicalTimeout)
		pair, err := s.source.FetchDaily(fetchCtx, probe)
		cancel()
		if err != nil {
			s.logger.Debug("historical fetch miss",
				slog.String("date", dateutil.ISODate(probe)), slog.String("error", err.Error()))
			continue
		}
		return pair
	}
	s.logger.Warn("no historical rates found", slog.String("date", dateutil.ISODate(date)))
	return nil
}

// StartAutoRefresh launches the periodic background refresh. The refresh is
// non-forced: it only repairs a snapshot that never became warm, matching
// the session-lifetime cache contract. Stops when ctx is done.
func (s *rateResolverService) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Current(ctx, false)
			}
		}
	}()
}

// fetchDay performs one bounded fetch; any failure is a tier miss, not an error.
func (s *rateResolverService) fetchDay(ctx context.Context, day time.Time) (*domain.RatePair, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	pair, err := s.source.FetchDaily(fetchCtx, day)
	if err != nil {
		s.logger.Debug("rate fetch failed",
			slog.String("date", dateutil.ISODate(day)), slog.String("error", err.Error()))
		return nil, false
	}
	return pair, true
}

// persist saves the inverted pair; persistence failures are logged, never fatal.
func (s *rateResolverService) persist(ctx context.Context, pair *domain.RatePair) {
	if err := s.repo.SaveCurrentRates(ctx, 1/pair.USD, 1/pair.EUR); err != nil {
		s.logger.Error("failed to persist exchange rates", slog.String("error", err.Error()))
	}
}

// notify forwards a tier notice to the notification sink. The sink is
// best-effort: a panicking or missing notifier must never abort resolution.
func (s *rateResolverService) notify(message string, duration time.Duration) {
	if s.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("rate notifier panicked", slog.Any("panic", r))
		}
	}()
	s.notifier.Notify(message, duration)
}

func snapshotFromPair(pair *domain.RatePair, asOf time.Time, tier domain.RateTier) domain.RateSnapshot {
	return domain.RateSnapshot{
		USD:  1 / pair.USD,
		EUR:  1 / pair.EUR,
		AsOf: asOf,
		Tier: tier,
	}
}
