package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository persists both rate tables: exchange_rates carries the
// inverted current-rate pair written by the resolver, historical_rates the
// raw selling prices back-filled for report dates.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

// LoadLatestRates returns the most recently persisted inverted pair.
func (r *PgxRateRepository) LoadLatestRates(ctx context.Context) (float64, float64, error) {
	var usd, eur float64
	err := r.Pool.QueryRow(ctx,
		"SELECT usd_rate, eur_rate FROM exchange_rates ORDER BY date DESC LIMIT 1",
	).Scan(&usd, &eur)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.NewNotFoundError("no persisted exchange rates")
		}
		return 0, 0, apperrors.NewAppError(500, "failed to load exchange rates", err)
	}
	return usd, eur, nil
}

// SaveCurrentRates upserts today's inverted pair, keyed by calendar date.
func (r *PgxRateRepository) SaveCurrentRates(ctx context.Context, usd, eur float64) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (date, usd_rate, eur_rate)
		VALUES (CURRENT_DATE, $1, $2)
		ON CONFLICT (date) DO UPDATE SET usd_rate = EXCLUDED.usd_rate, eur_rate = EXCLUDED.eur_rate`,
		usd, eur,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rates", err)
	}
	return nil
}

// FindHistoricalRate returns the selling prices stored for a calendar date.
func (r *PgxRateRepository) FindHistoricalRate(ctx context.Context, date time.Time) (*domain.RatePair, error) {
	var pair domain.RatePair
	err := r.Pool.QueryRow(ctx,
		"SELECT usd_rate, eur_rate FROM historical_rates WHERE date = $1",
		date.Format("2006-01-02"),
	).Scan(&pair.USD, &pair.EUR)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no historical rate for date")
		}
		return nil, apperrors.NewAppError(500, "failed to find historical rate", err)
	}
	return &pair, nil
}

// UpsertHistoricalRate stores selling prices for a date. The upsert makes
// concurrent back-fill workers landing on the same date harmless.
func (r *PgxRateRepository) UpsertHistoricalRate(ctx context.Context, rate domain.HistoricalRate) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO historical_rates (date, usd_rate, eur_rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET usd_rate = EXCLUDED.usd_rate, eur_rate = EXCLUDED.eur_rate`,
		rate.Date.Format("2006-01-02"), rate.USD, rate.EUR,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert historical rate", err)
	}
	return nil
}
