package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/birikimsoft/defter_backend/internal/models"
	"github.com/birikimsoft/defter_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHistoryRepository is the append-only operation log.
type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(db *pgxpool.Pool) *PgxHistoryRepository {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *PgxHistoryRepository) AddHistoryRecord(ctx context.Context, action, details string) error {
	_, err := r.Pool.Exec(ctx,
		"INSERT INTO history (action, details, created_at) VALUES ($1, $2, $3)",
		action, details, time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add history record", err)
	}
	return nil
}

func (r *PgxHistoryRepository) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	rows, err := r.Pool.Query(ctx,
		"SELECT id, action, details, created_at FROM history ORDER BY id DESC LIMIT $1", limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list history", err)
	}
	defer rows.Close()
	return collectHistory(rows)
}

func (r *PgxHistoryRepository) HistoryByDateRange(ctx context.Context, from, to time.Time) ([]domain.HistoryRecord, error) {
	rows, err := r.Pool.Query(ctx,
		"SELECT id, action, details, created_at FROM history WHERE created_at BETWEEN $1 AND $2 ORDER BY id DESC",
		from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query history range", err)
	}
	defer rows.Close()
	return collectHistory(rows)
}

func (r *PgxHistoryRepository) PurgeHistoryOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := r.Pool.Exec(ctx,
		fmt.Sprintf("DELETE FROM history WHERE created_at < NOW() - INTERVAL '%d days'", days))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to purge history", err)
	}
	return tag.RowsAffected(), nil
}

func collectHistory(rows pgx.Rows) ([]domain.HistoryRecord, error) {
	var records []domain.HistoryRecord
	for rows.Next() {
		var m models.History
		if err := rows.Scan(&m.ID, &m.Action, &m.Details, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan history record", err)
		}
		records = append(records, mapping.ToDomainHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read history", err)
	}
	return records, nil
}
