package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository is the key-value settings store.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *PgxSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.Pool.QueryRow(ctx, "SELECT value FROM settings WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError(fmt.Sprintf("setting %q not found", key))
		}
		return "", apperrors.NewAppError(500, "failed to load setting", err)
	}
	return value, nil
}

func (r *PgxSettingsRepository) SaveSetting(ctx context.Context, key, value string) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save setting", err)
	}
	return nil
}

func (r *PgxSettingsRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.Pool.Query(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list settings", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan setting", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read settings", err)
	}
	return settings, nil
}
