package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the shared connection pool embedded by every
// repository in this package.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
