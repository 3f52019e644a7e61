package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool the repositories rely on.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool DBTX
}

// Ping verifies the database is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.Pool.Ping(ctx)
}
