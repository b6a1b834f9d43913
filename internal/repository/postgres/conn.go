package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/user-listing-service/internal/repository"
)

// q is a minimal query executor implemented by pgxpool.Conn, pgx.Conn and pgx.Tx.
type q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// connRunner hands fn exactly one connection for its whole duration.
type connRunner func(ctx context.Context, fn func(q) error) error

// poolRunner acquires from pool per call and always hands the connection back.
func poolRunner(pool *pgxpool.Pool) connRunner {
	return func(ctx context.Context, fn func(q) error) error {
		return withConn(ctx, pool, fn)
	}
}

// withConn runs fn on a single pooled connection and always hands it back to the pool.
func withConn(ctx context.Context, pool *pgxpool.Pool, fn func(q) error) error {
	if err := ensurePool(pool); err != nil {
		return err
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer conn.Release()
	return fn(conn)
}

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}
