package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of a connection pool readiness checks and shutdown need.
// Both *pgxpool.Pool and the sqlite store satisfy it.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions sizes the PostgreSQL pool. Zero durations keep pgx's defaults.
type PoolOptions struct {
	MaxConns int
	MaxIdle  time.Duration
	MaxLife  time.Duration
}

func (o PoolOptions) apply(cfg *pgxpool.Config) {
	conns := min(max(o.MaxConns, DefaultMinConnections), math.MaxInt32)
	cfg.MaxConns = int32(conns) //nolint:gosec // clamped to int32
	cfg.MinConns = DefaultMinConnections
	if o.MaxIdle > 0 {
		cfg.MaxConnIdleTime = o.MaxIdle
	}
	if o.MaxLife > 0 {
		cfg.MaxConnLifetime = o.MaxLife
	}
}

// NewPool connects to PostgreSQL and pings it once before returning.
// Connecting is bounded by ConnectTimeout on top of ctx.
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	opts.apply(cfg)

	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgConnected,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
