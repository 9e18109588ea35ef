package xpgx

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/lwc/internal/pkg/logger"
)

// Pool is a pgx pool that also accepts squirrel builders.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, sqlizer squirrel.Sqlizer, dest ...any) error
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

func Wrap(p *pgxpool.Pool) Pool {
	return &pool{p}
}

// Connect opens a pool and pings it, retrying with a constant backoff until
// maxRetries is exhausted or ctx is done.
func Connect(ctx context.Context, dsn string, interval time.Duration, maxRetries uint64) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	var p *pgxpool.Pool
	err = backoff.Retry(
		func() error {
			var connErr error
			p, connErr = pgxpool.NewWithConfig(ctx, cfg)
			if connErr != nil {
				return fmt.Errorf("pgxpool.NewWithConfig: %w", connErr)
			}
			if connErr = p.Ping(ctx); connErr != nil {
				p.Close()
				logger.Warnf(ctx, "postgres not ready: %s", connErr.Error())
				return fmt.Errorf("ping: %w", connErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return Wrap(p), nil
}

func (p *pool) Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}

	return p.Pool.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, sqlizer squirrel.Sqlizer, dest ...any) error {
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return p.Pool.QueryRow(ctx, sql, args...).Scan(dest...)
}
