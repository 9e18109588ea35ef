package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/lwc/internal/pkg/logger"
)

const createKVTable = `
create table if not exists lwc_kv (
	key        text primary key,
	value      jsonb not null,
	updated_at timestamptz not null default now()
)`

// Migrate creates the key-value table when it is missing.
func Migrate(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("create %s: %w", tableKV, err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	query := builder().Select("value").
		From(tableKV).
		Where(sq.Eq{"key": key})

	var value []byte
	if err := s.pool.Getx(ctx, query, &value); err != nil {
		return nil, wrapErr(err)
	}

	return value, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	query := builder().Insert(tableKV).
		Columns("key", "value").
		Values(key, value).
		Suffix(`on conflict (key) do update set value=excluded.value, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "store.Set, key-%s: %s", key, err.Error())
		return fmt.Errorf("store.Set, key-%s: %w", key, err)
	}

	return nil
}
