package store

import (
	"context"

	"github.com/ougirez/lwc/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the durable key-value boundary. Values are JSON documents.
// Get returns constants.ErrDBNotFound for a key that was never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
