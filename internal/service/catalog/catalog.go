package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/logger"
	"github.com/ougirez/lwc/internal/pkg/store"
)

// Record is anything with a stable string identity.
type Record interface {
	RecordID() string
}

// Outcome reports what a mutation did to the collection.
type Outcome string

const (
	OutcomeInserted          Outcome = "inserted"
	OutcomeInsertedDuplicate Outcome = "inserted_duplicate"
	OutcomeReplaced          Outcome = "replaced"
	OutcomeDeleted           Outcome = "deleted"
	OutcomeNotFound          Outcome = "not_found"
)

// Collection is an ordered, persisted set of records stored under one key.
// Every mutation writes the whole collection before it becomes visible.
type Collection[T Record] struct {
	key   string
	kv    store.Store
	seed  func() []T
	mu    sync.RWMutex
	items []T
	ready bool
}

func NewCollection[T Record](kv store.Store, key string, seed func() []T) *Collection[T] {
	return &Collection[T]{key: key, kv: kv, seed: seed}
}

// Load hydrates the collection on first call. Missing or unreadable data falls
// back to the seed; it never fails.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		c.items = c.read(ctx)
		c.ready = true
	}

	return clone(c.items)
}

func (c *Collection[T]) read(ctx context.Context) []T {
	var items []T
	err := store.GetJSON(ctx, c.kv, c.key, &items)
	switch {
	case err == nil && items != nil:
		logger.Infof(ctx, "catalog %s: loaded %d records", c.key, len(items))
		return items
	case err == nil:
		logger.Warnf(ctx, "catalog %s: stored value is null, using seed", c.key)
	case errors.Is(err, constants.ErrDBNotFound):
		logger.Infof(ctx, "catalog %s: nothing stored, using seed", c.key)
	default:
		logger.Warnf(ctx, "catalog %s: %s, using seed", c.key, err.Error())
	}

	if c.seed == nil {
		return []T{}
	}
	return c.seed()
}

func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.RLock()
	if c.ready {
		defer c.mu.RUnlock()
		return clone(c.items)
	}
	c.mu.RUnlock()

	return c.Load(ctx)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, item := range c.List(ctx) {
		if item.RecordID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Add appends rec. Uniqueness of the id is the caller's job; a clash is
// appended anyway and reported as OutcomeInsertedDuplicate.
func (c *Collection[T]) Add(ctx context.Context, rec T) (Outcome, error) {
	return c.mutate(ctx, func(items []T) ([]T, Outcome) {
		outcome := OutcomeInserted
		if indexOf(items, rec.RecordID()) >= 0 {
			outcome = OutcomeInsertedDuplicate
		}
		return append(items, rec), outcome
	})
}

// Update replaces the first record with the same id. An unknown id leaves
// the collection untouched.
func (c *Collection[T]) Update(ctx context.Context, rec T) (Outcome, error) {
	return c.mutate(ctx, func(items []T) ([]T, Outcome) {
		i := indexOf(items, rec.RecordID())
		if i < 0 {
			return nil, OutcomeNotFound
		}
		items[i] = rec
		return items, OutcomeReplaced
	})
}

// Mutate applies fn to the first record with the given id.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) (T, Outcome, error) {
	var updated T
	outcome, err := c.mutate(ctx, func(items []T) ([]T, Outcome) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, OutcomeNotFound
		}
		fn(&items[i])
		updated = items[i]
		return items, OutcomeReplaced
	})
	return updated, outcome, err
}

// Replace rebuilds the first record with the given id from its current value
// while holding the write lock. An error from fn aborts the write and is returned.
func (c *Collection[T]) Replace(ctx context.Context, id string, fn func(current T) (T, error)) (T, Outcome, error) {
	var (
		replaced T
		fnErr    error
	)
	outcome, err := c.mutate(ctx, func(items []T) ([]T, Outcome) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, OutcomeNotFound
		}
		next, err := fn(items[i])
		if err != nil {
			fnErr = err
			return nil, ""
		}
		items[i] = next
		replaced = next
		return items, OutcomeReplaced
	})
	if fnErr != nil {
		var zero T
		return zero, "", fnErr
	}
	return replaced, outcome, err
}

// Delete removes every record with the given id. Deleting twice is the same as once.
func (c *Collection[T]) Delete(ctx context.Context, id string) (Outcome, error) {
	return c.mutate(ctx, func(items []T) ([]T, Outcome) {
		kept := items[:0]
		for _, item := range items {
			if item.RecordID() != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, OutcomeNotFound
		}
		return kept, OutcomeDeleted
	})
}

// mutate runs fn on a private copy, persists the result and swaps it in.
// fn returns a nil slice to signal "no change".
func (c *Collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, Outcome)) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		c.items = c.read(ctx)
		c.ready = true
	}

	next, outcome := fn(clone(c.items))
	if next == nil {
		return outcome, nil
	}

	if err := store.PutJSON(ctx, c.kv, c.key, next); err != nil {
		return outcome, fmt.Errorf("persist %s: %w", c.key, err)
	}

	c.items = next
	return outcome, nil
}

func indexOf[T Record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
