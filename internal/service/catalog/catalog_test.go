package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	store.Store
	failSet bool
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func seedPlaces() []domain.Place {
	return []domain.Place{
		{ID: "1", Name: "Riverside Library", Category: domain.CategoryLibrary, Reviews: []domain.Review{}},
		{ID: "2", Name: "Mountain Hut", Category: domain.CategoryTourism, Reviews: []domain.Review{}},
	}
}

func newPlaces(kv store.Store) *Collection[domain.Place] {
	return NewCollection(kv, constants.StorageKeyPlaces, seedPlaces)
}

func TestCollection_LoadFallsBackToSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		c := newPlaces(store.NewMemoryStore())
		assert.Equal(t, seedPlaces(), c.Load(ctx))
	})

	t.Run("malformed", func(t *testing.T) {
		kv := store.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, constants.StorageKeyPlaces, []byte("[{broken")))
		c := newPlaces(kv)
		assert.Equal(t, seedPlaces(), c.Load(ctx))
	})

	t.Run("null", func(t *testing.T) {
		kv := store.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, constants.StorageKeyPlaces, []byte("null")))
		c := newPlaces(kv)
		assert.Equal(t, seedPlaces(), c.Load(ctx))
	})
}

func TestCollection_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()

	rating := 4.5
	calories := 210.0
	dessert := domain.ThaiDessert{
		ID:          "d1",
		Name:        "ขนมชั้น",
		Origin:      "กรุงเทพฯ",
		Description: "หอมกะทิ",
		Images:      domain.DessertImages{Main: "main.jpg", Process: []string{"p1.jpg"}, Ingredients: []string{}},
		Lat:         13.7563,
		Lng:         -100.5018,
		Ingredients: []domain.DessertIngredient{{Name: "แป้งท้าวยายม่อม", Amount: "1 ถ้วย"}},
		Equipment:   []string{"ถาดนึ่ง"},
		Steps:       []string{"ผสมแป้ง", "แบ่งสี", "นึ่งทีละชั้น"},
		Nutrition:   domain.Nutrition{Calories: &calories, HealthNotes: "น้ำตาลสูง"},
		Rating:      &rating,
		Reviews:     []domain.Review{{ID: "r1", User: "u", Rating: 5, Comment: "อร่อย", Date: "2024-01-01"}},
	}

	first := NewCollection[domain.ThaiDessert](kv, constants.StorageKeyDesserts, nil)
	first.Load(ctx)
	_, err := first.Add(ctx, dessert)
	require.NoError(t, err)

	second := NewCollection[domain.ThaiDessert](kv, constants.StorageKeyDesserts, nil)
	assert.Equal(t, []domain.ThaiDessert{dessert}, second.Load(ctx))
}

func TestCollection_Add(t *testing.T) {
	ctx := context.Background()
	c := newPlaces(store.NewMemoryStore())
	before := len(c.Load(ctx))

	outcome, err := c.Add(ctx, domain.Place{ID: "3", Name: "Co-Learning"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeInserted, outcome)

	got, ok := c.Get(ctx, "3")
	require.True(t, ok)
	assert.Equal(t, "Co-Learning", got.Name)
	assert.Len(t, c.List(ctx), before+1)
	assert.Equal(t, "3", c.List(ctx)[before].ID)
}

func TestCollection_AddDuplicateIsReported(t *testing.T) {
	ctx := context.Background()
	c := newPlaces(store.NewMemoryStore())

	outcome, err := c.Add(ctx, domain.Place{ID: "1", Name: "again"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeInsertedDuplicate, outcome)
	assert.Len(t, c.List(ctx), 3)
}

func TestCollection_UpdateUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	c := newPlaces(kv)
	before := c.Load(ctx)

	outcome, err := c.Update(ctx, domain.Place{ID: "doesnotexist", Name: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Equal(t, before, c.List(ctx))

	_, err = kv.Get(ctx, constants.StorageKeyPlaces)
	assert.True(t, errors.Is(err, constants.ErrDBNotFound), "no-op must not write")
}

func TestCollection_UpdateReplaces(t *testing.T) {
	ctx := context.Background()
	c := newPlaces(store.NewMemoryStore())

	outcome, err := c.Update(ctx, domain.Place{ID: "2", Name: "Mountain Lodge"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeReplaced, outcome)

	items := c.List(ctx)
	assert.Equal(t, "Mountain Lodge", items[1].Name)
	assert.Equal(t, "Riverside Library", items[0].Name)
}

func TestCollection_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newPlaces(store.NewMemoryStore())

	outcome, err := c.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, outcome)
	once := c.List(ctx)

	outcome, err = c.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Equal(t, once, c.List(ctx))
	assert.Len(t, once, 1)
}

func TestCollection_DeleteAllPersistsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	c := newPlaces(kv)

	_, err := c.Delete(ctx, "1")
	require.NoError(t, err)
	_, err = c.Delete(ctx, "2")
	require.NoError(t, err)

	reloaded := newPlaces(kv)
	assert.Empty(t, reloaded.Load(ctx))
}

func TestCollection_PersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	kv := &failingStore{Store: store.NewMemoryStore(), failSet: true}
	c := newPlaces(kv)
	before := c.Load(ctx)

	_, err := c.Add(ctx, domain.Place{ID: "9"})
	require.Error(t, err)
	assert.Equal(t, before, c.List(ctx))
}

func TestCollection_Mutate(t *testing.T) {
	ctx := context.Background()
	c := newPlaces(store.NewMemoryStore())

	updated, outcome, err := c.Mutate(ctx, "1", func(p *domain.Place) {
		p.Reviews = domain.PrependReview(p.Reviews, domain.Review{ID: "r1"})
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeReplaced, outcome)
	assert.Len(t, updated.Reviews, 1)

	_, outcome, err = c.Mutate(ctx, "nope", func(*domain.Place) { t.Fatal("must not be called") })
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)
}

func TestCollection_Replace(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	c := newPlaces(kv)

	_, _, err := c.Mutate(ctx, "2", func(p *domain.Place) {
		p.Reviews = domain.PrependReview(p.Reviews, domain.Review{ID: "r1"})
	})
	require.NoError(t, err)

	got, outcome, err := c.Replace(ctx, "2", func(current domain.Place) (domain.Place, error) {
		current.Name = "Mountain Lodge"
		return current, nil
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeReplaced, outcome)
	assert.Equal(t, "Mountain Lodge", got.Name)
	assert.Len(t, got.Reviews, 1, "replace starts from the current record")

	reloaded := newPlaces(kv)
	stored, ok := reloaded.Get(ctx, "2")
	require.True(t, ok)
	assert.Equal(t, got, stored)
}

func TestCollection_ReplaceAborts(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	c := newPlaces(kv)
	before := c.Load(ctx)

	rejected := errors.New("rejected")
	_, _, err := c.Replace(ctx, "1", func(domain.Place) (domain.Place, error) {
		return domain.Place{}, rejected
	})
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, before, c.List(ctx))

	_, outcome, err := c.Replace(ctx, "ghost", func(domain.Place) (domain.Place, error) {
		t.Fatal("must not be called")
		return domain.Place{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)

	_, err = kv.Get(ctx, constants.StorageKeyPlaces)
	assert.True(t, errors.Is(err, constants.ErrDBNotFound), "aborted replace must not write")
}
