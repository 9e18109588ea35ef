package desserts

import (
	"context"
	"fmt"
	"time"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/domain/dto"
	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/logger"
	"github.com/ougirez/lwc/internal/pkg/store"
	"github.com/ougirez/lwc/internal/pkg/utils"
	"github.com/ougirez/lwc/internal/service/catalog"
	"github.com/ougirez/lwc/internal/service/search"
)

type Service struct {
	desserts *catalog.Collection[domain.ThaiDessert]
	newID    func() string
	now      func() time.Time
}

type Option func(*Service)

func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewDessertsService(kv store.Store, seed func() []domain.ThaiDessert, opts ...Option) *Service {
	s := &Service{
		desserts: catalog.NewCollection(kv, constants.StorageKeyDesserts, seed),
		newID:    utils.NewID,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Load(ctx context.Context) []domain.ThaiDessert {
	return s.desserts.Load(ctx)
}

func (s *Service) List(ctx context.Context, query string) []domain.ThaiDessert {
	return search.Desserts(s.desserts.List(ctx), query)
}

func (s *Service) Get(ctx context.Context, id string) (domain.ThaiDessert, error) {
	d, ok := s.desserts.Get(ctx, id)
	if !ok {
		return domain.ThaiDessert{}, fmt.Errorf("dessert %s: %w", id, constants.ErrDBNotFound)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, draft *dto.DessertDraft) (domain.ThaiDessert, catalog.Outcome, error) {
	dessert, err := draft.CommitNew(s.newID())
	if err != nil {
		return domain.ThaiDessert{}, "", err
	}

	outcome, err := s.desserts.Add(ctx, dessert)
	if err != nil {
		return domain.ThaiDessert{}, outcome, fmt.Errorf("desserts.Add: %w", err)
	}
	if outcome == catalog.OutcomeInsertedDuplicate {
		logger.Warnf(ctx, "dessert id %s already existed, appended anyway", dessert.ID)
	}

	return dessert, outcome, nil
}

func (s *Service) Update(ctx context.Context, id string, draft *dto.DessertDraft) (domain.ThaiDessert, catalog.Outcome, error) {
	if err := dto.Validate(draft); err != nil {
		return domain.ThaiDessert{}, "", err
	}

	dessert, outcome, err := s.desserts.Replace(ctx, id, draft.CommitEdit)
	if err != nil {
		return domain.ThaiDessert{}, outcome, fmt.Errorf("desserts.Replace: %w", err)
	}

	return dessert, outcome, nil
}

func (s *Service) Delete(ctx context.Context, id string) (catalog.Outcome, error) {
	outcome, err := s.desserts.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("desserts.Delete: %w", err)
	}
	return outcome, nil
}

func (s *Service) AddReview(ctx context.Context, id string, draft *dto.ReviewDraft) (domain.Review, catalog.Outcome, error) {
	review, err := draft.Commit(s.newID(), utils.DateKey(s.now()))
	if err != nil {
		return domain.Review{}, "", err
	}

	_, outcome, err := s.desserts.Mutate(ctx, id, func(d *domain.ThaiDessert) {
		d.Reviews = domain.PrependReview(d.Reviews, review)
	})
	if err != nil {
		return domain.Review{}, outcome, fmt.Errorf("desserts.Mutate: %w", err)
	}

	return review, outcome, nil
}
