package places

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
	places *catalog.Collection[domain.Place]
	newID  func() string
	now    func() time.Time
}

type Option func(*Service)

func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewPlacesService(kv store.Store, seed func() []domain.Place, opts ...Option) *Service {
	s := &Service{
		places: catalog.NewCollection(kv, constants.StorageKeyPlaces, seed),
		newID:  utils.NewID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Load(ctx context.Context) []domain.Place {
	return s.places.Load(ctx)
}

// List returns the places matching query in registry order.
func (s *Service) List(ctx context.Context, query string) []domain.Place {
	return search.Places(s.places.List(ctx), query)
}

func (s *Service) Markers(ctx context.Context, query string) []domain.Marker {
	places := s.List(ctx, query)
	markers := make([]domain.Marker, 0, len(places))
	for _, p := range places {
		markers = append(markers, p.Marker())
	}
	return markers
}

func (s *Service) Get(ctx context.Context, id string) (domain.Place, error) {
	p, ok := s.places.Get(ctx, id)
	if !ok {
		return domain.Place{}, fmt.Errorf("place %s: %w", id, constants.ErrDBNotFound)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, draft *dto.PlaceDraft) (domain.Place, catalog.Outcome, error) {
	place, err := draft.CommitNew(s.newID())
	if err != nil {
		return domain.Place{}, "", err
	}

	outcome, err := s.places.Add(ctx, place)
	if err != nil {
		return domain.Place{}, outcome, fmt.Errorf("places.Add: %w", err)
	}
	if outcome == catalog.OutcomeInsertedDuplicate {
		logger.Warnf(ctx, "place id %s already existed, appended anyway", place.ID)
	}

	return place, outcome, nil
}

// Update replaces the place with the given id. An unknown id is reported as
// catalog.OutcomeNotFound, not as an error.
func (s *Service) Update(ctx context.Context, id string, draft *dto.PlaceDraft) (domain.Place, catalog.Outcome, error) {
	if err := dto.Validate(draft); err != nil {
		return domain.Place{}, "", err
	}

	place, outcome, err := s.places.Replace(ctx, id, draft.CommitEdit)
	if err != nil {
		return domain.Place{}, outcome, fmt.Errorf("places.Replace: %w", err)
	}

	return place, outcome, nil
}

func (s *Service) Delete(ctx context.Context, id string) (catalog.Outcome, error) {
	outcome, err := s.places.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("places.Delete: %w", err)
	}
	return outcome, nil
}

// AddReview puts a visitor review in front of the place's reviews. The place
// rating is left as the admin entered it.
func (s *Service) AddReview(ctx context.Context, id string, draft *dto.ReviewDraft) (domain.Review, catalog.Outcome, error) {
	review, err := draft.Commit(s.newID(), utils.DateKey(s.now()))
	if err != nil {
		return domain.Review{}, "", err
	}

	_, outcome, err := s.places.Mutate(ctx, id, func(p *domain.Place) {
		p.Reviews = domain.PrependReview(p.Reviews, review)
	})
	if err != nil {
		return domain.Review{}, outcome, fmt.Errorf("places.Mutate: %w", err)
	}

	return review, outcome, nil
}
