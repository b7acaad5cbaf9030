package court

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

type CourtRepository interface {
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id string) (Court, error)
	InsertCourt(ctx context.Context, court Court) (Court, error)
	UpdateCourt(ctx context.Context, court Court) error
	DeleteCourt(ctx context.Context, id string) error
}

const courtsCacheKey = "courts"

type Service struct {
	repo  CourtRepository
	cache *cache.Cache
}

func NewService(repo CourtRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

// GetAllCourts serves the court list from a short-lived cache. Bookable slots
// are always recomputed from fresh booking reads, so a stale court list only
// delays a new or edited court from appearing, never double-books one.
func (s *Service) GetAllCourts(ctx context.Context) ([]Court, error) {
	if cached, found := s.cache.Get(courtsCacheKey); found {
		return cached.([]Court), nil
	}

	courts, err := s.repo.GetAllCourts(ctx)

	if err != nil {
		return nil, err
	}

	s.cache.Set(courtsCacheKey, courts, cache.DefaultExpiration)

	return courts, nil
}

func (s *Service) FindCourtByID(ctx context.Context, id string) (Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *Service) CreateCourt(ctx context.Context, court Court) (Court, error) {
	if err := validateCourt(court); err != nil {
		return Court{}, err
	}

	court.ID = uuid.NewString()

	inserted, err := s.repo.InsertCourt(ctx, court)

	if err != nil {
		return Court{}, err
	}

	s.cache.Delete(courtsCacheKey)

	return inserted, nil
}

func (s *Service) ModifyCourt(ctx context.Context, court Court) error {
	if err := validateCourt(court); err != nil {
		return err
	}

	if err := s.repo.UpdateCourt(ctx, court); err != nil {
		return err
	}

	s.cache.Delete(courtsCacheKey)

	return nil
}

func (s *Service) RemoveCourt(ctx context.Context, id string) error {
	if err := s.repo.DeleteCourt(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(courtsCacheKey)

	return nil
}

func validateCourt(court Court) error {
	if court.Category != CategoryIndoor && court.Category != CategoryOutdoor {
		return ErrInvalidCategory
	}

	if err := schedule.ValidatePricingPeriods(court.PricingPeriods); err != nil {
		return fmt.Errorf("court %q: %w", court.Name, err)
	}

	return nil
}
