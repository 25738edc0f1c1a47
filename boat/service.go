package boat

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goflare.io/marina/models"
)

// ErrInvalidBoatID is returned when a boat identifier is not a
// syntactically valid store identifier.
var ErrInvalidBoatID = errors.New("invalid boat_id")

type Service interface {
	// GetBoat fails closed: a malformed identifier or a missing record is
	// an error, never substituted boat data.
	GetBoat(ctx context.Context, id string) (*models.Boat, error)
	Create(ctx context.Context, boat *models.Boat) (string, error)
	List(ctx context.Context) ([]*models.Boat, error)
	// SeedSampleBoats inserts demo boats when the collection is empty.
	// Seeding is best-effort convenience data; every failure is swallowed.
	SeedSampleBoats(ctx context.Context)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) GetBoat(ctx context.Context, id string) (*models.Boat, error) {
	canonical, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidBoatID
	}
	return s.repo.GetByID(ctx, canonical.String())
}

func (s *service) Create(ctx context.Context, boat *models.Boat) (string, error) {
	return s.repo.Create(ctx, boat)
}

func (s *service) List(ctx context.Context) ([]*models.Boat, error) {
	return s.repo.List(ctx)
}

func (s *service) SeedSampleBoats(ctx context.Context) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Warn("skipping sample boat seeding", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	if err = s.repo.CreateMany(ctx, sampleBoats()); err != nil {
		s.logger.Warn("failed to seed sample boats", zap.Error(err))
		return
	}
	s.logger.Info("seeded sample boats", zap.Int("count", len(sampleBoats())))
}
