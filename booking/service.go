package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goflare.io/marina/boat"
	"goflare.io/marina/models"
	"goflare.io/marina/models/enum"
	"goflare.io/marina/pricing"
)

// ErrInvalidBookingID is returned when a booking identifier is not a
// syntactically valid store identifier.
var ErrInvalidBookingID = errors.New("invalid booking id")

type Service interface {
	// Create records a booking request. Boat lookup and pricing failures
	// propagate unchanged and leave no booking record behind. No
	// availability check is performed; overlapping bookings for the same
	// boat and date range are accepted by design.
	Create(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

type service struct {
	repo    Repository
	boats   boat.Service
	pricing *pricing.Engine
	logger  *zap.Logger
}

func NewService(repo Repository, boats boat.Service, engine *pricing.Engine, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		boats:   boats,
		pricing: engine,
		logger:  logger,
	}
}

func (s *service) Create(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error) {
	b, err := s.boats.GetBoat(ctx, req.BoatID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.pricing.ComputeQuote(b, req.StartDate.Time, req.EndDate.Time, req.Guests, req.Extras)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		BoatID:        req.BoatID,
		StartDate:     req.StartDate.ISO(),
		EndDate:       req.EndDate.ISO(),
		Guests:        req.Guests,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Extras:        req.Extras,
		Notes:         req.Notes,
		Pricing:       breakdown,
		Status:        enum.BookingStatusRequested,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking recorded",
		zap.String("booking_id", id),
		zap.String("boat_id", req.BoatID),
		zap.Int("nights", breakdown.Nights),
		zap.Float64("total", breakdown.Total))

	return &models.BookingConfirmation{
		ID:      id,
		Status:  booking.Status,
		Pricing: breakdown,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	canonical, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}
	return s.repo.GetByID(ctx, canonical.String())
}
