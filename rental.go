package marina

import (
	"context"

	"goflare.io/marina/models"
)

// Rental is the facade the HTTP layer talks to.
type Rental interface {
	CreateBoat(ctx context.Context, boat *models.Boat) (string, error)
	GetBoat(ctx context.Context, boatID string) (*models.Boat, error)
	ListBoats(ctx context.Context) ([]*models.Boat, error)

	// Quote computes a price breakdown without persisting anything.
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.PriceBreakdown, error)

	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	Diagnostics(ctx context.Context) *models.HealthReport

	Close()
}
