package marina

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goflare.io/marina/boat"
	"goflare.io/marina/booking"
	"goflare.io/marina/event"
	"goflare.io/marina/models"
	"goflare.io/marina/pricing"
	"goflare.io/marina/store"
)

type BoatRental struct {
	eventManager *EventManager
	workerPool   *WorkerPool
	logger       *zap.Logger

	boat    boat.Service
	booking booking.Service
	event   event.Service
	pricing *pricing.Engine
	store   store.Store
}

func NewBoatRental(
	bs boat.Service,
	bks booking.Service,
	es event.Service,
	engine *pricing.Engine,
	st store.Store,
	logger *zap.Logger) Rental {

	br := &BoatRental{
		boat:    bs,
		booking: bks,
		event:   es,
		pricing: engine,
		store:   st,
		logger:  logger,
	}

	br.eventManager = NewEventManager(logger)
	br.workerPool = NewWorkerPool(4, 256, br, logger)

	br.registerEventHandlers()
	br.eventManager.SubscribeToEvents(br.workerPool)
	br.workerPool.Start()

	br.boat.SeedSampleBoats(context.Background())

	return br
}

func (br *BoatRental) CreateBoat(ctx context.Context, b *models.Boat) (string, error) {
	return br.boat.Create(ctx, b)
}

func (br *BoatRental) GetBoat(ctx context.Context, boatID string) (*models.Boat, error) {
	return br.boat.GetBoat(ctx, boatID)
}

func (br *BoatRental) ListBoats(ctx context.Context) ([]*models.Boat, error) {
	return br.boat.List(ctx)
}

func (br *BoatRental) Quote(ctx context.Context, req *models.QuoteRequest) (*models.PriceBreakdown, error) {
	b, err := br.boat.GetBoat(ctx, req.BoatID)
	if err != nil {
		return nil, err
	}

	breakdown, err := br.pricing.ComputeQuote(b, req.StartDate.Time, req.EndDate.Time, req.Guests, req.Extras)
	if err != nil {
		return nil, err
	}
	breakdown.BoatID = req.BoatID

	return breakdown, nil
}

func (br *BoatRental) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error) {
	confirmation, err := br.booking.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	br.publishBookingCreated(req, confirmation)

	return confirmation, nil
}

func (br *BoatRental) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return br.booking.GetByID(ctx, bookingID)
}

func (br *BoatRental) Diagnostics(ctx context.Context) *models.HealthReport {
	report := &models.HealthReport{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if err := br.store.Ping(ctx); err != nil {
		return report
	}

	report.Database = "available"
	report.ConnectionStatus = "connected"
	report.DatabaseName = br.store.Name()

	names, err := br.store.ListCollectionNames(ctx)
	if err != nil {
		report.Database = "connected but degraded"
		return report
	}
	if len(names) > 10 {
		names = names[:10]
	}
	report.Collections = names
	report.Database = "connected"

	return report
}

func (br *BoatRental) Close() {
	br.workerPool.Stop()
}

func (br *BoatRental) registerEventHandlers() {
	br.eventManager.RegisterHandler(EventTypeBookingCreated, br.handleBookingCreatedEvent)
}

// publishBookingCreated is fire-and-forget: event delivery never affects
// the booking response.
func (br *BoatRental) publishBookingCreated(req *models.BookingRequest, confirmation *models.BookingConfirmation) {
	payload, err := json.Marshal(bookingCreatedPayload{
		BookingID:     confirmation.ID,
		BoatID:        req.BoatID,
		CustomerEmail: req.CustomerEmail,
		Total:         confirmation.Pricing.Total,
		Currency:      confirmation.Pricing.Currency,
	})
	if err != nil {
		br.logger.Error("failed to encode booking event payload", zap.Error(err))
		return
	}

	br.eventManager.Publish(&DomainEvent{
		Type:       EventTypeBookingCreated,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
}

type bookingCreatedPayload struct {
	BookingID     string  `json:"booking_id"`
	BoatID        string  `json:"boat_id"`
	CustomerEmail string  `json:"customer_email"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

func (br *BoatRental) handleBookingCreatedEvent(ctx context.Context, e *DomainEvent) error {
	if _, err := br.event.Record(ctx, string(e.Type), e.Payload); err != nil {
		return fmt.Errorf("failed to record %s event: %w", e.Type, err)
	}

	var payload bookingCreatedPayload
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}

	br.logger.Info("booking confirmation queued for customer",
		zap.String("booking_id", payload.BookingID),
		zap.String("customer_email", payload.CustomerEmail))

	return nil
}

func (br *BoatRental) processEvent(ctx context.Context, e *DomainEvent) error {
	handler, exists := br.eventManager.GetHandler(e.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type %s", e.Type)
	}
	return handler(ctx, e)
}
