package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goflare.io/marina/boat"
	"goflare.io/marina/models"
	"goflare.io/marina/models/enum"
	"goflare.io/marina/pricing"
	"goflare.io/marina/store"
)

const boatID = "7b7a2f7e-9f6a-4f7e-8c1d-6a1c2b3d4e5f"

type fakeBoatService struct {
	boats map[string]*models.Boat
}

func (f *fakeBoatService) GetBoat(_ context.Context, id string) (*models.Boat, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, boat.ErrInvalidBoatID
	}
	b, ok := f.boats[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (f *fakeBoatService) Create(context.Context, *models.Boat) (string, error) {
	return "", nil
}

func (f *fakeBoatService) List(context.Context) ([]*models.Boat, error) {
	return nil, nil
}

func (f *fakeBoatService) SeedSampleBoats(context.Context) {}

type fakeRepository struct {
	bookings []*models.Booking
	err      error
}

func (f *fakeRepository) Create(_ context.Context, booking *models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.bookings = append(f.bookings, booking)
	return "3b0e53a4-94a4-4de1-b3dd-bb0ae4a9e076", nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, store.ErrNotFound
}

func newTestService(repo *fakeRepository, boats *fakeBoatService) Service {
	return NewService(repo, boats, pricing.NewEngine(pricing.DefaultCatalog()), zap.NewNop())
}

func validRequest() *models.BookingRequest {
	return &models.BookingRequest{
		BoatID:        boatID,
		StartDate:     models.NewDate(2026, time.June, 1),
		EndDate:       models.NewDate(2026, time.June, 4),
		Guests:        2,
		CustomerName:  "Ada Marino",
		CustomerEmail: "ada@example.com",
		Extras:        map[string]bool{"skipper": true},
	}
}

func seededBoats() *fakeBoatService {
	return &fakeBoatService{boats: map[string]*models.Boat{
		boatID: {
			ID:              boatID,
			Name:            "Aqua Breeze 32",
			BasePricePerDay: 420.0,
			TaxRate:         0.08,
			CleaningFee:     35.0,
		},
	}}
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, seededBoats())

	before := time.Now().UTC()
	conf, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if conf.ID == "" {
		t.Error("confirmation has no id")
	}
	if conf.Status != enum.BookingStatusRequested {
		t.Errorf("status = %q, want requested", conf.Status)
	}
	// 1260 base + 450 skipper + 35 cleaning = 1745; tax 139.60
	if conf.Pricing == nil || conf.Pricing.Total != 1884.60 {
		t.Fatalf("pricing = %+v", conf.Pricing)
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("persisted %d bookings, want 1", len(repo.bookings))
	}
	persisted := repo.bookings[0]
	if persisted.StartDate != "2026-06-01" || persisted.EndDate != "2026-06-04" {
		t.Errorf("dates = %q..%q, want ISO strings", persisted.StartDate, persisted.EndDate)
	}
	if persisted.Status != enum.BookingStatusRequested {
		t.Errorf("persisted status = %q, want requested", persisted.Status)
	}
	if persisted.CreatedAt.Location() != time.UTC {
		t.Errorf("created_at location = %v, want UTC", persisted.CreatedAt.Location())
	}
	if persisted.CreatedAt.Before(before) || persisted.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("created_at = %v outside test window", persisted.CreatedAt)
	}
}

func TestCreateBookingUnknownBoat(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, &fakeBoatService{boats: map[string]*models.Boat{}})

	req := validRequest() // well-formed id, no matching record
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking was persisted despite lookup failure")
	}
}

func TestCreateBookingMalformedBoatID(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, seededBoats())

	req := validRequest()
	req.BoatID = "not-a-uuid"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, boat.ErrInvalidBoatID) {
		t.Errorf("err = %v, want boat.ErrInvalidBoatID", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking was persisted despite invalid boat id")
	}
}

func TestCreateBookingInvalidDateRange(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, seededBoats())

	req := validRequest()
	req.EndDate = req.StartDate
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, pricing.ErrInvalidDateRange) {
		t.Errorf("err = %v, want pricing.ErrInvalidDateRange", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking was persisted despite invalid date range")
	}
}

func TestCreateBookingStoreUnavailable(t *testing.T) {
	repo := &fakeRepository{err: store.ErrUnavailable}
	svc := newTestService(repo, seededBoats())

	_, err := svc.Create(context.Background(), validRequest())
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("err = %v, want store.ErrUnavailable", err)
	}
}

func TestGetByIDInvalidID(t *testing.T) {
	svc := newTestService(&fakeRepository{}, seededBoats())

	_, err := svc.GetByID(context.Background(), "nope")
	if !errors.Is(err, ErrInvalidBookingID) {
		t.Errorf("err = %v, want ErrInvalidBookingID", err)
	}
}
