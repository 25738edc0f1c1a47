package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/marina/boat"
	"goflare.io/marina/models"
	"goflare.io/marina/models/enum"
	"goflare.io/marina/pricing"
	"goflare.io/marina/store"
)

const knownBoatID = "7b7a2f7e-9f6a-4f7e-8c1d-6a1c2b3d4e5f"

// fakeRental implements marina.Rental against in-memory data.
type fakeRental struct {
	storeDown bool
}

func (f *fakeRental) CreateBoat(context.Context, *models.Boat) (string, error) {
	if f.storeDown {
		return "", store.ErrUnavailable
	}
	return knownBoatID, nil
}

func (f *fakeRental) GetBoat(_ context.Context, id string) (*models.Boat, error) {
	if id != knownBoatID {
		return nil, store.ErrNotFound
	}
	return &models.Boat{ID: id, Name: "Aqua Breeze 32", BasePricePerDay: 420.0, TaxRate: 0.08, CleaningFee: 35.0}, nil
}

func (f *fakeRental) ListBoats(context.Context) ([]*models.Boat, error) {
	return []*models.Boat{}, nil
}

func (f *fakeRental) Quote(ctx context.Context, req *models.QuoteRequest) (*models.PriceBreakdown, error) {
	if f.storeDown {
		return nil, store.ErrUnavailable
	}
	b, err := f.GetBoat(ctx, req.BoatID)
	if err != nil {
		if req.BoatID == "not-a-uuid" {
			return nil, boat.ErrInvalidBoatID
		}
		return nil, err
	}
	engine := pricing.NewEngine(pricing.DefaultCatalog())
	breakdown, err := engine.ComputeQuote(b, req.StartDate.Time, req.EndDate.Time, req.Guests, req.Extras)
	if err != nil {
		return nil, err
	}
	breakdown.BoatID = req.BoatID
	return breakdown, nil
}

func (f *fakeRental) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error) {
	breakdown, err := f.Quote(ctx, &models.QuoteRequest{
		BoatID:    req.BoatID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
		Extras:    req.Extras,
	})
	if err != nil {
		return nil, err
	}
	return &models.BookingConfirmation{
		ID:      "3b0e53a4-94a4-4de1-b3dd-bb0ae4a9e076",
		Status:  enum.BookingStatusRequested,
		Pricing: breakdown,
	}, nil
}

func (f *fakeRental) GetBooking(context.Context, string) (*models.Booking, error) {
	return nil, store.ErrNotFound
}

func (f *fakeRental) Diagnostics(context.Context) *models.HealthReport {
	return &models.HealthReport{Backend: "running"}
}

func (f *fakeRental) Close() {}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestCreateQuote(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-04","guests":2,"extras":{"skipper":true,"snorkel":true}}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var breakdown models.PriceBreakdown
	if err := json.Unmarshal(rec.Body.Bytes(), &breakdown); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if breakdown.BoatID != knownBoatID {
		t.Errorf("boat_id = %q, want %q", breakdown.BoatID, knownBoatID)
	}
	if breakdown.Total != 2014.20 {
		t.Errorf("total = %.2f, want 2014.20", breakdown.Total)
	}
}

func TestCreateQuoteInvalidDateRange(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-04","end_date":"2026-06-04","guests":2}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateQuoteGuestsBelowOne(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-04","guests":0}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateQuoteUnknownBoat(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"3b0e53a4-94a4-4de1-b3dd-bb0ae4a9e076","start_date":"2026-06-01","end_date":"2026-06-04","guests":2}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateQuoteMalformedBoatID(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"not-a-uuid","start_date":"2026-06-01","end_date":"2026-06-04","guests":2}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateQuoteStoreUnavailable(t *testing.T) {
	qh := NewQuoteHandler(&fakeRental{storeDown: true}, zap.NewNop())

	body := `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-04","guests":2}`
	rec := postJSON(t, qh.CreateQuote, "/api/quote", body)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Database not available") {
		t.Errorf("body = %s, want database unavailable message", rec.Body.String())
	}
}

func TestCreateBookingValidation(t *testing.T) {
	bh := NewBookingHandler(&fakeRental{}, zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"missing customer name", `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-04","guests":2,"customer_email":"a@b.c"}`},
		{"missing customer email", `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-04","guests":2,"customer_name":"Ada"}`},
		{"missing dates", `{"boat_id":"` + knownBoatID + `","guests":2,"customer_name":"Ada","customer_email":"a@b.c"}`},
		{"malformed date", `{"boat_id":"` + knownBoatID + `","start_date":"June 1st","end_date":"2026-06-04","guests":2,"customer_name":"Ada","customer_email":"a@b.c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, bh.CreateBooking, "/api/bookings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	bh := NewBookingHandler(&fakeRental{}, zap.NewNop())

	body := `{"boat_id":"` + knownBoatID + `","start_date":"2026-06-01","end_date":"2026-06-02","guests":2,"customer_name":"Ada Marino","customer_email":"ada@example.com"}`
	rec := postJSON(t, bh.CreateBooking, "/api/bookings", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var conf models.BookingConfirmation
	if err := json.Unmarshal(rec.Body.Bytes(), &conf); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if conf.Status != enum.BookingStatusRequested {
		t.Errorf("status = %q, want requested", conf.Status)
	}
	if conf.Pricing == nil || conf.Pricing.Total != 491.40 {
		t.Fatalf("pricing = %+v, want total 491.40", conf.Pricing)
	}
}
