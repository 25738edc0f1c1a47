package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/marina"
	"goflare.io/marina/models"
)

type BookingHandler interface {
	CreateBooking(c echo.Context) error
	GetBooking(c echo.Context) error
}

type bookingHandler struct {
	Rental marina.Rental
	Logger *zap.Logger
}

func NewBookingHandler(rental marina.Rental, logger *zap.Logger) BookingHandler {
	return &bookingHandler{
		Rental: rental,
		Logger: logger,
	}
}

func (bh *bookingHandler) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := validateBookingRequest(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	confirmation, err := bh.Rental.CreateBooking(ctx, &req)
	if err != nil {
		bh.Logger.Error("Failed to create booking", zap.Error(err), zap.String("boat_id", req.BoatID))
		return respondError(c, err, "Boat not found")
	}

	return c.JSON(http.StatusOK, confirmation)
}

func (bh *bookingHandler) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")

	booking, err := bh.Rental.GetBooking(ctx, id)
	if err != nil {
		bh.Logger.Error("Failed to get booking", zap.Error(err), zap.String("id", id))
		return respondError(c, err, "Booking not found")
	}

	return c.JSON(http.StatusOK, booking)
}

func validateBookingRequest(req *models.BookingRequest) error {
	if req.BoatID == "" {
		return errors.New("boat_id is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return errors.New("start_date and end_date are required")
	}
	if req.Guests < 1 {
		return errors.New("guests must be at least 1")
	}
	if req.CustomerName == "" {
		return errors.New("customer_name is required")
	}
	if req.CustomerEmail == "" {
		return errors.New("customer_email is required")
	}
	return nil
}
