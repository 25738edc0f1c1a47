package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"goflare.io/marina/boat"
	"goflare.io/marina/booking"
	"goflare.io/marina/pricing"
	"goflare.io/marina/store"
)

// respondError maps domain failures onto HTTP statuses. notFound is the
// message used for the 404 case, which differs per endpoint.
func respondError(c echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "End date must be after start date by at least 1 day"})
	case errors.Is(err, boat.ErrInvalidBoatID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid boat_id"})
	case errors.Is(err, booking.ErrInvalidBookingID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking id"})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFound})
	case errors.Is(err, store.ErrUnavailable):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database not available"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
