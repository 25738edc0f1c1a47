package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/marina"
	"goflare.io/marina/models"
)

type QuoteHandler interface {
	CreateQuote(c echo.Context) error
}

type quoteHandler struct {
	Rental marina.Rental
	Logger *zap.Logger
}

func NewQuoteHandler(rental marina.Rental, logger *zap.Logger) QuoteHandler {
	return &quoteHandler{
		Rental: rental,
		Logger: logger,
	}
}

func (qh *quoteHandler) CreateQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := validateQuoteRequest(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	breakdown, err := qh.Rental.Quote(ctx, &req)
	if err != nil {
		qh.Logger.Error("Failed to compute quote", zap.Error(err), zap.String("boat_id", req.BoatID))
		return respondError(c, err, "Boat not found")
	}

	return c.JSON(http.StatusOK, breakdown)
}

func validateQuoteRequest(req *models.QuoteRequest) error {
	if req.BoatID == "" {
		return errors.New("boat_id is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return errors.New("start_date and end_date are required")
	}
	if req.Guests < 1 {
		return errors.New("guests must be at least 1")
	}
	return nil
}
