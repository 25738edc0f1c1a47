package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/marina"
	"goflare.io/marina/models"
)

type BoatHandler interface {
	CreateBoat(c echo.Context) error
	GetBoat(c echo.Context) error
	ListBoats(c echo.Context) error
}

type boatHandler struct {
	Rental marina.Rental
	Logger *zap.Logger
}

func NewBoatHandler(rental marina.Rental, logger *zap.Logger) BoatHandler {
	return &boatHandler{
		Rental: rental,
		Logger: logger,
	}
}

func (bh *boatHandler) CreateBoat(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.Boat
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := validateCreateBoatRequest(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	id, err := bh.Rental.CreateBoat(ctx, &req)
	if err != nil {
		bh.Logger.Error("Failed to create boat", zap.Error(err))
		return respondError(c, err, "Boat not found")
	}

	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (bh *boatHandler) GetBoat(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")

	boat, err := bh.Rental.GetBoat(ctx, id)
	if err != nil {
		bh.Logger.Error("Failed to get boat", zap.Error(err), zap.String("id", id))
		return respondError(c, err, "Boat not found")
	}

	return c.JSON(http.StatusOK, boat)
}

func (bh *boatHandler) ListBoats(c echo.Context) error {
	ctx := c.Request().Context()

	boats, err := bh.Rental.ListBoats(ctx)
	if err != nil {
		bh.Logger.Error("Failed to list boats", zap.Error(err))
		return respondError(c, err, "Boat not found")
	}

	return c.JSON(http.StatusOK, boats)
}

func validateCreateBoatRequest(req *models.Boat) error {
	if req.Name == "" {
		return errors.New("boat name is required")
	}
	if req.Capacity < 1 {
		return errors.New("capacity must be at least 1")
	}
	if req.BasePricePerDay < 0 {
		return errors.New("base_price_per_day must not be negative")
	}
	if req.TaxRate < 0 || req.TaxRate > 0.3 {
		return errors.New("tax_rate must be between 0 and 0.3")
	}
	if req.CleaningFee < 0 {
		return errors.New("cleaning_fee must not be negative")
	}
	return nil
}
