package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goflare.io/marina"
)

type HealthHandler interface {
	Root(c echo.Context) error
	TestDatabase(c echo.Context) error
}

type healthHandler struct {
	Rental marina.Rental
}

func NewHealthHandler(rental marina.Rental) HealthHandler {
	return &healthHandler{
		Rental: rental,
	}
}

func (hh *healthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Boat Renting API running"})
}

func (hh *healthHandler) TestDatabase(c echo.Context) error {
	return c.JSON(http.StatusOK, hh.Rental.Diagnostics(c.Request().Context()))
}
