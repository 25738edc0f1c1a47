package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"goflare.io/marina/handlers"
)

type Server struct {
	echo    *echo.Echo
	Boat    handlers.BoatHandler
	Quote   handlers.QuoteHandler
	Booking handlers.BookingHandler
	Health  handlers.HealthHandler
}

func NewServer(
	Boat handlers.BoatHandler,
	Quote handlers.QuoteHandler,
	Booking handlers.BookingHandler,
	Health handlers.HealthHandler,
) *Server {
	return &Server{
		echo:    echo.New(),
		Boat:    Boat,
		Quote:   Quote,
		Booking: Booking,
		Health:  Health,
	}
}

// Start initializes the server by registering middlewares and routes, and starts listening for connections on the provided address.
// It returns an error if there is an issue starting the server.
func (s *Server) Start(address string) error {
	s.registerMiddlewares()
	s.registerRoutes()
	return s.echo.Start(address)
}

// Run starts the server by calling the Start method in a goroutine. If an error occurs, it
// logs the error and terminates the server. It then listens for an OS interrupt signal or a SIGTERM
// signal to gracefully shut down the server. Once the signal is received, it creates a context with
// a timeout of 5 seconds, cancels the context after the method returns, and returns the result of
// shutting down the server.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())
}

func (s *Server) registerRoutes() {

	s.echo.GET("/", s.Health.Root)
	s.echo.GET("/test", s.Health.TestDatabase)

	s.echo.GET("/api/boats", s.Boat.ListBoats)
	s.echo.POST("/api/boats", s.Boat.CreateBoat)
	s.echo.GET("/api/boats/:id", s.Boat.GetBoat)

	s.echo.POST("/api/quote", s.Quote.CreateQuote)

	s.echo.POST("/api/bookings", s.Booking.CreateBooking)
	s.echo.GET("/api/bookings/:id", s.Booking.GetBooking)
}
