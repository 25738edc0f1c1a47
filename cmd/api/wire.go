//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"goflare.io/marina"
	"goflare.io/marina/boat"
	"goflare.io/marina/booking"
	"goflare.io/marina/config"
	"goflare.io/marina/event"
	"goflare.io/marina/handlers"
	"goflare.io/marina/pricing"
	"goflare.io/marina/server"
)

func InitializeAPIServer() (*server.Server, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvideStore,
		config.ProvideBoatCache,
		config.ProvideExtrasCatalog,
		pricing.NewEngine,
		boat.NewRepository,
		boat.NewService,
		booking.NewRepository,
		booking.NewService,
		event.NewRepository,
		event.NewService,
		marina.NewBoatRental,
		handlers.NewBoatHandler,
		handlers.NewQuoteHandler,
		handlers.NewBookingHandler,
		handlers.NewHealthHandler,
		server.NewServer,
	)

	return &server.Server{}, nil
}
