package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/marina/models"
	"goflare.io/marina/store"
)

const collection = "booking"

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

type repository struct {
	store  store.Store
	logger *zap.Logger
}

func NewRepository(store store.Store, logger *zap.Logger) Repository {
	return &repository{
		store:  store,
		logger: logger,
	}
}

func (r *repository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	return r.store.InsertOne(ctx, collection, booking)
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := r.store.FindOne(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	if err = json.Unmarshal(raw, &booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking document: %w", err)
	}
	booking.ID = id

	return &booking, nil
}
