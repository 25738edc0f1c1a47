package event

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/marina/models"
	"goflare.io/marina/store"
)

const collection = "event"

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (string, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
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

func (r *repository) Create(ctx context.Context, event *models.Event) (string, error) {
	return r.store.InsertOne(ctx, collection, event)
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	raw, err := r.store.FindOne(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err = json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event document: %w", err)
	}
	event.ID = id

	return &event, nil
}
