package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goflare.io/marina/models"
)

type Service interface {
	// Record persists a domain event as an audit record.
	Record(ctx context.Context, eventType string, payload any) (string, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, eventType string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode event payload: %w", err)
	}

	return s.repo.Create(ctx, &models.Event{
		Type:      eventType,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}
