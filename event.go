package marina

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

type EventType string

const (
	EventTypeBookingCreated EventType = "booking.created"
)

// DomainEvent is an in-process notification about something that already
// happened. Delivery is best-effort.
type DomainEvent struct {
	Type       EventType       `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventHandler func(context.Context, *DomainEvent) error

type EventManager struct {
	handlers map[EventType]EventHandler
	pool     *WorkerPool
	logger   *zap.Logger
}

func NewEventManager(logger *zap.Logger) *EventManager {
	return &EventManager{
		handlers: make(map[EventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType EventType, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType EventType) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

// SubscribeToEvents routes published events into the worker pool.
func (em *EventManager) SubscribeToEvents(wp *WorkerPool) {
	em.pool = wp
}

func (em *EventManager) Publish(event *DomainEvent) {
	if em.pool == nil {
		em.logger.Warn("event dropped, no subscriber", zap.String("event_type", string(event.Type)))
		return
	}
	em.pool.Submit(context.Background(), event)
}
