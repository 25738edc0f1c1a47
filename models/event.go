package models

import (
	"encoding/json"
	"time"
)

// Event is a persisted domain event, kept as an audit trail.
type Event struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
