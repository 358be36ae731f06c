package readmodel

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// OutboxEventRM is a booking event waiting to be published to the broker.
type OutboxEventRM struct {
	ID          uuid.UUID `json:"id"`
	EventType   string    `json:"event_type"`
	AggregateID uuid.UUID `json:"aggregate_id"`
	Payload     []byte    `json:"payload"`
	Attempts    int32     `json:"attempts"`
	Status      string    `json:"status"`
	LastError   *string   `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
