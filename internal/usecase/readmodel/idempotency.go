package readmodel

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyKeyRM struct {
	Key         string     `json:"key"`
	UserID      uuid.UUID  `json:"user_id"`
	RequestHash string     `json:"request_hash"`
	Status      string     `json:"status"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
