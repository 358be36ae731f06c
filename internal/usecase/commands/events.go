package commands

import (
	"context"
	"encoding/json"
	"time"

	"wedding-console/internal/usecase/readmodel"
	"wedding-console/internal/usecase/shared"
)

// Outbox event types, published to Kafka by the relay.
const (
	EventBookingSubmitted     = "booking.submitted"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingStatusChanged = "booking.status_changed"
)

type BookingEvent struct {
	Type        string    `json:"type"`
	Action      string    `json:"action,omitempty"`
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	EventDate   time.Time `json:"event_date"`
	VenueName   string    `json:"venue_name"`
	TotalAmount int64     `json:"total_amount"`
	Discount    float64   `json:"discount"`
	AmountPayed int64     `json:"amount_payed"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newBookingEvent(eventType, action string, b readmodel.BookingRM, at time.Time) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		Action:      action,
		BookingID:   b.ID.String(),
		UserID:      b.User.ID.String(),
		Status:      b.Status,
		EventDate:   b.EventDate,
		VenueName:   b.VenueName,
		TotalAmount: b.Payment.TotalAmount,
		Discount:    b.Payment.Discount,
		AmountPayed: b.Payment.AmountPayed,
		OccurredAt:  at,
	}
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, ev BookingEvent, b readmodel.BookingRM) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = tx.Outbox().Enqueue(ctx, tx.DB(), ev.Type, b.ID, payload, ev.OccurredAt)
	return err
}
