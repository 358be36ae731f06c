package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingDrafts struct {
	ID                    uuid.UUID          `json:"id"`
	UserID                uuid.UUID          `json:"user_id"`
	BookingID             pgtype.UUID        `json:"booking_id"`
	EventDate             pgtype.Timestamptz `json:"event_date"`
	GuestCount            int32              `json:"guest_count"`
	VenueID               pgtype.UUID        `json:"venue_id"`
	CateringID            pgtype.UUID        `json:"catering_id"`
	DecorationID          pgtype.UUID        `json:"decoration_id"`
	PromoID               pgtype.UUID        `json:"promo_id"`
	CarIds                []pgtype.UUID      `json:"car_ids"`
	PaymentMethod         string             `json:"payment_method"`
	Status                string             `json:"status"`
	LoyaltyDiscount       float64            `json:"loyalty_discount"`
	AttachedPromoID       pgtype.UUID        `json:"attached_promo_id"`
	AttachedPromoDiscount pgtype.Float8      `json:"attached_promo_discount"`
	TotalCost             int64              `json:"total_cost"`
	DiscountPercentage    float64            `json:"discount_percentage"`
	CostAfterDiscount     int64              `json:"cost_after_discount"`
	Snapshot              []byte             `json:"snapshot"`
	CreatedAt             pgtype.Timestamptz `json:"created_at"`
	UpdatedAt             pgtype.Timestamptz `json:"updated_at"`
	ExpiresAt             pgtype.Timestamptz `json:"expires_at"`
}

type BookingEvents struct {
	ID            uuid.UUID          `json:"id"`
	EventType     string             `json:"event_type"`
	AggregateID   uuid.UUID          `json:"aggregate_id"`
	Payload       []byte             `json:"payload"`
	Status        string             `json:"status"`
	Attempts      int32              `json:"attempts"`
	LastError     pgtype.Text        `json:"last_error"`
	NextAttemptAt pgtype.Timestamptz `json:"next_attempt_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	SentAt        pgtype.Timestamptz `json:"sent_at"`
}
