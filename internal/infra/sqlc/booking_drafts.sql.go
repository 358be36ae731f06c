package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBookingDraft = `-- name: CreateBookingDraft :exec
INSERT INTO booking_drafts (
    id, user_id, booking_id, event_date, guest_count, venue_id, catering_id,
    decoration_id, promo_id, car_ids, payment_method, status, loyalty_discount,
    attached_promo_id, attached_promo_discount, total_cost, discount_percentage,
    cost_after_discount, snapshot, created_at, updated_at, expires_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
    $18, $19, $20, $21, $22
)
`

type CreateBookingDraftParams struct {
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

func (q *Queries) CreateBookingDraft(ctx context.Context, db DBTX, arg CreateBookingDraftParams) error {
	_, err := db.Exec(ctx, createBookingDraft,
		arg.ID,
		arg.UserID,
		arg.BookingID,
		arg.EventDate,
		arg.GuestCount,
		arg.VenueID,
		arg.CateringID,
		arg.DecorationID,
		arg.PromoID,
		arg.CarIds,
		arg.PaymentMethod,
		arg.Status,
		arg.LoyaltyDiscount,
		arg.AttachedPromoID,
		arg.AttachedPromoDiscount,
		arg.TotalCost,
		arg.DiscountPercentage,
		arg.CostAfterDiscount,
		arg.Snapshot,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.ExpiresAt,
	)
	return err
}

const bookingDraftColumns = `id, user_id, booking_id, event_date, guest_count, venue_id, catering_id, decoration_id, promo_id, car_ids, payment_method, status, loyalty_discount, attached_promo_id, attached_promo_discount, total_cost, discount_percentage, cost_after_discount, snapshot, created_at, updated_at, expires_at`

const getBookingDraft = `-- name: GetBookingDraft :one
SELECT ` + bookingDraftColumns + ` FROM booking_drafts WHERE id = $1
`

func (q *Queries) GetBookingDraft(ctx context.Context, db DBTX, id uuid.UUID) (BookingDrafts, error) {
	row := db.QueryRow(ctx, getBookingDraft, id)
	return scanBookingDraft(row)
}

const getBookingDraftForUpdate = `-- name: GetBookingDraftForUpdate :one
SELECT ` + bookingDraftColumns + ` FROM booking_drafts WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetBookingDraftForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BookingDrafts, error) {
	row := db.QueryRow(ctx, getBookingDraftForUpdate, id)
	return scanBookingDraft(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingDraft(row rowScanner) (BookingDrafts, error) {
	var i BookingDrafts
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.BookingID,
		&i.EventDate,
		&i.GuestCount,
		&i.VenueID,
		&i.CateringID,
		&i.DecorationID,
		&i.PromoID,
		&i.CarIds,
		&i.PaymentMethod,
		&i.Status,
		&i.LoyaltyDiscount,
		&i.AttachedPromoID,
		&i.AttachedPromoDiscount,
		&i.TotalCost,
		&i.DiscountPercentage,
		&i.CostAfterDiscount,
		&i.Snapshot,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.ExpiresAt,
	)
	return i, err
}

const updateBookingDraft = `-- name: UpdateBookingDraft :execrows
UPDATE booking_drafts
SET event_date = $2,
    guest_count = $3,
    venue_id = $4,
    catering_id = $5,
    decoration_id = $6,
    promo_id = $7,
    car_ids = $8,
    payment_method = $9,
    status = $10,
    total_cost = $11,
    discount_percentage = $12,
    cost_after_discount = $13,
    updated_at = $14,
    expires_at = $15
WHERE id = $1
`

type UpdateBookingDraftParams struct {
	ID                 uuid.UUID          `json:"id"`
	EventDate          pgtype.Timestamptz `json:"event_date"`
	GuestCount         int32              `json:"guest_count"`
	VenueID            pgtype.UUID        `json:"venue_id"`
	CateringID         pgtype.UUID        `json:"catering_id"`
	DecorationID       pgtype.UUID        `json:"decoration_id"`
	PromoID            pgtype.UUID        `json:"promo_id"`
	CarIds             []pgtype.UUID      `json:"car_ids"`
	PaymentMethod      string             `json:"payment_method"`
	Status             string             `json:"status"`
	TotalCost          int64              `json:"total_cost"`
	DiscountPercentage float64            `json:"discount_percentage"`
	CostAfterDiscount  int64              `json:"cost_after_discount"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
	ExpiresAt          pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) UpdateBookingDraft(ctx context.Context, db DBTX, arg UpdateBookingDraftParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingDraft,
		arg.ID,
		arg.EventDate,
		arg.GuestCount,
		arg.VenueID,
		arg.CateringID,
		arg.DecorationID,
		arg.PromoID,
		arg.CarIds,
		arg.PaymentMethod,
		arg.Status,
		arg.TotalCost,
		arg.DiscountPercentage,
		arg.CostAfterDiscount,
		arg.UpdatedAt,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBookingDraft = `-- name: DeleteBookingDraft :execrows
DELETE FROM booking_drafts WHERE id = $1
`

func (q *Queries) DeleteBookingDraft(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBookingDraft, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredBookingDrafts = `-- name: DeleteExpiredBookingDrafts :execrows
DELETE FROM booking_drafts WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredBookingDrafts(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredBookingDrafts, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
