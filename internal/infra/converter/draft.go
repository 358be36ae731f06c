package converter

import (
	"encoding/json"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/pgconv"
	"wedding-console/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func DraftToCreateParams(d *booking.Draft) (sqlc.CreateBookingDraftParams, error) {
	snapshot, err := json.Marshal(d.Snapshot().Data())
	if err != nil {
		return sqlc.CreateBookingDraftParams{}, err
	}

	s := d.State()
	params := sqlc.CreateBookingDraftParams{
		ID:                 s.ID,
		UserID:             s.UserID,
		BookingID:          pgconv.UUIDPtrToPgtype(s.BookingID),
		EventDate:          pgconv.TimePtrToPgtype(&s.EventDate),
		GuestCount:         int32(s.GuestCount), // #nosec G115 -- guest counts are small
		VenueID:            pgconv.UUIDPtrToPgtype(ptr.NonZero(s.VenueID)),
		CateringID:         pgconv.UUIDPtrToPgtype(s.CateringID),
		DecorationID:       pgconv.UUIDPtrToPgtype(s.DecorationID),
		PromoID:            pgconv.UUIDPtrToPgtype(s.PromoID),
		CarIds:             uuidsToPgtype(s.CarIDs),
		PaymentMethod:      s.PaymentMethod.String(),
		Status:             s.Status.String(),
		LoyaltyDiscount:    s.LoyaltyDiscount,
		TotalCost:          s.Billing.TotalCost,
		DiscountPercentage: s.Billing.DiscountPercentage,
		CostAfterDiscount:  s.Billing.CostAfterDiscount,
		Snapshot:           snapshot,
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
		ExpiresAt:          pgconv.TimeToPgtype(s.ExpiresAt),
	}

	if s.AttachedPromo != nil {
		params.AttachedPromoID = pgconv.UUIDToPgtype(s.AttachedPromo.ID)
		params.AttachedPromoDiscount = pgtype.Float8{Float64: s.AttachedPromo.Discount, Valid: true}
	}

	return params, nil
}

// DraftToUpdateParams covers the mutable part of a draft. Owner, snapshot,
// loyalty and attached promo are fixed at open.
func DraftToUpdateParams(d *booking.Draft) sqlc.UpdateBookingDraftParams {
	s := d.State()
	return sqlc.UpdateBookingDraftParams{
		ID:                 s.ID,
		EventDate:          pgconv.TimePtrToPgtype(&s.EventDate),
		GuestCount:         int32(s.GuestCount), // #nosec G115 -- guest counts are small
		VenueID:            pgconv.UUIDPtrToPgtype(ptr.NonZero(s.VenueID)),
		CateringID:         pgconv.UUIDPtrToPgtype(s.CateringID),
		DecorationID:       pgconv.UUIDPtrToPgtype(s.DecorationID),
		PromoID:            pgconv.UUIDPtrToPgtype(s.PromoID),
		CarIds:             uuidsToPgtype(s.CarIDs),
		PaymentMethod:      s.PaymentMethod.String(),
		Status:             s.Status.String(),
		TotalCost:          s.Billing.TotalCost,
		DiscountPercentage: s.Billing.DiscountPercentage,
		CostAfterDiscount:  s.Billing.CostAfterDiscount,
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
		ExpiresAt:          pgconv.TimeToPgtype(s.ExpiresAt),
	}
}

func DraftFromRow(services *booking.Services, row sqlc.BookingDrafts) (*booking.Draft, error) {
	var data catalog.SnapshotData
	if err := json.Unmarshal(row.Snapshot, &data); err != nil {
		return nil, err
	}

	state := booking.State{
		ID:              row.ID,
		UserID:          row.UserID,
		BookingID:       pgconv.UUIDPtrFromPgtype(row.BookingID),
		EventDate:       pgconv.TimeFromPgtype(row.EventDate),
		GuestCount:      int(row.GuestCount),
		VenueID:         ptr.Deref(pgconv.UUIDPtrFromPgtype(row.VenueID)),
		CateringID:      pgconv.UUIDPtrFromPgtype(row.CateringID),
		DecorationID:    pgconv.UUIDPtrFromPgtype(row.DecorationID),
		PromoID:         pgconv.UUIDPtrFromPgtype(row.PromoID),
		CarIDs:          uuidsFromPgtype(row.CarIds),
		PaymentMethod:   booking.PaymentMethod(row.PaymentMethod),
		Status:          booking.Status(row.Status),
		LoyaltyDiscount: row.LoyaltyDiscount,
		Billing: pricing.Billing{
			TotalCost:          row.TotalCost,
			DiscountPercentage: row.DiscountPercentage,
			CostAfterDiscount:  row.CostAfterDiscount,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if id := pgconv.UUIDPtrFromPgtype(row.AttachedPromoID); id != nil {
		state.AttachedPromo = &pricing.AttachedPromo{
			ID:       *id,
			Discount: ptr.Deref(pgconv.Float8PtrFromPgtype(row.AttachedPromoDiscount)),
		}
	}

	return booking.Reconstruct(services, catalog.NewSnapshot(data), state), nil
}

func uuidsToPgtype(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, pgconv.UUIDToPgtype(id))
	}
	return out
}

func uuidsFromPgtype(ids []pgtype.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id.Valid {
			out = append(out, uuid.UUID(id.Bytes))
		}
	}
	return out
}
