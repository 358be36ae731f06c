package readmodel

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/domain/session"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID              uuid.UUID          `json:"id"`
	BookedAt        time.Time          `json:"booked_at"`
	EventDate       time.Time          `json:"event_date"`
	GuestCount      int                `json:"guest_count"`
	Status          string             `json:"status"`
	User            session.User       `json:"user"`
	VenueID         uuid.UUID          `json:"venue_id"`
	VenueName       string             `json:"venue_name"`
	CateringID      *uuid.UUID         `json:"catering_id,omitempty"`
	CateringName    *string            `json:"catering_name,omitempty"`
	DecorationID    *uuid.UUID         `json:"decoration_id,omitempty"`
	DecorationName  *string            `json:"decoration_name,omitempty"`
	Promo           *PromoRM           `json:"promo,omitempty"`
	Payment         PaymentRM          `json:"payment"`
	CarReservations []CarReservationRM `json:"car_reservations"`
}

type PromoRM struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Discount float64   `json:"discount"`
	Expiry   time.Time `json:"expiry"`
}

type PaymentRM struct {
	ID          uuid.UUID `json:"id"`
	Method      string    `json:"method"`
	TotalAmount int64     `json:"total_amount"`
	Discount    float64   `json:"discount"`
	AmountPayed int64     `json:"amount_payed"`
}

type CarReservationRM struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	BookingID uuid.UUID `json:"booking_id"`
}

func (b BookingRM) PromoID() *uuid.UUID {
	if b.Promo == nil {
		return nil
	}
	id := b.Promo.ID
	return &id
}

func (b BookingRM) CarIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.CarReservations))
	for _, r := range b.CarReservations {
		ids = append(ids, r.CarID)
	}
	return ids
}

// ReservationFor returns the reservation id holding carID on this booking.
func (b BookingRM) ReservationFor(carID uuid.UUID) (uuid.UUID, bool) {
	for _, r := range b.CarReservations {
		if r.CarID == carID {
			return r.ID, true
		}
	}
	return uuid.Nil, false
}

// ToExisting converts the marketplace record into the edit-draft input.
func (b BookingRM) ToExisting() booking.ExistingBooking {
	return booking.ExistingBooking{
		ID:            b.ID,
		UserID:        b.User.ID,
		EventDate:     b.EventDate,
		GuestCount:    b.GuestCount,
		VenueID:       b.VenueID,
		CateringID:    b.CateringID,
		DecorationID:  b.DecorationID,
		PromoID:       b.PromoID(),
		CarIDs:        b.CarIDs(),
		PaymentMethod: booking.PaymentMethod(b.Payment.Method),
		Status:        booking.Status(b.Status),
		Payment: pricing.Billing{
			TotalCost:          b.Payment.TotalAmount,
			DiscountPercentage: b.Payment.Discount,
			CostAfterDiscount:  b.Payment.AmountPayed,
		},
	}
}
