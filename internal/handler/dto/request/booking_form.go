package request

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/pkg/patch"

	"github.com/google/uuid"
)

type OpenBookingFormRequest struct {
	// nil opens a blank form, otherwise the booking is loaded for editing
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

// UpdateBookingFormRequest is a partial update. Absent keys leave the field
// alone; an explicit null clears an optional selection.
type UpdateBookingFormRequest struct {
	EventDate     *time.Time             `json:"event_date,omitempty"`
	GuestCount    *int                   `json:"guest_count,omitempty"`
	VenueID       *uuid.UUID             `json:"venue_id,omitempty"`
	CateringID    patch.Field[uuid.UUID] `json:"catering_id"`
	DecorationID  patch.Field[uuid.UUID] `json:"decoration_id"`
	PromoID       patch.Field[uuid.UUID] `json:"promo_id"`
	CarIDs        *[]uuid.UUID           `json:"car_ids,omitempty"`
	AddCarIDs     []uuid.UUID            `json:"add_car_ids,omitempty"`
	RemoveCarIDs  []uuid.UUID            `json:"remove_car_ids,omitempty"`
	PaymentMethod *string                `json:"payment_method,omitempty"`
}

// ApplyTo runs the changes through the draft's setters so billing is
// recomputed after each pricing-relevant edit.
func (r UpdateBookingFormRequest) ApplyTo(d *booking.Draft) error {
	if r.VenueID != nil {
		d.SetVenue(*r.VenueID)
	}
	if r.CateringID.Set {
		d.SetCatering(r.CateringID.Ptr(d.CateringID()))
	}
	if r.DecorationID.Set {
		d.SetDecoration(r.DecorationID.Ptr(d.DecorationID()))
	}
	if r.GuestCount != nil {
		if err := d.SetGuestCount(*r.GuestCount); err != nil {
			return err
		}
	}
	if r.CarIDs != nil {
		d.SetCars(*r.CarIDs)
	}
	for _, id := range r.AddCarIDs {
		d.AddCar(id)
	}
	for _, id := range r.RemoveCarIDs {
		d.RemoveCar(id)
	}
	if r.PromoID.Set {
		if err := d.SetPromo(r.PromoID.Ptr(d.PromoID())); err != nil {
			return err
		}
	}
	if r.EventDate != nil {
		d.SetEventDate(r.EventDate.UTC())
	}
	if r.PaymentMethod != nil {
		m, err := booking.NewPaymentMethod(*r.PaymentMethod)
		if err != nil {
			return err
		}
		if err := d.SetPaymentMethod(m); err != nil {
			return err
		}
	}
	return nil
}
