package booking

import (
	"slices"
	"time"

	"wedding-console/internal/domain/pricing"

	"github.com/google/uuid"
)

// Submission is the booking + payment pair sent to the marketplace, plus the
// cars that need a reservation against the booking.
type Submission struct {
	BookingID *uuid.UUID
	Booking   BookingFields
	Payment   PaymentFields
	CarIDs    []uuid.UUID
}

type BookingFields struct {
	EventDate    time.Time
	GuestCount   int
	Status       Status
	UserID       uuid.UUID
	VenueID      uuid.UUID
	CateringID   *uuid.UUID
	DecorationID *uuid.UUID
	PromoID      *uuid.UUID
}

type PaymentFields struct {
	Method PaymentMethod
	pricing.Billing
}

func (d *Draft) Submission() Submission {
	return Submission{
		BookingID: cloneID(d.bookingID),
		Booking: BookingFields{
			EventDate:    d.eventDate,
			GuestCount:   d.guestCount,
			Status:       d.status,
			UserID:       d.userID,
			VenueID:      d.venueID,
			CateringID:   cloneID(d.cateringID),
			DecorationID: cloneID(d.decorationID),
			PromoID:      cloneID(d.promoID),
		},
		Payment: PaymentFields{
			Method:  d.paymentMethod,
			Billing: d.billing,
		},
		CarIDs: d.CarIDs(),
	}
}

// CarChanges diffs the cars already reserved for a booking against the draft.
func CarChanges(reserved, wanted []uuid.UUID) (add, release []uuid.UUID) {
	for _, id := range wanted {
		if !slices.Contains(reserved, id) && !slices.Contains(add, id) {
			add = append(add, id)
		}
	}
	for _, id := range reserved {
		if !slices.Contains(wanted, id) && !slices.Contains(release, id) {
			release = append(release, id)
		}
	}
	return add, release
}
