package shared

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// CheckDraftAccess rejects drafts of other users and drafts past their TTL.
func CheckDraftAccess(d *booking.Draft, sess *session.Session, now time.Time) error {
	if !d.IsOwnedBy(sess.User.ID) {
		return errs.Mark(booking.ErrDraftOwnedByAnotherUser, errs.ErrDraftForbidden)
	}
	if d.IsExpired(now) {
		return errs.Mark(booking.ErrDraftExpired, errs.ErrDraftExpired)
	}
	return nil
}

// CheckBookingAccess lets admins through; customers only see their own bookings.
func CheckBookingAccess(b readmodel.BookingRM, sess *session.Session) error {
	if sess.IsAdmin() || b.User.ID == sess.User.ID {
		return nil
	}
	return errs.Mark(booking.ErrBookingOwnedByAnotherUser, errs.ErrBookingForbidden)
}

func RequireAdmin(sess *session.Session) error {
	if sess == nil || !sess.IsAdmin() {
		return errs.ErrForbidden
	}
	return nil
}

// LoyaltyFor counts the user's bookings on record, leaving out the booking
// being edited.
func LoyaltyFor(bookings []readmodel.BookingRM, editing *uuid.UUID) float64 {
	n := 0
	for _, b := range bookings {
		if editing != nil && b.ID == *editing {
			continue
		}
		n++
	}
	return pricing.LoyaltyDiscountFor(n)
}
