package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

func (c *Client) GetBooking(ctx context.Context, token string, id uuid.UUID) (readmodel.BookingRM, error) {
	var out bookingWire
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/bookings/" + id.String(), token: token}, &out); err != nil {
		return readmodel.BookingRM{}, err
	}
	return out.toReadModel(), nil
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]readmodel.BookingRM, error) {
	return c.listBookings(ctx, token, "/bookings/me")
}

// AllBookings requires an admin token.
func (c *Client) AllBookings(ctx context.Context, token string) ([]readmodel.BookingRM, error) {
	return c.listBookings(ctx, token, "/bookings/")
}

func (c *Client) listBookings(ctx context.Context, token, path string) ([]readmodel.BookingRM, error) {
	var rows []bookingWire
	if _, err := c.do(ctx, request{method: http.MethodGet, path: path, token: token}, &rows); err != nil {
		return nil, err
	}
	out := make([]readmodel.BookingRM, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toReadModel())
	}
	return out, nil
}

// CreateBooking posts the booking with its payment and returns the stored
// record. Cars are reserved separately.
func (c *Client) CreateBooking(ctx context.Context, token string, sub booking.Submission) (readmodel.BookingRM, error) {
	var out bookingWire
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/bookings/",
		token:  token,
		body:   submissionWire(sub),
	}, &out); err != nil {
		return readmodel.BookingRM{}, err
	}
	return out.toReadModel(), nil
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id uuid.UUID, sub booking.Submission) (readmodel.BookingRM, error) {
	var out bookingWire
	if _, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/bookings/" + id.String(),
		token:  token,
		body:   submissionWire(sub),
	}, &out); err != nil {
		return readmodel.BookingRM{}, err
	}
	return out.toReadModel(), nil
}

// UpdateBookingStatus touches only booking_status. Every other field is left
// unset so the marketplace keeps it.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, id uuid.UUID, status booking.Status) (readmodel.BookingRM, error) {
	var body statusUpdateWire
	body.Booking.BookingStatus = string(status)

	var out bookingWire
	if _, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/bookings/" + id.String(),
		token:  token,
		body:   body,
	}, &out); err != nil {
		return readmodel.BookingRM{}, err
	}
	return out.toReadModel(), nil
}

// DeleteBooking removes the booking. The marketplace returns the reserved
// cars to stock.
func (c *Client) DeleteBooking(ctx context.Context, token string, id uuid.UUID) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/bookings/" + id.String(), token: token}, nil)
	return err
}

// ReserveCar takes one unit of the car for the booking. A NOT_FOUND error
// means the car is out of stock or unknown.
func (c *Client) ReserveCar(ctx context.Context, token string, carID, bookingID uuid.UUID) (readmodel.CarReservationRM, error) {
	var out carReservationWire
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/cars/" + carID.String() + "/" + bookingID.String(),
		token:  token,
	}, &out); err != nil {
		return readmodel.CarReservationRM{}, err
	}
	return out.toReadModel(), nil
}

func (c *Client) ReleaseCarReservation(ctx context.Context, token string, reservationID uuid.UUID) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cars/reservations/" + reservationID.String(),
		token:  token,
	}, nil)
	return err
}

func submissionWire(sub booking.Submission) bookingWithPaymentWire {
	return bookingWithPaymentWire{
		Booking: bookingFieldsWire{
			BookingEventDate:  wireTime{sub.Booking.EventDate},
			BookingGuestCount: sub.Booking.GuestCount,
			BookingStatus:     string(sub.Booking.Status),
			UserID:            sub.Booking.UserID,
			VenueID:           sub.Booking.VenueID,
			CateringID:        sub.Booking.CateringID,
			DecorationID:      sub.Booking.DecorationID,
			PromoID:           sub.Booking.PromoID,
		},
		Payment: paymentFieldsWire{
			AmountPayed:   sub.Payment.CostAfterDiscount,
			TotalAmount:   sub.Payment.TotalCost,
			PaymentMethod: string(sub.Payment.Method),
			Discount:      sub.Payment.DiscountPercentage,
		},
	}
}
