package response

import (
	"time"

	"wedding-console/internal/usecase/queries"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID                `json:"id"`
	BookedAt        time.Time                `json:"booked_at"`
	EventDate       time.Time                `json:"event_date"`
	GuestCount      int                      `json:"guest_count"`
	Status          string                   `json:"status"`
	User            UserResponse             `json:"user"`
	VenueID         uuid.UUID                `json:"venue_id"`
	VenueName       string                   `json:"venue_name"`
	CateringID      *uuid.UUID               `json:"catering_id,omitempty"`
	CateringName    *string                  `json:"catering_name,omitempty"`
	DecorationID    *uuid.UUID               `json:"decoration_id,omitempty"`
	DecorationName  *string                  `json:"decoration_name,omitempty"`
	Promo           *PromoResponse           `json:"promo,omitempty"`
	Payment         PaymentResponse          `json:"payment"`
	CarReservations []CarReservationResponse `json:"car_reservations"`
}

type PromoResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Discount float64   `json:"discount"`
	Expiry   time.Time `json:"expiry"`
}

type PaymentResponse struct {
	Method      string  `json:"method"`
	TotalAmount int64   `json:"total_amount"`
	Discount    float64 `json:"discount"`
	AmountPayed int64   `json:"amount_payed"`
}

type CarReservationResponse struct {
	ID    uuid.UUID `json:"id"`
	CarID uuid.UUID `json:"car_id"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type SubmitResponse struct {
	Booking  BookingResponse `json:"booking"`
	Replayed bool            `json:"replayed"`
}

// FromBookingRM copies by field name; nested payment, promo and
// reservations follow the same names.
func FromBookingRM(rm readmodel.BookingRM) BookingResponse {
	var res BookingResponse
	_ = copier.CopyWithOption(&res, &rm, copier.Option{DeepCopy: true})
	if res.CarReservations == nil {
		res.CarReservations = []CarReservationResponse{}
	}
	return res
}

func FromBookingRMs(items []readmodel.BookingRM) []BookingResponse {
	res := make([]BookingResponse, len(items))
	for i, rm := range items {
		res[i] = FromBookingRM(rm)
	}
	return res
}

func FromBookingListView(v *queries.BookingListView) BookingListResponse {
	res := BookingListResponse{Items: FromBookingRMs(v.Items)}
	if v.Next != nil {
		res.NextCursor = v.Next.After
	}
	return res
}
