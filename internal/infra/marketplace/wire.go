package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/review"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// wireTime accepts both zoned and naive ISO-8601 timestamps. Naive values are
// read as UTC.
type wireTime struct {
	time.Time
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

type userWire struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

func (u userWire) toDomain() session.User {
	return session.User{ID: u.UserID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}

type signupWire struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type venueWire struct {
	VenueID          uuid.UUID `json:"venue_id"`
	VenueName        string    `json:"venue_name"`
	VenueAddress     string    `json:"venue_address"`
	VenueCapacity    int       `json:"venue_capacity"`
	VenuePricePerDay int64     `json:"venue_price_per_day"`
}

func (v venueWire) toDomain() catalog.Venue {
	return catalog.Venue{
		ID:          v.VenueID,
		Name:        v.VenueName,
		Address:     v.VenueAddress,
		Capacity:    v.VenueCapacity,
		PricePerDay: v.VenuePricePerDay,
	}
}

type menuItemWire struct {
	CateringID uuid.UUID `json:"catering_id"`
	DishID     uuid.UUID `json:"dish_id"`
}

type cateringWire struct {
	CateringID        uuid.UUID      `json:"catering_id"`
	CateringName      string         `json:"catering_name"`
	CateringMenuItems []menuItemWire `json:"catering_menu_items"`
}

func (c cateringWire) toDomain() catalog.Catering {
	ids := make([]uuid.UUID, 0, len(c.CateringMenuItems))
	for _, item := range c.CateringMenuItems {
		ids = append(ids, item.DishID)
	}
	return catalog.Catering{ID: c.CateringID, Name: c.CateringName, MenuDishIDs: ids}
}

type dishWire struct {
	DishID             uuid.UUID `json:"dish_id"`
	DishName           string    `json:"dish_name"`
	DishType           string    `json:"dish_type"`
	DishCostPerServing int64     `json:"dish_cost_per_serving"`
}

func (d dishWire) toDomain() catalog.Dish {
	return catalog.Dish{
		ID:             d.DishID,
		Name:           d.DishName,
		Type:           catalog.DishType(d.DishType),
		CostPerServing: d.DishCostPerServing,
	}
}

type decorationWire struct {
	DecorationID    uuid.UUID `json:"decoration_id"`
	DecorationName  string    `json:"decoration_name"`
	DecorationPrice int64     `json:"decoration_price"`
}

func (d decorationWire) toDomain() catalog.Decoration {
	return catalog.Decoration{ID: d.DecorationID, Name: d.DecorationName, Price: d.DecorationPrice}
}

type carWire struct {
	CarID          uuid.UUID `json:"car_id"`
	CarMake        string    `json:"car_make"`
	CarModel       string    `json:"car_model"`
	CarYear        int       `json:"car_year"`
	CarRentalPrice int64     `json:"car_rental_price"`
	CarQuantity    int       `json:"car_quantity"`
}

func (c carWire) toDomain() catalog.Car {
	return catalog.Car{
		ID:          c.CarID,
		Make:        c.CarMake,
		Model:       c.CarModel,
		Year:        c.CarYear,
		RentalPrice: c.CarRentalPrice,
		Quantity:    c.CarQuantity,
	}
}

type promoWire struct {
	PromoID       uuid.UUID `json:"promo_id"`
	PromoName     string    `json:"promo_name"`
	PromoExpiry   wireTime  `json:"promo_expiry"`
	PromoDiscount float64   `json:"promo_discount"`
}

func (p promoWire) toDomain() catalog.Promo {
	return catalog.Promo{ID: p.PromoID, Name: p.PromoName, Discount: p.PromoDiscount, Expiry: p.PromoExpiry.Time}
}

type createPromoWire struct {
	PromoName     string   `json:"promo_name"`
	PromoExpiry   wireTime `json:"promo_expiry"`
	PromoDiscount float64  `json:"promo_discount"`
}

type reviewWire struct {
	VenueReviewID        uuid.UUID `json:"venue_review_id"`
	VenueID              uuid.UUID `json:"venue_id"`
	User                 userWire  `json:"user"`
	VenueReviewText      string    `json:"venue_review_text"`
	VenueRating          int       `json:"venue_rating"`
	VenueReviewCreatedAt wireTime  `json:"venue_review_created_at"`
}

func (r reviewWire) toDomain() review.Review {
	return review.Review{
		ID:        r.VenueReviewID,
		VenueID:   r.VenueID,
		Author:    r.User.toDomain(),
		Rating:    r.VenueRating,
		Comment:   r.VenueReviewText,
		CreatedAt: r.VenueReviewCreatedAt.Time,
	}
}

type createReviewWire struct {
	VenueRating     int    `json:"venue_rating"`
	VenueReviewText string `json:"venue_review_text"`
}

type paymentWire struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   int64     `json:"total_amount"`
	Discount      float64   `json:"discount"`
	AmountPayed   int64     `json:"amount_payed"`
}

type carReservationWire struct {
	CarReservationID uuid.UUID `json:"car_reservation_id"`
	CarID            uuid.UUID `json:"car_id"`
	BookingID        uuid.UUID `json:"booking_id"`
}

func (r carReservationWire) toReadModel() readmodel.CarReservationRM {
	return readmodel.CarReservationRM{ID: r.CarReservationID, CarID: r.CarID, BookingID: r.BookingID}
}

type bookingWire struct {
	BookingID         uuid.UUID            `json:"booking_id"`
	BookingDate       wireTime             `json:"booking_date"`
	BookingEventDate  wireTime             `json:"booking_event_date"`
	BookingGuestCount int                  `json:"booking_guest_count"`
	BookingStatus     string               `json:"booking_status"`
	User              userWire             `json:"user"`
	Venue             venueWire            `json:"venue"`
	Payment           *paymentWire         `json:"payment"`
	Catering          *cateringWire        `json:"catering"`
	Decoration        *decorationWire      `json:"decoration"`
	Promo             *promoWire           `json:"promo"`
	CarReservations   []carReservationWire `json:"car_reservations"`
}

func (b bookingWire) toReadModel() readmodel.BookingRM {
	rm := readmodel.BookingRM{
		ID:              b.BookingID,
		BookedAt:        b.BookingDate.Time,
		EventDate:       b.BookingEventDate.Time,
		GuestCount:      b.BookingGuestCount,
		Status:          b.BookingStatus,
		User:            b.User.toDomain(),
		VenueID:         b.Venue.VenueID,
		VenueName:       b.Venue.VenueName,
		CarReservations: make([]readmodel.CarReservationRM, 0, len(b.CarReservations)),
	}
	if b.Catering != nil {
		id, name := b.Catering.CateringID, b.Catering.CateringName
		rm.CateringID, rm.CateringName = &id, &name
	}
	if b.Decoration != nil {
		id, name := b.Decoration.DecorationID, b.Decoration.DecorationName
		rm.DecorationID, rm.DecorationName = &id, &name
	}
	if b.Promo != nil {
		rm.Promo = &readmodel.PromoRM{
			ID:       b.Promo.PromoID,
			Name:     b.Promo.PromoName,
			Discount: b.Promo.PromoDiscount,
			Expiry:   b.Promo.PromoExpiry.Time,
		}
	}
	if b.Payment != nil {
		rm.Payment = readmodel.PaymentRM{
			ID:          b.Payment.PaymentID,
			Method:      b.Payment.PaymentMethod,
			TotalAmount: b.Payment.TotalAmount,
			Discount:    b.Payment.Discount,
			AmountPayed: b.Payment.AmountPayed,
		}
	}
	for _, r := range b.CarReservations {
		rm.CarReservations = append(rm.CarReservations, r.toReadModel())
	}
	return rm
}

// Booking writes. Optional ids are sent as explicit null so an edit can
// clear them.

type bookingFieldsWire struct {
	BookingEventDate  wireTime   `json:"booking_event_date"`
	BookingGuestCount int        `json:"booking_guest_count"`
	BookingStatus     string     `json:"booking_status"`
	UserID            uuid.UUID  `json:"user_id"`
	VenueID           uuid.UUID  `json:"venue_id"`
	CateringID        *uuid.UUID `json:"catering_id"`
	DecorationID      *uuid.UUID `json:"decoration_id"`
	PromoID           *uuid.UUID `json:"promo_id"`
}

type paymentFieldsWire struct {
	AmountPayed   int64   `json:"amount_payed"`
	TotalAmount   int64   `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	Discount      float64 `json:"discount"`
}

type bookingWithPaymentWire struct {
	Booking bookingFieldsWire `json:"booking"`
	Payment paymentFieldsWire `json:"payment"`
}

type statusUpdateWire struct {
	Booking struct {
		BookingStatus string `json:"booking_status"`
	} `json:"booking"`
	Payment struct{} `json:"payment"`
}
