package queries

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// DraftView is an open booking form: the current selection, its billing and
// the options the form may pick from.
type DraftView struct {
	ID              uuid.UUID       `json:"id"`
	BookingID       *uuid.UUID      `json:"booking_id,omitempty"`
	EventDate       *time.Time      `json:"event_date,omitempty"`
	GuestCount      int             `json:"guest_count"`
	VenueID         *uuid.UUID      `json:"venue_id,omitempty"`
	CateringID      *uuid.UUID      `json:"catering_id,omitempty"`
	DecorationID    *uuid.UUID      `json:"decoration_id,omitempty"`
	PromoID         *uuid.UUID      `json:"promo_id,omitempty"`
	CarIDs          []uuid.UUID     `json:"car_ids"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Status          string          `json:"status"`
	LoyaltyDiscount float64         `json:"loyalty_discount"`
	Billing         pricing.Billing `json:"billing"`
	Options         OptionsView     `json:"options"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

type OptionsView struct {
	Venues      []catalog.Venue      `json:"venues"`
	Caterings   []CateringOptionView `json:"caterings"`
	Decorations []catalog.Decoration `json:"decorations"`
	Cars        []catalog.Car        `json:"cars"`
	Promos      []PromoOptionView    `json:"promos"`
	LoadedAt    time.Time            `json:"loaded_at"`
}

type CateringOptionView struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Dishes []catalog.Dish `json:"dishes"`
}

// Expired promos are listed but not selectable, except the one already on
// the booking being edited.
type PromoOptionView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Discount   float64   `json:"discount"`
	Expiry     time.Time `json:"expiry"`
	Expired    bool      `json:"expired"`
	Selectable bool      `json:"selectable"`
}

type QuoteView struct {
	Billing         pricing.Billing `json:"billing"`
	LoyaltyDiscount float64         `json:"loyalty_discount"`
	PromoApplied    bool            `json:"promo_applied"`
	CatalogLoadedAt time.Time       `json:"catalog_loaded_at"`
}

type BookingListView struct {
	Items []readmodel.BookingRM `json:"items"`
	Next  *Cursor               `json:"next,omitempty"`
}

// NewDraftView renders d at now. Zero event date and venue are left out so
// the form shows them as unset.
func NewDraftView(d *booking.Draft, now time.Time) *DraftView {
	v := &DraftView{
		ID:              d.ID(),
		BookingID:       d.BookingID(),
		GuestCount:      d.GuestCount(),
		CateringID:      d.CateringID(),
		DecorationID:    d.DecorationID(),
		PromoID:         d.PromoID(),
		CarIDs:          d.CarIDs(),
		PaymentMethod:   d.PaymentMethod().String(),
		Status:          d.Status().String(),
		LoyaltyDiscount: d.LoyaltyDiscount(),
		Billing:         d.Billing(),
		Options:         newOptionsView(d, now),
		UpdatedAt:       d.UpdatedAt(),
		ExpiresAt:       d.ExpiresAt(),
	}
	if !d.EventDate().IsZero() {
		t := d.EventDate()
		v.EventDate = &t
	}
	if d.VenueID() != uuid.Nil {
		id := d.VenueID()
		v.VenueID = &id
	}
	return v
}

func newOptionsView(d *booking.Draft, now time.Time) OptionsView {
	snap := d.Snapshot()

	caterings := make([]CateringOptionView, 0, len(snap.Caterings()))
	for _, c := range snap.Caterings() {
		caterings = append(caterings, CateringOptionView{
			ID:     c.ID,
			Name:   c.Name,
			Dishes: snap.CateringDishes(c.ID),
		})
	}

	attached := d.AttachedPromo()
	promos := make([]PromoOptionView, 0, len(snap.Promos()))
	for _, opt := range snap.PromoOptions(now) {
		selectable := opt.Selectable || (attached != nil && attached.ID == opt.Promo.ID)
		promos = append(promos, PromoOptionView{
			ID:         opt.Promo.ID,
			Name:       opt.Promo.Name,
			Discount:   opt.Promo.Discount,
			Expiry:     opt.Promo.Expiry,
			Expired:    opt.Expired,
			Selectable: selectable,
		})
	}

	return OptionsView{
		Venues:      snap.Venues(),
		Caterings:   caterings,
		Decorations: snap.Decorations(),
		Cars:        snap.Cars(),
		Promos:      promos,
		LoadedAt:    snap.LoadedAt(),
	}
}
