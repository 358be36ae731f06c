package booking

import (
	"errors"
	"slices"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrPromoNotSelectable        = errors.New("promo is expired or unknown")
	ErrInvalidGuestCount         = errors.New("guest count must be at least 1")
	ErrVenueRequired             = errors.New("venue is required")
	ErrEventDateNotFuture        = errors.New("event date must be in the future")
	ErrGuestCountExceedsVenue    = errors.New("guest count exceeds venue capacity")
	ErrPaymentMethodRequired     = errors.New("payment method is required")
	ErrDraftExpired              = errors.New("booking draft has expired")
	ErrDraftOwnedByAnotherUser   = errors.New("booking draft belongs to another user")
	ErrBookingOwnedByAnotherUser = errors.New("booking belongs to another user")
)

type Services struct {
	Clock      clock.Clock
	Calculator pricing.Calculator
}

func NewServices(clk clock.Clock, calc pricing.Calculator) *Services {
	return &Services{Clock: clk, Calculator: calc}
}

// Draft is the in-progress selection of one booking form. It is bound to the
// catalog snapshot loaded when the form opened and keeps its billing summary
// in step with every pricing-relevant change.
type Draft struct {
	services *Services
	snapshot *catalog.Snapshot

	id              uuid.UUID
	userID          uuid.UUID
	bookingID       *uuid.UUID
	eventDate       time.Time
	guestCount      int
	venueID         uuid.UUID
	cateringID      *uuid.UUID
	decorationID    *uuid.UUID
	promoID         *uuid.UUID
	carIDs          []uuid.UUID
	paymentMethod   PaymentMethod
	status          Status
	loyaltyDiscount float64
	attachedPromo   *pricing.AttachedPromo
	billing         pricing.Billing
	createdAt       time.Time
	updatedAt       time.Time
	expiresAt       time.Time
}

// ExistingBooking is what the marketplace holds for a booking being edited.
type ExistingBooking struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EventDate     time.Time
	GuestCount    int
	VenueID       uuid.UUID
	CateringID    *uuid.UUID
	DecorationID  *uuid.UUID
	PromoID       *uuid.UUID
	CarIDs        []uuid.UUID
	PaymentMethod PaymentMethod
	Status        Status
	Payment       pricing.Billing
}

// State is the persisted form of a Draft, without its snapshot.
type State struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BookingID       *uuid.UUID
	EventDate       time.Time
	GuestCount      int
	VenueID         uuid.UUID
	CateringID      *uuid.UUID
	DecorationID    *uuid.UUID
	PromoID         *uuid.UUID
	CarIDs          []uuid.UUID
	PaymentMethod   PaymentMethod
	Status          Status
	LoyaltyDiscount float64
	AttachedPromo   *pricing.AttachedPromo
	Billing         pricing.Billing
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       time.Time
}

func NewDraft(services *Services, userID uuid.UUID, snapshot *catalog.Snapshot, loyaltyDiscount float64, ttl time.Duration) *Draft {
	now := services.Clock.Now()
	d := &Draft{
		services:        services,
		snapshot:        orEmpty(snapshot),
		id:              uuid.New(),
		userID:          userID,
		guestCount:      pricing.MinGuestCount,
		status:          StatusPending,
		loyaltyDiscount: loyaltyDiscount,
		createdAt:       now,
		updatedAt:       now,
		expiresAt:       now.Add(ttl),
	}
	d.recalculate()
	return d
}

// NewDraftFromBooking prefills a draft for editing. The promo already on the
// booking is attached so its discount survives even if it has since expired.
func NewDraftFromBooking(services *Services, existing ExistingBooking, snapshot *catalog.Snapshot, loyaltyDiscount float64, ttl time.Duration) *Draft {
	d := NewDraft(services, existing.UserID, snapshot, loyaltyDiscount, ttl)

	bookingID := existing.ID
	d.bookingID = &bookingID
	d.eventDate = existing.EventDate
	d.guestCount = max(existing.GuestCount, pricing.MinGuestCount)
	d.venueID = existing.VenueID
	d.cateringID = cloneID(existing.CateringID)
	d.decorationID = cloneID(existing.DecorationID)
	d.promoID = cloneID(existing.PromoID)
	d.carIDs = distinct(existing.CarIDs)
	d.paymentMethod = existing.PaymentMethod
	if existing.Status.IsValid() {
		d.status = existing.Status
	}

	if existing.PromoID != nil {
		d.attachedPromo = &pricing.AttachedPromo{
			ID:       *existing.PromoID,
			Discount: attachedDiscount(*existing.PromoID, existing.Payment, d.snapshot, loyaltyDiscount),
		}
	}

	d.recalculate()
	return d
}

func Reconstruct(services *Services, snapshot *catalog.Snapshot, s State) *Draft {
	return &Draft{
		services:        services,
		snapshot:        orEmpty(snapshot),
		id:              s.ID,
		userID:          s.UserID,
		bookingID:       cloneID(s.BookingID),
		eventDate:       s.EventDate,
		guestCount:      s.GuestCount,
		venueID:         s.VenueID,
		cateringID:      cloneID(s.CateringID),
		decorationID:    cloneID(s.DecorationID),
		promoID:         cloneID(s.PromoID),
		carIDs:          slices.Clone(s.CarIDs),
		paymentMethod:   s.PaymentMethod,
		status:          s.Status,
		loyaltyDiscount: s.LoyaltyDiscount,
		attachedPromo:   s.AttachedPromo,
		billing:         s.Billing,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		expiresAt:       s.ExpiresAt,
	}
}

// Pricing-relevant setters

func (d *Draft) SetVenue(id uuid.UUID) {
	d.venueID = id
	d.changed()
}

func (d *Draft) SetDecoration(id *uuid.UUID) {
	d.decorationID = cloneID(id)
	d.changed()
}

func (d *Draft) SetCatering(id *uuid.UUID) {
	d.cateringID = cloneID(id)
	d.changed()
}

func (d *Draft) SetGuestCount(n int) error {
	if n < pricing.MinGuestCount {
		return ErrInvalidGuestCount
	}
	d.guestCount = n
	d.changed()
	return nil
}

func (d *Draft) SetCars(ids []uuid.UUID) {
	d.carIDs = distinct(ids)
	d.changed()
}

func (d *Draft) AddCar(id uuid.UUID) {
	if slices.Contains(d.carIDs, id) {
		return
	}
	d.carIDs = append(d.carIDs, id)
	d.changed()
}

func (d *Draft) RemoveCar(id uuid.UUID) {
	idx := slices.Index(d.carIDs, id)
	if idx < 0 {
		return
	}
	d.carIDs = slices.Delete(d.carIDs, idx, idx+1)
	d.changed()
}

// SetPromo selects a promo, or clears it when id is nil. Expired and unknown
// promos are refused unless they are the promo already on the edited booking.
func (d *Draft) SetPromo(id *uuid.UUID) error {
	if id != nil && !d.promoSelectable(*id) {
		return ErrPromoNotSelectable
	}
	d.promoID = cloneID(id)
	d.changed()
	return nil
}

// Non-pricing setters

func (d *Draft) SetEventDate(t time.Time) {
	d.eventDate = t
	d.touch()
}

func (d *Draft) SetPaymentMethod(m PaymentMethod) error {
	if !m.IsValid() {
		return ErrInvalidPaymentMethod
	}
	d.paymentMethod = m
	d.touch()
	return nil
}

// Reprice recomputes billing at now, so a promo that expired after it was
// picked stops counting before submission.
func (d *Draft) Reprice(now time.Time) {
	d.billing = d.services.Calculator.Calculate(d.selection(), d.snapshot, d.loyaltyDiscount, now)
}

func (d *Draft) Validate(now time.Time) error {
	if d.venueID == uuid.Nil {
		return ErrVenueRequired
	}
	if d.guestCount < pricing.MinGuestCount {
		return ErrInvalidGuestCount
	}
	if !d.eventDate.After(now) {
		return ErrEventDateNotFuture
	}
	if v, ok := d.snapshot.Venue(d.venueID); ok && v.Capacity > 0 && d.guestCount > v.Capacity {
		return ErrGuestCountExceedsVenue
	}
	if d.paymentMethod == "" {
		return ErrPaymentMethodRequired
	}
	if !d.paymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}

func (d *Draft) IsExpired(now time.Time) bool {
	return !now.Before(d.expiresAt)
}

func (d *Draft) IsOwnedBy(userID uuid.UUID) bool {
	return d.userID == userID
}

func (d *Draft) IsEdit() bool {
	return d.bookingID != nil
}

func (d *Draft) State() State {
	return State{
		ID:              d.id,
		UserID:          d.userID,
		BookingID:       cloneID(d.bookingID),
		EventDate:       d.eventDate,
		GuestCount:      d.guestCount,
		VenueID:         d.venueID,
		CateringID:      cloneID(d.cateringID),
		DecorationID:    cloneID(d.decorationID),
		PromoID:         cloneID(d.promoID),
		CarIDs:          slices.Clone(d.carIDs),
		PaymentMethod:   d.paymentMethod,
		Status:          d.status,
		LoyaltyDiscount: d.loyaltyDiscount,
		AttachedPromo:   d.attachedPromo,
		Billing:         d.billing,
		CreatedAt:       d.createdAt,
		UpdatedAt:       d.updatedAt,
		ExpiresAt:       d.expiresAt,
	}
}

func (d *Draft) ID() uuid.UUID                         { return d.id }
func (d *Draft) UserID() uuid.UUID                     { return d.userID }
func (d *Draft) BookingID() *uuid.UUID                 { return cloneID(d.bookingID) }
func (d *Draft) EventDate() time.Time                  { return d.eventDate }
func (d *Draft) GuestCount() int                       { return d.guestCount }
func (d *Draft) VenueID() uuid.UUID                    { return d.venueID }
func (d *Draft) CateringID() *uuid.UUID                { return cloneID(d.cateringID) }
func (d *Draft) DecorationID() *uuid.UUID              { return cloneID(d.decorationID) }
func (d *Draft) PromoID() *uuid.UUID                   { return cloneID(d.promoID) }
func (d *Draft) CarIDs() []uuid.UUID                   { return slices.Clone(d.carIDs) }
func (d *Draft) PaymentMethod() PaymentMethod          { return d.paymentMethod }
func (d *Draft) Status() Status                        { return d.status }
func (d *Draft) LoyaltyDiscount() float64              { return d.loyaltyDiscount }
func (d *Draft) AttachedPromo() *pricing.AttachedPromo { return d.attachedPromo }
func (d *Draft) Billing() pricing.Billing              { return d.billing }
func (d *Draft) Snapshot() *catalog.Snapshot           { return d.snapshot }
func (d *Draft) CreatedAt() time.Time                  { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time                  { return d.updatedAt }
func (d *Draft) ExpiresAt() time.Time                  { return d.expiresAt }

func (d *Draft) selection() pricing.Selection {
	return pricing.Selection{
		VenueID:       d.venueID,
		DecorationID:  d.decorationID,
		CateringID:    d.cateringID,
		CarIDs:        d.carIDs,
		GuestCount:    d.guestCount,
		PromoID:       d.promoID,
		AttachedPromo: d.attachedPromo,
	}
}

func (d *Draft) promoSelectable(id uuid.UUID) bool {
	if d.attachedPromo != nil && d.attachedPromo.ID == id {
		return true
	}
	p, ok := d.snapshot.Promo(id)
	return ok && p.IsSelectableAt(d.services.Clock.Now())
}

func (d *Draft) recalculate() {
	d.Reprice(d.services.Clock.Now())
}

func (d *Draft) changed() {
	d.recalculate()
	d.touch()
}

func (d *Draft) touch() {
	d.updatedAt = d.services.Clock.Now()
}

// attachedDiscount prefers the promo's own fraction; when the promo is gone
// from the catalog it falls back to what was paid minus the loyalty share.
func attachedDiscount(promoID uuid.UUID, paid pricing.Billing, snapshot *catalog.Snapshot, loyalty float64) float64 {
	if p, ok := snapshot.Promo(promoID); ok {
		return p.Discount
	}
	return pricing.PromoShare(paid.DiscountPercentage, loyalty)
}

func orEmpty(s *catalog.Snapshot) *catalog.Snapshot {
	if s == nil {
		return catalog.EmptySnapshot()
	}
	return s
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
