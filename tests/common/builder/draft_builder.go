//go:build unit || e2e

package builder

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/pkg/clock"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	UserID    uuid.UUID
	Catalog   *CatalogBuilder
	Clock     *clock.MockClock
	Loyalty   float64
	TTL       time.Duration
	Existing  *booking.ExistingBooking
	EventDate time.Time
	Guests    int
	VenueID   uuid.UUID
	Method    booking.PaymentMethod
}

func NewDraftBuilder() *DraftBuilder {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	return &DraftBuilder{
		UserID:    uuid.New(),
		Catalog:   NewCatalogBuilder(),
		Clock:     clock.NewMockClock(now),
		TTL:       2 * time.Hour,
		EventDate: now.AddDate(0, 2, 0),
		Guests:    150,
		Method:    booking.PaymentMethodCreditCard,
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DraftBuilder) Services() *booking.Services {
	return booking.NewServices(b.Clock, pricing.NewDefaultCalculator())
}

func (b *DraftBuilder) Snapshot() *catalog.Snapshot {
	return b.Catalog.BuildSnapshot()
}

// BuildDomain returns a blank draft, or an edit draft when Existing is set.
func (b *DraftBuilder) BuildDomain() *booking.Draft {
	if b.Existing != nil {
		return booking.NewDraftFromBooking(b.Services(), *b.Existing, b.Snapshot(), b.Loyalty, b.TTL)
	}
	return booking.NewDraft(b.Services(), b.UserID, b.Snapshot(), b.Loyalty, b.TTL)
}

// BuildFilled returns a draft that passes Validate.
func (b *DraftBuilder) BuildFilled() *booking.Draft {
	d := b.BuildDomain()
	d.SetVenue(b.VenueID)
	_ = d.SetGuestCount(b.Guests)
	d.SetEventDate(b.EventDate)
	_ = d.SetPaymentMethod(b.Method)
	return d
}

// Fluent builder methods
func (b *DraftBuilder) WithVenue(v catalog.Venue) *DraftBuilder {
	b.Catalog.AddVenues(v)
	b.VenueID = v.ID
	return b
}

func (b *DraftBuilder) WithLoyalty(d float64) *DraftBuilder {
	b.Loyalty = d
	return b
}

func (b *DraftBuilder) WithExisting(e booking.ExistingBooking) *DraftBuilder {
	e.UserID = b.UserID
	b.Existing = &e
	return b
}

func (b *DraftBuilder) WithGuests(n int) *DraftBuilder {
	b.Guests = n
	return b
}

func (b *DraftBuilder) WithEventDate(t time.Time) *DraftBuilder {
	b.EventDate = t
	return b
}
