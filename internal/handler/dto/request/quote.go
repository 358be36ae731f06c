package request

import (
	"wedding-console/internal/domain/pricing"

	"github.com/google/uuid"
)

// QuoteRequest prices a selection without opening a form.
type QuoteRequest struct {
	VenueID      uuid.UUID   `json:"venue_id" binding:"required"`
	CateringID   *uuid.UUID  `json:"catering_id,omitempty"`
	DecorationID *uuid.UUID  `json:"decoration_id,omitempty"`
	PromoID      *uuid.UUID  `json:"promo_id,omitempty"`
	CarIDs       []uuid.UUID `json:"car_ids,omitempty"`
	GuestCount   int         `json:"guest_count" binding:"required,min=1"`
}

func (r QuoteRequest) ToSelection() pricing.Selection {
	return pricing.Selection{
		VenueID:      r.VenueID,
		CateringID:   r.CateringID,
		DecorationID: r.DecorationID,
		PromoID:      r.PromoID,
		CarIDs:       r.CarIDs,
		GuestCount:   r.GuestCount,
	}
}
