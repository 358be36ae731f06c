package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LoyaltyDiscountRate = 0.05
	MinGuestCount       = 1
)

// AttachedPromo is the promo stored on a booking being edited. Its discount is
// kept even after the promo expires, as long as the selection still points at it.
type AttachedPromo struct {
	ID       uuid.UUID `json:"id"`
	Discount float64   `json:"discount"`
}

type Selection struct {
	VenueID       uuid.UUID
	DecorationID  *uuid.UUID
	CateringID    *uuid.UUID
	CarIDs        []uuid.UUID
	GuestCount    int
	PromoID       *uuid.UUID
	AttachedPromo *AttachedPromo
}

type Billing struct {
	TotalCost          int64   `json:"total_amount"`
	DiscountPercentage float64 `json:"discount"`
	CostAfterDiscount  int64   `json:"amount_payed"`
}

// LoyaltyDiscountFor returns the repeat-customer bonus for a user with the
// given number of bookings already on record.
func LoyaltyDiscountFor(bookingsOnRecord int) float64 {
	if bookingsOnRecord >= 1 {
		return LoyaltyDiscountRate
	}
	return 0
}

// ClampDiscount bounds a combined discount fraction to [0, 1].
func ClampDiscount(d float64) float64 {
	return clamp(decimal.NewFromFloat(d)).InexactFloat64()
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return d
}

// applyDiscount computes ceil(total × (1 − d)) in exact decimal arithmetic so
// 1200 × 0.9 yields 1080, not 1081.
func applyDiscount(total int64, d decimal.Decimal) int64 {
	factor := decimal.NewFromInt(1).Sub(clamp(d))
	return decimal.NewFromInt(total).Mul(factor).Ceil().IntPart()
}

// PromoShare recovers the promo part of a combined discount that was stored
// together with the loyalty bonus.
func PromoShare(combined, loyaltyDiscount float64) float64 {
	d := decimal.NewFromFloat(combined).Sub(decimal.NewFromFloat(loyaltyDiscount))
	return clamp(d).InexactFloat64()
}
