package pricing

import (
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Calculator interface {
	Calculate(sel Selection, snapshot *catalog.Snapshot, loyaltyDiscount float64, at time.Time) Billing
}

// DefaultCalculator derives the billing summary of a draft. It never fails:
// ids that resolve to nothing in the snapshot contribute zero.
type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (c *DefaultCalculator) Calculate(sel Selection, snapshot *catalog.Snapshot, loyaltyDiscount float64, at time.Time) Billing {
	if snapshot == nil {
		snapshot = catalog.EmptySnapshot()
	}

	total := c.TotalCost(sel, snapshot)

	discount := clamp(c.promoDiscount(sel, snapshot, at).Add(decimal.NewFromFloat(loyaltyDiscount)))

	return Billing{
		TotalCost:          total,
		DiscountPercentage: discount.InexactFloat64(),
		CostAfterDiscount:  applyDiscount(total, discount),
	}
}

func (c *DefaultCalculator) TotalCost(sel Selection, snapshot *catalog.Snapshot) int64 {
	var total int64

	if v, ok := snapshot.Venue(sel.VenueID); ok {
		total += nonNegative(v.PricePerDay)
	}

	if sel.DecorationID != nil {
		if d, ok := snapshot.Decoration(*sel.DecorationID); ok {
			total += nonNegative(d.Price)
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(sel.CarIDs))
	for _, id := range sel.CarIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if car, ok := snapshot.Car(id); ok {
			total += nonNegative(car.RentalPrice)
		}
	}

	if sel.CateringID != nil {
		var perServing int64
		for _, dish := range snapshot.CateringDishes(*sel.CateringID) {
			perServing += nonNegative(dish.CostPerServing)
		}
		total += perServing * int64(max(sel.GuestCount, MinGuestCount))
	}

	return total
}

func (c *DefaultCalculator) promoDiscount(sel Selection, snapshot *catalog.Snapshot, at time.Time) decimal.Decimal {
	if sel.PromoID == nil {
		return decimal.Zero
	}

	if promo, ok := snapshot.Promo(*sel.PromoID); ok && promo.IsSelectableAt(at) {
		return decimal.NewFromFloat(promo.Discount)
	}

	if attached := sel.AttachedPromo; attached != nil && attached.ID == *sel.PromoID {
		return decimal.NewFromFloat(attached.Discount)
	}

	return decimal.Zero
}

// The marketplace rejects negative prices; a bad row must not lower the total.
func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
