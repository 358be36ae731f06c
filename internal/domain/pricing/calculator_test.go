//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func idPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestCalculate_Examples(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("venue + decoration with a 10% promo", func(t *testing.T) {
		venue := builder.Venue(1000)
		decoration := builder.Decoration(200)
		promo := builder.Promo(0.1, now.Add(24*time.Hour))
		snap := builder.NewCatalogBuilder().
			AddVenues(venue).
			AddDecorations(decoration).
			AddPromos(promo).
			BuildSnapshot()

		actual := calc.Calculate(pricing.Selection{
			VenueID:      venue.ID,
			DecorationID: idPtr(decoration.ID),
			GuestCount:   1,
			PromoID:      idPtr(promo.ID),
		}, snap, 0, now)

		expected := pricing.Billing{TotalCost: 1200, DiscountPercentage: 0.1, CostAfterDiscount: 1080}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Billing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("venue + car + catering with loyalty discount rounds up", func(t *testing.T) {
		venue := builder.Venue(500)
		car := builder.Car(150)
		starter := builder.Dish(20)
		main := builder.Dish(30)
		catering := builder.Catering(starter, main)
		snap := builder.NewCatalogBuilder().
			AddVenues(venue).
			AddCars(car).
			AddDishes(starter, main).
			AddCaterings(catering).
			BuildSnapshot()

		actual := calc.Calculate(pricing.Selection{
			VenueID:    venue.ID,
			CarIDs:     []uuid.UUID{car.ID},
			CateringID: idPtr(catering.ID),
			GuestCount: 4,
		}, snap, pricing.LoyaltyDiscountRate, now)

		expected := pricing.Billing{TotalCost: 850, DiscountPercentage: 0.05, CostAfterDiscount: 808}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Billing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unmatched decoration contributes nothing", func(t *testing.T) {
		venue := builder.Venue(700)
		snap := builder.NewCatalogBuilder().AddVenues(venue).BuildSnapshot()

		actual := calc.Calculate(pricing.Selection{
			VenueID:      venue.ID,
			DecorationID: idPtr(uuid.New()),
			GuestCount:   10,
		}, snap, 0, now)

		assert.Equal(t, int64(700), actual.TotalCost)
		assert.Equal(t, int64(700), actual.CostAfterDiscount)
	})

	t.Run("expired promo contributes nothing", func(t *testing.T) {
		venue := builder.Venue(1000)
		expired := builder.Promo(0.3, now.Add(-time.Hour))
		snap := builder.NewCatalogBuilder().AddVenues(venue).AddPromos(expired).BuildSnapshot()

		actual := calc.Calculate(pricing.Selection{
			VenueID:    venue.ID,
			GuestCount: 1,
			PromoID:    idPtr(expired.ID),
		}, snap, 0, now)

		assert.Equal(t, 0.0, actual.DiscountPercentage)
		assert.Equal(t, int64(1000), actual.CostAfterDiscount)
	})

	t.Run("promo expiring exactly now is already expired", func(t *testing.T) {
		venue := builder.Venue(1000)
		promo := builder.Promo(0.2, now)
		snap := builder.NewCatalogBuilder().AddVenues(venue).AddPromos(promo).BuildSnapshot()

		actual := calc.Calculate(pricing.Selection{VenueID: venue.ID, GuestCount: 1, PromoID: idPtr(promo.ID)}, snap, 0, now)

		assert.Equal(t, int64(1000), actual.CostAfterDiscount)
	})
}

func TestCalculate_AttachedPromo(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	venue := builder.Venue(1000)
	expired := builder.Promo(0.2, now.Add(-48*time.Hour))
	snap := builder.NewCatalogBuilder().AddVenues(venue).AddPromos(expired).BuildSnapshot()

	t.Run("expired promo already on the booking keeps its discount", func(t *testing.T) {
		actual := calc.Calculate(pricing.Selection{
			VenueID:       venue.ID,
			GuestCount:    1,
			PromoID:       idPtr(expired.ID),
			AttachedPromo: &pricing.AttachedPromo{ID: expired.ID, Discount: 0.2},
		}, snap, 0, now)

		assert.Equal(t, 0.2, actual.DiscountPercentage)
		assert.Equal(t, int64(800), actual.CostAfterDiscount)
	})

	t.Run("attached promo does not apply once another promo is selected", func(t *testing.T) {
		actual := calc.Calculate(pricing.Selection{
			VenueID:       venue.ID,
			GuestCount:    1,
			PromoID:       idPtr(uuid.New()),
			AttachedPromo: &pricing.AttachedPromo{ID: expired.ID, Discount: 0.2},
		}, snap, 0, now)

		assert.Equal(t, int64(1000), actual.CostAfterDiscount)
	})

	t.Run("attached promo still applies after removal from the catalog", func(t *testing.T) {
		gone := uuid.New()
		actual := calc.Calculate(pricing.Selection{
			VenueID:       venue.ID,
			GuestCount:    1,
			PromoID:       idPtr(gone),
			AttachedPromo: &pricing.AttachedPromo{ID: gone, Discount: 0.1},
		}, snap, 0.05, now)

		assert.InDelta(t, 0.15, actual.DiscountPercentage, 1e-9)
		assert.Equal(t, int64(850), actual.CostAfterDiscount)
	})
}

func TestCalculate_Properties(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	venue := builder.Venue(1500)
	decoration := builder.Decoration(320)
	cars := []catalog.Car{builder.Car(99), builder.Car(250), builder.Car(0)}
	dishes := []catalog.Dish{builder.Dish(15), builder.Dish(27), builder.Dish(8)}
	catering := builder.Catering(dishes...)
	bigPromo := builder.Promo(0.99, now.Add(time.Hour))
	snap := builder.NewCatalogBuilder().
		AddVenues(venue).
		AddDecorations(decoration).
		AddCars(cars...).
		AddDishes(dishes...).
		AddCaterings(catering).
		AddPromos(bigPromo).
		BuildSnapshot()

	base := pricing.Selection{
		VenueID:      venue.ID,
		DecorationID: idPtr(decoration.ID),
		CateringID:   idPtr(catering.ID),
		GuestCount:   37,
	}

	t.Run("same inputs give identical output", func(t *testing.T) {
		first := calc.Calculate(base, snap, 0.05, now)
		second := calc.Calculate(base, snap, 0.05, now)
		assert.Equal(t, first, second)
	})

	t.Run("adding a resolvable car never lowers the total", func(t *testing.T) {
		sel := base
		prev := calc.Calculate(sel, snap, 0, now).TotalCost
		for _, car := range cars {
			sel.CarIDs = append(sel.CarIDs, car.ID)
			next := calc.Calculate(sel, snap, 0, now).TotalCost
			assert.GreaterOrEqual(t, next, prev)
			prev = next
		}
	})

	t.Run("a car listed twice is charged once", func(t *testing.T) {
		once := base
		once.CarIDs = []uuid.UUID{cars[1].ID}
		twice := base
		twice.CarIDs = []uuid.UUID{cars[1].ID, cars[1].ID}

		assert.Equal(t,
			calc.Calculate(once, snap, 0, now).TotalCost,
			calc.Calculate(twice, snap, 0, now).TotalCost)
	})

	t.Run("amount due stays within [0, total] for every discount", func(t *testing.T) {
		for _, loyalty := range []float64{-0.5, 0, 0.05, 0.5, 0.95, 1, 3} {
			b := calc.Calculate(base, snap, loyalty, now)
			assert.GreaterOrEqual(t, b.TotalCost, int64(0))
			assert.GreaterOrEqual(t, b.CostAfterDiscount, int64(0))
			assert.LessOrEqual(t, b.CostAfterDiscount, b.TotalCost)
			assert.GreaterOrEqual(t, b.DiscountPercentage, 0.0)
			assert.LessOrEqual(t, b.DiscountPercentage, 1.0)
		}
	})

	t.Run("promo + loyalty above 100% is clamped to zero due", func(t *testing.T) {
		sel := base
		sel.PromoID = idPtr(bigPromo.ID)

		b := calc.Calculate(sel, snap, pricing.LoyaltyDiscountRate, now)

		assert.Equal(t, 1.0, b.DiscountPercentage)
		assert.Equal(t, int64(0), b.CostAfterDiscount)
	})

	t.Run("dish cost scales with guest count", func(t *testing.T) {
		one := base
		one.GuestCount = 1
		two := base
		two.GuestCount = 2

		diff := calc.Calculate(two, snap, 0, now).TotalCost - calc.Calculate(one, snap, 0, now).TotalCost
		assert.Equal(t, int64(15+27+8), diff)
	})

	t.Run("nil snapshot yields an all-zero bill", func(t *testing.T) {
		b := calc.Calculate(base, nil, 0.05, now)
		assert.Equal(t, int64(0), b.TotalCost)
		assert.Equal(t, int64(0), b.CostAfterDiscount)
	})
}

func TestCalculate_CateringMenu(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	linked := builder.Dish(40)
	unlinked := builder.Dish(1000)
	catering := builder.Catering(linked)
	catering.MenuDishIDs = append(catering.MenuDishIDs, uuid.New()) // dish missing from the catalog

	snap := builder.NewCatalogBuilder().
		AddDishes(linked, unlinked).
		AddCaterings(catering).
		BuildSnapshot()

	b := calc.Calculate(pricing.Selection{CateringID: idPtr(catering.ID), GuestCount: 3}, snap, 0, now)

	require.Equal(t, int64(120), b.TotalCost)
}

func TestLoyaltyDiscountFor(t *testing.T) {
	cases := []struct {
		name     string
		bookings int
		want     float64
	}{
		{name: "初回予約は割引なし", bookings: 0, want: 0},
		{name: "予約1件でリピーター割引", bookings: 1, want: 0.05},
		{name: "予約多数でも割引は5%", bookings: 12, want: 0.05},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, pricing.LoyaltyDiscountFor(c.bookings))
		})
	}
}

func TestClampDiscount(t *testing.T) {
	assert.Equal(t, 0.0, pricing.ClampDiscount(-0.2))
	assert.Equal(t, 0.35, pricing.ClampDiscount(0.35))
	assert.Equal(t, 1.0, pricing.ClampDiscount(1.04))
}
