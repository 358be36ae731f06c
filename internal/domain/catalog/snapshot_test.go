//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Lookups(t *testing.T) {
	venue := builder.Venue(900)
	dish := builder.Dish(25)
	catering := builder.Catering(dish)
	catering.MenuDishIDs = append(catering.MenuDishIDs, uuid.New())

	snap := builder.NewCatalogBuilder().
		AddVenues(venue).
		AddDishes(dish).
		AddCaterings(catering).
		BuildSnapshot()

	got, ok := snap.Venue(venue.ID)
	require.True(t, ok)
	assert.Equal(t, venue, got)

	_, ok = snap.Venue(uuid.New())
	assert.False(t, ok)

	dishes := snap.CateringDishes(catering.ID)
	require.Len(t, dishes, 1)
	assert.Equal(t, dish.ID, dishes[0].ID)

	assert.Nil(t, snap.CateringDishes(uuid.New()))
}

func TestSnapshot_IsImmutable(t *testing.T) {
	dish := builder.Dish(10)
	data := builder.NewCatalogBuilder().
		AddDishes(dish).
		AddCaterings(builder.Catering(dish)).
		BuildData()

	snap := catalog.NewSnapshot(data)

	data.Dishes[0].CostPerServing = 999
	data.Caterings[0].MenuDishIDs[0] = uuid.New()

	got, ok := snap.Dish(dish.ID)
	require.True(t, ok)
	assert.Equal(t, int64(10), got.CostPerServing)
	assert.Len(t, snap.CateringDishes(data.Caterings[0].ID), 1)

	listed := snap.Caterings()
	listed[0].MenuDishIDs[0] = uuid.New()
	assert.Len(t, snap.CateringDishes(data.Caterings[0].ID), 1)
}

func TestSnapshot_PromoOptions(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	active := builder.Promo(0.1, now.Add(time.Hour))
	expiresNow := builder.Promo(0.2, now)
	old := builder.Promo(0.3, now.Add(-time.Hour))

	snap := builder.NewCatalogBuilder().AddPromos(active, expiresNow, old).BuildSnapshot()
	options := snap.PromoOptions(now)

	require.Len(t, options, 3)
	assert.True(t, options[0].Selectable)
	assert.False(t, options[0].Expired)
	assert.True(t, options[1].Expired)
	assert.False(t, options[1].Selectable)
	assert.True(t, options[2].Expired)
}

func TestNewPromo(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		promo    string
		discount float64
		expiry   time.Time
		wantErr  error
	}{
		{name: "正常系", promo: "WINTER10", discount: 0.1, expiry: now.Add(24 * time.Hour)},
		{name: "名前が空", promo: "  ", discount: 0.1, expiry: now.Add(time.Hour), wantErr: catalog.ErrInvalidPromoName},
		{name: "割引率が下限未満", promo: "X", discount: 0.001, expiry: now.Add(time.Hour), wantErr: catalog.ErrInvalidPromoDiscount},
		{name: "割引率が上限超過", promo: "X", discount: 1, expiry: now.Add(time.Hour), wantErr: catalog.ErrInvalidPromoDiscount},
		{name: "有効期限が過去", promo: "X", discount: 0.5, expiry: now, wantErr: catalog.ErrPromoExpiryNotFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := catalog.NewPromo(tt.promo, tt.discount, tt.expiry, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.promo, p.Name)
			assert.True(t, p.IsSelectableAt(now))
		})
	}
}
