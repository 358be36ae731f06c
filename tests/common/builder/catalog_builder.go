//go:build unit || e2e

package builder

import (
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

type CatalogBuilder struct {
	Venues      []catalog.Venue
	Caterings   []catalog.Catering
	Dishes      []catalog.Dish
	Decorations []catalog.Decoration
	Cars        []catalog.Car
	Promos      []catalog.Promo
	LoadedAt    time.Time
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		LoadedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CatalogBuilder) BuildData() catalog.SnapshotData {
	return catalog.SnapshotData{
		Venues:      b.Venues,
		Caterings:   b.Caterings,
		Dishes:      b.Dishes,
		Decorations: b.Decorations,
		Cars:        b.Cars,
		Promos:      b.Promos,
		LoadedAt:    b.LoadedAt,
	}
}

func (b *CatalogBuilder) BuildSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot(b.BuildData())
}

// Fluent builder methods
func (b *CatalogBuilder) AddVenues(v ...catalog.Venue) *CatalogBuilder {
	b.Venues = append(b.Venues, v...)
	return b
}

func (b *CatalogBuilder) AddCaterings(c ...catalog.Catering) *CatalogBuilder {
	b.Caterings = append(b.Caterings, c...)
	return b
}

func (b *CatalogBuilder) AddDishes(d ...catalog.Dish) *CatalogBuilder {
	b.Dishes = append(b.Dishes, d...)
	return b
}

func (b *CatalogBuilder) AddDecorations(d ...catalog.Decoration) *CatalogBuilder {
	b.Decorations = append(b.Decorations, d...)
	return b
}

func (b *CatalogBuilder) AddCars(c ...catalog.Car) *CatalogBuilder {
	b.Cars = append(b.Cars, c...)
	return b
}

func (b *CatalogBuilder) AddPromos(p ...catalog.Promo) *CatalogBuilder {
	b.Promos = append(b.Promos, p...)
	return b
}

// Entry factories
func Venue(pricePerDay int64) catalog.Venue {
	return catalog.Venue{
		ID:          uuid.New(),
		Name:        fake.Company().Name() + " Marquee",
		Address:     fake.Address().Address(),
		Capacity:    fake.IntBetween(100, 800),
		PricePerDay: pricePerDay,
	}
}

func Decoration(price int64) catalog.Decoration {
	return catalog.Decoration{
		ID:    uuid.New(),
		Name:  fake.Lorem().Word() + " theme",
		Price: price,
	}
}

func Car(rentalPrice int64) catalog.Car {
	return catalog.Car{
		ID:          uuid.New(),
		Make:        fake.Lorem().Word(),
		Model:       fake.Lorem().Word(),
		Year:        fake.IntBetween(2015, 2026),
		RentalPrice: rentalPrice,
		Quantity:    fake.IntBetween(1, 5),
	}
}

func Dish(costPerServing int64) catalog.Dish {
	return catalog.Dish{
		ID:             uuid.New(),
		Name:           fake.Lorem().Word(),
		Type:           catalog.DishTypeMain,
		CostPerServing: costPerServing,
	}
}

func Catering(dishes ...catalog.Dish) catalog.Catering {
	ids := make([]uuid.UUID, 0, len(dishes))
	for _, d := range dishes {
		ids = append(ids, d.ID)
	}
	return catalog.Catering{
		ID:          uuid.New(),
		Name:        fake.Person().LastName() + " Caterers",
		MenuDishIDs: ids,
	}
}

func Promo(discount float64, expiry time.Time) catalog.Promo {
	return catalog.Promo{
		ID:       uuid.New(),
		Name:     fake.Lorem().Word(),
		Discount: discount,
		Expiry:   expiry,
	}
}
