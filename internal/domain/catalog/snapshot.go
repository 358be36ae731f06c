package catalog

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the set of catalogs loaded once when a booking form opens.
// It is never refreshed or mutated while the form is open.
type Snapshot struct {
	data SnapshotData

	venues      map[uuid.UUID]Venue
	decorations map[uuid.UUID]Decoration
	cars        map[uuid.UUID]Car
	dishes      map[uuid.UUID]Dish
	caterings   map[uuid.UUID]Catering
	promos      map[uuid.UUID]Promo
}

// SnapshotData is the serializable form of a Snapshot.
type SnapshotData struct {
	Venues      []Venue      `json:"venues"`
	Caterings   []Catering   `json:"caterings"`
	Dishes      []Dish       `json:"dishes"`
	Decorations []Decoration `json:"decorations"`
	Cars        []Car        `json:"cars"`
	Promos      []Promo      `json:"promos"`
	LoadedAt    time.Time    `json:"loaded_at"`
}

type PromoOption struct {
	Promo      Promo
	Expired    bool
	Selectable bool
}

func NewSnapshot(data SnapshotData) *Snapshot {
	s := &Snapshot{
		data: SnapshotData{
			Venues:      slices.Clone(data.Venues),
			Caterings:   cloneCaterings(data.Caterings),
			Dishes:      slices.Clone(data.Dishes),
			Decorations: slices.Clone(data.Decorations),
			Cars:        slices.Clone(data.Cars),
			Promos:      slices.Clone(data.Promos),
			LoadedAt:    data.LoadedAt,
		},
	}
	s.venues = index(s.data.Venues, func(v Venue) uuid.UUID { return v.ID })
	s.decorations = index(s.data.Decorations, func(d Decoration) uuid.UUID { return d.ID })
	s.cars = index(s.data.Cars, func(c Car) uuid.UUID { return c.ID })
	s.dishes = index(s.data.Dishes, func(d Dish) uuid.UUID { return d.ID })
	s.caterings = index(s.data.Caterings, func(c Catering) uuid.UUID { return c.ID })
	s.promos = index(s.data.Promos, func(p Promo) uuid.UUID { return p.ID })
	return s
}

func EmptySnapshot() *Snapshot {
	return NewSnapshot(SnapshotData{})
}

func (s *Snapshot) Venue(id uuid.UUID) (Venue, bool) {
	v, ok := s.venues[id]
	return v, ok
}

func (s *Snapshot) Decoration(id uuid.UUID) (Decoration, bool) {
	d, ok := s.decorations[id]
	return d, ok
}

func (s *Snapshot) Car(id uuid.UUID) (Car, bool) {
	c, ok := s.cars[id]
	return c, ok
}

func (s *Snapshot) Dish(id uuid.UUID) (Dish, bool) {
	d, ok := s.dishes[id]
	return d, ok
}

func (s *Snapshot) Catering(id uuid.UUID) (Catering, bool) {
	c, ok := s.caterings[id]
	return c, ok
}

func (s *Snapshot) Promo(id uuid.UUID) (Promo, bool) {
	p, ok := s.promos[id]
	return p, ok
}

// CateringDishes resolves the menu items of a catering plan. Dish ids missing
// from the dish catalog are skipped.
func (s *Snapshot) CateringDishes(cateringID uuid.UUID) []Dish {
	c, ok := s.caterings[cateringID]
	if !ok {
		return nil
	}
	dishes := make([]Dish, 0, len(c.MenuDishIDs))
	for _, id := range c.MenuDishIDs {
		if d, ok := s.dishes[id]; ok {
			dishes = append(dishes, d)
		}
	}
	return dishes
}

func (s *Snapshot) PromoOptions(now time.Time) []PromoOption {
	options := make([]PromoOption, 0, len(s.data.Promos))
	for _, p := range s.data.Promos {
		expired := p.IsExpiredAt(now)
		options = append(options, PromoOption{
			Promo:      p,
			Expired:    expired,
			Selectable: !expired,
		})
	}
	return options
}

func (s *Snapshot) Venues() []Venue           { return slices.Clone(s.data.Venues) }
func (s *Snapshot) Caterings() []Catering     { return cloneCaterings(s.data.Caterings) }
func (s *Snapshot) Dishes() []Dish            { return slices.Clone(s.data.Dishes) }
func (s *Snapshot) Decorations() []Decoration { return slices.Clone(s.data.Decorations) }
func (s *Snapshot) Cars() []Car               { return slices.Clone(s.data.Cars) }
func (s *Snapshot) Promos() []Promo           { return slices.Clone(s.data.Promos) }
func (s *Snapshot) LoadedAt() time.Time       { return s.data.LoadedAt }

// Data returns a copy suitable for persistence.
func (s *Snapshot) Data() SnapshotData {
	return SnapshotData{
		Venues:      s.Venues(),
		Caterings:   s.Caterings(),
		Dishes:      s.Dishes(),
		Decorations: s.Decorations(),
		Cars:        s.Cars(),
		Promos:      s.Promos(),
		LoadedAt:    s.data.LoadedAt,
	}
}

func index[T any](items []T, key func(T) uuid.UUID) map[uuid.UUID]T {
	m := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		m[key(item)] = item
	}
	return m
}

func cloneCaterings(in []Catering) []Catering {
	if in == nil {
		return nil
	}
	out := make([]Catering, len(in))
	for i, c := range in {
		c.MenuDishIDs = slices.Clone(c.MenuDishIDs)
		out[i] = c
	}
	return out
}
