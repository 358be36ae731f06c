package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPromoName     = errors.New("promo name is required")
	ErrInvalidPromoDiscount = errors.New("promo discount must be between 0.01 and 0.99")
	ErrPromoExpiryNotFuture = errors.New("promo expiry must be in the future")
)

const (
	MinPromoDiscount = 0.01
	MaxPromoDiscount = 0.99
)

// Catalog entries are reference data owned by the marketplace; prices are whole currency units.

type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Capacity    int       `json:"capacity"`
	PricePerDay int64     `json:"price_per_day"`
}

type Decoration struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type Car struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	RentalPrice int64     `json:"rental_price"`
	Quantity    int       `json:"quantity"`
}

type Dish struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Type           DishType  `json:"type"`
	CostPerServing int64     `json:"cost_per_serving"`
}

// MenuDishIDs mirrors the catering menu-item association.
type Catering struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	MenuDishIDs []uuid.UUID `json:"menu_item_dish_ids"`
}

type Promo struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Discount float64   `json:"discount_fraction"`
	Expiry   time.Time `json:"expiry_instant"`
}

// NewPromo validates an admin-created promo before it is sent to the marketplace.
func NewPromo(name string, discount float64, expiry, now time.Time) (Promo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Promo{}, ErrInvalidPromoName
	}
	if discount < MinPromoDiscount || discount > MaxPromoDiscount {
		return Promo{}, ErrInvalidPromoDiscount
	}
	if !expiry.After(now) {
		return Promo{}, ErrPromoExpiryNotFuture
	}
	return Promo{
		Name:     name,
		Discount: discount,
		Expiry:   expiry,
	}, nil
}

// Expiry equal to t already counts as expired.
func (p Promo) IsExpiredAt(t time.Time) bool {
	return !t.Before(p.Expiry)
}

func (p Promo) IsSelectableAt(t time.Time) bool {
	return !p.IsExpiredAt(t)
}
