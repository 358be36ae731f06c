package catalog

import "errors"

var ErrInvalidDishType = errors.New("invalid dish type")

type DishType string

const (
	DishTypeStarter DishType = "starter"
	DishTypeMain    DishType = "main"
	DishTypeDessert DishType = "dessert"
)

func NewDishType(s string) (DishType, error) {
	switch DishType(s) {
	case DishTypeStarter, DishTypeMain, DishTypeDessert:
		return DishType(s), nil
	default:
		return "", ErrInvalidDishType
	}
}

func (t DishType) String() string {
	return string(t)
}

// ItemKind names a catalog an admin can remove entries from. Promos have
// their own lifecycle.
type ItemKind string

const (
	ItemVenue      ItemKind = "venue"
	ItemCatering   ItemKind = "catering"
	ItemDish       ItemKind = "dish"
	ItemDecoration ItemKind = "decoration"
	ItemCar        ItemKind = "car"
)

func (k ItemKind) String() string {
	return string(k)
}
