package cli

import (
	"fmt"
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// catalogFile is the on-disk catalog layout. YAML and JSON both work; the
// format follows the file extension.
type catalogFile struct {
	Venues []struct {
		ID          uuid.UUID `mapstructure:"id"`
		Name        string    `mapstructure:"name"`
		Capacity    int       `mapstructure:"capacity"`
		PricePerDay int64     `mapstructure:"price_per_day"`
	} `mapstructure:"venues"`
	Caterings []struct {
		ID     uuid.UUID   `mapstructure:"id"`
		Name   string      `mapstructure:"name"`
		Dishes []uuid.UUID `mapstructure:"dishes"`
	} `mapstructure:"caterings"`
	Dishes []struct {
		ID             uuid.UUID `mapstructure:"id"`
		Name           string    `mapstructure:"name"`
		Type           string    `mapstructure:"type"`
		CostPerServing int64     `mapstructure:"cost_per_serving"`
	} `mapstructure:"dishes"`
	Decorations []struct {
		ID    uuid.UUID `mapstructure:"id"`
		Name  string    `mapstructure:"name"`
		Price int64     `mapstructure:"price"`
	} `mapstructure:"decorations"`
	Cars []struct {
		ID          uuid.UUID `mapstructure:"id"`
		Make        string    `mapstructure:"make"`
		Model       string    `mapstructure:"model"`
		RentalPrice int64     `mapstructure:"rental_price"`
	} `mapstructure:"cars"`
	Promos []struct {
		ID       uuid.UUID `mapstructure:"id"`
		Name     string    `mapstructure:"name"`
		Discount float64   `mapstructure:"discount"`
		Expiry   time.Time `mapstructure:"expiry"`
	} `mapstructure:"promos"`
}

func loadCatalogFile(path string, loadedAt time.Time) (*catalog.Snapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
	))
	if err := v.Unmarshal(&f, hook); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	data := catalog.SnapshotData{LoadedAt: loadedAt}
	for _, x := range f.Venues {
		data.Venues = append(data.Venues, catalog.Venue{ID: x.ID, Name: x.Name, Capacity: x.Capacity, PricePerDay: x.PricePerDay})
	}
	for _, x := range f.Caterings {
		data.Caterings = append(data.Caterings, catalog.Catering{ID: x.ID, Name: x.Name, MenuDishIDs: x.Dishes})
	}
	for _, x := range f.Dishes {
		data.Dishes = append(data.Dishes, catalog.Dish{ID: x.ID, Name: x.Name, Type: catalog.DishType(x.Type), CostPerServing: x.CostPerServing})
	}
	for _, x := range f.Decorations {
		data.Decorations = append(data.Decorations, catalog.Decoration{ID: x.ID, Name: x.Name, Price: x.Price})
	}
	for _, x := range f.Cars {
		data.Cars = append(data.Cars, catalog.Car{ID: x.ID, Make: x.Make, Model: x.Model, RentalPrice: x.RentalPrice})
	}
	for _, x := range f.Promos {
		data.Promos = append(data.Promos, catalog.Promo{ID: x.ID, Name: x.Name, Discount: x.Discount, Expiry: x.Expiry.UTC()})
	}
	return catalog.NewSnapshot(data), nil
}
