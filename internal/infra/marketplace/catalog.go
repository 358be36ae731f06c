package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

func list[W any, T any](ctx context.Context, c *Client, path string, conv func(W) T) ([]T, error) {
	var rows []W
	if _, err := c.do(ctx, request{method: http.MethodGet, path: path}, &rows); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out, nil
}

func (c *Client) ListVenues(ctx context.Context) ([]catalog.Venue, error) {
	return list(ctx, c, "/venues/", venueWire.toDomain)
}

func (c *Client) ListCaterings(ctx context.Context) ([]catalog.Catering, error) {
	return list(ctx, c, "/caterings/", cateringWire.toDomain)
}

func (c *Client) ListDishes(ctx context.Context) ([]catalog.Dish, error) {
	return list(ctx, c, "/caterings/dishes", dishWire.toDomain)
}

func (c *Client) ListDecorations(ctx context.Context) ([]catalog.Decoration, error) {
	return list(ctx, c, "/decorations/", decorationWire.toDomain)
}

func (c *Client) ListCars(ctx context.Context) ([]catalog.Car, error) {
	return list(ctx, c, "/cars/", carWire.toDomain)
}

func (c *Client) ListPromos(ctx context.Context) ([]catalog.Promo, error) {
	return list(ctx, c, "/promos/", promoWire.toDomain)
}

// LoadSnapshot fetches every catalog concurrently, one request each, and
// fails as soon as any of them fails.
func (c *Client) LoadSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	var data catalog.SnapshotData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { data.Venues, err = c.ListVenues(gctx); return })
	g.Go(func() (err error) { data.Caterings, err = c.ListCaterings(gctx); return })
	g.Go(func() (err error) { data.Dishes, err = c.ListDishes(gctx); return })
	g.Go(func() (err error) { data.Decorations, err = c.ListDecorations(gctx); return })
	g.Go(func() (err error) { data.Cars, err = c.ListCars(gctx); return })
	g.Go(func() (err error) { data.Promos, err = c.ListPromos(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to load catalog snapshot")
	}

	data.LoadedAt = c.clock.Now()
	return catalog.NewSnapshot(data), nil
}
