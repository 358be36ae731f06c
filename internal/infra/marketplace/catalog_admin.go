package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"

	"github.com/google/uuid"
)

// Everything here requires an admin token.

var catalogItemPaths = map[catalog.ItemKind]string{
	catalog.ItemVenue:      "/venues/",
	catalog.ItemCatering:   "/caterings/",
	catalog.ItemDish:       "/caterings/dishes/",
	catalog.ItemDecoration: "/decorations/",
	catalog.ItemCar:        "/cars/",
}

// DeleteCatalogItem removes one venue, catering, dish, decoration or car.
// The marketplace cascades to menu items and reviews.
func (c *Client) DeleteCatalogItem(ctx context.Context, token string, kind catalog.ItemKind, id uuid.UUID) error {
	prefix, ok := catalogItemPaths[kind]
	if !ok {
		return infra.WrapRepoErr("unknown catalog item kind "+kind.String(), nil, infra.KindUpstreamRejected)
	}
	_, err := c.do(ctx, request{method: http.MethodDelete, path: prefix + id.String(), token: token}, nil)
	return err
}

// LinkCateringDish adds the dish to the catering's menu. Linking a dish
// twice is rejected with 400.
func (c *Client) LinkCateringDish(ctx context.Context, token string, cateringID, dishID uuid.UUID) error {
	_, err := c.do(ctx, request{method: http.MethodPost, path: menuItemPath(cateringID, dishID), token: token}, nil)
	return err
}

func (c *Client) UnlinkCateringDish(ctx context.Context, token string, cateringID, dishID uuid.UUID) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: menuItemPath(cateringID, dishID), token: token}, nil)
	return err
}

func menuItemPath(cateringID, dishID uuid.UUID) string {
	return "/caterings/" + cateringID.String() + "/dishes/" + dishID.String()
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]session.User, error) {
	var rows []userWire
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/users/", token: token}, &rows); err != nil {
		return nil, err
	}
	out := make([]session.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}
