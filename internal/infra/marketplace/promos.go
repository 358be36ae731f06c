package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/catalog"

	"github.com/google/uuid"
)

// CreatePromo requires an admin token. The promo's id is assigned by the
// marketplace.
func (c *Client) CreatePromo(ctx context.Context, token string, p catalog.Promo) (catalog.Promo, error) {
	var out promoWire
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/promos/",
		token:  token,
		body: createPromoWire{
			PromoName:     p.Name,
			PromoExpiry:   wireTime{p.Expiry},
			PromoDiscount: p.Discount,
		},
	}, &out); err != nil {
		return catalog.Promo{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) DeletePromo(ctx context.Context, token string, id uuid.UUID) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/promos/" + id.String(), token: token}, nil)
	return err
}
