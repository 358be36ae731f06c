package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/review"

	"github.com/google/uuid"
)

// ListVenueReviews is public. A NOT_FOUND error means the venue is unknown.
func (c *Client) ListVenueReviews(ctx context.Context, venueID uuid.UUID) ([]review.Review, error) {
	return list(ctx, c, "/venues/reviews/"+venueID.String(), reviewWire.toDomain)
}

// CreateVenueReview posts as the token's user. The marketplace refuses
// admin tokens with 403.
func (c *Client) CreateVenueReview(ctx context.Context, token string, sub review.Submission) (review.Review, error) {
	var out reviewWire
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/venues/reviews/" + sub.VenueID().String(),
		token:  token,
		body: createReviewWire{
			VenueRating:     sub.Rating().Value(),
			VenueReviewText: sub.Comment().String(),
		},
	}, &out); err != nil {
		return review.Review{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) DeleteVenueReview(ctx context.Context, token string, reviewID uuid.UUID) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/venues/reviews/" + reviewID.String(), token: token}, nil)
	return err
}
