package queries

import (
	"context"
	"slices"
	"strings"

	"wedding-console/internal/domain/review"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// VenueReviewsView lists a venue's reviews, newest first, with their
// rating summary.
type VenueReviewsView struct {
	VenueID uuid.UUID       `json:"venue_id"`
	Summary review.Summary  `json:"summary"`
	Reviews []review.Review `json:"reviews"`
}

type ReviewQueries interface {
	ForVenue(ctx context.Context, venueID uuid.UUID) (*VenueReviewsView, error)
}

type reviewQueriesImpl struct {
	reviews shared.ReviewGateway
}

func NewReviewQueries(reviews shared.ReviewGateway) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews}
}

func (q *reviewQueriesImpl) ForVenue(ctx context.Context, venueID uuid.UUID) (*VenueReviewsView, error) {
	rows, err := q.reviews.ListVenueReviews(ctx, venueID)
	if err != nil {
		return nil, shared.MarkUpstream(err, errs.ErrVenueNotFound)
	}

	slices.SortStableFunc(rows, func(a, b review.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})

	return &VenueReviewsView{
		VenueID: venueID,
		Summary: review.Summarize(rows),
		Reviews: rows,
	}, nil
}
