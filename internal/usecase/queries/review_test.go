//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"wedding-console/internal/domain/review"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/queries"
	sharedmock "wedding-console/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewQueries_ForVenue(t *testing.T) {
	venueID := uuid.New()
	at := func(minutes, rating int) review.Review {
		return review.Review{
			ID:        uuid.New(),
			VenueID:   venueID,
			Rating:    rating,
			CreatedAt: baseTime.Add(time.Duration(minutes) * time.Minute),
		}
	}

	t.Run("newest first with the rating summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := sharedmock.NewMockReviewGateway(ctrl)
		q := queries.NewReviewQueries(gw)

		gw.EXPECT().ListVenueReviews(gomock.Any(), venueID).
			Return([]review.Review{at(1, 3), at(3, 5), at(2, 4)}, nil)

		view, err := q.ForVenue(context.Background(), venueID)
		require.NoError(t, err)
		require.Len(t, view.Reviews, 3)
		assert.Equal(t, venueID, view.VenueID)
		assert.Equal(t, baseTime.Add(3*time.Minute), view.Reviews[0].CreatedAt)
		assert.Equal(t, baseTime.Add(1*time.Minute), view.Reviews[2].CreatedAt)
		assert.Equal(t, 3, view.Summary.Count)
		assert.InDelta(t, 4.0, view.Summary.Average, 1e-9)
		assert.Equal(t, 4, view.Summary.Stars)
	})

	t.Run("no reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := sharedmock.NewMockReviewGateway(ctrl)
		q := queries.NewReviewQueries(gw)

		gw.EXPECT().ListVenueReviews(gomock.Any(), venueID).Return([]review.Review{}, nil)

		view, err := q.ForVenue(context.Background(), venueID)
		require.NoError(t, err)
		assert.Empty(t, view.Reviews)
		assert.Zero(t, view.Summary.Stars)
	})

	t.Run("unknown venue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := sharedmock.NewMockReviewGateway(ctrl)
		q := queries.NewReviewQueries(gw)

		gw.EXPECT().ListVenueReviews(gomock.Any(), venueID).
			Return(nil, infra.WrapRepoErr("Venue not found", nil, infra.KindNotFound))

		_, err := q.ForVenue(context.Background(), venueID)
		assert.True(t, errs.Is(err, errs.ErrVenueNotFound))
	})
}
