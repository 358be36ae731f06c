package response

import (
	"time"

	"wedding-console/internal/domain/review"
	"wedding-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ReviewAuthorResponse leaves out the email: reviews are public.
type ReviewAuthorResponse struct {
	ID       uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

type ReviewResponse struct {
	ID        uuid.UUID            `json:"id"`
	VenueID   uuid.UUID            `json:"venue_id"`
	Author    ReviewAuthorResponse `json:"author"`
	Rating    int                  `json:"rating"`
	Comment   string               `json:"comment"`
	CreatedAt time.Time            `json:"created_at"`
}

type RatingSummaryResponse struct {
	Count        int     `json:"count"`
	Average      float64 `json:"average"`
	Stars        int     `json:"stars"`
	Distribution [5]int  `json:"distribution"`
}

type VenueReviewsResponse struct {
	VenueID uuid.UUID             `json:"venue_id"`
	Rating  RatingSummaryResponse `json:"rating"`
	Reviews []ReviewResponse      `json:"reviews"`
}

func FromReview(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		VenueID:   r.VenueID,
		Author:    ReviewAuthorResponse{ID: r.Author.ID, Username: r.Author.Username},
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromVenueReviewsView(v *queries.VenueReviewsView) VenueReviewsResponse {
	res := VenueReviewsResponse{
		VenueID: v.VenueID,
		Reviews: make([]ReviewResponse, 0, len(v.Reviews)),
	}
	_ = copier.Copy(&res.Rating, &v.Summary)
	for _, r := range v.Reviews {
		res.Reviews = append(res.Reviews, FromReview(r))
	}
	return res
}
