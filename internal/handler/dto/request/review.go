package request

import (
	"wedding-console/internal/domain/review"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (r CreateReviewRequest) ToDomain(venueID uuid.UUID) (review.Submission, error) {
	return review.NewSubmission(venueID, r.Rating, r.Comment)
}
