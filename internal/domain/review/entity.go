package review

import (
	"time"

	"wedding-console/internal/domain/session"

	"github.com/google/uuid"
)

// Submission is a checked review ready to be posted for a venue.
type Submission struct {
	venueID uuid.UUID
	rating  Rating
	comment Comment
}

func NewSubmission(venueID uuid.UUID, ratingValue int, commentText string) (Submission, error) {
	if venueID == uuid.Nil {
		return Submission{}, ErrVenueRequired
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return Submission{}, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return Submission{}, err
	}

	return Submission{venueID: venueID, rating: rating, comment: comment}, nil
}

func (s Submission) VenueID() uuid.UUID { return s.venueID }
func (s Submission) Rating() Rating     { return s.rating }
func (s Submission) Comment() Comment   { return s.comment }

// Review is a stored venue review. Ratings read back from the marketplace
// are not re-validated: it only enforces a lower bound.
type Review struct {
	ID        uuid.UUID    `json:"id"`
	VenueID   uuid.UUID    `json:"venue_id"`
	Author    session.User `json:"author"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

func (r Review) IsWrittenBy(userID uuid.UUID) bool {
	return r.Author.ID == userID
}
