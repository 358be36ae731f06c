package commands

import (
	"context"
	"log/slog"

	"wedding-console/internal/domain/review"
	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReviewCommands writes venue reviews. Reviews come from customers only;
// admins are refused before the marketplace is called.
type ReviewCommands interface {
	Create(ctx context.Context, sess *session.Session, venueID uuid.UUID, req reqdto.CreateReviewRequest) (*review.Review, error)
	Delete(ctx context.Context, sess *session.Session, venueID, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	reviews shared.ReviewGateway
}

func NewReviewCommands(reviews shared.ReviewGateway) ReviewCommands {
	return &reviewCommandsImpl{reviews: reviews}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, sess *session.Session, venueID uuid.UUID, req reqdto.CreateReviewRequest) (*review.Review, error) {
	if sess.IsAdmin() {
		return nil, errs.ErrReviewByAdmin
	}

	sub, err := req.ToDomain(venueID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	created, err := c.reviews.CreateVenueReview(ctx, sess.MarketplaceToken, sub)
	if err != nil {
		return nil, shared.MarkUpstream(err, errs.ErrVenueNotFound)
	}

	slog.Info("レビューを投稿しました",
		"review_id", created.ID,
		"venue_id", venueID,
		"user_id", sess.User.ID,
		"rating", created.Rating)
	return &created, nil
}

// Delete removes the caller's own review. The review is looked up on the
// venue first so another user's review is refused here.
func (c *reviewCommandsImpl) Delete(ctx context.Context, sess *session.Session, venueID, reviewID uuid.UUID) error {
	if sess.IsAdmin() {
		return errs.ErrReviewByAdmin
	}

	reviews, err := c.reviews.ListVenueReviews(ctx, venueID)
	if err != nil {
		return shared.MarkUpstream(err, errs.ErrVenueNotFound)
	}

	var target *review.Review
	for i := range reviews {
		if reviews[i].ID == reviewID {
			target = &reviews[i]
			break
		}
	}
	if target == nil {
		return errs.ErrReviewNotFound
	}
	if !target.IsWrittenBy(sess.User.ID) {
		return errs.ErrReviewForbidden
	}

	if err := c.reviews.DeleteVenueReview(ctx, sess.MarketplaceToken, reviewID); err != nil {
		return shared.MarkUpstream(err, errs.ErrReviewNotFound)
	}

	slog.Info("レビューを削除しました", "review_id", reviewID, "venue_id", venueID, "user_id", sess.User.ID)
	return nil
}
