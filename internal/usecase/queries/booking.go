package queries

import (
	"context"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type BookingQueries interface {
	GetByID(ctx context.Context, sess *session.Session, id uuid.UUID) (*readmodel.BookingRM, error)
	Mine(ctx context.Context, sess *session.Session) ([]readmodel.BookingRM, error)
	// All is the admin listing, paged newest first.
	All(ctx context.Context, sess *session.Session, after *Cursor, limit int) (*BookingListView, error)
}

type bookingQueriesImpl struct {
	gateway shared.BookingGateway
}

func NewBookingQueries(gateway shared.BookingGateway) BookingQueries {
	return &bookingQueriesImpl{gateway: gateway}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, sess *session.Session, id uuid.UUID) (*readmodel.BookingRM, error) {
	b, err := q.gateway.GetBooking(ctx, sess.MarketplaceToken, id)
	if err != nil {
		return nil, shared.MarkUpstream(err, errs.ErrBookingNotFound)
	}
	if err := shared.CheckBookingAccess(b, sess); err != nil {
		return nil, err
	}
	return &b, nil
}

func (q *bookingQueriesImpl) Mine(ctx context.Context, sess *session.Session) ([]readmodel.BookingRM, error) {
	items, err := q.gateway.MyBookings(ctx, sess.MarketplaceToken)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}
	return items, nil
}

func (q *bookingQueriesImpl) All(ctx context.Context, sess *session.Session, after *Cursor, limit int) (*BookingListView, error) {
	if err := shared.RequireAdmin(sess); err != nil {
		return nil, err
	}

	items, err := q.gateway.AllBookings(ctx, sess.MarketplaceToken)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}

	page, next, err := pageBookings(items, after, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}
	return &BookingListView{Items: page, Next: next}, nil
}
