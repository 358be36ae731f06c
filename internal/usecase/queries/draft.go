package queries

import (
	"context"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type DraftQueries interface {
	Get(ctx context.Context, sess *session.Session, draftID uuid.UUID) (*DraftView, error)
}

type DraftReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
}

type draftQueriesImpl struct {
	readStore DraftReadStore
	clock     clock.Clock
}

func NewDraftQueries(readStore DraftReadStore, clk clock.Clock) DraftQueries {
	return &draftQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *draftQueriesImpl) Get(ctx context.Context, sess *session.Session, draftID uuid.UUID) (*DraftView, error) {
	d, err := q.readStore.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDraftNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	if err := shared.CheckDraftAccess(d, sess, now); err != nil {
		return nil, err
	}

	return NewDraftView(d, now), nil
}
