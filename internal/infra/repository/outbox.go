package repository

import (
	"context"
	"time"

	"wedding-console/internal/infra"
	"wedding-console/internal/infra/converter"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/pgconv"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxQueries interface {
	EnqueueBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueBookingEventParams) error
	ClaimPendingBookingEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingBookingEventsParams) ([]sqlc.BookingEvents, error)
	MarkBookingEventSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventSentParams) error
	MarkBookingEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, eventType string, aggregateID uuid.UUID, payload []byte, now time.Time) (uuid.UUID, error) {
	id := uuid.New()
	params := sqlc.EnqueueBookingEventParams{
		ID:          id,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		CreatedAt:   pgconv.TimeToPgtype(now),
	}

	if err := r.queries.EnqueueBookingEvent(ctx, tx, params); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to enqueue booking event", err)
	}

	return id, nil
}

// ClaimBatch locks up to limit due events. Rows locked by another relay are
// skipped, so the claim is only held while tx is open.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]readmodel.OutboxEventRM, error) {
	rows, err := r.queries.ClaimPendingBookingEvents(ctx, tx, sqlc.ClaimPendingBookingEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: int32(limit), // #nosec G115 -- batch size comes from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	events := make([]readmodel.OutboxEventRM, 0, len(rows))
	for _, row := range rows {
		events = append(events, converter.OutboxEventFromRow(row))
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkBookingEventSent(ctx, tx, sqlc.MarkBookingEventSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking event sent", err)
	}
	return nil
}

// MarkFailed records a publish failure. The event stays pending for another
// attempt at retryAt until maxAttempts is reached, then it is parked as failed.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, ev readmodel.OutboxEventRM, cause string, maxAttempts int, retryAt time.Time) error {
	status := readmodel.OutboxStatusPending
	if int(ev.Attempts)+1 >= maxAttempts {
		status = readmodel.OutboxStatusFailed
	}

	err := r.queries.MarkBookingEventFailed(ctx, tx, sqlc.MarkBookingEventFailedParams{
		ID:            ev.ID,
		Status:        status,
		LastError:     pgtype.Text{String: cause, Valid: true},
		NextAttemptAt: pgconv.TimeToPgtype(retryAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking event failed", err)
	}
	return nil
}
