package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const enqueueBookingEvent = `-- name: EnqueueBookingEvent :exec
INSERT INTO booking_events (id, event_type, aggregate_id, payload, created_at, next_attempt_at)
VALUES ($1, $2, $3, $4, $5, $5)
`

type EnqueueBookingEventParams struct {
	ID          uuid.UUID          `json:"id"`
	EventType   string             `json:"event_type"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) EnqueueBookingEvent(ctx context.Context, db DBTX, arg EnqueueBookingEventParams) error {
	_, err := db.Exec(ctx, enqueueBookingEvent,
		arg.ID,
		arg.EventType,
		arg.AggregateID,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const claimPendingBookingEvents = `-- name: ClaimPendingBookingEvents :many
SELECT id, event_type, aggregate_id, payload, status, attempts, last_error, next_attempt_at, created_at, sent_at
FROM booking_events
WHERE status = 'pending' AND next_attempt_at <= $1
ORDER BY created_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimPendingBookingEventsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimPendingBookingEvents(ctx context.Context, db DBTX, arg ClaimPendingBookingEventsParams) ([]BookingEvents, error) {
	rows, err := db.Query(ctx, claimPendingBookingEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingEvents
	for rows.Next() {
		var i BookingEvents
		if err := rows.Scan(
			&i.ID,
			&i.EventType,
			&i.AggregateID,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.NextAttemptAt,
			&i.CreatedAt,
			&i.SentAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markBookingEventSent = `-- name: MarkBookingEventSent :exec
UPDATE booking_events
SET status = 'sent', sent_at = $2, last_error = NULL
WHERE id = $1
`

type MarkBookingEventSentParams struct {
	ID     uuid.UUID          `json:"id"`
	SentAt pgtype.Timestamptz `json:"sent_at"`
}

func (q *Queries) MarkBookingEventSent(ctx context.Context, db DBTX, arg MarkBookingEventSentParams) error {
	_, err := db.Exec(ctx, markBookingEventSent, arg.ID, arg.SentAt)
	return err
}

const markBookingEventFailed = `-- name: MarkBookingEventFailed :exec
UPDATE booking_events
SET status = $2,
    attempts = attempts + 1,
    last_error = $3,
    next_attempt_at = $4
WHERE id = $1
`

type MarkBookingEventFailedParams struct {
	ID            uuid.UUID          `json:"id"`
	Status        string             `json:"status"`
	LastError     pgtype.Text        `json:"last_error"`
	NextAttemptAt pgtype.Timestamptz `json:"next_attempt_at"`
}

func (q *Queries) MarkBookingEventFailed(ctx context.Context, db DBTX, arg MarkBookingEventFailedParams) error {
	_, err := db.Exec(ctx, markBookingEventFailed,
		arg.ID,
		arg.Status,
		arg.LastError,
		arg.NextAttemptAt,
	)
	return err
}
