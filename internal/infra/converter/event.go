package converter

import (
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/pgconv"
	"wedding-console/internal/usecase/readmodel"
)

func OutboxEventFromRow(row sqlc.BookingEvents) readmodel.OutboxEventRM {
	return readmodel.OutboxEventRM{
		ID:          row.ID,
		EventType:   row.EventType,
		AggregateID: row.AggregateID,
		Payload:     row.Payload,
		Attempts:    row.Attempts,
		Status:      row.Status,
		LastError:   pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
