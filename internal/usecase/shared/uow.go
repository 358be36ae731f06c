package shared

import (
	"context"
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Drafts() DraftRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type DraftRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *booking.Draft) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Draft, error)
	Save(ctx context.Context, tx sqlc.DBTX, d *booking.Draft) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, eventType string, aggregateID uuid.UUID, payload []byte, now time.Time) (uuid.UUID, error)
	ClaimBatch(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]readmodel.OutboxEventRM, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, ev readmodel.OutboxEventRM, cause string, maxAttempts int, retryAt time.Time) error
}
