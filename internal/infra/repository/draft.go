package repository

import (
	"context"
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/infra"
	"wedding-console/internal/infra/converter"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DraftQueries interface {
	CreateBookingDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingDraftParams) error
	GetBookingDraft(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingDrafts, error)
	GetBookingDraftForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingDrafts, error)
	UpdateBookingDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingDraftParams) (int64, error)
	DeleteBookingDraft(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredBookingDrafts(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type DraftRepository struct {
	queries  DraftQueries
	db       sqlc.DBTX
	services *booking.Services
}

func NewDraftRepository(queries DraftQueries, db sqlc.DBTX, services *booking.Services) *DraftRepository {
	return &DraftRepository{
		queries:  queries,
		db:       db,
		services: services,
	}
}

func (r *DraftRepository) Create(ctx context.Context, tx sqlc.DBTX, d *booking.Draft) error {
	params, err := converter.DraftToCreateParams(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking draft", err)
	}

	if err := r.queries.CreateBookingDraft(ctx, tx, params); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("booking draft already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking draft", err)
	}

	return nil
}

func (r *DraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	row, err := r.queries.GetBookingDraft(ctx, r.db, id)
	if err != nil {
		return nil, r.findErr(err)
	}
	return r.toDomain(row)
}

// FindForUpdate locks the draft row until tx ends.
func (r *DraftRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Draft, error) {
	row, err := r.queries.GetBookingDraftForUpdate(ctx, tx, id)
	if err != nil {
		return nil, r.findErr(err)
	}
	return r.toDomain(row)
}

func (r *DraftRepository) Save(ctx context.Context, tx sqlc.DBTX, d *booking.Draft) error {
	n, err := r.queries.UpdateBookingDraft(ctx, tx, converter.DraftToUpdateParams(d))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking draft", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking draft not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBookingDraft(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking draft", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking draft not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DraftRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredBookingDrafts(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired booking drafts", err)
	}
	return n, nil
}

func (r *DraftRepository) findErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking draft not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get booking draft", err)
}

func (r *DraftRepository) toDomain(row sqlc.BookingDrafts) (*booking.Draft, error) {
	d, err := converter.DraftFromRow(r.services, row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking draft", err)
	}
	return d, nil
}
