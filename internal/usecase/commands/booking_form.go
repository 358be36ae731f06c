package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/queries"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

type SubmitResult struct {
	Booking    readmodel.BookingRM
	IsReplayed bool
}

type BookingFormCommands interface {
	Open(ctx context.Context, sess *session.Session, req reqdto.OpenBookingFormRequest) (*queries.DraftView, error)
	Update(ctx context.Context, sess *session.Session, draftID uuid.UUID, req reqdto.UpdateBookingFormRequest) (*queries.DraftView, error)
	Submit(ctx context.Context, sess *session.Session, draftID uuid.UUID, idempotencyKey string) (*SubmitResult, error)
	Discard(ctx context.Context, sess *session.Session, draftID uuid.UUID) error
}

type bookingFormCommandsImpl struct {
	uow         shared.UnitOfWork
	drafts      queries.DraftReadStore
	catalog     shared.CatalogLoader
	bookings    shared.BookingGateway
	idempotency shared.IdempotencyStore
	services    *booking.Services
	clock       clock.Clock
	draftTTL    time.Duration
}

func NewBookingFormCommands(
	uow shared.UnitOfWork,
	drafts queries.DraftReadStore,
	catalog shared.CatalogLoader,
	bookings shared.BookingGateway,
	idempotency shared.IdempotencyStore,
	services *booking.Services,
	draftTTL time.Duration,
) BookingFormCommands {
	return &bookingFormCommandsImpl{
		uow:         uow,
		drafts:      drafts,
		catalog:     catalog,
		bookings:    bookings,
		idempotency: idempotency,
		services:    services,
		clock:       services.Clock,
		draftTTL:    draftTTL,
	}
}

// Open loads the catalog snapshot the form will price against for its whole
// life and stores a new draft, prefilled when a booking is being edited.
func (c *bookingFormCommandsImpl) Open(ctx context.Context, sess *session.Session, req reqdto.OpenBookingFormRequest) (*queries.DraftView, error) {
	token := sess.MarketplaceToken

	snapshot, err := c.catalog.LoadSnapshot(ctx)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}

	mine, err := c.bookings.MyBookings(ctx, token)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}
	loyalty := shared.LoyaltyFor(mine, req.BookingID)

	var d *booking.Draft
	if req.BookingID != nil {
		existing, err := c.bookings.GetBooking(ctx, token, *req.BookingID)
		if err != nil {
			return nil, shared.MarkUpstream(err, errs.ErrBookingNotFound)
		}
		// admins change status, they do not edit other users' forms
		if existing.User.ID != sess.User.ID {
			return nil, errs.Mark(booking.ErrBookingOwnedByAnotherUser, errs.ErrBookingForbidden)
		}
		d = booking.NewDraftFromBooking(c.services, existing.ToExisting(), snapshot, loyalty, c.draftTTL)
	} else {
		d = booking.NewDraft(c.services, sess.User.ID, snapshot, loyalty, c.draftTTL)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Drafts().Create(ctx, tx.DB(), d)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("予約フォームを開きました",
		"draft_id", d.ID(),
		"user_id", sess.User.ID,
		"editing", d.IsEdit())

	return queries.NewDraftView(d, c.clock.Now()), nil
}

func (c *bookingFormCommandsImpl) Update(ctx context.Context, sess *session.Session, draftID uuid.UUID, req reqdto.UpdateBookingFormRequest) (*queries.DraftView, error) {
	var updated *booking.Draft

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), draftID)
		if err != nil {
			return err
		}
		if err := shared.CheckDraftAccess(d, sess, c.clock.Now()); err != nil {
			return err
		}
		if err := req.ApplyTo(d); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Drafts().Save(ctx, tx.DB(), d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, markDraftErr(err)
	}

	return queries.NewDraftView(updated, c.clock.Now()), nil
}

// Submit sends the draft to the marketplace once per idempotency key. A
// retry with the same key and draft replays the stored booking.
func (c *bookingFormCommandsImpl) Submit(ctx context.Context, sess *session.Session, draftID uuid.UUID, idempotencyKey string) (*SubmitResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	hash := submitHash(draftID)
	rec, acquired, err := c.idempotency.Begin(ctx, idempotencyKey, sess.User.ID, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrIdempotencyInProgress)
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if !acquired {
		return c.replay(ctx, sess, rec, hash)
	}

	saved, err := c.submit(ctx, sess, draftID)
	if err != nil {
		if abortErr := c.idempotency.Abort(ctx, sess.User.ID, idempotencyKey); abortErr != nil {
			slog.Warn("failed to release idempotency key", "key", idempotencyKey, "error", abortErr.Error())
		}
		return nil, err
	}

	if err := c.idempotency.Complete(ctx, *rec, saved.ID); err != nil {
		// the booking exists; a retry will report in-progress until the key expires
		slog.Warn("failed to complete idempotency key", "key", idempotencyKey, "booking_id", saved.ID, "error", err.Error())
	}

	return &SubmitResult{Booking: saved}, nil
}

func (c *bookingFormCommandsImpl) Discard(ctx context.Context, sess *session.Session, draftID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), draftID)
		if err != nil {
			return err
		}
		if !d.IsOwnedBy(sess.User.ID) {
			return errs.Mark(booking.ErrDraftOwnedByAnotherUser, errs.ErrDraftForbidden)
		}
		return tx.Drafts().Delete(ctx, tx.DB(), draftID)
	})
	if err != nil {
		return markDraftErr(err)
	}
	return nil
}

func (c *bookingFormCommandsImpl) replay(ctx context.Context, sess *session.Session, rec *readmodel.IdempotencyKeyRM, hash string) (*SubmitResult, error) {
	if rec.RequestHash != hash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch rec.Status {
	case readmodel.IdempotencyStatusCompleted:
		if rec.BookingID == nil {
			return nil, errs.New("completed submission missing booking id")
		}
		b, err := c.bookings.GetBooking(ctx, sess.MarketplaceToken, *rec.BookingID)
		if err != nil {
			return nil, shared.MarkUpstream(err, errs.ErrBookingNotFound)
		}
		return &SubmitResult{Booking: b, IsReplayed: true}, nil

	case readmodel.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingFormCommandsImpl) submit(ctx context.Context, sess *session.Session, draftID uuid.UUID) (readmodel.BookingRM, error) {
	d, err := c.drafts.FindByID(ctx, draftID)
	if err != nil {
		return readmodel.BookingRM{}, markDraftErr(err)
	}

	now := c.clock.Now()
	if err := shared.CheckDraftAccess(d, sess, now); err != nil {
		return readmodel.BookingRM{}, err
	}

	// a promo may have expired since it was picked
	d.Reprice(now)
	if err := d.Validate(now); err != nil {
		return readmodel.BookingRM{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	token := sess.MarketplaceToken
	sub := d.Submission()

	var saved readmodel.BookingRM
	action := "created"
	if d.IsEdit() {
		action = "updated"
		saved, err = c.bookings.UpdateBooking(ctx, token, *sub.BookingID, sub)
		if err != nil {
			return readmodel.BookingRM{}, shared.MarkUpstream(err, errs.ErrBookingNotFound)
		}
	} else {
		saved, err = c.bookings.CreateBooking(ctx, token, sub)
		if err != nil {
			return readmodel.BookingRM{}, shared.MarkUpstream(err, nil)
		}
	}

	if err := c.syncCars(ctx, token, saved, sub.CarIDs); err != nil {
		if !d.IsEdit() {
			c.rollbackCreate(ctx, token, saved.ID)
		}
		return readmodel.BookingRM{}, err
	}

	final, err := c.bookings.GetBooking(ctx, token, saved.ID)
	if err != nil {
		slog.Warn("failed to reload booking after submit", "booking_id", saved.ID, "error", err.Error())
		final = saved
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev := newBookingEvent(EventBookingSubmitted, action, final, now)
		if err := enqueueBookingEvent(ctx, tx, ev, final); err != nil {
			return err
		}
		return tx.Drafts().Delete(ctx, tx.DB(), d.ID())
	})
	if err != nil {
		// the marketplace already holds the booking, so the submit still succeeds
		slog.Error("予約送信後の後処理に失敗しました",
			"draft_id", d.ID(),
			"booking_id", final.ID,
			"error", err.Error())
	}

	slog.Info("予約を送信しました",
		"booking_id", final.ID,
		"action", action,
		"amount_payed", final.Payment.AmountPayed)

	return final, nil
}

// syncCars releases cars dropped from the draft before reserving new ones,
// so a swap never needs two units of stock.
func (c *bookingFormCommandsImpl) syncCars(ctx context.Context, token string, saved readmodel.BookingRM, wanted []uuid.UUID) error {
	add, release := booking.CarChanges(saved.CarIDs(), wanted)

	for _, carID := range release {
		reservationID, ok := saved.ReservationFor(carID)
		if !ok {
			continue
		}
		err := c.bookings.ReleaseCarReservation(ctx, token, reservationID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return shared.MarkUpstream(err, nil)
		}
	}

	for _, carID := range add {
		if _, err := c.bookings.ReserveCar(ctx, token, carID, saved.ID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithDetail(errs.Mark(err, errs.ErrCarUnavailable), "car "+carID.String()+" is not available")
			}
			return shared.MarkUpstream(err, nil)
		}
	}
	return nil
}

func (c *bookingFormCommandsImpl) rollbackCreate(ctx context.Context, token string, bookingID uuid.UUID) {
	if err := c.bookings.DeleteBooking(ctx, token, bookingID); err != nil {
		slog.Error("failed to roll back booking", "booking_id", bookingID, "error", err.Error())
	}
}

func markDraftErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrDraftNotFound)
	case infra.KindOf(err) != "":
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func submitHash(draftID uuid.UUID) string {
	hash := sha256.Sum256([]byte("submit:" + draftID.String()))
	return hex.EncodeToString(hash[:])
}
