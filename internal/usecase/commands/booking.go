package commands

import (
	"context"
	"log/slog"

	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Cancel(ctx context.Context, sess *session.Session, bookingID uuid.UUID) error
	UpdateStatus(ctx context.Context, sess *session.Session, bookingID uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*readmodel.BookingRM, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	bookings shared.BookingGateway
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookings shared.BookingGateway, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		bookings: bookings,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, sess *session.Session, bookingID uuid.UUID) error {
	token := sess.MarketplaceToken

	b, err := c.bookings.GetBooking(ctx, token, bookingID)
	if err != nil {
		return shared.MarkUpstream(err, errs.ErrBookingNotFound)
	}
	if err := shared.CheckBookingAccess(b, sess); err != nil {
		return err
	}

	if err := c.bookings.DeleteBooking(ctx, token, bookingID); err != nil {
		return shared.MarkUpstream(err, errs.ErrBookingNotFound)
	}

	c.publish(ctx, newBookingEvent(EventBookingCancelled, "", b, c.clock.Now()), b)
	return nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, sess *session.Session, bookingID uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*readmodel.BookingRM, error) {
	if err := shared.RequireAdmin(sess); err != nil {
		return nil, err
	}

	status, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	b, err := c.bookings.UpdateBookingStatus(ctx, sess.MarketplaceToken, bookingID, status)
	if err != nil {
		return nil, shared.MarkUpstream(err, errs.ErrBookingNotFound)
	}

	c.publish(ctx, newBookingEvent(EventBookingStatusChanged, status.String(), b, c.clock.Now()), b)
	return &b, nil
}

// publish records the event after the marketplace change went through. A
// failure here is logged only; the change itself cannot be undone.
func (c *bookingCommandsImpl) publish(ctx context.Context, ev BookingEvent, b readmodel.BookingRM) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return enqueueBookingEvent(ctx, tx, ev, b)
	})
	if err != nil {
		slog.Error("failed to enqueue booking event", "type", ev.Type, "booking_id", b.ID, "error", err.Error())
	}
}
