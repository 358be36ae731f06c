package commands

import (
	"context"
	"log/slog"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoCommands interface {
	Create(ctx context.Context, sess *session.Session, req reqdto.CreatePromoRequest) (*catalog.Promo, error)
	Delete(ctx context.Context, sess *session.Session, promoID uuid.UUID) error
}

type promoCommandsImpl struct {
	promos shared.PromoGateway
	clock  clock.Clock
}

func NewPromoCommands(promos shared.PromoGateway, clk clock.Clock) PromoCommands {
	return &promoCommandsImpl{
		promos: promos,
		clock:  clk,
	}
}

func (c *promoCommandsImpl) Create(ctx context.Context, sess *session.Session, req reqdto.CreatePromoRequest) (*catalog.Promo, error) {
	if err := shared.RequireAdmin(sess); err != nil {
		return nil, err
	}

	p, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	created, err := c.promos.CreatePromo(ctx, sess.MarketplaceToken, p)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}

	slog.Info("プロモを作成しました", "promo_id", created.ID, "name", created.Name)
	return &created, nil
}

func (c *promoCommandsImpl) Delete(ctx context.Context, sess *session.Session, promoID uuid.UUID) error {
	if err := shared.RequireAdmin(sess); err != nil {
		return err
	}
	if err := c.promos.DeletePromo(ctx, sess.MarketplaceToken, promoID); err != nil {
		return shared.MarkUpstream(err, errs.ErrPromoNotFound)
	}
	return nil
}
