package commands

import (
	"context"
	"log/slog"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogAdminCommands interface {
	DeleteItem(ctx context.Context, sess *session.Session, kind catalog.ItemKind, id uuid.UUID) error
	LinkDish(ctx context.Context, sess *session.Session, cateringID, dishID uuid.UUID) error
	UnlinkDish(ctx context.Context, sess *session.Session, cateringID, dishID uuid.UUID) error
}

// notFoundByKind is the error a 404 from the marketplace becomes.
var notFoundByKind = map[catalog.ItemKind]error{
	catalog.ItemVenue:      errs.ErrVenueNotFound,
	catalog.ItemCatering:   errs.ErrCateringNotFound,
	catalog.ItemDish:       errs.ErrDishNotFound,
	catalog.ItemDecoration: errs.ErrDecorationNotFound,
	catalog.ItemCar:        errs.ErrCarNotFound,
}

type catalogAdminCommandsImpl struct {
	catalog shared.CatalogAdminGateway
}

func NewCatalogAdminCommands(gw shared.CatalogAdminGateway) CatalogAdminCommands {
	return &catalogAdminCommandsImpl{catalog: gw}
}

func (c *catalogAdminCommandsImpl) DeleteItem(ctx context.Context, sess *session.Session, kind catalog.ItemKind, id uuid.UUID) error {
	if err := shared.RequireAdmin(sess); err != nil {
		return err
	}

	notFound, ok := notFoundByKind[kind]
	if !ok {
		return errs.Mark(errs.New("unknown catalog item kind: "+kind.String()), errs.ErrDomainValidation)
	}

	if err := c.catalog.DeleteCatalogItem(ctx, sess.MarketplaceToken, kind, id); err != nil {
		return shared.MarkUpstream(err, notFound)
	}

	slog.Info("カタログ項目を削除しました", "kind", kind.String(), "id", id, "admin_id", sess.User.ID)
	return nil
}

// LinkDish puts the dish on the catering's menu. The marketplace answers 404
// when either side is unknown.
func (c *catalogAdminCommandsImpl) LinkDish(ctx context.Context, sess *session.Session, cateringID, dishID uuid.UUID) error {
	if err := shared.RequireAdmin(sess); err != nil {
		return err
	}
	if err := c.catalog.LinkCateringDish(ctx, sess.MarketplaceToken, cateringID, dishID); err != nil {
		return shared.MarkUpstream(err, errs.ErrCateringNotFound)
	}

	slog.Info("メニューに料理を追加しました", "catering_id", cateringID, "dish_id", dishID)
	return nil
}

func (c *catalogAdminCommandsImpl) UnlinkDish(ctx context.Context, sess *session.Session, cateringID, dishID uuid.UUID) error {
	if err := shared.RequireAdmin(sess); err != nil {
		return err
	}
	if err := c.catalog.UnlinkCateringDish(ctx, sess.MarketplaceToken, cateringID, dishID); err != nil {
		return shared.MarkUpstream(err, errs.ErrMenuItemNotFound)
	}

	slog.Info("メニューから料理を外しました", "catering_id", cateringID, "dish_id", dishID)
	return nil
}
