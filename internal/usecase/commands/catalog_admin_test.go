//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/tests/common/builder"
	sharedmock "wedding-console/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalogAdminFixture(t *testing.T) (*sharedmock.MockCatalogAdminGateway, commands.CatalogAdminCommands, *session.Session, *session.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := sharedmock.NewMockCatalogAdminGateway(ctrl)

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	admin := session.New(builder.NewUserBuilder().AsAdmin().BuildSessionUser(), "admin-token", now, time.Hour)
	customer := session.New(builder.NewUserBuilder().BuildSessionUser(), "customer-token", now, time.Hour)
	return gw, commands.NewCatalogAdminCommands(gw), admin, customer
}

func TestCatalogAdminCommands_DeleteItem(t *testing.T) {
	tests := []struct {
		kind     catalog.ItemKind
		notFound error
	}{
		{kind: catalog.ItemVenue, notFound: errs.ErrVenueNotFound},
		{kind: catalog.ItemCatering, notFound: errs.ErrCateringNotFound},
		{kind: catalog.ItemDish, notFound: errs.ErrDishNotFound},
		{kind: catalog.ItemDecoration, notFound: errs.ErrDecorationNotFound},
		{kind: catalog.ItemCar, notFound: errs.ErrCarNotFound},
	}

	for _, tt := range tests {
		t.Run("success: "+tt.kind.String(), func(t *testing.T) {
			gw, cmd, admin, _ := catalogAdminFixture(t)
			id := uuid.New()
			gw.EXPECT().DeleteCatalogItem(gomock.Any(), "admin-token", tt.kind, id).Return(nil)

			require.NoError(t, cmd.DeleteItem(context.Background(), admin, tt.kind, id))
		})

		t.Run("not found: "+tt.kind.String(), func(t *testing.T) {
			gw, cmd, admin, _ := catalogAdminFixture(t)
			gw.EXPECT().DeleteCatalogItem(gomock.Any(), "admin-token", tt.kind, gomock.Any()).
				Return(infra.WrapRepoErr("not found", nil, infra.KindNotFound))

			err := cmd.DeleteItem(context.Background(), admin, tt.kind, uuid.New())
			assert.True(t, errs.Is(err, tt.notFound))
		})
	}

	t.Run("customer is refused before the marketplace", func(t *testing.T) {
		_, cmd, _, customer := catalogAdminFixture(t)

		err := cmd.DeleteItem(context.Background(), customer, catalog.ItemVenue, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, cmd, admin, _ := catalogAdminFixture(t)

		err := cmd.DeleteItem(context.Background(), admin, catalog.ItemKind("promo"), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("marketplace down", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().DeleteCatalogItem(gomock.Any(), gomock.Any(), catalog.ItemCar, gomock.Any()).
			Return(infra.WrapRepoErr("upstream 503", nil, infra.KindUpstreamFailure))

		err := cmd.DeleteItem(context.Background(), admin, catalog.ItemCar, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrMarketplaceUnavailable))
	})
}

func TestCatalogAdminCommands_Menu(t *testing.T) {
	cateringID, dishID := uuid.New(), uuid.New()

	t.Run("link", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().LinkCateringDish(gomock.Any(), "admin-token", cateringID, dishID).Return(nil)

		require.NoError(t, cmd.LinkDish(context.Background(), admin, cateringID, dishID))
	})

	t.Run("link an unknown catering or dish", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().LinkCateringDish(gomock.Any(), "admin-token", cateringID, dishID).
			Return(infra.WrapRepoErr("Catering or Dish not found", nil, infra.KindNotFound))

		err := cmd.LinkDish(context.Background(), admin, cateringID, dishID)
		assert.True(t, errs.Is(err, errs.ErrCateringNotFound))
	})

	t.Run("link twice is rejected", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().LinkCateringDish(gomock.Any(), "admin-token", cateringID, dishID).
			Return(infra.WrapRepoErr("Dish already exists in catering", nil, infra.KindUpstreamRejected))

		err := cmd.LinkDish(context.Background(), admin, cateringID, dishID)
		assert.True(t, errs.Is(err, errs.ErrMarketplaceRejected))
	})

	t.Run("unlink", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().UnlinkCateringDish(gomock.Any(), "admin-token", cateringID, dishID).Return(nil)

		require.NoError(t, cmd.UnlinkDish(context.Background(), admin, cateringID, dishID))
	})

	t.Run("unlink a dish not on the menu", func(t *testing.T) {
		gw, cmd, admin, _ := catalogAdminFixture(t)
		gw.EXPECT().UnlinkCateringDish(gomock.Any(), "admin-token", cateringID, dishID).
			Return(infra.WrapRepoErr("Catering Menu Item not found", nil, infra.KindNotFound))

		err := cmd.UnlinkDish(context.Background(), admin, cateringID, dishID)
		assert.True(t, errs.Is(err, errs.ErrMenuItemNotFound))
	})

	t.Run("customers cannot edit menus", func(t *testing.T) {
		_, cmd, _, customer := catalogAdminFixture(t)

		assert.True(t, errs.Is(cmd.LinkDish(context.Background(), customer, cateringID, dishID), errs.ErrForbidden))
		assert.True(t, errs.Is(cmd.UnlinkDish(context.Background(), customer, cateringID, dishID), errs.ErrForbidden))
	})
}
