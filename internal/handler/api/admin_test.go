//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/handler/api"
	reqdto "wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/queries"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/tests/common/httptest"
	commandsmock "wedding-console/tests/mock/commands"
	queriesmock "wedding-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	bookingCmds *commandsmock.MockBookingCommands
	promoCmds   *commandsmock.MockPromoCommands
	catalogCmds *commandsmock.MockCatalogAdminCommands
	bookingQ    *queriesmock.MockBookingQueries
	userQ       *queriesmock.MockUserQueries
	ss          sessions
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.promoCmds = commandsmock.NewMockPromoCommands(s.mockCtrl)
	s.catalogCmds = commandsmock.NewMockCatalogAdminCommands(s.mockCtrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userQ = queriesmock.NewMockUserQueries(s.mockCtrl)

	router, auth, ss := newAuthedRouter(s.mockCtrl)
	s.router, s.ss = router, ss

	h := api.NewAdminHandler(s.bookingCmds, s.promoCmds, s.catalogCmds, s.bookingQ, s.userQ)
	admin := s.router.Group("/admin", auth.RequireAuth(), auth.RequireAdmin())
	admin.GET("/bookings", h.ListBookings)
	admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	admin.POST("/promos", h.CreatePromo)
	admin.DELETE("/promos/:id", h.DeletePromo)
	admin.GET("/users", h.ListUsers)
	admin.DELETE("/venues/:id", h.DeleteCatalogItem(catalog.ItemVenue))
	admin.DELETE("/caterings/:id", h.DeleteCatalogItem(catalog.ItemCatering))
	admin.POST("/caterings/:id/dishes/:dish_id", h.LinkDish)
	admin.DELETE("/caterings/:id/dishes/:dish_id", h.UnlinkDish)
	admin.DELETE("/dishes/:id", h.DeleteCatalogItem(catalog.ItemDish))
	admin.DELETE("/decorations/:id", h.DeleteCatalogItem(catalog.ItemDecoration))
	admin.DELETE("/cars/:id", h.DeleteCatalogItem(catalog.ItemCar))
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("正常系: 次ページのカーソルを返す", func() {
		items := []readmodel.BookingRM{bookingRM(s.ss.customer.User), bookingRM(s.ss.customer.User)}
		next := &queries.Cursor{After: "djE6MTIzLWFiYw=="}
		s.bookingQ.EXPECT().All(gomock.Any(), s.ss.admin, nil, 2).
			Return(&queries.BookingListView{Items: items, Next: next}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=2", nil, adminToken)

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res.Items, 2)
		s.Equal(next.After, res.NextCursor)
	})

	s.Run("正常系: カーソルとデフォルト件数を渡す", func() {
		s.bookingQ.EXPECT().All(gomock.Any(), s.ss.admin, &queries.Cursor{After: "abc"}, queries.DefaultListLimit).
			Return(&queries.BookingListView{Items: []readmodel.BookingRM{}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=abc", nil, adminToken)

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Empty(res.Items)
		s.Empty(res.NextCursor)
	})

	s.Run("異常系: 不正なカーソル", func() {
		s.bookingQ.EXPECT().All(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("invalid cursor encoding"), queries.ErrInvalidCursor))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=%25%25", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("異常系: 数値でないlimit", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=ten", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("異常系: 一般ユーザーは403", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateBookingStatus() {
	id := uuid.New()
	path := "/admin/bookings/" + id.String() + "/status"

	s.Run("正常系: 承認", func() {
		b := bookingRM(s.ss.customer.User)
		b.ID = id
		b.Status = "confirmed"
		s.bookingCmds.EXPECT().
			UpdateStatus(gomock.Any(), s.ss.admin, id, reqdto.UpdateBookingStatusRequest{Status: "confirmed"}).
			Return(&b, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, map[string]any{"status": "confirmed"}, adminToken)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("confirmed", res.Status)
	})

	s.Run("異常系: 未知のステータス", func() {
		s.bookingCmds.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errs.New("unknown status"), errs.ErrDomainValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, map[string]any{"status": "archived"}, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("異常系: ステータス欠落", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, map[string]any{}, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestPromos() {
	s.Run("正常系: 作成は201", func() {
		expiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		p := &catalog.Promo{ID: uuid.New(), Name: "SPRING", Discount: 0.1, Expiry: expiry}
		s.promoCmds.EXPECT().Create(gomock.Any(), s.ss.admin, reqdto.CreatePromoRequest{Name: "SPRING", Discount: 0.1, Expiry: expiry}).
			Return(p, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/promos",
			map[string]any{"name": "SPRING", "discount": 0.1, "expiry": expiry}, adminToken)

		var res resdto.PromoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(p.ID, res.ID)
		s.InDelta(0.1, res.Discount, 1e-9)
	})

	s.Run("正常系: 削除は204", func() {
		id := uuid.New()
		s.promoCmds.EXPECT().Delete(gomock.Any(), s.ss.admin, id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/promos/"+id.String(), nil, adminToken)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("異常系: 存在しないプロモ", func() {
		id := uuid.New()
		s.promoCmds.EXPECT().Delete(gomock.Any(), s.ss.admin, id).Return(errs.ErrPromoNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/promos/"+id.String(), nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Promo not found")
	})
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	s.Run("正常系: 全ユーザーを返す", func() {
		users := []session.User{s.ss.admin.User, s.ss.customer.User}
		s.userQ.EXPECT().List(gomock.Any(), s.ss.admin).Return(users, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, adminToken)

		var res []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal(s.ss.admin.User.ID, res[0].ID)
		s.True(res[0].IsAdmin)
		s.Equal(s.ss.customer.User.Email, res[1].Email)
	})

	s.Run("異常系: marketplace停止は502", func() {
		s.userQ.EXPECT().List(gomock.Any(), s.ss.admin).Return(nil, errs.ErrMarketplaceUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Marketplace unavailable")
	})

	s.Run("異常系: 一般ユーザーは403", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteCatalogItem() {
	tests := []struct {
		path    string
		kind    catalog.ItemKind
		missing error
		message string
	}{
		{path: "/admin/venues/", kind: catalog.ItemVenue, missing: errs.ErrVenueNotFound, message: "Venue not found"},
		{path: "/admin/caterings/", kind: catalog.ItemCatering, missing: errs.ErrCateringNotFound, message: "Catering not found"},
		{path: "/admin/dishes/", kind: catalog.ItemDish, missing: errs.ErrDishNotFound, message: "Dish not found"},
		{path: "/admin/decorations/", kind: catalog.ItemDecoration, missing: errs.ErrDecorationNotFound, message: "Decoration not found"},
		{path: "/admin/cars/", kind: catalog.ItemCar, missing: errs.ErrCarNotFound, message: "Car not found"},
	}

	for _, tt := range tests {
		s.Run("正常系: "+tt.kind.String()+"の削除は204", func() {
			id := uuid.New()
			s.catalogCmds.EXPECT().DeleteItem(gomock.Any(), s.ss.admin, tt.kind, id).Return(nil)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, tt.path+id.String(), nil, adminToken)
			s.Equal(http.StatusNoContent, w.Code)
		})

		s.Run("異常系: 存在しない"+tt.kind.String(), func() {
			id := uuid.New()
			s.catalogCmds.EXPECT().DeleteItem(gomock.Any(), s.ss.admin, tt.kind, id).Return(tt.missing)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, tt.path+id.String(), nil, adminToken)
			httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, tt.message)
		})
	}

	s.Run("異常系: 不正なID", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/venues/not-a-uuid", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})

	s.Run("異常系: 一般ユーザーは403", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/cars/"+uuid.NewString(), nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestCateringMenu() {
	cateringID, dishID := uuid.New(), uuid.New()
	path := "/admin/caterings/" + cateringID.String() + "/dishes/" + dishID.String()

	s.Run("正常系: 料理の追加は201", func() {
		s.catalogCmds.EXPECT().LinkDish(gomock.Any(), s.ss.admin, cateringID, dishID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, adminToken)

		var res resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(cateringID, res.CateringID)
		s.Equal(dishID, res.DishID)
	})

	s.Run("異常系: 追加済みの料理は422", func() {
		s.catalogCmds.EXPECT().LinkDish(gomock.Any(), s.ss.admin, cateringID, dishID).
			Return(errs.Mark(errs.New("Dish already exists in catering"), errs.ErrMarketplaceRejected))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Rejected by marketplace")
	})

	s.Run("正常系: 料理の削除は204", func() {
		s.catalogCmds.EXPECT().UnlinkDish(gomock.Any(), s.ss.admin, cateringID, dishID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, adminToken)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("異常系: メニューにない料理", func() {
		s.catalogCmds.EXPECT().UnlinkDish(gomock.Any(), s.ss.admin, cateringID, dishID).Return(errs.ErrMenuItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Dish is not on the catering menu")
	})

	s.Run("異常系: 不正な料理ID", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/caterings/"+cateringID.String()+"/dishes/x", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid dish_id")
	})
}
