//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"wedding-console/internal/domain/pricing"
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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockBookingCommands(ctrl)
	q := queriesmock.NewMockBookingQueries(ctrl)

	router, auth, ss := newAuthedRouter(ctrl)
	h := api.NewBookingHandler(cmds, q)
	g := router.Group("/bookings", auth.RequireAuth())
	g.GET("/me", h.Mine)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Cancel)

	t.Run("自分の予約一覧", func(t *testing.T) {
		mine := bookingRM(ss.customer.User)
		mine.CarReservations = nil
		q.EXPECT().Mine(gomock.Any(), ss.customer).Return([]readmodel.BookingRM{mine}, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/bookings/me", nil, customerToken)

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res, 1)
		assert.Equal(t, mine.ID, res[0].ID)
		assert.NotNil(t, res[0].CarReservations)
		assert.Contains(t, w.Body.String(), `"car_reservations":[]`)
	})

	t.Run("予約詳細", func(t *testing.T) {
		b := bookingRM(ss.customer.User)
		q.EXPECT().GetByID(gomock.Any(), ss.customer, b.ID).Return(&b, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/bookings/"+b.ID.String(), nil, customerToken)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Lakeside Hall", res.VenueName)
		assert.Equal(t, b.CarReservations[0].CarID, res.CarReservations[0].CarID)
	})

	t.Run("他人の予約は取り消せない", func(t *testing.T) {
		id := uuid.New()
		cmds.EXPECT().Cancel(gomock.Any(), ss.customer, id).
			Return(errs.Mark(errs.New("owned by another user"), errs.ErrBookingForbidden))

		w := httptest.PerformRequest(t, router, http.MethodDelete, "/bookings/"+id.String(), nil, customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Booking belongs to another user")
	})

	t.Run("取り消し成功", func(t *testing.T) {
		id := uuid.New()
		cmds.EXPECT().Cancel(gomock.Any(), ss.customer, id).Return(nil)

		w := httptest.PerformRequest(t, router, http.MethodDelete, "/bookings/"+id.String(), nil, customerToken)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockQuoteQueries(ctrl)

	router, auth, ss := newAuthedRouter(ctrl)
	h := api.NewQuoteHandler(q)
	router.POST("/quotes", auth.RequireAuth(), h.Quote)

	venueID := uuid.New()

	t.Run("見積もり", func(t *testing.T) {
		want := reqdto.QuoteRequest{VenueID: venueID, GuestCount: 80}
		q.EXPECT().Quote(gomock.Any(), ss.customer, want).Return(&queries.QuoteView{
			Billing:         pricing.Billing{TotalCost: 100000, DiscountPercentage: 0, CostAfterDiscount: 100000},
			CatalogLoadedAt: time.Now(),
		}, nil)

		w := httptest.PerformRequest(t, router, http.MethodPost, "/quotes",
			map[string]any{"venue_id": venueID, "guest_count": 80}, customerToken)

		var res queries.QuoteView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int64(100000), res.Billing.CostAfterDiscount)
	})

	t.Run("ゲスト数0は400", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/quotes",
			map[string]any{"venue_id": venueID, "guest_count": 0}, customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})

	t.Run("カタログ取得失敗は502", func(t *testing.T) {
		q.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("catalog load failed"), errs.ErrMarketplaceUnavailable))

		w := httptest.PerformRequest(t, router, http.MethodPost, "/quotes",
			map[string]any{"venue_id": venueID, "guest_count": 3}, customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Marketplace unavailable")
	})
}

func TestGateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockSessionQueries(ctrl)

	router, auth, ss := newAuthedRouter(ctrl)
	h := api.NewGateHandler(q)
	router.GET("/gate", auth.OptionalAuth(), h.Check)

	t.Run("匿名はnilセッションで判定", func(t *testing.T) {
		q.EXPECT().Gate(gomock.Any(), (*session.Session)(nil), "/bookings").
			Return(session.Decision{Redirect: session.LoginPath})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/gate?path=/bookings", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), session.LoginPath)
	})

	t.Run("ログイン済みはセッション付き", func(t *testing.T) {
		q.EXPECT().Gate(gomock.Any(), ss.customer, "/").Return(session.Decision{Allow: true})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/gate", nil, customerToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
