//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/pkg/patch"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"
	"wedding-console/tests/common/authtest"
	"wedding-console/tests/common/dbtest"
	"wedding-console/tests/common/httptest"
	"wedding-console/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	formsURL    = "/api/booking-forms"
	bookingsURL = "/api/bookings"
	adminURL    = "/api/admin"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// helpers

func (s *bookingSuite) openForm(token string, bookingID *uuid.UUID) queries.DraftView {
	t := s.T()
	var body any
	if bookingID != nil {
		body = request.OpenBookingFormRequest{BookingID: bookingID}
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, formsURL, body, token)

	var view queries.DraftView
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &view)
	return view
}

func (s *bookingSuite) updateForm(token string, id uuid.UUID, req request.UpdateBookingFormRequest) queries.DraftView {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, formsURL+"/"+id.String(), req, token)

	var view queries.DraftView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	return view
}

func (s *bookingSuite) submit(token string, id uuid.UUID, key string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost,
		formsURL+"/"+id.String()+"/submit", nil, headers, token)
}

// fullSelection picks every catalog entry for 50 guests.
func (s *bookingSuite) fullSelection() request.UpdateBookingFormRequest {
	eventDate := time.Now().UTC().AddDate(0, 3, 0).Truncate(time.Second)
	guests := 50
	venueID := s.Catalog.Venue.ID
	cars := []uuid.UUID{s.Catalog.Car.ID}
	method := "easypaisa"

	return request.UpdateBookingFormRequest{
		EventDate:     &eventDate,
		GuestCount:    &guests,
		VenueID:       &venueID,
		CateringID:    patch.Value(s.Catalog.Catering.ID),
		DecorationID:  patch.Value(s.Catalog.Decoration.ID),
		PromoID:       patch.Value(s.Catalog.Promo.ID),
		CarIDs:        &cars,
		PaymentMethod: &method,
	}
}

// book runs a form from open to submit and returns the stored booking.
func (s *bookingSuite) book(token string) resdto.BookingResponse {
	t := s.T()
	form := s.openForm(token, nil)
	s.updateForm(token, form.ID, s.fullSelection())

	w := s.submit(token, form.ID, uuid.NewString())
	var res resdto.SubmitResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res.Booking
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("フォームを開くとカタログと有効なプロモが返る", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		form := s.openForm(token, nil)

		assert.Equal(t, "pending", form.Status)
		assert.Equal(t, 1, form.GuestCount)
		assert.Zero(t, form.LoyaltyDiscount)
		require.Len(t, form.Options.Venues, 1)
		require.Len(t, form.Options.Promos, 2)
		for _, p := range form.Options.Promos {
			assert.Equal(t, p.ID == s.Catalog.Promo.ID, p.Selectable, p.Name)
		}
		assert.Equal(t, 1, dbtest.CountDrafts(t, s.DB, s.userID(token)))
	})

	s.Run("選択内容で請求額が再計算される", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)

		view := s.updateForm(token, form.ID, s.fullSelection())

		// 100000 + 20000 + 15000 + (300 + 700) * 50
		assert.Equal(t, int64(185000), view.Billing.TotalCost)
		assert.InDelta(t, 0.10, view.Billing.DiscountPercentage, 1e-9)
		assert.Equal(t, int64(166500), view.Billing.CostAfterDiscount)

		view = s.updateForm(token, form.ID, request.UpdateBookingFormRequest{
			PromoID:      patch.Null[uuid.UUID](),
			DecorationID: patch.Null[uuid.UUID](),
		})
		assert.Equal(t, int64(165000), view.Billing.TotalCost)
		assert.Equal(t, int64(165000), view.Billing.CostAfterDiscount)
		assert.Nil(t, view.PromoID)
	})

	s.Run("期限切れのプロモは選べない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, formsURL+"/"+form.ID.String(),
			request.UpdateBookingFormRequest{PromoID: patch.Value(s.Catalog.Expired.ID)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("送信で予約と車の確保が行われる", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		b := s.book(token)

		assert.Equal(t, "pending", b.Status)
		assert.Equal(t, int64(185000), b.Payment.TotalAmount)
		assert.Equal(t, int64(166500), b.Payment.AmountPayed)
		assert.Equal(t, "easypaisa", b.Payment.Method)
		require.Len(t, b.CarReservations, 1)
		assert.Equal(t, s.Catalog.Car.ID, b.CarReservations[0].CarID)

		assert.Zero(t, s.Market.Stock(s.Catalog.Car.ID))
		assert.Zero(t, dbtest.CountDrafts(t, s.DB, s.userID(token)), "送信済みフォームは削除されること")
		assert.Equal(t, 1, dbtest.CountEvents(t, s.DB, commands.EventBookingSubmitted, b.ID))
	})

	s.Run("同じキーでの再送信は最初の結果を返す", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)
		s.updateForm(token, form.ID, s.fullSelection())
		key := uuid.NewString()

		first := s.submit(token, form.ID, key)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		var replay resdto.SubmitResponse
		httptest.AssertSuccessResponse(t, s.submit(token, form.ID, key), http.StatusOK, &replay)
		assert.True(t, replay.Replayed)
		assert.Equal(t, 1, s.Market.BookingCount())
	})

	s.Run("Idempotency-Keyなし", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)

		w := s.submit(token, form.ID, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("未入力のフォームは送信できない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)

		w := s.submit(token, form.ID, uuid.NewString())
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
		assert.Zero(t, s.Market.BookingCount())
	})

	s.Run("在庫切れの車は予約ごと取り消される", func() {
		t := s.T()
		s.book(authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com"))

		other := authtest.SignupAndLogin(t, s.Router, "bilal.khan", "bilal@example.com")
		form := s.openForm(other, nil)
		s.updateForm(other, form.ID, s.fullSelection())

		w := s.submit(other, form.ID, uuid.NewString())
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "Car is not available")
		assert.Contains(t, body.Detail, s.Catalog.Car.ID.String())
		assert.Equal(t, 1, s.Market.BookingCount(), "失敗した予約は残らないこと")
		assert.Equal(t, 1, dbtest.CountDrafts(t, s.DB, s.userID(other)), "フォームは再送信できるよう残ること")
	})

	s.Run("2件目からはリピーター割引が付く", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		s.book(token)

		form := s.openForm(token, nil)
		assert.InDelta(t, 0.05, form.LoyaltyDiscount, 1e-9)

		sel := s.fullSelection()
		sel.CarIDs = &[]uuid.UUID{}
		view := s.updateForm(token, form.ID, sel)
		assert.InDelta(t, 0.15, view.Billing.DiscountPercentage, 1e-9)
		// ceil(170000 * 0.85)
		assert.Equal(t, int64(144500), view.Billing.CostAfterDiscount)
	})
}

func (s *bookingSuite) TestEditBooking() {
	s.Run("既存の予約を編集して再送信できる", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		b := s.book(token)

		form := s.openForm(token, &b.ID)
		require.NotNil(t, form.BookingID)
		assert.Equal(t, b.ID, *form.BookingID)
		assert.Equal(t, 50, form.GuestCount)
		assert.Equal(t, []uuid.UUID{s.Catalog.Car.ID}, form.CarIDs)
		assert.Zero(t, form.LoyaltyDiscount, "編集中の予約は割引の件数に含めない")

		guests := 100
		view := s.updateForm(token, form.ID, request.UpdateBookingFormRequest{GuestCount: &guests})
		assert.Equal(t, int64(235000), view.Billing.TotalCost)

		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(t, s.submit(token, form.ID, uuid.NewString()), http.StatusCreated, &res)
		assert.Equal(t, b.ID, res.Booking.ID)
		assert.Equal(t, 100, res.Booking.GuestCount)
		assert.Equal(t, int64(211500), res.Booking.Payment.AmountPayed)
		assert.Len(t, res.Booking.CarReservations, 1, "同じ車は確保し直さない")
		assert.Equal(t, 1, s.Market.BookingCount())
	})

	s.Run("他人の予約は編集できない", func() {
		t := s.T()
		b := s.book(authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com"))
		other := authtest.SignupAndLogin(t, s.Router, "bilal.khan", "bilal@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, formsURL,
			request.OpenBookingFormRequest{BookingID: &b.ID}, other)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestFormAccess() {
	s.Run("他人のフォームは見られない", func() {
		t := s.T()
		form := s.openForm(authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com"), nil)
		other := authtest.SignupAndLogin(t, s.Router, "bilal.khan", "bilal@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, formsURL+"/"+form.ID.String(), nil, other)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Booking form belongs to another user")
	})

	s.Run("期限切れのフォーム", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)
		dbtest.ExpireDrafts(t, s.DB)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, formsURL+"/"+form.ID.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusGone, "Booking form expired")
	})

	s.Run("破棄したフォームは残らない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		form := s.openForm(token, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, formsURL+"/"+form.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, formsURL+"/"+form.ID.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking form not found")
	})

	s.Run("カタログが取得できない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		s.Market.FailCatalog(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, formsURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Marketplace unavailable")
	})
}

func (s *bookingSuite) TestMyBookings() {
	s.Run("自分の予約だけが返る", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		b := s.book(token)
		other := authtest.SignupAndLogin(t, s.Router, "bilal.khan", "bilal@example.com")

		var mine []resdto.BookingResponse
		httptest.AssertSuccessResponse(t,
			httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/me", nil, token),
			http.StatusOK, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, b.ID, mine[0].ID)

		var theirs []resdto.BookingResponse
		httptest.AssertSuccessResponse(t,
			httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/me", nil, other),
			http.StatusOK, &theirs)
		assert.Empty(t, theirs)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, other)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("キャンセルで車が在庫に戻る", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		b := s.book(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+b.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		assert.Equal(t, 1, s.Market.Stock(s.Catalog.Car.ID))
		assert.Zero(t, s.Market.BookingCount())
		assert.Equal(t, 1, dbtest.CountEvents(t, s.DB, commands.EventBookingCancelled, b.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestAdmin() {
	s.Run("管理者は全予約を一覧しステータスを変更できる", func() {
		t := s.T()
		b := s.book(authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com"))
		s.Market.AddAdmin("admin", "admin@example.com", authtest.DefaultPassword)
		admin := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)

		var list resdto.BookingListResponse
		httptest.AssertSuccessResponse(t,
			httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/bookings", nil, admin),
			http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		assert.Empty(t, list.NextCursor)

		var updated resdto.BookingResponse
		httptest.AssertSuccessResponse(t,
			httptest.PerformRequest(t, s.Router, http.MethodPatch, adminURL+"/bookings/"+b.ID.String()+"/status",
				request.UpdateBookingStatusRequest{Status: "confirmed"}, admin),
			http.StatusOK, &updated)
		assert.Equal(t, "confirmed", updated.Status)
		assert.Equal(t, int64(166500), updated.Payment.AmountPayed, "支払い情報は変わらないこと")
		assert.Equal(t, 1, dbtest.CountEvents(t, s.DB, commands.EventBookingStatusChanged, b.ID))
	})

	s.Run("顧客は管理APIを使えない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/bookings", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("プロモの作成と削除", func() {
		t := s.T()
		s.Market.AddAdmin("admin", "admin@example.com", authtest.DefaultPassword)
		admin := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)

		var promo resdto.PromoResponse
		httptest.AssertSuccessResponse(t,
			httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/promos", request.CreatePromoRequest{
				Name:     "EID25",
				Discount: 0.25,
				Expiry:   time.Now().UTC().AddDate(1, 0, 0),
			}, admin),
			http.StatusCreated, &promo)
		assert.Equal(t, "EID25", promo.Name)

		form := s.openForm(admin, nil)
		assert.Len(t, form.Options.Promos, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/promos/"+promo.ID.String(), nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/promos/"+promo.ID.String(), nil, admin)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Promo not found")
	})
}

func (s *bookingSuite) userID(token string) uuid.UUID {
	t := s.T()
	var me resdto.UserResponse
	httptest.AssertSuccessResponse(t,
		httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token),
		http.StatusOK, &me)
	return me.ID
}
