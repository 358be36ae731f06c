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
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"
	"wedding-console/tests/common/httptest"
	commandsmock "wedding-console/tests/mock/commands"
	queriesmock "wedding-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingFormHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingFormCommands
	mockQueries  *queriesmock.MockDraftQueries
	ss           sessions
}

func (s *BookingFormHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingFormCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)

	router, auth, ss := newAuthedRouter(s.mockCtrl)
	s.router, s.ss = router, ss

	h := api.NewBookingFormHandler(s.mockCommands, s.mockQueries)
	forms := s.router.Group("/booking-forms", auth.RequireAuth())
	forms.POST("", h.Open)
	forms.GET("/:id", h.Get)
	forms.PATCH("/:id", h.Update)
	forms.POST("/:id/submit", h.Submit)
	forms.DELETE("/:id", h.Discard)
}

func (s *BookingFormHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingFormHandlerTestSuite))
}

func draftView(id uuid.UUID) *queries.DraftView {
	return &queries.DraftView{
		ID:         id,
		GuestCount: 1,
		CarIDs:     []uuid.UUID{},
		Status:     "pending",
		Billing: pricing.Billing{
			TotalCost:          100000,
			DiscountPercentage: 0.05,
			CostAfterDiscount:  95000,
		},
		LoyaltyDiscount: 0.05,
		UpdatedAt:       time.Now(),
		ExpiresAt:       time.Now().Add(2 * time.Hour),
	}
}

func (s *BookingFormHandlerTestSuite) TestOpen() {
	s.Run("正常系: ボディなしで新規フォームを開く", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Open(gomock.Any(), s.ss.customer, reqdto.OpenBookingFormRequest{}).
			Return(draftView(id), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-forms", nil, customerToken)

		var res queries.DraftView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(id, res.ID)
		s.Equal(int64(95000), res.Billing.CostAfterDiscount)
	})

	s.Run("正常系: 既存予約の編集フォームを開く", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().
			Open(gomock.Any(), s.ss.customer, reqdto.OpenBookingFormRequest{BookingID: &bookingID}).
			Return(draftView(uuid.New()), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-forms",
			map[string]any{"booking_id": bookingID}, customerToken)
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("異常系: 他人の予約", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("owned by another user"), errs.ErrBookingForbidden))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-forms",
			map[string]any{"booking_id": uuid.New()}, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Booking belongs to another user")
	})

	s.Run("異常系: 未ログイン", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-forms", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *BookingFormHandlerTestSuite) TestGet() {
	id := uuid.New()

	cases := []struct {
		name         string
		path         string
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name: "正常系",
			path: "/booking-forms/" + id.String(),
			setupMock: func() {
				s.mockQueries.EXPECT().Get(gomock.Any(), s.ss.customer, id).Return(draftView(id), nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:         "異常系: 不正なID",
			path:         "/booking-forms/not-a-uuid",
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid id",
		},
		{
			name: "異常系: 期限切れ",
			path: "/booking-forms/" + id.String(),
			setupMock: func() {
				s.mockQueries.EXPECT().Get(gomock.Any(), s.ss.customer, id).Return(nil, errs.ErrDraftExpired)
			},
			expectCode:   http.StatusGone,
			expectInBody: "Booking form expired",
		},
		{
			name: "異常系: 存在しない",
			path: "/booking-forms/" + id.String(),
			setupMock: func() {
				s.mockQueries.EXPECT().Get(gomock.Any(), s.ss.customer, id).Return(nil, errs.ErrDraftNotFound)
			},
			expectCode:   http.StatusNotFound,
			expectInBody: "Booking form not found",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, customerToken)
			if tc.expectInBody == "" {
				s.Equal(tc.expectCode, w.Code)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *BookingFormHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	path := "/booking-forms/" + id.String()

	s.Run("正常系: nullで装飾を外しゲスト数は変更", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.ss.customer, id, gomock.Any()).
			DoAndReturn(func(_ any, _ *session.Session, _ uuid.UUID, req reqdto.UpdateBookingFormRequest) (*queries.DraftView, error) {
				s.True(req.DecorationID.Set)
				s.True(req.DecorationID.Null)
				s.False(req.CateringID.Set)
				s.Require().NotNil(req.GuestCount)
				s.Equal(150, *req.GuestCount)
				return draftView(id), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]any{"decoration_id": nil, "guest_count": 150}, customerToken)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("異常系: ドメイン検証エラー", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errs.New("guest count exceeds venue capacity"), errs.ErrDomainValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]any{"guest_count": 10000}, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("異常系: 他人のフォーム", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrDraftForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]any{"guest_count": 10}, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Booking form belongs to another user")
	})
}

func (s *BookingFormHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	path := "/booking-forms/" + id.String() + "/submit"
	headers := map[string]string{"Idempotency-Key": "key-1"}

	s.Run("正常系: 初回は201", func() {
		b := bookingRM(s.ss.customer.User)
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ss.customer, id, "key-1").
			Return(&commands.SubmitResult{Booking: b}, nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, path, nil, headers, customerToken)

		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.False(res.Replayed)
		s.Equal(b.ID, res.Booking.ID)
		s.Equal(int64(95000), res.Booking.Payment.AmountPayed)
		s.Len(res.Booking.CarReservations, 1)
	})

	s.Run("正常系: 再送は200で同じ予約", func() {
		b := bookingRM(s.ss.customer.User)
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ss.customer, id, "key-1").
			Return(&commands.SubmitResult{Booking: b, IsReplayed: true}, nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, path, nil, headers, customerToken)

		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Replayed)
	})

	s.Run("異常系: キーなし", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ss.customer, id, "").
			Return(nil, errs.ErrIdempotencyKeyRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("異常系: 処理中", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), id, "key-1").
			Return(nil, errs.ErrIdempotencyInProgress)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, path, nil, headers, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "currently being processed")
	})

	s.Run("異常系: 車が予約済みなら詳細に車IDが載る", func() {
		carID := uuid.New()
		err := errs.WithDetail(errs.Mark(errs.New("car reservation rejected"), errs.ErrCarUnavailable), "car_id="+carID.String())
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), id, "key-1").Return(nil, err)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, path, nil, headers, customerToken)
		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Car is not available")
		s.Equal("car_id="+carID.String(), body.Detail)
	})
}

func (s *BookingFormHandlerTestSuite) TestDiscard() {
	id := uuid.New()
	s.mockCommands.EXPECT().Discard(gomock.Any(), s.ss.customer, id).Return(nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/booking-forms/"+id.String(), nil, customerToken)
	s.Equal(http.StatusNoContent, w.Code)
}
