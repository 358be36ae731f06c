//go:build unit

package api_test

import (
	"time"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/tests/common/builder"
	usecasemock "wedding-console/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

type sessions struct {
	customer *session.Session
	admin    *session.Session
}

// newAuthedRouter wires the real auth middleware over a resolver mock that
// knows one customer token and one admin token.
func newAuthedRouter(ctrl *gomock.Controller) (*gin.Engine, *middleware.AuthMiddleware, sessions) {
	gin.SetMode(gin.TestMode)
	now := time.Now()

	ss := sessions{
		customer: session.New(builder.NewUserBuilder().BuildSessionUser(), "mp-customer", now, time.Hour),
		admin:    session.New(builder.NewUserBuilder().WithEmail("admin@example.com").AsAdmin().BuildSessionUser(), "mp-admin", now, time.Hour),
	}

	resolver := usecasemock.NewMockSessionResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), customerToken).Return(ss.customer, nil).AnyTimes()
	resolver.EXPECT().Resolve(gomock.Any(), adminToken).Return(ss.admin, nil).AnyTimes()

	return gin.New(), middleware.NewAuthMiddleware(resolver), ss
}

func bookingRM(owner session.User) readmodel.BookingRM {
	id := uuid.New()
	return readmodel.BookingRM{
		ID:         id,
		BookedAt:   time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		EventDate:  time.Date(2027, 5, 22, 0, 0, 0, 0, time.UTC),
		GuestCount: 120,
		Status:     "pending",
		User:       owner,
		VenueID:    uuid.New(),
		VenueName:  "Lakeside Hall",
		Payment: readmodel.PaymentRM{
			ID:          uuid.New(),
			Method:      "card",
			TotalAmount: 100000,
			Discount:    0.05,
			AmountPayed: 95000,
		},
		CarReservations: []readmodel.CarReservationRM{
			{ID: uuid.New(), CarID: uuid.New(), BookingID: id},
		},
	}
}
