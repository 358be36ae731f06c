package components

import (
	"wedding-console/internal/handler"
	"wedding-console/internal/handler/api"
	"wedding-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGateHandler,
		api.NewBookingFormHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Gate        *api.GateHandler
	BookingForm *api.BookingFormHandler
	Quote       *api.QuoteHandler
	Booking     *api.BookingHandler
	Admin       *api.AdminHandler
	Review      *api.ReviewHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Gate:        p.Gate,
		BookingForm: p.BookingForm,
		Quote:       p.Quote,
		Booking:     p.Booking,
		Admin:       p.Admin,
		Review:      p.Review,
	}
}
