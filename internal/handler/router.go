package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/handler/api"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Gate        *api.GateHandler
	BookingForm *api.BookingFormHandler
	Quote       *api.QuoteHandler
	Booking     *api.BookingHandler
	Admin       *api.AdminHandler
	Review      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/gate", Handler: h.Gate.Check, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.Quote, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})

		forms := apiGroup.Group("/booking-forms")
		forms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(forms, []route{
				{Method: http.MethodPost, Path: "", Handler: h.BookingForm.Open},
				{Method: http.MethodGet, Path: "/:id", Handler: h.BookingForm.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.BookingForm.Update},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.BookingForm.Submit},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.BookingForm.Discard},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Booking.Mine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.List},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodDelete, Path: "/:id/reviews/:review_id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Admin.UpdateBookingStatus},
				{Method: http.MethodPost, Path: "/promos", Handler: h.Admin.CreatePromo},
				{Method: http.MethodDelete, Path: "/promos/:id", Handler: h.Admin.DeletePromo},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodDelete, Path: "/venues/:id", Handler: h.Admin.DeleteCatalogItem(catalog.ItemVenue)},
				{Method: http.MethodDelete, Path: "/caterings/:id", Handler: h.Admin.DeleteCatalogItem(catalog.ItemCatering)},
				{Method: http.MethodPost, Path: "/caterings/:id/dishes/:dish_id", Handler: h.Admin.LinkDish},
				{Method: http.MethodDelete, Path: "/caterings/:id/dishes/:dish_id", Handler: h.Admin.UnlinkDish},
				{Method: http.MethodDelete, Path: "/dishes/:id", Handler: h.Admin.DeleteCatalogItem(catalog.ItemDish)},
				{Method: http.MethodDelete, Path: "/decorations/:id", Handler: h.Admin.DeleteCatalogItem(catalog.ItemDecoration)},
				{Method: http.MethodDelete, Path: "/cars/:id", Handler: h.Admin.DeleteCatalogItem(catalog.ItemCar)},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
