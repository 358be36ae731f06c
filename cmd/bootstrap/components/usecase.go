package components

import (
	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/pkg/jwt"
	"wedding-console/internal/usecase"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"
	"wedding-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseSessionModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	booking.NewServices,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(mp shared.MarketplaceAuth, store shared.SessionStore, jwtService *jwt.Service, clk clock.Clock, cfg config.Config) commands.AuthCommands {
			return commands.NewAuthCommands(mp, store, jwtService, clk, cfg.Session.TTL)
		},
		func(
			uow shared.UnitOfWork,
			drafts queries.DraftReadStore,
			catalog shared.CatalogLoader,
			bookings shared.BookingGateway,
			idem shared.IdempotencyStore,
			services *booking.Services,
			cfg config.Config,
		) commands.BookingFormCommands {
			return commands.NewBookingFormCommands(uow, drafts, catalog, bookings, idem, services, cfg.Session.DraftTTL)
		},
		commands.NewBookingCommands,
		commands.NewPromoCommands,
		commands.NewReviewCommands,
		commands.NewCatalogAdminCommands,
		commands.NewDraftCleanupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDraftQueries,
		queries.NewQuoteQueries,
		queries.NewBookingQueries,
		queries.NewSessionQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionResolver,
	),
)
