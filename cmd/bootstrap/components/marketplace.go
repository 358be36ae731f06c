package components

import (
	"log/slog"

	"wedding-console/internal/infra/marketplace"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/usecase/shared"

	"go.uber.org/fx"
)

// One client serves every marketplace port.
var MarketplaceModule = fx.Module("marketplace",
	fx.Provide(
		NewMarketplaceClient,
		func(c *marketplace.Client) shared.MarketplaceAuth { return c },
		func(c *marketplace.Client) shared.CatalogLoader { return c },
		func(c *marketplace.Client) shared.BookingGateway { return c },
		func(c *marketplace.Client) shared.PromoGateway { return c },
		func(c *marketplace.Client) shared.ReviewGateway { return c },
		func(c *marketplace.Client) shared.CatalogAdminGateway { return c },
		func(c *marketplace.Client) shared.UserDirectory { return c },
	),
)

func NewMarketplaceClient(cfg config.Config, clk clock.Clock, logger *slog.Logger) *marketplace.Client {
	return marketplace.NewClient(cfg.Marketplace, clk, logger)
}
