package bootstrap

import (
	"wedding-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.MarketplaceModule,
	components.UseCaseModule,
	components.HandlerModule,
	MessagingModule,
)
