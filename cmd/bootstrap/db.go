package bootstrap

import (
	"context"
	"log/slog"

	"wedding-console/internal/infra/db"
	"wedding-console/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// DBModule holds the console's own state: booking drafts and the outbox.
// Bookings themselves live in the marketplace.
var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("drafts database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stat := pool.Stat()
			slog.Debug("drafts pool ready", "total_conns", stat.TotalConns(), "max_conns", stat.MaxConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
