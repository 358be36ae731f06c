package bootstrap

import (
	"context"
	"log/slog"

	"wedding-console/internal/infra/messaging"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the outbox relay for the app's lifetime. Without
// brokers nothing is started and booking events stay in the outbox.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka未設定のためOutboxリレーを起動しません")
		return
	}

	var (
		producer *messaging.Producer
		relay    *messaging.Relay
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p, err := messaging.NewSaramaProducer(cfg.Kafka)
			if err != nil {
				return err
			}
			producer = p
			relay = messaging.NewRelay(uow, producer, clk, cfg.Kafka, logger)
			// not the hook ctx: it is cancelled once OnStart returns
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			if relay != nil {
				relay.Stop()
			}
			if producer != nil {
				return producer.Close()
			}
			return nil
		},
	})
}
