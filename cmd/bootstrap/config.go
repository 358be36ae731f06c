package bootstrap

import (
	"log/slog"

	"wedding-console/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewValidatedConfig,
	),
)

// NewValidatedConfig refuses to start the console on a config it cannot serve
// sessions or bookings with.
func NewValidatedConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	slog.Info("configuration loaded",
		"marketplace", cfg.Marketplace.BaseURL,
		"session_ttl", cfg.Session.TTL,
		"draft_ttl", cfg.Session.DraftTTL,
		"outbox_relay", cfg.Kafka.Enabled(),
	)
	return cfg, nil
}
