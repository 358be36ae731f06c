//go:build unit

package config_test

import (
	"testing"
	"time"

	"wedding-console/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "テスト設定はそのまま通る", mutate: func(*config.Config) {}},
		{
			name:    "short secret",
			mutate:  func(c *config.Config) { c.JWT.Secret = "short" },
			wantErr: "JWT_SECRET",
		},
		{
			name:    "unparsable jwt duration",
			mutate:  func(c *config.Config) { c.JWT.Duration = "a day" },
			wantErr: "JWT_DURATION",
		},
		{
			name:    "zero session ttl",
			mutate:  func(c *config.Config) { c.Session.TTL = 0 },
			wantErr: "SESSION_TTL",
		},
		{
			name:    "negative draft ttl",
			mutate:  func(c *config.Config) { c.Session.DraftTTL = -time.Minute },
			wantErr: "DRAFT_TTL",
		},
		{
			name:    "relative marketplace url",
			mutate:  func(c *config.Config) { c.Marketplace.BaseURL = "marketplace:8000" },
			wantErr: "MARKETPLACE_BASE_URL",
		},
		{
			name: "brokers without batch size",
			mutate: func(c *config.Config) {
				c.Kafka.Brokers = []string{"localhost:9092"}
				c.Kafka.BatchSize = 0
			},
			wantErr: "OUTBOX_BATCH_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("all problems are reported together", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.JWT.Secret = ""
		cfg.Session.TTL = 0

		err := cfg.Validate()

		assert.ErrorContains(t, err, "JWT_SECRET")
		assert.ErrorContains(t, err, "SESSION_TTL")
	})
}

func TestKafkaConfigEnabled(t *testing.T) {
	assert.False(t, config.KafkaConfig{}.Enabled())
	assert.False(t, config.KafkaConfig{Brokers: []string{""}}.Enabled())
	assert.True(t, config.KafkaConfig{Brokers: []string{"", "kafka:9092"}}.Enabled())
}
