package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Marketplace MarketplaceConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Session     SessionConfig
	Kafka       KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Karachi"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// The marketplace API owns bookings and catalogs; the console only calls it.
type MarketplaceConfig struct {
	BaseURL string        `envconfig:"MARKETPLACE_BASE_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Karachi"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type SessionConfig struct {
	TTL      time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	DraftTTL time.Duration `envconfig:"DRAFT_TTL" default:"2h"`
}

// Brokers empty => the outbox relay is not started and events stay queued.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"booking-events"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

const minJWTSecretLen = 16

// Validate catches settings envconfig accepts but the console cannot run with.
func (c Config) Validate() error {
	var problems []error
	if len(c.JWT.Secret) < minJWTSecretLen {
		problems = append(problems, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLen))
	}
	if d, err := time.ParseDuration(c.JWT.Duration); err != nil || d <= 0 {
		problems = append(problems, fmt.Errorf("JWT_DURATION %q is not a positive duration", c.JWT.Duration))
	}
	if c.Session.TTL <= 0 {
		problems = append(problems, errors.New("SESSION_TTL must be positive"))
	}
	if c.Session.DraftTTL <= 0 {
		problems = append(problems, errors.New("DRAFT_TTL must be positive"))
	}
	if c.Marketplace.Timeout <= 0 {
		problems = append(problems, errors.New("MARKETPLACE_TIMEOUT must be positive"))
	}
	if u, err := url.Parse(c.Marketplace.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Errorf("MARKETPLACE_BASE_URL %q is not an absolute URL", c.Marketplace.BaseURL))
	}
	if c.Kafka.Enabled() && c.Kafka.BatchSize <= 0 {
		problems = append(problems, errors.New("OUTBOX_BATCH_SIZE must be positive when brokers are set"))
	}
	return errors.Join(problems...)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Karachi",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Marketplace: MarketplaceConfig{
			BaseURL: "http://localhost:18000",
			Timeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Karachi",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-console-sessions",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Session: SessionConfig{
			TTL:      time.Hour,
			DraftTTL: 30 * time.Minute,
		},
		Kafka: KafkaConfig{
			Topic:        "booking-events",
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
		},
	}
}
