package middleware

import (
	"log/slog"
	"slices"

	"wedding-console/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader guards booking submission against double submits.
const IdempotencyKeyHeader = "Idempotency-Key"

// NewCORSMiddleware allows the browser console to send its session cookie
// and the submit key. A wildcard origin is dropped when credentials are
// allowed, since browsers refuse that combination.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowOrigins
	if cfg.AllowCredentials && slices.Contains(origins, "*") {
		slog.Warn("CORS: wildcard origin ignored because credentials are allowed")
		origins = slices.DeleteFunc(slices.Clone(origins), func(o string) bool { return o == "*" })
	}

	headers := cfg.AllowHeaders
	if !slices.Contains(headers, IdempotencyKeyHeader) {
		headers = append(slices.Clone(headers), IdempotencyKeyHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", origins, "AllowCredentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
