//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"wedding-console/internal/pkg/config"
	"wedding-console/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs console tokens with the configured secret. The tokens carry
// a session id that no store has seen, so they exercise the paths where the
// token verifies but the session behind it is gone.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(uuid.NewString(), userID, isAdmin)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(uuid.NewString(), userID, isAdmin)
	require.NoError(t, err)
	return token
}

// CreateForgedToken is signed with a different secret.
func (h *JWTHelper) CreateForgedToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-forged", time.Hour)
	token, err := service.GenerateToken(uuid.NewString(), userID, true)
	require.NoError(t, err)
	return token
}
