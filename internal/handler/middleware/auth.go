package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/pkg/cookie"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.SessionResolver
}

const ctxSessionKey = "session"

func NewAuthMiddleware(resolver usecase.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth loads the session behind the console token and puts it on the
// gin context for handlers to pass down explicitly.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Access token required", nil)
			return
		}

		sess, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Session resolution failed in auth middleware", "error", err.Error())
			if errs.Is(err, errs.ErrSessionExpired) || errs.Is(err, errs.ErrSessionNotFound) {
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Session store unavailable", nil)
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

// OptionalAuth resolves the session when a valid token is present and
// continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Debug("optional auth: session not resolved", "error", err.Error())
			c.Next()
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("session missing from context"), "Internal server error", nil)
			return
		}

		if !sess.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}

	sess, ok := v.(*session.Session)
	return sess, ok && sess != nil
}

func setSession(c *gin.Context, sess *session.Session) {
	c.Set(ctxSessionKey, sess)
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
