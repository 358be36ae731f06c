//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"wedding-console/internal/handler/dto/request"
	"wedding-console/internal/pkg/cookie"
	"wedding-console/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// LoginUser logs in through the console and returns the session token from
// the cookie it sets.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return sessionToken(t, w.Result().Cookies())
}

// SignupAndLogin creates the account on the marketplace through the console.
// Signup already starts a session.
func SignupAndLogin(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup",
		request.SignupRequest{Username: username, Email: email, Password: DefaultPassword}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return sessionToken(t, w.Result().Cookies())
}

func LogoutUser(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func sessionToken(t *testing.T, cookies []*http.Cookie) string {
	t.Helper()
	for _, ck := range cookies {
		if ck.Name == cookie.SessionCookieName {
			require.NotEmpty(t, ck.Value, "session cookie is empty")
			return ck.Value
		}
	}
	require.FailNow(t, "session cookie not found")
	return ""
}
