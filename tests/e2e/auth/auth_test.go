//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/pkg/cookie"
	"wedding-console/tests/common/authtest"
	"wedding-console/tests/common/httptest"
	"wedding-console/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	gateURL   = "/api/gate"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestSignup() {
	s.Run("正常なサインアップ", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Username: "sana.malik",
			Email:    "sana@example.com",
			Password: authtest.DefaultPassword,
		}, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "sana@example.com", res.User.Email)
		assert.False(t, res.User.IsAdmin)

		ck := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, ck, "セッションCookieが設定されること")
		assert.True(t, ck.HttpOnly)
	})

	s.Run("登録済みのメールアドレス", func() {
		t := s.T()
		authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Username: "someone.else",
			Email:    "sana@example.com",
			Password: authtest.DefaultPassword,
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "User already exists")
	})

	s.Run("短すぎるパスワード", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Username: "sana.malik",
			Email:    "sana@example.com",
			Password: "short",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "sana@example.com",
			password:       authtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       authtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "sana@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       authtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				assert.Equal(t, tt.email, res.User.Email)
				assert.Positive(t, res.ExpiresIn)
			}
		})
	}
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("ログイン中のユーザー情報を取得できる", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "sana.malik", res.Username)
	})

	s.Run("Cookieだけでも認証できる", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("ログアウト後のトークンは使えない", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		authtest.LogoutUser(t, s.Router, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("期限切れトークン", func() {
		t := s.T()
		token := s.jwtHelper.CreateExpiredToken(t, uuid.New(), false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("存在しないセッションを指すトークン", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("別の鍵で署名されたトークン", func() {
		t := s.T()
		token := s.jwtHelper.CreateForgedToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session")
	})
}

func (s *authSuite) TestGate() {
	decide := func(path, token string) session.Decision {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, gateURL+"?path="+path, nil, token)
		var d session.Decision
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &d)
		return d
	}

	s.Run("未ログインはログイン画面へ", func() {
		assert.Equal(s.T(), session.Decision{Redirect: session.LoginPath}, decide("/bookings", ""))
		assert.True(s.T(), decide(session.LoginPath, "").Allow)
	})

	s.Run("顧客", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")

		d := decide("/bookings", token)
		assert.True(t, d.Allow)
		require.NotNil(t, d.User)
		assert.Equal(t, "sana@example.com", d.User.Email)

		assert.Equal(t, session.HomePath, decide(session.DashboardPath, token).Redirect)
		assert.Equal(t, session.HomePath, decide(session.LoginPath, token).Redirect)
	})

	s.Run("管理者は管理画面へ", func() {
		t := s.T()
		s.Market.AddAdmin("admin", "admin@example.com", authtest.DefaultPassword)
		token := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)

		assert.Equal(t, session.DashboardPath, decide("/bookings", token).Redirect)
		assert.True(t, decide(session.DashboardPath, token).Allow)
	})

	s.Run("marketplace障害時は未ログイン扱い", func() {
		t := s.T()
		token := authtest.SignupAndLogin(t, s.Router, "sana.malik", "sana@example.com")
		// the marketplace forgets the token, the console session still exists
		s.Market.Reset()

		assert.Equal(t, session.LoginPath, decide("/bookings", token).Redirect)
	})
}
