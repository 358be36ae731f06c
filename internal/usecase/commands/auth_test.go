//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/pkg/jwt"
	"wedding-console/internal/usecase/commands"
	"wedding-console/tests/common/builder"
	sharedmock "wedding-console/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type authFixture struct {
	marketplace *sharedmock.MockMarketplaceAuth
	sessions    *sharedmock.MockSessionStore
	jwtService  *jwt.Service
	cmd         commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		marketplace: sharedmock.NewMockMarketplaceAuth(ctrl),
		sessions:    sharedmock.NewMockSessionStore(ctrl),
		jwtService:  jwt.NewService("test-secret", time.Hour),
	}
	f.cmd = commands.NewAuthCommands(f.marketplace, f.sessions, f.jwtService, clock.NewMockClock(authNow), time.Hour)
	return f
}

func TestAuthCommands_Signup(t *testing.T) {
	t.Run("正常系: セッションを保存しトークンを返す", func(t *testing.T) {
		f := newAuthFixture(t)
		ub := builder.NewUserBuilder()
		u := ub.BuildSessionUser()

		f.marketplace.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(u, "mp-token", nil)
		var saved *session.Session
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *session.Session) error {
				saved = s
				return nil
			})

		res, err := f.cmd.Signup(context.Background(), ub.BuildSignupDTO())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, u, saved.User)
		assert.Equal(t, "mp-token", saved.MarketplaceToken)
		assert.Equal(t, authNow.Add(time.Hour), saved.ExpiresAt)

		claims, err := f.jwtService.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID.String(), claims.SessionID)
		assert.Equal(t, u.ID, claims.UserID)
	})

	t.Run("異常系: 既存ユーザー", func(t *testing.T) {
		f := newAuthFixture(t)
		ub := builder.NewUserBuilder()

		f.marketplace.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(session.User{}, "", infra.WrapRepoErr("already registered", nil, infra.KindUpstreamRejected))

		_, err := f.cmd.Signup(context.Background(), ub.BuildSignupDTO())
		assert.True(t, errs.Is(err, commands.ErrUserAlreadyExists))
	})

	t.Run("異常系: 入力不正はmarketplaceを呼ばない", func(t *testing.T) {
		f := newAuthFixture(t)
		ub := builder.NewUserBuilder().WithEmail("not-an-email")

		_, err := f.cmd.Signup(context.Background(), ub.BuildSignupDTO())
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestAuthCommands_Login(t *testing.T) {
	tests := []struct {
		name    string
		mpErr   error
		wantErr error
	}{
		{"401は認証失敗", infra.WrapRepoErr("bad password", nil, infra.KindUpstreamUnauthorized), commands.ErrInvalidCredentials},
		{"404も認証失敗", infra.WrapRepoErr("no user", nil, infra.KindNotFound), commands.ErrInvalidCredentials},
		{"5xxはmarketplace障害", infra.WrapRepoErr("down", errors.New("502"), infra.KindUpstreamFailure), errs.ErrMarketplaceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.marketplace.EXPECT().Login(gomock.Any(), gomock.Any()).Return(session.User{}, "", tt.mpErr)

			_, err := f.cmd.Login(context.Background(), builder.NewUserBuilder().BuildLoginDTO())
			assert.True(t, errs.Is(err, tt.wantErr))
		})
	}

	t.Run("正常系", func(t *testing.T) {
		f := newAuthFixture(t)
		u := builder.NewUserBuilder().AsAdmin().BuildSessionUser()

		f.marketplace.EXPECT().Login(gomock.Any(), gomock.Any()).Return(u, "mp-token", nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.cmd.Login(context.Background(), builder.NewUserBuilder().BuildLoginDTO())

		require.NoError(t, err)
		assert.True(t, res.Session.IsAdmin())
		assert.Equal(t, time.Hour, res.ExpiresIn)
	})
}

func TestAuthCommands_Logout(t *testing.T) {
	f := newAuthFixture(t)
	sess := session.New(builder.NewUserBuilder().BuildSessionUser(), "mp-token", authNow, time.Hour)

	// marketplace failure does not keep the console session alive
	f.marketplace.EXPECT().Logout(gomock.Any(), "mp-token").Return(errors.New("timeout"))
	f.sessions.EXPECT().Delete(gomock.Any(), sess.ID).Return(nil)

	assert.NoError(t, f.cmd.Logout(context.Background(), sess))
}
