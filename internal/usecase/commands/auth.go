package commands

import (
	"context"
	"log/slog"
	"time"

	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/pkg/jwt"
	"wedding-console/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserAlreadyExists    = errs.New("user already exists")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// AuthResult carries the console token and the session it points at.
type AuthResult struct {
	Session   *session.Session
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, sess *session.Session) error
}

type authCommandsImpl struct {
	marketplace shared.MarketplaceAuth
	sessions    shared.SessionStore
	jwtService  *jwt.Service
	clock       clock.Clock
	sessionTTL  time.Duration
}

func NewAuthCommands(
	marketplace shared.MarketplaceAuth,
	sessions shared.SessionStore,
	jwtService *jwt.Service,
	clk clock.Clock,
	sessionTTL time.Duration,
) AuthCommands {
	return &authCommandsImpl{
		marketplace: marketplace,
		sessions:    sessions,
		jwtService:  jwtService,
		clock:       clk,
		sessionTTL:  sessionTTL,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	u, token, err := a.marketplace.Signup(ctx, reg)
	if err != nil {
		if infra.IsKind(err, infra.KindUpstreamRejected) {
			return nil, errs.Mark(err, ErrUserAlreadyExists)
		}
		return nil, shared.MarkUpstream(err, nil)
	}

	return a.startSession(ctx, u, token)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, token, err := a.marketplace.Login(ctx, creds)
	if err != nil {
		switch infra.KindOf(err) {
		case infra.KindUpstreamUnauthorized, infra.KindNotFound, infra.KindUpstreamRejected:
			// same error for unknown email and wrong password
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, shared.MarkUpstream(err, nil)
	}

	return a.startSession(ctx, u, token)
}

// Logout always drops the console session. The marketplace call is best
// effort: its token may already be gone.
func (a *authCommandsImpl) Logout(ctx context.Context, sess *session.Session) error {
	if err := a.marketplace.Logout(ctx, sess.MarketplaceToken); err != nil {
		slog.Warn("marketplaceのログアウトに失敗しました", "session_id", sess.ID, "error", err.Error())
	}

	if err := a.sessions.Delete(ctx, sess.ID); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}
	return nil
}

func (a *authCommandsImpl) startSession(ctx context.Context, u session.User, marketplaceToken string) (*AuthResult, error) {
	sess := session.New(u, marketplaceToken, a.clock.Now(), a.sessionTTL)
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "failed to save session")
	}

	token, err := a.jwtService.GenerateToken(sess.ID.String(), u.ID, u.IsAdmin)
	if err != nil {
		if delErr := a.sessions.Delete(ctx, sess.ID); delErr != nil {
			slog.Warn("failed to clean up session", "session_id", sess.ID, "error", delErr.Error())
		}
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		Session:   sess,
		Token:     token,
		ExpiresIn: a.sessionTTL,
	}, nil
}
