package usecase

import (
	"context"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/pkg/jwt"
	"wedding-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// SessionResolver turns the console token into the server-side session that
// is then passed explicitly to every usecase needing the current user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
	store      shared.SessionStore
	clock      clock.Clock
}

func NewSessionResolver(jwtService *jwt.Service, store shared.SessionStore, clk clock.Clock) SessionResolver {
	return &sessionResolverImpl{
		jwtService: jwtService,
		store:      store,
		clock:      clk,
	}
}

func (r *sessionResolverImpl) Resolve(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, errs.ErrSessionNotFound
	}

	claims, err := r.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionExpired)
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionNotFound)
	}

	sess, err := r.store.Load(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// logged out or TTL elapsed
			return nil, errs.Mark(err, errs.ErrSessionExpired)
		}
		return nil, err
	}

	if sess.User.ID != claims.UserID || sess.IsExpired(r.clock.Now()) {
		return nil, errs.ErrSessionExpired
	}

	return sess, nil
}
