package queries

import (
	"context"
	"log/slog"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"
)

type SessionQueries interface {
	// Gate decides whether the page at path may render for sess. sess is nil
	// for anonymous requests.
	Gate(ctx context.Context, sess *session.Session, path string) session.Decision
	Current(ctx context.Context, sess *session.Session) (*session.User, error)
}

type sessionQueriesImpl struct {
	marketplace shared.MarketplaceAuth
	store       shared.SessionStore
	gate        session.Gate
}

func NewSessionQueries(marketplace shared.MarketplaceAuth, store shared.SessionStore) SessionQueries {
	return &sessionQueriesImpl{
		marketplace: marketplace,
		store:       store,
		gate:        session.NewGate(),
	}
}

func (q *sessionQueriesImpl) Gate(ctx context.Context, sess *session.Session, path string) session.Decision {
	u, err := q.Current(ctx, sess)
	if err != nil {
		slog.Debug("gate: current user lookup failed", "path", path, "error", err.Error())
		return q.gate.Resolve(path, nil, err)
	}
	return q.gate.Resolve(path, u, nil)
}

// Current asks the marketplace who the token belongs to and keeps the stored
// copy of the user in step, so a role change shows up on the next request.
func (q *sessionQueriesImpl) Current(ctx context.Context, sess *session.Session) (*session.User, error) {
	if sess == nil {
		return nil, errs.ErrSessionNotFound
	}

	u, err := q.marketplace.Me(ctx, sess.MarketplaceToken)
	if err != nil {
		return nil, shared.MarkUpstream(err, errs.ErrSessionExpired)
	}

	if u != sess.User {
		if err := q.store.Save(ctx, sess.WithUser(u)); err != nil {
			slog.Warn("failed to refresh session user", "session_id", sess.ID, "error", err.Error())
		}
	}
	return &u, nil
}
