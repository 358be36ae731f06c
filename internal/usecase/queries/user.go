package queries

import (
	"context"
	"slices"
	"strings"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/usecase/shared"
)

type UserQueries interface {
	// List returns every marketplace account, ordered by username. Admins
	// only.
	List(ctx context.Context, sess *session.Session) ([]session.User, error)
}

type userQueriesImpl struct {
	users shared.UserDirectory
}

func NewUserQueries(users shared.UserDirectory) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) List(ctx context.Context, sess *session.Session) ([]session.User, error) {
	if err := shared.RequireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := q.users.ListUsers(ctx, sess.MarketplaceToken)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}

	slices.SortStableFunc(users, func(a, b session.User) int {
		if c := strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username)); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	return users, nil
}
