package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the marketplace account behind a console session.
type User struct {
	ID       uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

// Session replaces the browser-persisted identity store: it is loaded from
// storage at request start, passed explicitly to whoever needs the user, and
// removed on logout.
type Session struct {
	ID               uuid.UUID `json:"id"`
	User             User      `json:"user"`
	MarketplaceToken string    `json:"marketplace_token"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

func New(user User, marketplaceToken string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:               uuid.New(),
		User:             user,
		MarketplaceToken: marketplaceToken,
		CreatedAt:        now,
		ExpiresAt:        now.Add(ttl),
	}
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *Session) IsAdmin() bool {
	return s.User.IsAdmin
}

// WithUser returns a copy carrying a refreshed user record.
func (s *Session) WithUser(u User) *Session {
	cp := *s
	cp.User = u
	return &cp
}
