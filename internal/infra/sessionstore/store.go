package sessionstore

import (
	"context"
	"encoding/json"
	"errors"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store keeps console sessions in Redis. A key's TTL always matches the
// session's ExpiresAt, so an expired session is simply missing.
type Store struct {
	rdb   redis.Cmdable
	clock clock.Clock
}

func NewStore(rdb redis.Cmdable, clk clock.Clock) *Store {
	return &Store{rdb: rdb, clock: clk}
}

func Key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	ttl := clock.Remaining(s.clock, sess.ExpiresAt)
	if ttl == 0 {
		return infra.WrapRepoErr("session already expired", nil, infra.KindNotFound)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err, infra.KindCacheFailure)
	}

	if err := s.rdb.Set(ctx, Key(sess.ID), string(payload), ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save session", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	raw, err := s.rdb.Get(ctx, Key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load session", err, infra.KindCacheFailure)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session", err, infra.KindCacheFailure)
	}

	// key TTL and ExpiresAt can drift by a few ms
	if sess.IsExpired(s.clock.Now()) {
		return nil, infra.WrapRepoErr("session expired", nil, infra.KindNotFound)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, Key(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete session", err, infra.KindCacheFailure)
	}
	return nil
}
