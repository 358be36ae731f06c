package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a submit key is remembered.
const DefaultTTL = 24 * time.Hour

// Store guards booking submission against double submits. Keys are scoped per
// user so two users can never collide on the same client-generated key.
type Store struct {
	rdb   redis.Cmdable
	clock clock.Clock
	ttl   time.Duration
}

func NewStore(rdb redis.Cmdable, clk clock.Clock) *Store {
	return &Store{rdb: rdb, clock: clk, ttl: DefaultTTL}
}

func Key(userID uuid.UUID, key string) string {
	return "idem:submit:" + userID.String() + ":" + key
}

// Begin claims key for the request. When the key is already held the existing
// record is returned with acquired=false and the caller decides between
// replay, in-progress and mismatch.
func (s *Store) Begin(ctx context.Context, key string, userID uuid.UUID, requestHash string) (*readmodel.IdempotencyKeyRM, bool, error) {
	rec := readmodel.IdempotencyKeyRM{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		Status:      readmodel.IdempotencyStatusProcessing,
		CreatedAt:   s.clock.Now().UTC(),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to encode idempotency key", err, infra.KindCacheFailure)
	}

	ok, err := s.rdb.SetNX(ctx, Key(userID, key), string(payload), s.ttl).Result()
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to claim idempotency key", err, infra.KindCacheFailure)
	}
	if ok {
		return &rec, true, nil
	}

	existing, err := s.get(ctx, userID, key)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Complete records the booking produced under the key. The key keeps its
// original TTL.
func (s *Store) Complete(ctx context.Context, rec readmodel.IdempotencyKeyRM, bookingID uuid.UUID) error {
	rec.Status = readmodel.IdempotencyStatusCompleted
	rec.BookingID = &bookingID

	payload, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode idempotency key", err, infra.KindCacheFailure)
	}
	if err := s.rdb.Set(ctx, Key(rec.UserID, rec.Key), string(payload), redis.KeepTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, infra.KindCacheFailure)
	}
	return nil
}

// Abort releases the key so the client can retry after a failure.
func (s *Store) Abort(ctx context.Context, userID uuid.UUID, key string) error {
	if err := s.rdb.Del(ctx, Key(userID, key)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *Store) get(ctx context.Context, userID uuid.UUID, key string) (*readmodel.IdempotencyKeyRM, error) {
	raw, err := s.rdb.Get(ctx, Key(userID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// released between SETNX and GET
			return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err, infra.KindCacheFailure)
	}

	var rec readmodel.IdempotencyKeyRM
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode idempotency key", err, infra.KindCacheFailure)
	}
	return &rec, nil
}
