//go:build unit

package idempotency_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"wedding-console/internal/infra"
	"wedding-console/internal/infra/idempotency"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/usecase/readmodel"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func encode(t *testing.T, rec readmodel.IdempotencyKeyRM) string {
	t.Helper()
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	return string(b)
}

func TestBegin(t *testing.T) {
	userID := uuid.New()
	fresh := readmodel.IdempotencyKeyRM{
		Key:         "key-1",
		UserID:      userID,
		RequestHash: "hash-a",
		Status:      readmodel.IdempotencyStatusProcessing,
		CreatedAt:   now,
	}

	t.Run("first call acquires the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := idempotency.NewStore(rdb, clock.NewMockClock(now))

		mock.ExpectSetNX(idempotency.Key(userID, "key-1"), encode(t, fresh), idempotency.DefaultTTL).SetVal(true)

		rec, acquired, err := store.Begin(context.Background(), "key-1", userID, "hash-a")

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.Equal(t, fresh, *rec)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("held key returns the stored record", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := idempotency.NewStore(rdb, clock.NewMockClock(now.Add(time.Minute)))

		bookingID := uuid.New()
		stored := fresh
		stored.Status = readmodel.IdempotencyStatusCompleted
		stored.BookingID = &bookingID

		retry := fresh
		retry.CreatedAt = now.Add(time.Minute)
		mock.ExpectSetNX(idempotency.Key(userID, "key-1"), encode(t, retry), idempotency.DefaultTTL).SetVal(false)
		mock.ExpectGet(idempotency.Key(userID, "key-1")).SetVal(encode(t, stored))

		rec, acquired, err := store.Begin(context.Background(), "key-1", userID, "hash-a")

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Equal(t, readmodel.IdempotencyStatusCompleted, rec.Status)
		require.NotNil(t, rec.BookingID)
		assert.Equal(t, bookingID, *rec.BookingID)
	})

	t.Run("key released between claim and read", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := idempotency.NewStore(rdb, clock.NewMockClock(now))

		mock.ExpectSetNX(idempotency.Key(userID, "key-1"), encode(t, fresh), idempotency.DefaultTTL).SetVal(false)
		mock.ExpectGet(idempotency.Key(userID, "key-1")).RedisNil()

		_, _, err := store.Begin(context.Background(), "key-1", userID, "hash-a")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCompleteAndAbort(t *testing.T) {
	userID, bookingID := uuid.New(), uuid.New()
	rec := readmodel.IdempotencyKeyRM{
		Key:         "key-2",
		UserID:      userID,
		RequestHash: "hash-b",
		Status:      readmodel.IdempotencyStatusProcessing,
		CreatedAt:   now,
	}
	done := rec
	done.Status = readmodel.IdempotencyStatusCompleted
	done.BookingID = &bookingID

	rdb, mock := redismock.NewClientMock()
	store := idempotency.NewStore(rdb, clock.NewMockClock(now))

	mock.ExpectSet(idempotency.Key(userID, "key-2"), encode(t, done), redis.KeepTTL).SetVal("OK")
	mock.ExpectDel(idempotency.Key(userID, "key-3")).SetVal(1)

	require.NoError(t, store.Complete(context.Background(), rec, bookingID))
	require.NoError(t, store.Abort(context.Background(), userID, "key-3"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
