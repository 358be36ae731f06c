//go:build unit

package messaging_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"wedding-console/internal/infra"
	"wedding-console/internal/infra/messaging"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/usecase/readmodel"
	"wedding-console/internal/usecase/shared"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func event(attempts int32) readmodel.OutboxEventRM {
	return readmodel.OutboxEventRM{
		ID:          uuid.New(),
		EventType:   "booking.submitted",
		AggregateID: uuid.New(),
		Payload:     []byte(`{"amount_payed":1080}`),
		Attempts:    attempts,
		Status:      readmodel.OutboxStatusPending,
		CreatedAt:   now,
	}
}

func TestProducer_Publish(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			if string(val) != `{"amount_payed":1080}` {
				return errors.New("unexpected payload " + string(val))
			}
			return nil
		})

		err := messaging.NewProducer(sp, "booking-events").Publish(context.Background(), event(0))

		require.NoError(t, err)
		require.NoError(t, sp.Close())
	})

	t.Run("broker failure", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		err := messaging.NewProducer(sp, "booking-events").Publish(context.Background(), event(0))

		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
		require.NoError(t, sp.Close())
	})
}

// fakeOutbox records relay calls in memory.
type fakeOutbox struct {
	pending []readmodel.OutboxEventRM
	sent    []uuid.UUID
	failed  map[uuid.UUID]time.Time
	claimed int
}

func (f *fakeOutbox) Enqueue(context.Context, sqlc.DBTX, string, uuid.UUID, []byte, time.Time) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeOutbox) ClaimBatch(_ context.Context, _ sqlc.DBTX, _ time.Time, limit int) ([]readmodel.OutboxEventRM, error) {
	f.claimed = limit
	return f.pending, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, _ sqlc.DBTX, ev readmodel.OutboxEventRM, _ string, _ int, retryAt time.Time) error {
	f.failed[ev.ID] = retryAt
	return nil
}

type fakeTx struct{ outbox *fakeOutbox }

func (t fakeTx) Drafts() shared.DraftRepository  { return nil }
func (t fakeTx) Outbox() shared.OutboxRepository { return t.outbox }
func (t fakeTx) DB() sqlc.DBTX                   { return nil }

type fakeUoW struct{ tx fakeTx }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func TestRelay_RunOnce(t *testing.T) {
	ok1, bad, ok2 := event(0), event(2), event(0)
	outbox := &fakeOutbox{
		pending: []readmodel.OutboxEventRM{ok1, bad, ok2},
		failed:  map[uuid.UUID]time.Time{},
	}

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndSucceed()
	sp.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
	sp.ExpectSendMessageAndSucceed()

	cfg := config.KafkaConfig{Topic: "booking-events", PollInterval: 5 * time.Second, BatchSize: 25, MaxAttempts: 5}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	relay := messaging.NewRelay(fakeUoW{tx: fakeTx{outbox: outbox}}, messaging.NewProducer(sp, cfg.Topic), clock.NewMockClock(now), cfg, logger)

	sent, err := relay.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 25, outbox.claimed)
	assert.Equal(t, []uuid.UUID{ok1.ID, ok2.ID}, outbox.sent)
	// third attempt waits base * 2^2
	assert.Equal(t, now.Add(20*time.Second), outbox.failed[bad.ID])
	require.NoError(t, sp.Close())
}

func TestRelay_StartStop(t *testing.T) {
	outbox := &fakeOutbox{failed: map[uuid.UUID]time.Time{}}
	sp := mocks.NewSyncProducer(t, nil)
	cfg := config.KafkaConfig{Topic: "booking-events", PollInterval: 10 * time.Millisecond, BatchSize: 5, MaxAttempts: 3}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	relay := messaging.NewRelay(fakeUoW{tx: fakeTx{outbox: outbox}}, messaging.NewProducer(sp, cfg.Topic), clock.NewRealClock(), cfg, logger)

	relay.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	relay.Stop()

	assert.Empty(t, outbox.sent)
	require.NoError(t, sp.Close())
}
