package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/shared"
)

const maxRetryDelay = 10 * time.Minute

// Relay moves booking events from the Postgres outbox to Kafka. Each batch is
// claimed and settled in one transaction, so a crash mid-batch only causes a
// redelivery.
type Relay struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	cfg       config.KafkaConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.KafkaConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// RunOnce publishes one batch and returns how many events were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()

		events, err := tx.Outbox().ClaimBatch(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, ev := range events {
			if pubErr := r.publisher.Publish(ctx, ev); pubErr != nil {
				r.logger.Warn("イベントの送信に失敗しました",
					"event_id", ev.ID,
					"event_type", ev.EventType,
					"attempts", ev.Attempts+1,
					"error", pubErr.Error())

				retryAt := now.Add(retryDelay(int(ev.Attempts), r.cfg.PollInterval))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), ev, pubErr.Error(), r.cfg.MaxAttempts, retryAt); err != nil {
					return err
				}
				continue
			}

			if err := tx.Outbox().MarkSent(ctx, tx.DB(), ev.ID, r.clock.Now()); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "outbox relay batch failed")
	}
	return sent, nil
}

func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()

		r.logger.Info("Outbox relay started", "topic", r.cfg.Topic, "interval", r.cfg.PollInterval.String())

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Outbox relay stopped")
				return
			case <-ticker.C:
				n, err := r.RunOnce(ctx)
				if err != nil {
					r.logger.Error("Outbox relay batch failed", "error", err.Error())
					continue
				}
				if n > 0 {
					r.logger.Debug("Outbox relay published events", "count", n)
				}
			}
		}
	}()
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

// retryDelay doubles per attempt from base, capped at maxRetryDelay.
func retryDelay(attempts int, base time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	d := base
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}
