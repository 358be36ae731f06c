package commands

import (
	"context"
	"log/slog"
	"time"

	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
)

type ExpiredDraftPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type DraftCleanupCommands interface {
	PruneExpired(ctx context.Context) (int64, error)
}

type draftCleanupCommandsImpl struct {
	drafts ExpiredDraftPurger
	clock  clock.Clock
}

func NewDraftCleanupCommands(drafts ExpiredDraftPurger, clk clock.Clock) DraftCleanupCommands {
	return &draftCleanupCommandsImpl{drafts: drafts, clock: clk}
}

func (c *draftCleanupCommandsImpl) PruneExpired(ctx context.Context) (int64, error) {
	n, err := c.drafts.DeleteExpired(ctx, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.Info("期限切れの予約フォームを削除しました", "count", n)
	return n, nil
}
