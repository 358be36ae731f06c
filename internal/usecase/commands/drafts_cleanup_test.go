//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	commandsmock "wedding-console/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPruneExpired(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	t.Run("正常系: 現在時刻で期限切れのフォームを削除する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		purger := commandsmock.NewMockExpiredDraftPurger(ctrl)
		purger.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(3), nil)

		n, err := commands.NewDraftCleanupCommands(purger, clock.NewMockClock(now)).PruneExpired(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("異常系: DBエラーは操作失敗として返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		purger := commandsmock.NewMockExpiredDraftPurger(ctrl)
		purger.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(0), errors.New("connection reset"))

		n, err := commands.NewDraftCleanupCommands(purger, clock.NewMockClock(now)).PruneExpired(context.Background())

		assert.Zero(t, n)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
