//go:build unit

package clock_test

import (
	"testing"
	"time"

	"wedding-console/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestRemaining(t *testing.T) {
	base := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(base)

	assert.Equal(t, 30*time.Minute, clock.Remaining(clk, base.Add(30*time.Minute)))

	clk.Add(time.Hour)
	assert.Zero(t, clock.Remaining(clk, base.Add(30*time.Minute)))
}
