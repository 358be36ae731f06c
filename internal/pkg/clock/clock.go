package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Draft timestamps round-trip through timestamptz, which keeps microseconds.
const storagePrecision = time.Microsecond

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is UTC and truncated to what the drafts table stores, so a draft read
// back compares equal to the one that was saved.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(storagePrecision)
}

// Remaining is how long until deadline, never negative.
func Remaining(c Clock, deadline time.Time) time.Duration {
	if d := deadline.Sub(c.Now()); d > 0 {
		return d
	}
	return 0
}

// MockClock is safe to share with background workers under test.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
