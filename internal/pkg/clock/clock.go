package clock

import "time"

// TimestampLayout mirrors a local ISO-8601 timestamp with microseconds and no zone offset,
// the format stored in existing data files.
const TimestampLayout = "2006-01-02T15:04:05.000000"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Timestamp returns the clock's current time formatted with TimestampLayout.
func Timestamp(c Clock) string {
	return c.Now().Format(TimestampLayout)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
