// Package clock abstracts wall time. Every external date in this system
// (performance search windows, order-date filters) is Korea-local, so the
// real clock reports KST.
package clock

import "time"

// KST is the zone order dates and search windows are expressed in.
var KST = time.FixedZone("Asia/Seoul", 9*60*60)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(KST)
}

// MockClock is a manually advanced clock for tests.
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
