package engine

import "time"

// TimeProvider abstracts the clock so scheduling logic is testable
// without sleeping against wall time.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns real system time with monotonic clock
// readings. This is the provider production mains inject.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a monotonic time provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
