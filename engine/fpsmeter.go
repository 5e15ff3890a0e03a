package engine

import (
	"sync"
	"time"
)

// fpsWindow is the sliding measurement window.
const fpsWindow = time.Second

// FPSMeter measures the achieved logic tick rate over a sliding window.
// Register its Tick method as a frame listener; the debug overlay reads
// Rate to show configured versus achieved cadence.
type FPSMeter struct {
	clock TimeProvider

	mu     sync.Mutex
	stamps []time.Time
}

// NewFPSMeter creates a meter reading time from clock.
func NewFPSMeter(clock TimeProvider) *FPSMeter {
	return &FPSMeter{
		clock:  clock,
		stamps: make([]time.Time, 0, 256),
	}
}

// Tick records one logic tick. Matches the FrameListener signature.
func (m *FPSMeter) Tick(frame uint64) {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stamps = append(m.stamps, now)
	m.prune(now)
}

// Rate returns ticks observed during the last window, per second.
func (m *FPSMeter) Rate() float64 {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune(now)
	return float64(len(m.stamps)) / fpsWindow.Seconds()
}

// prune drops stamps older than the window. Caller holds the lock.
func (m *FPSMeter) prune(now time.Time) {
	cutoff := now.Add(-fpsWindow)
	i := 0
	for i < len(m.stamps) && m.stamps[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		m.stamps = append(m.stamps[:0], m.stamps[i:]...)
	}
}
