package engine

import (
	"testing"
	"time"
)

func TestFPSMeterRate(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	m := NewFPSMeter(clock)

	// 10 ticks spread over one second.
	for i := 0; i < 10; i++ {
		m.Tick(uint64(i))
		clock.Advance(100 * time.Millisecond)
	}

	if got := m.Rate(); got < 9 || got > 10 {
		t.Errorf("Rate = %v, want ~10", got)
	}
}

func TestFPSMeterPrunesOldTicks(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	m := NewFPSMeter(clock)

	for i := 0; i < 5; i++ {
		m.Tick(uint64(i))
	}
	clock.Advance(2 * time.Second)

	if got := m.Rate(); got != 0 {
		t.Errorf("Rate = %v after the window elapsed, want 0", got)
	}
}
