package engine

import "time"

// Pulse is the presentation-refresh signal source driving the render loop.
// The render loop performs no rate limiting of its own; it draws once per
// delivered pulse, as fast as the presentation layer permits.
type Pulse interface {
	// C returns the channel pulses arrive on.
	C() <-chan time.Time

	// Stop releases the pulse source. No pulses are delivered afterwards.
	Stop()
}

// TickerPulse fires at a fixed refresh rate. Terminal presentation uses
// this with the configured refresh rate standing in for vsync.
type TickerPulse struct {
	ticker *time.Ticker
}

// NewTickerPulse creates a pulse firing rate times per second.
func NewTickerPulse(rate float64) *TickerPulse {
	if rate <= 0 {
		rate = 60
	}
	return &TickerPulse{ticker: time.NewTicker(time.Duration(float64(time.Second) / rate))}
}

func (p *TickerPulse) C() <-chan time.Time { return p.ticker.C }
func (p *TickerPulse) Stop()               { p.ticker.Stop() }

// ManualPulse delivers a pulse only when Fire is called. Tests use it to
// step the render loop deterministically.
type ManualPulse struct {
	ch chan time.Time
}

// NewManualPulse creates a manual pulse source.
func NewManualPulse() *ManualPulse {
	return &ManualPulse{ch: make(chan time.Time, 1)}
}

// Fire delivers one pulse. Non-blocking; a pulse already pending is enough.
func (p *ManualPulse) Fire() {
	select {
	case p.ch <- time.Now():
	default:
	}
}

func (p *ManualPulse) C() <-chan time.Time { return p.ch }
func (p *ManualPulse) Stop()               {}
