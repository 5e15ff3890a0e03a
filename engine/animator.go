// Package engine implements the dual-loop animation core: a fixed-rate
// logic loop whose cadence follows the current tick rate, and a
// free-running render loop driven by presentation-refresh pulses. The two
// loops share nothing but the monotonic frame counter; all game state
// stays behind the controller that owns it.
package engine

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bcingle/wormgo/logging"
)

// Logic receives one call per logic tick with the monotonic frame counter.
type Logic interface {
	Frame(frame uint64)
}

// Renderer receives one call per presentation pulse with the frame counter
// current at that moment.
type Renderer interface {
	RenderFrame(frame uint64)
}

// FrameListener observes logic ticks after the logic callback has run.
// Listeners fire in registration order.
type FrameListener func(frame uint64)

// LogicFunc adapts a plain function to the Logic interface.
type LogicFunc func(frame uint64)

func (f LogicFunc) Frame(frame uint64) { f(frame) }

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(frame uint64)

func (f RendererFunc) RenderFrame(frame uint64) { f(frame) }

// Animator decouples simulation cadence from presentation cadence.
//
// The logic loop sleeps time.Second/rate between ticks, recomputing the
// interval from the atomic rate every iteration, so a rate change is
// observed on the very next scheduling decision without restarting the
// loop. The render loop draws once per pulse.
//
// Stop is cooperative: both loops check for cancellation at their next
// wake-up; an in-flight callback is never interrupted. Restart after Stop
// resumes the frame counter without reset.
//
// A panicking callback is logged and the loop continues with the next
// scheduled invocation; a fault in one tick never kills the loop.
type Animator struct {
	logic    Logic
	renderer Renderer

	mu        sync.Mutex
	listeners []FrameListener
	stopChan  chan struct{}

	rateBits atomic.Uint64 // current tick rate, float64 bits
	frame    atomic.Uint64 // monotonic logic frame counter
	running  atomic.Bool
	wg       sync.WaitGroup

	pulse Pulse
	log   *logging.Logger
}

// NewAnimator creates an animator ticking logic at rate frames per second.
// renderer and pulse may both be nil when the presentation layer drives
// drawing on its own cadence (the windowed backend does this); logic may
// be nil for a render-only animator.
func NewAnimator(rate float64, logic Logic, renderer Renderer, pulse Pulse, log *logging.Logger) *Animator {
	if log == nil {
		log = logging.Nop()
	}
	a := &Animator{
		logic:    logic,
		renderer: renderer,
		pulse:    pulse,
		log:      log,
	}
	a.SetRate(rate)
	return a
}

// AddFrameListener registers an observer invoked after every logic tick,
// in registration order.
func (a *Animator) AddFrameListener(l FrameListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, l)
}

// SetRate changes the logic tick rate. Takes effect on the logic loop's
// next scheduling decision. Non-positive rates are ignored.
func (a *Animator) SetRate(rate float64) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return
	}
	a.rateBits.Store(math.Float64bits(rate))
}

// Rate returns the current logic tick rate.
func (a *Animator) Rate() float64 {
	return math.Float64frombits(a.rateBits.Load())
}

// FrameCount returns the monotonic logic frame counter. It survives
// Stop/Start cycles and resets only with the process.
func (a *Animator) FrameCount() uint64 {
	return a.frame.Load()
}

// Running reports whether the loops are active.
func (a *Animator) Running() bool {
	return a.running.Load()
}

// Start launches the logic loop, and the render loop when a renderer and
// pulse are present. Calling Start on a running animator is a no-op.
func (a *Animator) Start() {
	if !a.running.CompareAndSwap(false, true) {
		return
	}
	a.mu.Lock()
	a.stopChan = make(chan struct{})
	stop := a.stopChan
	a.mu.Unlock()

	a.wg.Add(1)
	go a.logicLoop(stop)

	if a.renderer != nil && a.pulse != nil {
		a.wg.Add(1)
		go a.renderLoop(stop)
	}
	a.log.Debug("animator started at %.2f fps, frame %d", a.Rate(), a.FrameCount())
}

// Stop requests cooperative shutdown and waits for both loops to observe
// it. Safe to call on a stopped animator.
func (a *Animator) Stop() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}
	a.mu.Lock()
	close(a.stopChan)
	a.mu.Unlock()
	a.wg.Wait()
	a.log.Debug("animator stopped at frame %d", a.FrameCount())
}

// interval derives the logic sleep from the current rate. Recomputed
// every iteration so runtime rate changes apply without a restart.
func (a *Animator) interval() time.Duration {
	return time.Duration(float64(time.Second) / a.Rate())
}

func (a *Animator) logicLoop(stop <-chan struct{}) {
	defer a.wg.Done()

	timer := time.NewTimer(a.interval())
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}
		if !a.running.Load() {
			return
		}

		frame := a.frame.Add(1)
		if a.logic != nil {
			a.invoke("logic", frame, a.logic.Frame)
		}

		a.mu.Lock()
		listeners := a.listeners
		a.mu.Unlock()
		for _, l := range listeners {
			a.invoke("listener", frame, l)
		}

		timer.Reset(a.interval())
	}
}

func (a *Animator) renderLoop(stop <-chan struct{}) {
	defer a.wg.Done()

	for {
		select {
		case <-stop:
			return
		case <-a.pulse.C():
		}
		if !a.running.Load() {
			return
		}
		a.invoke("render", a.frame.Load(), a.renderer.RenderFrame)
	}
}

// invoke runs a callback with panic containment. A fault is logged with
// the frame number and the loop carries on with its next scheduled tick.
func (a *Animator) invoke(name string, frame uint64, fn func(uint64)) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("%s callback panicked at frame %d: %v", name, frame, r)
		}
	}()
	fn(frame)
}
