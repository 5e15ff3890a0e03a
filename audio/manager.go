// Package audio is the sound collaborator: it subscribes to game events
// and synthesizes short cues through the speaker. The game core never
// imports it; everything arrives through the event router. No assets are
// loaded, every sound is generated.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/bcingle/wormgo/event"
	"github.com/bcingle/wormgo/logging"
)

const sampleRate = beep.SampleRate(48000)

// MuteSource is queried before every cue; the game controller implements
// it.
type MuteSource interface {
	Muted() bool
}

// Manager owns the speaker mixer and plays event-driven cues. It
// implements event.Handler.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	mute MuteSource
	log  *logging.Logger
}

// NewManager creates a manager. Call Initialize before registering it
// with the router.
func NewManager(mute MuteSource, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		mixer: &beep.Mixer{},
		mute:  mute,
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences playback. beep provides no speaker teardown; clearing
// the playing streamers is the idiomatic shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Clear()
}

// EventTypes registers the manager for score and terminal events.
func (m *Manager) EventTypes() []event.Type {
	return []event.Type{event.TypeAppleEaten, event.TypeGameOver}
}

// HandleEvent plays the cue for one game event, honoring the mute flag.
func (m *Manager) HandleEvent(ev event.Event) {
	if m.mute != nil && m.mute.Muted() {
		return
	}

	switch ev.Type {
	case event.TypeAppleEaten:
		m.play(beep.Take(sampleRate.N(time.Millisecond*120), NewBlipGenerator(sampleRate)))
	case event.TypeGameOver:
		m.play(beep.Take(sampleRate.N(time.Millisecond*600), NewCrashGenerator(sampleRate)))
	}
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
