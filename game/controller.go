// Package game implements the controller: the single owner of worm,
// apple, score and state machine. The logic loop drives it through Frame,
// the input feed through HandleKey, and the render side reads it through
// Snapshot. One mutex serializes the three.
package game

import (
	"math/rand"
	"sync"

	"github.com/bcingle/wormgo/config"
	"github.com/bcingle/wormgo/entity"
	"github.com/bcingle/wormgo/event"
	"github.com/bcingle/wormgo/geom"
	"github.com/bcingle/wormgo/input"
	"github.com/bcingle/wormgo/logging"
)

// TickRater is the difficulty knob: the animator's runtime-adjustable
// logic rate. The controller raises it on every apple and restores the
// baseline on reset.
type TickRater interface {
	SetRate(rate float64)
	Rate() float64
}

// spawnTries bounds rejection sampling before falling back to a full
// board scan for a free apple cell.
const spawnTries = 64

// Controller owns the game state machine.
type Controller struct {
	mu sync.Mutex

	board    config.Board
	wormCfg  config.Worm
	baseRate float64
	rateStep float64

	ticker TickRater
	events *event.Queue
	log    *logging.Logger
	rng    *rand.Rand

	state      State
	worm       *entity.Worm
	apple      entity.Entity
	score      int
	finalScore int
	queue      []geom.Direction
	debug      bool
	muted      bool
	frame      uint64
}

// New creates a controller in the PAUSED state with the worm at its
// canonical start and a random apple. Board geometry is fixed for the
// controller's lifetime.
func New(cfg config.Config, ticker TickRater, events *event.Queue, log *logging.Logger, seed int64) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	c := &Controller{
		board:    cfg.Board,
		wormCfg:  cfg.Worm,
		baseRate: cfg.Tick.BaseRate,
		rateStep: cfg.Tick.RateStep,
		ticker:   ticker,
		events:   events,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StatePaused,
		muted:    !cfg.Audio.Enabled,
	}
	c.resetLocked()
	return c
}

// HandleKey is the single entry point for the abstract key feed.
// Unrecognized symbols are ignored silently.
func (c *Controller) HandleKey(key input.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d := key.Direction(); d != geom.DirNone {
		c.queue = append(c.queue, d)
		c.log.Trace("queued direction %v (depth %d)", d, len(c.queue))
		return
	}

	switch key {
	case input.KeyToggle:
		c.advanceState()
	case input.KeyDebug:
		c.debug = !c.debug
		c.log.Debug("debug overlay %v", c.debug)
	case input.KeyMute:
		c.muted = !c.muted
		c.publish(event.TypeMuteToggled, boolPayload(c.muted))
		c.log.Debug("muted %v", c.muted)
	default:
		c.log.Trace("ignoring key %v", key)
	}
}

// advanceState handles the toggle symbol. A game-over acknowledgement
// resets and resumes within this single invocation; no intermediate
// paused state is ever observable.
func (c *Controller) advanceState() {
	switch c.state {
	case StatePaused:
		c.setState(StatePlaying)
	case StatePlaying:
		c.setState(StatePaused)
	case StateGameOver:
		c.resetLocked()
		c.setState(StatePlaying)
	}
}

// Frame runs one logic tick. Registered as the animator's logic callback.
func (c *Controller) Frame(frame uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frame = frame
	if c.state != StatePlaying {
		return
	}

	c.drainInput()
	c.worm.MoveForward()

	head := c.worm.HeadPosition()
	if head == c.apple.Pos {
		c.score++
		rate := 0.0
		if c.ticker != nil {
			c.ticker.SetRate(c.ticker.Rate() + c.rateStep)
			rate = c.ticker.Rate()
		}
		c.spawnApple()
		c.publish(event.TypeAppleEaten, c.score)
		c.log.Info("apple eaten: score %d, rate %.2f", c.score, rate)
	} else {
		c.worm.DropTail()
	}

	if c.worm.SelfCollides() {
		c.gameOver("self collision")
		return
	}
	gw, gh := c.board.Cells()
	if !head.In(gw, gh) {
		c.gameOver("wall collision")
	}
}

// drainInput pops queued directions in FIFO order, discarding entries on
// the worm's current movement axis (same direction and reversal included)
// and applying the first perpendicular one. Draining stops at the
// accepted entry; anything after it stays queued for future ticks.
func (c *Controller) drainInput() {
	for len(c.queue) > 0 {
		d := c.queue[0]
		c.queue = c.queue[1:]
		if d.SameAxis(c.worm.Direction()) {
			continue
		}
		c.worm.SetDirection(d)
		break
	}
}

// spawnApple relocates the apple to a uniformly random cell not occupied
// by the worm. Rejection sampling first; if the worm is dense enough to
// defeat it, a full scan guarantees a free cell when one exists. On a
// completely full board the apple keeps its old cell.
func (c *Controller) spawnApple() {
	gw, gh := c.board.Cells()
	for i := 0; i < spawnTries; i++ {
		pos := geom.P(c.rng.Intn(gw), c.rng.Intn(gh))
		if !c.worm.Occupies(pos) {
			c.apple = entity.New(entity.KindApple, pos, c.board.Scale, entity.ColorApple)
			return
		}
	}

	capHint := gw*gh - c.worm.Length()
	if capHint < 0 {
		capHint = 0
	}
	free := make([]geom.Position, 0, capHint)
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			if pos := geom.P(x, y); !c.worm.Occupies(pos) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		c.log.Warn("board full, apple not respawned")
		return
	}
	pos := free[c.rng.Intn(len(free))]
	c.apple = entity.New(entity.KindApple, pos, c.board.Scale, entity.ColorApple)
}

// gameOver records the final score and freezes the simulation.
func (c *Controller) gameOver(cause string) {
	c.finalScore = c.score
	c.setState(StateGameOver)
	c.publish(event.TypeGameOver, c.finalScore)
	c.log.Info("game over (%s): final score %d at frame %d", cause, c.finalScore, c.frame)
}

// resetLocked restores the canonical start: empty input queue, zero
// score, baseline tick rate, fresh worm and apple. Caller holds the lock.
func (c *Controller) resetLocked() {
	c.queue = nil
	c.score = 0
	if c.ticker != nil {
		c.ticker.SetRate(c.baseRate)
	}
	c.worm = entity.NewWorm(
		geom.P(c.wormCfg.StartX, c.wormCfg.StartY),
		c.wormCfg.StartDirection(),
		c.wormCfg.Length,
		c.board.Scale,
		entity.ColorWormBody,
	)
	c.spawnApple()
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	c.publish(event.TypeStateChanged, int(s))
	c.log.Debug("state -> %v", s)
}

func (c *Controller) publish(t event.Type, payload int) {
	if c.events == nil {
		return
	}
	c.events.Push(event.Event{Type: t, Payload: payload, Frame: c.frame})
}

// Muted reports the audio mute flag. Collaborators query it before
// playing anything.
func (c *Controller) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// State returns the current state machine position.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot copies the render-relevant state under the lock.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var rate float64
	if c.ticker != nil {
		rate = c.ticker.Rate()
	}
	return Snapshot{
		State:       c.state,
		Score:       c.score,
		FinalScore:  c.finalScore,
		Rate:        rate,
		Frame:       c.frame,
		Worm:        c.worm.Segments(),
		Apple:       c.apple,
		Debug:       c.debug,
		Muted:       c.muted,
		QueueDepth:  len(c.queue),
		BoardWidth:  c.board.Width,
		BoardHeight: c.board.Height,
		Scale:       c.board.Scale,
	}
}

func boolPayload(b bool) int {
	if b {
		return 1
	}
	return 0
}
