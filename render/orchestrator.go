package render

import "github.com/bcingle/wormgo/game"

// Priority orders renderer execution; lower paints first.
type Priority int

const (
	PriorityBackground Priority = 100
	PriorityDebug      Priority = 150
	PriorityEntities   Priority = 200
	PriorityOverlay    Priority = 500
	// PriorityStatusBar paints last: the settings bar sits on top of
	// every overlay.
	PriorityStatusBar Priority = 600
)

// Context carries the per-frame inputs renderers draw from.
type Context struct {
	Snap game.Snapshot

	// MeasuredRate is the achieved logic tick rate for the debug overlay;
	// zero when no meter is attached.
	MeasuredRate float64
}

// SystemRenderer paints one visual concern for a frame. Renderers decide
// from the snapshot whether they apply (overlays skip themselves outside
// their state).
type SystemRenderer interface {
	Render(ctx Context, s Surface)
}

// SnapshotSource yields a consistent copy of game state; the controller
// implements it.
type SnapshotSource interface {
	Snapshot() game.Snapshot
}

// RateSource reports the measured tick rate; engine.FPSMeter implements
// it.
type RateSource interface {
	Rate() float64
}

type rendererEntry struct {
	renderer SystemRenderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator runs the render pipeline: snapshot once, paint renderers
// in priority order, present. It satisfies the animator's Renderer
// contract.
type Orchestrator struct {
	surface   Surface
	source    SnapshotSource
	meter     RateSource
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator painting source onto surface.
// meter may be nil.
func NewOrchestrator(surface Surface, source SnapshotSource, meter RateSource) *Orchestrator {
	return &Orchestrator{
		surface:   surface,
		source:    source,
		meter:     meter,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority. Insertion keeps the
// pipeline sorted; equal priorities keep registration order.
func (o *Orchestrator) Register(r SystemRenderer, priority Priority) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RegisterDefaults wires the standard pipeline: background, debug
// overlay, worm, apple, state overlay, status bar.
func (o *Orchestrator) RegisterDefaults() {
	o.Register(BackgroundRenderer{}, PriorityBackground)
	o.Register(DebugRenderer{}, PriorityDebug)
	o.Register(WormRenderer{}, PriorityEntities)
	o.Register(AppleRenderer{}, PriorityEntities)
	o.Register(OverlayRenderer{}, PriorityOverlay)
	o.Register(StatusBarRenderer{}, PriorityStatusBar)
}

// RenderFrame paints one frame. Matches engine.Renderer.
func (o *Orchestrator) RenderFrame(frame uint64) {
	ctx := Context{Snap: o.source.Snapshot()}
	if o.meter != nil {
		ctx.MeasuredRate = o.meter.Rate()
	}

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.surface)
	}
	o.surface.Present()
}
