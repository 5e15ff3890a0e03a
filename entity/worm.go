package entity

import "github.com/bcingle/wormgo/geom"

// Worm is the player: an ordered chain of segment entities, oldest (tail)
// at the front of the slice, newest (head) at the back. The head position
// is the authoritative worm position for movement and collision.
//
// Length is always ≥ 1. The worm grows by appending a new head segment on
// every move; the controller drops the tail afterwards unless the tick
// scored, which is what turns an eaten apple into net growth.
type Worm struct {
	segments []Entity
	dir      geom.Direction
	scale    int
	color    Color
}

// NewWorm creates a worm of the given length with its head at start,
// facing dir. The body trails behind the head, opposite the facing
// direction, so the first MoveForward is always safe.
func NewWorm(start geom.Position, dir geom.Direction, length, scale int, color Color) *Worm {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite()
	segments := make([]Entity, 0, length+1)
	// Build tail-first: the cell furthest behind the head goes in front.
	for i := length - 1; i >= 0; i-- {
		pos := start
		for j := 0; j < i; j++ {
			pos = pos.Step(back)
		}
		segments = append(segments, New(KindSegment, pos, scale, color))
	}
	return &Worm{segments: segments, dir: dir, scale: scale, color: color}
}

// Direction returns the worm's current travel direction.
func (w *Worm) Direction() geom.Direction {
	return w.dir
}

// SetDirection changes the travel direction. The change takes effect at
// the next MoveForward call, never mid-tick.
func (w *Worm) SetDirection(d geom.Direction) {
	w.dir = d
}

// HeadPosition returns the newest segment's grid cell.
func (w *Worm) HeadPosition() geom.Position {
	return w.segments[len(w.segments)-1].Pos
}

// Length returns the number of body segments.
func (w *Worm) Length() int {
	return len(w.segments)
}

// MoveForward translates the head one cell along the current direction and
// appends a new head segment there. Without a matching DropTail the worm's
// length grows by exactly one.
func (w *Worm) MoveForward() {
	head := w.segments[len(w.segments)-1]
	Advance(&head, w.dir)
	w.segments = append(w.segments, head)
}

// DropTail removes and returns the oldest segment. Called once per tick
// unless the tick scored.
func (w *Worm) DropTail() Entity {
	tail := w.segments[0]
	w.segments = w.segments[1:]
	return tail
}

// SelfCollides reports whether any historical body segment occupies the
// current head cell. The head itself is excluded from the scan.
func (w *Worm) SelfCollides() bool {
	head := w.HeadPosition()
	for i := 0; i < len(w.segments)-1; i++ {
		if w.segments[i].Pos == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, sits on pos.
// Used to keep apple spawns off the worm.
func (w *Worm) Occupies(pos geom.Position) bool {
	for _, s := range w.segments {
		if s.Pos == pos {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body chain, tail first. Render code
// consumes the copy without holding game state locks.
func (w *Worm) Segments() []Entity {
	out := make([]Entity, len(w.segments))
	copy(out, w.segments)
	return out
}
