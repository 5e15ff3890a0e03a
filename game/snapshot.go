package game

import "github.com/bcingle/wormgo/entity"

// Snapshot is an immutable copy of everything the render side needs for
// one frame. The controller builds it under its lock; renderers consume
// it without touching live game state.
type Snapshot struct {
	State      State
	Score      int
	FinalScore int
	Rate       float64
	Frame      uint64

	Worm  []entity.Entity
	Apple entity.Entity

	Debug      bool
	Muted      bool
	QueueDepth int

	// Board geometry, in pixels and cells.
	BoardWidth  int
	BoardHeight int
	Scale       int
}

// GridSize returns the board dimensions in cells.
func (s Snapshot) GridSize() (w, h int) {
	return s.BoardWidth / s.Scale, s.BoardHeight / s.Scale
}
