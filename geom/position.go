package geom

import "fmt"

// Position is an integer grid coordinate. X grows rightward, Y grows
// downward (screen convention). Positions stay integral at all times:
// construction floors, movement is whole-cell steps, so there is no drift.
type Position struct {
	X, Y int
}

// P is a convenience constructor.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// FromPixels converts a pixel coordinate to the containing grid cell.
// Integer division floors toward zero, which is exact for the
// non-negative coordinates the board uses.
func FromPixels(px, py, scale int) Position {
	return Position{X: px / scale, Y: py / scale}
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Pixels returns the top-left pixel coordinate of the cell.
func (p Position) Pixels(scale int) (px, py int) {
	return p.X * scale, p.Y * scale
}

// In reports whether the position lies inside a w×h cell board with
// origin (0,0). The column at x == w is the first one past the board.
func (p Position) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
