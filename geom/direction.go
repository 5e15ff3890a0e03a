// Package geom provides the integer grid primitives the game is built on.
// All gameplay coordinates are grid cells; pixel coordinates exist only at
// the rendering boundary (grid cell × scale factor).
package geom

// Direction is a unit movement vector on the grid. The zero value is
// DirNone (no movement).
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Axis classifies a direction for the input filter: two directions on the
// same axis (including a direction and its reverse) conflict.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// Axis returns the axis the direction moves along.
func (d Direction) Axis() Axis {
	switch {
	case d.DX != 0:
		return AxisHorizontal
	case d.DY != 0:
		return AxisVertical
	default:
		return AxisNone
	}
}

// SameAxis reports whether two directions share a movement axis.
// DirNone shares an axis with nothing, itself included.
func (d Direction) SameAxis(other Direction) bool {
	a := d.Axis()
	return a != AxisNone && a == other.Axis()
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}
