// Package entity holds the drawable game entities and the movement and
// collision primitives that operate on them. One kind-tagged struct covers
// every drawable variant; behavior differences dispatch on the kind tag.
package entity

import "github.com/bcingle/wormgo/geom"

// Color is a 24-bit RGB color attached to a drawable entity.
type Color struct {
	R, G, B uint8
}

// Kind tags an entity with its gameplay role.
type Kind uint8

const (
	// KindSegment is a worm body segment.
	KindSegment Kind = iota
	// KindApple is the collectible.
	KindApple
	// KindDecoration is a purely visual entity. Decorations never
	// participate in collision checks.
	KindDecoration
)

// Entity is a single drawable unit occupying one grid cell. Position is in
// grid cells; the pixel footprint is Pos × Scale with a Scale × Scale size.
// The position is integral at all times.
type Entity struct {
	Kind  Kind
	Pos   geom.Position
	Scale int
	Color Color
}

// New creates an entity at the given grid cell.
func New(kind Kind, pos geom.Position, scale int, color Color) Entity {
	return Entity{Kind: kind, Pos: pos, Scale: scale, Color: color}
}

// Advance moves the entity one whole grid cell along d. Movement is an
// integer step so repeated advancement cannot drift off the grid.
func Advance(e *Entity, d geom.Direction) {
	e.Pos = e.Pos.Step(d)
}

// Collides reports whether two entities occupy the same grid cell.
// The predicate is exact cell identity, not bounding-box overlap, and it
// is symmetric. Decorations never collide.
func Collides(a, b Entity) bool {
	if a.Kind == KindDecoration || b.Kind == KindDecoration {
		return false
	}
	return a.Pos == b.Pos
}
