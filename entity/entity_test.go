package entity

import (
	"testing"

	"github.com/bcingle/wormgo/geom"
)

func TestAdvanceIsIntegral(t *testing.T) {
	e := New(KindSegment, geom.P(5, 5), 10, Color{})
	Advance(&e, geom.DirRight)
	if e.Pos != geom.P(6, 5) {
		t.Errorf("advance right: got %v, want (6,5)", e.Pos)
	}
	for i := 0; i < 100; i++ {
		Advance(&e, geom.DirUp)
	}
	if e.Pos != geom.P(6, -95) {
		t.Errorf("100 steps up: got %v, want (6,-95)", e.Pos)
	}
}

func TestCollidesExactCell(t *testing.T) {
	a := New(KindSegment, geom.P(3, 3), 10, Color{})
	b := New(KindApple, geom.P(3, 3), 10, Color{})
	c := New(KindApple, geom.P(3, 4), 10, Color{})

	if !Collides(a, b) || !Collides(b, a) {
		t.Error("same-cell entities must collide, symmetrically")
	}
	if Collides(a, c) {
		t.Error("adjacent cells do not collide")
	}
}

func TestDecorationsNeverCollide(t *testing.T) {
	seg := New(KindSegment, geom.P(1, 1), 10, Color{})
	dec := New(KindDecoration, geom.P(1, 1), 10, Color{})
	if Collides(seg, dec) || Collides(dec, seg) {
		t.Error("decorative entities must never report a collision")
	}
}
