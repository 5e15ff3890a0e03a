package geom

import "testing"

func TestDirectionAxis(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Axis
	}{
		{DirUp, AxisVertical},
		{DirDown, AxisVertical},
		{DirLeft, AxisHorizontal},
		{DirRight, AxisHorizontal},
		{DirNone, AxisNone},
	}
	for _, tt := range tests {
		if got := tt.dir.Axis(); got != tt.want {
			t.Errorf("%v.Axis() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestSameAxis(t *testing.T) {
	if !DirLeft.SameAxis(DirRight) {
		t.Error("left and right share the horizontal axis")
	}
	if !DirUp.SameAxis(DirUp) {
		t.Error("a direction shares an axis with itself")
	}
	if DirUp.SameAxis(DirLeft) {
		t.Error("up and left are perpendicular")
	}
	if DirNone.SameAxis(DirNone) {
		t.Error("none shares an axis with nothing")
	}
}

func TestOpposite(t *testing.T) {
	if DirUp.Opposite() != DirDown || DirLeft.Opposite() != DirRight {
		t.Error("opposite direction wrong")
	}
	if DirNone.Opposite() != DirNone {
		t.Error("none has no opposite")
	}
}

func TestPositionStep(t *testing.T) {
	p := P(10, 10)
	if got := p.Step(DirUp); got != P(10, 9) {
		t.Errorf("step up = %v, want (10,9)", got)
	}
	if got := p.Step(DirRight); got != P(11, 10) {
		t.Errorf("step right = %v, want (11,10)", got)
	}
	if p != P(10, 10) {
		t.Error("Step must not mutate the receiver")
	}
}

func TestPositionIn(t *testing.T) {
	// Last valid column is w-1; w itself is one past the board.
	if !P(19, 0).In(20, 20) {
		t.Error("(19,0) is inside a 20x20 board")
	}
	if P(20, 0).In(20, 20) {
		t.Error("(20,0) is one past the last column")
	}
	if P(-1, 5).In(20, 20) || P(5, -1).In(20, 20) || P(5, 20).In(20, 20) {
		t.Error("negative or past-edge positions must be outside")
	}
}

func TestFromPixels(t *testing.T) {
	if got := FromPixels(200, 190, 10); got != P(20, 19) {
		t.Errorf("FromPixels(200,190,10) = %v, want (20,19)", got)
	}
	if got := FromPixels(199, 0, 10); got != P(19, 0) {
		t.Errorf("FromPixels floors: got %v, want (19,0)", got)
	}
}

func TestPixels(t *testing.T) {
	px, py := P(3, 4).Pixels(16)
	if px != 48 || py != 64 {
		t.Errorf("Pixels = (%d,%d), want (48,64)", px, py)
	}
}
