package input

import (
	"testing"

	"github.com/bcingle/wormgo/geom"
)

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  Key
		want geom.Direction
	}{
		{KeyUp, geom.DirUp},
		{KeyDown, geom.DirDown},
		{KeyLeft, geom.DirLeft},
		{KeyRight, geom.DirRight},
		{KeyToggle, geom.DirNone},
		{KeyNone, geom.DirNone},
	}
	for _, tt := range tests {
		if got := tt.key.Direction(); got != tt.want {
			t.Errorf("%v.Direction() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'k', KeyUp}, {'w', KeyUp},
		{'j', KeyDown}, {'s', KeyDown},
		{'h', KeyLeft}, {'a', KeyLeft},
		{'l', KeyRight}, {'d', KeyRight},
		{' ', KeyToggle},
		{'g', KeyDebug},
		{'m', KeyMute},
		{'q', KeyNone},
		{'0', KeyNone},
	}
	for _, tt := range tests {
		if got := KeyForRune(tt.r); got != tt.want {
			t.Errorf("KeyForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
