package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bcingle/wormgo/entity"
	"github.com/bcingle/wormgo/input"
	"github.com/bcingle/wormgo/render"
)

func newSimSurface(t *testing.T) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	sim.SetSize(40, 24)
	return NewSurface(sim, 10), sim
}

func TestFillRectQuantizesToCells(t *testing.T) {
	s, sim := newSimSurface(t)
	defer sim.Fini()

	// One 10×10 pixel rect at (30, 20) is exactly cell (3, 2).
	s.FillRect(30, 20, 10, 10, entity.ColorApple)
	s.Present()

	_, _, style, _ := sim.GetContent(3, 2)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(0xd6, 0x2f, 0x2f) {
		t.Errorf("cell (3,2) background = %v, want apple red", bg)
	}
	_, _, style, _ = sim.GetContent(4, 2)
	_, bg, _ = style.Decompose()
	if bg == tcell.NewRGBColor(0xd6, 0x2f, 0x2f) {
		t.Error("cell (4,2) must stay untouched")
	}
}

func TestDrawTextAlignment(t *testing.T) {
	s, sim := newSimSurface(t)
	defer sim.Fini()

	s.DrawText("abc", 100, 0, render.TextSmall, render.AlignLeft, entity.ColorText)
	s.DrawText("abc", 100, 10, render.TextSmall, render.AlignCenter, entity.ColorText)
	s.DrawText("abc", 100, 20, render.TextSmall, render.AlignRight, entity.ColorText)
	s.Present()

	check := func(col, row int, want rune) {
		t.Helper()
		r, _, _, _ := sim.GetContent(col, row)
		if r != want {
			t.Errorf("cell (%d,%d) = %q, want %q", col, row, r, want)
		}
	}
	check(10, 0, 'a') // left: starts at the anchor column
	check(9, 1, 'a')  // center: shifted back by half the label
	check(7, 2, 'a')  // right: ends at the anchor column
}

func TestKeyForEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.KeyDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.KeyRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeyToggle},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.KeyNone},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyNone},
	}
	for _, tt := range tests {
		if got := KeyForEvent(tt.ev); got != tt.want {
			t.Errorf("KeyForEvent(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}
