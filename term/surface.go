// Package term presents the game in a terminal via tcell. One board cell
// maps to one character cell; the surface quantizes incoming pixel
// coordinates by the configured scale.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bcingle/wormgo/entity"
	"github.com/bcingle/wormgo/render"
)

// Surface implements render.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen
	scale  int
}

// NewSurface wraps an initialized screen. scale is the game's pixels per
// grid cell, used to quantize paint commands.
func NewSurface(screen tcell.Screen, scale int) *Surface {
	return &Surface{screen: screen, scale: scale}
}

func toTcell(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Clear fills the whole screen with the background color.
func (s *Surface) Clear(c entity.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

// FillRect paints the character cells covered by the pixel rectangle.
func (s *Surface) FillRect(x, y, w, h int, c entity.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	x0, y0 := x/s.scale, y/s.scale
	x1 := (x + w + s.scale - 1) / s.scale
	y1 := (y + h + s.scale - 1) / s.scale
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// DrawText writes a label at the character cell containing the anchor.
// Font size has no terminal equivalent and is ignored.
func (s *Surface) DrawText(text string, x, y, size int, align render.Align, c entity.Color) {
	col, row := x/s.scale, y/s.scale
	switch align {
	case render.AlignCenter:
		col -= len(text) / 2
	case render.AlignRight:
		col -= len(text)
	}

	style := tcell.StyleDefault.Foreground(toTcell(c))
	for i, r := range text {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

// Present flushes the frame to the terminal.
func (s *Surface) Present() {
	s.screen.Show()
}
