// Package gfx presents the game in a window via ebiten. Paint commands
// map one-to-one onto the pixel canvas; ebiten's own draw cadence serves
// as the presentation pulse, so the animator runs logic only.
package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bcingle/wormgo/entity"
	"github.com/bcingle/wormgo/render"
)

// debugGlyphWidth is the pixel advance of ebiten's debug font, used to
// offset centered and right-aligned labels.
const debugGlyphWidth = 6

// Surface implements render.Surface on the frame's target image. The
// target is swapped in by Game.Draw every frame.
type Surface struct {
	target *ebiten.Image
}

// NewSurface creates an unbound surface; Game.Draw binds it per frame.
func NewSurface() *Surface {
	return &Surface{}
}

func toRGBA(c entity.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Clear fills the canvas.
func (s *Surface) Clear(c entity.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(toRGBA(c))
}

// FillRect paints a filled rectangle in pixels.
func (s *Surface) FillRect(x, y, w, h int, c entity.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), toRGBA(c), false)
}

// DrawText paints a label with the debug font. Size and color are fixed
// by the font; alignment shifts the anchor.
func (s *Surface) DrawText(text string, x, y, size int, align render.Align, c entity.Color) {
	if s.target == nil {
		return
	}
	switch align {
	case render.AlignCenter:
		x -= len(text) * debugGlyphWidth / 2
	case render.AlignRight:
		x -= len(text) * debugGlyphWidth
	}
	ebitenutil.DebugPrintAt(s.target, text, x, y)
}

// Present is a no-op; ebiten flips the frame itself.
func (s *Surface) Present() {}
