// Package render turns game snapshots into paint commands on an abstract
// surface. Backends (terminal cells, a GPU window) implement Surface; the
// renderers never know which one they are talking to.
package render

import "github.com/bcingle/wormgo/entity"

// Align positions text relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text sizes, in points on pixel backends. Cell backends ignore them.
const (
	TextSmall = 12
	TextLarge = 24
)

// Surface consumes paint commands. Coordinates and sizes are pixels; a
// cell-based backend quantizes them. Side effect only, no return values.
type Surface interface {
	// Clear fills the whole canvas with a background color.
	Clear(c entity.Color)

	// FillRect paints a filled rectangle.
	FillRect(x, y, w, h int, c entity.Color)

	// DrawText paints a text label anchored at (x, y).
	DrawText(text string, x, y, size int, align Align, c entity.Color)

	// Present pushes the finished frame to the display.
	Present()
}
