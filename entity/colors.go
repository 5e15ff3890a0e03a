package entity

// Game palette. Entities carry their color, so the palette lives with
// them rather than in the render layer.
var (
	ColorBackground = Color{R: 0x10, G: 0x10, B: 0x18}
	ColorWormBody   = Color{R: 0x3c, G: 0xb0, B: 0x43}
	ColorWormDead   = Color{R: 0x6e, G: 0x6e, B: 0x6e}
	ColorApple      = Color{R: 0xd6, G: 0x2f, B: 0x2f}
	ColorText       = Color{R: 0xe8, G: 0xe8, B: 0xe0}
	ColorTextDim    = Color{R: 0x90, G: 0x90, B: 0x98}
	ColorStatusBar  = Color{R: 0x20, G: 0x20, B: 0x2c}
	ColorDebugGrid  = Color{R: 0x2a, G: 0x2a, B: 0x36}
)
