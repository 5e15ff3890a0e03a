package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bcingle/wormgo/game"
	"github.com/bcingle/wormgo/input"
	"github.com/bcingle/wormgo/render"
)

// keyBindings maps ebiten keys to the game's abstract symbols.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyK:          input.KeyUp,
	ebiten.KeyJ:          input.KeyDown,
	ebiten.KeyH:          input.KeyLeft,
	ebiten.KeyL:          input.KeyRight,
	ebiten.KeySpace:      input.KeyToggle,
	ebiten.KeyG:          input.KeyDebug,
	ebiten.KeyM:          input.KeyMute,
}

// Game bridges ebiten's run loop to the controller and orchestrator.
// Logic stays on the animator's own loop; ebiten only feeds input and
// draws.
type Game struct {
	controller   *game.Controller
	orchestrator *render.Orchestrator
	surface      *Surface
	width        int
	height       int
}

// NewGame creates the bridge. The orchestrator must paint onto surface.
func NewGame(controller *game.Controller, orchestrator *render.Orchestrator, surface *Surface, width, height int) *Game {
	return &Game{
		controller:   controller,
		orchestrator: orchestrator,
		surface:      surface,
		width:        width,
		height:       height,
	}
}

// Update forwards freshly pressed keys to the controller.
func (g *Game) Update() error {
	for key, sym := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.controller.HandleKey(sym)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw binds the frame target and runs the render pipeline. This call is
// the presentation pulse.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.orchestrator.RenderFrame(0)
}

// Layout fixes the logical canvas at the board's pixel size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
