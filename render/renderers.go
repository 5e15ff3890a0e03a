package render

import (
	"fmt"

	"github.com/bcingle/wormgo/entity"
	"github.com/bcingle/wormgo/game"
)

// BackgroundRenderer clears the canvas.
type BackgroundRenderer struct{}

func (BackgroundRenderer) Render(ctx Context, s Surface) {
	s.Clear(entity.ColorBackground)
}

// DebugRenderer paints a faint checkerboard over the board plus the
// timing readout. Active only while the debug flag is set.
type DebugRenderer struct{}

func (DebugRenderer) Render(ctx Context, s Surface) {
	snap := ctx.Snap
	if !snap.Debug {
		return
	}

	gw, gh := snap.GridSize()
	for y := 0; y < gh; y++ {
		for x := (y % 2); x < gw; x += 2 {
			s.FillRect(x*snap.Scale, y*snap.Scale, snap.Scale, snap.Scale, entity.ColorDebugGrid)
		}
	}

	head := "-"
	if len(snap.Worm) > 0 {
		head = snap.Worm[len(snap.Worm)-1].Pos.String()
	}
	rate := fmt.Sprintf("rate %.2f", snap.Rate)
	if ctx.MeasuredRate > 0 {
		rate = fmt.Sprintf("rate %.2f (measured %.1f)", snap.Rate, ctx.MeasuredRate)
	}
	s.DrawText(fmt.Sprintf("frame %d", snap.Frame), 0, 0, TextSmall, AlignLeft, entity.ColorTextDim)
	s.DrawText(rate, 0, snap.Scale, TextSmall, AlignLeft, entity.ColorTextDim)
	s.DrawText(fmt.Sprintf("head %s queue %d", head, snap.QueueDepth), 0, 2*snap.Scale, TextSmall, AlignLeft, entity.ColorTextDim)
}

// WormRenderer paints every body segment. A dead worm turns gray.
type WormRenderer struct{}

func (WormRenderer) Render(ctx Context, s Surface) {
	snap := ctx.Snap
	for _, seg := range snap.Worm {
		color := seg.Color
		if snap.State == game.StateGameOver {
			color = entity.ColorWormDead
		}
		px, py := seg.Pos.Pixels(snap.Scale)
		s.FillRect(px, py, snap.Scale, snap.Scale, color)
	}
}

// AppleRenderer paints the apple.
type AppleRenderer struct{}

func (AppleRenderer) Render(ctx Context, s Surface) {
	snap := ctx.Snap
	px, py := snap.Apple.Pos.Pixels(snap.Scale)
	s.FillRect(px, py, snap.Scale, snap.Scale, snap.Apple.Color)
}

// OverlayRenderer paints the pause help or the game-over card, centered
// on the board. Inactive while playing.
type OverlayRenderer struct{}

func (OverlayRenderer) Render(ctx Context, s Surface) {
	snap := ctx.Snap
	cx := snap.BoardWidth / 2
	cy := snap.BoardHeight / 2

	switch snap.State {
	case game.StatePaused:
		s.DrawText("PAUSED", cx, cy-2*snap.Scale, TextLarge, AlignCenter, entity.ColorText)
		s.DrawText("arrows/hjkl move - space resume", cx, cy, TextSmall, AlignCenter, entity.ColorTextDim)
		s.DrawText("g debug - m mute - q quit", cx, cy+snap.Scale, TextSmall, AlignCenter, entity.ColorTextDim)
	case game.StateGameOver:
		s.DrawText("GAME OVER", cx, cy-2*snap.Scale, TextLarge, AlignCenter, entity.ColorText)
		s.DrawText(fmt.Sprintf("score %d", snap.FinalScore), cx, cy, TextSmall, AlignCenter, entity.ColorText)
		s.DrawText("space to play again", cx, cy+snap.Scale, TextSmall, AlignCenter, entity.ColorTextDim)
	}
}

// StatusBarRenderer paints the settings bar along the bottom edge. It is
// always present and always on top.
type StatusBarRenderer struct{}

func (StatusBarRenderer) Render(ctx Context, s Surface) {
	snap := ctx.Snap
	barY := snap.BoardHeight - snap.Scale
	s.FillRect(0, barY, snap.BoardWidth, snap.Scale, entity.ColorStatusBar)

	s.DrawText(fmt.Sprintf("score %d", snap.Score), 0, barY, TextSmall, AlignLeft, entity.ColorText)
	s.DrawText(fmt.Sprintf("%.2f fps", snap.Rate), snap.BoardWidth/2, barY, TextSmall, AlignCenter, entity.ColorTextDim)
	if snap.Muted {
		s.DrawText("muted", snap.BoardWidth, barY, TextSmall, AlignRight, entity.ColorTextDim)
	}
}
