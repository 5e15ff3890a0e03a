package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bcingle/wormgo/input"
)

// KeyForEvent translates a tcell key event into the game's abstract
// symbol. Unmapped events yield KeyNone.
func KeyForEvent(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyRune:
		return input.KeyForRune(ev.Rune())
	default:
		return input.KeyNone
	}
}

// RunInput polls terminal events, forwarding key symbols to sink. It
// returns when the player quits (q, Esc, Ctrl-C) or the screen dies.
// Run it on its own goroutine; it owns PollEvent.
func RunInput(screen tcell.Screen, sink func(input.Key)) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			sink(KeyForEvent(ev))
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}
