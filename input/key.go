// Package input defines the abstract key symbols the game consumes.
// Presentation backends translate their native key events into these
// symbols and feed them to the controller's single HandleKey entry point.
package input

import "github.com/bcingle/wormgo/geom"

// Key is one abstract input symbol.
type Key int

const (
	// KeyNone is an unrecognized symbol; the controller ignores it.
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyToggle advances the state machine: pause, resume, or
	// acknowledge a game over.
	KeyToggle
	// KeyDebug toggles the debug overlay.
	KeyDebug
	// KeyMute toggles the audio mute flag.
	KeyMute
)

// Direction returns the grid direction for a direction key, or DirNone
// for every other symbol.
func (k Key) Direction() geom.Direction {
	switch k {
	case KeyUp:
		return geom.DirUp
	case KeyDown:
		return geom.DirDown
	case KeyLeft:
		return geom.DirLeft
	case KeyRight:
		return geom.DirRight
	default:
		return geom.DirNone
	}
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyToggle:
		return "toggle"
	case KeyDebug:
		return "debug"
	case KeyMute:
		return "mute"
	default:
		return "none"
	}
}

// KeyForRune maps printable keys shared by every backend: vi motion keys
// and wasd for movement, space to toggle, g for the debug overlay, m for
// mute. Arrow keys are backend-specific and mapped by the adapters.
func KeyForRune(r rune) Key {
	switch r {
	case 'k', 'w':
		return KeyUp
	case 'j', 's':
		return KeyDown
	case 'h', 'a':
		return KeyLeft
	case 'l', 'd':
		return KeyRight
	case ' ':
		return KeyToggle
	case 'g':
		return KeyDebug
	case 'm':
		return KeyMute
	default:
		return KeyNone
	}
}
