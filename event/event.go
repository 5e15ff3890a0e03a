// Package event decouples the game core from auxiliary consumers (audio,
// diagnostics). The controller publishes events into a queue; consumers
// receive them through a router, outside any game-state lock.
package event

// Type identifies a game event.
type Type int

const (
	// TypeAppleEaten fires when the worm head lands on the apple.
	// Payload: the new score.
	TypeAppleEaten Type = iota

	// TypeGameOver fires on self or wall collision. Payload: final score.
	TypeGameOver

	// TypeStateChanged fires on every PAUSED/PLAYING/GAMEOVER transition.
	// Payload: the new state as an int.
	TypeStateChanged

	// TypeMuteToggled fires when the mute flag flips. Payload: 1 muted,
	// 0 unmuted.
	TypeMuteToggled
)

// Event is one published game event.
type Event struct {
	Type    Type
	Payload int
	Frame   uint64
}
