package game

// State is the controller's state machine position. Exactly one state is
// active per controller instance.
type State uint8

const (
	// StatePaused is the initial state; the simulation is frozen.
	StatePaused State = iota
	// StatePlaying runs the per-tick algorithm.
	StatePlaying
	// StateGameOver freezes the simulation until acknowledged.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "invalid"
	}
}
