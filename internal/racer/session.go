package racer

// Session is the lifecycle state of a play session.
type Session int

const (
	Waiting  Session = iota // Title screen, waiting for the start key
	Playing                 // Car steering, obstacles falling
	GameOver                // Crashed, waiting for restart or quit
	Exited                  // Terminal: the front end stops its loop
)

// String returns a human-readable name for the session state.
func (s Session) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Trigger is something that may move the session to another state.
type Trigger int

const (
	TriggerStart     Trigger = iota // Start key
	TriggerCollision                // Car hit an obstacle
	TriggerRestart                  // Restart key
	TriggerQuit                     // Quit or escape key
	TriggerClose                    // Window closed
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerCollision:
		return "collision"
	case TriggerRestart:
		return "restart"
	case TriggerQuit:
		return "quit"
	case TriggerClose:
		return "close"
	default:
		return "unknown"
	}
}

// Effect is the side effect the game must apply when a transition fires.
type Effect int

const (
	EffectNone   Effect = iota
	EffectNewRun        // Reset player, speed, timer, score and respawn obstacles
	EffectHalt          // Freeze the field
	EffectExit          // Leave the main loop
)

// Transition is the session state machine. It returns the next state and
// the effect to apply; pairs not in the table leave the state unchanged
// with EffectNone.
func Transition(from Session, trig Trigger) (Session, Effect) {
	if from == Exited {
		return Exited, EffectNone
	}
	if trig == TriggerClose {
		return Exited, EffectExit
	}

	switch from {
	case Waiting:
		if trig == TriggerStart {
			return Playing, EffectNewRun
		}
	case Playing:
		if trig == TriggerCollision {
			return GameOver, EffectHalt
		}
	case GameOver:
		switch trig {
		case TriggerRestart:
			return Playing, EffectNewRun
		case TriggerQuit:
			return Exited, EffectExit
		}
	}
	return from, EffectNone
}
