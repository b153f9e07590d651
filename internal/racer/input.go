package racer

import "github.com/vovakirdan/lane-racer/internal/core"

// handleEvent applies one discrete input event. Key-down events only act
// in the state they belong to; key-up always clears the steering flag so
// a key released across a state change never sticks.
func (g *Game) handleEvent(e core.Event, now int64, res *StepResult) {
	switch e.Kind {
	case core.EventClose:
		g.fire(TriggerClose, now, res)

	case core.EventKeyUp:
		switch e.Key {
		case core.KeyLeft:
			g.steerLeft = false
		case core.KeyRight:
			g.steerRight = false
		}

	case core.EventKeyDown:
		switch e.Key {
		case core.KeyStart:
			g.fire(TriggerStart, now, res)
		case core.KeyLeft:
			if g.session == Playing {
				g.steerLeft = true
			}
		case core.KeyRight:
			if g.session == Playing {
				g.steerRight = true
			}
		case core.KeyRestart:
			g.fire(TriggerRestart, now, res)
		case core.KeyQuit, core.KeyEscape:
			g.fire(TriggerQuit, now, res)
		}
	}
}
