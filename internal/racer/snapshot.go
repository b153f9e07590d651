package racer

import (
	"fmt"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// Snapshot is a plain-value view of the game for renderers and tests.
type Snapshot struct {
	Session     Session
	FieldW      int
	FieldH      int
	Player      core.Rect
	Obstacles   []core.Rect // Active obstacles, slot order
	TrackOffset int
	Score       int
	Speed       int
	SteerLeft   bool
	SteerRight  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Rect, 0, g.field.Len())
	for i, o := range g.field.Obstacles() {
		if o.Active {
			obstacles = append(obstacles, g.field.Rect(i))
		}
	}

	return Snapshot{
		Session:     g.session,
		FieldW:      g.cfg.Screen.Width,
		FieldH:      g.cfg.Screen.Height,
		Player:      g.player.Rect(),
		Obstacles:   obstacles,
		TrackOffset: g.track.Offset(),
		Score:       g.score,
		Speed:       g.ramp.Speed(),
		SteerLeft:   g.steerLeft,
		SteerRight:  g.steerRight,
	}
}

// ScoreText is the HUD score readout.
func (s Snapshot) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.Score)
}

// Overlay returns the centered message lines for the current state.
// Playing has none.
func (s Snapshot) Overlay() []string {
	switch s.Session {
	case Waiting:
		return []string{
			"Press O to Start",
			"Press 'A' or 'D' to go left or right",
		}
	case GameOver:
		return []string{
			"Game Over",
			s.ScoreText(),
			"Press R to Play Again or Q to Quit",
		}
	default:
		return nil
	}
}
