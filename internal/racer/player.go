package racer

import "github.com/vovakirdan/lane-racer/internal/core"

// Player is the car. Only X changes during play.
type Player struct {
	X, Y int
	W, H int
	Step int // Pixels moved per frame while a steering flag is held
}

// Rect returns the car's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Steer moves the car by one step for each held direction and clamps it
// so the whole car stays within [0, fieldW].
func (p *Player) Steer(left, right bool, fieldW int) {
	if left {
		p.X -= p.Step
	}
	if right {
		p.X += p.Step
	}
	p.X = core.Clamp(p.X, 0, fieldW-p.W)
}
