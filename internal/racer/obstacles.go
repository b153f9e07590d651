package racer

import (
	"math/rand"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Obstacle is a barrier falling down one lane. Its lane is fixed by its
// slot in the Field: slot i uses lane i mod lane_count.
type Obstacle struct {
	X, Y   int
	Active bool
}

// Field is the fixed-size, ordered set of obstacles. Obstacles are never
// destroyed during play; once past the bottom edge they are recycled back
// above the screen.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
}

// NewField creates an empty field with the given RNG seed.
func NewField(seed int64, cfg config.ObstacleConfig) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, cfg.Count),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Spawn clears the field and creates cfg.Count obstacles, staggered above
// the top edge so they do not arrive together.
func (f *Field) Spawn() {
	f.obstacles = f.obstacles[:0]
	for i := 0; i < f.cfg.Count; i++ {
		f.obstacles = append(f.obstacles, Obstacle{
			X:      f.LaneX(i),
			Y:      f.cfg.SpawnY - i*f.cfg.Stagger,
			Active: true,
		})
	}
}

// LaneX rolls an X position for slot i: the slot's lane origin plus a
// random jitter in [0, cfg.Jitter).
func (f *Field) LaneX(i int) int {
	lane := i % f.cfg.LaneCount
	return f.cfg.LaneBase + lane*f.cfg.LaneWidth + f.rng.Intn(f.cfg.Jitter)
}

// Update moves every active obstacle down by speed, in slot order. An
// obstacle whose Y passes fieldH is recycled to the spawn height with a
// fresh lane position. Each obstacle is tested against the player right
// after its own move, at its possibly recycled position; a hit does not
// stop the pass. Returns the number of recycles and whether any obstacle
// hit the player.
func (f *Field) Update(speed, fieldH int, player core.Rect) (recycled int, hit bool) {
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if !o.Active {
			continue
		}

		o.Y += speed
		if o.Y > fieldH {
			o.Y = f.cfg.SpawnY
			o.X = f.LaneX(i)
			recycled++
		}

		if player.Intersects(f.Rect(i)) {
			hit = true
		}
	}
	return recycled, hit
}

// Rect returns the collision rectangle of slot i.
func (f *Field) Rect(i int) core.Rect {
	o := f.obstacles[i]
	return core.NewRect(o.X, o.Y, f.cfg.Width, f.cfg.Height)
}

// Len returns the number of obstacles in the field.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Obstacles returns the current obstacles in slot order.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}
