package config

// Ramp is the global speed scalar shared by the track scroll and every
// obstacle. It grows on a wall-clock interval measured from the last
// increase and never decreases until Reset.
type Ramp struct {
	cfg          DifficultyConfig
	speed        int
	lastIncrease int64 // Clock millis of the last increase (or reset)
}

// NewRamp creates a ramp at the initial speed with its timer started at now.
func NewRamp(cfg DifficultyConfig, now int64) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset(now)
	return r
}

// Reset restores the initial speed and restarts the interval timer.
func (r *Ramp) Reset(now int64) {
	r.speed = r.cfg.InitialSpeed
	r.lastIncrease = now
}

// Speed returns the current speed in pixels per frame.
func (r *Ramp) Speed() int {
	return r.speed
}

// Update applies at most one increase if a full interval has elapsed since
// the last one. Returns true if the speed changed.
func (r *Ramp) Update(now int64) bool {
	if now-r.lastIncrease < r.cfg.IntervalMs {
		return false
	}
	r.lastIncrease = now
	if r.cfg.Increment == 0 {
		return false
	}
	r.speed += r.cfg.Increment
	return true
}
