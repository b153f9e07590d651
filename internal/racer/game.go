// Package racer implements Lane Racer: a car dodging barriers that fall down
// three lanes of a scrolling road, faster and faster over time.
//
// All state lives in Game and changes only through Step, one call per loop
// iteration. The package has no rendering or timing dependencies beyond
// core, so it can be driven by any front end or by tests.
package racer

import (
	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Game is the complete state of one play session.
type Game struct {
	cfg     config.RacerConfig
	session Session
	player  Player
	field   *Field
	ramp    *config.Ramp
	track   Track
	score   int

	steerLeft  bool // Level-triggered movement flags
	steerRight bool
}

// Transitioned records one state change fired during a Step.
type Transitioned struct {
	From    Session
	To      Session
	Trigger Trigger
}

// StepResult is returned by Step after each loop iteration.
type StepResult struct {
	Session     Session
	Score       int
	Speed       int
	Recycled    int            // Obstacles recycled this frame
	SpeedUp     bool           // Ramp increased this frame
	Transitions []Transitioned // In the order they fired
}

// New creates a game in the Waiting state. Obstacle placement is drawn
// from a RNG seeded with seed; now is the clock reading at creation.
func New(cfg config.RacerConfig, seed int64, now int64) *Game {
	g := &Game{
		cfg:     cfg,
		session: Waiting,
		field:   NewField(seed, cfg.Obstacles),
		ramp:    config.NewRamp(cfg.Difficulty, now),
		track:   NewTrack(cfg.Screen.Height),
	}
	g.resetPlayer()
	return g
}

// Session returns the current session state.
func (g *Game) Session() Session {
	return g.session
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Step runs one loop iteration: every event of the frame is applied in
// order, then, if the session is Playing, the car steers, the ramp and
// track advance and the obstacle field is updated and collision tested.
func (g *Game) Step(in core.InputFrame) StepResult {
	var res StepResult

	for _, e := range in.Events {
		g.handleEvent(e, in.Millis, &res)
	}

	if g.session == Playing {
		g.advance(in.Millis, &res)
	}

	res.Session = g.session
	res.Score = g.score
	res.Speed = g.ramp.Speed()
	return res
}

// advance performs the Playing-state update for one frame.
func (g *Game) advance(now int64, res *StepResult) {
	g.player.Steer(g.steerLeft, g.steerRight, g.cfg.Screen.Width)

	if g.ramp.Update(now) {
		res.SpeedUp = true
	}
	speed := g.ramp.Speed()

	g.track.Advance(speed)

	recycled, hit := g.field.Update(speed, g.cfg.Screen.Height, g.player.Rect())
	g.score += recycled
	res.Recycled = recycled

	if hit {
		g.fire(TriggerCollision, now, res)
	}
}

// fire runs the state machine for a trigger and applies its effect.
func (g *Game) fire(trig Trigger, now int64, res *StepResult) {
	from := g.session
	next, effect := Transition(from, trig)
	if next == from && effect == EffectNone {
		return
	}

	// Halt and Exit need no work here: advance only runs while Playing
	// and the front end stops on Exited.
	if effect == EffectNewRun {
		g.newRun(now)
	}

	g.session = next
	res.Transitions = append(res.Transitions, Transitioned{From: from, To: next, Trigger: trig})
}

// newRun resets everything a fresh run starts from.
func (g *Game) newRun(now int64) {
	g.resetPlayer()
	g.ramp.Reset(now)
	g.field.Spawn()
	g.score = 0
}

func (g *Game) resetPlayer() {
	x, y := g.cfg.PlayerStart()
	g.player = Player{
		X:    x,
		Y:    y,
		W:    g.cfg.Player.Width,
		H:    g.cfg.Player.Height,
		Step: g.cfg.Player.Step,
	}
}
