// Package config provides YAML-based game configuration loading and the
// difficulty ramp for Lane Racer.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RacerConfig contains all tunable constants of the game.
// The defaults reproduce the classic 580x720 layout.
type RacerConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the logical playfield and loop pacing.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	FrameDelayMs int `yaml:"frame_delay_ms"` // Idle delay between loop iterations
}

// PlayerConfig defines the car.
type PlayerConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Step    int `yaml:"step"`     // Horizontal pixels per frame while steering
	OffsetX int `yaml:"offset_x"` // Start X is screen.width/2 - offset_x
}

// ObstacleConfig defines the barrier field.
type ObstacleConfig struct {
	Count     int `yaml:"count"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	LaneCount int `yaml:"lane_count"`
	LaneBase  int `yaml:"lane_base"`  // X of lane 0
	LaneWidth int `yaml:"lane_width"` // Distance between lane origins
	Jitter    int `yaml:"jitter"`     // Random X offset in [0, jitter)
	SpawnY    int `yaml:"spawn_y"`    // Y after a recycle, and of slot 0 at spawn
	Stagger   int `yaml:"stagger"`    // Extra height above the screen per slot at spawn
}

// DifficultyConfig defines the wall-clock speed ramp.
type DifficultyConfig struct {
	InitialSpeed int   `yaml:"initial_speed"`
	Increment    int   `yaml:"increment"`   // Added to speed every interval
	IntervalMs   int64 `yaml:"interval_ms"` // Measured from the last increase
}

// PlayerStart returns the car's starting position: horizontally near the
// centre, three quarters down the screen.
func (c RacerConfig) PlayerStart() (x, y int) {
	return c.Screen.Width/2 - c.Player.OffsetX, 3 * c.Screen.Height / 4
}

// Validate checks that the config describes a playable game.
func (c RacerConfig) Validate() error {
	checks := []struct {
		name  string
		value int64
	}{
		{"screen.width", int64(c.Screen.Width)},
		{"screen.height", int64(c.Screen.Height)},
		{"screen.frame_delay_ms", int64(c.Screen.FrameDelayMs)},
		{"player.width", int64(c.Player.Width)},
		{"player.height", int64(c.Player.Height)},
		{"player.step", int64(c.Player.Step)},
		{"obstacles.count", int64(c.Obstacles.Count)},
		{"obstacles.width", int64(c.Obstacles.Width)},
		{"obstacles.height", int64(c.Obstacles.Height)},
		{"obstacles.lane_count", int64(c.Obstacles.LaneCount)},
		{"obstacles.jitter", int64(c.Obstacles.Jitter)},
		{"difficulty.interval_ms", c.Difficulty.IntervalMs},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, chk.name, chk.value)
		}
	}

	if c.Player.Width > c.Screen.Width {
		return fmt.Errorf("%w: player.width %d exceeds screen.width %d", ErrInvalid, c.Player.Width, c.Screen.Width)
	}
	if c.Obstacles.Stagger < 0 {
		return fmt.Errorf("%w: obstacles.stagger must not be negative, got %d", ErrInvalid, c.Obstacles.Stagger)
	}
	// Recycled obstacles must restart fully above the field, or they would
	// recycle again on the next frame and score without ever being passed.
	if c.Obstacles.SpawnY+c.Obstacles.Height > 0 {
		return fmt.Errorf("%w: obstacles.spawn_y %d puts a %d high obstacle inside the field",
			ErrInvalid, c.Obstacles.SpawnY, c.Obstacles.Height)
	}
	if c.Difficulty.InitialSpeed < 0 || c.Difficulty.Increment < 0 {
		return fmt.Errorf("%w: difficulty speeds must not be negative", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the difficulty ramp based on a preset.
// Normal and empty leave the config untouched. Scaled intervals never
// drop below 1 ms.
func ApplyPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.IntervalMs = max(cfg.Difficulty.IntervalMs*3/2, 1)
	case DifficultyHard:
		cfg.Difficulty.InitialSpeed += 2
		cfg.Difficulty.IntervalMs = max(cfg.Difficulty.IntervalMs*3/4, 1)
	case DifficultyFixed:
		cfg.Difficulty.Increment = 0
	}
}
