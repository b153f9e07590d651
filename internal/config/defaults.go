package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Screen: ScreenConfig{
			Width:        580,
			Height:       720,
			FrameDelayMs: 15,
		},
		Player: PlayerConfig{
			Width:   70,
			Height:  70,
			Step:    5,
			OffsetX: 20,
		},
		Obstacles: ObstacleConfig{
			Count:     6,
			Width:     40,
			Height:    40,
			LaneCount: 3,
			LaneBase:  20,
			LaneWidth: 200,
			Jitter:    100,
			SpawnY:    -40,
			Stagger:   100,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed: 2,
			Increment:    1,
			IntervalMs:   5000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
