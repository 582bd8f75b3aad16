package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in configuration.
// It mirrors defaults/dodger.yaml and is the fallback when the embed cannot be parsed.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Player: PlayerConfig{
			Size:         40,
			Acceleration: 500,
			MaxSpeed:     800,
		},
		Obstacles: ObstacleConfig{
			BaseRadius: 40,
			BaseSpeed:  200,
			SpawnY:     -50,
		},
		Spawn: SpawnConfig{
			InitialInterval: 1.0,
			MinInterval:     0.8,
			MaxInterval:     1.2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				RadiusPerScore: 2,
				SpeedPerScore:  10,
			},
		},
		Controls: ControlsConfig{
			InitialHold: 0.7,
			RepeatHold:  0.12,
		},
		Display: DisplayConfig{
			CellWidth:    10,
			CellHeight:   20,
			MaxFrameTime: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
