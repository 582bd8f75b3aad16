// Package config provides YAML-based game configuration loading and
// difficulty management for dodger.
package config

import (
	"fmt"
	"strings"
)

// DodgerConfig contains all tunables of the game and its frontends.
type DodgerConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
	Display    DisplayConfig    `yaml:"display"`
}

// PlayerConfig defines the player square and its kinematics.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// ObstacleConfig defines falling circles before difficulty bonuses.
type ObstacleConfig struct {
	BaseRadius float64 `yaml:"base_radius"`
	BaseSpeed  float64 `yaml:"base_speed"`
	SpawnY     float64 `yaml:"spawn_y"` // Center height at spawn, above the visible area
}

// SpawnConfig defines the spawn cadence. Each spawn redraws the interval
// uniformly from [MinInterval, MaxInterval].
type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	MaxInterval     float64 `yaml:"max_interval"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with score.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which scaling stops, 0 for never
}

// ScalingConfig defines the per-dodge obstacle growth.
type ScalingConfig struct {
	RadiusPerScore float64 `yaml:"radius_per_score"`
	SpeedPerScore  float64 `yaml:"speed_per_score"`
}

// ControlsConfig tunes how terminal key presses become held keys.
// Terminals only report presses, so a key stays held for InitialHold after
// the first press and RepeatHold after each auto-repeat.
type ControlsConfig struct {
	InitialHold float64 `yaml:"initial_hold"`
	RepeatHold  float64 `yaml:"repeat_hold"`
}

// DisplayConfig maps the world onto terminal cells and bounds frame time.
type DisplayConfig struct {
	CellWidth    float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight   float64 `yaml:"cell_height"` // World units per terminal row
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

// Validate reports the first setting that would break the game.
func (c DodgerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player.size", c.Player.Size > 0},
		{"player.acceleration", c.Player.Acceleration > 0},
		{"player.max_speed", c.Player.MaxSpeed > 0},
		{"obstacles.base_radius", c.Obstacles.BaseRadius > 0},
		{"obstacles.base_speed", c.Obstacles.BaseSpeed > 0},
		{"spawn.initial_interval", c.Spawn.InitialInterval > 0},
		{"spawn.min_interval", c.Spawn.MinInterval > 0},
		{"spawn.max_interval", c.Spawn.MaxInterval >= c.Spawn.MinInterval},
		{"difficulty.scaling.radius_per_score", c.Difficulty.Scaling.RadiusPerScore >= 0},
		{"difficulty.scaling.speed_per_score", c.Difficulty.Scaling.SpeedPerScore >= 0},
		{"difficulty.progression.max_at", c.Difficulty.Progression.MaxAt >= 0},
		{"controls.initial_hold", c.Controls.InitialHold > 0},
		{"controls.repeat_hold", c.Controls.RepeatHold > 0},
		{"display.cell_width", c.Display.CellWidth > 0},
		{"display.cell_height", c.Display.CellHeight > 0},
		{"display.max_frame_time", c.Display.MaxFrameTime >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid %s", chk.name)
		}
	}

	switch c.Difficulty.Progression.Type {
	case "score", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
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

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Board returns the score board name for a preset.
// Normal play shares the plain "dodger" board.
func (p DifficultyPreset) Board() string {
	if p == "" || p == DifficultyNormal {
		return "dodger"
	}
	return "dodger_" + string(p)
}
