package dodger

import (
	"math/rand"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// ObstacleColor is the fill color of falling circles.
const ObstacleColor = core.ColorRed

// Obstacle is a circle falling straight down at a constant speed.
type Obstacle struct {
	X      float64 // Center, fixed at spawn
	Y      float64 // Center, grows every update
	Radius float64
	Speed  float64 // Units per second
}

// SpawnObstacle creates an obstacle above the screen at a random column.
// The column is drawn with the base radius so the circle starts fully on
// screen horizontally; the difficulty bonus for score is added afterwards.
func SpawnObstacle(rng *rand.Rand, screenW float64, score int, cfg config.ObstacleConfig, diff *config.DifficultyManager) Obstacle {
	base := cfg.BaseRadius

	x := screenW / 2
	if span := screenW - 2*base; span > 0 {
		x = base + rng.Float64()*span
	}

	return Obstacle{
		X:      x,
		Y:      cfg.SpawnY,
		Radius: base + diff.RadiusBonus(score),
		Speed:  cfg.BaseSpeed + diff.SpeedBonus(score),
	}
}

// Update moves the obstacle down by dt seconds of fall.
func (o *Obstacle) Update(dt float64) {
	o.Y += o.Speed * dt
}

// OffScreen reports whether the whole circle is below the visible area.
func (o Obstacle) OffScreen(screenH float64) bool {
	return o.Y-o.Radius > screenH
}

// Draw renders the circle.
func (o Obstacle) Draw(r Renderer) {
	r.FillCircle(o.X, o.Y, o.Radius, ObstacleColor)
}
