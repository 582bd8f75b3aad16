package dodger

import (
	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// PlayerColor is the fill color of the player square.
const PlayerColor = core.ColorGreen

// Player is the square that slides along the floor.
type Player struct {
	X        float64 // Left edge
	Y        float64 // Top edge, re-pinned to the floor every update
	Size     float64 // Side length of the square
	Vel      float64 // Horizontal velocity, negative is left
	Accel    float64 // Acceleration while a direction is held
	MaxSpeed float64 // Symmetric velocity bound
}

// NewPlayer creates a player centered on the floor of the given screen.
func NewPlayer(cfg config.PlayerConfig, screenW, screenH float64) Player {
	p := Player{
		Size:     cfg.Size,
		Accel:    cfg.Acceleration,
		MaxSpeed: cfg.MaxSpeed,
	}
	p.Center(screenW)
	p.Y = screenH - p.Size
	return p
}

// Center places the player in the horizontal middle of the screen.
func (p *Player) Center(screenW float64) {
	p.X = (screenW - p.Size) / 2
}

// Update advances the player by dt seconds.
// Left wins when both directions are held. Releasing both stops the player
// dead; there is no momentum.
func (p *Player) Update(dt float64, left, right bool, screenW, screenH float64) {
	p.Y = screenH - p.Size

	switch {
	case left:
		if p.Vel > 0 {
			p.Vel = 0
		}
		p.Vel -= p.Accel * dt
	case right:
		if p.Vel < 0 {
			p.Vel = 0
		}
		p.Vel += p.Accel * dt
	default:
		p.Vel = 0
	}

	p.Vel = core.ClampF(p.Vel, -p.MaxSpeed, p.MaxSpeed)
	p.X += p.Vel * dt
	p.X = core.ClampF(p.X, 0, max(0, screenW-p.Size))
}

// Box returns the player's bounds.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Draw renders the player square.
func (p Player) Draw(r Renderer) {
	r.FillRect(p.X, p.Y, p.Size, p.Size, PlayerColor)
}
