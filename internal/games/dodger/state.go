// Package dodger implements the falling-circles avoidance game.
// A square slides along the floor while circles fall from the top; every
// circle that leaves the bottom of the screen scores a point and makes the
// next ones bigger and faster.
package dodger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// HUD layout in world units.
const (
	hudMargin     = 10
	hudTextSize   = 40
	titleTextSize = 40
	promptSize    = 20
	panelPadding  = 20
)

// HUD colors.
const (
	TextColor = core.ColorBrightGreen
	BestColor = core.ColorYellow
)

// State owns the player and every live obstacle.
// It has two modes: active, where physics runs, and game over, where
// everything is frozen until the restart key is held.
type State struct {
	player    Player
	obstacles []Obstacle // Insertion order, oldest first

	score    int
	best     int
	gameOver bool

	spawnTimer    float64 // Seconds since the last spawn
	spawnInterval float64 // Seconds between the last spawn and the next

	cfg        config.DodgerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a game sized for the given screen.
func New(cfg config.DodgerConfig, seed int64, screenW, screenH float64) *State {
	return &State{
		player:        NewPlayer(cfg.Player, screenW, screenH),
		obstacles:     make([]Obstacle, 0, 16),
		spawnInterval: cfg.Spawn.InitialInterval,
		cfg:           cfg,
		difficulty:    config.NewDifficultyManager(cfg.Difficulty),
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Frame runs one update-then-render pass against a frontend.
func (s *State) Frame(p Port) core.StepResult {
	w, h := p.ScreenSize()
	result := s.Update(p.FrameTime(), ControlsFrom(p), w, h)
	s.Render(p, w, h)
	return result
}

// Update advances the game by dt seconds.
func (s *State) Update(dt float64, in Controls, screenW, screenH float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	if s.gameOver {
		if in.Restart {
			s.Reset(screenW)
		}
		return core.StepResult{State: s.State()}
	}

	s.player.Update(dt, in.Left, in.Right, screenW, screenH)

	for i := range s.obstacles {
		s.obstacles[i].Update(dt)
	}

	// The scan runs after every obstacle moved; the rest of the frame
	// still retires and spawns even when it ends the game.
	if s.hitPlayer() {
		s.gameOver = true
	}

	dodged := s.retireOffScreen(screenH)
	s.score += dodged
	if s.score > s.best {
		s.best = s.score
	}

	s.spawnTimer += dt
	if s.spawnTimer >= s.spawnInterval {
		s.spawn(screenW)
		s.spawnTimer = 0
		s.spawnInterval = s.nextInterval()
	}

	return core.StepResult{State: s.State(), Dodged: dodged}
}

// hitPlayer reports whether any obstacle overlaps the player.
func (s *State) hitPlayer() bool {
	for _, o := range s.obstacles {
		if Collides(o, s.player) {
			return true
		}
	}
	return false
}

// retireOffScreen drops obstacles below the screen and returns how many left.
func (s *State) retireOffScreen(screenH float64) int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.OffScreen(screenH) {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return removed
}

// spawn adds one obstacle scaled by the current score.
func (s *State) spawn(screenW float64) {
	o := SpawnObstacle(s.rng, screenW, s.score, s.cfg.Obstacles, s.difficulty)
	s.obstacles = append(s.obstacles, o)
}

// nextInterval draws the next spawn interval from the configured band.
// A random gap keeps circles from arriving in a fixed rhythm.
func (s *State) nextInterval() float64 {
	lo, hi := s.cfg.Spawn.MinInterval, s.cfg.Spawn.MaxInterval
	return lo + s.rng.Float64()*(hi-lo)
}

// Reset starts a new round on a screen of the given width.
// The spawn interval keeps whatever the last spawn drew.
func (s *State) Reset(screenW float64) {
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.spawnTimer = 0
	s.gameOver = false
	s.player.Center(screenW)
}

// Render draws the world and HUD. The world is drawn in every state, so
// after a collision the frozen scene stays visible under the message.
func (s *State) Render(r Renderer, screenW, screenH float64) {
	s.player.Draw(r)
	for _, o := range s.obstacles {
		o.Draw(r)
	}

	r.DrawText(fmt.Sprintf("Score: %d", s.score), hudMargin, hudMargin, hudTextSize, TextColor)
	if s.best > 0 {
		best := fmt.Sprintf("Best: %d", s.best)
		bw, _ := r.MeasureText(best, hudTextSize)
		r.DrawText(best, screenW-bw-hudMargin, hudMargin, hudTextSize, BestColor)
	}

	if s.gameOver {
		s.drawGameOver(r, screenW, screenH)
	}
}

// drawGameOver draws the centered final score and restart prompt on a panel.
func (s *State) drawGameOver(r Renderer, screenW, screenH float64) {
	title := fmt.Sprintf("GAME OVER: %d", s.score)
	prompt := "Press R to restart"

	tw, th := r.MeasureText(title, titleTextSize)
	pw, ph := r.MeasureText(prompt, promptSize)

	tx := screenW/2 - tw/2
	ty := screenH/2 - th/2
	px := screenW/2 - pw/2
	py := ty + th + ph

	panelW := max(tw, pw) + 2*panelPadding
	panelH := py + ph - ty + 2*panelPadding
	r.FillRect(screenW/2-panelW/2, ty-panelPadding, panelW, panelH, core.ColorDefault)

	r.DrawText(title, tx, ty, titleTextSize, TextColor)
	r.DrawText(prompt, px, py, promptSize, TextColor)
}

// State returns the externally visible status.
func (s *State) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.gameOver,
	}
}

// Score returns the number of obstacles dodged this round.
func (s *State) Score() int {
	return s.score
}

// Best returns the best score known to this game, including the live round.
func (s *State) Best() int {
	return s.best
}

// SetBest seeds the best score, usually from storage.
func (s *State) SetBest(best int) {
	if best > s.best {
		s.best = best
	}
}

// IsGameOver reports whether the round has ended.
func (s *State) IsGameOver() bool {
	return s.gameOver
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *State) Obstacles() []Obstacle {
	return s.obstacles
}

// SpawnInterval returns the seconds the spawn timer must reach.
func (s *State) SpawnInterval() float64 {
	return s.spawnInterval
}
