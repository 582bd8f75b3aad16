//go:build ebiten

package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole" // No console window on Windows
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/games/dodger"
	"github.com/vovakirdan/dodger/internal/storage"
)

// glyphHeight is the pixel height of the bitmap font at scale 1.
const glyphHeight = 13

// Game adapts dodger.State to the ebiten.Game interface.
// Update runs the simulation, Draw renders it; both see the same world
// size, which is the window size in pixels.
type Game struct {
	state *dodger.State
	face  *text.GoXFace

	width, height int
	maxFrame      float64
	last          time.Time

	store  *storage.Store
	logger *log.Logger
	board  string
	player string
}

// New creates a window game.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := &Game{
		state:    dodger.New(opts.Config, opts.Seed, float64(opts.Width), float64(opts.Height)),
		face:     text.NewGoXFace(basicfont.Face7x13),
		width:    opts.Width,
		height:   opts.Height,
		maxFrame: opts.Config.Display.MaxFrameTime,
		store:    opts.Store,
		logger:   opts.Logger,
		board:    opts.Board,
		player:   opts.Player,
	}

	if g.store != nil {
		best, err := g.store.HighScore(g.board)
		if err != nil {
			g.logger.Warn("could not load high score", "board", g.board, "error", err)
		}
		g.state.SetBest(best)
	}
	return g
}

// Held polls the keyboard; ebiten reports real key state, so no hold
// emulation is needed here.
func (g *Game) Held(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	case core.ActionRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	case core.ActionRestart:
		return ebiten.IsKeyPressed(ebiten.KeyR)
	case core.ActionQuit:
		return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
	}
	return false
}

// Update advances the game by the wall time since the previous update.
func (g *Game) Update() error {
	if g.Held(core.ActionQuit) {
		g.logger.Info("game quit", "score", g.state.Score(), "best", g.state.Best())
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = max(now.Sub(g.last).Seconds(), 0)
		if g.maxFrame > 0 {
			dt = min(dt, g.maxFrame)
		}
	}
	g.last = now

	wasOver := g.state.IsGameOver()
	res := g.state.Update(dt, dodger.ControlsFrom(g), float64(g.width), float64(g.height))

	switch {
	case res.State.GameOver && !wasOver:
		g.onGameOver(res.State.Score)
	case wasOver && !res.State.GameOver:
		g.logger.Info("game restarted", "board", g.board)
	}
	return nil
}

// onGameOver logs the result and saves a positive score once.
func (g *Game) onGameOver(score int) {
	g.logger.Info("game over", "score", score, "best", g.state.Best(), "board", g.board)
	if g.store == nil || score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.board, g.player, score); err != nil {
		g.logger.Error("could not save score", "score", score, "error", err)
	}
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	g.state.Render(&canvas{dst: screen, face: g.face}, float64(g.width), float64(g.height))
}

// Layout keeps one world unit per pixel, so resizing the window resizes
// the playfield.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// canvas draws game shapes onto an ebiten image.
type canvas struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

func (c *canvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), RGBA(col), true)
}

func (c *canvas) FillCircle(x, y, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), RGBA(col), true)
}

// DrawText scales the bitmap font so a line is size pixels high.
func (c *canvas) DrawText(str string, x, y, size float64, col core.Color) {
	s := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(RGBA(col))
	text.Draw(c.dst, str, c.face, op)
}

func (c *canvas) MeasureText(str string, size float64) (float64, float64) {
	w, h := text.Measure(str, c.face, 0)
	s := size / glyphHeight
	return w * s, h * s
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	opts = opts.withDefaults()
	game := New(opts)

	ebiten.SetWindowTitle("Dodger")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	opts.Logger.Info("game started", "board", game.board, "player", game.player, "width", opts.Width, "height", opts.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
