package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/games/dodger"
	"github.com/vovakirdan/dodger/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Config  config.DodgerConfig
	Runtime core.RuntimeConfig // Initial terminal size, tick rate and seed
	Board   string             // Score board, see config.DifficultyPreset.Board
	Player  string             // Name stored with saved scores
	Store   *storage.Store     // May be nil to play without persistence
	Logger  *log.Logger        // May be nil to discard logs

	// ScreenshotDir is where ctrl+s writes the screen.
	// Empty means ~/.dodger/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game of dodger.
type Model struct {
	game    *dodger.State
	screen  *core.Screen
	port    *ScreenPort
	keys    *KeyMapper
	tracker *KeyTracker
	store   *storage.Store
	logger  *log.Logger

	config  core.RuntimeConfig
	display config.DisplayConfig
	board   string
	player  string
	shotDir string

	lastTick time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model and seeds the best score from
// the store.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := opts.Board
	if board == "" {
		board = config.DifficultyNormal.Board()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	port := NewScreenPort(screen, opts.Config.Display.CellWidth, opts.Config.Display.CellHeight)
	w, h := port.ScreenSize()

	game := dodger.New(opts.Config, cfg.Seed, w, h)
	if opts.Store != nil {
		best, err := opts.Store.HighScore(board)
		if err != nil {
			logger.Warn("could not load high score", "board", board, "error", err)
		}
		game.SetBest(best)
	}

	return Model{
		game:    game,
		screen:  screen,
		port:    port,
		keys:    NewKeyMapper(),
		tracker: NewKeyTracker(opts.Config.Controls),
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		display: opts.Config.Display,
		board:   board,
		player:  opts.Player,
		shotDir: opts.ScreenshotDir,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"board", m.board,
		"player", m.player,
		"seed", m.config.Seed,
		"cols", m.config.ScreenW,
		"rows", m.config.ScreenH,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "score", m.game.Score(), "best", m.game.Best())
		return m, tea.Quit
	}

	m.tracker.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; it reads the new size on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame with dt measured from the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameTime(now)
	m.lastTick = now

	wasOver := m.game.IsGameOver()

	m.port.Begin(m.tracker.Frame(now), dt)
	result := m.game.Frame(m.port)

	switch {
	case result.State.GameOver && !wasOver:
		m.onGameOver(result.State.Score)
	case wasOver && !result.State.GameOver:
		m.logger.Info("game restarted", "board", m.board)
	}

	return m, tickCmd(m.config.TickRate)
}

// frameTime returns seconds since the last tick, clamped to
// [0, display.max_frame_time]. The first frame has no elapsed time.
func (m Model) frameTime(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 0
	}
	dt := now.Sub(m.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	if limit := m.display.MaxFrameTime; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

// onGameOver logs the result and saves a positive score once.
func (m Model) onGameOver(score int) {
	m.logger.Info("game over", "score", score, "best", m.game.Best(), "board", m.board)

	if m.store == nil || score <= 0 {
		return
	}
	// Best-effort save, the game continues regardless
	if _, err := m.store.SaveScore(m.board, m.player, score); err != nil {
		m.logger.Error("could not save score", "score", score, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".dodger", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dodger_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m Model) Game() *dodger.State {
	return m.game
}

// IsQuitting returns true if the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
