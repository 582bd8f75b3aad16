package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/platform/tui"
)

var (
	flagPlayerName string
	flagShotDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Dodger in the terminal.

Controls:
  Left/A/H  - Move left
  Right/D/L - Move right
  R         - Restart after game over
  Ctrl+S    - Save a text screenshot
  Q/Esc     - Quit

Examples:
  dodger play
  dodger play --difficulty hard --seed 42`,
	RunE: runPlay,
}

func init() {
	addPlayerFlag(playCmd)
	playCmd.Flags().StringVar(&flagShotDir, "screenshot-dir", "", "Directory for Ctrl+S screenshots (default: ~/.dodger/screenshots)")

	// The root command plays too, so it needs the same flags
	addPlayerFlag(rootCmd)
	rootCmd.Flags().StringVar(&flagShotDir, "screenshot-dir", "", "Directory for Ctrl+S screenshots (default: ~/.dodger/screenshots)")
}

func addPlayerFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlayerName, "name", "", "Player name stored with scores (default: current user)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	setup, err := loadSetup(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, "dodger", flagLogLevel)
	if err != nil {
		return err
	}

	runtime := terminalRuntime(flagFPS, flagSeed)

	store := openStoreOrWarn(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config:        setup.Config,
		Runtime:       runtime,
		Board:         setup.Board(),
		Player:        playerName(flagPlayerName),
		Store:         store,
		Logger:        logger,
		ScreenshotDir: flagShotDir,
	}

	return tui.Run(opts)
}

// terminalRuntime sizes the game to stdout, falling back to the defaults
// when stdout is not a terminal.
func terminalRuntime(fps int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = width, height
	}
	if fps > 0 {
		rc.TickRate = fps
	}
	rc.Seed = seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}
