package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Play Dodger in a resizable desktop window.

The window frontend is only present in binaries built with the ebiten tag:
  go build -tags ebiten ./cmd/dodger

Controls:
  Left/A    - Move left
  Right/D   - Move right
  R         - Restart after game over
  Q/Esc     - Quit`,
	RunE: runGUI,
}

func init() {
	addPlayerFlag(guiCmd)
	guiCmd.Flags().IntVar(&flagWidth, "width", gui.DefaultWidth, "Initial window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", gui.DefaultHeight, "Initial window height in pixels")
}

func runGUI(cmd *cobra.Command, args []string) error {
	setup, err := loadSetup(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, "dodger-gui", flagLogLevel)
	if err != nil {
		return err
	}

	store := openStoreOrWarn(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}

	return gui.Run(gui.Options{
		Config: setup.Config,
		Width:  flagWidth,
		Height: flagHeight,
		TPS:    flagFPS,
		Seed:   flagSeed,
		Board:  setup.Board(),
		Player: playerName(flagPlayerName),
		Store:  store,
		Logger: logger,
	})
}
