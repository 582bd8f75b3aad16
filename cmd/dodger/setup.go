package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/storage"
)

// defaultLogFile is where play and gui log when --log-file is empty.
const defaultLogFile = "~/.dodger/dodger.log"

// gameSetup is the configuration shared by every command that runs a game.
type gameSetup struct {
	Config config.DodgerConfig
	Preset config.DifficultyPreset
}

// Board returns the score board the preset plays on.
func (s gameSetup) Board() string {
	return s.Preset.Board()
}

// loadSetup loads the YAML config and applies the difficulty preset.
func loadSetup(configPath, difficulty string) (gameSetup, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return gameSetup{}, err
	}

	cfg, err := config.LoadDodger(configPath)
	if err != nil {
		return gameSetup{}, err
	}
	config.ApplyDodgerPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return gameSetup{}, err
	}
	return gameSetup{Config: cfg, Preset: preset}, nil
}

// newLogger creates a charm logger writing to w at the given level.
func newLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile opens the log destination for frontends that own the terminal.
// The returned closer is never nil.
func openLogFile(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(path) {
	case "none", "off":
		return io.Discard, noop, nil
	case "":
		path = defaultLogFile
	}

	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}

// playerName picks the name stored with scores.
func playerName(flagName string) string {
	if name := strings.TrimSpace(flagName); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.AnonymousPlayer
}

// openStoreOrWarn opens the score database. A failure is logged and the
// game runs without persistence.
func openStoreOrWarn(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", path, "error", err)
		return nil
	}
	return store
}
