// Package gui provides the ebiten window frontend for dodger.
// The window itself needs the ebiten build tag; without it Run reports
// ErrNotBuilt so the CLI can explain how to get it.
package gui

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/storage"
)

// ErrNotBuilt is returned by Run in binaries built without the ebiten tag.
var ErrNotBuilt = errors.New("gui: this binary was built without the ebiten tag; rebuild with `go build -tags ebiten`")

// Options configures a window game session.
type Options struct {
	Config config.DodgerConfig
	Width  int // Initial window size in pixels; one pixel is one world unit
	Height int
	TPS    int // Update rate, 0 for ebiten's default
	Seed   int64
	Board  string
	Player string
	Store  *storage.Store // May be nil
	Logger *log.Logger    // May be nil
}

// DefaultWidth and DefaultHeight match the classic 800x600 playfield.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Background is the clear color of the window.
var Background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {R: 0, G: 0, B: 0, A: 200},
	core.ColorRed:         {R: 220, G: 50, B: 47, A: 255},
	core.ColorGreen:       {R: 80, G: 200, B: 80, A: 255},
	core.ColorYellow:      {R: 240, G: 200, B: 60, A: 255},
	core.ColorWhite:       {R: 230, G: 230, B: 230, A: 255},
	core.ColorBrightRed:   {R: 255, G: 90, B: 90, A: 255},
	core.ColorBrightGreen: {R: 120, G: 255, B: 120, A: 255},
	core.ColorGray:        {R: 140, G: 140, B: 150, A: 255},
}

// RGBA returns the window color for c. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Board == "" {
		o.Board = config.DifficultyNormal.Board()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
