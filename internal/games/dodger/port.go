package dodger

import "github.com/vovakirdan/dodger/internal/core"

// Renderer is the drawing half of a frontend.
// Coordinates are world units with the origin at the top-left corner.
type Renderer interface {
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c core.Color)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c core.Color)

	// DrawText draws text with its top-left corner at (x, y).
	// Size is the nominal glyph height; frontends may snap it.
	DrawText(text string, x, y, size float64, c core.Color)

	// MeasureText returns the width and height DrawText would cover.
	MeasureText(text string, size float64) (w, h float64)
}

// Input reports which actions are held down this frame.
// core.InputFrame satisfies it.
type Input interface {
	Held(a core.Action) bool
}

// Port is everything the game needs from a frontend for one frame.
type Port interface {
	Renderer
	Input

	// ScreenSize returns the visible area in world units.
	// It may change between frames when the window or terminal is resized.
	ScreenSize() (w, h float64)

	// FrameTime returns the seconds elapsed since the previous frame.
	FrameTime() float64
}

// Controls is the key state the simulation reads each frame.
type Controls struct {
	Left    bool
	Right   bool
	Restart bool
}

// ControlsFrom samples the game keys from an input source.
func ControlsFrom(in Input) Controls {
	return Controls{
		Left:    in.Held(core.ActionLeft),
		Right:   in.Held(core.ActionRight),
		Restart: in.Held(core.ActionRestart),
	}
}
