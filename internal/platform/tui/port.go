package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodger/internal/core"
)

// Glyphs used for filled shapes.
const (
	blockRune = '█'
	blankRune = ' '
)

// panelBorder colors the outline drawn around panels.
const panelBorder = core.ColorGray

// ScreenPort adapts a character screen to the game's Port.
// Each cell covers CellW x CellH world units, so shapes are snapped to the
// cell grid and text is drawn one glyph per cell regardless of size.
type ScreenPort struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
	input  core.InputFrame
	dt     float64
}

// NewScreenPort creates a port drawing onto screen.
func NewScreenPort(screen *core.Screen, cellW, cellH float64) *ScreenPort {
	return &ScreenPort{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		input:  core.NewInputFrame(),
	}
}

// Begin prepares the port for one frame: it clears the screen and latches
// the input and frame time the game will read.
func (p *ScreenPort) Begin(input core.InputFrame, dt float64) {
	p.screen.Clear()
	p.input = input
	p.dt = dt
}

// ScreenSize returns the terminal size in world units.
func (p *ScreenPort) ScreenSize() (float64, float64) {
	return float64(p.screen.Width()) * p.cellW, float64(p.screen.Height()) * p.cellH
}

// FrameTime returns the seconds latched by Begin.
func (p *ScreenPort) FrameTime() float64 {
	return p.dt
}

// Held reports whether the action is held this frame.
func (p *ScreenPort) Held(a core.Action) bool {
	return p.input.Held(a)
}

// FillRect fills every cell the rectangle covers by at least half.
// A rectangle thinner than half a cell still fills one cell.
// ColorDefault fills with blanks, which is how panels clear what is under them,
// and frames the panel with a box one cell outside it.
func (p *ScreenPort) FillRect(x, y, w, h float64, c core.Color) {
	x0 := int(math.Round(x / p.cellW))
	y0 := int(math.Round(y / p.cellH))
	x1 := int(math.Round((x + w) / p.cellW))
	y1 := int(math.Round((y + h) / p.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	area := core.NewRect(x0, y0, x1-x0, y1-y0)
	if c == core.ColorDefault {
		p.screen.FillRect(area, blankRune, c)
		p.screen.DrawBox(core.NewRect(x0-1, y0-1, area.W+2, area.H+2), panelBorder)
		return
	}
	p.screen.FillRect(area, blockRune, c)
}

// FillCircle fills the cells whose centers fall inside the circle.
// Cells are taller than wide, so the circle becomes an ellipse in cell space.
func (p *ScreenPort) FillCircle(x, y, radius float64, c core.Color) {
	p.screen.FillEllipse(x/p.cellW, y/p.cellH, radius/p.cellW, radius/p.cellH, blockRune, c)
}

// DrawText writes text starting in the cell containing (x, y).
func (p *ScreenPort) DrawText(text string, x, y, _ float64, c core.Color) {
	col := int(math.Floor(x / p.cellW))
	row := int(math.Floor(y / p.cellH))
	p.screen.DrawColorText(col, row, text, c)
}

// MeasureText returns the world size of text: one cell per column, one row high.
func (p *ScreenPort) MeasureText(text string, _ float64) (float64, float64) {
	return float64(lipgloss.Width(text)) * p.cellW, p.cellH
}
