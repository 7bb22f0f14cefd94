package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	ObstacleChar  = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
	GroundChar    = '═'
)

// Viewport maps play-field units onto terminal cells. Terminal cells are
// about twice as tall as they are wide, so a column covers half the units of
// a row.
type Viewport struct {
	Cols, Rows  int
	UnitsPerCol float64
	UnitsPerRow float64
}

// NewViewport fits a field of the given height into rows and derives the
// field width from the column count.
func NewViewport(cols, rows int, fieldHeight float64) Viewport {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	upr := fieldHeight / float64(rows)
	return Viewport{Cols: cols, Rows: rows, UnitsPerCol: upr / 2, UnitsPerRow: upr}
}

// Field returns the play field covered by the viewport.
func (v Viewport) Field() Field {
	return Field{
		Width:  float64(v.Cols) * v.UnitsPerCol,
		Height: float64(v.Rows) * v.UnitsPerRow,
	}
}

// Col converts a field x-coordinate to a column.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x / v.UnitsPerCol))
}

// Row converts a field y-coordinate to a row.
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y / v.UnitsPerRow))
}

// cells converts a field rectangle to the cell span it covers.
func (v Viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.Col(r.X), v.Row(r.Y)
	right := int(math.Ceil(r.Right() / v.UnitsPerCol))
	bottom := int(math.Ceil(r.Bottom() / v.UnitsPerRow))
	return x, y, right - x, bottom - y
}

// Render draws a snapshot into dst.
func Render(dst *core.Screen, s Snapshot, v Viewport) {
	dst.Clear()

	groundRow := v.Row(s.GroundY())
	renderObstacle(dst, s, v, groundRow)

	// Ground fills everything from the ground line down
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorOrange)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░', core.ColorGray)
	}

	// Keep the body on screen when the terminal is shorter than the field
	bx := v.Col(s.Body.Pos.X)
	by := core.Clamp(v.Row(s.Body.Pos.Y), 0, dst.Height()-1)
	bodyColor := core.ColorBrightYellow
	if s.Phase == PhaseStopped {
		bodyColor = core.ColorRed
	}
	dst.SetColor(bx, by, BodyChar, bodyColor)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorWhite)
	best := fmt.Sprintf(" Best: %d ", s.Best)
	dst.DrawText(dst.Width()-len(best)-2, 0, best, core.ColorCyan)

	switch s.Phase {
	case PhaseReady:
		drawPanel(dst, "READY", "Press SPACE to play")
	case PhaseStopped:
		drawPanel(dst, "GAME OVER",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Best: %d", s.Best),
			fmt.Sprintf("Hit the %s  |  R to reset", s.End))
	}
}

// renderObstacle draws both rectangles with caps facing the gap. The bottom
// rectangle is cut at the ground line.
func renderObstacle(dst *core.Screen, s Snapshot, v Viewport, groundRow int) {
	x, y, w, h := v.cells(s.TopRect())
	dst.FillArea(x, y, w, h, ObstacleChar, core.ColorGreen)
	if h > 0 {
		dst.DrawHLine(x, y+h-1, w, CapTopChar, core.ColorBrightGreen)
	}

	x, y, w, h = v.cells(s.BottomRect())
	if y+h > groundRow {
		h = groundRow - y
	}
	if h > 0 {
		dst.FillArea(x, y, w, h, ObstacleChar, core.ColorGreen)
		dst.DrawHLine(x, y, w, CapBottomChar, core.ColorBrightGreen)
	}
}

// drawPanel draws a centered message box.
func drawPanel(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4

	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
