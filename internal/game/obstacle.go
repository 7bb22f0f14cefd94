package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GapRange bounds the random height of the top obstacle rectangle.
type GapRange struct {
	Min, Max float64
}

// Draw returns a uniformly distributed value in [Min, Max].
func (r GapRange) Draw(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Obstacle is a top/bottom rectangle pair separated by a vertical gap.
// Only the scroll offset and gap height are state; geometry is derived on
// demand from the current field size.
type Obstacle struct {
	Offset  float64 // Scroll offset from the right edge of the field, decreasing
	GapTop  float64 // Height of the top rectangle
	Width   float64
	Spacing float64 // Height of the gap
}

// NewObstacle creates an obstacle at the right edge of the field.
func NewObstacle(width, spacing, gapTop float64) Obstacle {
	return Obstacle{GapTop: gapTop, Width: width, Spacing: spacing}
}

// Advance scrolls the obstacle left for dt seconds.
func (o *Obstacle) Advance(dt, speed float64) {
	o.Offset -= speed * dt
}

// Left returns the obstacle's left edge in field coordinates.
func (o Obstacle) Left(fieldWidth float64) float64 {
	return fieldWidth + o.Offset
}

// FullyPassed reports whether the obstacle has scrolled entirely behind the
// left edge of the field.
func (o Obstacle) FullyPassed(fieldWidth float64) bool {
	return o.Offset <= -(fieldWidth + o.Width)
}

// RecycleIfNeeded moves a fully passed obstacle back to the right edge with a
// fresh gap height. Reports whether it fired.
func (o *Obstacle) RecycleIfNeeded(fieldWidth float64, gaps GapRange, rng *rand.Rand) bool {
	if !o.FullyPassed(fieldWidth) {
		return false
	}
	o.Offset = 0
	o.GapTop = gaps.Draw(rng)
	return true
}

// TopRect returns the upper rectangle: from the top of the field down to the
// gap.
func (o Obstacle) TopRect(fieldWidth float64) core.Rect {
	return core.NewRect(o.Left(fieldWidth), 0, o.Width, o.GapTop)
}

// BottomRect returns the lower rectangle: from the bottom of the gap to the
// bottom of the field. It is empty when the gap reaches past the field.
func (o Obstacle) BottomRect(fieldWidth, fieldHeight float64) core.Rect {
	top := o.GapTop + o.Spacing
	h := core.ClampF(fieldHeight-top, 0, fieldHeight)
	return core.NewRect(o.Left(fieldWidth), top, o.Width, h)
}
