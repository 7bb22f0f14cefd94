// Package game implements the simulation core: a body falling under gravity,
// a scrolling obstacle pair, collision and boundary checks, scoring and the
// ready/active/stopped phase machine. It has no Bubble Tea dependency; the
// platform layer feeds it time samples and input events and reads snapshots.
package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// Vec is a 2D vector in play-field units.
type Vec struct {
	X, Y float64
}

// Body is the player-controlled body. Its X never changes; the world
// scrolls past it.
type Body struct {
	Pos Vec // Center of the hitbox
	Vel Vec // Units per second
}

// NewBody creates a body at rest at the given position.
func NewBody(x, y float64) Body {
	return Body{Pos: Vec{X: x, Y: y}}
}

// Rect returns the body's square hitbox of the given side.
func (b Body) Rect(size float64) core.Rect {
	return core.CenteredSquare(b.Pos.X, b.Pos.Y, size)
}

// ApplyGravity accelerates the body downward for dt seconds.
func ApplyGravity(b *Body, dt, g float64) {
	b.Vel.Y += g * dt
}

// Integrate moves the body by its vertical velocity for dt seconds.
func Integrate(b *Body, dt float64) {
	b.Pos.Y += b.Vel.Y * dt
}

// ApplyImpulse overrides the vertical velocity. Negative is upward.
func ApplyImpulse(b *Body, v float64) {
	b.Vel.Y = v
}
