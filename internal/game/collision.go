package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// EndReason records why a round stopped.
type EndReason int

const (
	EndNone     EndReason = iota
	EndCeiling            // Body reached the top of the field
	EndGround             // Body reached the ground line
	EndObstacle           // Body overlapped an obstacle rectangle
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCeiling:
		return "ceiling"
	case EndGround:
		return "ground"
	case EndObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// CheckBoundaries clamps the body to the field and reports whether it hit
// the ceiling or the ground. Returns EndNone when the body is in bounds.
func CheckBoundaries(b *Body, fieldHeight, groundMargin float64) EndReason {
	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		return EndCeiling
	}

	ground := fieldHeight - groundMargin
	if b.Pos.Y > ground {
		b.Pos.Y = ground
		b.Vel.Y = 0
		return EndGround
	}

	return EndNone
}

// CheckObstacleCollision reports whether the body's hitbox overlaps either
// obstacle rectangle by a positive area.
func CheckObstacleCollision(body, top, bottom core.Rect) bool {
	return body.Intersects(top) || body.Intersects(bottom)
}
