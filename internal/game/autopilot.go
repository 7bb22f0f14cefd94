package game

import "github.com/vovakirdan/tui-flappy/internal/config"

// Autopilot is a simple bot: it taps whenever the body is falling and has
// sunk below a threshold inside the gap. The threshold is chosen so the apex
// of the hop that follows stays under the top rectangle.
type Autopilot struct {
	apex float64 // Height gained by one tap from rest
}

// NewAutopilot creates an autopilot tuned to the given physics.
func NewAutopilot(p config.Physics) Autopilot {
	var apex float64
	if p.Gravity > 0 {
		apex = p.ImpulseVelocity * p.ImpulseVelocity / (2 * p.Gravity)
	}
	return Autopilot{apex: apex}
}

// Threshold returns the y-coordinate below which the autopilot taps. The
// oscillation band [threshold-apex, threshold] is centered in the room the
// gap leaves after the body's own size.
func (a Autopilot) Threshold(s Snapshot) float64 {
	half := s.BodySize / 2
	slack := s.Obstacle.Spacing - s.BodySize - a.apex
	if slack < 0 {
		slack = 0
	}
	return s.Obstacle.GapTop + half + a.apex + slack/2
}

// Decide reports whether to tap given the latest snapshot.
func (a Autopilot) Decide(s Snapshot) bool {
	if s.Phase != PhaseActive {
		return false
	}
	return s.Body.Vel.Y >= 0 && s.Body.Pos.Y >= a.Threshold(s)
}
