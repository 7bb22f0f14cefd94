package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate rejects degenerate values that would make the simulation
// undefined. All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Timing.TickInterval <= 0 {
		fail("tick_interval must be positive, got %v", c.Timing.TickInterval)
	}
	if c.Physics.Gravity < 0 {
		fail("gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.ImpulseVelocity >= 0 {
		fail("impulse_velocity must be negative (upward), got %v", c.Physics.ImpulseVelocity)
	}
	if c.Physics.ObstacleSpeed <= 0 {
		fail("obstacle_speed must be positive, got %v", c.Physics.ObstacleSpeed)
	}
	if c.Obstacle.Width <= 0 {
		fail("obstacle width must be positive, got %v", c.Obstacle.Width)
	}
	if c.Obstacle.Spacing <= 0 {
		fail("obstacle spacing must be positive, got %v", c.Obstacle.Spacing)
	}
	if c.Obstacle.GapMin < 0 {
		fail("gap_min must not be negative, got %v", c.Obstacle.GapMin)
	}
	if c.Obstacle.GapMin > c.Obstacle.GapMax {
		fail("gap range is inverted: [%v, %v]", c.Obstacle.GapMin, c.Obstacle.GapMax)
	}
	if c.Body.Size <= 0 {
		fail("body size must be positive, got %v", c.Body.Size)
	}
	if c.Field.GroundMargin < 0 {
		fail("ground_margin must not be negative, got %v", c.Field.GroundMargin)
	}
	if c.Field.Height <= 0 {
		fail("field height must be positive, got %v", c.Field.Height)
	}
	ground := c.Field.Height - c.Field.GroundMargin
	if ground <= 0 {
		fail("ground_margin %v leaves no room in field height %v", c.Field.GroundMargin, c.Field.Height)
	} else if c.Body.StartY <= 0 || c.Body.StartY >= ground {
		fail("start_y must lie in (0, %v), got %v", ground, c.Body.StartY)
	}
	if c.Persistence.Key == "" {
		fail("persistence key must not be empty")
	}

	return errors.Join(errs...)
}
