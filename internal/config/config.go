// Package config provides YAML-based configuration loading and validation
// for the game.
package config

import "time"

// FlappyConfig contains every tunable constant of the simulation.
type FlappyConfig struct {
	Physics     Physics     `yaml:"physics"`
	Obstacle    Obstacle    `yaml:"obstacle"`
	Body        Body        `yaml:"body"`
	Field       Field       `yaml:"field"`
	Timing      Timing      `yaml:"timing"`
	Persistence Persistence `yaml:"persistence"`
}

// Physics defines the integrator constants, in play units per second.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration (units/s²)
	ImpulseVelocity float64 `yaml:"impulse_velocity"` // Vertical velocity set by a tap (negative = up)
	ObstacleSpeed   float64 `yaml:"obstacle_speed"`   // Leftward scroll speed (units/s)
}

// Obstacle defines the obstacle pair geometry.
type Obstacle struct {
	Width   float64 `yaml:"width"`
	Spacing float64 `yaml:"spacing"` // Vertical gap between top and bottom rects
	GapMin  float64 `yaml:"gap_min"` // Lower bound for the random gap-top height
	GapMax  float64 `yaml:"gap_max"` // Upper bound for the random gap-top height
}

// Body defines the player body.
type Body struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"` // Side of the square hitbox
}

// Field defines play-field constants. Width and height come from the
// rendering surface at runtime; Height here only sizes the terminal viewport.
type Field struct {
	GroundMargin float64 `yaml:"ground_margin"`
	Height       float64 `yaml:"height"`
}

// Timing defines the tick cadence.
type Timing struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// Persistence defines how the best score is stored.
type Persistence struct {
	Key string `yaml:"key"` // Identifier the best score is stored under
}

// TickRate returns the number of ticks per second implied by the interval.
func (c FlappyConfig) TickRate() int {
	if c.Timing.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / c.Timing.TickInterval)
}
