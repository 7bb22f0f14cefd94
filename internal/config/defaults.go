package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultBestScoreKey is the identifier the best score is persisted under.
const DefaultBestScoreKey = "highScore"

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:         1000,
			ImpulseVelocity: -400,
			ObstacleSpeed:   300,
		},
		Obstacle: Obstacle{
			Width:   100,
			Spacing: 100,
			GapMin:  100,
			GapMax:  500,
		},
		Body: Body{
			StartX: 100,
			StartY: 300,
			Size:   13,
		},
		Field: Field{
			GroundMargin: 100,
			Height:       800,
		},
		Timing: Timing{
			TickInterval: 10 * time.Millisecond,
		},
		Persistence: Persistence{
			Key: DefaultBestScoreKey,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
